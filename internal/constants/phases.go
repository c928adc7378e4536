// Package constants holds small fixed tables shared across the engine,
// service and CLI layers that don't belong to any one of them.
package constants

// Phase labels for the four top-level pSCAN phases, in execution order,
// used by domain.ProgressManager to track coarse CLI progress.
const (
	PhasePrune          = "1st"
	PhaseCheckCore      = "2nd"
	PhaseClusterCore    = "3rd"
	PhaseClusterNonCore = "4th"
)

// PhaseOrder lists the four phases in the strict sequential order the
// engine executes them: Prune -> CheckCore -> ClusterCore -> ClusterNonCore.
var PhaseOrder = []string{PhasePrune, PhaseCheckCore, PhaseClusterCore, PhaseClusterNonCore}

// Trace line labels for the engine's sub-phase timing breakdown, matching
// the original ppSCAN engine's cout lines verbatim
// (original_source/pSCAN-refactor/Graph.cpp's constructor and
// pSCANFirstPhasePrune/pSCANSecondPhaseCheckCore/
// pSCANThirdPhaseClusterCore/pSCANFourthPhaseClusterNonCore). The engine
// writes these to its TraceWriter live, one line per completed sub-step,
// independent of the final report format.
const (
	TraceConstruct          = "other construct time"
	TracePrune              = "1st: prune execution time"
	TraceCheckCoreFirstBSP  = "2nd: check core first-phase bsp time"
	TraceCheckCoreSecondBSP = "2nd: check core second-phase bsp time"
	TraceCoreSize           = "core size"
	TraceClusterCoreCopy    = "3rd: copy time"
	TraceClusterCorePrepare = "3rd: prepare time"
	TraceClusterCoreCluster = "3rd: core clustering time"
	TraceMarkMinID          = "4th: marking cluster id cost in cluster-non-core"
	TraceNonCoreCluster     = "4th: non-core clustering time"
)
