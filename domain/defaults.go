package domain

// Default structural-similarity parameters for the pSCAN engine.
//
// Reference: Xu, X., et al. (2007). SCAN: A Structural Clustering Algorithm
// for Networks. The epsilon/mu pair below matches the common "moderate"
// clustering profile used in the SCAN/pSCAN literature's benchmark runs.
const (
	// DefaultEpsilonNumerator and DefaultEpsilonDenominator express the
	// default similarity threshold epsilon = 1/2 as an exact fraction,
	// avoiding floating-point error in the pruning comparisons.
	DefaultEpsilonNumerator   = 1
	DefaultEpsilonDenominator = 2

	// DefaultMu is the minimum number of epsilon-similar neighbors required
	// for core status; the vertex itself is not counted.
	DefaultMu = 2
)

// Partition thresholds bound the summed vertex/core degree a single task
// handles in each phase of the engine before being submitted to the worker
// pool. They are performance-tuning defaults, not correctness-critical, and
// may be overridden via PscanConfig.Thresholds.
const (
	// DefaultPruneThreshold bounds Phase A (degree-based pruning) tasks.
	DefaultPruneThreshold = 65536

	// DefaultCheckCoreBSP1Threshold bounds the first bulk-synchronous pass
	// of core decision, which computes exact intersections only for edges
	// (u,v) with u <= v.
	DefaultCheckCoreBSP1Threshold = 32768

	// DefaultCheckCoreBSP2Threshold bounds the second bulk-synchronous
	// pass, which computes exact intersections for undecided edges.
	DefaultCheckCoreBSP2Threshold = 65536

	// DefaultClusterCoreThreshold bounds both phases of core-to-core
	// clustering (cheap union then exact union).
	DefaultClusterCoreThreshold = 131072

	// DefaultClusterNonCoreThreshold bounds the non-core attachment phase.
	DefaultClusterNonCoreThreshold = 32768
)

// ============================================================================
// Performance Defaults
// ============================================================================

const (
	// DefaultWorkerCount of 0 means the engine sizes its worker pool from
	// runtime.NumCPU() at construction time.
	DefaultWorkerCount = 0

	// DefaultPrecomputeReverseIndex controls whether the engine builds a
	// per-edge reverse-edge index at load time (O(m) extra memory, O(1)
	// lookups) instead of binary-searching the neighbor list on demand.
	DefaultPrecomputeReverseIndex = false
)
