package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/ludo-technologies/pscan/domain"
	"github.com/ludo-technologies/pscan/internal/constants"
	"github.com/ludo-technologies/pscan/internal/partition"
)

// degreeWeigher returns a partition.Weigher over a vertex or core index
// list, weighted by graph degree - spec Component E's "chunks of roughly
// equal summed degree".
func degreeWeigher(g *domain.CSRGraph, ids []int32) partition.Weigher {
	if ids == nil {
		return func(i int) int64 { return int64(g.Degree(int32(i))) }
	}
	return func(i int) int64 { return int64(g.Degree(ids[i])) }
}

// Run executes the full four-phase pSCAN pipeline - Prune, CheckCore,
// ClusterCore, ClusterNonCore - each phase partitioned by
// internal/partition and joined before the next begins, and returns the
// completed clustering response.
//
// It reproduces the original ppSCAN engine's stdout trace verbatim
// (original_source/pSCAN-refactor/Graph.cpp's constructor and
// pSCANFirstPhasePrune/pSCANSecondPhaseCheckCore/
// pSCANThirdPhaseClusterCore/pSCANFourthPhaseClusterNonCore): one line per
// sub-step, written live to req.TraceWriter as each sub-step completes,
// independent of whatever report format the caller eventually renders
// domain.ClusterResponse into.
func Run(req *domain.ClusterRequest) (*domain.ClusterResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	trace := req.TraceWriter
	if trace == nil {
		trace = io.Discard
	}

	g := req.Graph
	workers := req.WorkerCount

	constructStart := time.Now()
	st := NewState(g, req.Epsilon, req.Mu, req.PrecomputeReverseIndex)
	constructMS := time.Since(constructStart).Milliseconds()
	fmt.Fprintf(trace, "%s:%d ms\n", constants.TraceConstruct, constructMS)

	var timings []domain.PhaseTiming
	record := func(label string, ms int64) {
		timings = append(timings, domain.PhaseTiming{Label: label, DurationMS: ms})
	}
	record(constants.TraceConstruct, constructMS)

	// Phase 1: Prune.
	pruneStart := time.Now()
	ranges := partition.BuildRanges(int(g.N), degreeWeigher(g, nil), threshold(req.PruneThreshold, domain.DefaultPruneThreshold))
	partition.Run(ranges, workers, func(start, end int) {
		for u := start; u < end; u++ {
			Prune(st, int32(u))
		}
	})
	pruneMS := time.Since(pruneStart).Milliseconds()
	record(constants.TracePrune, pruneMS)
	fmt.Fprintf(trace, "%s:%d ms\n", constants.TracePrune, pruneMS)

	// Phase 2: CheckCore, two BSP sub-passes, each timed and traced on its own.
	firstBSPStart := time.Now()
	r1 := partition.BuildRanges(int(g.N), degreeWeigher(g, nil), threshold(req.CheckCoreBSP1Threshold, domain.DefaultCheckCoreBSP1Threshold))
	partition.Run(r1, workers, func(start, end int) {
		for u := start; u < end; u++ {
			CheckCoreFirstBSP(st, int32(u))
		}
	})
	firstBSPMS := time.Since(firstBSPStart).Milliseconds()
	record(constants.TraceCheckCoreFirstBSP, firstBSPMS)
	fmt.Fprintf(trace, "%s:%d ms\n", constants.TraceCheckCoreFirstBSP, firstBSPMS)

	secondBSPStart := time.Now()
	r2 := partition.BuildRanges(int(g.N), degreeWeigher(g, nil), threshold(req.CheckCoreBSP2Threshold, domain.DefaultCheckCoreBSP2Threshold))
	partition.Run(r2, workers, func(start, end int) {
		for u := start; u < end; u++ {
			CheckCoreSecondBSP(st, int32(u))
		}
	})
	secondBSPMS := time.Since(secondBSPStart).Milliseconds()
	record(constants.TraceCheckCoreSecondBSP, secondBSPMS)
	fmt.Fprintf(trace, "%s:%d ms\n", constants.TraceCheckCoreSecondBSP, secondBSPMS)

	// Phase 3: ClusterCore. copy/prepare/cluster timings are cumulative
	// from clusterCoreStart, matching the original's tmp_start-relative
	// cout lines.
	clusterCoreStart := time.Now()
	cores := CollectCores(st)
	fmt.Fprintf(trace, "%s:%d\n", constants.TraceCoreSize, len(cores))

	copyMS := time.Since(clusterCoreStart).Milliseconds()
	record(constants.TraceClusterCoreCopy, copyMS)
	fmt.Fprintf(trace, "%s: %d ms\n", constants.TraceClusterCoreCopy, copyMS)

	rc := partition.BuildRanges(len(cores), degreeWeigher(g, cores), threshold(req.ClusterCoreThreshold, domain.DefaultClusterCoreThreshold))
	partition.Run(rc, workers, func(start, end int) {
		for i := start; i < end; i++ {
			ClusterCoreCheap(st, cores[i])
		}
	})
	prepareMS := time.Since(clusterCoreStart).Milliseconds()
	record(constants.TraceClusterCorePrepare, prepareMS)
	fmt.Fprintf(trace, "%s: %d ms\n", constants.TraceClusterCorePrepare, prepareMS)

	partition.Run(rc, workers, func(start, end int) {
		for i := start; i < end; i++ {
			ClusterCoreExact(st, cores[i])
		}
	})
	clusterCoreMS := time.Since(clusterCoreStart).Milliseconds()
	record(constants.TraceClusterCoreCluster, clusterCoreMS)
	fmt.Fprintf(trace, "%s:%d ms\n", constants.TraceClusterCoreCluster, clusterCoreMS)

	// Phase 4: mark-id (MarkClusterMinEleAsId in the original, called from
	// inside its fourth phase) then non-core attachment. Both timings are
	// cumulative from clusterNonCoreStart.
	clusterNonCoreStart := time.Now()
	slabs := partition.EqualSlabs(len(cores), resolveWorkerCount(workers))
	partition.Run(slabs, workers, func(start, end int) {
		for i := start; i < end; i++ {
			MarkMinId(st, cores[i])
		}
	})
	markMinIDMS := time.Since(clusterNonCoreStart).Milliseconds()
	record(constants.TraceMarkMinID, markMinIDMS)
	fmt.Fprintf(trace, "%s:%d ms\n", constants.TraceMarkMinID, markMinIDMS)

	rn := partition.BuildRanges(len(cores), degreeWeigher(g, cores), threshold(req.ClusterNonCoreThreshold, domain.DefaultClusterNonCoreThreshold))
	nonCorePairs := partition.RunCollecting(rn, workers, func(start, end int) []domain.ClusterPair {
		var buf []domain.ClusterPair
		for i := start; i < end; i++ {
			buf = append(buf, ClusterNonCore(st, cores[i])...)
		}
		return buf
	})
	nonCoreMS := time.Since(clusterNonCoreStart).Milliseconds()
	record(constants.TraceNonCoreCluster, nonCoreMS)
	fmt.Fprintf(trace, "%s:%d ms\n", constants.TraceNonCoreCluster, nonCoreMS)

	corePairs := make([]domain.ClusterPair, 0, len(cores))
	clusterSet := make(map[int32]struct{})
	for _, u := range cores {
		cid := st.ClusterDict[st.UF.Find(u)].Load()
		corePairs = append(corePairs, domain.ClusterPair{ClusterID: cid, Member: u})
		clusterSet[cid] = struct{}{}
	}

	roles := classifyRoles(g, nonCorePairs)

	resp := &domain.ClusterResponse{
		RunID:        uuid.NewString(),
		Epsilon:      req.Epsilon.String(),
		Mu:           req.Mu,
		CorePairs:    corePairs,
		NonCorePairs: nonCorePairs,
		Roles:        roles,
		ClusterCount: len(clusterSet),
		CoreCount:    len(cores),
		PhaseTimings: timings,
	}
	return resp, nil
}

// classifyRoles assigns every vertex appearing as a non-core attachment a
// domain.RoleHub (touches >= 2 distinct clusters) or domain.RoleOutlier
// (touches exactly 1) - spec's writer-side hub/outlier convention.
func classifyRoles(g *domain.CSRGraph, pairs []domain.ClusterPair) map[int32]domain.VertexRole {
	touched := make(map[int32]map[int32]struct{})
	for _, p := range pairs {
		set, ok := touched[p.Member]
		if !ok {
			set = make(map[int32]struct{})
			touched[p.Member] = set
		}
		set[p.ClusterID] = struct{}{}
	}

	roles := make(map[int32]domain.VertexRole, len(touched))
	for v, clusters := range touched {
		if len(clusters) >= 2 {
			roles[v] = domain.RoleHub
		} else {
			roles[v] = domain.RoleOutlier
		}
	}
	return roles
}

func threshold(configured, fallback int) int64 {
	if configured > 0 {
		return int64(configured)
	}
	return int64(fallback)
}

func resolveWorkerCount(workers int) int {
	if workers > 0 {
		return workers
	}
	return 1
}
