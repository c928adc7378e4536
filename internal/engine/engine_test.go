package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/pscan/domain"
)

func clusterIDOf(t *testing.T, resp *domain.ClusterResponse, member int32) int32 {
	t.Helper()
	for _, p := range resp.CorePairs {
		if p.Member == member {
			return p.ClusterID
		}
	}
	t.Fatalf("vertex %d not found among core pairs", member)
	return -1
}

func TestRunTriangle(t *testing.T) {
	req := &domain.ClusterRequest{
		Graph:   triangleGraph(),
		Epsilon: mustEpsilon(t, 1, 1),
		Mu:      2,
	}
	resp, err := Run(req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.RunID)
	require.Equal(t, 3, resp.CoreCount)
	require.Equal(t, 1, resp.ClusterCount)

	id0 := clusterIDOf(t, resp, 0)
	id1 := clusterIDOf(t, resp, 1)
	id2 := clusterIDOf(t, resp, 2)
	require.Equal(t, id0, id1)
	require.Equal(t, id0, id2)
	require.Equal(t, int32(0), id0)

	require.Len(t, resp.PhaseTimings, 9)
}

func TestRunPathOfFour(t *testing.T) {
	req := &domain.ClusterRequest{
		Graph:   pathOfFourGraph(),
		Epsilon: mustEpsilon(t, 1, 2),
		Mu:      2,
	}
	resp, err := Run(req)
	require.NoError(t, err)

	for _, p := range resp.CorePairs {
		require.NotEqual(t, int32(0), p.Member)
		require.NotEqual(t, int32(3), p.Member)
	}
}

func TestRunTwoTrianglesLinkedByEdge(t *testing.T) {
	// eps=3/4 keeps both triangle-internal edges easily SIMILAR (degree 2
	// or 3 on either side) while the bridge edge 2-3, despite equal
	// degree, has no actual common open-neighbor once the required bound
	// rises above the automatic-similar floor - so the bridge itself
	// never unions the two components.
	req := &domain.ClusterRequest{
		Graph:   twoTrianglesLinkedGraph(),
		Epsilon: mustEpsilon(t, 3, 4),
		Mu:      2,
	}
	resp, err := Run(req)
	require.NoError(t, err)
	require.GreaterOrEqual(t, resp.CoreCount, 1)

	clusterOf := make(map[int32]int32)
	for _, p := range resp.CorePairs {
		clusterOf[p.Member] = p.ClusterID
	}
	left := []int32{0, 1, 2}
	right := []int32{3, 4, 5}
	for _, l := range left {
		for _, r := range right {
			lc, lok := clusterOf[l]
			rc, rok := clusterOf[r]
			if lok && rok {
				require.NotEqual(t, lc, rc, "vertex %d and %d must not be in the same cluster", l, r)
			}
		}
	}
}

func TestRunStarGraph(t *testing.T) {
	// Hub 0 connected to leaves 1..4; no other edges. The hub has four
	// epsilon-similar edges (enough to be CORE at mu=2); every leaf has
	// only one, so none of them reach mu and all stay NON_CORE, attaching
	// to the hub's single cluster as outliers.
	g := &domain.CSRGraph{
		N:      5,
		Offset: []int32{0, 4, 5, 6, 7, 8},
		Adj:    []int32{1, 2, 3, 4, 0, 0, 0, 0},
	}
	req := &domain.ClusterRequest{
		Graph:   g,
		Epsilon: mustEpsilon(t, 1, 2),
		Mu:      2,
	}
	resp, err := Run(req)
	require.NoError(t, err)

	require.Equal(t, 1, resp.CoreCount)
	require.Equal(t, 1, resp.ClusterCount)
	require.Len(t, resp.CorePairs, 1)
	require.Equal(t, int32(0), resp.CorePairs[0].Member)

	require.Len(t, resp.NonCorePairs, 4)
	hubCluster := resp.CorePairs[0].ClusterID
	for _, p := range resp.NonCorePairs {
		require.Equal(t, hubCluster, p.ClusterID)
		require.Equal(t, domain.RoleOutlier, resp.Roles[p.Member])
	}
}

func TestRunDisconnectedSingletons(t *testing.T) {
	g := &domain.CSRGraph{
		N:      3,
		Offset: []int32{0, 0, 0, 0},
		Adj:    []int32{},
	}
	req := &domain.ClusterRequest{
		Graph:   g,
		Epsilon: mustEpsilon(t, 1, 1),
		Mu:      2,
	}
	resp, err := Run(req)
	require.NoError(t, err)
	require.Equal(t, 0, resp.CoreCount)
	require.Equal(t, 0, resp.ClusterCount)
	require.Empty(t, resp.CorePairs)
	require.Empty(t, resp.NonCorePairs)
}

func completeGraph(n int32) *domain.CSRGraph {
	offset := make([]int32, n+1)
	var adj []int32
	for u := int32(0); u < n; u++ {
		offset[u] = int32(len(adj))
		for v := int32(0); v < n; v++ {
			if v != u {
				adj = append(adj, v)
			}
		}
	}
	offset[n] = int32(len(adj))
	return &domain.CSRGraph{N: n, Offset: offset, Adj: adj}
}

func TestRunCompleteGraphK8(t *testing.T) {
	// Every vertex in K8 has exactly 7 neighbors, all pairwise SIMILAR at
	// eps=1 (every vertex's closed neighborhood is the whole graph), so
	// mu=7 is the largest threshold at which every vertex still qualifies
	// CORE and the whole graph collapses into one cluster.
	g := completeGraph(8)
	req := &domain.ClusterRequest{
		Graph:   g,
		Epsilon: mustEpsilon(t, 1, 1),
		Mu:      7,
	}
	resp, err := Run(req)
	require.NoError(t, err)
	require.Equal(t, 8, resp.CoreCount)
	require.Equal(t, 1, resp.ClusterCount)

	id0 := clusterIDOf(t, resp, 0)
	for v := int32(1); v < 8; v++ {
		require.Equal(t, id0, clusterIDOf(t, resp, v))
	}
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	g := completeGraph(8)
	eps := mustEpsilon(t, 1, 1)

	var results []*domain.ClusterResponse
	for _, workers := range []int{0, 1, 2, 4, 8} {
		req := &domain.ClusterRequest{
			Graph:       g,
			Epsilon:     eps,
			Mu:          3,
			WorkerCount: workers,
		}
		resp, err := Run(req)
		require.NoError(t, err)
		results = append(results, resp)
	}

	for _, r := range results {
		require.Equal(t, results[0].CoreCount, r.CoreCount)
		require.Equal(t, results[0].ClusterCount, r.ClusterCount)
	}
}

func TestRunRejectsInvalidMu(t *testing.T) {
	req := &domain.ClusterRequest{
		Graph:   triangleGraph(),
		Epsilon: mustEpsilon(t, 1, 1),
		Mu:      1,
	}
	_, err := Run(req)
	require.Error(t, err)
}

func TestRunRejectsNilGraph(t *testing.T) {
	req := &domain.ClusterRequest{
		Epsilon: mustEpsilon(t, 1, 1),
		Mu:      2,
	}
	_, err := Run(req)
	require.Error(t, err)
}
