package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/pscan/domain"
)

// pathOfFourGraph is the spec's path-of-four scenario: 0-1-2-3, a simple
// path with no triangles.
func pathOfFourGraph() *domain.CSRGraph {
	return &domain.CSRGraph{
		N:      4,
		Offset: []int32{0, 1, 3, 5, 6},
		Adj:    []int32{1, 0, 2, 1, 3, 2},
	}
}

func runFullCheckCore(st *domain.CSRGraph, eps domain.Epsilon, mu int) *State {
	s := NewState(st, eps, mu, false)
	for u := int32(0); u < st.N; u++ {
		Prune(s, u)
	}
	for u := int32(0); u < st.N; u++ {
		CheckCoreFirstBSP(s, u)
	}
	for u := int32(0); u < st.N; u++ {
		CheckCoreSecondBSP(s, u)
	}
	return s
}

func TestCheckCorePathOfFour(t *testing.T) {
	g := pathOfFourGraph()
	eps := mustEpsilon(t, 1, 2)
	st := runFullCheckCore(g, eps, 2)

	// Endpoints (degree 1) can never reach mu=2 similar neighbors; the two
	// interior vertices (degree 2) are the only candidates for CORE.
	require.Equal(t, domain.StatusNonCore, st.VertexStatus(0))
	require.Equal(t, domain.StatusNonCore, st.VertexStatus(3))
}

func TestCheckCoreTriangleAllCore(t *testing.T) {
	g := triangleGraph()
	eps := mustEpsilon(t, 1, 1)
	st := runFullCheckCore(g, eps, 2)

	for u := int32(0); u < g.N; u++ {
		require.Equal(t, domain.StatusCore, st.VertexStatus(u))
	}
}

func TestMinCNSymmetricAfterCheckCore(t *testing.T) {
	g := pathOfFourGraph()
	eps := mustEpsilon(t, 1, 2)
	st := runFullCheckCore(g, eps, 2)

	// Whenever one direction of an edge has been committed to a terminal
	// verdict, the reverse direction must agree - spec's min_cn symmetry
	// invariant. A vertex that short-circuited early may leave some of its
	// own edges at a positive bound, so this only checks pairs that have
	// actually been resolved.
	for u := int32(0); u < g.N; u++ {
		for i := g.Offset[u]; i < g.Offset[u+1]; i++ {
			v := g.Adj[i]
			uv := st.MinCN[i].Load()
			if uv != domain.Similar && uv != domain.NotSimilar {
				continue
			}
			rev := st.ReverseEdge(int(i), u, v)
			require.Equal(t, uv, st.MinCN[rev].Load())
		}
	}
}

func TestEvaluateAndStoreWritesBothDirections(t *testing.T) {
	g := triangleGraph()
	eps := mustEpsilon(t, 1, 1)
	st := NewState(g, eps, 2, true)

	// Edge slot 0 is (0 -> 1).
	verdict := evaluateAndStore(st, 0, 0, 1, domain.MinPositiveBound)
	require.Equal(t, domain.Similar, verdict)

	rev := st.ReverseEdge(0, 0, 1)
	require.Equal(t, domain.Similar, st.MinCN[rev].Load())
	require.Equal(t, domain.Similar, st.MinCN[0].Load())
}
