package engine

import (
	"math"

	"go.uber.org/atomic"

	"github.com/ludo-technologies/pscan/domain"
	"github.com/ludo-technologies/pscan/internal/unionfind"
)

// State holds every array the engine phases read and write, sized once
// from the CSR input at construction and never resized - spec's Data
// Model lifecycle. All per-edge and per-vertex slots are atomics so
// concurrent phases can share them without a mutex: min_cn writes are
// monotonic and idempotent (spec Section 5), status writes are
// single-writer-per-slot within a phase, and cluster_dict is only ever
// touched through compare-and-swap.
type State struct {
	Graph *domain.CSRGraph
	Eps   domain.Epsilon
	Mu    int32

	MinCN       []atomic.Int32 // length m; SIMILAR, NOT_SIMILAR, or a positive lower bound
	Status      []atomic.Int32 // length n; domain.VertexStatus values
	ClusterDict []atomic.Int32 // length n; meaningful only at a disjoint-set root

	UF *unionfind.DisjointSet

	// reverseIndex[e] is the index of the reverse edge of e, precomputed
	// only when the caller asked for it (spec's "either design is
	// acceptable" trade against the per-lookup binary search).
	reverseIndex []int32

	Intersector Intersector
}

// NewState allocates and zero-initializes all engine state for g. Status
// starts UNKNOWN (zero value) and ClusterDict starts at n, spec's "no id
// yet" sentinel.
func NewState(g *domain.CSRGraph, eps domain.Epsilon, mu int, precomputeReverseIndex bool) *State {
	n := g.N
	m := len(g.Adj)

	st := &State{
		Graph:       g,
		Eps:         eps,
		Mu:          int32(mu),
		MinCN:       make([]atomic.Int32, m),
		Status:      make([]atomic.Int32, n),
		ClusterDict: make([]atomic.Int32, n),
		UF:          unionfind.New(n),
		Intersector: SelectIntersector(),
	}
	for i := int32(0); i < n; i++ {
		st.ClusterDict[i].Store(n)
	}
	if precomputeReverseIndex {
		st.reverseIndex = buildReverseIndex(g)
	}
	return st
}

// buildReverseIndex precomputes, for every directed edge slot e=(u,v),
// the slot index of (v,u).
func buildReverseIndex(g *domain.CSRGraph) []int32 {
	rev := make([]int32, len(g.Adj))
	for u := int32(0); u < g.N; u++ {
		for i := g.Offset[u]; i < g.Offset[u+1]; i++ {
			v := g.Adj[i]
			rev[i] = binarySearchNeighbor(g, v, u)
		}
	}
	return rev
}

// binarySearchNeighbor returns the slot index of target within v's sorted
// neighbor list.
func binarySearchNeighbor(g *domain.CSRGraph, v, target int32) int32 {
	lo, hi := g.Offset[v], g.Offset[v+1]
	for lo < hi {
		mid := (lo + hi) / 2
		if g.Adj[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// ReverseEdge returns the slot index of the reverse of edge e=(u,v).
func (st *State) ReverseEdge(e int, u, v int32) int32 {
	if st.reverseIndex != nil {
		return st.reverseIndex[e]
	}
	return binarySearchNeighbor(st.Graph, v, u)
}

// ComputeCnLowerBound returns the tight lower bound c = ceil(sqrt(a*b*eps_a^2/eps_b^2))
// on common closed-neighbors required for ε-similarity between two
// vertices of degree a (smaller) and b (larger), with the ceiling
// corrected exactly using integer arithmetic so float rounding can never
// produce an off-by-one bound.
func ComputeCnLowerBound(a, b int64, eps domain.Epsilon) int32 {
	num := a * b * eps.EpsA2
	c := int64(math.Ceil(math.Sqrt(float64(num) / float64(eps.EpsB2))))
	if c < 1 {
		c = 1
	}
	for c*c*eps.EpsB2 < num {
		c++
	}
	for c > 1 && (c-1)*(c-1)*eps.EpsB2 >= num {
		c--
	}
	return int32(c)
}

// VertexStatus returns the current classification of vertex u.
func (st *State) VertexStatus(u int32) domain.VertexStatus {
	return domain.VertexStatus(st.Status[u].Load())
}

func (st *State) setStatus(u int32, s domain.VertexStatus) {
	st.Status[u].Store(int32(s))
}
