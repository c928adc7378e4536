package engine

import "github.com/ludo-technologies/pscan/domain"

// decideCore is the shared sweep behind both BSPs of Component C. It
// re-derives u's ed/sd counters from the current min_cn state (pass 1),
// then computes exact similarity for any edge still left undecided
// (pass 2), short-circuiting the moment either threshold is crossed.
//
// guardUV restricts pass 2 to edges with u <= v - the first BSP's
// guarantee that each unordered edge is computed by at most one side.
// setNonCoreOnEdBreach controls whether crossing ed < mu commits
// NON_CORE: true for the first BSP, false for the second, where spec
// requires the vertex be left UNKNOWN so a still-running sibling task has
// a chance to prove it CORE from the other side.
func decideCore(st *State, u int32, guardUV, setNonCoreOnEdBreach bool) {
	if st.VertexStatus(u) != domain.StatusUnknown {
		return
	}

	g := st.Graph
	ed := g.Degree(u)
	var sd int32

	decide := func(val int32) (done bool) {
		switch val {
		case domain.Similar:
			sd++
		case domain.NotSimilar:
			ed--
		default:
			return false
		}
		if sd >= st.Mu {
			st.setStatus(u, domain.StatusCore)
			return true
		}
		if ed < st.Mu {
			if setNonCoreOnEdBreach {
				st.setStatus(u, domain.StatusNonCore)
			}
			return true
		}
		return false
	}

	// Pass 1: consult already-decided slots only.
	for i := g.Offset[u]; i < g.Offset[u+1]; i++ {
		val := st.MinCN[i].Load()
		if val == domain.Similar || val == domain.NotSimilar {
			if decide(val) {
				return
			}
		}
	}

	// Pass 2: compute exactly for edges still left with a positive bound.
	for i := g.Offset[u]; i < g.Offset[u+1]; i++ {
		v := g.Adj[i]
		val := st.MinCN[i].Load()
		if val == domain.Similar || val == domain.NotSimilar {
			continue
		}
		if guardUV && u > v {
			continue
		}

		newVal := evaluateAndStore(st, int(i), u, v, val)
		if decide(newVal) {
			return
		}
	}
}

// evaluateAndStore runs the intersector for edge i=(u,v) with pruning
// bound threshold, writes the verdict into both min_cn[e] and
// min_cn[rev(e)], and returns the verdict. Safe to call from two
// concurrent tasks racing on the same unordered edge: both always compute
// and store the same value.
func evaluateAndStore(st *State, e int, u, v, threshold int32) int32 {
	nu := st.Graph.Neighbors(u)
	nv := st.Graph.Neighbors(v)

	verdict := domain.NotSimilar
	if st.Intersector.Intersect(nu, nv, threshold) {
		verdict = domain.Similar
	}

	st.MinCN[e].Store(verdict)
	rev := st.ReverseEdge(e, u, v)
	st.MinCN[rev].Store(verdict)
	return verdict
}

// CheckCoreFirstBSP runs the first BSP of Component C for vertex u.
func CheckCoreFirstBSP(st *State, u int32) {
	decideCore(st, u, true, true)
}

// CheckCoreSecondBSP runs the second BSP of Component C for vertex u. Any
// vertex still UNKNOWN when this returns is treated as non-core by every
// later phase (spec's resolved Open Question).
func CheckCoreSecondBSP(st *State, u int32) {
	decideCore(st, u, false, false)
}
