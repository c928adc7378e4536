package engine

import "github.com/ludo-technologies/pscan/domain"

// Prune is Component B: the degree-based pruner. For vertex u it scans
// every outgoing edge once, classifies edges whose endpoints can never
// (or always) be ε-similar purely from degree, and - when enough edges
// were classified - decides u's CORE/NON_CORE status without ever
// touching the intersector. It is embarrassingly parallel: u only writes
// its own outgoing min_cn slots and its own status slot.
func Prune(st *State, u int32) {
	g := st.Graph
	du := int64(g.Degree(u))
	ed := int32(du)
	var sd int32

	for i := g.Offset[u]; i < g.Offset[u+1]; i++ {
		v := g.Adj[i]
		dv := int64(g.Degree(v))

		a, b := du, dv
		if a > b {
			a, b = b, a
		}

		if a*st.Eps.EpsB2 < b*st.Eps.EpsA2 {
			st.MinCN[i].Store(domain.NotSimilar)
			ed--
			continue
		}

		c := ComputeCnLowerBound(a, b, st.Eps)
		if c <= domain.MinPositiveBound {
			st.MinCN[i].Store(domain.Similar)
			sd++
		} else {
			st.MinCN[i].Store(c)
		}
	}

	switch {
	case sd >= st.Mu:
		st.setStatus(u, domain.StatusCore)
	case ed < st.Mu:
		st.setStatus(u, domain.StatusNonCore)
	}
}
