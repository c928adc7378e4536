package engine

import "github.com/ludo-technologies/pscan/domain"

// CollectCores scans every vertex and returns the list of cores, in
// ascending vertex-id order - the input to every ClusterCore/ClusterNonCore
// partition.
func CollectCores(st *State) []int32 {
	var cores []int32
	for u := int32(0); u < st.Graph.N; u++ {
		if st.VertexStatus(u) == domain.StatusCore {
			cores = append(cores, u)
		}
	}
	return cores
}

// ClusterCoreCheap is Component D's phase 1: for each edge (u,v) between
// two cores with u < v, already-SIMILAR edges union their components
// immediately, without touching the intersector.
func ClusterCoreCheap(st *State, u int32) {
	if st.VertexStatus(u) != domain.StatusCore {
		return
	}
	g := st.Graph
	for i := g.Offset[u]; i < g.Offset[u+1]; i++ {
		v := g.Adj[i]
		if v <= u || st.VertexStatus(v) != domain.StatusCore {
			continue
		}
		if st.UF.Same(u, v) {
			continue
		}
		if st.MinCN[i].Load() == domain.Similar {
			st.UF.Union(u, v)
		}
	}
}

// ClusterCoreExact is Component D's phase 2: any still-undecided edge
// between two cores in different components is computed exactly and
// unioned on SIMILAR.
func ClusterCoreExact(st *State, u int32) {
	if st.VertexStatus(u) != domain.StatusCore {
		return
	}
	g := st.Graph
	for i := g.Offset[u]; i < g.Offset[u+1]; i++ {
		v := g.Adj[i]
		if v <= u || st.VertexStatus(v) != domain.StatusCore {
			continue
		}
		if st.UF.Same(u, v) {
			continue
		}
		val := st.MinCN[i].Load()
		if val == domain.Similar || val == domain.NotSimilar {
			if val == domain.Similar {
				st.UF.Union(u, v)
			}
			continue
		}
		verdict := evaluateAndStore(st, int(i), u, v, val)
		if verdict == domain.Similar {
			st.UF.Union(u, v)
		}
	}
}

// MarkMinId assigns u's component the minimum core vertex id it contains,
// via a compare-and-swap retry loop on cluster_dict at the disjoint-set
// root - spec's cluster id assignment step.
func MarkMinId(st *State, u int32) {
	r := st.UF.Find(u)
	for {
		cur := st.ClusterDict[r].Load()
		if u >= cur {
			return
		}
		if st.ClusterDict[r].CompareAndSwap(cur, u) {
			return
		}
	}
}

// ClusterNonCore is Component D's non-core attachment step: for every
// non-core neighbor v of core u, evaluate similarity (computing on demand
// if still undecided) and, on SIMILAR, emit (cluster_id(u), v). Returns a
// per-task local buffer; the caller concatenates buffers from every task
// after the join barrier.
func ClusterNonCore(st *State, u int32) []domain.ClusterPair {
	if st.VertexStatus(u) != domain.StatusCore {
		return nil
	}
	g := st.Graph
	var out []domain.ClusterPair

	clusterID := st.ClusterDict[st.UF.Find(u)].Load()

	for i := g.Offset[u]; i < g.Offset[u+1]; i++ {
		v := g.Adj[i]
		if st.VertexStatus(v) == domain.StatusCore {
			continue
		}
		val := st.MinCN[i].Load()
		similar := val == domain.Similar
		if val != domain.Similar && val != domain.NotSimilar {
			similar = evaluateAndStore(st, int(i), u, v, val) == domain.Similar
		}
		if similar {
			out = append(out, domain.ClusterPair{ClusterID: clusterID, Member: v})
		}
	}
	return out
}
