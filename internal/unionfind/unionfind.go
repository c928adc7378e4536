// Package unionfind implements a concurrent disjoint-set (union-find)
// structure: union-by-rank with path compression, safe to call find
// concurrently with union on other components.
//
// Grounded on the sequential map-based DSU in
// github.com/katalvlaran/lvlath's prim_kruskal.Kruskal, generalized to a
// dense int32 id space and made lock-free per the Anderson-Woll scheme: all
// mutation goes through compare-and-swap on word-sized atomic slots, so a
// find racing a union on a different pair of components always observes
// some valid, if stale, root.
package unionfind

import "go.uber.org/atomic"

// DisjointSet is a concurrent union-find over the dense id space [0, n).
// Path-compression writes during Find race with concurrent Union calls but
// are idempotent: they only shorten paths toward the true root and never
// change logical component membership.
type DisjointSet struct {
	parent []atomic.Int32
	rank   []atomic.Int32
}

// New creates a DisjointSet over n elements, each initially its own root.
func New(n int32) *DisjointSet {
	d := &DisjointSet{
		parent: make([]atomic.Int32, n),
		rank:   make([]atomic.Int32, n),
	}
	for i := int32(0); i < n; i++ {
		d.parent[i].Store(i)
	}
	return d
}

// Find returns a root of x's current component. It may return different
// (but always equivalent) roots across concurrent calls if a union is in
// flight; callers that need a stable snapshot should compare two Find
// results, not cache one.
func (d *DisjointSet) Find(x int32) int32 {
	for {
		p := d.parent[x].Load()
		if p == x {
			return x
		}
		gp := d.parent[p].Load()
		if gp != p {
			// Path-halving: point x directly at its grandparent. The CAS
			// may lose a race with another compressor; either outcome
			// still shortens the path, so a failure is not retried.
			d.parent[x].CompareAndSwap(p, gp)
		}
		x = p
	}
}

// Same reports whether x and y are currently known to be in the same
// component. A false result can be stale if a concurrent Union is landing;
// callers in the engine treat that as "not yet merged, try again next
// phase", which matches spec's convergent-racy-write contract.
func (d *DisjointSet) Same(x, y int32) bool {
	return d.Find(x) == d.Find(y)
}

// Union merges the components of x and y. Returns true if this call
// performed the merge, false if x and y were already in the same
// component (or another concurrent Union already merged them first).
func (d *DisjointSet) Union(x, y int32) bool {
	for {
		rx, ry := d.Find(x), d.Find(y)
		if rx == ry {
			return false
		}

		rankX, rankY := d.rank[rx].Load(), d.rank[ry].Load()
		if rankX < rankY {
			rx, ry = ry, rx
			rankX, rankY = rankY, rankX
		}

		// Attach the lower (or equal) rank root under the higher one.
		if !d.parent[ry].CompareAndSwap(ry, rx) {
			// Lost the race: ry's parent moved under us, retry from find.
			continue
		}
		if rankX == rankY {
			d.rank[rx].CompareAndSwap(rankX, rankX+1)
		}
		return true
	}
}
