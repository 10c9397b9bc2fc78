package mst

import "github.com/katalvlaran/hclust/condensed"

// edge is one minimum-spanning-tree edge, slot-addressed rather than
// label-addressed: u and v are condensed-matrix slots, not dendrogram
// cluster labels.
type edge[T condensed.Float] struct {
	u, v   int
	weight T
}

// dsu is a disjoint-set-union over the n leaf slots, keyed by int slot,
// additionally tracking the current dendrogram label and cluster size at
// each root so that processing MST edges in weight order can hand them
// straight to dendrogram.Recorder.
type dsu struct {
	parent []int
	rank   []int
	label  []int
	size   []int
}

func newDSU(n int) *dsu {
	d := &dsu{
		parent: make([]int, n),
		rank:   make([]int, n),
		label:  make([]int, n),
		size:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.label[i] = i
		d.size[i] = 1
	}

	return d
}

// find returns the root slot of t's set, compressing the path as it walks.
func (d *dsu) find(t int) int {
	for d.parent[t] != t {
		d.parent[t] = d.parent[d.parent[t]]
		t = d.parent[t]
	}

	return t
}

// union merges the sets rooted at the roots of a and b, attaching the
// lower-rank root under the higher-rank one, and returns the new root.
func (d *dsu) union(a, b int) int {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		panic("mst: union called on slots already in the same set")
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}

	return ra
}
