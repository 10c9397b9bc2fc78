package mst

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/hclust/condensed"
	"github.com/katalvlaran/hclust/dendrogram"
)

// Run clusters the n observations held in m under single linkage via the
// minimum-spanning-tree shortcut. m is read but not mutated: unlike
// nnchain and pqcore, this algorithm never needs to rewrite
// dissimilarities in place, since a single-linkage merge never changes the
// distance from any third cluster to the merged one (the new distance is
// just the smaller of the two old ones, already present verbatim
// somewhere in the matrix).
//
// Complexity: O(N² log N) time and O(N²) auxiliary memory: the heap-based
// Prim sweep pushes one candidate per (tree slot, non-tree slot) pair, so
// the heap can hold up to N²/2 entries. It does not reach the O(N²) time of
// an array-based Prim sweep.
func Run[T condensed.Float](m *condensed.Matrix[T]) *dendrogram.Dendrogram[T] {
	n := m.N()
	rec := dendrogram.NewRecorder[T](n)
	if n < 2 {
		return rec.Finish(false)
	}

	edges := prim(m)

	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].weight != edges[j].weight {
			return edges[i].weight < edges[j].weight
		}
		au, bu := edges[i].u, edges[i].v
		if bu < au {
			au, bu = bu, au
		}
		cu, du := edges[j].u, edges[j].v
		if du < cu {
			cu, du = du, cu
		}
		if au != cu {
			return au < cu
		}
		return bu < du
	})

	d := newDSU(n)
	for _, e := range edges {
		ra, rb := d.find(e.u), d.find(e.v)
		la, lb := d.label[ra], d.label[rb]
		newSize := d.size[ra] + d.size[rb]
		newLabel := rec.Record(la, lb, e.weight, newSize)

		root := d.union(ra, rb)
		d.label[root] = newLabel
		d.size[root] = newSize
	}

	return rec.Finish(false)
}

// prim grows a minimum spanning tree outward from slot 0 using a
// container/heap min-heap of candidate edges over the condensed matrix's
// implicit complete graph.
func prim[T condensed.Float](m *condensed.Matrix[T]) []edge[T] {
	n := m.N()
	inTree := make([]bool, n)
	inTree[0] = true

	pq := &candidatePQ[T]{}
	heap.Init(pq)
	for x := 1; x < n; x++ {
		heap.Push(pq, candidate[T]{from: 0, to: x, weight: m.At(0, x)})
	}

	edges := make([]edge[T], 0, n-1)
	for len(edges) < n-1 {
		c := heap.Pop(pq).(candidate[T])
		if inTree[c.to] {
			continue
		}
		edges = append(edges, edge[T]{u: c.from, v: c.to, weight: c.weight})
		inTree[c.to] = true

		for x := 0; x < n; x++ {
			if inTree[x] {
				continue
			}
			heap.Push(pq, candidate[T]{from: c.to, to: x, weight: m.At(c.to, x)})
		}
	}

	return edges
}
