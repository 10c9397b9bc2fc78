package pqcore

import (
	"container/heap"

	"github.com/katalvlaran/hclust/activeset"
	"github.com/katalvlaran/hclust/condensed"
	"github.com/katalvlaran/hclust/dendrogram"
	"github.com/katalvlaran/hclust/linkage"
)

// Run clusters the n observations held in m using a generic priority-queue
// algorithm, for the non-reducible methods centroid and median. m is
// mutated in place.
//
// Complexity: O(N²) memory, O(N² log N) time worst case.
func Run[T condensed.Float](m *condensed.Matrix[T], method linkage.Method) *dendrogram.Dendrogram[T] {
	n := m.N()
	rec := dendrogram.NewRecorder[T](n)
	if n < 2 {
		return rec.Finish(method.SquaredStorage())
	}

	active := activeset.New(n)
	sizes := make([]int, n)
	label := make([]int, n)
	nn := make([]int, n)
	for i := 0; i < n; i++ {
		sizes[i] = 1
		label[i] = i
	}

	pq := &pqHeap[T]{}
	heap.Init(pq)
	for x := active.First(); x != activeset.None; x = active.Successor(x) {
		neighbor, dist := nearest(m, active, x)
		nn[x] = neighbor
		heap.Push(pq, item[T]{slot: x, dist: dist})
	}

	for merges := 0; merges < n-1; merges++ {
		i, j := popValid(pq, active, nn, m)

		a, b := i, j
		if b < a {
			a, b = b, a
		}

		dab := m.At(a, b)
		oldSizeA, oldSizeB := sizes[a], sizes[b]
		newSize := oldSizeA + oldSizeB

		for x := active.First(); x != activeset.None; x = active.Successor(x) {
			if x == a || x == b {
				continue
			}
			dax := m.At(a, x)
			dbx := m.At(b, x)
			updated := linkage.Update(method, dab, dax, dbx, oldSizeA, oldSizeB, sizes[x])
			m.Set(a, x, updated)
		}

		newLabel := rec.Record(label[a], label[b], dab, newSize)
		label[a] = newLabel
		sizes[a] = newSize
		active.Remove(b)

		if merges == n-2 {
			// Last merge: no third cluster remains to refresh.
			break
		}

		newNNa, distA := nearest(m, active, a)
		nn[a] = newNNa
		heap.Push(pq, item[T]{slot: a, dist: distA})

		for x := active.First(); x != activeset.None; x = active.Successor(x) {
			if x == a {
				continue
			}
			if nn[x] == a || nn[x] == b || m.At(x, a) < m.At(x, nn[x]) {
				newNNx, distX := nearest(m, active, x)
				nn[x] = newNNx
				heap.Push(pq, item[T]{slot: x, dist: distX})
			}
		}
	}

	return rec.Finish(method.SquaredStorage())
}

// nearest finds the live neighbor of t minimizing m.At(t, x), breaking ties
// toward the smallest slot.
func nearest[T condensed.Float](m *condensed.Matrix[T], active *activeset.Set, t int) (argmin int, minVal T) {
	argmin = -1
	for x := active.First(); x != activeset.None; x = active.Successor(x) {
		if x == t {
			continue
		}
		v := m.At(t, x)
		if argmin == -1 || v < minVal {
			argmin, minVal = x, v
		}
	}
	if argmin == -1 {
		panic("pqcore: no nearest neighbor found among live slots")
	}

	return argmin, minVal
}

// popValid discards stale heap entries — an entry for slot i is stale
// unless i is live, nn[i] is live, and its cached distance still equals
// the current d(i, nn[i]) — and returns the live pair the top survivor
// represents.
func popValid[T condensed.Float](pq *pqHeap[T], active *activeset.Set, nn []int, m *condensed.Matrix[T]) (i, j int) {
	for {
		if pq.Len() == 0 {
			panic("pqcore: priority queue exhausted before N-1 merges completed")
		}
		top := heap.Pop(pq).(item[T])
		i = top.slot
		if !active.IsLive(i) {
			continue
		}
		j = nn[i]
		if !active.IsLive(j) {
			continue
		}
		if m.At(i, j) != top.dist {
			continue
		}

		return i, j
	}
}
