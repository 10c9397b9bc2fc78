package dendrogram

import "container/heap"

// SortByDissimilarity returns a new Dendrogram with the same topology but
// with steps reordered to be non-decreasing in dissimilarity wherever the
// merge dependency DAG allows it — a best-effort convention for the
// non-reducible methods, whose raw merge order can otherwise include
// inversions. The receiver is left unmodified.
//
// Algorithm: a step can be emitted only once both of its input labels are
// either original observations or already-emitted merged clusters. Among
// all currently emittable steps, the one with the smallest dissimilarity
// is emitted next (ties broken by original chronological order, for
// determinism) — a greedy topological sort keyed by dissimilarity. Labels
// are reassigned to match the new emission order, exactly as the original
// recording assigns them in chronological order.
//
// Complexity: O(N log N).
func (d *Dendrogram[T]) SortByDissimilarity() *Dendrogram[T] {
	n := d.observations
	steps := d.steps
	m := len(steps)
	if m == 0 {
		return &Dendrogram[T]{observations: n, steps: nil}
	}

	// pending[i] counts how many of step i's two inputs are non-leaf
	// labels not yet emitted in the new order.
	pending := make([]int, m)
	// consumer[label] is the step index that takes label as an input, for
	// labels >= n (every non-leaf label is consumed at most once, or never
	// if it is the root of the final tree).
	consumer := make(map[int]int, m)

	for i, s := range steps {
		for _, in := range [2]int{s.Cluster1, s.Cluster2} {
			if in >= n {
				pending[i]++
				consumer[in] = i
			}
		}
	}

	newLabel := make(map[int]int, m) // old label -> new label, non-leaf only
	pq := &readyQueue[T]{}
	for i, s := range steps {
		if pending[i] == 0 {
			heap.Push(pq, readyItem[T]{index: i, delta: s.Dissimilarity})
		}
	}

	out := make([]Step[T], 0, m)
	for pq.Len() > 0 {
		item := heap.Pop(pq).(readyItem[T])
		i := item.index
		s := steps[i]

		c1, c2 := remapLabel(s.Cluster1, n, newLabel), remapLabel(s.Cluster2, n, newLabel)
		if c1 > c2 {
			c1, c2 = c2, c1
		}
		out = append(out, Step[T]{Cluster1: c1, Cluster2: c2, Dissimilarity: s.Dissimilarity, Size: s.Size})

		oldLabel := n + i
		newLabel[oldLabel] = n + len(out) - 1

		if consumerIdx, ok := consumer[oldLabel]; ok {
			pending[consumerIdx]--
			if pending[consumerIdx] == 0 {
				heap.Push(pq, readyItem[T]{index: consumerIdx, delta: steps[consumerIdx].Dissimilarity})
			}
		}
	}

	return &Dendrogram[T]{observations: n, steps: out}
}

// remapLabel translates an old label to its new label. Leaf labels (< n)
// are never remapped; non-leaf labels must already be present in newLabel
// by construction (SortByDissimilarity only emits a step once both of its
// non-leaf inputs have themselves been emitted).
func remapLabel(old, n int, newLabel map[int]int) int {
	if old < n {
		return old
	}
	nl, ok := newLabel[old]
	if !ok {
		panic("dendrogram: internal label dependency violated during sort")
	}

	return nl
}

// readyItem is a step index waiting to be emitted, keyed by dissimilarity
// with chronological index as the tie-break for determinism.
type readyItem[T Float] struct {
	index int
	delta T
}

// readyQueue is a container/heap min-heap over readyItem, keyed by
// dissimilarity with chronological index as the tie-break.
type readyQueue[T Float] []readyItem[T]

func (q readyQueue[T]) Len() int { return len(q) }

func (q readyQueue[T]) Less(i, j int) bool {
	if q[i].delta != q[j].delta {
		return q[i].delta < q[j].delta
	}
	return q[i].index < q[j].index
}

func (q readyQueue[T]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue[T]) Push(x interface{}) {
	*q = append(*q, x.(readyItem[T]))
}

func (q *readyQueue[T]) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
