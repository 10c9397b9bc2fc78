package pqcore

// item is a candidate (slot, cached-nearest-neighbor-distance) pair on the
// priority queue. The neighbor slot itself is not stored here — it lives in
// the nn[] cache maintained by Run — so an item can go stale simply by that
// cache changing underneath it; staleness is detected, not prevented.
type item[T any] struct {
	slot int
	dist T
}

// pqHeap is a container/heap min-heap over item, keyed by distance with
// slot as a deterministic tie-break.
type pqHeap[T interface {
	~float32 | ~float64
}] []item[T]

func (h pqHeap[T]) Len() int { return len(h) }

func (h pqHeap[T]) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].slot < h[j].slot
}

func (h pqHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pqHeap[T]) Push(x interface{}) {
	*h = append(*h, x.(item[T]))
}

func (h *pqHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
