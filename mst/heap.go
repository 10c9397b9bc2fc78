package mst

import "github.com/katalvlaran/hclust/condensed"

// candidate is one not-yet-visited slot reachable from the growing tree,
// with the weight of its cheapest known connecting edge and the tree slot
// that offers it. A local struct rather than a graph-library edge type,
// since the condensed matrix has no graph to point edges at.
type candidate[T condensed.Float] struct {
	from, to int
	weight   T
}

// candidatePQ is a container/heap min-heap of candidate, ordered by weight
// with the target slot as a deterministic tie-break.
type candidatePQ[T condensed.Float] []candidate[T]

func (pq candidatePQ[T]) Len() int { return len(pq) }

func (pq candidatePQ[T]) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].to < pq[j].to
}

func (pq candidatePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ[T]) Push(x interface{}) {
	*pq = append(*pq, x.(candidate[T]))
}

func (pq *candidatePQ[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
