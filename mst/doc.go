// Package mst implements the minimum-spanning-tree shortcut for single
// linkage: on a complete graph whose edge weights are the dissimilarities
// in a condensed.Matrix, the single-linkage dendrogram is exactly the
// sequence of edges of a minimum spanning tree processed in increasing
// weight order.
//
// The tree is grown with a heap-based Prim sweep: a container/heap
// min-heap of candidate edges, using a local candidate{from, to, weight}
// struct since the condensed matrix has no graph type to point edges at.
// Turning the raw MST into a dendrogram sorts the N-1 MST edges by weight
// and merges them through a union-find, with int slot arrays for the
// parent/rank/label/size bookkeeping.
package mst
