// Package pqcore implements a generic priority-queue clustering algorithm,
// used for the two non-reducible linkage methods (centroid, median) where
// the NN-chain algorithm's amortization argument does not hold: a merge
// can make a previously-distant cluster the new nearest neighbor of some
// third cluster, so no stack-based shortcut is available.
//
// Each live slot caches its current nearest neighbor; a min-heap keyed by
// that cached distance drives a stale-entry-discard loop (container/heap)
// rather than a full rebuild on every merge.
package pqcore
