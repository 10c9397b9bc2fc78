// Package hclust is an agglomerative hierarchical clustering engine built
// around an in-place condensed dissimilarity matrix.
//
// What is hclust?
//
//	A small, dependency-grounded engine that brings together:
//
//	  • Seven linkage criteria: single, complete, average, weighted, Ward,
//	    centroid, median
//	  • The NN-chain algorithm for the five reducible methods, with a Prim/
//	    Kruskal-style MST shortcut for single linkage
//	  • A generic stale-entry priority-queue core for the two non-reducible
//	    methods, centroid and median
//
// Everything is organized under focused subpackages:
//
//	condensed/  — the triangular dissimilarity-matrix view and its indexing
//	linkage/    — the seven update formulas and the Method enum
//	activeset/  — the live-cluster doubly linked list
//	dendrogram/ — merge-step recording and the optional monotonic resort
//	nnchain/    — the NN-chain core
//	pqcore/     — the generic priority-queue core
//	mst/        — the MST shortcut for single linkage
//	hclustmat/  — optional gonum mat.SymDense interop
//
// Linkage is the one function most callers need:
//
//	d, err := hclust.Linkage(data, n, hclust.Ward)
//
// See the package-level Linkage doc for the full dispatch and options
// story.
package hclust
