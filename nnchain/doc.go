// Package nnchain implements the nearest-neighbor-chain algorithm: an
// O(N²)-time, O(N²)-memory reduction of agglomerative clustering for the
// reducible linkage methods (single, complete, average, weighted, Ward).
// A stack of cluster slots is maintained such that each element's
// nearest live neighbor is the element above it on the stack; whenever two
// consecutive elements are mutual nearest neighbors, they are merged and
// popped, which is what amortizes the O(N) per-merge nearest-neighbor
// search down to O(N²) overall instead of O(N³).
//
// The algorithm operates entirely in "slot" space [0, N) — the same bounded
// addressing the condensed matrix and active set use — and leaves the
// translation from slot to externally reported cluster label to the
// dendrogram package's Recorder.
package nnchain
