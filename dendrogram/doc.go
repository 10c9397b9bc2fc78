// Package dendrogram accumulates the N−1 merge records produced by a
// clustering run, assigns the non-leaf cluster labels in merge order, and
// applies two post-processing passes: per-step label canonicalization
// (enforced at recording time, so it is really just an invariant this
// package never violates) and the optional monotonic reordering used for
// the non-reducible methods (centroid, median).
package dendrogram
