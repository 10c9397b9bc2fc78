// Package condensed provides the flat, upper-triangular storage used by the
// clustering core: an N×N dissimilarity matrix serialized without its
// diagonal or lower triangle into a single slice of length N·(N−1)/2.
//
// Matrix is generic over the numeric type (float32 or float64, see Float)
// so that both single- and double-precision callers share the exact same
// indexing and update code. The matrix is never allocated by this package —
// callers own the backing slice and its lifetime.
package condensed
