// Package linkage defines the seven classical linkage criteria and their
// closed-form distance-update rules.
//
// Each method expresses d(ab, x) — the dissimilarity between a freshly
// merged cluster ab and some other live cluster x — as a function of the
// three pre-merge dissimilarities d(a,b), d(a,x), d(b,x) and the three
// cluster sizes |a|, |b|, |x|. Ward, centroid, and median are evaluated in
// squared-distance space (see SquaredStorage) so the inner loop never calls
// sqrt; single, complete, average, and weighted operate directly on raw
// dissimilarities.
package linkage
