// Package hclustmat bridges the engine's condensed.Matrix[float64] storage
// and gonum.org/v1/gonum/mat.SymDense, so callers already working in
// gonum's dense-matrix ecosystem — computing a distance matrix with
// gonum/stat or gonum/mat, or wanting to print/plot one afterward — don't
// have to hand-roll the conversion.
//
// This package exists on a direct cue from the corpus: the standalone
// hierarchical-clustering reference consulted for this engine's design
// notes that a condensed distance matrix is awkward to inspect directly
// and recommends reaching for "a more general matrix library such as
// github.com/gonum/matrix/mat64" for that purpose. float64 only — gonum's
// mat package is not generic.
package hclustmat
