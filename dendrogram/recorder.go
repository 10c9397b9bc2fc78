package dendrogram

import (
	"fmt"
	"math"
)

// Recorder accumulates merge steps in chronological order and assigns each
// one the next non-leaf label: the k-th merge, 1-indexed, produces label
// N-1+k.
//
// The zero value is not usable; construct with NewRecorder.
type Recorder[T Float] struct {
	n     int
	steps []Step[T]
}

// NewRecorder preallocates room for the max(0, n-1) steps a run of n
// observations will produce.
func NewRecorder[T Float](n int) *Recorder[T] {
	capacity := 0
	if n > 1 {
		capacity = n - 1
	}

	return &Recorder[T]{n: n, steps: make([]Step[T], 0, capacity)}
}

// Record appends a merge of labels a and b at dissimilarity delta, producing
// a cluster of size observations. a and b are canonicalized so the stored
// step always has Cluster1 < Cluster2 (the algorithms already pass a < b;
// this is a defensive invariant, not a behavior callers should rely on to
// skip sorting their own inputs).
//
// Record panics if called more than n-1 times or with a == b — both
// indicate an internal defect in the calling algorithm, not a data error,
// and are never worth surfacing as a returned error.
//
// Returns the label assigned to the newly merged cluster.
func (r *Recorder[T]) Record(a, b int, delta T, size int) int {
	if a == b {
		panic("dendrogram: Record called with a == b")
	}
	if len(r.steps) >= r.n-1 && r.n > 0 {
		panic(fmt.Sprintf("dendrogram: Record called beyond the expected %d merges", r.n-1))
	}
	if a > b {
		a, b = b, a
	}
	label := r.n + len(r.steps)
	r.steps = append(r.steps, Step[T]{Cluster1: a, Cluster2: b, Dissimilarity: delta, Size: size})

	return label
}

// Finish closes out recording and returns the Dendrogram. If squared is
// true, every recorded dissimilarity is replaced by its square root before
// being exposed — the one point in the pipeline where Ward/centroid/median
// leave squared-distance space.
func (r *Recorder[T]) Finish(squared bool) *Dendrogram[T] {
	if squared {
		for i := range r.steps {
			r.steps[i].Dissimilarity = sqrtT(r.steps[i].Dissimilarity)
		}
	}

	return &Dendrogram[T]{observations: r.n, steps: r.steps}
}

// sqrtT unsquares a single recorded dissimilarity. Floating-point
// cancellation in the update formulas (Ward, centroid, and median all
// subtract a term) can occasionally push a value that should be ~0
// slightly negative; clamp rather than emit NaN.
func sqrtT[T Float](v T) T {
	f := float64(v)
	if f < 0 {
		f = 0
	}

	return T(math.Sqrt(f))
}
