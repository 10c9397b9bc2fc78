package hclust

import (
	"github.com/katalvlaran/hclust/condensed"
	"github.com/katalvlaran/hclust/dendrogram"
	"github.com/katalvlaran/hclust/linkage"
	"github.com/katalvlaran/hclust/mst"
	"github.com/katalvlaran/hclust/nnchain"
	"github.com/katalvlaran/hclust/pqcore"
)

// Re-exported so callers need only import this one package for the common
// path.
const (
	Single   = linkage.Single
	Complete = linkage.Complete
	Average  = linkage.Average
	Weighted = linkage.Weighted
	Ward     = linkage.Ward
	Centroid = linkage.Centroid
	Median   = linkage.Median
)

// Method is an alias for linkage.Method, re-exported for callers who don't
// want to import the linkage package directly.
type Method = linkage.Method

// Dendrogram and Step are aliased from the dendrogram package for the same
// reason.
type Dendrogram[T condensed.Float] = dendrogram.Dendrogram[T]
type Step[T condensed.Float] = dendrogram.Step[T]

// Linkage clusters n observations given as a condensed (upper-triangular,
// no-diagonal) dissimilarity matrix under method, and returns the
// completed dendrogram.
//
// data must have length n*(n-1)/2. With WithChecked(), data is validated
// for length and finiteness before clustering begins (condensed.NewMatrix);
// otherwise construction is zero-cost and malformed input is undefined
// behavior (condensed.NewMatrixUnsafe).
//
// data is mutated in place by the clustering core; callers must not rely
// on its contents after Linkage returns.
//
// Dispatch: single linkage runs through the MST shortcut unless
// WithForceNNChain() is given, complete/average/weighted/Ward run through
// the NN-chain algorithm, and centroid/median run through the generic
// priority-queue core, since they are not reducible and the NN-chain's
// amortization argument does not hold for them. Ward, centroid, and
// median internally cluster in squared-distance space and take a single
// square root at reporting time.
func Linkage[T condensed.Float](data []T, n int, method linkage.Method, opts ...Option) (*dendrogram.Dendrogram[T], error) {
	if n < 0 {
		return nil, ErrTooFewObservations
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var m *condensed.Matrix[T]
	if o.Checked {
		checked, err := condensed.NewMatrix(data, n)
		if err != nil {
			return nil, err
		}
		m = checked
	} else {
		m = condensed.NewMatrixUnsafe(data, n)
	}

	if method.SquaredStorage() {
		squareInPlace(m)
	}

	var d *dendrogram.Dendrogram[T]
	switch {
	case method == linkage.Single && !o.ForceNNChain:
		d = mst.Run(m)
	case method.Reducible():
		d = nnchain.Run(m, method)
	default:
		d = pqcore.Run(m, method)
	}

	if o.SortedSteps {
		d = d.SortByDissimilarity()
	}

	return d, nil
}

// squareInPlace replaces every entry of m with its square, the one-time
// up-front transform Ward/centroid/median need before clustering begins
// in squared-distance space; the sqrt back out happens once, at reporting
// time, inside dendrogram.Recorder.Finish.
func squareInPlace[T condensed.Float](m *condensed.Matrix[T]) {
	data := m.Data()
	for i, v := range data {
		data[i] = v * v
	}
}
