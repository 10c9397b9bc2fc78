package hclustmat

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hclust/condensed"
)

// ToSymDense materializes m as a dense N×N symmetric matrix, with zeros on
// the diagonal. The result is an independent copy; mutating it does not
// affect m.
func ToSymDense(m *condensed.Matrix[float64]) *mat.SymDense {
	n := m.N()
	dense := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dense.SetSym(i, j, m.At(i, j))
		}
	}

	return dense
}

// FromSymDense builds a condensed.Matrix from the upper triangle of a
// gonum SymDense, discarding the diagonal. Returns an error if sym is nil
// or any off-diagonal entry is non-finite (condensed.ErrNonFinite via
// condensed.NewMatrix's validation).
func FromSymDense(sym *mat.SymDense) (*condensed.Matrix[float64], error) {
	if sym == nil {
		return nil, errors.New("hclustmat: FromSymDense called with nil SymDense")
	}
	n := sym.SymmetricDim()
	data := make([]float64, n*(n-1)/2)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			data[k] = sym.At(i, j)
			k++
		}
	}

	return condensed.NewMatrix(data, n)
}
