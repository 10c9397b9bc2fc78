package linkage

import "math"

// Update computes d(ab, x) given the pre-merge dissimilarities d(a,b),
// d(a,x), d(b,x) and the cluster sizes |a|, |b|, |x|.
//
// For Ward, Centroid, and Median, the three input dissimilarities and the
// returned value are all in squared-distance space (see
// Method.SquaredStorage); the formulas below are exactly the algebraic
// simplification of the textbook (unsquared) formulas once the sqrt is
// deferred to reporting time, so no sqrt is ever evaluated here.
//
// Complexity: O(1).
func Update[T Float](m Method, dab, dax, dbx T, sa, sb, sx int) T {
	switch m {
	case Single:
		if dax < dbx {
			return dax
		}
		return dbx
	case Complete:
		if dax > dbx {
			return dax
		}
		return dbx
	case Average:
		fa, fb := T(sa), T(sb)
		return (fa*dax + fb*dbx) / (fa + fb)
	case Weighted:
		return (dax + dbx) / 2
	case Ward:
		fa, fb, fx := T(sa), T(sb), T(sx)
		return ((fa+fx)*dax + (fb+fx)*dbx - fx*dab) / (fa + fb + fx)
	case Centroid:
		fa, fb := T(sa), T(sb)
		return (fa*dax+fb*dbx)/(fa+fb) - (fa*fb*dab)/((fa+fb)*(fa+fb))
	case Median:
		return dax/2 + dbx/2 - dab/4
	default:
		panic("linkage: Update called with unknown method")
	}
}

// Float mirrors condensed.Float. It is redeclared here, rather than
// imported, so that linkage has no dependency on condensed at all: the
// update formulas only ever touch scalars, never the matrix itself.
type Float interface {
	~float32 | ~float64
}

// Sqrt takes the square root of a squared-storage dissimilarity, the inverse
// of the squaring Ward/Centroid/Median use during clustering. The engine's
// own reporting-time square root is taken in dendrogram.Recorder.Finish,
// not through this function.
func Sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}
