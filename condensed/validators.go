package condensed

import "math"

// expectedLen returns N*(N-1)/2 for the given N, or -1 if n < 0.
func expectedLen(n int) int {
	if n < 0 {
		return -1
	}
	return n * (n - 1) / 2
}

// validateFinite scans data for NaN or ±Inf entries. Only ever called from
// the checked construction path — the unchecked path trusts the caller,
// because this is an O(N²) pass the inner loop cannot afford to repeat.
func validateFinite[T Float](data []T) error {
	for _, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrNonFinite
		}
	}
	return nil
}
