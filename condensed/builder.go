package condensed

// NewMatrix constructs a checked Matrix view over data, validating that
// len(data) == N*(N-1)/2 and that every entry is finite.
//
// Stage 1 (Validate): N >= 0, length, finiteness.
// Stage 2 (Finalize): wrap data with no copy.
//
// This is the fail-fast path. Validation happens once, here; the returned
// Matrix is the same type NewMatrixUnsafe builds, so the hot loops pay
// nothing further for it.
//
// Complexity: O(N²) for the finiteness scan; O(1) otherwise.
func NewMatrix[T Float](data []T, n int) (*Matrix[T], error) {
	if n < 0 {
		return nil, ErrNegativeN
	}
	want := expectedLen(n)
	if len(data) != want {
		return nil, ErrLengthMismatch
	}
	if err := validateFinite(data); err != nil {
		return nil, err
	}

	return &Matrix[T]{n: n, data: data}, nil
}

// NewMatrixUnsafe constructs a Matrix view with no validation whatsoever.
// Behavior is undefined if len(data) != N*(N-1)/2 or if data contains
// non-finite entries. This is what Linkage uses when WithChecked() is not
// given; with WithChecked() it uses NewMatrix instead.
//
// Complexity: O(1).
func NewMatrixUnsafe[T Float](data []T, n int) *Matrix[T] {
	return &Matrix[T]{n: n, data: data}
}
