package condensed

// Index computes the flat offset for the unordered pair {i, j}, i != j.
// It is symmetric: Index(i, j) == Index(j, i). This is the hottest function
// in the engine; it is written to avoid integer division and to inline
// cleanly.
//
// Complexity: O(1).
func (m *Matrix[T]) Index(i, j int) int {
	if i > j {
		i, j = j, i
	}
	n := m.n
	// n*i - i*(i+1)/2 + (j-i-1), rearranged to keep operations cheap and
	// avoid recomputing i*(i+1)/2 via division: i*(i+1) is always even, so
	// >>1 is exact.
	return n*i - ((i*(i+1))>>1) + (j - i - 1)
}

// At returns the current dissimilarity between live or dead labels i and j.
// Behavior is defined only while both slots hold meaningful data: dead
// slots are never read by the core itself, but At does not police that —
// callers iterating by hand must consult the active set.
//
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) T {
	return m.data[m.Index(i, j)]
}

// Set overwrites the dissimilarity for pair {i, j}.
//
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, v T) {
	m.data[m.Index(i, j)] = v
}

// CheckedAt is the bounds-checked counterpart of At, for call sites outside
// the hot loop (e.g. interop, tests) that prefer an error to undefined
// behavior on a bad index.
func (m *Matrix[T]) CheckedAt(i, j int) (T, error) {
	if i < 0 || j < 0 || i >= m.n || j >= m.n || i == j {
		var zero T
		return zero, condensedErrorf("CheckedAt", i, j, ErrIndexOutOfRange)
	}
	return m.At(i, j), nil
}
