package hclust

// Options configures a single Linkage call: a plain struct with a
// package-level DefaultOptions(), mutated through Option closures rather
// than exposed directly.
type Options struct {
	// Checked, when true, routes construction of the internal condensed
	// matrix through condensed.NewMatrix (validates length and
	// finiteness) instead of condensed.NewMatrixUnsafe.
	Checked bool

	// ForceNNChain, when true, routes single linkage through nnchain.Run
	// instead of the MST shortcut — an escape hatch for callers who want
	// NN-chain's rounding behavior, or for cross-validating the two code
	// paths against each other.
	ForceNNChain bool

	// SortedSteps, when true, applies Dendrogram.SortByDissimilarity
	// before returning, for centroid/median's optional monotonic
	// reordering.
	SortedSteps bool
}

// Option configures Options. All Option functions modify the pointed
// Options in place.
type Option func(*Options)

// DefaultOptions returns the zero-cost, zero-reordering defaults: unchecked
// construction, MST shortcut for single linkage, no post-hoc sorting.
func DefaultOptions() Options {
	return Options{
		Checked:      false,
		ForceNNChain: false,
		SortedSteps:  false,
	}
}

// WithChecked enables input validation (length, finiteness) on the
// supplied condensed data before clustering begins.
func WithChecked() Option {
	return func(o *Options) {
		o.Checked = true
	}
}

// WithForceNNChain routes single linkage through nnchain.Run rather than
// the MST shortcut.
func WithForceNNChain() Option {
	return func(o *Options) {
		o.ForceNNChain = true
	}
}

// WithSortedSteps applies the monotonic-reordering post-pass to the
// returned dendrogram before Linkage returns it.
func WithSortedSteps() Option {
	return func(o *Options) {
		o.SortedSteps = true
	}
}
