package condensed

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the checked constructor path (NewMatrix).
// The unchecked path (NewMatrixUnsafe) never returns these — callers asking
// for zero-cost construction accept undefined behavior on malformed input,
// which is the tradeoff the engine's hot loops need.
var (
	// ErrNegativeN indicates a negative observation count was supplied.
	ErrNegativeN = errors.New("condensed: observation count must be >= 0")

	// ErrLengthMismatch indicates the backing slice length does not equal
	// N*(N-1)/2 for the supplied N.
	ErrLengthMismatch = errors.New("condensed: data length does not match N*(N-1)/2")

	// ErrNonFinite indicates a NaN or ±Inf entry was found while validating.
	ErrNonFinite = errors.New("condensed: non-finite entry")

	// ErrIndexOutOfRange indicates i or j fell outside [0, N) or i == j.
	ErrIndexOutOfRange = errors.New("condensed: index out of range")
)

// condensedErrorf wraps a sentinel with the offending operation and indices
// for context, so a failure is traceable without %w-wrapping the sentinel
// itself at every call site.
func condensedErrorf(op string, i, j int, err error) error {
	return fmt.Errorf("condensed.%s(%d,%d): %w", op, i, j, err)
}
