package hclust

import "errors"

// Sentinel errors returned by Linkage.
var (
	// ErrTooFewObservations indicates n < 0 was supplied.
	ErrTooFewObservations = errors.New("hclust: observation count must be >= 0")
)
