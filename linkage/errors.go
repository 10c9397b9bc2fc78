package linkage

import "errors"

// ErrUnknownMethod indicates a method name or value outside the seven
// supported linkage criteria.
var ErrUnknownMethod = errors.New("linkage: unknown method")
