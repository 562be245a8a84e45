package cartesian

import "errors"

// Domain errors for render operations.
var (
	// ErrInvalidInterval indicates a grid spacing that is zero, negative or not finite.
	ErrInvalidInterval = errors.New("cartesian: grid interval must be positive and finite")
)
