package pcmconv

import "errors"

// Common errors returned by the conversion engine.
var (
	// ErrInvalidConfig indicates invalid construction parameters.
	ErrInvalidConfig = errors.New("invalid converter configuration")

	// ErrInvalidInput indicates a nil or undersized caller buffer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedLayout indicates a channel redistribution between
	// nonstandard channel widths with no explicit matrix.
	ErrUnsupportedLayout = errors.New("unsupported channel layout")
)
