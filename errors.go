package pyplanetarium

import "errors"

// Package-level sentinel errors. Algorithms return these directly or wrap
// them with fmt.Errorf("...: %w", ...); callers match with errors.Is.

var (
	// ErrArgumentShape is returned by a matrix-literal constructor when the
	// supplied rows do not form a well-formed rectangular 2x2 or 2x3 matrix,
	// and by NewWindow/NewWindowRect when a width or height is not positive.
	ErrArgumentShape = errors.New("pyplanetarium: argument has invalid shape")

	// ErrDimension is returned by NewCanvas when width or height is not a
	// positive integer.
	ErrDimension = errors.New("pyplanetarium: canvas dimensions must be positive")

	// ErrExport is returned when a codec fails to produce an image.
	ErrExport = errors.New("pyplanetarium: image export failed")
)
