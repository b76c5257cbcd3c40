package diversity

import "errors"

var (
	// ErrInvalidMeasure is returned for a measure kind outside the
	// supported set, or an unparseable measure name.
	ErrInvalidMeasure = errors.New("diversity: invalid measure")

	// ErrUndefinedParameter is returned for Renyi order alpha = 1, where
	// the formula divides by zero. The Shannon limit is never substituted.
	ErrUndefinedParameter = errors.New("diversity: renyi entropy is undefined for alpha = 1")

	// ErrWindowSize is returned for an even or non-positive window size.
	ErrWindowSize = errors.New("diversity: window size must be a positive odd integer")

	// ErrTemporalDepth is returned when a temporal reduction is requested
	// on a cube with fewer than two time steps.
	ErrTemporalDepth = errors.New("diversity: temporal reduction requires at least two time steps")
)
