package grid

import "errors"

var (
	// ErrEmptyGrid is returned when a slice or cube has no rows, no
	// columns, or no time steps.
	ErrEmptyGrid = errors.New("grid: empty grid")

	// ErrNonRectangular is returned when rows of a slice (or slices of a
	// cube) do not all share the same length.
	ErrNonRectangular = errors.New("grid: non-rectangular grid")

	// ErrDimensionMismatch is returned when two grids that must share a
	// shape do not, e.g. a mask applied to a slice of different size.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)
