package diversity

import (
	"fmt"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
)

// Window specifies a square spatial neighborhood of odd side length
// centered on the target cell.
type Window struct {
	Size int
}

// Validate rejects even and non-positive sizes.
func (w Window) Validate() error {
	if w.Size <= 0 || w.Size%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrWindowSize, w.Size)
	}
	return nil
}

// Radius is the number of cells the window extends from its center.
func (w Window) Radius() int {
	return (w.Size - 1) / 2
}

// reflectIndex mirrors an out-of-range index back across the nearest edge
// pixel (index -1 resolves to 1, index n to n-2), repeating until it
// lands in [0, n). A 1-wide axis always resolves to 0.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}

// appendSpatialWindow appends the Size*Size values of the reflected
// square neighborhood around (row, col) to dst and returns it. Border
// cells yield full-size windows.
func appendSpatialWindow(dst []int, s grid.Slice, row, col int, win Window) []int {
	height, width := s.Dims()
	r := win.Radius()
	for di := -r; di <= r; di++ {
		src := s[reflectIndex(row+di, height)]
		for dj := -r; dj <= r; dj++ {
			dst = append(dst, src[reflectIndex(col+dj, width)])
		}
	}
	return dst
}

// appendTemporalWindow appends the T values at (row, col) across the full
// time axis. No spatial radius and no padding apply.
func appendTemporalWindow(dst []int, c grid.Cube, row, col int) []int {
	for _, s := range c {
		dst = append(dst, s[row][col])
	}
	return dst
}

// appendCubeWindow appends the T*Size*Size values pooling the reflected
// spatial neighborhood of (row, col) over every time step. The time axis
// is never reflected.
func appendCubeWindow(dst []int, c grid.Cube, row, col int, win Window) []int {
	for _, s := range c {
		dst = appendSpatialWindow(dst, s, row, col, win)
	}
	return dst
}
