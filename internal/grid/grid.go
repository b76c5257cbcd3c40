// Package grid holds the in-memory raster data model shared by the
// acquisition pipeline and the diversity engine: integer-quantized slices
// and cubes on the input side, float64 score maps on the output side.
package grid

// Slice is one H×W time step of quantized index values, indexed [row][col].
type Slice [][]int

// Cube is a T×H×W stack of slices, indexed [time][row][col].
type Cube []Slice

// Map is an H×W grid of floating-point scores, indexed [row][col].
type Map [][]float64

// Mask marks which cells of a slice are kept. A false cell is zeroed
// before any diversity computation.
type Mask [][]bool

// Dims returns the height and width of the slice. A nil slice is 0×0.
func (s Slice) Dims() (height, width int) {
	if len(s) == 0 {
		return 0, 0
	}
	return len(s), len(s[0])
}

// Validate rejects empty and non-rectangular slices.
func (s Slice) Validate() error {
	if len(s) == 0 || len(s[0]) == 0 {
		return ErrEmptyGrid
	}
	width := len(s[0])
	for _, row := range s {
		if len(row) != width {
			return ErrNonRectangular
		}
	}
	return nil
}

// Dims returns the depth, height and width of the cube. An empty cube is
// 0×0×0.
func (c Cube) Dims() (depth, height, width int) {
	if len(c) == 0 {
		return 0, 0, 0
	}
	h, w := c[0].Dims()
	return len(c), h, w
}

// Validate rejects empty cubes, cubes with malformed slices, and cubes
// whose slices do not all share the same dimensions.
func (c Cube) Validate() error {
	if len(c) == 0 {
		return ErrEmptyGrid
	}
	h, w := c[0].Dims()
	for _, s := range c {
		if err := s.Validate(); err != nil {
			return err
		}
		sh, sw := s.Dims()
		if sh != h || sw != w {
			return ErrDimensionMismatch
		}
	}
	return nil
}

// NewMap allocates a zeroed H×W score map.
func NewMap(height, width int) Map {
	m := make(Map, height)
	for i := range m {
		m[i] = make([]float64, width)
	}
	return m
}

// Stack assembles per-date slices into a cube, oldest first. Every slice
// must be valid and share the dimensions of the first.
func Stack(slices []Slice) (Cube, error) {
	if len(slices) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := slices[0].Dims()
	for _, s := range slices {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		sh, sw := s.Dims()
		if sh != h || sw != w {
			return nil, ErrDimensionMismatch
		}
	}
	return Cube(slices), nil
}
