package grid

import "math"

// QuantizeFactor is the default scale applied to vegetation-index bands
// before rounding, so that values differing by less than 0.01 collapse
// into the same class.
const QuantizeFactor = 100

// Quantize discretizes a continuous band into integer classes by scaling
// and rounding to the nearest integer. Non-finite input cells (NaN, ±Inf,
// typically nodata) quantize to 0.
func Quantize(band [][]float64, factor float64) Slice {
	out := make(Slice, len(band))
	for i, row := range band {
		out[i] = make([]int, len(row))
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			out[i][j] = int(math.Round(v * factor))
		}
	}
	return out
}

// ApplyMask zeroes every cell whose mask entry is false. The mask must
// share the slice's dimensions.
func (s Slice) ApplyMask(mask Mask) error {
	h, w := s.Dims()
	if len(mask) != h {
		return ErrDimensionMismatch
	}
	for i := range mask {
		if len(mask[i]) != w {
			return ErrDimensionMismatch
		}
	}
	for i := range s {
		for j := range s[i] {
			if !mask[i][j] {
				s[i][j] = 0
			}
		}
	}
	return nil
}
