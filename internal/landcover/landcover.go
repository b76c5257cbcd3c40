// Package landcover derives per-pixel validity masks from the Sen2Cor
// scene classification of each acquisition and, when available, a static
// ESA WorldCover land-cover raster. Masked pixels are zeroed before
// quantization so they collapse into a single no-data class.
package landcover

import (
	"fmt"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/raster"
)

// Sen2Cor scene-classification classes.
const (
	SCLNoData       = 0
	SCLSaturated    = 1
	SCLDarkArea     = 2
	SCLCloudShadow  = 3
	SCLVegetation   = 4
	SCLNotVegetated = 5
	SCLWater        = 6
	SCLUnclassified = 7
	SCLCloudMedium  = 8
	SCLCloudHigh    = 9
	SCLThinCirrus   = 10
	SCLSnow         = 11
)

// sclExcluded marks scene classes that invalidate a pixel for
// vegetation-index analysis.
var sclExcluded = map[int]bool{
	SCLNoData:      true,
	SCLSaturated:   true,
	SCLCloudShadow: true,
	SCLWater:       true,
	SCLCloudMedium: true,
	SCLCloudHigh:   true,
	SCLThinCirrus:  true,
	SCLSnow:        true,
}

// ESA WorldCover classes excluded from analysis: built-up, bare/sparse
// vegetation, snow/ice and permanent water bodies.
var worldCoverExcluded = map[int]bool{
	50: true,
	60: true,
	70: true,
	80: true,
}

// MaskFromScene builds a validity mask from a scene-classification band:
// a pixel is kept unless its class is excluded.
func MaskFromScene(scl [][]float64) grid.Mask {
	mask := make(grid.Mask, len(scl))
	for i, row := range scl {
		mask[i] = make([]bool, len(row))
		for j, v := range row {
			mask[i][j] = !sclExcluded[int(v)]
		}
	}
	return mask
}

// MaskFromWorldCover reads a single-band ESA WorldCover raster and keeps
// every pixel whose class is not excluded.
func MaskFromWorldCover(path string) (grid.Mask, error) {
	ds, err := raster.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open land-cover raster %s: %w", path, err)
	}
	defer ds.Close()

	band, err := raster.ReadBand(ds, 0)
	if err != nil {
		return nil, err
	}

	mask := make(grid.Mask, len(band))
	for i, row := range band {
		mask[i] = make([]bool, len(row))
		for j, v := range row {
			mask[i][j] = !worldCoverExcluded[int(v)]
		}
	}
	return mask, nil
}

// Combine intersects two masks: a pixel is kept only when both keep it.
func Combine(a, b grid.Mask) (grid.Mask, error) {
	if len(a) != len(b) {
		return nil, grid.ErrDimensionMismatch
	}
	out := make(grid.Mask, len(a))
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return nil, grid.ErrDimensionMismatch
		}
		out[i] = make([]bool, len(a[i]))
		for j := range a[i] {
			out[i][j] = a[i][j] && b[i][j]
		}
	}
	return out, nil
}
