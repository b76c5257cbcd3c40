package sentinel

import (
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/utils"
)

// Band order fixed by the acquisition evalscript.
const (
	bandB04 = iota
	bandB08
	bandSCL
)

func readBandRows(ds *godal.Dataset, idx int) ([][]float64, error) {
	bands := ds.Bands()
	if idx >= len(bands) {
		return nil, fmt.Errorf("dataset has %d bands, want band %d", len(bands), idx+1)
	}
	band := bands[idx]

	width := ds.Structure().SizeX
	height := ds.Structure().SizeY
	data := make([][]float64, height)

	var err error
	utils.ExecuteWithMutex(func() {
		for y := 0; y < height; y++ {
			data[y] = make([]float64, width)
			if e := band.Read(0, y, data[y], width, 1); e != nil {
				err = fmt.Errorf("failed to read band %d row %d: %w", idx+1, y, e)
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Helper function for safe division
func safeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// NDVIFromDataset computes the normalized difference vegetation index
// (B08-B04)/(B08+B04) for every pixel of an acquired scene.
func NDVIFromDataset(ds *godal.Dataset) ([][]float64, error) {
	b04, err := readBandRows(ds, bandB04)
	if err != nil {
		return nil, err
	}
	b08, err := readBandRows(ds, bandB08)
	if err != nil {
		return nil, err
	}

	ndvi := make([][]float64, len(b04))
	for y := range b04 {
		ndvi[y] = make([]float64, len(b04[y]))
		for x := range b04[y] {
			ndvi[y][x] = safeDivide(b08[y][x]-b04[y][x], b08[y][x]+b04[y][x])
		}
	}
	return ndvi, nil
}

// SceneClassificationFromDataset reads the Sen2Cor scene-classification
// band of an acquired scene.
func SceneClassificationFromDataset(ds *godal.Dataset) ([][]float64, error) {
	return readBandRows(ds, bandSCL)
}
