package delivery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/diversity"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/properties"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/raster"
	"github.com/google/uuid"
)

// AnalyzeLocalCube runs the reduction tail of the pipeline on a cube
// read from a local multi-band raster, one band per time step, without
// any network access. Bands are quantized with the standard factor.
func AnalyzeLocalCube(path string, windowSize int, measures []diversity.Measure) (*AnalysisResult, error) {
	start := time.Now()

	win := diversity.Window{Size: windowSize}
	if err := win.Validate(); err != nil {
		return nil, err
	}
	if len(measures) == 0 {
		return nil, fmt.Errorf("no diversity measures selected")
	}
	for _, m := range measures {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	cube, ref, labels, err := raster.ReadCube(path, grid.QuantizeFactor)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	resultDir := filepath.Join(properties.RootPath(), "data", "result", base, runID)
	if err := os.MkdirAll(resultDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create result folder: %w", err)
	}

	result, err := reduceAndPersist(cube, labels, ref, win, measures, resultDir)
	if err != nil {
		return nil, err
	}
	result.RunID = runID
	result.Elapsed = time.Since(start)
	return result, nil
}
