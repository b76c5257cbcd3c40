package ui

import (
	"fmt"
	"os"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/delivery"
)

// AnalyzeLocalCube handles the UI for analyzing an already-downloaded
// multi-band raster cube without network access
func AnalyzeLocalCube() {
	PrintWarning("The input should be a multi-band raster with one vegetation-index band per time step, oldest first.")

	path := ReadString("Enter the path to the data cube: ")
	if _, err := os.Stat(path); err != nil {
		PrintError(fmt.Sprintf("Cannot read %s: %s", path, err.Error()))
		return
	}

	windowSize, err := ReadOddInt("Enter the spatial window size (odd): ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	measures, err := ReadMeasures()
	if err != nil {
		PrintError(err.Error())
		return
	}

	result, err := delivery.AnalyzeLocalCube(path, windowSize, measures)
	if err != nil {
		PrintError(fmt.Sprintf("Local cube analysis failed: %s", err.Error()))
		return
	}

	PrintSuccess(fmt.Sprintf("Successful analysis!\n Diversity raster located at: %s\n Band statistics located at: %s\n Processing time: %s",
		result.RasterPath, result.ReportPath, result.Elapsed.String()))
}
