package ui

import (
	"fmt"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/delivery"
)

// AnalyzeDiversity handles the UI for running the full acquisition and
// entropy-reduction pipeline over an area of interest
func AnalyzeDiversity() {
	PrintWarning("- A '.geojson' file with the AOI name should be present in data/geojsons folder.\n- An optional land-cover raster at data/landcover/<aoi>.tif narrows the analysis further.")

	ListAOIs()
	aoi := ReadString("Enter the AOI name: ")
	if aoi == "" {
		PrintError("AOI name cannot be empty")
		return
	}

	startDate, endDate, err := ReadDateRange()
	if err != nil {
		PrintError(err.Error())
		return
	}

	intervalDays, err := ReadPositiveInt("Enter the acquisition interval in days: ")
	if err != nil {
		PrintError(err.Error())
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

	fmt.Printf("%s\nStarting diversity analysis for AOI %s\n%s", ColorGreen, aoi, ColorReset)
	result, err := delivery.RunDiversityAnalysis(delivery.AnalysisRequest{
		AOI:          aoi,
		StartDate:    startDate,
		EndDate:      endDate,
		IntervalDays: intervalDays,
		WindowSize:   windowSize,
		Measures:     measures,
	})
	if err != nil {
		PrintError(fmt.Sprintf("Diversity analysis failed: %s", err.Error()))
		return
	}

	if len(result.SkippedDates) > 0 {
		PrintWarning(fmt.Sprintf("%d acquisition dates had no usable scene and were skipped", len(result.SkippedDates)))
	}
	PrintSuccess(fmt.Sprintf("Successful analysis!\n Diversity raster located at: %s\n Band statistics located at: %s\n Quicklooks: %d, charts: %d\n Processing time: %s",
		result.RasterPath, result.ReportPath, len(result.ImagePaths), len(result.ChartPaths), result.Elapsed.String()))
}
