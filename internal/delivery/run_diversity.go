package delivery

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/diversity"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/landcover"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/notification"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/properties"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/raster"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/report"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/sentinel"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/utils"
	"github.com/canopy-height-model/rasterdiv-research-poc/output"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
)

// AnalysisRequest describes one full acquisition-and-reduction run over
// an area of interest.
type AnalysisRequest struct {
	AOI          string
	StartDate    time.Time
	EndDate      time.Time
	IntervalDays int
	WindowSize   int
	Measures     []diversity.Measure
}

// AnalysisResult points at the artifacts a finished run produced under
// data/result/<aoi>/<runID>.
type AnalysisResult struct {
	RunID        string
	RasterPath   string
	ReportPath   string
	ChartPaths   []string
	ImagePaths   []string
	SkippedDates []time.Time
	Elapsed      time.Duration
}

func (r AnalysisRequest) validate() error {
	if r.AOI == "" {
		return fmt.Errorf("aoi name is empty")
	}
	if !r.EndDate.After(r.StartDate) {
		return fmt.Errorf("end date %s is not after start date %s",
			r.EndDate.Format("2006-01-02"), r.StartDate.Format("2006-01-02"))
	}
	if r.IntervalDays <= 0 {
		return fmt.Errorf("acquisition interval must be positive, got %d", r.IntervalDays)
	}
	if len(r.Measures) == 0 {
		return fmt.Errorf("no diversity measures selected")
	}
	for _, m := range r.Measures {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return diversity.Window{Size: r.WindowSize}.Validate()
}

// RunDiversityAnalysis runs the full pipeline: acquire scenes, build the
// masked quantized cube, reduce it with every requested measure, persist
// the multi-band raster plus quicklooks and reports, and notify the run
// outcome. A failed run produces no partial result.
func RunDiversityAnalysis(req AnalysisRequest) (*AnalysisResult, error) {
	result, err := runDiversityAnalysis(req)
	if err != nil {
		if nerr := notification.SendDiscordErrorNotification(fmt.Sprintf(
			"Rasterdiv CLI\n\nDiversity analysis failed!\n - AOI: %s\n - Error: %s",
			req.AOI, err.Error())); nerr != nil {
			fmt.Printf("failed to send error notification: %s\n", nerr.Error())
		}
		return nil, err
	}

	if nerr := notification.SendDiscordSuccessNotification(fmt.Sprintf(
		"Rasterdiv CLI\n\nSuccessful diversity analysis!\n - AOI: %s\n - Run: %s\n - Dates: %s to %s\n - Window: %d\n - Measures: %d\n - Processing time: %s",
		req.AOI, result.RunID, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"),
		req.WindowSize, len(req.Measures), result.Elapsed.String())); nerr != nil {
		fmt.Printf("failed to send success notification: %s\n", nerr.Error())
	}
	return result, nil
}

func runDiversityAnalysis(req AnalysisRequest) (*AnalysisResult, error) {
	start := time.Now()
	if err := req.validate(); err != nil {
		return nil, err
	}

	geometry, err := sentinel.GetGeometryFromGeoJSON(req.AOI)
	if err != nil {
		return nil, fmt.Errorf("error getting geometry: %w", err)
	}
	square, err := sentinel.GetSquareEncompassingPolygon(geometry)
	if err != nil {
		return nil, fmt.Errorf("error building encompassing square: %w", err)
	}

	images, err := sentinel.GetImages(square, req.AOI, req.StartDate, req.EndDate, req.IntervalDays)
	if err != nil {
		return nil, fmt.Errorf("error getting images: %w", err)
	}
	defer func() {
		for _, ds := range images {
			ds.Close()
		}
	}()
	if len(images) == 0 {
		return nil, fmt.Errorf("no usable scenes between %s and %s for AOI %s",
			req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"), req.AOI)
	}

	var skipped []time.Time
	for date := req.StartDate; !date.After(req.EndDate); date = date.AddDate(0, 0, req.IntervalDays) {
		if _, ok := images[date]; !ok {
			skipped = append(skipped, date)
		}
	}

	dates := utils.GetSortedKeys(images, true)
	ref, err := raster.ReadGeoRef(images[dates[0]])
	if err != nil {
		return nil, err
	}

	// Static WorldCover mask narrows every date when present.
	var wcMask grid.Mask
	wcPath := filepath.Join(properties.RootPath(), "data", "landcover", req.AOI+".tif")
	if _, err := os.Stat(wcPath); err == nil {
		wcMask, err = landcover.MaskFromWorldCover(wcPath)
		if err != nil {
			return nil, err
		}
	}

	slices := make([]grid.Slice, 0, len(dates))
	dateLabels := make([]string, 0, len(dates))
	bar := progressbar.Default(int64(len(dates)), "Building quantized cube")
	for _, date := range dates {
		ds := images[date]
		ndvi, err := sentinel.NDVIFromDataset(ds)
		if err != nil {
			return nil, err
		}
		scl, err := sentinel.SceneClassificationFromDataset(ds)
		if err != nil {
			return nil, err
		}

		mask := landcover.MaskFromScene(scl)
		if wcMask != nil {
			mask, err = landcover.Combine(mask, wcMask)
			if err != nil {
				return nil, fmt.Errorf("land-cover mask does not match scene %s: %w",
					date.Format("2006-01-02"), err)
			}
		}

		slice := grid.Quantize(ndvi, grid.QuantizeFactor)
		if err := slice.ApplyMask(mask); err != nil {
			return nil, err
		}

		slices = append(slices, slice)
		dateLabels = append(dateLabels, date.Format("2006-01-02"))
		bar.Add(1)
	}

	cube, err := grid.Stack(slices)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	resultDir := filepath.Join(properties.RootPath(), "data", "result", req.AOI, runID)
	if err := os.MkdirAll(resultDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create result folder: %w", err)
	}

	result, err := reduceAndPersist(cube, dateLabels, ref, diversity.Window{Size: req.WindowSize}, req.Measures, resultDir)
	if err != nil {
		return nil, err
	}
	result.RunID = runID
	result.SkippedDates = skipped
	result.Elapsed = time.Since(start)
	return result, nil
}

// reduceAndPersist is the shared tail of both analysis modes: it runs
// every requested reducer over the cube and writes the raster, the
// quicklooks, the statistics CSV and the histogram charts into
// resultDir. Band order is per-measure: one spatial band per date, then
// the temporal band, then the 3D band.
func reduceAndPersist(cube grid.Cube, dateLabels []string, ref raster.GeoRef, win diversity.Window, measures []diversity.Measure, resultDir string) (*AnalysisResult, error) {
	depth, _, _ := cube.Dims()

	var (
		bands      []raster.Band
		rows       []report.BandStat
		chartPaths []string
		imagePaths []string
	)

	addBand := func(label string, measure diversity.Measure, m grid.Map) error {
		bands = append(bands, raster.Band{Label: label, Data: m})
		row, err := report.NewBandStat(label, measure.String(), m)
		if err != nil {
			return err
		}
		rows = append(rows, row)
		return nil
	}

	for _, measure := range measures {
		bar := progressbar.Default(int64(depth), fmt.Sprintf("Computing %s spatial maps", measure))
		for t, slice := range cube {
			spatial, err := diversity.ReduceSpatial(slice, win, measure)
			if err != nil {
				return nil, err
			}
			if err := addBand(fmt.Sprintf("%s_%s", measure, dateLabels[t]), measure, spatial); err != nil {
				return nil, err
			}
			bar.Add(1)
		}

		if depth < 2 {
			warn := fmt.Sprintf("skipping %s temporal variability: cube has a single time step", measure)
			fmt.Printf("\n%s\n", warn)
			if err := notification.SendDiscordWarnNotification("Rasterdiv CLI\n\n" + warn); err != nil {
				fmt.Printf("failed to send warn notification: %s\n", err.Error())
			}
		} else {
			temporal, err := diversity.ReduceTemporal(cube, measure)
			if err != nil {
				return nil, err
			}
			label := fmt.Sprintf("%s_temporal_variability", measure)
			if err := addBand(label, measure, temporal); err != nil {
				return nil, err
			}
			imagePath := filepath.Join(resultDir, label+".png")
			if err := output.CreateDiversityImage(temporal, imagePath); err != nil {
				return nil, err
			}
			imagePaths = append(imagePaths, imagePath)
		}

		joint, err := diversity.Reduce3D(cube, win, measure)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("%s_3D_window_entropy", measure)
		if err := addBand(label, measure, joint); err != nil {
			return nil, err
		}
		imagePath := filepath.Join(resultDir, label+".png")
		if err := output.CreateDiversityImage(joint, imagePath); err != nil {
			return nil, err
		}
		imagePaths = append(imagePaths, imagePath)

		chartPath := filepath.Join(resultDir, fmt.Sprintf("%s_histogram.html", measure))
		if err := report.WriteHistogramHTML(chartPath, fmt.Sprintf("%s 3D window entropy", measure), joint); err != nil {
			return nil, err
		}
		chartPaths = append(chartPaths, chartPath)
	}

	rasterPath := filepath.Join(resultDir, "diversity.tif")
	if err := raster.WriteBands(rasterPath, ref, bands); err != nil {
		return nil, err
	}

	reportPath := filepath.Join(resultDir, "band_stats.csv")
	if err := report.WriteStatsCSV(reportPath, rows); err != nil {
		return nil, err
	}

	return &AnalysisResult{
		RasterPath: rasterPath,
		ReportPath: reportPath,
		ChartPaths: chartPaths,
		ImagePaths: imagePaths,
	}, nil
}
