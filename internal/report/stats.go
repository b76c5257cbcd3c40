// Package report summarizes the score distribution of every output band
// into a statistics CSV and renders score histograms as standalone HTML
// charts.
package report

import (
	"fmt"
	"os"
	"sort"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// BandStat is one row of the per-band statistics CSV.
type BandStat struct {
	Band         string  `csv:"band"`
	Measure      string  `csv:"measure"`
	Min          float64 `csv:"min"`
	Max          float64 `csv:"max"`
	Mean         float64 `csv:"mean"`
	Median       float64 `csv:"median"`
	StdDev       float64 `csv:"std_dev"`
	P10          float64 `csv:"p10"`
	P90          float64 `csv:"p90"`
	ZeroFraction float64 `csv:"zero_fraction"`
}

// Flatten copies a score map into a single row-major slice.
func Flatten(m grid.Map) []float64 {
	var n int
	for _, row := range m {
		n += len(row)
	}
	values := make([]float64, 0, n)
	for _, row := range m {
		values = append(values, row...)
	}
	return values
}

// NewBandStat computes the summary statistics of one score map.
func NewBandStat(band, measure string, m grid.Map) (BandStat, error) {
	values := Flatten(m)
	if len(values) == 0 {
		return BandStat{}, fmt.Errorf("empty map for band %s", band)
	}

	min, err := stats.Min(values)
	if err != nil {
		return BandStat{}, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return BandStat{}, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return BandStat{}, err
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	zeros := 0
	for _, v := range values {
		if v == 0 {
			zeros++
		}
	}

	return BandStat{
		Band:         band,
		Measure:      measure,
		Min:          min,
		Max:          max,
		Mean:         stat.Mean(sorted, nil),
		Median:       median,
		StdDev:       stat.StdDev(sorted, nil),
		P10:          stat.Quantile(0.1, stat.Empirical, sorted, nil),
		P90:          stat.Quantile(0.9, stat.Empirical, sorted, nil),
		ZeroFraction: float64(zeros) / float64(len(values)),
	}, nil
}

// WriteStatsCSV writes the band statistics to a CSV file, one row per
// output band.
func WriteStatsCSV(path string, rows []BandStat) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create stats file %s: %w", path, err)
	}
	defer file.Close()

	return gocsv.MarshalFile(&rows, file)
}
