package report

import (
	"fmt"
	"os"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const histogramBuckets = 30

// WriteHistogramHTML renders a fixed-bucket histogram of a score map as
// a standalone bar-chart HTML file.
func WriteHistogramHTML(path, title string, m grid.Map) error {
	values := Flatten(m)
	if len(values) == 0 {
		return fmt.Errorf("empty map for histogram %q", title)
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / histogramBuckets
	counts := make([]int, histogramBuckets)
	if width == 0 {
		// Constant map, everything lands in one bucket.
		counts[0] = len(values)
	} else {
		for _, v := range values {
			b := int((v - min) / width)
			if b >= histogramBuckets {
				b = histogramBuckets - 1
			}
			counts[b]++
		}
	}

	labels := make([]string, histogramBuckets)
	data := make([]opts.BarData, histogramBuckets)
	for i := range counts {
		labels[i] = fmt.Sprintf("%.3f", min+width*float64(i))
		data[i] = opts.BarData{Value: counts[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d pixels, %d buckets", len(values), histogramBuckets),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "score"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "pixels"}),
	)
	bar.SetXAxis(labels).AddSeries("pixels", data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %w", path, err)
	}
	defer f.Close()

	return bar.Render(f)
}
