package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
	"github.com/fogleman/gg"
)

// Low-to-high diversity color ramp (dark blue through green to yellow).
var rampStops = [][3]float64{
	{0.267, 0.005, 0.329},
	{0.229, 0.322, 0.546},
	{0.128, 0.567, 0.551},
	{0.369, 0.789, 0.383},
	{0.993, 0.906, 0.144},
}

func rampColor(t float64) (float64, float64, float64) {
	if t <= 0 {
		return rampStops[0][0], rampStops[0][1], rampStops[0][2]
	}
	if t >= 1 {
		last := rampStops[len(rampStops)-1]
		return last[0], last[1], last[2]
	}
	pos := t * float64(len(rampStops)-1)
	i := int(pos)
	f := pos - float64(i)
	lo, hi := rampStops[i], rampStops[i+1]
	return lo[0] + (hi[0]-lo[0])*f, lo[1] + (hi[1]-lo[1])*f, lo[2] + (hi[2]-lo[2])*f
}

// CreateDiversityImage renders a score map as a PNG quicklook with a
// colorbar legend on the right edge, scaled to the map's own min/max.
func CreateDiversityImage(m grid.Map, path string) error {
	height := len(m)
	if height == 0 || len(m[0]) == 0 {
		return fmt.Errorf("empty map for quicklook %s", path)
	}
	width := len(m[0])

	min, max := m[0][0], m[0][0]
	for _, row := range m {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	span := max - min
	if span == 0 {
		span = 1
	}

	const legendWidth = 56
	dc := gg.NewContext(width+legendWidth, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dc.SetRGB(rampColor((m[y][x] - min) / span))
			dc.SetPixel(x, y)
		}
	}

	// Colorbar, high scores on top.
	barX := float64(width + 8)
	for y := 0; y < height; y++ {
		t := 1.0
		if height > 1 {
			t = 1 - float64(y)/float64(height-1)
		}
		dc.SetRGB(rampColor(t))
		dc.DrawRectangle(barX, float64(y), 12, 1)
		dc.Fill()
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(fmt.Sprintf("%.2f", max), barX+16, 8, 0, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.2f", min), barX+16, float64(height)-8, 0, 0.5)

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create quicklook folder: %w", err)
	}
	return dc.SavePNG(path)
}
