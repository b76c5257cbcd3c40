package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/diversity"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
)

// syntheticCube builds a quantized NDVI-like cube: a smooth spatial
// gradient that drifts over time, plus some noise.
func syntheticCube(depth, height, width int) grid.Cube {
	r := rand.New(rand.NewSource(42))
	cube := make(grid.Cube, depth)
	for t := range cube {
		band := make([][]float64, height)
		phase := float64(t) * 0.3
		for y := range band {
			band[y] = make([]float64, width)
			for x := range band[y] {
				v := 0.4 + 0.3*math.Sin(float64(x)/8+phase)*math.Cos(float64(y)/8)
				v += 0.05 * r.Float64()
				band[y][x] = v
			}
		}
		cube[t] = grid.Quantize(band, grid.QuantizeFactor)
	}
	return cube
}

func summarize(name string, m grid.Map) {
	min, max := m[0][0], m[0][0]
	var sum float64
	var n int
	for _, row := range m {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			sum += v
			n++
		}
	}
	fmt.Printf("- %-28s min=%.4f max=%.4f mean=%.4f\n", name, min, max, sum/float64(n))
}

func main() {
	// Hardcoded test parameters - modify these to test different scenarios
	const (
		depth      = 6
		height     = 64
		width      = 64
		windowSize = 5
	)

	fmt.Println("=== Rasterdiv Test Reduction ===")
	fmt.Printf("Cube: %dx%dx%d, window: %d\n\n", depth, height, width, windowSize)

	cube := syntheticCube(depth, height, width)
	win := diversity.Window{Size: windowSize}
	measures := []diversity.Measure{diversity.Shannon(), diversity.Renyi(2), diversity.RaoQ()}

	for _, m := range measures {
		spatial, err := diversity.ReduceSpatial(cube[0], win, m)
		if err != nil {
			log.Fatalf("spatial reduction failed: %v", err)
		}
		summarize(fmt.Sprintf("%s spatial (t=0)", m), spatial)

		temporal, err := diversity.ReduceTemporal(cube, m)
		if err != nil {
			log.Fatalf("temporal reduction failed: %v", err)
		}
		summarize(fmt.Sprintf("%s temporal", m), temporal)

		joint, err := diversity.Reduce3D(cube, win, m)
		if err != nil {
			log.Fatalf("3D reduction failed: %v", err)
		}
		summarize(fmt.Sprintf("%s 3D window", m), joint)

		fmt.Println()
	}

	fmt.Println("✓ Test completed successfully!")
}
