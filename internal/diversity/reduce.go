package diversity

import (
	"runtime"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
	"github.com/gammazero/workerpool"
)

// scorerFor builds the sample-set scoring function for a validated
// measure. This switch is the engine's only measure dispatch point.
func scorerFor(m Measure) func(samples []int) float64 {
	switch m.Kind {
	case KindShannon:
		return func(samples []int) float64 {
			return ShannonIndex(NewDistribution(samples))
		}
	case KindRenyi:
		alpha := m.Alpha
		return func(samples []int) float64 {
			return RenyiIndex(NewDistribution(samples), alpha)
		}
	case KindRaoQ:
		return func(samples []int) float64 {
			return RaoQuadratic(NewDistribution(samples))
		}
	}
	return nil
}

// ReduceSpatial scores every cell of one time slice against its reflected
// square neighborhood. Rows are scored in parallel; workers read the
// immutable slice and write disjoint output rows, so the map is identical
// to a sequential scan no matter how rows are scheduled.
func ReduceSpatial(s grid.Slice, win Window, m Measure) (grid.Map, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := win.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	height, width := s.Dims()
	out := grid.NewMap(height, width)
	score := scorerFor(m)

	wp := workerpool.New(runtime.NumCPU())
	for i := 0; i < height; i++ {
		row := i
		wp.Submit(func() {
			samples := make([]int, 0, win.Size*win.Size)
			for col := 0; col < width; col++ {
				samples = appendSpatialWindow(samples[:0], s, row, col, win)
				out[row][col] = score(samples)
			}
		})
	}
	wp.StopWait()

	return out, nil
}

// ReduceTemporal scores every pixel against its own values across the
// full time axis, ignoring spatial neighbors. The cube must hold at
// least two time steps for variability to be observable.
func ReduceTemporal(c grid.Cube, m Measure) (grid.Map, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	depth, height, width := c.Dims()
	if depth < 2 {
		return nil, ErrTemporalDepth
	}

	out := grid.NewMap(height, width)
	score := scorerFor(m)

	wp := workerpool.New(runtime.NumCPU())
	for i := 0; i < height; i++ {
		row := i
		wp.Submit(func() {
			samples := make([]int, 0, depth)
			for col := 0; col < width; col++ {
				samples = appendTemporalWindow(samples[:0], c, row, col)
				out[row][col] = score(samples)
			}
		})
	}
	wp.StopWait()

	return out, nil
}

// Reduce3D scores every pixel against the pooled sample set of its
// reflected square neighborhood taken across every time step, the joint
// spatio-temporal reduction. It is the most expensive reducer: each cell
// extracts T*Size*Size samples.
func Reduce3D(c grid.Cube, win Window, m Measure) (grid.Map, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := win.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	depth, height, width := c.Dims()
	out := grid.NewMap(height, width)
	score := scorerFor(m)

	wp := workerpool.New(runtime.NumCPU())
	for i := 0; i < height; i++ {
		row := i
		wp.Submit(func() {
			samples := make([]int, 0, depth*win.Size*win.Size)
			for col := 0; col < width; col++ {
				samples = appendCubeWindow(samples[:0], c, row, col, win)
				out[row][col] = score(samples)
			}
		})
	}
	wp.StopWait()

	return out, nil
}
