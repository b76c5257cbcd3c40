package diversity

import (
	"testing"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
	"github.com/stretchr/testify/require"
)

func TestWindowValidate(t *testing.T) {
	for _, size := range []int{1, 3, 5, 9} {
		require.NoError(t, Window{Size: size}.Validate())
	}
	for _, size := range []int{0, -1, -3, 2, 4, 10} {
		require.ErrorIs(t, Window{Size: size}.Validate(), ErrWindowSize, "size %d", size)
	}
}

func TestWindowRadius(t *testing.T) {
	require.Equal(t, 0, Window{Size: 1}.Radius())
	require.Equal(t, 1, Window{Size: 3}.Radius())
	require.Equal(t, 3, Window{Size: 7}.Radius())
}

func TestReflectIndex(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{-1, 5, 1},
		{-2, 5, 2},
		{5, 5, 3},
		{6, 5, 2},
		{-3, 2, 1},
		{7, 3, 1},
		{0, 1, 0},
		{-9, 1, 0},
		{5, 1, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, reflectIndex(tt.i, tt.n), "reflectIndex(%d, %d)", tt.i, tt.n)
	}
}

func TestSpatialWindowInterior(t *testing.T) {
	s := grid.Slice{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	}
	got := appendSpatialWindow(nil, s, 1, 1, Window{Size: 3})
	require.Equal(t, []int{0, 1, 2, 4, 5, 6, 8, 9, 10}, got)
}

func TestSpatialWindowFullSizeAtEveryCorner(t *testing.T) {
	s := grid.Slice{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	}
	win := Window{Size: 3}
	for _, corner := range [][2]int{{0, 0}, {0, 3}, {3, 0}, {3, 3}} {
		got := appendSpatialWindow(nil, s, corner[0], corner[1], win)
		require.Len(t, got, win.Size*win.Size, "corner %v", corner)
	}
}

func TestSpatialWindowReflectsAcrossEdges(t *testing.T) {
	s := grid.Slice{
		{1, 2},
		{3, 4},
	}
	got := appendSpatialWindow(nil, s, 0, 0, Window{Size: 3})
	require.Equal(t, []int{4, 3, 4, 2, 1, 2, 4, 3, 4}, got)
}

func TestSpatialWindowLargerThanGrid(t *testing.T) {
	s := grid.Slice{
		{1, 2},
		{3, 4},
	}
	got := appendSpatialWindow(nil, s, 1, 0, Window{Size: 5})
	require.Len(t, got, 25)
}

func TestTemporalWindowTakesFullTimeAxis(t *testing.T) {
	c := grid.Cube{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
		{{9, 10}, {11, 12}},
	}
	got := appendTemporalWindow(nil, c, 1, 0)
	require.Equal(t, []int{3, 7, 11}, got)
}

func TestCubeWindowPoolsAllTimeSteps(t *testing.T) {
	c := grid.Cube{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	}
	win := Window{Size: 3}
	got := appendCubeWindow(nil, c, 0, 0, win)
	require.Len(t, got, len(c)*win.Size*win.Size)

	want := appendSpatialWindow(nil, c[0], 0, 0, win)
	want = appendSpatialWindow(want, c[1], 0, 0, win)
	require.Equal(t, want, got)
}
