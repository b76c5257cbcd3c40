package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceValidate(t *testing.T) {
	tests := []struct {
		name    string
		slice   Slice
		wantErr error
	}{
		{"valid", Slice{{1, 2}, {3, 4}}, nil},
		{"nil", nil, ErrEmptyGrid},
		{"empty row", Slice{{}}, ErrEmptyGrid},
		{"ragged", Slice{{1, 2}, {3}}, ErrNonRectangular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.slice.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCubeValidate(t *testing.T) {
	valid := Cube{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	}
	require.NoError(t, valid.Validate())

	require.ErrorIs(t, Cube{}.Validate(), ErrEmptyGrid)

	mismatched := Cube{
		{{1, 2}, {3, 4}},
		{{5, 6}},
	}
	require.ErrorIs(t, mismatched.Validate(), ErrDimensionMismatch)

	ragged := Cube{
		{{1, 2}, {3}},
	}
	require.ErrorIs(t, ragged.Validate(), ErrNonRectangular)
}

func TestDims(t *testing.T) {
	s := Slice{{1, 2, 3}, {4, 5, 6}}
	h, w := s.Dims()
	require.Equal(t, 2, h)
	require.Equal(t, 3, w)

	c := Cube{s, s, s, s}
	d, h, w := c.Dims()
	require.Equal(t, 4, d)
	require.Equal(t, 2, h)
	require.Equal(t, 3, w)

	d, h, w = Cube(nil).Dims()
	require.Zero(t, d)
	require.Zero(t, h)
	require.Zero(t, w)
}

func TestQuantize(t *testing.T) {
	band := [][]float64{
		{0.567, -0.231, 0.005},
		{math.NaN(), math.Inf(1), 1.0},
	}
	got := Quantize(band, 100)
	want := Slice{
		{57, -23, 1},
		{0, 0, 100},
	}
	require.Equal(t, want, got)
}

func TestQuantizeRoundsHalfAwayFromZero(t *testing.T) {
	band := [][]float64{{0.125, -0.125}}
	got := Quantize(band, 100)
	require.Equal(t, Slice{{13, -13}}, got)
}

func TestApplyMask(t *testing.T) {
	s := Slice{{10, 20}, {30, 40}}
	mask := Mask{{true, false}, {false, true}}
	require.NoError(t, s.ApplyMask(mask))
	require.Equal(t, Slice{{10, 0}, {0, 40}}, s)

	require.ErrorIs(t, s.ApplyMask(Mask{{true}}), ErrDimensionMismatch)
	require.ErrorIs(t, s.ApplyMask(Mask{{true}, {true}}), ErrDimensionMismatch)
}

func TestStack(t *testing.T) {
	a := Slice{{1, 2}, {3, 4}}
	b := Slice{{5, 6}, {7, 8}}

	cube, err := Stack([]Slice{a, b})
	require.NoError(t, err)
	require.Equal(t, Cube{a, b}, cube)

	_, err = Stack(nil)
	require.ErrorIs(t, err, ErrEmptyGrid)

	_, err = Stack([]Slice{a, {{1, 2}}})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewMap(t *testing.T) {
	m := NewMap(2, 3)
	require.Len(t, m, 2)
	for _, row := range m {
		require.Len(t, row, 3)
		for _, v := range row {
			require.Zero(t, v)
		}
	}
}
