package landcover

import (
	"errors"
	"testing"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
	"github.com/stretchr/testify/require"
)

func TestMaskFromSceneExcludesInvalidClasses(t *testing.T) {
	scl := [][]float64{
		{float64(SCLVegetation), float64(SCLCloudHigh), float64(SCLNoData)},
		{float64(SCLWater), float64(SCLNotVegetated), float64(SCLSnow)},
	}

	mask := MaskFromScene(scl)

	require.Equal(t, grid.Mask{
		{true, false, false},
		{false, true, false},
	}, mask)
}

func TestMaskFromSceneKeepsUnclassified(t *testing.T) {
	mask := MaskFromScene([][]float64{{float64(SCLUnclassified), float64(SCLDarkArea)}})
	require.Equal(t, grid.Mask{{true, true}}, mask)
}

func TestCombineIntersectsMasks(t *testing.T) {
	a := grid.Mask{{true, true}, {false, true}}
	b := grid.Mask{{true, false}, {true, true}}

	got, err := Combine(a, b)
	require.NoError(t, err)
	require.Equal(t, grid.Mask{{true, false}, {false, true}}, got)
}

func TestCombineRejectsShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b grid.Mask
	}{
		{"row count", grid.Mask{{true}}, grid.Mask{{true}, {true}}},
		{"row length", grid.Mask{{true, true}}, grid.Mask{{true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Combine(tt.a, tt.b)
			require.True(t, errors.Is(err, grid.ErrDimensionMismatch))
		})
	}
}

func TestMaskedPixelsQuantizeToZero(t *testing.T) {
	scl := [][]float64{{float64(SCLVegetation), float64(SCLCloudHigh)}}
	slice := grid.Quantize([][]float64{{0.42, 0.87}}, grid.QuantizeFactor)

	require.NoError(t, slice.ApplyMask(MaskFromScene(scl)))
	require.Equal(t, grid.Slice{{42, 0}}, slice)
}
