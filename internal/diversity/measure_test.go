package diversity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasureValidate(t *testing.T) {
	tests := []struct {
		name    string
		measure Measure
		wantErr error
	}{
		{"shannon", Shannon(), nil},
		{"rao_q", RaoQ(), nil},
		{"renyi order 0", Renyi(0), nil},
		{"renyi order 2", Renyi(2), nil},
		{"renyi fractional order", Renyi(0.5), nil},
		{"renyi negative order accepted", Renyi(-1), nil},
		{"renyi order 1 undefined", Renyi(1), ErrUndefinedParameter},
		{"unknown kind", Measure{Kind: Kind(99)}, ErrInvalidMeasure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.measure.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMeasureString(t *testing.T) {
	require.Equal(t, "shannon", Shannon().String())
	require.Equal(t, "rao_q", RaoQ().String())
	require.Equal(t, "renyi_0", Renyi(0).String())
	require.Equal(t, "renyi_2", Renyi(2).String())
	require.Equal(t, "renyi_0.5", Renyi(0.5).String())
}

func TestParseMeasure(t *testing.T) {
	for _, m := range []Measure{Shannon(), RaoQ(), Renyi(0), Renyi(2), Renyi(0.5)} {
		parsed, err := ParseMeasure(m.String())
		require.NoError(t, err)
		require.Equal(t, m, parsed)
	}

	_, err := ParseMeasure("renyi_1")
	require.ErrorIs(t, err, ErrUndefinedParameter)

	for _, name := range []string{"", "renyi_", "renyi_abc", "simpson", "SHANNON"} {
		_, err := ParseMeasure(name)
		require.ErrorIs(t, err, ErrInvalidMeasure, "name %q", name)
	}
}
