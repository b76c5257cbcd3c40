package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
	"github.com/stretchr/testify/require"
)

func TestNewBandStatKnownValues(t *testing.T) {
	m := grid.Map{
		{0, 1},
		{2, 3},
	}

	s, err := NewBandStat("shannon_2024-01-01", "shannon", m)
	require.NoError(t, err)

	require.Equal(t, "shannon_2024-01-01", s.Band)
	require.Equal(t, "shannon", s.Measure)
	require.Equal(t, 0.0, s.Min)
	require.Equal(t, 3.0, s.Max)
	require.Equal(t, 1.5, s.Mean)
	require.Equal(t, 1.5, s.Median)
	require.Equal(t, 0.25, s.ZeroFraction)
}

func TestNewBandStatRejectsEmptyMap(t *testing.T) {
	_, err := NewBandStat("b", "shannon", grid.Map{})
	require.Error(t, err)
}

func TestFlattenRowMajor(t *testing.T) {
	m := grid.Map{{1, 2}, {3, 4}}
	require.Equal(t, []float64{1, 2, 3, 4}, Flatten(m))
}

func TestWriteStatsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "band_stats.csv")
	rows := []BandStat{
		{Band: "shannon_temporal_variability", Measure: "shannon", Max: 1, Mean: 0.5},
		{Band: "rao_q_3D_window_entropy", Measure: "rao_q", Max: 2, Mean: 1.5},
	}

	require.NoError(t, WriteStatsCSV(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	require.True(t, strings.HasPrefix(content, "band,measure,"))
	require.Contains(t, content, "shannon_temporal_variability")
	require.Contains(t, content, "rao_q_3D_window_entropy")
}

func TestWriteHistogramHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.html")
	m := grid.Map{{0, 0.25, 0.5}, {0.75, 1, 1}}

	require.NoError(t, WriteHistogramHTML(path, "shannon 3D window entropy", m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "shannon 3D window entropy")
}

func TestWriteHistogramHTMLConstantMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.html")
	require.NoError(t, WriteHistogramHTML(path, "flat", grid.Map{{0, 0}, {0, 0}}))
}
