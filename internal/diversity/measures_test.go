package diversity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShannonTwoEquiprobableClasses(t *testing.T) {
	d := NewDistribution([]int{1, 1, 2, 2})
	require.Equal(t, 1.0, ShannonIndex(d))
}

func TestShannonUniformReachesLogK(t *testing.T) {
	d := NewDistribution([]int{1, 2, 3, 4})
	require.Equal(t, 2.0, ShannonIndex(d))
}

func TestShannonBounds(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		samples := make([]int, 2+r.Intn(60))
		for i := range samples {
			samples[i] = r.Intn(6)
		}
		d := NewDistribution(samples)
		h := ShannonIndex(d)
		k := float64(len(d.Values))
		require.GreaterOrEqual(t, h, 0.0)
		require.LessOrEqual(t, h, math.Log2(k)+1e-12)
	}
}

func TestRenyiZeroOrderCountsClasses(t *testing.T) {
	d := NewDistribution([]int{1, 1, 2, 3, 3, 3})
	require.Equal(t, math.Log(3), RenyiIndex(d, 0))
}

func TestRenyiOrderTwoCollisionEntropy(t *testing.T) {
	d := NewDistribution([]int{1, 2})
	// -ln(p1^2 + p2^2) = -ln(1/2)
	require.InDelta(t, math.Ln2, RenyiIndex(d, 2), 1e-15)
}

func TestRaoQTwoClassesScoresPairDistance(t *testing.T) {
	d := NewDistribution([]int{1, 3})
	require.Equal(t, 1.0, RaoQuadratic(d))
}

func TestRaoQInvariantToSampleOrder(t *testing.T) {
	orders := [][]int{
		{10, 10, 12, 15, 15, 15},
		{15, 12, 10, 15, 10, 15},
		{12, 15, 15, 10, 15, 10},
	}
	want := RaoQuadratic(NewDistribution(orders[0]))
	for _, samples := range orders[1:] {
		require.Equal(t, want, RaoQuadratic(NewDistribution(samples)))
	}
}

func TestRaoQRewardsMagnitudeSpread(t *testing.T) {
	near := NewDistribution([]int{1, 2})
	far := NewDistribution([]int{1, 11})

	// Frequency-only measures cannot tell the two apart.
	require.Equal(t, ShannonIndex(near), ShannonIndex(far))
	require.Equal(t, 0.5, RaoQuadratic(near))
	require.Equal(t, 5.0, RaoQuadratic(far))
}

func TestAllMeasuresScoreDegenerateWindowAsZero(t *testing.T) {
	d := NewDistribution([]int{42, 42, 42, 42})
	require.Zero(t, ShannonIndex(d))
	require.Zero(t, RenyiIndex(d, 0))
	require.Zero(t, RenyiIndex(d, 2))
	require.Zero(t, RaoQuadratic(d))
}
