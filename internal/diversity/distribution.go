package diversity

import "sort"

// Distribution is a probability distribution over the distinct values of
// one local sample set. Values are sorted ascending, so every measure
// enumerates them in the same order no matter how the samples were
// gathered; score determinism depends on this.
type Distribution struct {
	Values []int
	Probs  []float64
}

// NewDistribution groups samples into distinct values and relative
// frequencies. The input is left untouched. An empty sample set yields
// an empty, degenerate distribution.
func NewDistribution(samples []int) Distribution {
	if len(samples) == 0 {
		return Distribution{}
	}
	sorted := make([]int, len(samples))
	copy(sorted, samples)
	sort.Ints(sorted)

	var d Distribution
	n := float64(len(sorted))
	for lo := 0; lo < len(sorted); {
		hi := lo + 1
		for hi < len(sorted) && sorted[hi] == sorted[lo] {
			hi++
		}
		d.Values = append(d.Values, sorted[lo])
		d.Probs = append(d.Probs, float64(hi-lo)/n)
		lo = hi
	}
	return d
}

// Degenerate reports whether the distribution holds at most one distinct
// value, in which case every measure scores 0.
func (d Distribution) Degenerate() bool {
	return len(d.Values) <= 1
}
