package diversity

import "math"

// ShannonIndex computes the Shannon entropy of the distribution:
//
//	H(X) = -sum_i p(i) * log2(p(i))
//
// The score is 0 for a degenerate distribution and at most log2(k) for k
// distinct values, reached at the uniform distribution.
func ShannonIndex(d Distribution) float64 {
	if d.Degenerate() {
		return 0
	}
	var h float64
	for _, p := range d.Probs {
		h -= p * math.Log2(p)
	}
	return h
}

// RenyiIndex computes the Renyi entropy of order alpha:
//
//	H_a(X) = (1 / (1 - a)) * ln(sum_i p(i)^a)
//
// Note the natural-log base, unlike ShannonIndex's log2; the base
// difference is part of the score contract and must not be normalized.
// alpha must not equal 1 (Measure.Validate rejects it before any scoring
// happens). At alpha = 0 the raw formula reduces to ln(k).
func RenyiIndex(d Distribution, alpha float64) float64 {
	if d.Degenerate() {
		return 0
	}
	var sum float64
	for _, p := range d.Probs {
		sum += math.Pow(p, alpha)
	}
	return math.Log(sum) / (1 - alpha)
}

// RaoQuadratic computes Rao's quadratic entropy:
//
//	Q(X) = sum_i sum_j p(i) * p(j) * |v(i) - v(j)|
//
// with |v(i) - v(j)| the absolute difference between the quantized class
// values. Unlike the distance-agnostic entropies it grows with the
// numeric spread between classes, not only with their frequency balance.
func RaoQuadratic(d Distribution) float64 {
	if d.Degenerate() {
		return 0
	}
	var q float64
	for i, pi := range d.Probs {
		vi := d.Values[i]
		for j, pj := range d.Probs {
			q += pi * pj * math.Abs(float64(vi-d.Values[j]))
		}
	}
	return q
}
