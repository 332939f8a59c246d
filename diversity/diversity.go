package diversity

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// proportions returns p_i = n_i / N. When N == 0 every p_i is 0.
func proportions(v []float64) []float64 {
	p := make([]float64, len(v))
	total := floats.Sum(v)
	if total == 0 {
		return p
	}
	for i, n := range v {
		p[i] = n / total
	}

	return p
}

// CategoryCount returns the variety (richness) of d: the number of
// categories it lists, MacArthur (1965).
func CategoryCount(d Distribution) int {
	return len(d.values())
}

// ShannonIndex computes H = −Σ pᵢ·ln(pᵢ), Shannon & Weaver (1949).
//
// Zero proportions contribute 0 (never NaN from 0·ln 0); an all-zero vector
// yields 0.
func ShannonIndex(d Distribution) float64 {
	h := stat.Entropy(proportions(d.values()))
	if h == 0 {
		return 0 // normalise −0
	}

	return h
}

// ShannonEvenness computes Pielou's evenness H / ln(k), k = CategoryCount.
// It returns 0 when k ≤ 1, where ln(k) would be 0 or undefined.
func ShannonEvenness(d Distribution) float64 {
	k := CategoryCount(d)
	if k <= 1 {
		return 0
	}

	return ShannonIndex(d) / math.Log(float64(k))
}

// SimpsonIndex computes Σ pᵢ², the probability that two draws with
// replacement fall into the same category, Simpson (1949).
// Range [0,1]; larger means less diverse. An all-zero vector yields 0.
func SimpsonIndex(d Distribution) float64 {
	p := proportions(d.values())

	return floats.Dot(p, p)
}

// InverseSimpsonIndex computes 1 / SimpsonIndex, or 0 when SimpsonIndex is 0.
// Its minimum 1 means a single category; its maximum equals the number of
// evenly populated categories.
func InverseSimpsonIndex(d Distribution) float64 {
	si := SimpsonIndex(d)
	if si == 0 {
		return 0
	}

	return 1 / si
}

// GiniSimpsonIndex computes 1 − SimpsonIndex: the probability that two draws
// fall into different categories.
func GiniSimpsonIndex(d Distribution) float64 {
	return 1 - SimpsonIndex(d)
}

// BrillouinIndex computes (log10(N!) − Σ log10(nᵢ!)) / N.
//
// Factorials are evaluated through log-gamma so large N never overflows and
// non-integer counts are accepted. N == 0 yields 0.
func BrillouinIndex(d Distribution) float64 {
	v := d.values()
	total := floats.Sum(v)
	if total == 0 {
		return 0
	}

	a := log10Factorial(total)
	var b float64
	for _, n := range v {
		b += log10Factorial(n)
	}

	return (a - b) / total
}

// log10Factorial returns log10(n!) = lnΓ(n+1) / ln 10.
func log10Factorial(n float64) float64 {
	lg, _ := math.Lgamma(n + 1)

	return lg / math.Ln10
}

// GiniCoefficient computes the Lorenz-curve Gini coefficient of d.
//
// Implementation:
//  1. Sort a copy of the counts ascending.
//  2. Accumulate the area under the Lorenz curve with the trapezoid rule.
//  3. Gini = (fair − area) / fair, fair = N·k/2.
//
// A perfectly even vector yields 0; an all-zero or empty vector, where the
// fair area is 0, yields 0 as well.
func GiniCoefficient(d Distribution) float64 {
	sorted := slices.Clone(d.values())
	slices.Sort(sorted)

	var height, area float64
	for _, v := range sorted {
		height += v
		area += height - v/2
	}
	fair := height * float64(len(sorted)) / 2
	if fair == 0 {
		return 0
	}

	return (fair - area) / fair
}
