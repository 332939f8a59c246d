package diversity

import (
	"math"
	"slices"
)

// Distribution is a category count vector. It is sealed: the two variants
// are Counts (an ordered vector) and LabeledCounts (category → count).
type Distribution interface {
	// values returns the counts in a stable order. Callers must not mutate it.
	values() []float64
}

// Counts is an ordered vector of non-negative category frequencies.
type Counts []float64

func (c Counts) values() []float64 { return c }

// CountsOf converts integer frequencies into Counts.
func CountsOf[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](xs []T) Counts {
	out := make(Counts, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}

// LabeledCounts maps a category label to its frequency.
type LabeledCounts map[string]float64

// Labels returns the category labels in lexicographic order.
func (l LabeledCounts) Labels() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

func (l LabeledCounts) values() []float64 {
	labels := l.Labels()
	out := make([]float64, len(labels))
	for i, k := range labels {
		out[i] = l[k]
	}

	return out
}

// Validate reports whether every count is finite and non-negative.
//
// Errors:
//   - ErrNonFinite: a NaN or ±Inf count.
//   - ErrNegativeCount: a count below zero.
func Validate(d Distribution) error {
	for i, v := range d.values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return diversityErrorf(opValidate, i, ErrNonFinite)
		}
		if v < 0 {
			return diversityErrorf(opValidate, i, ErrNegativeCount)
		}
	}

	return nil
}
