package interdisc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scimetric/diversity"
)

// ValidateFields checks that every weight is finite and non-negative and
// that no category is listed twice.
func ValidateFields(fields []Field) error {
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f.Weight < 0 || math.IsNaN(f.Weight) || math.IsInf(f.Weight, 0) {
			return interdiscErrorf(opValidate, fmt.Errorf("fields[%d] %q=%v: %w", i, f.Category, f.Weight, ErrInvalidWeight))
		}
		if _, dup := seen[f.Category]; dup {
			return interdiscErrorf(opValidate, fmt.Errorf("fields[%d] %q: %w", i, f.Category, ErrDuplicateCategory))
		}
		seen[f.Category] = struct{}{}
	}

	return nil
}

// distanceFn maps a raw matrix entry to a distance.
type distanceFn func(v float64) float64

func fromSimilarity(s float64) float64 { return 1 - s }
func fromDistance(d float64) float64   { return d }

// forEachPair walks every unordered pair i<j of fields, resolves its distance
// through m and hands it to visit. Lookup failures are wrapped so that both
// ErrUnknownCategory and the matrix's own error match errors.Is.
func forEachPair(fields []Field, m Lookup, dist distanceFn, visit func(a, b Field, d float64)) error {
	for i := 0; i < len(fields)-1; i++ {
		for j := i + 1; j < len(fields); j++ {
			a, b := fields[i], fields[j]
			v, err := m.Value(a.Category, b.Category)
			if err != nil {
				return fmt.Errorf("pair (%q,%q): %w: %w", a.Category, b.Category, ErrUnknownCategory, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("pair (%q,%q)=%v: %w", a.Category, b.Category, v, ErrInvalidSimilarity)
			}
			visit(a, b, dist(v))
		}
	}

	return nil
}

// sumDistances returns Σ over unordered pairs of (1 − sᵢⱼ).
func sumDistances(fields []Field, sim Lookup) (float64, error) {
	var total float64
	err := forEachPair(fields, sim, fromSimilarity, func(_, _ Field, d float64) {
		total += d
	})

	return total, err
}

// Disparity returns the mean pairwise distance of the categories of one
// subject: Σ(1 − sᵢⱼ) / (V·(V−1)) over unordered pairs, V = len(fields).
// It equals the D/(V·(V−1)) factor of DIV.
// Weights are validated but do not enter the formula.
//
// Fewer than two categories have no pairs; the result is 0.
//
// Complexity: O(V²) lookups.
func Disparity(fields []Field, sim Lookup) (float64, error) {
	if sim == nil {
		return 0, interdiscErrorf(opDisparity, ErrNilLookup)
	}
	if err := ValidateFields(fields); err != nil {
		return 0, interdiscErrorf(opDisparity, err)
	}
	v := len(fields)
	if v <= 1 {
		return 0, nil
	}
	total, err := sumDistances(fields, sim)
	if err != nil {
		return 0, interdiscErrorf(opDisparity, err)
	}

	return total / float64(v*(v-1)), nil
}

// DIV computes the DIV indicator and its unnormalised DIV* variant.
//
//	V = len(fields), N = n (categories in the whole reference set)
//	D = Σ(1 − sᵢⱼ) over unordered pairs
//	DIV  = (V/N) · balance · D / (V·(V−1))
//	DIV* = V · balance · D
//
// balance is supplied by the caller, usually Balance(fields).
// Fewer than two categories yield zero for both values.
func DIV(fields []Field, sim Lookup, n int, balance float64) (DIVScore, error) {
	if n <= 0 {
		return DIVScore{}, interdiscErrorf(opDIV, fmt.Errorf("n=%d: %w", n, ErrBadTotal))
	}
	if sim == nil {
		return DIVScore{}, interdiscErrorf(opDIV, ErrNilLookup)
	}
	if err := ValidateFields(fields); err != nil {
		return DIVScore{}, interdiscErrorf(opDIV, err)
	}
	v := len(fields)
	if v <= 1 {
		return DIVScore{}, nil
	}
	d, err := sumDistances(fields, sim)
	if err != nil {
		return DIVScore{}, interdiscErrorf(opDIV, err)
	}
	fv := float64(v)

	return DIVScore{
		DIV:     (fv / float64(n)) * balance * d / (fv * (fv - 1)),
		DIVStar: fv * balance * d,
	}, nil
}

// RaoStirling computes the Rao-Stirling diversity Σ wᵢ·wⱼ·dᵢⱼ and the True
// Diversity 1 / Σ wᵢ·wⱼ·(1 − dᵢⱼ) over unordered pairs. Weights are taken
// as given (normally shares, see Shares). kind states whether m holds
// similarities (dᵢⱼ = 1 − sᵢⱼ) or distances.
//
// True Diversity is 0 when its denominator vanishes, which includes the
// single-category case.
func RaoStirling(fields []Field, m Lookup, kind MatrixKind) (RSTD, error) {
	var dist distanceFn
	switch kind {
	case Similarity:
		dist = fromSimilarity
	case Distance:
		dist = fromDistance
	default:
		return RSTD{}, interdiscErrorf(opRaoStirling, fmt.Errorf("%v: %w", kind, ErrUnknownMatrixKind))
	}
	if m == nil {
		return RSTD{}, interdiscErrorf(opRaoStirling, ErrNilLookup)
	}
	if err := ValidateFields(fields); err != nil {
		return RSTD{}, interdiscErrorf(opRaoStirling, err)
	}

	var rs, tdDen float64
	err := forEachPair(fields, m, dist, func(a, b Field, d float64) {
		w := a.Weight * b.Weight
		rs += w * d
		tdDen += w * (1 - d)
	})
	if err != nil {
		return RSTD{}, interdiscErrorf(opRaoStirling, err)
	}

	out := RSTD{RaoStirling: rs}
	if tdDen != 0 {
		out.TrueDiversity = 1 / tdDen
	}

	return out, nil
}

// Balance returns 1 − Gini of the field weights: 1 for perfectly even
// weights, tending to 0 as one category dominates.
// An empty or all-zero list is perfectly balanced by that definition.
func Balance(fields []Field) float64 {
	w := make(diversity.Counts, len(fields))
	for i, f := range fields {
		w[i] = f.Weight
	}

	return 1 - diversity.GiniCoefficient(w)
}

// Shares returns a copy of fields whose weights are rescaled to sum to 1.
// When the total weight is zero every share is zero.
func Shares(fields []Field) []Field {
	var total float64
	for _, f := range fields {
		total += f.Weight
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i].Category = f.Category
		if total != 0 {
			out[i].Weight = f.Weight / total
		}
	}

	return out
}
