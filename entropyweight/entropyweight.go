package entropyweight

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/scimetric/matrix"
)

// Result holds the per-indicator and per-object outputs of Compute.
// Slices indexed by indicator follow Columns.
type Result struct {
	Columns    []string  `json:"columns" yaml:"columns"`
	Weights    []float64 `json:"weights" yaml:"weights"`
	Entropy    []float64 `json:"entropy" yaml:"entropy"`
	Redundancy []float64 `json:"redundancy" yaml:"redundancy"`

	// Scores holds one composite score per complete row; Rows[i] is the
	// table index of the row scored by Scores[i].
	Scores []float64 `json:"scores" yaml:"scores"`
	Rows   []int     `json:"rows" yaml:"rows"`

	// Dropped counts rows skipped for holding a missing value.
	Dropped int `json:"dropped" yaml:"dropped"`
}

// ColumnWeight pairs an indicator name with its weight.
type ColumnWeight struct {
	Column string  `json:"column" yaml:"column"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Compute runs the entropy-weight method over t.
//
// Implementation:
//   - Stage 1: drop rows with NaN; require at least two remaining.
//   - Stage 2: min-max normalise each column, or check non-negativity when
//     WithPreNormalized is set. Constant columns become all ones.
//   - Stage 3: per column, pᵢⱼ = xᵢⱼ/Σᵢxᵢⱼ and eⱼ = H(p)/ln M. A column
//     summing to zero is treated as fully disordered, eⱼ = 1.
//   - Stage 4: dⱼ = 1 − eⱼ, wⱼ = dⱼ/Σd, scores = X·w.
//
// Errors: ErrEmptyTable, ErrTooFewRows, ErrNegativeValue, ErrUndefinedWeights.
//
// Complexity: O(M·N) time and memory.
func Compute(t Table, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if len(t.columns) == 0 {
		return nil, ewmErrorf(opCompute, ErrEmptyTable)
	}

	// Stage 1: complete cases only.
	rows, kept := t.complete()
	dropped := len(t.rows) - len(kept)
	if len(rows) < 2 {
		return nil, ewmErrorf(opCompute, fmt.Errorf("%d usable rows (%d dropped): %w", len(rows), dropped, ErrTooFewRows))
	}
	raw, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, ewmErrorf(opCompute, err)
	}

	// Stage 2: scale into [0,1].
	var x matrix.Matrix = raw
	if o.preNormalized {
		if err = matrix.ValidateNonNegative(raw); err != nil {
			if errors.Is(err, matrix.ErrNegative) {
				return nil, ewmErrorf(opCompute, ErrNegativeValue)
			}
			return nil, ewmErrorf(opCompute, err)
		}
	} else if x, _, _, err = matrix.NormalizeColumnsMinMax(raw); err != nil {
		return nil, ewmErrorf(opCompute, err)
	}

	// Stage 3: column entropies.
	m, n := x.Rows(), x.Cols()
	sums, err := matrix.ColSums(x)
	if err != nil {
		return nil, ewmErrorf(opCompute, err)
	}
	k := 1 / math.Log(float64(m))
	entropy := make([]float64, n)
	p := make([]float64, m)
	var i, j int
	var v float64
	for j = 0; j < n; j++ {
		if sums[j] == 0 {
			entropy[j] = 1
			continue
		}
		for i = 0; i < m; i++ {
			v, _ = x.At(i, j)
			p[i] = v / sums[j]
		}
		entropy[j] = k * stat.Entropy(p)
	}

	// Stage 4: redundancy, weights, scores.
	redundancy := make([]float64, n)
	for j = 0; j < n; j++ {
		redundancy[j] = math.Max(0, 1-entropy[j]) // rounding can push eⱼ past 1
	}
	total := floats.Sum(redundancy)
	if total <= o.eps {
		return nil, ewmErrorf(opCompute, fmt.Errorf("sum(d)=%g: %w", total, ErrUndefinedWeights))
	}
	weights := append([]float64(nil), redundancy...)
	floats.Scale(1/total, weights)

	scores, err := matrix.MatVec(x, weights)
	if err != nil {
		return nil, ewmErrorf(opCompute, err)
	}

	return &Result{
		Columns:    t.Columns(),
		Weights:    weights,
		Entropy:    entropy,
		Redundancy: redundancy,
		Scores:     scores,
		Rows:       kept,
		Dropped:    dropped,
	}, nil
}

// WeightMap returns indicator name → weight.
func (r *Result) WeightMap() map[string]float64 {
	out := make(map[string]float64, len(r.Columns))
	for j, c := range r.Columns {
		out[c] = r.Weights[j]
	}

	return out
}

// Rank returns the indicators ordered by descending weight; ties keep
// column order.
func (r *Result) Rank() []ColumnWeight {
	out := make([]ColumnWeight, len(r.Columns))
	for j, c := range r.Columns {
		out[j] = ColumnWeight{Column: c, Weight: r.Weights[j]}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Weight > out[b].Weight })

	return out
}
