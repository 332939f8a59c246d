// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms consumed by the indicator packages:
//     L2 row normalisation (cosine similarity in comatrix) and min-max column
//     normalisation (entropy-weight method).
//   - Keep tight loops centralized in ew* where it improves reuse and consistency.
//
// Exposed API:
//   - NormalizeRowsL2(X)        -> (Y, norms)      // degenerate rows unchanged
//   - NormalizeColumnsMinMax(X) -> (Y, mins, maxs) // constant columns → all ones
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opNormalizeRowsL2        = "NormalizeRowsL2"
	opNormalizeColumnsMinMax = "NormalizeColumnsMinMax"
)

// normalizeRowsL2 scales each row to unit Euclidean norm when possible.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-row L2 norms deterministically.
//   - Stage 3: Build row scale factors (1/norm); for norm==0 use scale=1 to keep the row unchanged.
//   - Stage 4: Apply ewScaleRows to produce a normalized copy.
//
// Behavior highlights:
//   - Zero rows stay zero, so their cosine with anything (themselves included) is 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(r) auxiliary slices).
func normalizeRowsL2(X Matrix) (Matrix, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)

	// Stage 2 (Execute): compute L2 norms per row.
	var i, j int
	var sq, v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			sq = 0.0
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				sq += v * v
			}
			norms[i] = math.Sqrt(sq)
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			sq = 0.0
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
				}
				sq += v * v
			}
			norms[i] = math.Sqrt(sq)
		}
	}

	// Stage 3 (Prepare scales): 1/norm for normal rows; 1 for degenerate rows.
	scale := make([]float64, r)
	for i = 0; i < r; i++ {
		if norms[i] > 0 {
			scale[i] = 1.0 / norms[i]
		} else {
			scale[i] = 1.0
		}
	}

	// Stage 4 (Apply): scale rows via ew micro-kernel.
	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}

	return Y, norms, nil
}

// normalizeColumnsMinMax maps every column into [0,1] via (x-min)/(max-min).
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Scan per-column min and max in one deterministic pass.
//   - Stage 3: Build shift/scale vectors; a constant column (max==min) maps to
//     all ones, since it carries no information to rank by.
//   - Stage 4: Apply ewAffineCols.
//
// Returns:
//   - Matrix: normalised copy; []float64 mins; []float64 maxs.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func normalizeColumnsMinMax(X Matrix) (Matrix, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opNormalizeColumnsMinMax, err)
	}
	r, c := X.Rows(), X.Cols()
	mins := make([]float64, c)
	maxs := make([]float64, c)

	var i, j int
	var v float64
	var err error
	for j = 0; j < c; j++ {
		mins[j] = math.Inf(1)
		maxs[j] = math.Inf(-1)
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, nil, matrixErrorf(opNormalizeColumnsMinMax, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, nil, nil, matrixErrorf(opNormalizeColumnsMinMax, ErrNaNInf)
			}
			mins[j] = math.Min(mins[j], v)
			maxs[j] = math.Max(maxs[j], v)
		}
	}

	shift := make([]float64, c)
	scale := make([]float64, c)
	offset := make([]float64, c)
	for j = 0; j < c; j++ {
		span := maxs[j] - mins[j]
		if span > 0 {
			shift[j], scale[j] = mins[j], 1.0/span
		} else {
			offset[j] = 1.0 // constant column: 0*x + 1
		}
	}

	Y, err := ewAffineCols(X, shift, scale, offset)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opNormalizeColumnsMinMax, err)
	}

	return Y, mins, maxs, nil
}
