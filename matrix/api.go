// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Public facade over the kernels: reductions, sanitisation and statistics.
//   - Thin wrappers only; the loops live in methods.go, ops_elementwise.go and
//     impl_statistics.go.

package matrix

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)). Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Implementation: T(m) then MatVec with ones(rows). Complexity: O(rc).
func ColSums(m Matrix) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	ones := make([]float64, mt.Cols()) // == m.Rows()
	for i := range ones {
		ones[i] = 1.0
	}

	return MatVec(mt, ones)
}

// Clip returns a copy of m with elements clamped into [lo, hi].
// If lo > hi, bounds are swapped. NaN/Inf bounds are rejected with ErrNaNInf.
func Clip(m Matrix, lo, hi float64) (Matrix, error) { return ewClipRange(m, lo, hi) }

// NormalizeRowsL2 returns a copy with each row scaled to unit L2 norm and the
// original norms. Rows with zero norm are left unchanged.
// Time: O(r*c). Space: O(r*c).
func NormalizeRowsL2(X Matrix) (Matrix, []float64, error) { return normalizeRowsL2(X) }

// NormalizeColumnsMinMax returns a copy with every column mapped into [0,1]
// plus the per-column minima and maxima. Constant columns become all ones.
// Time: O(r*c). Space: O(r*c).
func NormalizeColumnsMinMax(X Matrix) (Matrix, []float64, []float64, error) {
	return normalizeColumnsMinMax(X)
}
