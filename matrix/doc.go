// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage shared by the indicator
// packages of scimetric.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors that
//     return sentinel errors instead of panicking.
//   - Canonical kernels (Mul, Transpose, MatVec) and the RowSums/ColSums
//     reductions, all with *Dense fast paths.
//   - Statistical transforms used by the indicators: L2 row normalisation
//     (cosine pipelines in comatrix) and min-max column normalisation
//     (entropyweight).
//   - Central validators (nil, vector length, symmetric, non-negative).
//
// All loops run in a fixed i→j order, so results are bit-for-bit
// reproducible for a given input.
//
//	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	y, norms, _ := matrix.NormalizeRowsL2(m)
//
// See example_test.go for runnable snippets.
package matrix
