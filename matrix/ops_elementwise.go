// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise micro-kernels (ew*) shared by the statistics and api layers.
//   - Each kernel validates its inputs, allocates the output once and runs a
//     deterministic loop with a *Dense fast path and an At/Set fallback.

package matrix

import "math"

// ewScaleRows computes out[i,j] = X[i,j] * scale[i].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewScaleRows(X Matrix, scale []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}
	r, c := X.Rows(), X.Cols()
	if len(scale) != r {
		return nil, matrixErrorf("scaleRows", ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			sf := scale[i]
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * sf
			}
		}

		return out, nil
	}

	for i := 0; i < r; i++ {
		sf := scale[i]
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("scaleRows", e)
			}
			out.data[i*c+j] = v * sf
		}
	}

	return out, nil
}

// ewAffineCols computes out[i,j] = (X[i,j] - shift[j]) * scale[j] + offset[j].
// Used by min-max normalisation. Time: O(r*c). Space: O(r*c).
func ewAffineCols(X Matrix, shift, scale, offset []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("affineCols", err)
	}
	r, c := X.Rows(), X.Cols()
	if len(shift) != c || len(scale) != c || len(offset) != c {
		return nil, matrixErrorf("affineCols", ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("affineCols", err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = (d.data[base+j]-shift[j])*scale[j] + offset[j]
			}
		}

		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("affineCols", e)
			}
			out.data[i*c+j] = (v-shift[j])*scale[j] + offset[j]
		}
	}

	return out, nil
}

// ewClipRange copies X clamping each entry into [lo, hi].
// Bounds must be finite; if lo > hi, they are swapped.
func ewClipRange(X Matrix, lo, hi float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("Clip", err)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, matrixErrorf("Clip", ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("Clip", err)
	}

	clamp := func(v float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}

		return v
	}

	if d, ok := X.(*Dense); ok {
		n := r * c
		for idx := 0; idx < n; idx++ {
			out.data[idx] = clamp(d.data[idx])
		}

		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("Clip", e)
			}
			out.data[i*c+j] = clamp(v)
		}
	}

	return out, nil
}
