// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/scimetric/matrix"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

func TestNormalizeRowsL2_UnitRowsAndZeroRow(t *testing.T) {
	t.Parallel()

	X := MustRows(t, [][]float64{{3, 4}, {0, 0}, {1, 1}})

	Yf, normsF, err := matrix.NormalizeRowsL2(X)
	require.NoError(t, err)
	Ys, normsS, err := matrix.NormalizeRowsL2(hide{X})
	require.NoError(t, err)

	require.InDeltaSlice(t, []float64{5, 0, math.Sqrt2}, normsF, epsTight)
	require.Equal(t, normsF, normsS)
	requireClose(t, Yf, Ys, 0)

	// Row 0 becomes (0.6, 0.8); the zero row stays zero.
	require.InDelta(t, 0.6, MustAt(t, Yf, 0, 0), epsTight)
	require.InDelta(t, 0.8, MustAt(t, Yf, 0, 1), epsTight)
	require.Equal(t, 0.0, MustAt(t, Yf, 1, 0))
	require.Equal(t, 0.0, MustAt(t, Yf, 1, 1))
}

func TestNormalizeColumnsMinMax(t *testing.T) {
	t.Parallel()

	X := MustRows(t, [][]float64{
		{1, 10, 7},
		{3, 20, 7},
		{2, 40, 7},
	})
	Y, mins, maxs, err := matrix.NormalizeColumnsMinMax(X)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 10, 7}, mins)
	require.Equal(t, []float64{3, 40, 7}, maxs)

	want := MustRows(t, [][]float64{
		{0, 0, 1},
		{1, 1.0 / 3, 1},
		{0.5, 1, 1},
	})
	requireClose(t, Y, want, epsTight)

	_, _, _, err = matrix.NormalizeColumnsMinMax(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
