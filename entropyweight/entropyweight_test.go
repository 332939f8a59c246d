package entropyweight_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/scimetric/entropyweight"
	"github.com/katalvlaran/scimetric/matrix"
)

const tol = 1e-12

func mustTable(t *testing.T, cols []string, rows [][]float64) entropyweight.Table {
	t.Helper()
	tb, err := entropyweight.NewTable(cols, rows)
	require.NoError(t, err)

	return tb
}

func TestCompute_Reference(t *testing.T) {
	tb := mustTable(t, []string{"spike", "ramp"}, [][]float64{
		{0, 1}, {0, 2}, {0, 3}, {1, 4},
	})

	res, err := entropyweight.Compute(tb)
	require.NoError(t, err)

	assert.Equal(t, []string{"spike", "ramp"}, res.Columns)
	assert.InDelta(t, 0.0, res.Entropy[0], tol, "all mass in one row")
	assert.InDelta(t, 0.7295739585136225, res.Entropy[1], tol)
	assert.InDelta(t, 0.7871375171356032, res.Weights[0], tol)
	assert.InDelta(t, 0.2128624828643968, res.Weights[1], tol)
	require.Len(t, res.Scores, 4)
	assert.InDelta(t, 0.0, res.Scores[0], tol)
	assert.InDelta(t, 0.14190832190959785, res.Scores[2], tol)
	assert.InDelta(t, 1.0, res.Scores[3], tol)
	assert.Zero(t, res.Dropped)
}

func TestCompute_WeightsSumToOne(t *testing.T) {
	t.Parallel()

	tables := map[string][][]float64{
		"three indicators": {{10, 3, 7}, {20, 1, 7}, {30, 4, 7}, {40, 1, 7}, {50, 5, 8}},
		"two rows":         {{1, 9}, {2, 3}},
		"negatives":        {{-5, 0.1}, {0, 0.4}, {5, 0.2}},
	}
	for name, rows := range tables {
		rows := rows
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cols := make([]string, len(rows[0]))
			for j := range cols {
				cols[j] = string(rune('a' + j))
			}
			res, err := entropyweight.Compute(mustTable(t, cols, rows))
			require.NoError(t, err)
			assert.InDelta(t, 1.0, floats.Sum(res.Weights), 1e-9)
			for _, w := range res.Weights {
				assert.GreaterOrEqual(t, w, 0.0)
			}
		})
	}
}

func TestCompute_ConstantColumnGetsZeroWeight(t *testing.T) {
	tb := mustTable(t, []string{"x", "flat"}, [][]float64{{1, 5}, {2, 5}, {3, 5}})

	res, err := entropyweight.Compute(tb)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Weights[0], tol)
	assert.InDelta(t, 0.0, res.Weights[1], tol)
	assert.InDelta(t, 1.0, res.Entropy[1], tol)
}

func TestCompute_DropsMissingRows(t *testing.T) {
	tb := mustTable(t, []string{"a", "b"}, [][]float64{
		{0, 1}, {math.NaN(), 7}, {0, 2}, {0, 3}, {1, 4},
	})

	res, err := entropyweight.Compute(tb)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Dropped)
	assert.Equal(t, []int{0, 2, 3, 4}, res.Rows)
	assert.Len(t, res.Scores, 4)
	assert.InDelta(t, 0.7871375171356032, res.Weights[0], tol, "same as the table without the NaN row")
}

func TestCompute_PreNormalized(t *testing.T) {
	// Column b sums to zero: entropy 1, weight 0.
	tb := mustTable(t, []string{"a", "b"}, [][]float64{{0.2, 0}, {0.8, 0}})

	res, err := entropyweight.Compute(tb, entropyweight.WithPreNormalized())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Entropy[1], tol)
	assert.InDelta(t, 1.0, res.Weights[0], tol)

	neg := mustTable(t, []string{"a"}, [][]float64{{0.5}, {-0.1}})
	_, err = entropyweight.Compute(neg, entropyweight.WithPreNormalized())
	require.ErrorIs(t, err, entropyweight.ErrNegativeValue)
}

func TestCompute_Errors(t *testing.T) {
	_, err := entropyweight.Compute(mustTable(t, []string{"a"}, [][]float64{{1}}))
	require.ErrorIs(t, err, entropyweight.ErrTooFewRows)

	_, err = entropyweight.Compute(mustTable(t, []string{"a"}, [][]float64{{1}, {math.NaN()}}))
	require.ErrorIs(t, err, entropyweight.ErrTooFewRows)

	_, err = entropyweight.Compute(mustTable(t, []string{"a", "b"}, [][]float64{{1, 2}, {1, 2}, {1, 2}}))
	require.ErrorIs(t, err, entropyweight.ErrUndefinedWeights)

	_, err = entropyweight.Compute(entropyweight.Table{})
	require.ErrorIs(t, err, entropyweight.ErrEmptyTable)
}

func TestNewTable_Errors(t *testing.T) {
	_, err := entropyweight.NewTable(nil, [][]float64{{1}})
	require.ErrorIs(t, err, entropyweight.ErrEmptyTable)

	_, err = entropyweight.NewTable([]string{"a", "a"}, [][]float64{{1, 2}})
	require.ErrorIs(t, err, entropyweight.ErrDuplicateColumn)

	_, err = entropyweight.NewTable([]string{"a", "b"}, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = entropyweight.NewTable([]string{"a"}, [][]float64{{math.Inf(1)}})
	require.ErrorIs(t, err, entropyweight.ErrNonFinite)
}

func TestNewTable_CopiesInput(t *testing.T) {
	rows := [][]float64{{0, 1}, {0, 2}, {0, 3}, {1, 4}}
	tb := mustTable(t, []string{"a", "b"}, rows)
	rows[3][0] = 0

	res, err := entropyweight.Compute(tb)
	require.NoError(t, err)
	assert.InDelta(t, 0.7871375171356032, res.Weights[0], tol)
}

func TestTableFromMatrix(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{0, 1}, {0, 2}, {0, 3}, {1, 4}})
	require.NoError(t, err)

	tb, err := entropyweight.TableFromMatrix([]string{"a", "b"}, m)
	require.NoError(t, err)
	assert.Equal(t, 4, tb.Rows())
	assert.Equal(t, []string{"a", "b"}, tb.Columns())

	_, err = entropyweight.TableFromMatrix([]string{"a"}, m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = entropyweight.TableFromMatrix([]string{"a"}, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestResult_WeightMapAndRank(t *testing.T) {
	res := &entropyweight.Result{
		Columns: []string{"a", "b", "c"},
		Weights: []float64{0.25, 0.5, 0.25},
	}
	assert.Equal(t, map[string]float64{"a": 0.25, "b": 0.5, "c": 0.25}, res.WeightMap())
	assert.Equal(t, []entropyweight.ColumnWeight{
		{Column: "b", Weight: 0.5},
		{Column: "a", Weight: 0.25},
		{Column: "c", Weight: 0.25},
	}, res.Rank())
}

func TestWithEpsilon_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { entropyweight.WithEpsilon(-1) })
	assert.NotPanics(t, func() { entropyweight.WithEpsilon(0) })
}
