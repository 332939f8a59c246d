package entropyweight

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scimetric/matrix"
)

// Table is an immutable M×N indicator table: one row per evaluated object,
// one named column per indicator. NaN marks a missing value.
type Table struct {
	columns []string
	rows    [][]float64
}

// NewTable copies columns and rows into a Table.
//
// Errors:
//   - ErrEmptyTable: no columns or no rows.
//   - ErrDuplicateColumn: a column name repeats.
//   - matrix.ErrBadShape: a row length differs from len(columns).
//   - ErrNonFinite: a ±Inf cell.
func NewTable(columns []string, rows [][]float64) (Table, error) {
	if len(columns) == 0 || len(rows) == 0 {
		return Table{}, ewmErrorf(opNewTable, ErrEmptyTable)
	}
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			return Table{}, ewmErrorf(opNewTable, fmt.Errorf("%q: %w", c, ErrDuplicateColumn))
		}
		seen[c] = struct{}{}
	}

	out := Table{
		columns: append([]string(nil), columns...),
		rows:    make([][]float64, len(rows)),
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return Table{}, ewmErrorf(opNewTable,
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), len(columns), matrix.ErrBadShape))
		}
		for j, v := range row {
			if math.IsInf(v, 0) {
				return Table{}, ewmErrorf(opNewTable, fmt.Errorf("cell (%d,%d): %w", i, j, ErrNonFinite))
			}
		}
		out.rows[i] = append([]float64(nil), row...)
	}

	return out, nil
}

// TableFromMatrix names the columns of m. m must have been built without the
// NaN guard (matrix.WithNoValidateNaNInf) if it carries missing values.
func TableFromMatrix(columns []string, m matrix.Matrix) (Table, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Table{}, ewmErrorf(opTableFromMatrix, err)
	}
	if len(columns) != m.Cols() {
		return Table{}, ewmErrorf(opTableFromMatrix,
			fmt.Errorf("%d names for %d columns: %w", len(columns), m.Cols(), matrix.ErrDimensionMismatch))
	}
	if d, ok := m.(*matrix.Dense); ok {
		return NewTable(columns, d.ToRows())
	}
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			v, err := m.At(i, j)
			if err != nil {
				return Table{}, ewmErrorf(opTableFromMatrix, err)
			}
			rows[i][j] = v
		}
	}

	return NewTable(columns, rows)
}

// Columns returns a copy of the indicator names.
func (t Table) Columns() []string { return append([]string(nil), t.columns...) }

// Rows returns the number of objects, including rows with missing values.
func (t Table) Rows() int { return len(t.rows) }

// complete returns the rows without NaN together with their indices in t.
func (t Table) complete() ([][]float64, []int) {
	kept := make([][]float64, 0, len(t.rows))
	idx := make([]int, 0, len(t.rows))
	for i, row := range t.rows {
		missing := false
		for _, v := range row {
			if math.IsNaN(v) {
				missing = true
				break
			}
		}
		if !missing {
			kept = append(kept, row)
			idx = append(idx, i)
		}
	}

	return kept, idx
}
