package entropyweight

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable indicates a table without columns or rows.
	ErrEmptyTable = errors.New("entropyweight: empty table")

	// ErrDuplicateColumn indicates two indicators with the same name.
	ErrDuplicateColumn = errors.New("entropyweight: duplicate column")

	// ErrNonFinite indicates a ±Inf cell. NaN is a missing value, not an error.
	ErrNonFinite = errors.New("entropyweight: non-finite value")

	// ErrTooFewRows indicates fewer than two usable rows; k = 1/ln M is undefined.
	ErrTooFewRows = errors.New("entropyweight: at least two complete rows required")

	// ErrNegativeValue indicates a negative cell in a table declared pre-normalised.
	ErrNegativeValue = errors.New("entropyweight: negative value")

	// ErrUndefinedWeights indicates Σ dⱼ = 0: every indicator is maximally disordered.
	ErrUndefinedWeights = errors.New("entropyweight: weights undefined (zero total redundancy)")
)

const (
	opNewTable        = "NewTable"
	opTableFromMatrix = "TableFromMatrix"
	opCompute         = "Compute"
)

func ewmErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
