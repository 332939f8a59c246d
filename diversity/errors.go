package diversity

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeCount indicates a category count below zero.
	ErrNegativeCount = errors.New("diversity: negative category count")

	// ErrNonFinite indicates a NaN or ±Inf category count.
	ErrNonFinite = errors.New("diversity: NaN or Inf category count")
)

const opValidate = "Validate"

// diversityErrorf wraps a sentinel with the operation and offending position.
func diversityErrorf(op string, idx int, err error) error {
	return fmt.Errorf("%s: index %d: %w", op, idx, err)
}
