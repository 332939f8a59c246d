package interdisc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory indicates that the matrix has no entry for a
	// referenced category pair.
	ErrUnknownCategory = errors.New("interdisc: category missing from matrix")

	// ErrInvalidSimilarity indicates a NaN or ±Inf matrix entry.
	ErrInvalidSimilarity = errors.New("interdisc: non-finite matrix entry")

	// ErrInvalidWeight indicates a negative, NaN or ±Inf field weight.
	ErrInvalidWeight = errors.New("interdisc: invalid field weight")

	// ErrDuplicateCategory indicates the same category listed twice for one subject.
	ErrDuplicateCategory = errors.New("interdisc: duplicate category")

	// ErrBadTotal indicates a non-positive total category count N.
	ErrBadTotal = errors.New("interdisc: total category count must be > 0")

	// ErrUnknownMatrixKind indicates a matrix kind other than Similarity or Distance.
	ErrUnknownMatrixKind = errors.New("interdisc: unknown matrix kind")

	// ErrNilLookup indicates a nil similarity/distance matrix.
	ErrNilLookup = errors.New("interdisc: nil matrix")
)

// Operation tags.
const (
	opDisparity   = "Disparity"
	opDIV         = "DIV"
	opRaoStirling = "RaoStirling"
	opValidate    = "ValidateFields"
)

func interdiscErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
