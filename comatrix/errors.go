package comatrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCategories indicates that filtering left no category to build a matrix over.
	ErrNoCategories = errors.New("comatrix: no categories left after filtering")

	// ErrUnknownCategory indicates a lookup by a label the matrix does not carry.
	ErrUnknownCategory = errors.New("comatrix: unknown category")

	// ErrBadGrid indicates a labelled grid that is not square, repeats a
	// label or holds a non-numeric cell.
	ErrBadGrid = errors.New("comatrix: malformed grid")

	// ErrNilMatrix indicates a nil *Labeled passed to an exporter or lookup.
	ErrNilMatrix = errors.New("comatrix: nil matrix")
)

const (
	opBuild    = "Build"
	opWriteCSV = "WriteCSV"
	opWriteTSV = "WriteTSV"
	opReadGrid = "ReadGrid"
)

func comatrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
