package comatrix

import (
	"fmt"

	"github.com/katalvlaran/scimetric/matrix"
)

// Labeled is a square matrix whose rows and columns are named by category.
// It is read-only once returned by Build.
type Labeled struct {
	labels []string
	index  map[string]int
	m      matrix.Matrix
}

func newLabeled(labels []string, index map[string]int, m matrix.Matrix) *Labeled {
	return &Labeled{labels: labels, index: index, m: m}
}

// Value returns the entry for categories (a, b). A nil *Labeled yields
// ErrNilMatrix.
func (l *Labeled) Value(a, b string) (float64, error) {
	if l == nil {
		return 0, ErrNilMatrix
	}
	i, ok := l.index[a]
	if !ok {
		return 0, fmt.Errorf("%q: %w", a, ErrUnknownCategory)
	}
	j, ok := l.index[b]
	if !ok {
		return 0, fmt.Errorf("%q: %w", b, ErrUnknownCategory)
	}

	return l.m.At(i, j)
}

// Labels returns a copy of the category labels in row order.
func (l *Labeled) Labels() []string {
	if l == nil {
		return nil
	}

	return append([]string(nil), l.labels...)
}

// Len returns the number of categories; zero for a nil *Labeled.
func (l *Labeled) Len() int {
	if l == nil {
		return 0
	}

	return len(l.labels)
}

// Matrix returns a deep copy of the underlying values.
func (l *Labeled) Matrix() matrix.Matrix { return l.m.Clone() }

// Row returns a copy of the row for category c.
func (l *Labeled) Row(c string) ([]float64, error) {
	if l == nil {
		return nil, ErrNilMatrix
	}
	i, ok := l.index[c]
	if !ok {
		return nil, fmt.Errorf("%q: %w", c, ErrUnknownCategory)
	}
	if d, ok := l.m.(*matrix.Dense); ok {
		return d.Row(i)
	}
	out := make([]float64, len(l.labels))
	for j := range out {
		v, err := l.m.At(i, j)
		if err != nil {
			return nil, err
		}
		out[j] = v
	}

	return out, nil
}

// Map returns the matrix as a nested map, m[a][b].
func (l *Labeled) Map() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(l.labels))
	for i, a := range l.labels {
		row := make(map[string]float64, len(l.labels))
		for j, b := range l.labels {
			row[b], _ = l.m.At(i, j)
		}
		out[a] = row
	}

	return out
}
