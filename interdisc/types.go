package interdisc

import (
	"fmt"
	"strings"
)

// Field is one category observed for a subject together with its weight:
// a raw count (Disparity, DIV) or a share in [0,1] (RaoStirling).
type Field struct {
	Category string  `json:"category" yaml:"category"`
	Weight   float64 `json:"weight" yaml:"weight"`
}

// Lookup is a square, symmetric category × category matrix.
// Value returns the entry for (a, b) or an error when either category is unknown.
type Lookup interface {
	Value(a, b string) (float64, error)
}

// MapMatrix is a nested-map matrix, m[a][b]. It may store only one triangle:
// when (a,b) is absent, (b,a) is used.
type MapMatrix map[string]map[string]float64

// Value implements Lookup.
func (m MapMatrix) Value(a, b string) (float64, error) {
	if v, ok := m[a][b]; ok {
		return v, nil
	}
	if v, ok := m[b][a]; ok {
		return v, nil
	}

	return 0, fmt.Errorf("(%q,%q): %w", a, b, ErrUnknownCategory)
}

// MatrixKind says whether a Lookup holds similarities or distances.
type MatrixKind int

const (
	// Similarity entries sᵢⱼ; distances are derived as 1 − sᵢⱼ.
	Similarity MatrixKind = iota

	// Distance entries dᵢⱼ are used as-is.
	Distance
)

// String returns the short code used on the command line ("s" or "d").
func (k MatrixKind) String() string {
	switch k {
	case Similarity:
		return "s"
	case Distance:
		return "d"
	default:
		return fmt.Sprintf("MatrixKind(%d)", int(k))
	}
}

// ParseMatrixKind accepts "s"/"similarity" and "d"/"distance".
func ParseMatrixKind(s string) (MatrixKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "similarity":
		return Similarity, nil
	case "d", "distance":
		return Distance, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMatrixKind)
	}
}

// DIVScore carries both DIV variants.
type DIVScore struct {
	// DIV = (V/N) · B · Σdᵢⱼ / (V·(V−1)).
	DIV float64 `json:"div" yaml:"div"`

	// DIVStar = V · B · Σdᵢⱼ.
	DIVStar float64 `json:"div_star" yaml:"div_star"`
}

// RSTD carries the Rao-Stirling and True Diversity values of one subject.
type RSTD struct {
	RaoStirling   float64 `json:"rao_stirling" yaml:"rao_stirling"`
	TrueDiversity float64 `json:"true_diversity" yaml:"true_diversity"`
}
