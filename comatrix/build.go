package comatrix

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/scimetric/matrix"
)

// Result carries the filtered categories and every matrix derived from them.
// All matrices share the row/column order of Categories.
type Result struct {
	Categories []string `json:"categories" yaml:"categories"`

	// Counts[i] is the number of occurrences fᵢ of Categories[i].
	Counts []int `json:"counts" yaml:"counts"`

	// Strength[i] is the total link strength Σⱼ cᵢⱼ of Categories[i].
	Strength []float64 `json:"strength" yaml:"strength"`

	Frequency        *Labeled `json:"frequency" yaml:"-"`
	Ochiai           *Labeled `json:"ochiai" yaml:"-"`
	Equivalence      *Labeled `json:"equivalence" yaml:"-"`
	CosineSimilarity *Labeled `json:"cosine_similarity" yaml:"-"`
	CosineDistance   *Labeled `json:"cosine_distance" yaml:"-"`
}

// Build constructs the co-occurrence matrices of docs.
//
// Implementation:
//   - Stage 1: count occurrences of every non-empty tag across all documents.
//   - Stage 2: keep tags with count ≥ MinFrequency that pass the allow-list;
//     sort them.
//   - Stage 3: for each document, count every ordered pair (i,j), i≠j, of
//     surviving tags; the result is symmetric with a zero diagonal.
//   - Stage 4: derive link strengths (row sums), Ochiai, Equivalence and
//     cosine matrices.
//
// A tag repeated inside one document counts once per appearance, for both
// occurrences and pairs.
//
// Errors: ErrNoCategories when filtering leaves nothing.
//
// Complexity: O(Σ|doc|² + K³) for K surviving categories.
func Build(docs [][]string, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: occurrences.
	occ := make(map[string]int)
	for _, doc := range docs {
		for _, tag := range doc {
			if tag != "" {
				occ[tag]++
			}
		}
	}

	// Stage 2: filter and order.
	cats := make([]string, 0, len(occ))
	for c, n := range occ {
		if n >= o.minFrequency && o.allowed(c) {
			cats = append(cats, c)
		}
	}
	if len(cats) == 0 {
		return nil, comatrixErrorf(opBuild, fmt.Errorf("%d distinct tags, min frequency %d: %w",
			len(occ), o.minFrequency, ErrNoCategories))
	}
	sort.Strings(cats)
	k := len(cats)
	index := make(map[string]int, k)
	counts := make([]int, k)
	for i, c := range cats {
		index[c] = i
		counts[i] = occ[c]
	}

	// Stage 3: pair counts.
	freq, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, comatrixErrorf(opBuild, err)
	}
	ids := make([]int, 0, 16)
	var v float64
	for _, doc := range docs {
		ids = ids[:0]
		for _, tag := range doc {
			if i, ok := index[tag]; ok {
				ids = append(ids, i)
			}
		}
		for _, i := range ids {
			for _, j := range ids {
				if i == j {
					continue
				}
				if v, err = freq.At(i, j); err != nil {
					return nil, comatrixErrorf(opBuild, err)
				}
				if err = freq.Set(i, j, v+1); err != nil {
					return nil, comatrixErrorf(opBuild, err)
				}
			}
		}
	}

	// Stage 4: derived matrices.
	strength, err := matrix.RowSums(freq)
	if err != nil {
		return nil, comatrixErrorf(opBuild, err)
	}
	ochiai, equiv, err := associationMatrices(freq, counts)
	if err != nil {
		return nil, comatrixErrorf(opBuild, err)
	}
	sim, dist, err := cosineMatrices(freq)
	if err != nil {
		return nil, comatrixErrorf(opBuild, err)
	}

	return &Result{
		Categories:       append([]string(nil), cats...),
		Counts:           counts,
		Strength:         strength,
		Frequency:        newLabeled(cats, index, freq),
		Ochiai:           newLabeled(cats, index, ochiai),
		Equivalence:      newLabeled(cats, index, equiv),
		CosineSimilarity: newLabeled(cats, index, sim),
		CosineDistance:   newLabeled(cats, index, dist),
	}, nil
}

// associationMatrices returns Ochiai cᵢⱼ/(√fᵢ·√fⱼ) and the equivalence index
// cᵢⱼ²/(fᵢ·fⱼ). The equivalence diagonal is 1; Ochiai keeps the zero diagonal.
func associationMatrices(freq *matrix.Dense, counts []int) (*matrix.Dense, *matrix.Dense, error) {
	k := len(counts)
	ochiai, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, nil, err
	}
	equiv, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, nil, err
	}
	var c, fi, fj float64
	for i := 0; i < k; i++ {
		fi = float64(counts[i])
		if err = equiv.Set(i, i, 1); err != nil {
			return nil, nil, err
		}
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			if c, err = freq.At(i, j); err != nil {
				return nil, nil, err
			}
			if c == 0 {
				continue
			}
			fj = float64(counts[j])
			if err = ochiai.Set(i, j, c/(math.Sqrt(fi)*math.Sqrt(fj))); err != nil {
				return nil, nil, err
			}
			if err = equiv.Set(i, j, c*c/(fi*fj)); err != nil {
				return nil, nil, err
			}
		}
	}

	return ochiai, equiv, nil
}

// cosineMatrices returns the row-wise cosine similarity of freq and the
// matching distance. A row of zeros has similarity 0 with every row,
// itself included.
func cosineMatrices(freq *matrix.Dense) (matrix.Matrix, matrix.Matrix, error) {
	unit, _, err := matrix.NormalizeRowsL2(freq)
	if err != nil {
		return nil, nil, err
	}
	unitT, err := matrix.Transpose(unit)
	if err != nil {
		return nil, nil, err
	}
	gram, err := matrix.Mul(unit, unitT)
	if err != nil {
		return nil, nil, err
	}
	sim, err := matrix.Clip(gram, -1, 1)
	if err != nil {
		return nil, nil, err
	}

	k := sim.Rows()
	raw, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, nil, err
	}
	var s float64
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			if s, err = sim.At(i, j); err != nil {
				return nil, nil, err
			}
			if err = raw.Set(i, j, 1-s); err != nil {
				return nil, nil, err
			}
		}
	}
	dist, err := matrix.Clip(raw, 0, 2)
	if err != nil {
		return nil, nil, err
	}

	return sim, dist, nil
}
