package cli

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/scimetric/comatrix"
	"github.com/katalvlaran/scimetric/interdisc"
	"github.com/katalvlaran/scimetric/internal/logging"
)

// interdiscReport is the output of the interdisc command.
type interdiscReport struct {
	Variety         int     `json:"variety"`
	TotalCategories int     `json:"total_categories"`
	Balance         float64 `json:"balance"`
	Disparity       float64 `json:"disparity"`
	interdisc.DIVScore
	interdisc.RSTD
}

// distanceAsSimilarity exposes a distance Lookup as similarities.
type distanceAsSimilarity struct{ interdisc.Lookup }

func (d distanceAsSimilarity) Value(a, b string) (float64, error) {
	v, err := d.Lookup.Value(a, b)
	return 1 - v, err
}

func newInterdiscCmd(a *app) *cobra.Command {
	var (
		fieldsPath string
		matrixPath string
		kind       string
		total      int
	)
	cmd := &cobra.Command{
		Use:   "interdisc [category=weight...]",
		Short: "Score the interdisciplinarity of one subject",
		Long: `Compute Balance, Disparity, DIV, DIV*, Rao-Stirling and True Diversity
for one subject's categories against a similarity or distance matrix.

Fields come from the arguments (category=count) or from --fields as a JSON
array of {"category","weight"} objects or a JSON object category→count.
The matrix is a csv/tsv grid as written by "comatrix --format csv", or a
JSON object of objects. Rao-Stirling uses the counts converted to shares.

Examples:
  scimetric interdisc --matrix sim.csv ecology=3 genetics=1 statistics=2
  scimetric interdisc --matrix dist.tsv --kind d --fields subject.json --total 250`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Interdisc
			if cmd.Flags().Changed("kind") {
				cfg.MatrixKind = kind
			}
			if cmd.Flags().Changed("total") {
				cfg.TotalCategories = total
			}
			mk, err := interdisc.ParseMatrixKind(cfg.MatrixKind)
			if err != nil {
				return err
			}
			if matrixPath == "" {
				return fmt.Errorf("--matrix is required")
			}

			fields, err := fieldsInput(cmd, fieldsPath, args)
			if err != nil {
				return err
			}
			m, size, err := matrixInput(cmd, matrixPath)
			if err != nil {
				return err
			}
			n := cfg.TotalCategories
			if n == 0 {
				n = size
			}

			var report interdiscReport
			err = logging.Timed("interdisc.score", func() error {
				var err error
				sim := m
				if mk == interdisc.Distance {
					sim = distanceAsSimilarity{m}
				}
				report.Variety = len(fields)
				report.TotalCategories = n
				report.Balance = interdisc.Balance(fields)
				if report.Disparity, err = interdisc.Disparity(fields, sim); err != nil {
					return err
				}
				if report.DIVScore, err = interdisc.DIV(fields, sim, n, report.Balance); err != nil {
					return err
				}
				report.RSTD, err = interdisc.RaoStirling(interdisc.Shares(fields), m, mk)
				return err
			})
			if err != nil {
				return err
			}

			return a.writeJSON(cmd.OutOrStdout(), report)
		},
	}
	f := cmd.Flags()
	f.StringVar(&fieldsPath, "fields", "", "JSON file with the subject's categories (- for stdin)")
	f.StringVarP(&matrixPath, "matrix", "m", "", "similarity or distance matrix file")
	f.StringVar(&kind, "kind", "s", "matrix kind: s (similarity) or d (distance)")
	f.IntVar(&total, "total", 0, "categories in the reference set (N in DIV); 0 uses the matrix size")

	return cmd
}

func fieldsInput(cmd *cobra.Command, path string, args []string) ([]interdisc.Field, error) {
	if len(args) > 0 {
		fields := make([]interdisc.Field, len(args))
		for i, arg := range args {
			name, raw, ok := strings.Cut(arg, "=")
			if !ok || name == "" {
				return nil, fmt.Errorf("field %q: want category=weight", arg)
			}
			w, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", arg, err)
			}
			fields[i] = interdisc.Field{Category: name, Weight: w}
		}
		return fields, nil
	}

	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	switch firstByte(data) {
	case '[':
		var fields []interdisc.Field
		if err = json.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("decode fields: %w", err)
		}
		return fields, nil
	case '{':
		var byName map[string]float64
		if err = json.Unmarshal(data, &byName); err != nil {
			return nil, fmt.Errorf("decode fields: %w", err)
		}
		return fieldsFromMap(byName), nil
	default:
		return nil, fmt.Errorf("no fields given")
	}
}

// fieldsFromMap orders fields by category so results are reproducible.
func fieldsFromMap(byName map[string]float64) []interdisc.Field {
	fields := make([]interdisc.Field, 0, len(byName))
	for name, w := range byName {
		fields = append(fields, interdisc.Field{Category: name, Weight: w})
	}
	sortFields(fields)

	return fields
}

// matrixInput loads a grid or nested-map matrix and reports its size.
func matrixInput(cmd *cobra.Command, path string) (interdisc.Lookup, int, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, 0, err
	}
	if firstByte(data) == '{' {
		var mm interdisc.MapMatrix
		if err = json.Unmarshal(data, &mm); err != nil {
			return nil, 0, fmt.Errorf("decode matrix: %w", err)
		}
		return mm, mapMatrixSize(mm), nil
	}
	grid, err := comatrix.ReadGrid(bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}

	return grid, grid.Len(), nil
}

func mapMatrixSize(mm interdisc.MapMatrix) int {
	seen := make(map[string]struct{}, len(mm))
	for a, row := range mm {
		seen[a] = struct{}{}
		for b := range row {
			seen[b] = struct{}{}
		}
	}

	return len(seen)
}
