package cli

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scimetric/entropyweight"
	"github.com/katalvlaran/scimetric/internal/logging"
)

type objectScore struct {
	ID    string  `json:"id,omitempty"`
	Row   int     `json:"row"`
	Score float64 `json:"score"`
}

type ewmReport struct {
	Weights    map[string]float64           `json:"weights"`
	Rank       []entropyweight.ColumnWeight `json:"rank"`
	Entropy    map[string]float64           `json:"entropy"`
	Redundancy map[string]float64           `json:"redundancy"`
	Scores     []objectScore                `json:"scores"`
	Dropped    int                          `json:"dropped"`
}

func newEWMCmd(a *app) *cobra.Command {
	var (
		input    string
		idColumn bool
		preNorm  bool
	)
	cmd := &cobra.Command{
		Use:   "ewm",
		Short: "Weight indicators with the entropy-weight method",
		Long: `Derive objective indicator weights and composite scores from a table of
evaluated objects (rows) by indicators (columns).

Input is csv or tsv with a header row of indicator names. Empty cells and
NA/NaN/null are missing values; rows holding one are dropped. With
--id-column the first column names each object.

Examples:
  scimetric ewm -i indicators.csv --id-column`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("pre-normalized") {
				a.cfg.EntropyWeight.PreNormalized = preNorm
			}
			data, err := readInput(cmd, input)
			if err != nil {
				return err
			}
			ids, table, err := parseIndicatorTable(data, idColumn)
			if err != nil {
				return err
			}

			var opts []entropyweight.Option
			if a.cfg.EntropyWeight.PreNormalized {
				opts = append(opts, entropyweight.WithPreNormalized())
			}
			res, err := logging.TimedValue("ewm.compute", func() (*entropyweight.Result, error) {
				return entropyweight.Compute(table, opts...)
			})
			if err != nil {
				return err
			}
			if res.Dropped > 0 {
				logging.Warn().Int("dropped", res.Dropped).Msg("rows with missing values skipped")
			}

			return a.writeJSON(cmd.OutOrStdout(), newEWMReport(res, ids))
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "indicator table, csv or tsv (- for stdin)")
	f.BoolVar(&idColumn, "id-column", false, "first column holds object identifiers")
	f.BoolVar(&preNorm, "pre-normalized", false, "values are already scaled into [0,1]")

	return cmd
}

func newEWMReport(res *entropyweight.Result, ids []string) ewmReport {
	byName := func(v []float64) map[string]float64 {
		out := make(map[string]float64, len(res.Columns))
		for j, c := range res.Columns {
			out[c] = v[j]
		}
		return out
	}
	scores := make([]objectScore, len(res.Scores))
	for i, s := range res.Scores {
		row := res.Rows[i]
		scores[i] = objectScore{Row: row, Score: s}
		if ids != nil {
			scores[i].ID = ids[row]
		}
	}

	return ewmReport{
		Weights:    res.WeightMap(),
		Rank:       res.Rank(),
		Entropy:    byName(res.Entropy),
		Redundancy: byName(res.Redundancy),
		Scores:     scores,
		Dropped:    res.Dropped,
	}
}

// parseIndicatorTable reads a delimited table with a header row.
func parseIndicatorTable(data []byte, idColumn bool) ([]string, entropyweight.Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	if head, _, _ := bytes.Cut(data, []byte("\n")); bytes.IndexByte(head, '\t') >= 0 {
		r.Comma = '\t'
	}
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, entropyweight.Table{}, fmt.Errorf("read table: %w", err)
	}
	if len(records) < 2 {
		return nil, entropyweight.Table{}, fmt.Errorf("table needs a header and at least one row")
	}

	skip := 0
	if idColumn {
		skip = 1
	}
	columns := records[0][skip:]
	var ids []string
	if idColumn {
		ids = make([]string, 0, len(records)-1)
	}
	rows := make([][]float64, 0, len(records)-1)
	for i, rec := range records[1:] {
		if idColumn {
			ids = append(ids, rec[0])
		}
		row := make([]float64, len(rec)-skip)
		for j, cell := range rec[skip:] {
			if row[j], err = parseCell(cell); err != nil {
				return nil, entropyweight.Table{}, fmt.Errorf("row %d column %q: %w", i+1, columns[j], err)
			}
		}
		rows = append(rows, row)
	}

	table, err := entropyweight.NewTable(columns, rows)
	if err != nil {
		return nil, entropyweight.Table{}, err
	}

	return ids, table, nil
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "na", "nan", "null":
		return math.NaN(), nil
	}

	return strconv.ParseFloat(s, 64)
}
