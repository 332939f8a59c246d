package cli

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/scimetric/comatrix"
	"github.com/katalvlaran/scimetric/internal/logging"
)

func newComatrixCmd(a *app) *cobra.Command {
	var (
		input        string
		minFrequency int
		allow        []string
		which        string
		format       string
	)
	cmd := &cobra.Command{
		Use:   "comatrix",
		Short: "Build co-occurrence and similarity matrices from tag lists",
		Long: `Build the co-occurrence frequency matrix of a set of documents and the
Ochiai, equivalence and cosine matrices derived from it.

Input is one document per line with comma-separated tags, or a JSON array
of tag arrays. JSON output carries every matrix; csv and tsv output the one
selected with --matrix.

Examples:
  scimetric comatrix -i keywords.txt --min-frequency 3
  scimetric comatrix -i keywords.txt --matrix cosine_similarity --format csv > sim.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Comatrix
			if cmd.Flags().Changed("min-frequency") {
				cfg.MinFrequency = minFrequency
			}
			if cmd.Flags().Changed("allow") {
				cfg.AllowList = allow
			}
			if cmd.Flags().Changed("matrix") {
				cfg.Matrix = which
			}
			outFormat := a.cfg.Output.Format
			if cmd.Flags().Changed("format") && !a.jsonOut {
				outFormat = format
			}
			if cfg.MinFrequency < 1 {
				return fmt.Errorf("--min-frequency must be >= 1, got %d", cfg.MinFrequency)
			}

			data, err := readInput(cmd, input)
			if err != nil {
				return err
			}
			docs, err := parseDocuments(data)
			if err != nil {
				return err
			}
			logging.Debug().Int("documents", len(docs)).Msg("documents loaded")

			res, err := logging.TimedValue("comatrix.build", func() (*comatrix.Result, error) {
				return comatrix.Build(docs,
					comatrix.WithMinFrequency(cfg.MinFrequency),
					comatrix.WithAllowList(cfg.AllowList...),
				)
			})
			if err != nil {
				return err
			}
			logging.Info().Int("categories", len(res.Categories)).Msg("co-occurrence matrix built")

			return a.writeComatrix(cmd.OutOrStdout(), res, cfg.Matrix, outFormat)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "documents file (- for stdin)")
	f.IntVar(&minFrequency, "min-frequency", comatrix.DefaultMinFrequency, "drop categories occurring fewer times")
	f.StringSliceVar(&allow, "allow", nil, "restrict to these categories")
	f.StringVar(&which, "matrix", "frequency", "matrix for csv/tsv output: frequency, ochiai, equivalence, cosine_similarity, cosine_distance")
	f.StringVar(&format, "format", "json", "output format: json, csv, tsv")

	return cmd
}

func parseDocuments(data []byte) ([][]string, error) {
	if firstByte(data) == '[' {
		var docs [][]string
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("decode documents: %w", err)
		}
		return docs, nil
	}
	ls, err := lines(data)
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}

	return comatrix.ParseDocuments(ls), nil
}

func selectMatrix(res *comatrix.Result, name string) (*comatrix.Labeled, error) {
	switch name {
	case "frequency":
		return res.Frequency, nil
	case "ochiai":
		return res.Ochiai, nil
	case "equivalence":
		return res.Equivalence, nil
	case "cosine_similarity":
		return res.CosineSimilarity, nil
	case "cosine_distance":
		return res.CosineDistance, nil
	default:
		return nil, fmt.Errorf("unknown matrix %q", name)
	}
}

func (a *app) writeComatrix(w io.Writer, res *comatrix.Result, name, format string) error {
	switch format {
	case "json":
		return a.writeJSON(w, res)
	case "csv", "tsv":
		m, err := selectMatrix(res, name)
		if err != nil {
			return err
		}
		if format == "csv" {
			return comatrix.WriteCSV(w, m)
		}
		return comatrix.WriteTSV(w, m)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
