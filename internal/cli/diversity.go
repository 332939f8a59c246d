package cli

import (
	"errors"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/scimetric/diversity"
	"github.com/katalvlaran/scimetric/internal/logging"
)

var errNoCounts = errors.New("no counts given")

func newDiversityCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "diversity [count...]",
		Short: "Compute diversity indicators of a count vector",
		Long: `Compute variety, Shannon, evenness, Simpson, inverse Simpson,
Gini-Simpson, Brillouin and Gini for one count vector.

Counts come from the arguments, or from --input as a JSON array of numbers
or a JSON object mapping category to count.

Examples:
  scimetric diversity 10 20 30
  scimetric diversity --input counts.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dist, err := diversityInput(cmd, input, args)
			if err != nil {
				return err
			}
			if err = diversity.Validate(dist); err != nil {
				return err
			}
			profile, err := logging.TimedValue("diversity.summarize", func() (diversity.Profile, error) {
				return diversity.Summarize(dist), nil
			})
			if err != nil {
				return err
			}

			return a.writeJSON(cmd.OutOrStdout(), profile)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON file with counts (- for stdin)")

	return cmd
}

func diversityInput(cmd *cobra.Command, input string, args []string) (diversity.Distribution, error) {
	if len(args) > 0 {
		counts := make(diversity.Counts, len(args))
		for i, s := range args {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("count %d %q: %w", i, s, err)
			}
			counts[i] = v
		}
		return counts, nil
	}

	data, err := readInput(cmd, input)
	if err != nil {
		return nil, err
	}
	switch firstByte(data) {
	case '[':
		var counts diversity.Counts
		if err = json.Unmarshal(data, &counts); err != nil {
			return nil, fmt.Errorf("decode counts: %w", err)
		}
		return counts, nil
	case '{':
		var labeled diversity.LabeledCounts
		if err = json.Unmarshal(data, &labeled); err != nil {
			return nil, fmt.Errorf("decode counts: %w", err)
		}
		return labeled, nil
	default:
		return nil, errNoCounts
	}
}
