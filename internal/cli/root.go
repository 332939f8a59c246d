// Package cli implements the scimetric command line.
package cli

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/scimetric/internal/config"
	"github.com/katalvlaran/scimetric/internal/logging"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	jsonOut    bool

	cfg *config.Config
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "scimetric",
		Short: "Bibliometric diversity and interdisciplinarity indicators",
		Long: `scimetric computes diversity indices over category counts, builds
category co-occurrence and similarity matrices from tag lists, scores
interdisciplinarity (Disparity, DIV, Rao-Stirling, True Diversity) and
derives objective indicator weights with the entropy-weight method.

Configuration is read from --config (YAML) and SCIMETRIC_* environment
variables; flags win over both.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")
	pf.BoolVar(&a.jsonOut, "json", false, "force JSON output")

	root.AddCommand(
		newDiversityCmd(a),
		newComatrixCmd(a),
		newInterdiscCmd(a),
		newEWMCmd(a),
	)

	return root
}

// Execute runs the scimetric command tree.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.jsonOut {
		cfg.Output.Format = "json"
	}
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Timestamp: true,
		RunID:     uuid.NewString(),
		Output:    cmd.ErrOrStderr(),
	})
	a.cfg = cfg
	logging.Debug().Str("command", cmd.Name()).Str("config", a.configPath).Msg("configuration loaded")

	return nil
}

func (a *app) writeJSON(w io.Writer, v any) error {
	var (
		out []byte
		err error
	)
	if a.cfg.Output.Indent {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))

	return err
}
