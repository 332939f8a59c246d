package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

var validate = validator.New()

// Config is the root of the YAML configuration file.
type Config struct {
	Logging       LoggingConfig       `yaml:"logging"`
	Output        OutputConfig        `yaml:"output"`
	Comatrix      ComatrixConfig      `yaml:"comatrix"`
	Interdisc     InterdiscConfig     `yaml:"interdisc"`
	EntropyWeight EntropyWeightConfig `yaml:"entropy_weight"`
}

// LoggingConfig sets the zerolog level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn warning error disabled off"`
	Format string `yaml:"format" validate:"omitempty,oneof=json console"`
}

// OutputConfig controls how command results are written.
type OutputConfig struct {
	// Format is json, csv or tsv. Tabular formats apply to matrices only.
	Format string `yaml:"format" validate:"oneof=json csv tsv"`
	Indent bool   `yaml:"indent"`
}

// ComatrixConfig holds the defaults of the comatrix command.
type ComatrixConfig struct {
	MinFrequency int      `yaml:"min_frequency" validate:"min=1"`
	AllowList    []string `yaml:"allow_list"`

	// Matrix selects the exported matrix: frequency, ochiai, equivalence,
	// cosine_similarity or cosine_distance.
	Matrix string `yaml:"matrix" validate:"oneof=frequency ochiai equivalence cosine_similarity cosine_distance"`
}

// InterdiscConfig holds the defaults of the interdisc command.
type InterdiscConfig struct {
	// TotalCategories is N in DIV; 0 means the number of matrix categories.
	TotalCategories int `yaml:"total_categories" validate:"min=0"`

	// MatrixKind is "s" (similarity) or "d" (distance) for Rao-Stirling.
	MatrixKind string `yaml:"matrix_kind" validate:"oneof=s d similarity distance"`
}

// EntropyWeightConfig holds the defaults of the ewm command.
type EntropyWeightConfig struct {
	PreNormalized bool `yaml:"pre_normalized"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "json",
			Indent: true,
		},
		Comatrix: ComatrixConfig{
			MinFrequency: 1,
			Matrix:       "frequency",
		},
		Interdisc: InterdiscConfig{
			MatrixKind: "s",
		},
	}
}

// Load reads path (optional) over the defaults, then applies SCIMETRIC_*
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SCIMETRIC_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SCIMETRIC_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("SCIMETRIC_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("SCIMETRIC_MIN_FREQUENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Comatrix.MinFrequency = n
		}
	}
	if v := os.Getenv("SCIMETRIC_ALLOW_LIST"); v != "" {
		cfg.Comatrix.AllowList = splitList(v)
	}
	if v := os.Getenv("SCIMETRIC_MATRIX"); v != "" {
		cfg.Comatrix.Matrix = v
	}
	if v := os.Getenv("SCIMETRIC_TOTAL_CATEGORIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Interdisc.TotalCategories = n
		}
	}
	if v := os.Getenv("SCIMETRIC_MATRIX_KIND"); v != "" {
		cfg.Interdisc.MatrixKind = v
	}
	if v := os.Getenv("SCIMETRIC_PRE_NORMALIZED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EntropyWeight.PreNormalized = b
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// Validate checks enumerated and ranged fields against their tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}
