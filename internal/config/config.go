// Package config loads CLI configuration from .betweenness.yaml,
// BETWEENNESS_* environment variables and command-line flags via viper.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/betweenness/centrality"
)

// ErrInvalidConfig is returned when the merged configuration is unusable.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

// Config holds all runtime configuration for one centrality run.
type Config struct {
	Input       string `mapstructure:"input"`
	Generate    string `mapstructure:"generate"`
	Workers     int    `mapstructure:"workers"`
	Normalized  bool   `mapstructure:"normalized"`
	Mode        string `mapstructure:"mode"`
	Format      string `mapstructure:"format"`
	Verbose     bool   `mapstructure:"verbose"`
	Separator   string `mapstructure:"separator"`
	StripSuffix string `mapstructure:"strip_suffix"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, then validates it.
func Load() (Config, error) {
	viper.SetDefault("input", "")
	viper.SetDefault("generate", "")
	viper.SetDefault("workers", 1)
	viper.SetDefault("normalized", false)
	viper.SetDefault("mode", centrality.Dependency.String())
	viper.SetDefault("format", FormatTSV)
	viper.SetDefault("verbose", false)
	viper.SetDefault("separator", "\t")
	viper.SetDefault("strip_suffix", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case c.Input == "" && c.Generate == "":
		return fmt.Errorf("%w: one of input or generate is required", ErrInvalidConfig)
	case c.Input != "" && c.Generate != "":
		return fmt.Errorf("%w: input and generate are mutually exclusive", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	case c.Format != FormatTSV && c.Format != FormatJSON:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	case len([]rune(c.Separator)) != 1:
		return fmt.Errorf("%w: separator must be a single character, got %q", ErrInvalidConfig, c.Separator)
	}
	if _, err := centrality.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// AccumulationMode returns the parsed centrality mode. Call after Validate.
func (c Config) AccumulationMode() centrality.Mode {
	m, _ := centrality.ParseMode(c.Mode)
	return m
}

// SeparatorRune returns the edge-list delimiter. Call after Validate.
func (c Config) SeparatorRune() rune {
	return []rune(c.Separator)[0]
}
