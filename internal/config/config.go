// SPDX-License-Identifier: MIT
// Package config loads lvmat settings from defaults, an optional lvmat.yaml,
// LVMAT_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MaxPrecision caps output.precision; float64 never needs more than 17 digits.
const MaxPrecision = 17

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration of one lvmat invocation.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Batch  BatchConfig  `mapstructure:"batch"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls how results are rendered.
// Precision -1 prints the shortest representation that round-trips.
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
}

// BatchConfig controls the batch evaluator.
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

// Defaults returns the built-in values for every key.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":        "warn",
		"log.format":       "auto",
		"output.format":    FormatText,
		"output.precision": -1,
		"batch.workers":    runtime.NumCPU(),
	}
}

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"format":     "output.format",
	"precision":  "output.precision",
	"workers":    "batch.workers",
}

// Load resolves the configuration. configFile, when non-empty, must exist;
// otherwise lvmat.yaml is searched in the user config dir and the current
// directory and silently skipped when absent. Only flags present in flags and
// explicitly changed override lower layers.
func Load(flags *pflag.FlagSet, configFile string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("lvmat")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "lvmat"))
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix("lvmat")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}

	return c, nil
}

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: output.format %q: must be one of text, json, yaml", ErrInvalidConfig, c.Output.Format)
	}
	if c.Output.Precision < -1 || c.Output.Precision > MaxPrecision {
		return fmt.Errorf("%w: output.precision %d: must be in [-1, %d]", ErrInvalidConfig, c.Output.Precision, MaxPrecision)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: batch.workers %d: must be >= 1", ErrInvalidConfig, c.Batch.Workers)
	}
	switch c.Log.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q: must be one of auto, console, json", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}
