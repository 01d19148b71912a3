// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/katalvlaran/tollgrid/aggregate"
	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/katalvlaran/tollgrid/toll"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultConfigFile is looked up in the working directory when --config is unset.
const DefaultConfigFile = "tollgrid.yaml"

// EnvPrefix marks environment overrides: TOLLGRID_OUTPUT=json,
// TOLLGRID_RESCALE__THRESHOLD=30 (double underscore nests).
const EnvPrefix = "TOLLGRID_"

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// Output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatCSV      = "csv"
)

// formats lists the accepted --output values.
var formats = []string{FormatText, FormatMarkdown, FormatJSON, FormatYAML, FormatCSV}

// RescaleConfig mirrors the matrix rescale options.
type RescaleConfig struct {
	Threshold float64 `koanf:"threshold"`
	Above     float64 `koanf:"above"`
	Below     float64 `koanf:"below"`
	Decimals  int     `koanf:"decimals"`
}

// Config holds all CLI configuration options.
type Config struct {
	Output         string             `koanf:"output"`
	Verbose        bool               `koanf:"verbose"`
	GroupThreshold float64            `koanf:"group_threshold"`
	WithinPercent  float64            `koanf:"within_percent"`
	Rescale        RescaleConfig      `koanf:"rescale"`
	Rates          map[string]float64 `koanf:"rates"`

	// FileUsed is the config file that was loaded, empty if none.
	FileUsed string `koanf:"-"`
}

// flagKeys maps flag names onto config keys where kebab → snake is not enough.
var flagKeys = map[string]string{
	"rescale-threshold": "rescale.threshold",
	"rescale-above":     "rescale.above",
	"rescale-below":     "rescale.below",
	"rescale-decimals":  "rescale.decimals",
	"percent":           "within_percent",
}

// defaults is the lowest configuration layer.
func defaults() map[string]any {
	m := map[string]any{
		"output":            FormatText,
		"verbose":           false,
		"group_threshold":   aggregate.DefaultRouteThreshold,
		"within_percent":    aggregate.DefaultPercent,
		"rescale.threshold": matrix.DefaultRescaleThreshold,
		"rescale.above":     matrix.DefaultRescaleAbove,
		"rescale.below":     matrix.DefaultRescaleBelow,
		"rescale.decimals":  matrix.DefaultRescaleDecimals,
	}
	for _, r := range toll.DefaultRates() {
		m["rates."+r.Vehicle] = r.Coefficient
	}

	return m
}

// LoadConfig loads configuration from defaults, file, environment and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags the user actually set are considered.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: TOLLGRID_RESCALE__ABOVE -> rescale.above
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// findConfigFile returns the explicit path, or DefaultConfigFile if present.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}

	return ""
}

// Validate rejects values the library option setters would panic on.
func (c *Config) Validate() error {
	if !slices.Contains(formats, c.Output) {
		return fmt.Errorf("output %q (want one of %s): %w", c.Output, strings.Join(formats, ", "), ErrInvalidConfig)
	}
	if c.Rescale.Decimals < 0 || c.Rescale.Decimals > 15 {
		return fmt.Errorf("rescale.decimals %d (want 0..15): %w", c.Rescale.Decimals, ErrInvalidConfig)
	}
	if c.WithinPercent < 0 {
		return fmt.Errorf("within_percent %g (want >= 0): %w", c.WithinPercent, ErrInvalidConfig)
	}
	for key, v := range map[string]float64{
		"group_threshold":   c.GroupThreshold,
		"within_percent":    c.WithinPercent,
		"rescale.threshold": c.Rescale.Threshold,
		"rescale.above":     c.Rescale.Above,
		"rescale.below":     c.Rescale.Below,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite: %w", key, ErrInvalidConfig)
		}
	}
	for vehicle, coef := range c.Rates {
		if vehicle == "" || math.IsNaN(coef) || math.IsInf(coef, 0) {
			return fmt.Errorf("rates.%s must be finite: %w", vehicle, ErrInvalidConfig)
		}
	}
	if len(c.Rates) == 0 {
		return fmt.Errorf("rates: at least one vehicle is required: %w", ErrInvalidConfig)
	}

	return nil
}

// RescaleOptions converts the rescale section into matrix options.
func (c *Config) RescaleOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithThreshold(c.Rescale.Threshold),
		matrix.WithFactors(c.Rescale.Above, c.Rescale.Below),
		matrix.WithDecimals(c.Rescale.Decimals),
	}
}

// RateList returns the configured tariff: the standard vehicles first in
// their usual order, then any extra vehicles by name.
func (c *Config) RateList() []toll.Rate {
	out := make([]toll.Rate, 0, len(c.Rates))
	known := make(map[string]bool, len(c.Rates))
	for _, r := range toll.DefaultRates() {
		known[r.Vehicle] = true
		if coef, ok := c.Rates[r.Vehicle]; ok {
			out = append(out, toll.Rate{Vehicle: r.Vehicle, Coefficient: coef})
		}
	}
	extra := make([]string, 0)
	for v := range c.Rates {
		if !known[v] {
			extra = append(extra, v)
		}
	}
	slices.Sort(extra)
	for _, v := range extra {
		out = append(out, toll.Rate{Vehicle: v, Coefficient: c.Rates[v]})
	}

	return out
}
