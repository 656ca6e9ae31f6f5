// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/jamesainslie/go-perfstat/internal/bench"
)

// Config holds all command configuration.
type Config struct {
	Columns ColumnsConfig `yaml:"columns"`
	Sweep   SweepConfig   `yaml:"sweep"`
	Plot    PlotConfig    `yaml:"plot"`
	Export  ExportConfig  `yaml:"export"`
	Log     LogConfig     `yaml:"log"`

	// Threshold is the default decision threshold.
	Threshold float64 `envconfig:"PERFSTAT_THRESHOLD" yaml:"threshold"`
}

// ColumnsConfig locates fields in score files (0-based).
type ColumnsConfig struct {
	Label int `envconfig:"PERFSTAT_LABEL_COLUMN" yaml:"label"`
	Score int `envconfig:"PERFSTAT_SCORE_COLUMN" yaml:"score"`
	Exact int `envconfig:"PERFSTAT_EXACT_COLUMNS" yaml:"exact"` // 0 disables
}

// SweepConfig describes the thresholds of a sweep.
type SweepConfig struct {
	Min   float64 `envconfig:"PERFSTAT_SWEEP_MIN" yaml:"min"`
	Max   float64 `envconfig:"PERFSTAT_SWEEP_MAX" yaml:"max"`
	Steps int     `envconfig:"PERFSTAT_SWEEP_STEPS" yaml:"steps"`
	Step  float64 `envconfig:"PERFSTAT_SWEEP_STEP" yaml:"step"`
	Scale string  `envconfig:"PERFSTAT_SWEEP_SCALE" yaml:"scale"`
}

// PlotConfig holds chart output settings.
type PlotConfig struct {
	Dir     string                `envconfig:"PERFSTAT_PLOT_DIR" yaml:"dir"`
	Format  string                `envconfig:"PERFSTAT_PLOT_FORMAT" yaml:"format"`
	Presets map[string]PlotPreset `yaml:"presets"`
}

// PlotPreset is a named MCC plot variant.
type PlotPreset struct {
	Title        string  `yaml:"title"`
	MaxThreshold float64 `yaml:"max_threshold"` // <= 0 keeps all entries
	YMin         float64 `yaml:"y_min"`
	YMax         float64 `yaml:"y_max"`
}

// ExportConfig controls the Prometheus textfile.
type ExportConfig struct {
	Textfile string `envconfig:"PERFSTAT_TEXTFILE" yaml:"textfile"` // empty disables
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `envconfig:"PERFSTAT_LOG_LEVEL" yaml:"level"`
	Format string `envconfig:"PERFSTAT_LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from an optional YAML file and environment variables.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	// Set defaults first
	setDefaults(cfg)

	// Load from YAML file if provided (overrides defaults)
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// Preset names.
const (
	PresetFull     = "full"
	PresetFiltered = "filtered"
)

func setDefaults(cfg *Config) {
	b := bench.DefaultConfig()

	cfg.Threshold = b.Threshold

	cfg.Columns = ColumnsConfig{
		Label: 1,
		Score: 2,
	}

	cfg.Sweep = SweepConfig{
		Min:   b.SweepMin,
		Max:   b.SweepMax,
		Steps: b.SweepSteps,
		Step:  b.SweepStep,
		Scale: string(b.Scale),
	}

	cfg.Plot = PlotConfig{
		Dir:    ".",
		Format: "png",
		Presets: map[string]PlotPreset{
			PresetFull: {
				Title: "MCC by threshold",
			},
			PresetFiltered: {
				Title:        "MCC by threshold (threshold <= 1e-5)",
				MaxThreshold: 1e-5,
				YMin:         0.98,
				YMax:         1.001,
			},
		},
	}

	cfg.Log = LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []string

	if c.Columns.Label < 0 || c.Columns.Score < 0 {
		errs = append(errs, "columns must be non-negative")
	}
	if c.Columns.Label == c.Columns.Score {
		errs = append(errs, "label and score columns must differ")
	}
	if c.Columns.Exact < 0 {
		errs = append(errs, "exact column count must be non-negative")
	} else if c.Columns.Exact > 0 && c.Columns.Exact <= max(c.Columns.Label, c.Columns.Score) {
		errs = append(errs, fmt.Sprintf("exact column count %d does not reach columns %d and %d",
			c.Columns.Exact, c.Columns.Label, c.Columns.Score))
	}

	switch bench.Scale(c.Sweep.Scale) {
	case bench.ScaleLog:
		if c.Sweep.Min <= 0 || c.Sweep.Max <= 0 {
			errs = append(errs, "log sweep bounds must be positive")
		}
		if c.Sweep.Steps < 1 {
			errs = append(errs, "sweep steps must be positive")
		}
	case bench.ScaleLinear:
		if c.Sweep.Step <= 0 {
			errs = append(errs, "sweep step must be positive")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid sweep scale: %s (must be log or linear)", c.Sweep.Scale))
	}
	if c.Sweep.Min >= c.Sweep.Max {
		errs = append(errs, "sweep min must be less than max")
	}

	validFormats := map[string]bool{"png": true, "svg": true, "pdf": true}
	if !validFormats[c.Plot.Format] {
		errs = append(errs, fmt.Sprintf("invalid plot format: %s (must be png, svg, or pdf)", c.Plot.Format))
	}
	for name, p := range c.Plot.Presets {
		if (p.YMin != 0 || p.YMax != 0) && p.YMin >= p.YMax {
			errs = append(errs, fmt.Sprintf("preset %s: y_min must be less than y_max", name))
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level))
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be text or json)", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// Bench returns the evaluation configuration.
func (c *Config) Bench() bench.Config {
	return bench.Config{
		Threshold:  c.Threshold,
		SweepMin:   c.Sweep.Min,
		SweepMax:   c.Sweep.Max,
		SweepSteps: c.Sweep.Steps,
		SweepStep:  c.Sweep.Step,
		Scale:      bench.Scale(c.Sweep.Scale),
	}
}

// Preset returns the named MCC plot options.
func (c *Config) Preset(name string) (bench.MCCPlotOptions, error) {
	p, ok := c.Plot.Presets[name]
	if !ok {
		names := make([]string, 0, len(c.Plot.Presets))
		for n := range c.Plot.Presets {
			names = append(names, n)
		}
		return bench.MCCPlotOptions{}, fmt.Errorf("unknown plot preset %q (have %s)", name, strings.Join(names, ", "))
	}
	return bench.MCCPlotOptions{
		Title:        p.Title,
		MaxThreshold: p.MaxThreshold,
		YMin:         p.YMin,
		YMax:         p.YMax,
	}, nil
}

// Logger builds a logger writing to w with the configured level and format.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.Log.Level)}

	var handler slog.Handler
	if c.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
