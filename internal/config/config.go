// Package config resolves dashboard settings from defaults, an optional
// claydash.yaml and CLAYDASH_* environment variables, in that order.
// Command-line flags are applied by each command on top of the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/fvall/claydash/internal/chart"
	"github.com/fvall/claydash/internal/dashboard"
	"github.com/fvall/claydash/internal/stats"
)

const (
	// FileName is the optional config file looked up in the working directory.
	FileName = "claydash.yaml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "CLAYDASH_"
)

// Config is the full set of dashboard settings.
type Config struct {
	Window       WindowConfig       `yaml:"window" envPrefix:"WINDOW_"`
	Sampling     SamplingConfig     `yaml:"sampling" envPrefix:"SAMPLING_"`
	Distribution DistributionConfig `yaml:"distribution" envPrefix:"DIST_"`
	Journal      JournalConfig      `yaml:"journal" envPrefix:"JOURNAL_"`
	// Font is an optional TTF file used instead of the bundled font.
	Font string `yaml:"font,omitempty" env:"FONT"`
}

// WindowConfig sizes the desktop window and the snapshot canvas.
type WindowConfig struct {
	Title  string  `yaml:"title,omitempty" env:"TITLE"`
	Width  float32 `yaml:"width,omitempty" env:"WIDTH"`
	Height float32 `yaml:"height,omitempty" env:"HEIGHT"`
	FPS    int     `yaml:"fps,omitempty" env:"FPS"`
	Debug  bool    `yaml:"debug,omitempty" env:"DEBUG"`
}

// SamplingConfig controls chart regeneration.
type SamplingConfig struct {
	Samples   int           `yaml:"samples,omitempty" env:"SAMPLES"`
	Bins      int           `yaml:"bins,omitempty" env:"BINS"`
	Seed      uint64        `yaml:"seed,omitempty" env:"SEED"`
	Animation time.Duration `yaml:"animation,omitempty" env:"ANIMATION"`
}

// DistributionConfig holds shape parameters and the chart kind used by
// commands that do not go through the menus.
type DistributionConfig struct {
	Kind            string  `yaml:"kind,omitempty" env:"KIND"`
	Chart           string  `yaml:"chart,omitempty" env:"CHART"`
	GammaAlpha      uint8   `yaml:"gamma_alpha,omitempty" env:"GAMMA_ALPHA"`
	GammaBeta       float64 `yaml:"gamma_beta,omitempty" env:"GAMMA_BETA"`
	ExponentialBeta float64 `yaml:"exponential_beta,omitempty" env:"EXPONENTIAL_BETA"`
}

// JournalConfig enables the sqlite run journal.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled,omitempty" env:"ENABLED"`
	Path    string `yaml:"path,omitempty" env:"PATH"`
}

// Default returns the settings the dashboard ships with.
func Default() Config {
	p := stats.DefaultParams()
	return Config{
		Window: WindowConfig{
			Title:  "ClayDash",
			Width:  dashboard.DefaultWidth,
			Height: dashboard.DefaultHeight,
			FPS:    60,
		},
		Sampling: SamplingConfig{
			Samples:   dashboard.DefaultSamples,
			Bins:      dashboard.DefaultBins,
			Animation: dashboard.DefaultAnimation,
		},
		Distribution: DistributionConfig{
			Kind:            stats.KindUniform.String(),
			Chart:           chart.Histogram.String(),
			GammaAlpha:      p.GammaAlpha,
			GammaBeta:       p.GammaBeta,
			ExponentialBeta: p.ExponentialBeta,
		},
		Journal: JournalConfig{
			Path: defaultJournalPath(),
		},
	}
}

func defaultJournalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "claydash.db"
	}
	return filepath.Join(home, ".claydash", "claydash.db")
}

// LoadOptional reads claydash.yaml from dir onto the defaults. A missing
// file is not an error.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		d := Default()
		return &d, nil
	}
	return cfg, err
}

// LoadFile reads a YAML config file onto the defaults. Keys absent from
// the file keep their default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyEnv overrides c with any CLAYDASH_* variables that are set.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load resolves the configuration for a command run from dir: defaults,
// then claydash.yaml, then the environment. An explicit path replaces the
// lookup in dir and must exist.
func Load(dir, path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = LoadFile(path)
	} else {
		cfg, err = LoadOptional(dir)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no component can run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %gx%g", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.Window.FPS))
	}
	if c.Sampling.Samples <= 0 {
		errs = append(errs, fmt.Errorf("samples must be positive, got %d", c.Sampling.Samples))
	}
	if c.Sampling.Bins <= 0 {
		errs = append(errs, fmt.Errorf("bins must be positive, got %d", c.Sampling.Bins))
	}
	if c.Sampling.Animation < 0 {
		errs = append(errs, fmt.Errorf("animation must not be negative, got %s", c.Sampling.Animation))
	}
	if _, ok := stats.ParseKind(c.Distribution.Kind); !ok {
		errs = append(errs, fmt.Errorf("unknown distribution %q (want one of %s)", c.Distribution.Kind, kindList()))
	}
	if !validChart(c.Distribution.Chart) {
		errs = append(errs, fmt.Errorf("unknown chart kind %q", c.Distribution.Chart))
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		errs = append(errs, errors.New("journal enabled without a path"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func kindList() string {
	names := make([]string, len(stats.Kinds))
	for i, k := range stats.Kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

func validChart(label string) bool {
	for _, k := range chart.Kinds {
		if k.String() == label {
			return true
		}
	}
	return false
}

// Params returns the distribution shape parameters.
func (c *Config) Params() stats.Params {
	return stats.Params{
		GammaAlpha:      c.Distribution.GammaAlpha,
		GammaBeta:       c.Distribution.GammaBeta,
		ExponentialBeta: c.Distribution.ExponentialBeta,
	}
}

// Kind returns the configured distribution family.
func (c *Config) Kind() stats.Kind {
	k, _ := stats.ParseKind(c.Distribution.Kind)
	return k
}

// DashboardOptions builds the App options. The font and journal are
// attached by the host once opened.
func (c *Config) DashboardOptions() dashboard.Options {
	return dashboard.Options{
		Width:     c.Window.Width,
		Height:    c.Window.Height,
		Animation: c.Sampling.Animation,
		Samples:   c.Sampling.Samples,
		Bins:      c.Sampling.Bins,
		Seed:      c.Sampling.Seed,
		Params:    c.Params(),

		Distribution: c.Kind(),
		Chart:        chart.ParseKind(c.Distribution.Chart),
	}
}
