// Package config loads and normalizes analysis settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-nmr/nmr/quad"
)

const (
	defaultOutput    = "analysis.txt"
	defaultTolerance = 1e-8
)

// FilterType selects the smoothing filter applied before spline fitting.
type FilterType int

// Available filter types.
const (
	FilterNone FilterType = iota
	FilterBoxcar
	FilterSavitzkyGolay
)

// String returns the filter type's display name.
func (t FilterType) String() string {
	switch t {
	case FilterNone:
		return "None, Filtering is Off"
	case FilterBoxcar:
		return "Boxcar"
	case FilterSavitzkyGolay:
		return "Savitzky-Golay"
	default:
		return "Unknown"
	}
}

// FilterConfig holds smoothing filter settings.
type FilterConfig struct {
	Type   FilterType `yaml:"type"`
	Size   int        `yaml:"size"`
	Passes int        `yaml:"passes"`
}

// Config holds the full analysis pipeline configuration.
type Config struct {
	Input     string       `yaml:"input"`
	Output    string       `yaml:"output"`
	Baseline  float64      `yaml:"baseline"`
	Tolerance float64      `yaml:"tolerance"`
	Filter    FilterConfig `yaml:"filter"`
	Method    quad.Method  `yaml:"method"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output:    defaultOutput,
		Tolerance: defaultTolerance,
	}
}

// Load reads and normalizes a YAML configuration file. Fields absent from
// the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return Normalize(cfg), nil
}

// Normalize fills defaults and fixes inconsistent settings: an enabled
// filter with an even window size is widened by one so the window has a
// center sample.
func Normalize(cfg Config) Config {
	if cfg.Output == "" {
		cfg.Output = defaultOutput
	}

	if cfg.Tolerance <= 0 {
		cfg.Tolerance = defaultTolerance
	}

	if cfg.Filter.Type != FilterNone && cfg.Filter.Size%2 == 0 {
		cfg.Filter.Size++
	}

	if cfg.Filter.Passes < 0 {
		cfg.Filter.Passes = 0
	}

	return cfg
}
