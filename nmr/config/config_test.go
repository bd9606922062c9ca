package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-nmr/nmr/config"
	"github.com/cwbudde/algo-nmr/nmr/quad"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nmr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
input: spectrum.dat
output: report.txt
baseline: 10.5
tolerance: 1e-6
filter:
  type: 2
  size: 11
  passes: 3
method: 3
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "spectrum.dat", cfg.Input)
	assert.Equal(t, "report.txt", cfg.Output)
	assert.Equal(t, 10.5, cfg.Baseline)
	assert.Equal(t, 1e-6, cfg.Tolerance)
	assert.Equal(t, config.FilterSavitzkyGolay, cfg.Filter.Type)
	assert.Equal(t, 11, cfg.Filter.Size)
	assert.Equal(t, 3, cfg.Filter.Passes)
	assert.Equal(t, quad.MethodGaussLegendre, cfg.Method)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "input: spectrum.dat\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "analysis.txt", cfg.Output)
	assert.Equal(t, 1e-8, cfg.Tolerance)
	assert.Equal(t, config.FilterNone, cfg.Filter.Type)
	assert.Equal(t, quad.MethodNewtonCotes, cfg.Method)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "input: [unterminated\n")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestNormalizeEvenFilterSize(t *testing.T) {
	cfg := config.Default()
	cfg.Filter.Type = config.FilterBoxcar
	cfg.Filter.Size = 4

	got := config.Normalize(cfg)
	assert.Equal(t, 5, got.Filter.Size, "even window gains a center sample")

	// Disabled filtering leaves the size alone.
	cfg.Filter.Type = config.FilterNone
	got = config.Normalize(cfg)
	assert.Equal(t, 4, got.Filter.Size)
}

func TestNormalizeTolerance(t *testing.T) {
	cfg := config.Default()
	cfg.Tolerance = -1

	got := config.Normalize(cfg)
	assert.Equal(t, 1e-8, got.Tolerance)
}

func TestFilterTypeString(t *testing.T) {
	assert.Equal(t, "None, Filtering is Off", config.FilterNone.String())
	assert.Equal(t, "Boxcar", config.FilterBoxcar.String())
	assert.Equal(t, "Savitzky-Golay", config.FilterSavitzkyGolay.String())
	assert.Equal(t, "Unknown", config.FilterType(9).String())
}
