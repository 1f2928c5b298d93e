package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blobscan/config"
	"github.com/katalvlaran/blobscan/lutz"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, lutz.DefaultThreshold, cfg.GetThreshold())
	assert.Equal(t, lutz.DefaultMinPixels, cfg.GetMinPixels())
	assert.Equal(t, 1, cfg.GetWorkers())
	assert.Equal(t, config.FormatTable, cfg.GetFormat())
	assert.Empty(t, cfg.GetPlot())
	assert.False(t, cfg.GetVerify())

	// the zero Config falls back to the same values
	var empty config.Config
	assert.Equal(t, cfg.GetThreshold(), empty.GetThreshold())
	assert.Equal(t, cfg.GetWorkers(), empty.GetWorkers())
	assert.Equal(t, cfg.GetFormat(), empty.GetFormat())
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "scan.yaml", `
threshold: 0.25
min_pixels: 4
format: json
verify: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.GetThreshold())
	assert.Equal(t, 4, cfg.GetMinPixels())
	assert.Equal(t, config.FormatJSON, cfg.GetFormat())
	assert.True(t, cfg.GetVerify())
	assert.Nil(t, cfg.Workers, "unset fields stay nil")
	assert.Equal(t, 1, cfg.GetWorkers())
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "scan.json", `{"threshold": 10, "workers": 3, "plot": "out.png"}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.GetThreshold())
	assert.Equal(t, 3, cfg.GetWorkers())
	assert.Equal(t, "out.png", cfg.GetPlot())
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		file string
		body string
		err  error
	}{
		{"Extension", "scan.toml", "threshold = 1", config.ErrExtension},
		{"NegativeMin", "a.yaml", "min_pixels: -1", config.ErrInvalid},
		{"ZeroWorkers", "a.yml", "workers: 0", config.ErrInvalid},
		{"NaN", "a.yaml", "threshold: .nan", config.ErrInvalid},
		{"Format", "a.json", `{"format": "xml"}`, config.ErrInvalid},
		{"TooLarge", "big.yaml", "# " + strings.Repeat("x", config.MaxFileSize), config.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(write(t, tc.file, tc.body))
			require.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("Missing", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("Malformed", func(t *testing.T) {
		_, err := config.Load(write(t, "bad.yaml", "threshold: [1, 2"))
		require.Error(t, err)
	})
}

func TestMerge(t *testing.T) {
	cfg := config.Defaults()
	workers := 6
	cfg.Merge(&config.Config{Workers: &workers})
	cfg.Merge(nil)
	assert.Equal(t, 6, cfg.GetWorkers())
	assert.Equal(t, config.FormatTable, cfg.GetFormat(), "unset fields are not overlaid")
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := config.Defaults()
	minPx := 9
	cfg.MinPixels = &minPx
	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

// TestLabelerOptions checks the converted options configure a labeler.
func TestLabelerOptions(t *testing.T) {
	cfg := config.Defaults()
	th := 0.5
	cfg.Threshold = &th
	_, err := lutz.New(nil, 1, 1, cfg.LabelerOptions()...)
	require.ErrorIs(t, err, lutz.ErrConfiguration, "options apply, then the nil source is rejected")
	assert.Len(t, cfg.BatchOptions(), 1)
}
