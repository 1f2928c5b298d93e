// Package config loads scan settings from YAML or JSON files.
//
// Every field is optional. A nil field falls back to its default through the
// Get* methods, so a partial file only overrides what it names, and the CLI
// can layer flags on top with Merge.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blobscan/batch"
	"github.com/katalvlaran/blobscan/lutz"
)

// MaxFileSize caps config files read by Load.
const MaxFileSize = 1 << 20

// Output formats understood by the report writers.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Sentinel errors for configuration files.
var (
	ErrExtension = errors.New("config: unsupported file extension")
	ErrTooLarge  = errors.New("config: file too large")
	ErrInvalid   = errors.New("config: invalid value")
)

// Config is the on-disk scan configuration.
type Config struct {
	Threshold *float64 `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	MinPixels *int     `yaml:"min_pixels,omitempty" json:"min_pixels,omitempty"`
	Workers   *int     `yaml:"workers,omitempty" json:"workers,omitempty"`
	Format    *string  `yaml:"format,omitempty" json:"format,omitempty"`
	Plot      *string  `yaml:"plot,omitempty" json:"plot,omitempty"` // PNG path, one file per input
	Verify    *bool    `yaml:"verify,omitempty" json:"verify,omitempty"`
}

func ptr[T any](v T) *T { return &v }

// Defaults returns a Config with every field set.
func Defaults() *Config {
	return &Config{
		Threshold: ptr(lutz.DefaultThreshold),
		MinPixels: ptr(lutz.DefaultMinPixels),
		Workers:   ptr(1),
		Format:    ptr(FormatTable),
		Plot:      ptr(""),
		Verify:    ptr(false),
	}
}

// Load reads a .yaml, .yml or .json file. JSON is parsed as YAML, which
// accepts it unchanged. The result is validated.
func Load(path string) (*Config, error) {
	clean := filepath.Clean(path)
	switch ext := filepath.Ext(clean); ext {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %q", ErrExtension, ext)
	}

	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("config: stat: %w", err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", clean, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}

// Validate checks the fields that are set.
func (c *Config) Validate() error {
	if c.Threshold != nil && math.IsNaN(*c.Threshold) {
		return fmt.Errorf("%w: threshold is NaN", ErrInvalid)
	}
	if c.MinPixels != nil && *c.MinPixels < 0 {
		return fmt.Errorf("%w: min_pixels must be non-negative, got %d", ErrInvalid, *c.MinPixels)
	}
	if c.Workers != nil && *c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, *c.Workers)
	}
	if c.Format != nil {
		switch *c.Format {
		case FormatTable, FormatJSON, FormatYAML:
		default:
			return fmt.Errorf("%w: format %q", ErrInvalid, *c.Format)
		}
	}
	return nil
}

// Merge overlays the set fields of o onto c.
func (c *Config) Merge(o *Config) {
	if o == nil {
		return
	}
	if o.Threshold != nil {
		c.Threshold = o.Threshold
	}
	if o.MinPixels != nil {
		c.MinPixels = o.MinPixels
	}
	if o.Workers != nil {
		c.Workers = o.Workers
	}
	if o.Format != nil {
		c.Format = o.Format
	}
	if o.Plot != nil {
		c.Plot = o.Plot
	}
	if o.Verify != nil {
		c.Verify = o.Verify
	}
}

func (c *Config) GetThreshold() float64 {
	if c.Threshold == nil {
		return lutz.DefaultThreshold
	}
	return *c.Threshold
}

func (c *Config) GetMinPixels() int {
	if c.MinPixels == nil {
		return lutz.DefaultMinPixels
	}
	return *c.MinPixels
}

func (c *Config) GetWorkers() int {
	if c.Workers == nil {
		return 1
	}
	return *c.Workers
}

func (c *Config) GetFormat() string {
	if c.Format == nil {
		return FormatTable
	}
	return *c.Format
}

func (c *Config) GetPlot() string {
	if c.Plot == nil {
		return ""
	}
	return *c.Plot
}

func (c *Config) GetVerify() bool {
	return c.Verify != nil && *c.Verify
}

// LabelerOptions converts the scan settings into lutz options.
func (c *Config) LabelerOptions() []lutz.Option {
	return []lutz.Option{
		lutz.WithThreshold(c.GetThreshold()),
		lutz.WithMinPixels(c.GetMinPixels()),
	}
}

// BatchOptions converts the concurrency settings into batch options.
func (c *Config) BatchOptions() []batch.Option {
	return []batch.Option{batch.WithWorkers(c.GetWorkers())}
}
