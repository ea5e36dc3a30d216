// Package config loads the optional motion.yaml configuration: named
// cubic-bezier presets and animation defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/animation"
	merrors "github.com/go-drift/motion/pkg/errors"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "motion.yaml"

// Config represents the optional motion.yaml configuration.
type Config struct {
	Defaults Defaults         `yaml:"defaults"`
	Curves   map[string]Curve `yaml:"curves"`
}

// Defaults contains fallback animation settings.
type Defaults struct {
	// Duration is a Go duration string, e.g. "250ms".
	Duration string `yaml:"duration,omitempty"`
	// Curve names a standard or preset curve.
	Curve string `yaml:"curve,omitempty"`
	// FrameRate overrides the fallback timer rate in frames per second.
	FrameRate int `yaml:"frame_rate,omitempty"`
}

// Curve is a CSS-style cubic-bezier definition.
type Curve struct {
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`
}

// LoadOptional reads motion.yaml from dir if present. A missing file
// yields an empty configuration, not an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, merrors.New("config.LoadOptional", merrors.KindParsing,
			"failed to parse %s: %v", FileName, err)
	}
	return &cfg, nil
}

// DefaultDuration parses the configured default duration. A missing
// value yields zero with no error.
func (c *Config) DefaultDuration() (time.Duration, error) {
	if c.Defaults.Duration == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Defaults.Duration)
	if err != nil {
		return 0, merrors.New("config.DefaultDuration", merrors.KindParsing,
			"invalid duration %q: %v", c.Defaults.Duration, err)
	}
	if d <= 0 {
		return 0, merrors.New("config.DefaultDuration", merrors.KindConfig,
			"duration must be positive, got %v", d)
	}
	return d, nil
}

// FrameRate returns the configured frame rate, or the scheduler default.
func (c *Config) FrameRate() int {
	if c.Defaults.FrameRate > 0 {
		return c.Defaults.FrameRate
	}
	return animation.DefaultFrameRate
}
