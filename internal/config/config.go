// Package config handles hexmesh configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hexterrain/pkg/hex"
)

// Config holds all settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Grid    GridConfig    `yaml:"grid"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	source string
}

// Source returns the file the config was read from, or "" for defaults.
func (c *Config) Source() string {
	return c.source
}

// MeshConfig holds hexagon dimensions and terrace settings.
type MeshConfig struct {
	OuterRadius      float32 `yaml:"outer_radius"`
	SolidFactor      float32 `yaml:"solid_factor"`
	ElevationStep    float32 `yaml:"elevation_step"`
	TerracesPerSlope int     `yaml:"terraces_per_slope"` // Treads per slope; strips get 2n+1 cross-sections
}

// GridConfig describes the grid to triangulate. A layout file wins over
// the inline size.
type GridConfig struct {
	Layout       string `yaml:"layout"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	DefaultColor string `yaml:"default_color"`
}

// OutputConfig holds output paths.
type OutputConfig struct {
	PLY           string `yaml:"ply"`
	PLYBinary     bool   `yaml:"ply_binary"`
	Preview       string `yaml:"preview"`
	PreviewWidth  int    `yaml:"preview_width"`
	PreviewHeight int    `yaml:"preview_height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			OuterRadius:      hex.DefaultOuterRadius,
			SolidFactor:      hex.DefaultSolidFactor,
			ElevationStep:    hex.DefaultElevationStep,
			TerracesPerSlope: hex.DefaultTerracesPerSlope,
		},
		Grid: GridConfig{
			Width:        6,
			Height:       6,
			DefaultColor: "white",
		},
		Output: OutputConfig{
			PLY:           "hexmesh.ply",
			PreviewWidth:  512,
			PreviewHeight: 512,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Metrics builds hexagon metrics from the mesh settings.
func (m MeshConfig) Metrics() (*hex.Metrics, error) {
	return hex.NewMetrics(m.OuterRadius, m.SolidFactor, m.ElevationStep, m.TerracesPerSlope)
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Mesh.Metrics(); err != nil {
		errs = append(errs, fmt.Errorf("mesh: %w", err))
	}
	if c.Grid.Layout == "" && (c.Grid.Width <= 0 || c.Grid.Height <= 0) {
		errs = append(errs, fmt.Errorf("grid: size %dx%d must be positive", c.Grid.Width, c.Grid.Height))
	}
	if c.Output.Preview != "" && (c.Output.PreviewWidth <= 0 || c.Output.PreviewHeight <= 0) {
		errs = append(errs, fmt.Errorf("output: preview size %dx%d must be positive",
			c.Output.PreviewWidth, c.Output.PreviewHeight))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging: unknown level %q", c.Logging.Level))
	}
	return errors.Join(errs...)
}
