package world

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	hexgeom "github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// Layout errors.
var (
	ErrInvalidColor      = errors.New("invalid color")
	ErrCellOutOfRange    = errors.New("layout cell outside grid")
	ErrNegativeElevation = errors.New("negative elevation")
)

// Layout describes a grid in YAML:
//
//	width: 3
//	height: 2
//	default_color: white
//	cells:
//	  - {x: 1, z: 0, elevation: 1, color: "#3c8d2f"}
type Layout struct {
	Width        int          `yaml:"width"`
	Height       int          `yaml:"height"`
	DefaultColor string       `yaml:"default_color"`
	Cells        []LayoutCell `yaml:"cells"`
}

// LayoutCell overrides one cell of the layout.
type LayoutCell struct {
	X         int    `yaml:"x"`
	Z         int    `yaml:"z"`
	Elevation int    `yaml:"elevation"`
	Color     string `yaml:"color"`
}

// LoadLayout reads a layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return l, nil
}

// ParseLayout decodes a YAML layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Build creates the grid described by the layout.
func (l *Layout) Build(metrics *hexgeom.Metrics) (*Grid, error) {
	defaultColor := math.White
	if l.DefaultColor != "" {
		c, err := ParseColor(l.DefaultColor)
		if err != nil {
			return nil, fmt.Errorf("default_color: %w", err)
		}
		defaultColor = c
	}

	g, err := NewGrid(l.Width, l.Height, metrics, defaultColor)
	if err != nil {
		return nil, err
	}

	for i, lc := range l.Cells {
		cell := g.CellAt(lc.X, lc.Z)
		if cell == nil {
			return nil, fmt.Errorf("cells[%d]: %w: (%d, %d)", i, ErrCellOutOfRange, lc.X, lc.Z)
		}
		if lc.Elevation < 0 {
			return nil, fmt.Errorf("cells[%d]: %w: %d", i, ErrNegativeElevation, lc.Elevation)
		}
		g.SetElevation(cell, lc.Elevation)
		if lc.Color != "" {
			c, err := ParseColor(lc.Color)
			if err != nil {
				return nil, fmt.Errorf("cells[%d]: %w", i, err)
			}
			g.SetColor(cell, c)
		}
	}
	return g, nil
}

// ParseColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name such as "forestgreen".
func ParseColor(s string) (math.Color, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		b, err := hex.DecodeString(rest)
		if err != nil || (len(b) != 3 && len(b) != 4) {
			return math.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		c := color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}
		if len(b) == 4 {
			c.A = b[3]
		}
		return math.FromRGBA(c), nil
	}

	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return math.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return math.FromRGBA(c), nil
}
