package math

import "image/color"

// Color is a linear RGBA color with channels nominally in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
)

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// FromRGBA converts an 8-bit color.
func FromRGBA(c color.RGBA) Color {
	return Color{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// Lerp interpolates linearly from c to other by t. Alpha is interpolated as well.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		c.R + (other.R-c.R)*t,
		c.G + (other.G-c.G)*t,
		c.B + (other.B-c.B)*t,
		c.A + (other.A-c.A)*t,
	}
}

// Add returns the channel-wise sum.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// InRange reports whether every channel lies in [0, 1].
func (c Color) InRange() bool {
	for _, ch := range [4]float32{c.R, c.G, c.B, c.A} {
		if ch < 0 || ch > 1 || ch != ch {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every channel differs by at most eps.
func (c Color) ApproxEqual(other Color, eps float32) bool {
	return absf(c.R-other.R) <= eps && absf(c.G-other.G) <= eps &&
		absf(c.B-other.B) <= eps && absf(c.A-other.A) <= eps
}

// RGBA8 converts to an 8-bit color, clamping out-of-range channels.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

func channel8(v float32) uint8 {
	if v != v || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
