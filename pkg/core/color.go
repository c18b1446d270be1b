package core

import "math"

// Color is an RGB triple in linear space. Components are unbounded while
// light accumulates and are only clamped when converted to bytes.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns a color with all three channels set to v
func Gray(v float64) Color {
	return Color{v, v, v}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the component-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Lerp linearly interpolates between c (t=0) and other (t=1)
func (c Color) Lerp(other Color, t float64) Color {
	return c.Multiply(1 - t).Add(other.Multiply(t))
}

// IsBlack reports whether every channel is exactly zero
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Luminance returns the perceptual luminance of the color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// GammaCorrect applies gamma correction to each channel. Negative channels
// become zero since they have no displayable meaning.
func (c Color) GammaCorrect(gamma float64) Color {
	if gamma == 1 || gamma <= 0 {
		return c
	}
	invGamma := 1.0 / gamma
	return Color{
		R: math.Pow(math.Max(c.R, 0), invGamma),
		G: math.Pow(math.Max(c.G, 0), invGamma),
		B: math.Pow(math.Max(c.B, 0), invGamma),
	}
}

// ToBytes converts the color to 8-bit channels. Each channel is clamped to
// [0, 1] and scaled by 255.999, then truncated.
func (c Color) ToBytes() (r, g, b uint8) {
	unit := NewInterval(0, 1)
	return uint8(255.999 * unit.Clamp(c.R)),
		uint8(255.999 * unit.Clamp(c.G)),
		uint8(255.999 * unit.Clamp(c.B))
}

// ToVec3 reinterprets the color as a vector (used for normal maps)
func (c Color) ToVec3() Vec3 {
	return Vec3{c.R, c.G, c.B}
}
