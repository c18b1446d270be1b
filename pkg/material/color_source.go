package material

import (
	"github.com/df07/whitted-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Color
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	return s.Color
}

// Scaled multiplies another source by a constant factor
type Scaled struct {
	Source ColorSource
	Factor core.Color
}

// NewScaled creates a scaled color source
func NewScaled(source ColorSource, factor core.Color) *Scaled {
	return &Scaled{Source: source, Factor: factor}
}

// Evaluate returns the scaled sample
func (s *Scaled) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	return s.Source.Evaluate(uv, point).MultiplyColor(s.Factor)
}
