package lights

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
)

// Attenuation holds the coefficients of 1 / (Constant + Linear·d + Quadratic·d²)
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// DefaultAttenuation is inverse-square falloff that never amplifies near the light
var DefaultAttenuation = Attenuation{Constant: 1, Linear: 0, Quadratic: 1}

// NoAttenuation keeps intensity constant with distance
var NoAttenuation = Attenuation{Constant: 1}

// Factor returns the falloff multiplier at distance d
func (a Attenuation) Factor(d float64) float64 {
	denominator := a.Constant + a.Linear*d + a.Quadratic*d*d
	if denominator <= 0 {
		return 1
	}
	return 1 / denominator
}

// PointLight emits equally in all directions from a single position
type PointLight struct {
	Position    core.Vec3
	Intensity   core.Color
	Attenuation Attenuation
}

// NewPointLight creates a point light with default falloff
func NewPointLight(position core.Vec3, intensity core.Color) *PointLight {
	return &PointLight{
		Position:    position,
		Intensity:   intensity,
		Attenuation: DefaultAttenuation,
	}
}

// Type returns the light type
func (p *PointLight) Type() LightType {
	return LightTypePoint
}

// DirectionFrom returns the unit direction from point toward the light
func (p *PointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return p.Position.Subtract(point).Normalize()
}

// DistanceFrom returns the distance from point to the light
func (p *PointLight) DistanceFrom(point core.Vec3) float64 {
	return p.Position.Subtract(point).Length()
}

// IntensityAt returns the attenuated intensity at point
func (p *PointLight) IntensityAt(point core.Vec3) core.Color {
	return p.Intensity.Multiply(p.Attenuation.Factor(p.DistanceFrom(point)))
}

// Occluded implements Light
func (p *PointLight) Occluded(point core.Vec3, world geometry.Entity) bool {
	return occluded(p, point, world)
}
