package lights

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
)

// DirectionalLight is a light infinitely far away, like the sun. Direction is
// the way the light travels.
type DirectionalLight struct {
	Direction core.Vec3
	Intensity core.Color
}

// NewDirectionalLight creates a directional light
func NewDirectionalLight(direction core.Vec3, intensity core.Color) *DirectionalLight {
	return &DirectionalLight{
		Direction: direction.Normalize(),
		Intensity: intensity,
	}
}

// Type returns the light type
func (d *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// DirectionFrom returns the direction toward the light, the same everywhere
func (d *DirectionalLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return d.Direction.Negate()
}

// DistanceFrom is infinite for directional lights
func (d *DirectionalLight) DistanceFrom(point core.Vec3) float64 {
	return math.Inf(1)
}

// IntensityAt returns the constant intensity
func (d *DirectionalLight) IntensityAt(point core.Vec3) core.Color {
	return d.Intensity
}

// Occluded implements Light
func (d *DirectionalLight) Occluded(point core.Vec3, world geometry.Entity) bool {
	return occluded(d, point, world)
}
