package lights

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/material"
)

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// shadowEpsilon is the minimum t accepted by shadow tests
const shadowEpsilon = 1e-3

// Light is a light source that can be shaded against and shadow-tested
type Light interface {
	material.Light
	Type() LightType

	// Occluded reports whether anything in world lies between point and the light
	Occluded(point core.Vec3, world geometry.Entity) bool
}

// occluded casts a shadow ray from point toward light and reports any hit
// before the light is reached
func occluded(light material.Light, point core.Vec3, world geometry.Entity) bool {
	ray := core.NewRay(point, light.DirectionFrom(point))
	var rec material.HitRecord
	return world.Hit(ray, core.NewInterval(shadowEpsilon, light.DistanceFrom(point)), &rec)
}
