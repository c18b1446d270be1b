package material

import (
	"github.com/df07/whitted-raytracer/pkg/core"
)

// Material computes the color seen along rayIn at a surface hit. Materials
// own their shading entirely, including any secondary rays they spawn.
// depth counts the bounces taken so far (0 for primary rays).
type Material interface {
	Shade(rayIn core.Ray, hit *HitRecord, env Environment, depth int, sampler core.Sampler) core.Color
}

// Tracer is the capability materials use to issue secondary rays. It is
// handed to recursive materials at construction and never owned by them.
type Tracer interface {
	// Trace returns the color along ray, or black once depth >= MaxDepth()
	Trace(ray core.Ray, env Environment, depth int, sampler core.Sampler) core.Color
	MaxDepth() int
}

// Light is the shading view of a light source
type Light interface {
	// DirectionFrom returns the unit direction from point toward the light
	DirectionFrom(point core.Vec3) core.Vec3
	// DistanceFrom returns the distance from point to the light (+Inf for directional lights)
	DistanceFrom(point core.Vec3) float64
	// IntensityAt returns the light arriving at point, including falloff
	IntensityAt(point core.Vec3) core.Color
}

// Environment is the scene as seen by materials and the tracer
type Environment interface {
	// Hit finds the nearest intersection along ray within rayT
	Hit(ray core.Ray, rayT core.Interval, rec *HitRecord) bool
	// TransmissionAlong returns the colored attenuation of light travelling
	// along ray within rayT; black when an opaque occluder is in the way
	TransmissionAlong(ray core.Ray, rayT core.Interval) core.Color
	// Lights returns every light in the scene
	Lights() []Light
	// BackgroundColors returns the sky gradient used when a ray escapes
	BackgroundColors() (topColor, bottomColor core.Color)
}

// Transmitter is implemented by materials that let some light through to
// shadow rays. Materials that do not implement it are opaque.
type Transmitter interface {
	Transmittance() core.Color
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, always facing against the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Texture coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object (borrowed from the entity)
}

// SetFaceNormal sets the normal vector and determines front/back face.
// Every shape must go through this rather than assigning Normal directly.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
