package material

import (
	"github.com/df07/whitted-raytracer/pkg/core"
)

// SecondaryRayBias moves spawned ray origins off the surface along the new direction
const SecondaryRayBias = 1e-4

// Mirror is a perfect specular reflector tinted by Albedo. It ignores local
// illumination and recurses through the tracer.
type Mirror struct {
	Albedo core.Color
	tracer Tracer
}

// NewMirror creates a mirror material
func NewMirror(albedo core.Color, tracer Tracer) *Mirror {
	if tracer == nil {
		panic("material: mirror requires a tracer")
	}
	return &Mirror{Albedo: albedo, tracer: tracer}
}

// Shade implements the Material interface
func (m *Mirror) Shade(rayIn core.Ray, hit *HitRecord, env Environment, depth int, sampler core.Sampler) core.Color {
	if depth >= m.tracer.MaxDepth() {
		return core.Black
	}

	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	return m.Albedo.MultiplyColor(m.tracer.Trace(spawnRay(hit.Point, reflected), env, depth+1, sampler))
}

// spawnRay creates a secondary ray nudged off the surface along direction
func spawnRay(point, direction core.Vec3) core.Ray {
	return core.NewRay(point.Add(direction.Multiply(SecondaryRayBias)), direction)
}
