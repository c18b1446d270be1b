package material

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// Glass is a dielectric that either reflects or refracts each incoming ray.
//
// By default one direction is chosen at random with probability given by
// Schlick's reflectance. With Split set, both rays are traced and weighted by
// the reflectance instead, trading extra rays for noise-free results.
type Glass struct {
	Albedo          core.Color // Tint applied to everything seen through or in the glass
	Transparency    float64    // Fraction of light passed to shadow rays
	RefractiveIndex float64    // Index of refraction (e.g., 1.5 for glass)
	Split           bool
	tracer          Tracer
}

// NewGlass creates a new glass material
func NewGlass(albedo core.Color, transparency, refractiveIndex float64, tracer Tracer) *Glass {
	if tracer == nil {
		panic("material: glass requires a tracer")
	}
	return &Glass{
		Albedo:          albedo,
		Transparency:    transparency,
		RefractiveIndex: refractiveIndex,
		tracer:          tracer,
	}
}

// Transmittance implements Transmitter: shadow rays pick up albedo × transparency
func (g *Glass) Transmittance() core.Color {
	return g.Albedo.Multiply(g.Transparency)
}

// Shade implements the Material interface
func (g *Glass) Shade(rayIn core.Ray, hit *HitRecord, env Environment, depth int, sampler core.Sampler) core.Color {
	if depth >= g.tracer.MaxDepth() {
		return core.Black
	}

	// hit.Normal already faces the incoming ray; FrontFace tells us which side we are on
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / g.RefractiveIndex // Ray is entering the material
	} else {
		refractionRatio = g.RefractiveIndex // Ray is exiting the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	reflected := spawnRay(hit.Point, unitDirection.Reflect(hit.Normal))

	// Total internal reflection
	if refractionRatio*sinTheta > 1.0 {
		return g.Albedo.MultiplyColor(g.tracer.Trace(reflected, env, depth+1, sampler))
	}

	reflectance := Reflectance(cosTheta, refractionRatio)
	refracted := spawnRay(hit.Point, Refract(unitDirection, hit.Normal, refractionRatio))

	if g.Split {
		reflectedColor := g.tracer.Trace(reflected, env, depth+1, sampler).Multiply(reflectance)
		refractedColor := g.tracer.Trace(refracted, env, depth+1, sampler).Multiply(1 - reflectance)
		return g.Albedo.MultiplyColor(reflectedColor.Add(refractedColor))
	}

	if reflectance > sampler.Get1D() {
		return g.Albedo.MultiplyColor(g.tracer.Trace(reflected, env, depth+1, sampler))
	}
	return g.Albedo.MultiplyColor(g.tracer.Trace(refracted, env, depth+1, sampler))
}

// Refract bends unit vector uv through a surface with normal n using Snell's
// law. etaiOverEtat is the ratio of the incident to transmitted indices.
func Refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
