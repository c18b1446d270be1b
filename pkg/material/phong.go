package material

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// ShadowBias offsets shadow ray origins along the normal to avoid self-occlusion
const ShadowBias = 1e-3

// Phong is a local illumination material: ambient + Lambertian diffuse + Phong
// specular, summed over every light and attenuated by shadow transmission.
// It never spawns reflection or refraction rays.
type Phong struct {
	Ambient   ColorSource
	Diffuse   ColorSource // Diffuse albedo; divided by π when shading
	Specular  ColorSource
	Shininess float64 // Specular exponent; <= 0 disables the specular term
}

// NewPhong creates a Phong material with solid colors
func NewPhong(ambient, diffuse, specular core.Color, shininess float64) *Phong {
	return &Phong{
		Ambient:   NewSolidColor(ambient),
		Diffuse:   NewSolidColor(diffuse),
		Specular:  NewSolidColor(specular),
		Shininess: shininess,
	}
}

// NewLambertian creates a purely diffuse Phong material
func NewLambertian(albedo core.Color) *Phong {
	return NewPhong(core.Black, albedo, core.Black, 0)
}

// Shade implements the Material interface
func (p *Phong) Shade(rayIn core.Ray, hit *HitRecord, env Environment, depth int, sampler core.Sampler) core.Color {
	return p.shadeWithNormal(rayIn, hit, hit.Normal, env)
}

// shadeWithNormal evaluates the illumination model using a shading normal that
// may differ from the geometric one (normal mapping). Shadow rays still leave
// from the geometric surface.
func (p *Phong) shadeWithNormal(rayIn core.Ray, hit *HitRecord, normal core.Vec3, env Environment) core.Color {
	result := p.Ambient.Evaluate(hit.UV, hit.Point)

	diffuse := p.Diffuse.Evaluate(hit.UV, hit.Point).Multiply(1.0 / math.Pi)
	specular := p.Specular.Evaluate(hit.UV, hit.Point)
	view := rayIn.Direction.Normalize().Negate()
	origin := hit.Point.Add(hit.Normal.Multiply(ShadowBias))

	for _, light := range env.Lights() {
		toLight := light.DirectionFrom(hit.Point)
		nDotL := normal.Dot(toLight)
		if nDotL <= 0 {
			continue // Light is behind the surface
		}

		shadowRay := core.NewRay(origin, toLight)
		transmission := env.TransmissionAlong(shadowRay, core.NewInterval(0, light.DistanceFrom(origin)))
		if transmission.IsBlack() {
			continue
		}

		contribution := diffuse.Multiply(nDotL)
		if p.Shininess > 0 {
			reflected := toLight.Negate().Reflect(normal)
			if rDotV := reflected.Dot(view); rDotV > 0 {
				contribution = contribution.Add(specular.Multiply(math.Pow(rDotV, p.Shininess)))
			}
		}

		intensity := light.IntensityAt(hit.Point)
		result = result.Add(contribution.MultiplyColor(intensity).MultiplyColor(transmission))
	}

	return result
}
