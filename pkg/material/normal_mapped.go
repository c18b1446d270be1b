package material

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// NormalMapped shades with a Phong base whose normal is perturbed by a
// tangent-space normal map. Map channels in [0,1] decode to [-1,1].
type NormalMapped struct {
	Base      *Phong
	NormalMap ColorSource
}

// NewNormalMapped creates a normal-mapped material
func NewNormalMapped(base *Phong, normalMap ColorSource) *NormalMapped {
	return &NormalMapped{Base: base, NormalMap: normalMap}
}

// Shade implements the Material interface
func (n *NormalMapped) Shade(rayIn core.Ray, hit *HitRecord, env Environment, depth int, sampler core.Sampler) core.Color {
	return n.Base.shadeWithNormal(rayIn, hit, n.PerturbedNormal(hit), env)
}

// PerturbedNormal returns the shading normal at hit
func (n *NormalMapped) PerturbedNormal(hit *HitRecord) core.Vec3 {
	sample := n.NormalMap.Evaluate(hit.UV, hit.Point).ToVec3()
	local := sample.Multiply(2).Subtract(core.NewVec3(1, 1, 1))

	normal := hit.Normal
	tangent := tangentFor(normal)
	bitangent := normal.Cross(tangent)

	perturbed := tangent.Multiply(local.X).
		Add(bitangent.Multiply(local.Y)).
		Add(normal.Multiply(local.Z)).
		Normalize()
	if perturbed.LengthSquared() == 0 {
		return normal
	}
	return perturbed
}

// tangentFor returns a unit vector orthogonal to normal
func tangentFor(normal core.Vec3) core.Vec3 {
	helper := core.NewVec3(0, 1, 0)
	if math.Abs(normal.Y) > 0.9 {
		helper = core.NewVec3(1, 0, 0)
	}
	return helper.Cross(normal).Normalize()
}
