package material

import (
	"testing"

	"github.com/df07/whitted-raytracer/pkg/core"
)

func TestNormalMapped_FlatMapKeepsNormal(t *testing.T) {
	flat := NewSolidColor(core.NewColor(0.5, 0.5, 1))
	mapped := NewNormalMapped(NewLambertian(core.White), flat)

	normals := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 1, 1).Normalize(),
	}

	for _, n := range normals {
		hit := &HitRecord{Normal: n}
		if got := mapped.PerturbedNormal(hit); !vecsClose(got, n, 1e-9) {
			t.Errorf("Normal %v: expected unchanged, got %v", n, got)
		}
	}
}

func TestNormalMapped_TiltsNormal(t *testing.T) {
	tilted := NewSolidColor(core.NewColor(1, 0.5, 0.5))
	mapped := NewNormalMapped(NewLambertian(core.White), tilted)

	hit := groundHit()
	got := mapped.PerturbedNormal(hit)
	if got.Subtract(hit.Normal).Length() < 0.5 {
		t.Errorf("Expected a strongly tilted normal, got %v", got)
	}
	if l := got.Length(); l < 1-1e-9 || l > 1+1e-9 {
		t.Errorf("Expected unit normal, got length %f", l)
	}
}

func TestNormalMapped_FlatMapShadesLikeBase(t *testing.T) {
	base := NewPhong(core.Gray(0.05), core.Gray(0.7), core.Gray(0.3), 20)
	mapped := NewNormalMapped(base, NewSolidColor(core.NewColor(0.5, 0.5, 1)))
	light := stubLight{position: core.NewVec3(3, 10, 1), intensity: core.White}
	env := &stubEnv{lights: []Light{light}, transmission: core.White}
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	want := base.Shade(ray, groundHit(), env, 0, core.ConstantSampler(0))
	got := mapped.Shade(ray, groundHit(), env, 0, core.ConstantSampler(0))
	if !colorsClose(got, want, 1e-9) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
