package material

import (
	"math"
	"testing"

	"github.com/df07/whitted-raytracer/pkg/core"
)

func TestPhong_Shade(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	overhead := stubLight{position: core.NewVec3(0, 10, 0), intensity: core.White}
	below := stubLight{position: core.NewVec3(0, -10, 0), intensity: core.White}
	phong := NewPhong(core.Gray(0.1), core.White, core.Gray(0.5), 10)

	direct := 1/math.Pi + 0.5

	tests := []struct {
		name     string
		env      *stubEnv
		expected core.Color
	}{
		{
			name:     "no lights gives ambient only",
			env:      &stubEnv{transmission: core.White},
			expected: core.Gray(0.1),
		},
		{
			name:     "light overhead adds diffuse and specular",
			env:      &stubEnv{lights: []Light{overhead}, transmission: core.White},
			expected: core.Gray(0.1 + direct),
		},
		{
			name:     "occluded light contributes nothing",
			env:      &stubEnv{lights: []Light{overhead}, transmission: core.Black},
			expected: core.Gray(0.1),
		},
		{
			name:     "light behind surface contributes nothing",
			env:      &stubEnv{lights: []Light{below}, transmission: core.White},
			expected: core.Gray(0.1),
		},
		{
			name:     "partial transmission scales direct light",
			env:      &stubEnv{lights: []Light{overhead}, transmission: core.NewColor(0.5, 0.25, 0)},
			expected: core.NewColor(0.1+0.5*direct, 0.1+0.25*direct, 0.1),
		},
		{
			name:     "two lights sum",
			env:      &stubEnv{lights: []Light{overhead, overhead}, transmission: core.White},
			expected: core.Gray(0.1 + 2*direct),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := phong.Shade(ray, groundHit(), tt.env, 0, core.ConstantSampler(0.5))
			if !colorsClose(got, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPhong_SpecularFallsOffAwayFromMirrorDirection(t *testing.T) {
	phong := NewPhong(core.Black, core.Black, core.White, 50)
	light := stubLight{position: core.NewVec3(0, 10, 0), intensity: core.White}
	env := &stubEnv{lights: []Light{light}, transmission: core.White}

	head := phong.Shade(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), groundHit(), env, 0, core.ConstantSampler(0))
	oblique := phong.Shade(core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0)), groundHit(), env, 0, core.ConstantSampler(0))

	if head.R <= oblique.R {
		t.Errorf("Expected highlight to peak at the mirror direction, got head-on %v vs oblique %v", head, oblique)
	}
	if oblique.R < 0 {
		t.Errorf("Specular must never go negative, got %v", oblique)
	}
}

func TestLambertian_HasNoSpecular(t *testing.T) {
	lambertian := NewLambertian(core.NewColor(0.8, 0.4, 0.2))
	light := stubLight{position: core.NewVec3(0, 10, 0), intensity: core.White}
	env := &stubEnv{lights: []Light{light}, transmission: core.White}

	got := lambertian.Shade(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), groundHit(), env, 0, core.ConstantSampler(0))
	expected := core.NewColor(0.8, 0.4, 0.2).Multiply(1 / math.Pi)
	if !colorsClose(got, expected, 1e-9) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestTextured_AmbientFollowsTexture(t *testing.T) {
	texture := NewSolidColor(core.NewColor(1, 0.5, 0))
	textured := NewTextured(texture, 0.2, core.Black, 0)

	got := textured.Shade(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), groundHit(), &stubEnv{}, 0, core.ConstantSampler(0))
	expected := core.NewColor(0.2, 0.1, 0)
	if !colorsClose(got, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
