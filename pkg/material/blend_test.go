package material

import (
	"testing"

	"github.com/df07/whitted-raytracer/pkg/core"
)

func TestBlend_WeightedSum(t *testing.T) {
	blend := NewBlend(
		Layer{Weight: 0.5, Material: NewEmissive(core.White)},
		Layer{Weight: 0.25, Material: NewEmissive(core.NewColor(2, 0, 4))},
		Layer{Weight: 0, Material: NewEmissive(core.Gray(100))},
	)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	got := blend.Shade(ray, groundHit(), &stubEnv{}, 0, core.ConstantSampler(0))
	expected := core.NewColor(1, 0.5, 1.5)
	if !colorsClose(got, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestBlend_Transmittance(t *testing.T) {
	tracer := &stubTracer{maxDepth: 5}
	glass := NewGlass(core.NewColor(0.9, 0.9, 1.0), 0.8, 1.5, tracer)

	tests := []struct {
		name     string
		blend    *Blend
		expected core.Color
	}{
		{"opaque only", NewBlend(Layer{1, NewLambertian(core.White)}), core.Black},
		{"glass at half weight", NewWhittedSurface(NewLambertian(core.White), 0, nil, 0.5, glass), core.NewColor(0.36, 0.36, 0.4)},
		{"glass alone", NewBlend(Layer{1, glass}), core.NewColor(0.72, 0.72, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.blend.Transmittance(); !colorsClose(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewWhittedSurface_DropsZeroLayers(t *testing.T) {
	tracer := &stubTracer{maxDepth: 5}
	local := NewLambertian(core.White)

	tests := []struct {
		name         string
		reflectivity float64
		transmission float64
		layers       int
	}{
		{"local only", 0, 0, 1},
		{"reflective", 0.3, 0, 2},
		{"full whitted", 0.3, 0.6, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := NewWhittedSurface(local, tt.reflectivity, NewMirror(core.White, tracer), tt.transmission, NewGlass(core.White, 1, 1.5, tracer))
			if len(surface.Layers) != tt.layers {
				t.Errorf("Expected %d layers, got %d", tt.layers, len(surface.Layers))
			}
		})
	}
}

func TestEmissive(t *testing.T) {
	emissive := NewEmissive(core.NewColor(10, 5, 2))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if got := emissive.Shade(ray, groundHit(), &stubEnv{}, 0, core.ConstantSampler(0)); got != core.NewColor(10, 5, 2) {
		t.Errorf("Expected emission unchanged, got %v", got)
	}
	if got := emissive.Transmittance(); got != core.White {
		t.Errorf("Expected emissive surfaces not to block shadows, got %v", got)
	}
}
