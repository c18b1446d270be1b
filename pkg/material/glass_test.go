package material

import (
	"math"
	"testing"

	"github.com/df07/whitted-raytracer/pkg/core"
)

func TestGlass_Transmittance(t *testing.T) {
	glass := NewGlass(core.NewColor(0.9, 0.9, 1.0), 0.8, 1.5, &stubTracer{maxDepth: 5})
	expected := core.NewColor(0.72, 0.72, 0.8)
	if got := glass.Transmittance(); !colorsClose(got, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRefract_MatchedIndexIsStraight(t *testing.T) {
	incident := core.NewVec3(1, -1, 0.5).Normalize()
	normal := core.NewVec3(0, 1, 0)

	if got := Refract(incident, normal, 1.0); !vecsClose(got, incident, 1e-9) {
		t.Errorf("Expected ray to pass straight through, got %v want %v", got, incident)
	}
}

func TestRefract_BendsTowardNormal(t *testing.T) {
	incident := core.NewVec3(1, -1, 0).Normalize()
	normal := core.NewVec3(0, 1, 0)

	got := Refract(incident, normal, 1/1.5)
	// Snell: sin θt = sin θi / 1.5
	sinI := math.Sqrt(0.5)
	if math.Abs(got.X-sinI/1.5) > 1e-9 {
		t.Errorf("Expected tangential component %f, got %f", sinI/1.5, got.X)
	}
	if math.Abs(got.Length()-1) > 1e-9 {
		t.Errorf("Expected unit refracted direction, got length %f", got.Length())
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"head-on entering glass", 1, 1 / 1.5, 0.04},
		{"matched index head-on", 1, 1, 0},
		{"grazing", 0, 1 / 1.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflectance(tt.cosine, tt.ratio); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestGlass_ChoosesOneBranch(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name       string
		sample     float64
		expectUpY  bool
		expectCall int
	}{
		{"low sample reflects", 0.0, true, 1},
		{"high sample refracts", 0.999, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracer := &stubTracer{color: core.White, maxDepth: 5}
			glass := NewGlass(core.NewColor(1, 0.5, 0.25), 1, 1.5, tracer)

			got := glass.Shade(ray, groundHit(), &stubEnv{}, 0, core.ConstantSampler(tt.sample))
			if !colorsClose(got, core.NewColor(1, 0.5, 0.25), 1e-12) {
				t.Errorf("Expected albedo-tinted result, got %v", got)
			}
			if len(tracer.rays) != tt.expectCall {
				t.Fatalf("Expected %d traced ray, got %d", tt.expectCall, len(tracer.rays))
			}
			if up := tracer.rays[0].Direction.Y > 0; up != tt.expectUpY {
				t.Errorf("Expected upward=%t, got direction %v", tt.expectUpY, tracer.rays[0].Direction)
			}
		})
	}
}

func TestGlass_TotalInternalReflection(t *testing.T) {
	tracer := &stubTracer{color: core.White, maxDepth: 5}
	glass := NewGlass(core.White, 1, 1.5, tracer)

	// Inside the glass, travelling almost parallel to the surface
	ray := core.NewRay(core.NewVec3(-1, 0.1, 0), core.NewVec3(0.9, -0.1, 0))
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), T: 1}
	hit.SetFaceNormal(ray, core.NewVec3(0, -1, 0))
	if hit.FrontFace {
		t.Fatal("Expected a back-face hit for an exiting ray")
	}

	// A sample of 1 would always pick refraction if refraction were possible
	glass.Shade(ray, hit, &stubEnv{}, 0, core.ConstantSampler(1))

	if len(tracer.rays) != 1 {
		t.Fatalf("Expected one traced ray, got %d", len(tracer.rays))
	}
	if tracer.rays[0].Direction.Y <= 0 {
		t.Errorf("Expected reflection back into the glass, got %v", tracer.rays[0].Direction)
	}
}

func TestGlass_SplitTracesBoth(t *testing.T) {
	tracer := &stubTracer{color: core.Gray(0.6), maxDepth: 5}
	glass := NewGlass(core.White, 1, 1.5, tracer)
	glass.Split = true

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	got := glass.Shade(ray, groundHit(), &stubEnv{}, 1, core.ConstantSampler(0.5))

	if len(tracer.rays) != 2 {
		t.Fatalf("Expected reflected and refracted rays, got %d", len(tracer.rays))
	}
	for _, d := range tracer.depths {
		if d != 2 {
			t.Errorf("Expected secondary rays at depth 2, got %d", d)
		}
	}
	// Weights sum to one, so a constant environment comes back unchanged
	if !colorsClose(got, core.Gray(0.6), 1e-12) {
		t.Errorf("Expected %v, got %v", core.Gray(0.6), got)
	}
}

func TestGlass_StopsAtMaxDepth(t *testing.T) {
	tracer := &stubTracer{color: core.White, maxDepth: 2}
	glass := NewGlass(core.White, 1, 1.5, tracer)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	if got := glass.Shade(ray, groundHit(), &stubEnv{}, 2, core.ConstantSampler(0)); got != core.Black {
		t.Errorf("Expected black at max depth, got %v", got)
	}
	if len(tracer.rays) != 0 {
		t.Errorf("Expected no rays traced, got %d", len(tracer.rays))
	}
}
