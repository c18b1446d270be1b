package material

import (
	"testing"

	"github.com/df07/whitted-raytracer/pkg/core"
)

func TestMirror_ReflectsThroughTracer(t *testing.T) {
	tracer := &stubTracer{color: core.Gray(0.5), maxDepth: 5}
	mirror := NewMirror(core.NewColor(0.9, 0.9, 0.9), tracer)

	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	got := mirror.Shade(ray, groundHit(), &stubEnv{}, 2, core.ConstantSampler(0))

	if !colorsClose(got, core.Gray(0.45), 1e-12) {
		t.Errorf("Expected albedo × traced color (0.45), got %v", got)
	}
	if len(tracer.rays) != 1 {
		t.Fatalf("Expected exactly one reflected ray, got %d", len(tracer.rays))
	}
	if tracer.depths[0] != 3 {
		t.Errorf("Expected reflected ray at depth 3, got %d", tracer.depths[0])
	}
	expected := core.NewVec3(1, 1, 0).Normalize()
	if !vecsClose(tracer.rays[0].Direction, expected, 1e-9) {
		t.Errorf("Expected reflected direction %v, got %v", expected, tracer.rays[0].Direction)
	}
}

func TestMirror_StopsAtMaxDepth(t *testing.T) {
	tracer := &stubTracer{color: core.White, maxDepth: 3}
	mirror := NewMirror(core.White, tracer)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	got := mirror.Shade(ray, groundHit(), &stubEnv{}, 3, core.ConstantSampler(0))

	if got != core.Black {
		t.Errorf("Expected black at max depth, got %v", got)
	}
	if len(tracer.rays) != 0 {
		t.Errorf("Expected no rays traced at max depth, got %d", len(tracer.rays))
	}
}

func TestMirror_RequiresTracer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected NewMirror to panic without a tracer")
		}
	}()
	NewMirror(core.White, nil)
}
