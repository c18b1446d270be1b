package geometry

import (
	"math"
	"testing"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

func TestTriangle_Hit(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		nil,
	)

	tests := []struct {
		name           string
		ray            core.Ray
		rayT           core.Interval
		hit            bool
		expectedT      float64
		expectedNormal core.Vec3
		expectedFront  bool
	}{
		{
			name:           "hit from front",
			ray:            core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)),
			rayT:           forward,
			hit:            true,
			expectedT:      1,
			expectedNormal: core.NewVec3(0, 0, 1),
			expectedFront:  true,
		},
		{
			name:           "hit from back",
			ray:            core.NewRay(core.NewVec3(0.25, 0.25, -2), core.NewVec3(0, 0, 1)),
			rayT:           forward,
			hit:            true,
			expectedT:      2,
			expectedNormal: core.NewVec3(0, 0, -1),
			expectedFront:  false,
		},
		{
			name: "outside triangle",
			ray:  core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, -1)),
			rayT: forward,
			hit:  false,
		},
		{
			name: "parallel to plane",
			ray:  core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0)),
			rayT: forward,
			hit:  false,
		},
		{
			name: "beyond interval",
			ray:  core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)),
			rayT: core.NewInterval(0.001, 0.5),
			hit:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec material.HitRecord
			hit := triangle.Hit(tt.ray, tt.rayT, &rec)
			if hit != tt.hit {
				t.Fatalf("Expected hit=%t, got %t", tt.hit, hit)
			}
			if !hit {
				return
			}
			if math.Abs(rec.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, rec.T)
			}
			if rec.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, rec.Normal)
			}
			if rec.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace=%t, got %t", tt.expectedFront, rec.FrontFace)
			}
		})
	}
}

func TestTriangle_BarycentricUV(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), nil)

	var rec material.HitRecord
	if !triangle.Hit(core.NewRay(core.NewVec3(0.25, 0.5, 1), core.NewVec3(0, 0, -1)), forward, &rec) {
		t.Fatal("Expected hit")
	}
	if math.Abs(rec.UV.X-0.25) > 1e-9 || math.Abs(rec.UV.Y-0.5) > 1e-9 {
		t.Errorf("Expected uv (0.25, 0.5), got %v", rec.UV)
	}
}

func TestTriangle_BoundingBox(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(1, -1, 0), core.NewVec3(-2, 3, 1), core.NewVec3(0, 0, -4), nil)
	expected := core.NewAABB(core.NewVec3(-2, -1, -4), core.NewVec3(1, 3, 1))
	if got := triangle.BoundingBox(); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
