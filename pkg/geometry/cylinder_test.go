package geometry

import (
	"math"
	"testing"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

func TestCylinder_Hit(t *testing.T) {
	cylinder := NewCylinder(core.NewVec3(0, 0, 0), 0, 2, 1, nil)

	tests := []struct {
		name           string
		ray            core.Ray
		hit            bool
		expectedT      float64
		expectedNormal core.Vec3
		expectedFront  bool
	}{
		{
			name:           "straight down through top cap",
			ray:            core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)),
			hit:            true,
			expectedT:      3,
			expectedNormal: core.NewVec3(0, 1, 0),
			expectedFront:  true,
		},
		{
			name:           "straight up through bottom cap",
			ray:            core.NewRay(core.NewVec3(0.5, -1, 0), core.NewVec3(0, 1, 0)),
			hit:            true,
			expectedT:      1,
			expectedNormal: core.NewVec3(0, -1, 0),
			expectedFront:  true,
		},
		{
			name:           "side hit",
			ray:            core.NewRay(core.NewVec3(-5, 1, 0), core.NewVec3(1, 0, 0)),
			hit:            true,
			expectedT:      4,
			expectedNormal: core.NewVec3(-1, 0, 0),
			expectedFront:  true,
		},
		{
			name:           "cap nearer than a valid lateral root",
			ray:            core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0.3, -1, 0)),
			hit:            true,
			expectedT:      3,
			expectedNormal: core.NewVec3(0, 1, 0),
			expectedFront:  true,
		},
		{
			name:           "lateral nearer than exit cap",
			ray:            core.NewRay(core.NewVec3(-5, 1.5, 0), core.NewVec3(1, 0.1, 0)),
			hit:            true,
			expectedT:      4,
			expectedNormal: core.NewVec3(-1, 0, 0),
			expectedFront:  true,
		},
		{
			name:           "lateral roots out of range, cap in range",
			ray:            core.NewRay(core.NewVec3(-0.5, 5, 0), core.NewVec3(0.1, -1, 0)),
			hit:            true,
			expectedT:      3,
			expectedNormal: core.NewVec3(0, 1, 0),
			expectedFront:  true,
		},
		{
			name:           "from inside",
			ray:            core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)),
			hit:            true,
			expectedT:      1,
			expectedNormal: core.NewVec3(-1, 0, 0),
			expectedFront:  false,
		},
		{
			name: "passes above",
			ray:  core.NewRay(core.NewVec3(-5, 3, 0), core.NewVec3(1, 0, 0)),
			hit:  false,
		},
		{
			name: "misses to the side",
			ray:  core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, -1, 0)),
			hit:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec material.HitRecord
			hit := cylinder.Hit(tt.ray, forward, &rec)
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

func TestCylinder_BoundingBox(t *testing.T) {
	cylinder := NewCylinder(core.NewVec3(1, 100, -2), 3, -1, 0.5, nil)
	expected := core.NewAABB(core.NewVec3(0.5, -1, -2.5), core.NewVec3(1.5, 3, -1.5))
	if got := cylinder.BoundingBox(); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
