package scene

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell box with a mirror and a glass sphere,
// lit by a bulb just below the ceiling
func NewCornellScene(tracer material.Tracer) (*Scene, error) {
	s := New("cornell")
	s.CameraConfig = geometry.CameraConfig{
		Center:      core.NewVec3(0, 1, 3.4),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       300,
		AspectRatio: 1,
		VFov:        40,
	}
	s.SamplingConfig = SamplingConfig{SamplesPerPixel: 16, MaxDepth: 10}
	s.TopColor = core.Black
	s.BottomColor = core.Black

	wallColor := func(c core.Color) *material.Phong {
		return material.NewPhong(c.Multiply(0.1), c, core.Black, 0)
	}
	white := wallColor(core.Gray(0.75))
	red := wallColor(core.NewColor(0.65, 0.05, 0.05))
	green := wallColor(core.NewColor(0.12, 0.45, 0.15))

	corner := core.NewVec2(-1, -1)
	s.Add(
		geometry.NewQuad(geometry.AxisY, 0, corner, core.NewVec2(1, 1), white), // Floor
		geometry.NewQuad(geometry.AxisY, 2, corner, core.NewVec2(1, 1), white), // Ceiling
		geometry.NewQuad(geometry.AxisZ, -1, core.NewVec2(-1, 0), core.NewVec2(1, 2), white),
		geometry.NewQuad(geometry.AxisX, -1, core.NewVec2(0, -1), core.NewVec2(2, 1), red),
		geometry.NewQuad(geometry.AxisX, 1, core.NewVec2(0, -1), core.NewVec2(2, 1), green),
		geometry.NewSphere(core.NewVec3(-0.45, 0.35, -0.3), 0.35, material.NewMirror(core.Gray(0.9), tracer)),
		geometry.NewSphere(core.NewVec3(0.45, 0.35, 0.3), 0.35, material.NewGlass(core.White, 0.9, 1.5, tracer)),
	)

	s.AddBulb(core.NewVec3(0, 1.85, 0), core.Gray(12), 0.05)

	return s, nil
}
