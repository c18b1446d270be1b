package scene

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/lights"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene(tracer material.Tracer) (*Scene, error) {
	s := New("default")
	s.CameraConfig = geometry.CameraConfig{
		Center:      core.NewVec3(0, 1, 3),
		LookAt:      core.NewVec3(0, 0.5, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}
	s.SamplingConfig = SamplingConfig{SamplesPerPixel: 16, MaxDepth: 8}

	// Create materials
	red := material.NewPhong(core.NewColor(0.04, 0.01, 0.01), core.NewColor(0.8, 0.2, 0.2), core.Gray(0.5), 32)
	silver := material.NewMirror(core.Gray(0.9), tracer)
	glass := material.NewGlass(core.NewColor(0.95, 0.95, 1.0), 0.9, 1.5, tracer)
	checker := material.NewChecker(core.Gray(0.8), core.Gray(0.2), 20)
	ground := material.NewTextured(checker, 0.05, core.Black, 0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, red),
		geometry.NewSphere(core.NewVec3(-1.1, 0.5, -1), 0.5, silver),
		geometry.NewSphere(core.NewVec3(1.1, 0.5, -1), 0.5, glass),
		NewGroundQuad(core.NewVec3(0, 0, -1), 20, ground),
	)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(2, 4, 1), core.Gray(60)),
		lights.NewDirectionalLight(core.NewVec3(-1, -1, -0.5), core.Gray(0.6)),
	)

	return s, nil
}
