package scene

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/lights"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// NewWhittedScene recreates Whitted's classic image: a glass sphere in front
// of a reflective sphere over a red and yellow checkered floor
func NewWhittedScene(tracer material.Tracer) (*Scene, error) {
	s := New("whitted")
	s.CameraConfig = geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.3, 4),
		LookAt:      core.NewVec3(0, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 4.0 / 3.0,
		VFov:        40,
	}
	s.SamplingConfig = SamplingConfig{SamplesPerPixel: 16, MaxDepth: 12}
	s.TopColor = core.NewColor(0.3, 0.5, 0.9)
	s.BottomColor = core.NewColor(0.6, 0.75, 1.0)

	mirror := material.NewMirror(core.White, tracer)

	checker := material.NewChecker(core.NewColor(0.85, 0.1, 0.1), core.NewColor(0.9, 0.85, 0.1), 10)
	floor := material.NewWhittedSurface(material.NewTextured(checker, 0.1, core.Black, 0), 0.2, mirror, 0, nil)

	// Highlights from the Phong layer, everything else from refraction
	glassSphere := material.NewWhittedSurface(
		material.NewPhong(core.Black, core.Black, core.Gray(0.8), 96),
		0, nil,
		0.95, material.NewGlass(core.White, 0.95, 1.5, tracer),
	)
	shinySphere := material.NewWhittedSurface(
		material.NewPhong(core.Gray(0.02), core.Gray(0.3), core.Gray(0.7), 64),
		0.6, mirror,
		0, nil,
	)

	s.Add(
		NewGroundQuad(core.NewVec3(0, 0, -2), 12, floor),
		geometry.NewSphere(core.NewVec3(0.35, 0.9, 1), 0.6, glassSphere),
		geometry.NewSphere(core.NewVec3(-0.7, 0.7, -0.8), 0.7, shinySphere),
	)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(3, 6, 4), core.Gray(90)),
		lights.NewDirectionalLight(core.NewVec3(-0.3, -1, -0.6), core.Gray(0.25)),
	)

	return s, nil
}
