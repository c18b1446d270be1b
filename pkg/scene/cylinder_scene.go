package scene

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/lights"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// NewCylinderScene creates a row of capped cylinders
func NewCylinderScene(tracer material.Tracer) (*Scene, error) {
	s := New("cylinders")
	s.CameraConfig = geometry.CameraConfig{
		Center:      core.NewVec3(0, 2, 5),
		LookAt:      core.NewVec3(0, 0.6, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        35,
	}

	blue := material.NewPhong(core.NewColor(0.01, 0.02, 0.05), core.NewColor(0.2, 0.3, 0.8), core.Gray(0.6), 64)
	polished := material.NewWhittedSurface(
		material.NewPhong(core.NewColor(0.03, 0.03, 0.01), core.NewColor(0.7, 0.6, 0.2), core.Gray(0.4), 32),
		0.4, material.NewMirror(core.White, tracer),
		0, nil,
	)
	glass := material.NewGlass(core.NewColor(0.9, 1.0, 0.9), 0.85, 1.5, tracer)
	floor := material.NewLambertian(core.Gray(0.6))

	s.Add(
		geometry.NewCylinder(core.NewVec3(-1.4, 0, 0), 0, 1.2, 0.5, blue),
		geometry.NewCylinder(core.NewVec3(0, 0, -0.3), 0, 1.6, 0.45, polished),
		geometry.NewCylinder(core.NewVec3(1.4, 0, 0), 0, 0.8, 0.55, glass),
		NewGroundQuad(core.Vec3{}, 30, floor),
	)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(-2, 5, 4), core.Gray(80)),
		lights.NewDirectionalLight(core.NewVec3(1, -2, -1), core.Gray(0.5)),
	)

	return s, nil
}
