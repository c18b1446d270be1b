package scene

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/lights"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// NewTextureScene creates spheres showing procedural, image and normal-mapped textures
func NewTextureScene(tracer material.Tracer) (*Scene, error) {
	s := New("textures")
	s.CameraConfig = geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.2, 3.5),
		LookAt:      core.NewVec3(0, 0.6, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40,
	}

	checker := material.NewTextured(
		material.NewChecker(core.NewColor(0.9, 0.9, 0.2), core.NewColor(0.2, 0.2, 0.6), 16),
		0.05, core.Gray(0.3), 24,
	)
	bumpy := material.NewNormalMapped(
		material.NewPhong(core.NewColor(0.02, 0.04, 0.02), core.NewColor(0.3, 0.7, 0.3), core.Gray(0.6), 64),
		material.NewBumpNormalMap(256, 128, 12, 0.6),
	)
	baked := material.NewCheckerboardTexture(64, 64, 8, core.NewColor(0.8, 0.3, 0.3), core.Gray(0.9))
	floor := material.NewTextured(material.NewScaled(baked, core.Gray(0.8)), 0.05, core.Black, 0)

	s.Add(
		geometry.NewSphere(core.NewVec3(-0.8, 0.6, 0), 0.6, checker),
		geometry.NewSphere(core.NewVec3(0.8, 0.6, 0), 0.6, bumpy),
		NewGroundQuad(core.Vec3{}, 8, floor),
	)
	s.AddLight(
		lights.NewPointLight(core.NewVec3(0, 4, 3), core.Gray(60)),
		lights.NewDirectionalLight(core.NewVec3(0.5, -1, -0.5), core.Gray(0.3)),
	)

	return s, nil
}
