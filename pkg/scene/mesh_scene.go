package scene

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/lights"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Cube vertices and quad faces, wound counter-clockwise seen from outside
var (
	cubeVertices = []core.Vec3{
		core.NewVec3(-1, -1, -1), core.NewVec3(1, -1, -1), core.NewVec3(1, 1, -1), core.NewVec3(-1, 1, -1),
		core.NewVec3(-1, -1, 1), core.NewVec3(1, -1, 1), core.NewVec3(1, 1, 1), core.NewVec3(-1, 1, 1),
	}
	cubeFaces = [][]int{
		{0, 3, 2, 1}, // back
		{4, 5, 6, 7}, // front
		{0, 4, 7, 3}, // left
		{1, 2, 6, 5}, // right
		{3, 7, 6, 2}, // top
		{0, 1, 5, 4}, // bottom
	}

	octahedronVertices = []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	}
	octahedronFaces = [][]int{
		{0, 2, 4}, {4, 2, 1}, {1, 2, 5}, {5, 2, 0},
		{4, 3, 0}, {1, 3, 4}, {5, 3, 1}, {0, 3, 5},
	}
)

// NewMeshScene creates a scene of polygon meshes
func NewMeshScene(tracer material.Tracer) (*Scene, error) {
	s := New("mesh")
	s.CameraConfig = geometry.CameraConfig{
		Center:      core.NewVec3(0.5, 2, 4),
		LookAt:      core.NewVec3(0, 0.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40,
	}

	orange := material.NewPhong(core.NewColor(0.05, 0.02, 0), core.NewColor(0.9, 0.45, 0.1), core.Gray(0.5), 48)
	glass := material.NewGlass(core.NewColor(0.85, 0.9, 1.0), 0.8, 1.5, tracer)

	cube, err := geometry.NewMesh(cubeVertices, cubeFaces, 0.5, core.NewVec3(-0.9, 0.5, 0), orange)
	if err != nil {
		return nil, err
	}
	octahedron, err := geometry.NewMesh(octahedronVertices, octahedronFaces, 0.7, core.NewVec3(0.9, 0.7, 0), glass)
	if err != nil {
		return nil, err
	}

	s.Add(cube, octahedron, NewGroundQuad(core.Vec3{}, 20, material.NewLambertian(core.Gray(0.55))))
	s.AddLight(lights.NewPointLight(core.NewVec3(1, 5, 3), core.Gray(70)))

	return s, nil
}
