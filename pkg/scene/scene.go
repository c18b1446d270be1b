package scene

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/lights"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.EntityList // Root of the entity graph
	SamplingConfig SamplingConfig
	CameraConfig   geometry.CameraConfig
	TopColor       core.Color // Sky color straight up
	BottomColor    core.Color // Sky color straight down

	lights      []lights.Light
	lightShapes []material.Light // lights as seen by materials
}

// SamplingConfig contains recommended rendering settings
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// New creates an empty scene with a default sky gradient
func New(name string) *Scene {
	return &Scene{
		Name:        name,
		World:       geometry.NewEntityList(),
		TopColor:    core.NewColor(0.5, 0.7, 1.0),
		BottomColor: core.White,
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 16,
			MaxDepth:        8,
		},
	}
}

// Add appends entities to the world
func (s *Scene) Add(entities ...geometry.Entity) {
	for _, e := range entities {
		s.World.Add(e)
	}
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(ls ...lights.Light) {
	for _, l := range ls {
		s.lights = append(s.lights, l)
		s.lightShapes = append(s.lightShapes, l)
	}
}

// AddBulb adds a point light together with a small emissive sphere that makes
// it visible to the camera. The sphere does not cast shadows.
func (s *Scene) AddBulb(position core.Vec3, intensity core.Color, radius float64) *lights.PointLight {
	light := lights.NewPointLight(position, intensity)
	s.AddLight(light)
	s.Add(geometry.NewSphere(position, radius, material.NewEmissive(core.White)))
	return light
}

// SceneLights returns the scene's lights with their full interface
func (s *Scene) SceneLights() []lights.Light {
	return s.lights
}

// Hit finds the nearest intersection in the world
func (s *Scene) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	return s.World.Hit(ray, rayT, rec)
}

// TransmissionAlong walks every entity between the ray origin and rayT.Max
// and multiplies in the transmittance of each one the ray passes through.
// Any opaque entity on the way makes the result black.
func (s *Scene) TransmissionAlong(ray core.Ray, rayT core.Interval) core.Color {
	transmission := core.White
	s.transmit(s.World, ray, rayT, &transmission)
	return transmission
}

// transmit returns false once the transmission has dropped to black
func (s *Scene) transmit(entity geometry.Entity, ray core.Ray, rayT core.Interval, transmission *core.Color) bool {
	if group, ok := entity.(geometry.Aggregate); ok {
		if !group.BoundingBox().Hit(ray, rayT) {
			return true
		}
		for _, child := range group.Children() {
			if !s.transmit(child, ray, rayT, transmission) {
				return false
			}
		}
		return true
	}

	var rec material.HitRecord
	if !entity.Hit(ray, rayT, &rec) {
		return true
	}

	transmitter, ok := rec.Material.(material.Transmitter)
	if !ok {
		*transmission = core.Black
		return false
	}

	*transmission = transmission.MultiplyColor(transmitter.Transmittance())
	return !transmission.IsBlack()
}

// Lights implements material.Environment
func (s *Scene) Lights() []material.Light {
	return s.lightShapes
}

// BackgroundColors implements material.Environment
func (s *Scene) BackgroundColors() (core.Color, core.Color) {
	return s.TopColor, s.BottomColor
}

// PrimitiveCount returns the number of leaf entities, counting each mesh triangle
func (s *Scene) PrimitiveCount() int {
	return countPrimitives(s.World)
}

func countPrimitives(entity geometry.Entity) int {
	switch e := entity.(type) {
	case geometry.Aggregate:
		count := 0
		for _, child := range e.Children() {
			count += countPrimitives(child)
		}
		return count
	case *geometry.Mesh:
		return len(e.Triangles())
	default:
		return 1
	}
}

// NewGroundQuad creates a large horizontal quad centered at center
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	half := size / 2
	return geometry.NewQuad(geometry.AxisY, center.Y,
		core.NewVec2(center.X-half, center.Z-half),
		core.NewVec2(center.X+half, center.Z+half),
		mat)
}
