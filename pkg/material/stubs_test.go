package material

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// stubTracer returns a fixed color and records every ray it was asked to trace
type stubTracer struct {
	color    core.Color
	maxDepth int
	rays     []core.Ray
	depths   []int
}

func (s *stubTracer) Trace(ray core.Ray, env Environment, depth int, sampler core.Sampler) core.Color {
	s.rays = append(s.rays, ray)
	s.depths = append(s.depths, depth)
	return s.color
}

func (s *stubTracer) MaxDepth() int {
	return s.maxDepth
}

// stubLight is a point-like light at a fixed position with constant intensity
type stubLight struct {
	position  core.Vec3
	intensity core.Color
}

func (l stubLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.position.Subtract(point).Normalize()
}

func (l stubLight) DistanceFrom(point core.Vec3) float64 {
	return l.position.Subtract(point).Length()
}

func (l stubLight) IntensityAt(point core.Vec3) core.Color {
	return l.intensity
}

// stubEnv has no geometry; every shadow ray sees the same transmission
type stubEnv struct {
	lights       []Light
	transmission core.Color
}

func (e *stubEnv) Hit(ray core.Ray, rayT core.Interval, rec *HitRecord) bool {
	return false
}

func (e *stubEnv) TransmissionAlong(ray core.Ray, rayT core.Interval) core.Color {
	return e.transmission
}

func (e *stubEnv) Lights() []Light {
	return e.lights
}

func (e *stubEnv) BackgroundColors() (core.Color, core.Color) {
	return core.White, core.Black
}

// groundHit is a hit on the y=0 plane at the origin seen from above
func groundHit() *HitRecord {
	rec := &HitRecord{Point: core.NewVec3(0, 0, 0), T: 1}
	rec.SetFaceNormal(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), core.NewVec3(0, 1, 0))
	return rec
}

func colorsClose(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance
}

func vecsClose(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
