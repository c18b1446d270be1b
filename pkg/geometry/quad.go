package geometry

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Axis names a principal axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// quadThickness pads the bounding box of a quad along its fixed axis
const quadThickness = 1e-4

// parallelEpsilon is the smallest direction component treated as non-parallel
const parallelEpsilon = 1e-8

// Quad is an axis-aligned rectangle lying in the plane Axis = Value.
// Min and Max bound the other two axes in order: X→(Y,Z), Y→(X,Z), Z→(X,Y).
type Quad struct {
	Axis     Axis
	Value    float64
	Min, Max core.Vec2
	Material material.Material
}

// NewQuad creates a new axis-aligned quad
func NewQuad(axis Axis, value float64, min, max core.Vec2, mat material.Material) *Quad {
	return &Quad{
		Axis:     axis,
		Value:    value,
		Min:      core.NewVec2(math.Min(min.X, max.X), math.Min(min.Y, max.Y)),
		Max:      core.NewVec2(math.Max(min.X, max.X), math.Max(min.Y, max.Y)),
		Material: mat,
	}
}

// planeAxes returns the two in-plane axes for a fixed axis
func (a Axis) planeAxes() (int, int) {
	switch a {
	case AxisX:
		return 1, 2
	case AxisY:
		return 0, 2
	default:
		return 0, 1
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	axis := int(q.Axis)
	d := ray.Direction.Axis(axis)
	if math.Abs(d) < parallelEpsilon {
		return false
	}

	t := (q.Value - ray.Origin.Axis(axis)) / d
	if !rayT.Surrounds(t) {
		return false
	}

	a, b := q.Axis.planeAxes()
	point := ray.At(t)
	pa, pb := point.Axis(a), point.Axis(b)
	if pa < q.Min.X || pa > q.Max.X || pb < q.Min.Y || pb > q.Max.Y {
		return false
	}

	// The normal always faces the side the ray came from
	var n [3]float64
	n[axis] = -math.Copysign(1, d)

	rec.T = t
	rec.Point = point
	rec.SetFaceNormal(ray, core.NewVec3(n[0], n[1], n[2]))
	rec.UV = core.NewVec2((pa-q.Min.X)/(q.Max.X-q.Min.X), (pb-q.Min.Y)/(q.Max.Y-q.Min.Y))
	rec.Material = q.Material
	return true
}

// BoundingBox returns the axis-aligned bounding box for this quad, padded
// along the fixed axis so it is never flat
func (q *Quad) BoundingBox() core.AABB {
	var lo, hi [3]float64
	a, b := q.Axis.planeAxes()
	axis := int(q.Axis)
	lo[axis], hi[axis] = q.Value-quadThickness, q.Value+quadThickness
	lo[a], hi[a] = q.Min.X, q.Max.X
	lo[b], hi[b] = q.Min.Y, q.Max.Y
	return core.NewAABB(core.NewVec3(lo[0], lo[1], lo[2]), core.NewVec3(hi[0], hi[1], hi[2]))
}

// SetMaterial assigns the quad's material
func (q *Quad) SetMaterial(mat material.Material) {
	q.Material = mat
}
