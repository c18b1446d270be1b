package geometry

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Cylinder is a finite, capped cylinder aligned with the y-axis. Only the X
// and Z components of Center are used; YMin and YMax bound its height.
type Cylinder struct {
	Center     core.Vec3
	YMin, YMax float64
	Radius     float64
	Material   material.Material
}

// NewCylinder creates a new capped cylinder
func NewCylinder(center core.Vec3, yMin, yMax, radius float64, mat material.Material) *Cylinder {
	if yMin > yMax {
		yMin, yMax = yMax, yMin
	}
	return &Cylinder{
		Center:   center,
		YMin:     yMin,
		YMax:     yMax,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests the lateral surface and both caps and keeps the nearest valid hit
func (c *Cylinder) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	ox := ray.Origin.X - c.Center.X
	oz := ray.Origin.Z - c.Center.Z
	d := ray.Direction
	r2 := c.Radius * c.Radius

	closest := rayT
	found := false
	var normal core.Vec3
	var uv core.Vec2

	// Lateral surface: infinite cylinder in x/z, then bound by y
	if a := d.X*d.X + d.Z*d.Z; a > 0 {
		halfB := ox*d.X + oz*d.Z
		cc := ox*ox + oz*oz - r2
		if discriminant := halfB*halfB - a*cc; discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			for _, t := range [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
				if !closest.Surrounds(t) {
					continue
				}
				y := ray.Origin.Y + t*d.Y
				if y < c.YMin || y > c.YMax {
					continue
				}
				px, pz := ox+t*d.X, oz+t*d.Z
				closest = closest.WithMax(t)
				found = true
				normal = core.NewVec3(px/c.Radius, 0, pz/c.Radius)
				uv = core.NewVec2(0.5+math.Atan2(pz, px)/(2*math.Pi), (y-c.YMin)/(c.YMax-c.YMin))
				break // roots are ordered, the first valid one is nearest
			}
		}
	}

	// End caps
	if d.Y != 0 {
		caps := [2]struct {
			y      float64
			normal core.Vec3
		}{
			{c.YMin, core.NewVec3(0, -1, 0)},
			{c.YMax, core.NewVec3(0, 1, 0)},
		}
		for _, endCap := range caps {
			t := (endCap.y - ray.Origin.Y) / d.Y
			if !closest.Surrounds(t) {
				continue
			}
			px, pz := ox+t*d.X, oz+t*d.Z
			if px*px+pz*pz > r2 {
				continue
			}
			closest = closest.WithMax(t)
			found = true
			normal = endCap.normal
			uv = core.NewVec2(0.5+px/(2*c.Radius), 0.5+pz/(2*c.Radius))
		}
	}

	if !found {
		return false
	}

	rec.T = closest.Max
	rec.Point = ray.At(rec.T)
	rec.SetFaceNormal(ray, normal)
	rec.UV = uv
	rec.Material = c.Material
	return true
}

// BoundingBox returns the axis-aligned bounding box for this cylinder
func (c *Cylinder) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(c.Center.X-c.Radius, c.YMin, c.Center.Z-c.Radius),
		core.NewVec3(c.Center.X+c.Radius, c.YMax, c.Center.Z+c.Radius),
	)
}

// SetMaterial assigns the cylinder's material
func (c *Cylinder) SetMaterial(mat material.Material) {
	c.Material = mat
}
