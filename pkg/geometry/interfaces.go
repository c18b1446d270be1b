package geometry

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Entity is anything a ray can be intersected with
type Entity interface {
	// Hit reports whether ray intersects the entity strictly inside rayT.
	// On a hit every field of rec is written; on a miss rec is left untouched.
	Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool
	BoundingBox() core.AABB
	SetMaterial(mat material.Material)
}

// Aggregate is an entity made of other entities that scene queries may walk directly
type Aggregate interface {
	Entity
	Children() []Entity
}
