package geometry

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// EntityList is a heterogeneous group of entities, itself an entity
type EntityList struct {
	entities []Entity
	bbox     core.AABB
}

// NewEntityList creates a list holding entities
func NewEntityList(entities ...Entity) *EntityList {
	l := &EntityList{bbox: core.EmptyAABB()}
	for _, e := range entities {
		l.Add(e)
	}
	return l
}

// Add appends an entity to the list
func (l *EntityList) Add(e Entity) {
	l.entities = append(l.entities, e)
	l.bbox = l.bbox.Union(e.BoundingBox())
}

// Hit finds the nearest hit across all children by narrowing the interval
// to the closest hit found so far
func (l *EntityList) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	var tempRec material.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, e := range l.entities {
		if e.Hit(ray, rayT.WithMax(closestSoFar), &tempRec) {
			hitAnything = true
			closestSoFar = tempRec.T
			*rec = tempRec
		}
	}

	return hitAnything
}

// BoundingBox returns the union of the children's bounds
func (l *EntityList) BoundingBox() core.AABB {
	return l.bbox
}

// SetMaterial assigns mat to every child
func (l *EntityList) SetMaterial(mat material.Material) {
	for _, e := range l.entities {
		e.SetMaterial(mat)
	}
}

// Children returns the entities in the list
func (l *EntityList) Children() []Entity {
	return l.entities
}

// Len returns the number of direct children
func (l *EntityList) Len() int {
	return len(l.entities)
}
