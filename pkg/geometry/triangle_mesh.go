package geometry

import (
	"github.com/pkg/errors"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Mesh is a collection of triangles sharing one bounding box. Polygon faces
// are fan-triangulated around their first vertex.
type Mesh struct {
	triangles []*Triangle
	bbox      core.AABB
}

// NewMesh builds a mesh from raw vertices and polygon faces. Each vertex is
// scaled by scale and then moved by translate before triangulation. Faces
// whose triangles have no area are skipped.
func NewMesh(vertices []core.Vec3, faces [][]int, scale float64, translate core.Vec3, mat material.Material) (*Mesh, error) {
	transformed := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		transformed[i] = v.Multiply(scale).Add(translate)
	}

	mesh := &Mesh{bbox: core.EmptyAABB()}
	for i, face := range faces {
		if len(face) < 3 {
			return nil, errors.Wrapf(ErrInvalidFace, "face %d has %d vertices", i, len(face))
		}
		for _, index := range face {
			if index < 0 || index >= len(transformed) {
				return nil, errors.Wrapf(ErrInvalidFace, "face %d references vertex %d of %d", i, index, len(transformed))
			}
		}

		v0 := transformed[face[0]]
		for k := 1; k+1 < len(face); k++ {
			tri := NewTriangle(v0, transformed[face[k]], transformed[face[k+1]], mat)
			if tri.degenerate() {
				continue
			}
			mesh.triangles = append(mesh.triangles, tri)
			mesh.bbox = mesh.bbox.Union(tri.BoundingBox())
		}
	}

	return mesh, nil
}

// Hit rejects against the mesh bounds, then scans every triangle for the nearest hit
func (m *Mesh) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	if !m.bbox.Hit(ray, rayT) {
		return false
	}

	hitAnything := false
	closest := rayT
	for _, tri := range m.triangles {
		if tri.Hit(ray, closest, rec) {
			hitAnything = true
			closest = closest.WithMax(rec.T)
		}
	}
	return hitAnything
}

// BoundingBox returns the union of every triangle's bounds
func (m *Mesh) BoundingBox() core.AABB {
	return m.bbox
}

// SetMaterial assigns mat to every triangle
func (m *Mesh) SetMaterial(mat material.Material) {
	for _, tri := range m.triangles {
		tri.SetMaterial(mat)
	}
}

// Triangles returns the mesh's triangles
func (m *Mesh) Triangles() []*Triangle {
	return m.triangles
}
