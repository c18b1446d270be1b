package geometry

import "github.com/pkg/errors"

var (
	// ErrInvalidFace is returned when a mesh face has fewer than three vertices
	// or references a vertex that does not exist.
	ErrInvalidFace = errors.New("geometry: invalid mesh face")
)
