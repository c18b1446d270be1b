package loaders

import "github.com/pkg/errors"

var (
	// ErrUnknownMaterial is returned when an entity references a material
	// that the scene file never defines.
	ErrUnknownMaterial = errors.New("loaders: unknown material")

	// ErrUnknownType is returned for an unrecognized entity, material,
	// light or texture type.
	ErrUnknownType = errors.New("loaders: unknown type")

	// ErrUnsupportedPLY is returned for PLY encodings other than ascii.
	ErrUnsupportedPLY = errors.New("loaders: unsupported PLY format")
)
