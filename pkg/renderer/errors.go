package renderer

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned when a render configuration cannot be used.
	ErrInvalidConfig = errors.New("renderer: invalid configuration")

	// ErrNoCamera is returned when neither the scene nor the config describe an image size.
	ErrNoCamera = errors.New("renderer: scene has no usable camera")
)
