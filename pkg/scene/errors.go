package scene

import "github.com/pkg/errors"

var (
	// ErrUnknownScene is returned when a builtin scene name is not registered.
	ErrUnknownScene = errors.New("scene: unknown builtin scene")
)
