package renderer

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/df07/whitted-raytracer/pkg/scene"
)

// Config defines the settings for a render. Zero Width, Height,
// SamplesPerPixel and MaxDepth fall back to the scene's recommendations.
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int     // Row workers; 0 uses every CPU
	Seed            uint64  // Seed for every per-row sampler
	Gamma           float64 // Output gamma; 1 leaves values linear
}

// DefaultConfig returns a config that defers to the scene for everything but
// parallelism, seeding and gamma
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
		Seed:    1,
		Gamma:   2.0,
	}
}

// Validate checks that the config can be used. Zero fields are allowed.
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Wrapf(ErrInvalidConfig, "image size %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel < 0:
		return errors.Wrapf(ErrInvalidConfig, "samples per pixel %d", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return errors.Wrapf(ErrInvalidConfig, "max depth %d", c.MaxDepth)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers %d", c.Workers)
	case c.Gamma < 0:
		return errors.Wrapf(ErrInvalidConfig, "gamma %f", c.Gamma)
	}
	return nil
}

// WithSceneDefaults fills zero fields from the scene's camera and sampling settings
func (c Config) WithSceneDefaults(s *scene.Scene) Config {
	if c.Width == 0 {
		c.Width = s.CameraConfig.Width
	}
	if c.Height == 0 {
		camera := s.CameraConfig
		camera.Width = c.Width
		c.Height = camera.Height()
	}
	if c.SamplesPerPixel == 0 {
		c.SamplesPerPixel = max(1, s.SamplingConfig.SamplesPerPixel)
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = max(1, s.SamplingConfig.MaxDepth)
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Gamma == 0 {
		c.Gamma = 1
	}
	return c
}
