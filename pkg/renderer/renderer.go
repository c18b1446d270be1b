package renderer

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/scene"
)

// Renderer traces every pixel of a scene into a framebuffer
type Renderer struct {
	scene  *scene.Scene
	tracer *WhittedTracer
	camera *geometry.Camera
	config Config
	logger core.Logger
}

// NewRenderer prepares a render of s. Zero config fields take the scene's
// recommendations, and the tracer's depth bound is set from the result.
func NewRenderer(s *scene.Scene, tracer *WhittedTracer, config Config, logger core.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	config = config.WithSceneDefaults(s)
	if config.Width <= 0 || config.Height <= 0 || s.CameraConfig.VFov <= 0 {
		return nil, errors.Wrapf(ErrNoCamera, "scene %q", s.Name)
	}

	tracer.SetMaxDepth(config.MaxDepth)

	return &Renderer{
		scene:  s,
		tracer: tracer,
		camera: geometry.NewCameraForImage(s.CameraConfig, config.Width, config.Height),
		config: config,
		logger: logger,
	}, nil
}

// Config returns the resolved render configuration
func (r *Renderer) Config() Config {
	return r.config
}

// Render traces the whole image. Each row gets its own sampler seeded from
// (Seed, row), so the output does not depend on the number of workers.
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	width, height := r.camera.Width(), r.camera.Height()
	spp := r.config.SamplesPerPixel
	fb := NewFramebuffer(width, height)
	pool := NewWorkerPool(r.config.Workers)

	r.logger.Infof("Rendering %q at %dx%d, %d spp, depth %d, %d workers",
		r.scene.Name, width, height, spp, r.config.MaxDepth, pool.NumWorkers())

	start := time.Now()
	startRays := r.tracer.RayCount()

	err := pool.Run(ctx, height, func(ctx context.Context, row int) error {
		sampler := core.NewRandomSampler(r.config.Seed, uint64(row))
		inv := 1.0 / float64(spp)
		for x := 0; x < width; x++ {
			sum := core.Black
			for s := 0; s < spp; s++ {
				ray := r.camera.GetRay(x, row, sampler)
				sum = sum.Add(r.tracer.Trace(ray, r.scene, 0, sampler))
			}
			fb.Set(x, row, sum.Multiply(inv))
		}
		r.logger.Debugf("Row %d done", row)
		return nil
	})

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: spp,
		Samples:         int64(width) * int64(height) * int64(spp),
		Rays:            r.tracer.RayCount() - startRays,
		Workers:         pool.NumWorkers(),
		Duration:        time.Since(start),
	}
	if err != nil {
		return nil, stats, err
	}

	r.logger.Infof("Rendered %d rays in %v", stats.Rays, stats.Duration)
	return fb, stats, nil
}
