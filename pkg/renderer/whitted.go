package renderer

import (
	"math"
	"sync/atomic"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// RayEpsilon is the smallest hit distance accepted for any traced ray
const RayEpsilon = 0.001

// FallbackColor is returned for hits on entities without a material
var FallbackColor = core.Gray(0.5)

// WhittedTracer is the recursive entry point. Materials do all shading and
// call back into Trace for secondary rays.
type WhittedTracer struct {
	maxDepth int
	rays     atomic.Int64
}

// NewWhittedTracer creates a tracer that stops recursing at maxDepth
func NewWhittedTracer(maxDepth int) *WhittedTracer {
	return &WhittedTracer{maxDepth: maxDepth}
}

// MaxDepth implements material.Tracer
func (w *WhittedTracer) MaxDepth() int {
	return w.maxDepth
}

// SetMaxDepth changes the recursion bound. Not safe to call while rendering.
func (w *WhittedTracer) SetMaxDepth(maxDepth int) {
	w.maxDepth = maxDepth
}

// Trace returns the color seen along ray. depth is the number of bounces
// already taken; at maxDepth the result is black.
func (w *WhittedTracer) Trace(ray core.Ray, env material.Environment, depth int, sampler core.Sampler) core.Color {
	if depth >= w.maxDepth {
		return core.Black
	}
	w.rays.Add(1)

	var rec material.HitRecord
	if !env.Hit(ray, core.NewInterval(RayEpsilon, math.Inf(1)), &rec) {
		return Background(ray, env)
	}

	if rec.Material == nil {
		return FallbackColor
	}

	return rec.Material.Shade(ray, &rec, env, depth, sampler)
}

// RayCount returns how many rays have been traced so far
func (w *WhittedTracer) RayCount() int64 {
	return w.rays.Load()
}

// Background blends the environment's sky colors by the ray's vertical direction
func Background(ray core.Ray, env material.Environment) core.Color {
	top, bottom := env.BackgroundColors()
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return bottom.Lerp(top, t)
}
