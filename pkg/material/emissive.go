package material

import (
	"github.com/df07/whitted-raytracer/pkg/core"
)

// Emissive is a self-lit surface, typically wrapped around a point light to
// make it visible. It does not block shadow rays.
type Emissive struct {
	Emission core.Color
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Color) *Emissive {
	return &Emissive{Emission: emission}
}

// Shade returns the emitted color regardless of lighting
func (e *Emissive) Shade(rayIn core.Ray, hit *HitRecord, env Environment, depth int, sampler core.Sampler) core.Color {
	return e.Emission
}

// Transmittance implements Transmitter
func (e *Emissive) Transmittance() core.Color {
	return core.White
}
