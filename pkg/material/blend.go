package material

import (
	"github.com/df07/whitted-raytracer/pkg/core"
)

// Layer is one weighted component of a Blend
type Layer struct {
	Weight   float64
	Material Material
}

// Blend sums the shading of several materials, each scaled by its weight.
// This is how a classic Whitted surface is written: local Phong shading plus
// a reflectivity-weighted Mirror plus a transmission-weighted Glass.
type Blend struct {
	Layers []Layer
}

// NewBlend creates a new blend material
func NewBlend(layers ...Layer) *Blend {
	return &Blend{Layers: layers}
}

// NewWhittedSurface blends local shading with reflected and refracted terms.
// Zero coefficients drop the corresponding layer.
func NewWhittedSurface(local Material, reflectivity float64, reflective Material, transmission float64, refractive Material) *Blend {
	layers := []Layer{{Weight: 1, Material: local}}
	if reflectivity > 0 && reflective != nil {
		layers = append(layers, Layer{Weight: reflectivity, Material: reflective})
	}
	if transmission > 0 && refractive != nil {
		layers = append(layers, Layer{Weight: transmission, Material: refractive})
	}
	return NewBlend(layers...)
}

// Shade implements the Material interface
func (b *Blend) Shade(rayIn core.Ray, hit *HitRecord, env Environment, depth int, sampler core.Sampler) core.Color {
	result := core.Black
	for _, layer := range b.Layers {
		if layer.Weight == 0 {
			continue
		}
		result = result.Add(layer.Material.Shade(rayIn, hit, env, depth, sampler).Multiply(layer.Weight))
	}
	return result
}

// Transmittance implements Transmitter. Opaque layers contribute nothing.
func (b *Blend) Transmittance() core.Color {
	result := core.Black
	for _, layer := range b.Layers {
		if t, ok := layer.Material.(Transmitter); ok {
			result = result.Add(t.Transmittance().Multiply(layer.Weight))
		}
	}
	return result
}
