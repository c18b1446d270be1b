package material

import (
	"github.com/df07/whitted-raytracer/pkg/core"
)

// NewTextured creates a Phong material whose diffuse color comes from a
// texture. The ambient term is the same texture scaled by ambient.
func NewTextured(texture ColorSource, ambient float64, specular core.Color, shininess float64) *Phong {
	return &Phong{
		Ambient:   NewScaled(texture, core.Gray(ambient)),
		Diffuse:   texture,
		Specular:  NewSolidColor(specular),
		Shininess: shininess,
	}
}
