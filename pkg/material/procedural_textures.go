package material

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// Checker is a procedural checkerboard in UV space
type Checker struct {
	Even, Odd core.Color
	Scale     float64 // Number of checks along each UV axis
}

// NewChecker creates a checkerboard with scale checks per unit of UV
func NewChecker(even, odd core.Color, scale float64) *Checker {
	return &Checker{Even: even, Odd: odd, Scale: scale}
}

// Evaluate returns the check color under uv
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	i := int(math.Floor(uv.X * c.Scale))
	j := int(math.Floor(uv.Y * c.Scale))
	if (i+j)&1 == 0 {
		return c.Even
	}
	return c.Odd
}

// NewCheckerboardTexture creates a checkerboard pattern baked into an image texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Color) *ImageTexture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Alternate colors based on check position
			if (x/checkSize+y/checkSize)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewBumpNormalMap creates a tangent-space normal map of sinusoidal bumps.
// Channels encode the perturbed normal remapped from [-1,1] to [0,1].
func NewBumpNormalMap(width, height int, frequency, strength float64) *ImageTexture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width)
			v := float64(y) / float64(height)
			dx := strength * math.Cos(2*math.Pi*frequency*u)
			dy := strength * math.Cos(2*math.Pi*frequency*v)
			n := core.NewVec3(-dx, -dy, 1).Normalize()
			pixels[y*width+x] = core.NewColor(0.5*(n.X+1), 0.5*(n.Y+1), 0.5*(n.Z+1))
		}
	}

	return NewImageTexture(width, height, pixels)
}
