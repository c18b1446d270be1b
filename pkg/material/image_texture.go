package material

import (
	"github.com/df07/whitted-raytracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// UV coordinates outside [0,1] are clamped to the image edge.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	if t.Width == 0 || t.Height == 0 {
		return core.Black
	}

	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	v := unit.Clamp(uv.Y)

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	x = min(max(x, 0), t.Width-1)
	y = min(max(y, 0), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
