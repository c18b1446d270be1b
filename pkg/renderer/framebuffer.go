package renderer

import (
	"image"
	"image/color"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// Framebuffer holds unclamped linear colors, row-major with row 0 at the top
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color at (x, y)
func (f *Framebuffer) At(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color at (x, y)
func (f *Framebuffer) Set(x, y int, c core.Color) {
	f.Pixels[y*f.Width+x] = c
}

// ToImage gamma-corrects and quantizes the framebuffer. Clamping happens only here.
func (f *Framebuffer) ToImage(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.At(x, y).GammaCorrect(gamma).ToBytes()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
