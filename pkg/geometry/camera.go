package geometry

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// CameraConfig describes a pinhole camera and the image it produces
type CameraConfig struct {
	Center      core.Vec3 // Camera position (look-from)
	LookAt      core.Vec3 // Point the camera looks at
	Up          core.Vec3 // Up direction
	Width       int       // Image width in pixels
	AspectRatio float64   // Width / height
	VFov        float64   // Vertical field of view in degrees
}

// Height returns the image height implied by Width and AspectRatio
func (c CameraConfig) Height() int {
	if c.AspectRatio <= 0 {
		return c.Width
	}
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	return result
}

// Camera generates primary rays. Pixel (0,0) is the top-left of the image.
type Camera struct {
	center     core.Vec3
	upperLeft  core.Vec3 // Corner of pixel (0,0)
	pixelDelta struct {
		u core.Vec3 // Step one pixel right
		v core.Vec3 // Step one pixel down
	}
	width, height int
}

// NewCamera creates a camera from config
func NewCamera(config CameraConfig) *Camera {
	return NewCameraForImage(config, config.Width, config.Height())
}

// NewCameraForImage creates a camera for an explicit image size, ignoring
// config.Width and config.AspectRatio
func NewCameraForImage(config CameraConfig, width, height int) *Camera {
	width = max(1, width)
	height = max(1, height)

	theta := config.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2)
	viewportWidth := viewportHeight * float64(width) / float64(height)

	// Orthonormal camera basis
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)

	c := &Camera{
		center: config.Center,
		width:  width,
		height: height,
	}
	c.pixelDelta.u = viewportU.Divide(float64(width))
	c.pixelDelta.v = viewportV.Divide(float64(height))
	c.upperLeft = config.Center.
		Subtract(w).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	return c
}

// GetRay returns a ray through pixel (i, j), jittered within the pixel by sampler
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	return c.rayThrough(float64(i)+offset.X, float64(j)+offset.Y)
}

// GetCenterRay returns the ray through the center of pixel (i, j)
func (c *Camera) GetCenterRay(i, j int) core.Ray {
	return c.rayThrough(float64(i)+0.5, float64(j)+0.5)
}

func (c *Camera) rayThrough(x, y float64) core.Ray {
	pixel := c.upperLeft.
		Add(c.pixelDelta.u.Multiply(x)).
		Add(c.pixelDelta.v.Multiply(y))
	return core.NewRay(c.center, pixel.Subtract(c.center))
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}
