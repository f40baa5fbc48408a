package renderer

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// CameraConfig describes a thin-lens camera. Angles are in degrees.
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view
	DefocusAngle  float64   // Cone angle of rays through each pixel; 0 is a pinhole
	FocusDistance float64   // Distance to the plane of perfect focus; 0 uses |LookAt - Center|
}

// Height returns the image height implied by width and aspect ratio
func (c CameraConfig) Height() int {
	height := int(float64(c.Width) / c.AspectRatio)
	if height < 1 {
		height = 1
	}
	return height
}

// Camera generates rays for rendering
type Camera struct {
	config       CameraConfig
	width        int
	height       int
	center       core.Vec3
	pixel00      core.Vec3 // Center of the upper-left pixel
	pixelDeltaU  core.Vec3 // Offset to the pixel on the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera creates a camera from configuration
func NewCamera(config CameraConfig) *Camera {
	width := config.Width
	height := config.Height()

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.Center).Length()
	}

	// Orthonormal basis: w points backwards, u right, v up
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	theta := config.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	// Viewport edges: across the top, and down the left side
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)

	pixelDeltaU := viewportU.Multiply(1 / float64(width))
	pixelDeltaV := viewportV.Multiply(1 / float64(height))

	upperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(config.DefocusAngle*math.Pi/180/2)

	return &Camera{
		config:       config,
		width:        width,
		height:       height,
		center:       config.Center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// GetRay returns a ray through a random point of pixel (i, j), row 0 at the top,
// starting on the defocus disk
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + jitter.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + jitter.Y - 0.5))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		p := core.RandomInUnitDisk(sampler)
		origin = origin.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// Size returns the image dimensions in pixels
func (c *Camera) Size() (width, height int) {
	return c.width, c.height
}
