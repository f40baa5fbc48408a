package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// ImageData is a decoded RGB image in linear [0,1] floats. Row 0 is the top row.
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageData wraps pixel data without copying it
func NewImageData(width, height int, pixels []core.Vec3) *ImageData {
	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// At samples the image at given UV coordinates using nearest-neighbor lookup
func (img *ImageData) At(uv core.Vec2) core.Vec3 {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		// Missing data shows up as cyan rather than crashing the render
		return core.NewVec3(0, 1, 1)
	}

	// Clamp also maps NaN coordinates from degenerate hits to 0
	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	v := 1.0 - unit.Clamp(uv.Y) // V=0 is bottom; image rows start at the top

	x := int(u * float64(img.Width))
	y := int(v * float64(img.Height))

	// u or v of exactly 1 lands one past the last pixel
	if x >= img.Width {
		x = img.Width - 1
	}
	if y >= img.Height {
		y = img.Height - 1
	}

	return img.Pixels[y*img.Width+x]
}
