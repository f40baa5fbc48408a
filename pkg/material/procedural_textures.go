package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// NewCheckerboardImage creates a 2D checkerboard image, used as a stand-in
// when an image texture file is not available
func NewCheckerboardImage(width, height, checkSize int, color1, color2 core.Vec3) *ImageData {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			var color core.Vec3
			if (checkX+checkY)%2 == 0 {
				color = color1
			} else {
				color = color2
			}

			pixels[y*width+x] = color
		}
	}

	return NewImageData(width, height, pixels)
}
