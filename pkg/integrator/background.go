package integrator

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Background supplies the radiance of rays that escape the scene
type Background func(ray core.Ray) core.Vec3

// SolidBackground returns the same color in every direction
func SolidBackground(color core.Vec3) Background {
	return func(core.Ray) core.Vec3 {
		return color
	}
}

// SkyBackground blends from bottom (looking straight down) to top (straight up)
func SkyBackground(bottom, top core.Vec3) Background {
	return func(ray core.Ray) core.Vec3 {
		unitDirection := ray.Direction.Normalize()
		t := 0.5 * (unitDirection.Y + 1.0)
		return bottom.Multiply(1.0 - t).Add(top.Multiply(t))
	}
}
