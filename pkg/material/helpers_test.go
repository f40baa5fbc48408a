package material

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// fixedSampler returns the same values on every draw
type fixedSampler struct {
	value1D float64
	value2D core.Vec2
	value3D core.Vec3
}

func (f fixedSampler) Get1D() float64 { return f.value1D }
func (f fixedSampler) Get2D() core.Vec2 { return f.value2D }
func (f fixedSampler) Get3D() core.Vec3 { return f.value3D }

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
