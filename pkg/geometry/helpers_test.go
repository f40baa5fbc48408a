package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

var (
	testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	// Interval used by the integrator
	renderInterval = core.NewInterval(0.001, math.Inf(1))
)

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func randomVec(random *rand.Rand, lo, hi float64) core.Vec3 {
	span := hi - lo
	return core.NewVec3(
		lo+span*random.Float64(),
		lo+span*random.Float64(),
		lo+span*random.Float64(),
	)
}

// randomScene mixes spheres and quads inside a 20-unit cube
func randomScene(random *rand.Rand, count int) []*Shape {
	shapes := make([]*Shape, 0, count)
	for i := 0; i < count; i++ {
		if random.Intn(2) == 0 {
			shapes = append(shapes, NewSphere(randomVec(random, -10, 10), 0.2+2*random.Float64(), testMaterial))
		} else {
			shapes = append(shapes, NewQuad(
				randomVec(random, -10, 10),
				randomVec(random, -3, 3),
				randomVec(random, -3, 3),
				testMaterial,
			))
		}
	}
	return shapes
}

// randomRay starts outside or inside the scene and points anywhere
func randomRay(random *rand.Rand) core.Ray {
	origin := randomVec(random, -15, 15)
	direction := core.SampleOnUnitSphere(core.NewVec2(random.Float64(), random.Float64()))
	return core.NewRay(origin, direction)
}
