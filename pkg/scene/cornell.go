package scene

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/integrator"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// buildCornellBox creates the classic Cornell box with quad walls, a ceiling light and two boxes
func buildCornellBox(Options) (*Scene, error) {
	s := &Scene{
		CameraConfig: defaultCamera(
			core.NewVec3(278, 278, -800), // Position camera outside the box looking in
			core.NewVec3(278, 278, 0),
			40,
		),
		SamplingConfig: samplingWith(200),
		Background:     integrator.SolidBackground(core.Vec3{}), // The light is the only source
	}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	s.add(
		// Right wall (green) - YZ plane at x=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// Left wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)

	// Slightly below the ceiling so it does not coincide with it
	s.AddQuadLight(
		core.NewVec3(343, 554, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		core.NewVec3(15, 15, 15),
	)

	s.add(cornellBlock(core.NewVec3(165, 330, 165), core.NewVec3(205, 0, 295), 15, white)...)
	s.add(cornellBlock(core.NewVec3(165, 165, 165), core.NewVec3(160, 0, 0), -18, white)...)

	return s, nil
}

// cornellBlock returns a box spanning the origin to size, moved by offset and
// then turned about the world Y axis
func cornellBlock(size, offset core.Vec3, degreesY float64, mat *material.Material) []*geometry.Shape {
	rotation := core.NewVec3(0, degreesY*math.Pi/180, 0)
	halfSize := size.Multiply(0.5)
	center := halfSize.Add(offset).Rotate(rotation)
	return geometry.NewBox(center, halfSize, rotation, mat)
}
