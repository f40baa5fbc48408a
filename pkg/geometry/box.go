package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// NewBox returns the six quad faces of a box with the given center, size, rotation, and material.
// Size represents half-extents (so a size of (1,1,1) creates a 2x2x2 box).
// Rotation is in radians around X, Y, Z axes (applied in that order) about the box center.
// Outward normals point away from the center on every face.
func NewBox(center, size, rotation core.Vec3, mat *material.Material) []*Shape {
	// Define the 8 corners of a unit box centered at origin
	corners := [8]core.Vec3{
		core.NewVec3(-1, -1, -1), // 0: left-bottom-back
		core.NewVec3(1, -1, -1),  // 1: right-bottom-back
		core.NewVec3(1, 1, -1),   // 2: right-top-back
		core.NewVec3(-1, 1, -1),  // 3: left-top-back
		core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
		core.NewVec3(1, -1, 1),   // 5: right-bottom-front
		core.NewVec3(1, 1, 1),    // 6: right-top-front
		core.NewVec3(-1, 1, 1),   // 7: left-top-front
	}

	// Scale, rotate, then translate to center
	for i := range corners {
		corners[i] = corners[i].MultiplyVec(size).Rotate(rotation).Add(center)
	}

	// Each face is a corner and two edges ordered so U × V points outward
	face := func(origin, uEnd, vEnd int) *Shape {
		return NewQuad(
			corners[origin],
			corners[uEnd].Subtract(corners[origin]),
			corners[vEnd].Subtract(corners[origin]),
			mat,
		)
	}

	return []*Shape{
		face(4, 5, 7), // Front (Z+)
		face(1, 0, 2), // Back (Z-)
		face(5, 1, 6), // Right (X+)
		face(0, 4, 3), // Left (X-)
		face(3, 7, 2), // Top (Y+)
		face(4, 0, 5), // Bottom (Y-)
	}
}
