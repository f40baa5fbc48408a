package integrator

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// World is anything that can report the nearest hit along a ray.
// Both the BVH and the brute-force shape list satisfy it.
type World interface {
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the linear radiance arriving along ray
	RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3
}
