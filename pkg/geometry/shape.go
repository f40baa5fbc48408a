package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Kind identifies the geometry stored in a Shape
type Kind uint8

const (
	KindSphere Kind = iota
	KindQuad
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindQuad:
		return "quad"
	default:
		return "unknown"
	}
}

// Shape is a primitive that can be hit by rays. The set of primitives is
// closed, so dispatch is a switch on Kind rather than an interface call.
// Shapes are immutable after construction and safe to share between workers.
type Shape struct {
	kind     Kind
	sphere   Sphere
	quad     Quad
	material *material.Material
	bbox     core.AABB
}

// Kind reports which primitive the shape holds
func (s *Shape) Kind() Kind {
	return s.kind
}

// Material returns the material attached to the shape
func (s *Shape) Material() *material.Material {
	return s.material
}

// BoundingBox returns the bounding box computed at construction
func (s *Shape) BoundingBox() core.AABB {
	return s.bbox
}

// Hit tests the ray against the shape, accepting distances inside rayT
func (s *Shape) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var hit *material.HitRecord
	var ok bool

	switch s.kind {
	case KindSphere:
		hit, ok = s.sphere.hit(ray, rayT)
	case KindQuad:
		hit, ok = s.quad.hit(ray, rayT)
	}
	if !ok {
		return nil, false
	}

	hit.Material = s.material
	return hit, true
}
