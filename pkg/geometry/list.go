package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// ShapeList tests every shape in turn. It is the reference the BVH must agree with.
type ShapeList []*Shape

// Hit returns the nearest intersection with distance inside rayT
func (l ShapeList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	for _, shape := range l {
		if hit, ok := shape.Hit(ray, rayT); ok {
			closest = hit
			rayT.Max = hit.T
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the combined bounds of all shapes; false when empty
func (l ShapeList) BoundingBox() (core.AABB, bool) {
	if len(l) == 0 {
		return core.AABB{}, false
	}
	bbox := l[0].BoundingBox()
	for _, shape := range l[1:] {
		bbox = core.CombineAABB(bbox, shape.BoundingBox())
	}
	return bbox, true
}
