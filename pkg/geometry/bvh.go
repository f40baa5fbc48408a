package geometry

import (
	"math/rand"
	"sort"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Leaves hold one or two shapes; branches hold exactly two children.
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []*Shape // Leaf shapes in traversal order (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of shapes. Split axes are drawn from
// random, so a fixed seed gives a reproducible tree. The input slice is not modified.
func NewBVH(shapes []*Shape, random *rand.Rand) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	shapesCopy := make([]*Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy, random)}
}

// buildBVH sorts shapes by bounding box minimum along a random axis and splits at the median
func buildBVH(shapes []*Shape, random *rand.Rand) *BVHNode {
	if len(shapes) == 1 {
		return &BVHNode{
			BoundingBox: shapes[0].BoundingBox(),
			Shapes:      shapes,
		}
	}

	axis := random.Intn(3)
	sortShapesByAxis(shapes, axis)

	if len(shapes) == 2 {
		return &BVHNode{
			BoundingBox: core.CombineAABB(shapes[0].BoundingBox(), shapes[1].BoundingBox()),
			Shapes:      shapes,
		}
	}

	middle := len(shapes) / 2
	left := buildBVH(shapes[:middle], random)
	right := buildBVH(shapes[middle:], random)

	return &BVHNode{
		BoundingBox: core.CombineAABB(left.BoundingBox, right.BoundingBox),
		Left:        left,
		Right:       right,
	}
}

// sortShapesByAxis sorts shapes by the minimum of their bounding box along the specified axis
func sortShapesByAxis(shapes []*Shape, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Axis(axis).Min < shapes[j].BoundingBox().Axis(axis).Min
	})
}

// Hit returns the nearest intersection with distance inside rayT
func (bvh *BVH) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.Root.hit(ray, rayT)
}

// BoundingBox returns the bounds of the whole tree; false when empty
func (bvh *BVH) BoundingBox() (core.AABB, bool) {
	if bvh.Root == nil {
		return core.AABB{}, false
	}
	return bvh.Root.BoundingBox, true
}

// hit visits the left side first and then the right side with the interval
// clipped to the left hit. A right-side hit is therefore strictly nearer and
// wins without a distance comparison.
func (node *BVHNode) hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, rayT) {
		return nil, false
	}

	if node.Shapes != nil {
		var closest *material.HitRecord
		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, rayT); ok {
				closest = hit
				rayT.Max = hit.T
			}
		}
		return closest, closest != nil
	}

	hitLeft, okLeft := node.Left.hit(ray, rayT)
	if okLeft {
		rayT.Max = hitLeft.T
	}

	if hitRight, okRight := node.Right.hit(ray, rayT); okRight {
		return hitRight, true
	}
	return hitLeft, okLeft
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes  int
	LeafNodes   int
	TotalShapes int
	MaxDepth    int
	AvgDepth    float64 // Average leaf depth
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	if bvh.Root == nil {
		return BVHStats{}
	}

	stats := BVHStats{}
	collectStats(bvh.Root, 0, &stats)

	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.Shapes != nil {
		stats.LeafNodes++
		stats.TotalShapes += len(node.Shapes)
		stats.AvgDepth += float64(depth)
		return
	}

	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}
