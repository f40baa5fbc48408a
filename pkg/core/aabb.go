package core

import "math"

// aabbPadding is the minimum thickness of any bounding box axis
const aabbPadding = 1e-4

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates the box spanned by two extreme points, given in any order
func NewAABB(a, b Vec3) AABB {
	return AABB{
		X: NewInterval(math.Min(a.X, b.X), math.Max(a.X, b.X)),
		Y: NewInterval(math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)),
		Z: NewInterval(math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)),
	}
}

// CombineAABB returns the smallest box containing both a and b
func CombineAABB(a, b AABB) AABB {
	return AABB{
		X: CombineIntervals(a.X, b.X),
		Y: CombineIntervals(a.Y, b.Y),
		Z: CombineIntervals(a.Z, b.Z),
	}
}

// Axis returns the interval for axis 0=X, 1=Y, 2=Z
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Pad widens every axis thinner than aabbPadding so flat shapes still enclose a volume
func (aabb AABB) Pad() AABB {
	pad := func(i Interval) Interval {
		if i.Size() >= aabbPadding {
			return i
		}
		return i.Expand(aabbPadding)
	}
	return AABB{X: pad(aabb.X), Y: pad(aabb.Y), Z: pad(aabb.Z)}
}

// Hit tests if a ray intersects with this AABB within rayT using the slab method.
//
// A zero direction component yields an infinite inverse; the slab bounds then
// become ±Inf (or NaN when the origin lies exactly on a face). The interval is
// narrowed with plain comparisons so NaN bounds are ignored rather than
// propagated.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		origin := ray.Origin.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)

		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection

		// Ensure t0 <= t1 for rays travelling in the negative direction
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// Contains reports whether other lies entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	for axis := 0; axis < 3; axis++ {
		a, b := aabb.Axis(axis), other.Axis(axis)
		if b.Min < a.Min || b.Max > a.Max {
			return false
		}
	}
	return true
}
