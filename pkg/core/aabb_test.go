package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestAABB_NewFromUnorderedExtremes(t *testing.T) {
	box := NewAABB(NewVec3(1, -2, 3), NewVec3(-1, 2, -3))

	if box.X.Min != -1 || box.X.Max != 1 ||
		box.Y.Min != -2 || box.Y.Max != 2 ||
		box.Z.Min != -3 || box.Z.Max != 3 {
		t.Errorf("Unexpected box %+v", box)
	}
}

func TestAABB_CombineContainsBoth(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	randomPoint := func() Vec3 {
		return NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
	}

	for i := 0; i < 200; i++ {
		a := NewAABB(randomPoint(), randomPoint())
		b := NewAABB(randomPoint(), randomPoint())
		combined := CombineAABB(a, b)

		if !combined.Contains(a) || !combined.Contains(b) {
			t.Fatalf("Combined box %+v does not contain %+v and %+v", combined, a, b)
		}

		// Minimality: every bound comes from one of the inputs
		for axis := 0; axis < 3; axis++ {
			c := combined.Axis(axis)
			if c.Min != math.Min(a.Axis(axis).Min, b.Axis(axis).Min) ||
				c.Max != math.Max(a.Axis(axis).Max, b.Axis(axis).Max) {
				t.Fatalf("Combined box is not minimal on axis %d", axis)
			}
		}
	}
}

func TestAABB_PadOnlyDegenerateAxis(t *testing.T) {
	flat := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 0))
	padded := flat.Pad()

	if padded.Z.Size() <= flat.Z.Size() {
		t.Errorf("Expected padding to widen Z, got size %g", padded.Z.Size())
	}
	if padded.Z.Min >= 0 || padded.Z.Max <= 0 {
		t.Errorf("Expected padding to be symmetric around 0, got [%g, %g]", padded.Z.Min, padded.Z.Max)
	}
	if padded.X != flat.X || padded.Y != flat.Y {
		t.Errorf("Non-degenerate axes must be unchanged: %+v -> %+v", flat, padded)
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	rayT := NewInterval(0.001, math.Inf(1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"head on", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"diagonal", NewRay(NewVec3(5, 5, 5), NewVec3(-1, -1, -1)), true},
		{"from inside", NewRay(NewVec3(0, 0, 0), NewVec3(0.3, -0.2, 1)), true},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"passes beside", NewRay(NewVec3(2, 0, 5), NewVec3(0, 0, -1)), false},
		{"zero direction component inside slab", NewRay(NewVec3(0.5, 0, 5), NewVec3(0, 0, -1)), true},
		{"zero direction component outside slab", NewRay(NewVec3(1.5, 0, 5), NewVec3(0, 0, -1)), false},
		{"negative zero component outside slab", NewRay(NewVec3(0, -3, 5), NewVec3(0, math.Copysign(0, -1), -1)), false},
		{"origin on face with zero component", NewRay(NewVec3(1, 0, 5), NewVec3(0, 0, -1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, rayT); got != tt.expected {
				t.Errorf("Expected hit=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_HitRespectsInterval(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))

	// The box spans t in [4, 6]
	if box.Hit(ray, NewInterval(0.001, 3.5)) {
		t.Error("Expected miss when interval ends before the box")
	}
	if box.Hit(ray, NewInterval(6.5, 10)) {
		t.Error("Expected miss when interval starts after the box")
	}
	if !box.Hit(ray, NewInterval(0.001, 4.5)) {
		t.Error("Expected hit when interval overlaps the box")
	}
}

func TestAABB_PaddedFlatBoxIsHittable(t *testing.T) {
	flat := NewAABB(NewVec3(-1, -1, 0), NewVec3(1, 1, 0))
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))
	rayT := NewInterval(0.001, math.Inf(1))

	if flat.Hit(ray, rayT) {
		t.Error("Expected zero-thickness box to be missed by the strict slab test")
	}
	if !flat.Pad().Hit(ray, rayT) {
		t.Error("Expected padded box to be hit")
	}
}
