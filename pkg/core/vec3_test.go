package core

import (
	"math"
	"testing"
)

func TestVec3_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		rotation Vec3
		expected Vec3
	}{
		{
			name:     "No rotation",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "90 degree rotation around Z axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, 0, math.Pi/2),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "90 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi/2, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "90 degree rotation around X axis",
			vector:   NewVec3(0, 1, 0),
			rotation: NewVec3(math.Pi/2, 0, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "180 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi, 0),
			expected: NewVec3(-1, 0, 0),
		},
		{
			name:     "Combined rotations",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi/2, math.Pi/2), // 90° Y then 90° Z
			expected: NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Rotate(tt.rotation)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(0, 0, 1e-6).NearZero() {
		t.Error("Expected 1e-6 component to not be near zero")
	}
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)

	reflected := Reflect(v, n)
	expected := NewVec3(1, 1, 0)
	if reflected.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}
}

func TestRefract_StraightThrough(t *testing.T) {
	// A ray hitting head-on is not bent regardless of the index ratio
	uv := NewVec3(0, 0, -1)
	n := NewVec3(0, 0, 1)

	refracted := Refract(uv, n, 1.0/1.5)
	if refracted.Subtract(uv).Length() > 1e-12 {
		t.Errorf("Expected unbent direction %v, got %v", uv, refracted)
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	ratio := 1.0 / 1.5
	theta := math.Pi / 6
	uv := NewVec3(math.Sin(theta), -math.Cos(theta), 0)
	n := NewVec3(0, 1, 0)

	refracted := Refract(uv, n, ratio)

	sinOut := refracted.X / refracted.Length()
	if math.Abs(sinOut-ratio*math.Sin(theta)) > 1e-9 {
		t.Errorf("Snell's law violated: sin(out)=%f, expected %f", sinOut, ratio*math.Sin(theta))
	}
	if math.Abs(refracted.Length()-1) > 1e-9 {
		t.Errorf("Expected unit refracted direction, got length %f", refracted.Length())
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	if got := ray.At(1.5); got != NewVec3(1, 2, 0) {
		t.Errorf("Expected (1,2,0), got %v", got)
	}
}
