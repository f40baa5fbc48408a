package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomUnitVector(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample must have z=0, got %v", p)
		}
		if p.X*p.X+p.Y*p.Y > 1+1e-9 {
			t.Fatalf("Point %v lies outside the unit disk", p)
		}
	}
}

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewRandomSampler(rand.New(rand.NewSource(7)))
	b := NewRandomSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		if a.Get3D() != b.Get3D() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}
