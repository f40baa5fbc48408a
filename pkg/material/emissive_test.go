package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

func TestEmissive_Scatter(t *testing.T) {
	tests := []struct {
		name     string
		emission core.Vec3
	}{
		{"Red emission", core.NewVec3(1.0, 0.0, 0.0)},
		{"White emission", core.NewVec3(1.0, 1.0, 1.0)},
		{"Zero emission", core.NewVec3(0.0, 0.0, 0.0)},
		{"High intensity emission", core.NewVec3(10.0, 5.0, 2.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emissive := NewEmissive(tt.emission)

			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
			hit := HitRecord{
				Point:  core.NewVec3(1, 0, 0),
				Normal: core.NewVec3(-1, 0, 0),
				T:      1.0,
			}
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

			if _, scattered := emissive.Scatter(ray, hit, sampler); scattered {
				t.Error("Emissive material should not scatter rays")
			}
			if got := emissive.Emit(core.Vec2{}, hit.Point); got != tt.emission {
				t.Errorf("Expected emission %v, got %v", tt.emission, got)
			}
		})
	}
}

func TestEmit_NonEmittersAreBlack(t *testing.T) {
	materials := []*Material{
		NewLambertian(core.NewVec3(1, 1, 1)),
		NewMetal(core.NewVec3(1, 1, 1), 0.2),
		NewDielectric(1.5),
	}

	for _, m := range materials {
		if got := m.Emit(core.NewVec2(0.5, 0.5), core.NewVec3(1, 2, 3)); got != (core.Vec3{}) {
			t.Errorf("%v material emitted %v, want black", m.Kind, got)
		}
	}
}

func TestEmissive_TexturedEmission(t *testing.T) {
	bright := core.NewVec3(4, 4, 4)
	dim := core.NewVec3(1, 1, 1)
	light := NewTexturedEmissive(NewCheckerTexture(bright, dim, 1))

	if got := light.Emit(core.Vec2{}, core.NewVec3(0.5, 0.5, 0.5)); got != bright {
		t.Errorf("Expected %v, got %v", bright, got)
	}
	if got := light.Emit(core.Vec2{}, core.NewVec3(0.5, 1.5, 0.5)); got != dim {
		t.Errorf("Expected %v, got %v", dim, got)
	}
}
