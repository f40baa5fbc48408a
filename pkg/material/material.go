package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Kind selects the scatter/emit law of a Material
type Kind uint8

const (
	Diffuse Kind = iota
	Metal
	Glass
	DiffuseLight
)

func (k Kind) String() string {
	switch k {
	case Diffuse:
		return "diffuse"
	case Metal:
		return "metal"
	case Glass:
		return "glass"
	case DiffuseLight:
		return "diffuse-light"
	default:
		return "unknown"
	}
}

// Material is a closed set of surface behaviors. Each kind reads only its
// own parameters: Albedo for Diffuse and Metal, Fuzzness for Metal,
// RefractiveIndex for Glass and Emission for DiffuseLight.
type Material struct {
	Kind            Kind
	Albedo          *Texture
	Fuzzness        float64
	RefractiveIndex float64
	Emission        *Texture
}

// Scatter returns the outgoing ray and attenuation, or false when the ray is
// absorbed or the surface only emits.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case Diffuse:
		return m.scatterLambertian(hit, sampler)
	case Metal:
		return m.scatterMetal(rayIn, hit, sampler)
	case Glass:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}

// Emit returns light emitted at the surface point; black for non-emitters
func (m *Material) Emit(uv core.Vec2, point core.Vec3) core.Vec3 {
	if m.Kind != DiffuseLight || m.Emission == nil {
		return core.Vec3{}
	}
	return m.Emission.Evaluate(uv, point)
}
