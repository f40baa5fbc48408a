package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// NewLambertian creates a diffuse material with a solid color
func NewLambertian(albedo core.Vec3) *Material {
	return NewTexturedLambertian(NewSolidColor(albedo))
}

// NewTexturedLambertian creates a diffuse material whose albedo comes from a texture
func NewTexturedLambertian(albedo *Texture) *Material {
	return &Material{Kind: Diffuse, Albedo: albedo}
}

// Normal plus a unit sphere sample gives a cosine-distributed direction,
// so the attenuation is the plain albedo.
func (m *Material) scatterLambertian(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Catch degenerate scatter direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: m.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
