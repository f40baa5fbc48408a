package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// NewEmissive creates a light source with constant emission
func NewEmissive(emission core.Vec3) *Material {
	return NewTexturedEmissive(NewSolidColor(emission))
}

// NewTexturedEmissive creates a light whose output varies over the surface
func NewTexturedEmissive(emission *Texture) *Material {
	return &Material{Kind: DiffuseLight, Emission: emission}
}
