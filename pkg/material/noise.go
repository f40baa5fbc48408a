package material

import (
	"github.com/aquilax/go-perlin"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Fractal summing parameters: each octave halves the amplitude and doubles the frequency
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 7
)

// Noise is a seeded 3D Perlin turbulence source. It is read-only after
// construction and safe for concurrent use.
type Noise struct {
	perlin *perlin.Perlin
}

// NewNoise creates a noise source with a reproducible permutation table
func NewNoise(seed int64) *Noise {
	return &Noise{perlin: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)}
}

// At evaluates the noise at a point. The result is roughly in [-1, 1].
func (n *Noise) At(point core.Vec3) float64 {
	return n.perlin.Noise3D(point.X, point.Y, point.Z)
}
