package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// TextureKind selects the color law of a Texture
type TextureKind uint8

const (
	TextureSolid TextureKind = iota
	TextureChecker
	TextureNoise
	TextureImage
)

// Texture provides spatially-varying colors for materials.
// Only the fields of the selected Kind are meaningful. Noise and Image
// data are shared by pointer and never modified after construction.
type Texture struct {
	Kind TextureKind

	Color core.Vec3 // solid

	Even     core.Vec3 // checker
	Odd      core.Vec3
	InvScale float64

	Noise *Noise // noise
	Scale float64

	Image *ImageData // image
}

// NewSolidColor creates a texture of uniform color
func NewSolidColor(color core.Vec3) *Texture {
	return &Texture{Kind: TextureSolid, Color: color}
}

// NewCheckerTexture creates a 3D checkerboard with cells of the given size
func NewCheckerTexture(even, odd core.Vec3, scale float64) *Texture {
	return &Texture{Kind: TextureChecker, Even: even, Odd: odd, InvScale: 1.0 / scale}
}

// NewNoiseTexture creates a grayscale texture from coherent noise sampled at point*scale
func NewNoiseTexture(noise *Noise, scale float64) *Texture {
	return &Texture{Kind: TextureNoise, Noise: noise, Scale: scale}
}

// NewImageTexture creates a texture that looks colors up in a shared image
func NewImageTexture(image *ImageData) *Texture {
	return &Texture{Kind: TextureImage, Image: image}
}

// Evaluate returns color at given UV coordinates and 3D point
// UV is used for image textures, point for procedural textures
func (t *Texture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	switch t.Kind {
	case TextureChecker:
		return t.checker(point)
	case TextureNoise:
		return t.noise(point)
	case TextureImage:
		return t.Image.At(uv)
	default:
		return t.Color
	}
}

func (t *Texture) checker(point core.Vec3) core.Vec3 {
	cell := point.Multiply(t.InvScale).Floor()
	sum := int(cell.X) + int(cell.Y) + int(cell.Z)
	if sum%2 == 0 {
		return t.Even
	}
	return t.Odd
}

func (t *Texture) noise(point core.Vec3) core.Vec3 {
	strength := (t.Noise.At(point.Multiply(t.Scale)) + 1) / 2
	strength = max(0, min(1, strength))
	return core.NewVec3(strength, strength, strength)
}
