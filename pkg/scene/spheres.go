package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/integrator"
	"github.com/df07/go-bvh-pathtracer/pkg/loaders"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// defaultLayoutSeed keeps random layouts stable when no seed is given
const defaultLayoutSeed = 42

func buildThreeSpheres(Options) (*Scene, error) {
	s := &Scene{
		CameraConfig:   defaultCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 90),
		SamplingConfig: samplingWith(100),
		Background:     integrator.SkyBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
	}

	glass := material.NewDielectric(1.5)
	s.add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// Negative radius flips the normals: a hollow bubble inside the glass ball
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1)),
	)

	return s, nil
}

func buildManySpheres(opts Options) (*Scene, error) {
	camera := defaultCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20)
	camera.AspectRatio = 16.0 / 9.0
	camera.DefocusAngle = 0.6
	camera.FocusDistance = 10

	s := &Scene{
		CameraConfig:   camera,
		SamplingConfig: samplingWith(100),
		Background:     integrator.SolidBackground(skyBlue),
	}

	ground := material.NewTexturedLambertian(
		material.NewCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9), 0.32))
	glass := material.NewDielectric(1.5)

	s.add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	seed := opts.Seed
	if seed == 0 {
		seed = defaultLayoutSeed
	}
	random := rand.New(rand.NewSource(seed))
	randomColor := func() core.Vec3 {
		return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
	}
	between := func(lo, hi float64) float64 {
		return lo + (hi-lo)*random.Float64()
	}

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat *material.Material
			switch {
			case chooseMaterial < 0.8:
				mat = material.NewLambertian(randomColor().MultiplyVec(randomColor()))
			case chooseMaterial < 0.95:
				albedo := core.NewVec3(between(0.5, 1), between(0.5, 1), between(0.5, 1))
				mat = material.NewMetal(albedo, between(0, 0.5))
			default:
				mat = glass
			}
			s.add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	return s, nil
}

func buildCheckeredSpheres(Options) (*Scene, error) {
	s := &Scene{
		CameraConfig:   defaultCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20),
		SamplingConfig: samplingWith(100),
		Background:     integrator.SolidBackground(skyBlue),
	}

	checker := material.NewTexturedLambertian(
		material.NewCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9), 0.4))
	s.add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return s, nil
}

func buildEarth(opts Options) (*Scene, error) {
	var image *material.ImageData
	if opts.TexturePath == "" {
		logger.Notice("No texture given for the earth scene, using a generated checkerboard")
		image = material.NewCheckerboardImage(512, 256, 32, core.NewVec3(0.1, 0.3, 0.7), core.NewVec3(0.2, 0.6, 0.2))
	} else {
		var err error
		image, err = loaders.LoadImage(opts.TexturePath)
		if err != nil {
			return nil, fmt.Errorf("loading earth texture: %w", err)
		}
		logger.Infof("Loaded earth texture %s (%dx%d)", opts.TexturePath, image.Width, image.Height)
	}

	s := &Scene{
		CameraConfig:   defaultCamera(core.NewVec3(0, 0, 12), core.NewVec3(0, 0, 0), 20),
		SamplingConfig: samplingWith(100),
		Background:     integrator.SolidBackground(skyBlue),
	}
	s.add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(material.NewImageTexture(image))))

	return s, nil
}

func buildPerlinSpheres(opts Options) (*Scene, error) {
	s := &Scene{
		CameraConfig:   defaultCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20),
		SamplingConfig: samplingWith(100),
		Background:     integrator.SolidBackground(skyBlue),
	}

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewNoise(opts.Seed), 5))
	s.add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return s, nil
}
