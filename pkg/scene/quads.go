package scene

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/integrator"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

func buildQuads(Options) (*Scene, error) {
	s := &Scene{
		CameraConfig:   defaultCamera(core.NewVec3(0, 0, 9), core.NewVec3(0, 0, 0), 80),
		SamplingConfig: samplingWith(100),
		Background:     integrator.SolidBackground(skyBlue),
	}

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	s.add(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	return s, nil
}

func buildSimpleLight(opts Options) (*Scene, error) {
	s := &Scene{
		CameraConfig:   defaultCamera(core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0), 20),
		SamplingConfig: samplingWith(200),
		Background:     integrator.SolidBackground(core.Vec3{}),
	}

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewNoise(opts.Seed), 5))
	s.add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	lightColor := core.NewVec3(4, 4, 4)
	s.AddSphereLight(core.NewVec3(0, 7, 0), 2, lightColor)
	s.AddQuadLight(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), lightColor)

	return s, nil
}
