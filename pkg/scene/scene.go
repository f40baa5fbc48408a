package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/integrator"
	"github.com/df07/go-bvh-pathtracer/pkg/log"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// ErrEmptyScene is returned when a scene with no shapes is preprocessed
var ErrEmptyScene = errors.New("scene has no shapes")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	Shapes         []*geometry.Shape     // Objects in the scene
	Background     integrator.Background // Radiance for rays that escape
	BVH            *geometry.BVH         // Acceleration structure for ray-object intersection
}

// Preprocess prepares the scene for rendering by building the BVH.
// bvhSeed drives the split axes; 0 seeds from the clock.
func (s *Scene) Preprocess(bvhSeed int64) error {
	if len(s.Shapes) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyScene, s.Name)
	}

	if bvhSeed == 0 {
		bvhSeed = time.Now().UnixNano()
	}

	start := time.Now()
	s.BVH = geometry.NewBVH(s.Shapes, rand.New(rand.NewSource(bvhSeed)))

	stats := s.BVH.Stats()
	logger.Debugf("BVH for %q: %d shapes, %d nodes, %d leaves, max depth %d, avg depth %.2f (%v)",
		s.Name, stats.TotalShapes, stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.AvgDepth, time.Since(start))

	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// Summary counts shapes by primitive and by material, e.g. "4 sphere, 1 quad; 3 diffuse, 2 glass"
func (s *Scene) Summary() string {
	var shapeCounts [geometry.KindQuad + 1]int
	var materialCounts [material.DiffuseLight + 1]int
	for _, shape := range s.Shapes {
		shapeCounts[shape.Kind()]++
		if mat := shape.Material(); mat != nil {
			materialCounts[mat.Kind]++
		}
	}

	var shapes, materials []string
	for kind, count := range shapeCounts {
		if count > 0 {
			shapes = append(shapes, fmt.Sprintf("%d %s", count, geometry.Kind(kind)))
		}
	}
	for kind, count := range materialCounts {
		if count > 0 {
			materials = append(materials, fmt.Sprintf("%d %s", count, material.Kind(kind)))
		}
	}
	return strings.Join(shapes, ", ") + "; " + strings.Join(materials, ", ")
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() renderer.CameraConfig {
	return s.CameraConfig
}

// GetSamplingConfig implements renderer.Scene
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.SamplingConfig
}

// GetWorld returns the BVH once built, and a linear scan over the shapes before that
func (s *Scene) GetWorld() integrator.World {
	if s.BVH != nil {
		return s.BVH
	}
	return geometry.ShapeList(s.Shapes)
}

// GetBackground implements renderer.Scene
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}

// add appends shapes to the scene
func (s *Scene) add(shapes ...*geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddSphereLight adds a spherical emitter to the scene
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) {
	s.add(geometry.NewSphere(center, radius, material.NewEmissive(emission)))
}

// AddQuadLight adds a rectangular emitter to the scene
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, emission core.Vec3) {
	s.add(geometry.NewQuad(corner, u, v, material.NewEmissive(emission)))
}

// skyBlue is the flat background used by most outdoor scenes
var skyBlue = core.NewVec3(0.7, 0.8, 1.0)

// samplingWith returns the default sampling settings with spp samples per pixel
func samplingWith(spp int) renderer.SamplingConfig {
	config := renderer.DefaultSamplingConfig()
	config.SamplesPerPixel = spp
	return config
}

// defaultCamera returns a square pinhole camera at 400px
func defaultCamera(center, lookAt core.Vec3, vfov float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      center,
		LookAt:      lookAt,
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        vfov,
	}
}
