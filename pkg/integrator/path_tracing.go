package integrator

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Hits closer than this are ignored to avoid self-intersection from rounding
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional random-walk path tracing.
// Paths end when a ray escapes, a material stops scattering, or MaxDepth bounces
// have been traced. No light sampling or Russian roulette is applied.
type PathTracingIntegrator struct {
	MaxDepth   int
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// A nil background is treated as black.
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	if background == nil {
		background = SolidBackground(core.Vec3{})
	}
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor computes the color for a single ray with the configured depth budget
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, world, pt.MaxDepth, sampler)
}

// Trace estimates radiance along ray allowing at most depthLeft intersections.
//
// The estimator is the recursive one
//
//	trace(r, 0) = 0
//	trace(r, d) = background(r)                          on miss
//	            = emit                                   if the material does not scatter
//	            = attenuation · trace(scattered, d-1)    otherwise
//
// unrolled into a loop that carries the product of attenuations so far.
func (pt *PathTracingIntegrator) Trace(ray core.Ray, world World, depthLeft int, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	rayT := core.NewInterval(shadowAcneEpsilon, math.Inf(1))

	for ; depthLeft > 0; depthLeft-- {
		hit, isHit := world.Hit(ray, rayT)
		if !isHit {
			return throughput.MultiplyVec(pt.background(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return throughput.MultiplyVec(hit.Material.Emit(hit.UV, hit.Point))
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Out of bounces
	return core.Vec3{}
}

func (pt *PathTracingIntegrator) background(ray core.Ray) core.Vec3 {
	if pt.Background == nil {
		return core.Vec3{}
	}
	return pt.Background(ray)
}
