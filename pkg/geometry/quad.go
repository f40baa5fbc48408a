package geometry

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner core.Vec3 // One corner of the quad
	U      core.Vec3 // First edge vector
	V      core.Vec3 // Second edge vector
	Normal core.Vec3 // Unit normal (U × V normalized)
	D      float64   // Plane equation constant: Normal · p = D
	W      core.Vec3 // n / (n·n) for decoding planar coordinates, n = U × V
}

// NewQuad creates a new quad shape from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat *material.Material) *Shape {
	n := u.Cross(v)
	normal := n.Normalize()

	// Both diagonals are needed for skewed quads
	bbox := core.CombineAABB(
		core.NewAABB(corner, corner.Add(u).Add(v)),
		core.NewAABB(corner.Add(u), corner.Add(v)),
	).Pad()

	return &Shape{
		kind: KindQuad,
		quad: Quad{
			Corner: corner,
			U:      u,
			V:      v,
			Normal: normal,
			D:      normal.Dot(corner),
			W:      n.Multiply(1.0 / n.Dot(n)),
		},
		material: mat,
		bbox:     bbox,
	}
}

func (q *Quad) hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	hitPoint := ray.At(t)
	alpha, beta := q.planarCoordinates(hitPoint)

	// Outside the parallelogram but on its supporting plane
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:     t,
		Point: hitPoint,
		UV:    core.NewVec2(alpha, beta),
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// planarCoordinates decomposes a point on the plane as Corner + alpha·U + beta·V
func (q *Quad) planarCoordinates(p core.Vec3) (alpha, beta float64) {
	planarHitVector := p.Subtract(q.Corner)
	alpha = q.W.Dot(planarHitVector.Cross(q.V))
	beta = q.W.Dot(q.U.Cross(planarHitVector))
	return alpha, beta
}
