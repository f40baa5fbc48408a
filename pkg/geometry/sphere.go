package geometry

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Sphere is defined by a center and radius. A negative radius keeps the same
// surface but turns the normals inward, which models a hollow glass shell.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere shape
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Shape {
	r := core.NewVec3(radius, radius, radius)
	return &Shape{
		kind:     KindSphere,
		sphere:   Sphere{Center: center, Radius: radius},
		material: mat,
		bbox:     core.NewAABB(center.Subtract(r), center.Add(r)),
	}
}

func (s *Sphere) hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !rayT.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Contains(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:     root,
		Point: ray.At(root),
	}

	outwardNormal := hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = sphereUV(outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis starting at -X, v runs from the south pole (0) to the north pole (1).
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
