package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64 // must be positive
	Material material.Phong
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Phong) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// SetCenter moves the sphere
func (s *Sphere) SetCenter(center core.Vec3) {
	s.Center = center
}

// SetRadius resizes the sphere
func (s *Sphere) SetRadius(radius float64) {
	s.Radius = radius
}

// Intersect solves |o + t*d - c|^2 = r^2 for t, assuming a unit direction
// (a = 1). The root selection is deliberately loose:
//   - a tangent ray reports Hit(-b/2) even when that is negative
//   - a sphere entirely behind the origin reports Hit with the nearer
//     negative root rather than NoHit
//
// Callers that only want surfaces in front of the ray must check the sign.
func (s *Sphere) Intersect(ray core.Ray) Intersection {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic coefficients: t² + bt + c = 0
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*c

	if discriminant < 0 {
		return NoHit()
	}
	if discriminant == 0 {
		return Hit(-b / 2)
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b + sqrtD) / 2 // far root
	t2 := (-b - sqrtD) / 2 // near root

	if t1 < 0 {
		return Hit(t2)
	}
	if t2 < 0 {
		return Hit(t1)
	}
	return Hit(math.Min(t1, t2))
}

// NormalAt returns the outward unit normal at a point on the surface.
// The point must not coincide with the center.
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// SurfaceMaterial returns the sphere's material
func (s *Sphere) SurfaceMaterial() material.Phong {
	return s.Material
}

// AttenuationRadius returns the sphere radius, which scales light falloff
func (s *Sphere) AttenuationRadius() float64 {
	return s.Radius
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
