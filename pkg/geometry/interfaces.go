package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays and lit by the local
// shading model
type Shape interface {
	Intersect(ray core.Ray) Intersection
	NormalAt(point core.Vec3) core.Vec3
	SurfaceMaterial() material.Phong
	// AttenuationRadius is the length scale for light falloff at the surface
	AttenuationRadius() float64
	BoundingBox() core.AABB
}
