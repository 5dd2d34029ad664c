package lighting

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is an infinitesimal light source at a fixed position
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3) PointLight {
	return PointLight{Position: position, Color: color}
}
