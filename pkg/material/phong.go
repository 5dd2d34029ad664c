package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Phong holds the surface coefficients of the Phong reflection model.
// Only Diffuse feeds the local lighting term today; Ambient, Specular and
// Alpha are carried so scenes can describe complete surfaces.
type Phong struct {
	Ambient  core.Vec3 // Ambient color
	Diffuse  core.Vec3 // Diffuse color
	Specular core.Vec3 // Specular color
	Alpha    float64   // Shininess exponent
}

// NewPhong creates a new Phong material
func NewPhong(ambient, diffuse, specular core.Vec3, alpha float64) Phong {
	return Phong{
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
		Alpha:    alpha,
	}
}

// NewDiffuse creates a material with only a diffuse color set
func NewDiffuse(diffuse core.Vec3) Phong {
	return Phong{Diffuse: diffuse}
}
