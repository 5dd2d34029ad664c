package lighting

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// DiffuseCoefficient is the Kd of the diffuse term. Shade does not apply it:
// the returned color is unscaled by Kd.
const DiffuseCoefficient = 0.5

// Shade computes the local diffuse contribution of light at a surface point.
//
// The light color and the surface's diffuse color are summed, then scaled by
// the unnormalized cosine term dot(L, N) and a falloff of
// 1 / (d/radius + 1)^2, where d is the distance to the light and radius is
// the shape's attenuation radius. The result is unclamped linear RGB and is
// never negative for non-negative colors.
//
// point must not be the shape's center; in that case the normal is zero and
// so is the result.
func Shade(point core.Vec3, shape geometry.Shape, light PointLight) core.Vec3 {
	toLight := light.Position.Subtract(point)
	normal := shape.NormalAt(point)

	diffuseTerm := math.Max(toLight.Dot(normal), 0.0)

	d := toLight.Length()
	falloff := d/shape.AttenuationRadius() + 1
	attenuation := 1 / (falloff * falloff)

	diffuse := shape.SurfaceMaterial().Diffuse
	return light.Color.Add(diffuse).Multiply(diffuseTerm * attenuation)
}
