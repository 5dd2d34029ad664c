package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lighting"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera          *renderer.Camera
	CameraConfig    renderer.CameraConfig
	Shapes          []geometry.Shape    // Objects in the scene
	Light           lighting.PointLight // The single point light
	BackgroundColor core.Vec3           // Color for rays that hit nothing
}

// newScene builds a scene with the camera config merged with any override
func newScene(defaults renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) *Scene {
	cameraConfig := defaults
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaults, cameraOverrides[0])
	}

	return &Scene{
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Shapes:       make([]geometry.Shape, 0),
	}
}

// AddSphere adds a sphere with the given material and returns it
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Phong) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.Shapes = append(s.Shapes, sphere)
	return sphere
}

// Bounds returns the box enclosing every shape, or a zero box for an empty scene
func (s *Scene) Bounds() core.AABB {
	if len(s.Shapes) == 0 {
		return core.AABB{}
	}
	bounds := s.Shapes[0].BoundingBox()
	for _, shape := range s.Shapes[1:] {
		bounds = bounds.Union(shape.BoundingBox())
	}
	return bounds
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetShapes returns all shapes in the scene
func (s *Scene) GetShapes() []geometry.Shape {
	return s.Shapes
}

// GetLight returns the scene light
func (s *Scene) GetLight() lighting.PointLight {
	return s.Light
}

// GetBackgroundColor returns the color of empty space
func (s *Scene) GetBackgroundColor() core.Vec3 {
	return s.BackgroundColor
}
