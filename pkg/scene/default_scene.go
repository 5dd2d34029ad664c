package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lighting"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with three spheres under one light
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0.5, 6),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	s := newScene(defaultCameraConfig, cameraOverrides)
	s.BackgroundColor = core.NewVec3(0.02, 0.02, 0.05)
	s.Light = lighting.NewPointLight(core.NewVec3(0, 5, 3), core.NewVec3(1, 1, 1))

	// Large center sphere
	s.AddSphere(core.NewVec3(0, 0, 0), 1.0, material.NewPhong(
		core.NewVec3(0.1, 0.02, 0.02),
		core.NewVec3(0.7, 0.15, 0.1),
		core.NewVec3(1, 1, 1),
		32,
	))

	// Smaller spheres either side
	s.AddSphere(core.NewVec3(2.0, -0.4, -1.0), 0.6, material.NewPhong(
		core.NewVec3(0.02, 0.1, 0.02),
		core.NewVec3(0.1, 0.6, 0.2),
		core.NewVec3(0.5, 0.5, 0.5),
		16,
	))
	s.AddSphere(core.NewVec3(-1.8, -0.6, 0.5), 0.4, material.NewPhong(
		core.NewVec3(0.02, 0.02, 0.1),
		core.NewVec3(0.1, 0.2, 0.8),
		core.NewVec3(0.8, 0.8, 0.8),
		64,
	))

	return s
}
