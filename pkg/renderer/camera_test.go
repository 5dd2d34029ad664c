package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func newTestCamera() *Camera {
	return NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 2.0,
		VFov:        90.0,
	})
}

func TestCameraGetRay(t *testing.T) {
	camera := newTestCamera()

	// vfov 90 gives a half height of 1 at unit distance; aspect 2 doubles the width
	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"top edge", 0.5, 0.0, core.NewVec3(0, 1, -1).Normalize()},
		{"bottom edge", 0.5, 1.0, core.NewVec3(0, -1, -1).Normalize()},
		{"left edge", 0.0, 0.5, core.NewVec3(-2, 0, -1).Normalize()},
		{"right edge", 1.0, 0.5, core.NewVec3(2, 0, -1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t)

			if ray.Origin != camera.Config().Center {
				t.Errorf("Expected origin %v, got %v", camera.Config().Center, ray.Origin)
			}
			if ray.Direction.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
			if math.Abs(ray.Direction.Length()-1) > 1e-9 {
				t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
			}
		})
	}
}

func TestCameraGetRay_Rotated(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(5, 0, 0),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       100,
		AspectRatio: 1.0,
		VFov:        60.0,
	})

	ray := camera.GetRay(0.5, 0.5)
	expected := core.NewVec3(-1, 0, 0)
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray %v, got %v", expected, ray.Direction)
	}

	// Looking down -x, screen right is -z
	right := camera.GetRay(1.0, 0.5)
	if right.Direction.Z >= 0 {
		t.Errorf("Expected right edge ray to lean towards -z, got %v", right.Direction)
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40,
	}

	merged := MergeCameraConfig(base, CameraConfig{Width: 800, VFov: 60})

	if merged.Width != 800 || merged.VFov != 60 {
		t.Errorf("Expected overrides to apply, got %+v", merged)
	}
	if merged.Center != base.Center || merged.AspectRatio != base.AspectRatio {
		t.Errorf("Expected untouched fields to keep base values, got %+v", merged)
	}
}

func TestCameraConfigHeight(t *testing.T) {
	tests := []struct {
		name     string
		config   CameraConfig
		expected int
	}{
		{"wide", CameraConfig{Width: 400, AspectRatio: 2}, 200},
		{"square", CameraConfig{Width: 300, AspectRatio: 1}, 300},
		{"unset aspect", CameraConfig{Width: 120}, 120},
		{"never zero", CameraConfig{Width: 1, AspectRatio: 10}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.Height(); got != tt.expected {
				t.Errorf("Expected height %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCameraGetRay_AspectFollowsPixelGrid(t *testing.T) {
	// 100 / 3 rounds down to 33 rows, so the true aspect is 100/33, not 3
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       100,
		AspectRatio: 3.0,
		VFov:        90.0,
	})

	ray := camera.GetRay(1.0, 0.5)
	expected := core.NewVec3(100.0/33.0, 0, -1).Normalize()
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected right edge direction %v, got %v", expected, ray.Direction)
	}

	// Pixels are square: one pixel step spans the same angle both ways
	right := camera.GetRay(0.5+1.0/100, 0.5).Direction
	down := camera.GetRay(0.5, 0.5+1.0/33).Direction
	if math.Abs(right.X/-right.Z-(-down.Y/-down.Z)) > 1e-9 {
		t.Errorf("Expected square pixels, got steps %f and %f", right.X/-right.Z, -down.Y/-down.Z)
	}
}
