package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center      core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera is looking at
	Up          core.Vec3 // Up direction (usually (0,1,0))
	Width       int       // Image width in pixels
	AspectRatio float64   // Width / height
	VFov        float64   // Vertical field of view in degrees
}

// Height returns the image height implied by Width and AspectRatio
func (c CameraConfig) Height() int {
	if c.AspectRatio <= 0 {
		return c.Width
	}
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// MergeCameraConfig returns base with any non-zero fields of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}

	return result
}

// Camera generates primary rays for rendering
type Camera struct {
	config        CameraConfig
	origin        core.Vec3
	cameraToWorld mgl64.Mat4 // inverse of the look-at view matrix
	halfHeight    float64    // half the viewport height at unit focal distance
	halfWidth     float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	eye := toMgl(config.Center)
	view := mgl64.LookAtV(eye, toMgl(config.LookAt), toMgl(config.Up))

	halfHeight := math.Tan(mgl64.DegToRad(config.VFov) / 2)
	// Match the rounded pixel grid so pixels stay square
	aspect := config.AspectRatio
	if config.Width > 0 {
		aspect = float64(config.Width) / float64(config.Height())
	}
	if aspect <= 0 {
		aspect = 1
	}

	return &Camera{
		config:        config,
		origin:        config.Center,
		cameraToWorld: view.Inv(),
		halfHeight:    halfHeight,
		halfWidth:     aspect * halfHeight,
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// s runs left to right and t runs top to bottom. The direction is unit length.
func (c *Camera) GetRay(s, t float64) core.Ray {
	// Camera space: x right, y up, looking down -z
	local := mgl64.Vec4{
		(2*s - 1) * c.halfWidth,
		(1 - 2*t) * c.halfHeight,
		-1,
		0,
	}
	world := c.cameraToWorld.Mul4x1(local).Vec3()

	return core.NewRay(c.origin, fromMgl(world).Normalize())
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
