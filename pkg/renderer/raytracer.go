package renderer

import (
	"image"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lighting"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetShapes() []geometry.Shape
	GetLight() lighting.PointLight
	GetBackgroundColor() core.Vec3
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	width  int
	height int
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
	}
}

// hitWorld returns the nearest shape in front of the ray origin.
// Sphere intersections can report negative distances; those are counted in
// skipped and never shaded.
func (rt *Raytracer) hitWorld(ray core.Ray) (shape geometry.Shape, t float64, skipped int) {
	for _, candidate := range rt.scene.GetShapes() {
		d, ok := candidate.Intersect(ray).Distance()
		if !ok {
			continue
		}
		if d < 0 {
			skipped++
			continue
		}
		if shape == nil || d < t {
			shape = candidate
			t = d
		}
	}
	return shape, t, skipped
}

// TraceRay returns the color seen along a ray, recording the outcome in stats
func (rt *Raytracer) TraceRay(ray core.Ray, stats *RenderStats) core.Vec3 {
	shape, t, skipped := rt.hitWorld(ray)

	stats.PrimaryRays++
	stats.BehindSkipped += skipped

	if shape == nil {
		return rt.scene.GetBackgroundColor()
	}

	stats.Hits++
	point := ray.At(t)
	return lighting.Shade(point, shape, rt.scene.GetLight())
}

// RenderBounds renders the pixels within bounds into frame
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, frame *Frame) RenderStats {
	camera := rt.scene.GetCamera()
	var stats RenderStats

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			s := (float64(i) + 0.5) / float64(rt.width)
			t := (float64(j) + 0.5) / float64(rt.height)

			color := rt.TraceRay(camera.GetRay(s, t), &stats)
			frame.Set(i, j, color)
			stats.TotalPixels++
		}
	}

	return stats
}

// RenderFrame renders the whole image on the calling goroutine
func (rt *Raytracer) RenderFrame() (*Frame, RenderStats) {
	frame := NewFrame(rt.width, rt.height)
	stats := rt.RenderBounds(image.Rect(0, 0, rt.width, rt.height), frame)
	return frame, stats
}
