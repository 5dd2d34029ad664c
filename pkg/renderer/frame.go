package renderer

import "github.com/df07/go-phong-raytracer/pkg/core"

// Frame is a linear RGB pixel buffer, row-major with y = 0 at the top
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color at (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color at (x, y)
func (f *Frame) Set(x, y int, color core.Vec3) {
	f.Pixels[y*f.Width+x] = color
}
