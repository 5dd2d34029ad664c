package output

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// DefaultGamma is the display gamma applied when converting frames
const DefaultGamma = 2.2

// ToImage converts a linear frame to 8-bit RGBA. Shading output is
// unbounded, so colors are clamped to [0, 1] before gamma correction.
// A gamma of 0 or less skips correction.
func ToImage(frame *renderer.Frame, gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(frame.At(x, y), gamma))
		}
	}

	return img
}

func vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	if gamma > 0 {
		colorVec = colorVec.GammaCorrect(gamma)
	}

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// Downsample reduces a supersampled render to the target size
func Downsample(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return img
	}
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

// SavePNG writes img to path, creating parent directories as needed
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// EncodePNG returns img encoded as PNG
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
