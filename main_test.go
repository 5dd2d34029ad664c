package main

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/df07/go-phong-raytracer/pkg/config"
)

type testLogger struct {
	t     *testing.T
	lines []string
}

func (l *testLogger) Printf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	l.lines = append(l.lines, line)
	l.t.Log(strings.TrimSuffix(line, "\n"))
}

func (l *testLogger) contains(substr string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name           string
		sceneType      string
		width          int
		supersample    int
		expectedWidth  int
		expectedRender int
		expectError    bool
	}{
		{"default scene", "default", 0, 1, 400, 400, false},
		{"default scene resized", "default", 100, 1, 100, 100, false},
		{"supersampled", "default", 100, 3, 100, 300, false},
		{"spheregrid scene", "spheregrid", 0, 2, 800, 1600, false},
		{"unknown scene", "nonexistent", 0, 1, 0, 0, true},
		{"empty scene name", "", 0, 1, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, width, height, err := createScene(tt.sceneType, tt.width, tt.supersample)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, s)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if width != tt.expectedWidth {
				t.Errorf("Expected output width %d, got %d", tt.expectedWidth, width)
			}
			if height <= 0 {
				t.Errorf("Expected positive output height, got %d", height)
			}
			if s.CameraConfig.Width != tt.expectedRender {
				t.Errorf("Expected render width %d, got %d", tt.expectedRender, s.CameraConfig.Width)
			}
		})
	}
}

func TestRun(t *testing.T) {
	cfg := &config.Config{
		OutputDir:   t.TempDir(),
		Scene:       "default",
		Width:       32,
		Supersample: 2,
		TileSize:    16,
		NumWorkers:  2,
		Gamma:       2.2,
	}

	logger := &testLogger{t: t}
	filename, err := run(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	s, _, _, err := createScene(cfg.Scene, cfg.Width, cfg.Supersample)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	bounds := s.Bounds()
	extent := fmt.Sprintf("Scene extent: center %v, size %v", bounds.Center(), bounds.Size())
	if !logger.contains(extent) {
		t.Errorf("Expected %q in log, got %q", extent, logger.lines)
	}
	rays := fmt.Sprintf("(%d primary rays,", s.CameraConfig.Width*s.CameraConfig.Height())
	if !logger.contains(rays) {
		t.Errorf("Expected %q in saved line, got %q", rays, logger.lines)
	}

	img, err := imaging.Open(filename)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", filename, err)
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("Expected width 32, got %d", img.Bounds().Dx())
	}
}

func TestRun_Cancelled(t *testing.T) {
	cfg := &config.Config{
		OutputDir:   t.TempDir(),
		Scene:       "default",
		Width:       32,
		Supersample: 1,
		TileSize:    16,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := run(ctx, cfg, &testLogger{t: t}); err == nil {
		t.Error("Expected error for cancelled render")
	}
}
