package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/output"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Parse command line flags; environment values are the defaults
	flag.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene name (see -list)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Output width in pixels (0 = scene default)")
	flag.IntVar(&cfg.Supersample, "supersample", cfg.Supersample, "Render at N times the width, then downsample")
	flag.IntVar(&cfg.NumWorkers, "workers", cfg.NumWorkers, "Number of parallel workers (0 = CPU count)")
	flag.IntVar(&cfg.TileSize, "tile", cfg.TileSize, "Tile size in pixels")
	flag.Float64Var(&cfg.Gamma, "gamma", cfg.Gamma, "Display gamma (0 = linear output)")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output directory")
	flag.BoolVar(&cfg.Upload, "upload", cfg.Upload, "Upload the render to S3_BUCKET")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.png")
		return
	}

	if *list {
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-12s %s\n", info.Name, info.Description)
		}
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := run(ctx, cfg, renderer.NewDefaultLogger()); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// createScene builds the named scene sized for rendering at width*supersample
// and returns it with the final output dimensions
func createScene(sceneType string, width, supersample int) (*scene.Scene, int, int, error) {
	base, err := scene.Lookup(sceneType)
	if err != nil {
		return nil, 0, 0, err
	}

	final := base.CameraConfig
	if width > 0 {
		final.Width = width
	}

	renderScene, err := scene.Lookup(sceneType, renderer.CameraConfig{Width: final.Width * supersample})
	if err != nil {
		return nil, 0, 0, err
	}

	return renderScene, final.Width, final.Height(), nil
}

// run renders the configured scene, saves it and optionally uploads it.
// It returns the path of the saved image.
func run(ctx context.Context, cfg *config.Config, logger core.Logger) (string, error) {
	s, width, height, err := createScene(cfg.Scene, cfg.Width, cfg.Supersample)
	if err != nil {
		return "", err
	}

	renderWidth := s.CameraConfig.Width
	renderHeight := s.CameraConfig.Height()
	logger.Printf("Using %s scene (%d shapes)...\n", cfg.Scene, len(s.Shapes))
	if len(s.Shapes) > 0 {
		bounds := s.Bounds()
		logger.Printf("Scene extent: center %v, size %v\n", bounds.Center(), bounds.Size())
	}

	pr := renderer.NewParallelRaytracer(s, renderWidth, renderHeight, renderer.ParallelConfig{
		TileSize:   cfg.TileSize,
		NumWorkers: cfg.NumWorkers,
	}, logger)

	frame, stats, err := pr.Render(ctx)
	if err != nil {
		return "", err
	}

	img := output.Downsample(output.ToImage(frame, cfg.Gamma), width, height)

	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("render_%s.png", timestamp)
	filename := filepath.Join(cfg.OutputDir, cfg.Scene, name)

	if err := output.SavePNG(filename, img); err != nil {
		return "", err
	}
	logger.Printf("Render saved as %s (%d primary rays, %.1f%% hit)\n",
		filename, stats.PrimaryRays, stats.HitRatio()*100)

	if cfg.Upload {
		uploader, err := output.NewUploader(cfg.S3, logger)
		if err != nil {
			return filename, err
		}
		data, err := output.EncodePNG(img)
		if err != nil {
			return filename, err
		}
		if _, err := uploader.Upload(ctx, filepath.ToSlash(filepath.Join(cfg.Scene, name)), data); err != nil {
			return filename, err
		}
	}

	return filename, nil
}
