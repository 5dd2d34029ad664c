package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ParallelConfig contains configuration for tiled parallel rendering
type ParallelConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultParallelConfig returns sensible default values
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// ParallelRaytracer splits an image into tiles and renders them on a worker pool
type ParallelRaytracer struct {
	scene         Scene
	width, height int
	config        ParallelConfig
	tiles         []*Tile
	logger        core.Logger
}

// NewParallelRaytracer creates a new parallel raytracer
func NewParallelRaytracer(scene Scene, width, height int, config ParallelConfig, logger core.Logger) *ParallelRaytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultParallelConfig().TileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &ParallelRaytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
		tiles:  NewTileGrid(width, height, config.TileSize),
		logger: logger,
	}
}

// Render traces every tile and returns the assembled frame. If ctx is
// cancelled part way, the partial frame is discarded and ctx.Err() returned.
func (pr *ParallelRaytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	start := time.Now()
	frame := NewFrame(pr.width, pr.height)

	pool := NewWorkerPool(pr.scene, pr.width, pr.height, len(pr.tiles), pr.config.NumWorkers)
	pr.logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		pr.width, pr.height, len(pr.tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for id, tile := range pr.tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: id, Frame: frame})
	}

	var stats RenderStats
	var renderErr error
	for i := 0; i < len(pr.tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.Add(result.Stats)
	}
	pool.Stop()

	if renderErr != nil {
		return nil, RenderStats{}, fmt.Errorf("render failed: %w", renderErr)
	}

	stats.Elapsed = time.Since(start)
	pr.logger.Printf("Render completed in %v (%d rays, %d hits, %.1f%% hit ratio, %d behind camera)\n",
		stats.Elapsed, stats.PrimaryRays, stats.Hits, stats.HitRatio()*100, stats.BehindSkipped)

	return frame, stats, nil
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}
