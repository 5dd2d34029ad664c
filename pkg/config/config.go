package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-phong-raytracer/pkg/output"
)

// Config holds the settings for a render run. Values come from the
// environment (optionally seeded from a .env file) and may be overridden
// by command line flags.
type Config struct {
	RootDir     string
	OutputDir   string
	Scene       string
	Width       int // Final image width; 0 uses the scene default
	Supersample int // Render at this multiple of Width, then downsample
	TileSize    int
	NumWorkers  int // 0 = use CPU count
	Gamma       float64
	Upload      bool
	S3          output.UploadConfig
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// Load reads RAYTRACER_ROOT_DIR/.env if present, then the environment.
// Variables already set in the environment take precedence over the file.
func Load() (*Config, error) {
	rootDir := getEnv("RAYTRACER_ROOT_DIR", ".")
	envFile := filepath.Join(rootDir, ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	workers, err := getEnvInt("RAYTRACER_WORKERS", 0)
	if err != nil {
		return nil, err
	}
	supersample, err := getEnvInt("RAYTRACER_SUPERSAMPLE", 1)
	if err != nil {
		return nil, err
	}

	return &Config{
		RootDir:     rootDir,
		OutputDir:   getEnv("RAYTRACER_OUTPUT_DIR", "output"),
		Scene:       getEnv("RAYTRACER_SCENE", "default"),
		Supersample: supersample,
		TileSize:    64,
		NumWorkers:  workers,
		Gamma:       output.DefaultGamma,
		S3: output.UploadConfig{
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    getEnv("S3_REGION", "us-east-1"),
			Bucket:    os.Getenv("S3_BUCKET"),
			Prefix:    os.Getenv("S3_PREFIX"),
		},
	}, nil
}

// Validate rejects settings the renderer cannot use
func (c *Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	if c.Supersample < 1 {
		return fmt.Errorf("supersample must be at least 1, got %d", c.Supersample)
	}
	if c.TileSize < 1 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.NumWorkers)
	}
	if c.Upload && c.S3.Bucket == "" {
		return errors.New("upload requested but S3_BUCKET is not set")
	}
	return nil
}
