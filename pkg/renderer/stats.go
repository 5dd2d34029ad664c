package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int           // Number of pixels rendered
	PrimaryRays   int           // Number of camera rays traced
	Hits          int           // Rays that struck a shape in front of the camera
	BehindSkipped int           // Intersections discarded for a negative distance
	Elapsed       time.Duration // Wall time for the whole render
}

// Add accumulates another set of stats into s. Elapsed is left untouched.
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.PrimaryRays += other.PrimaryRays
	s.Hits += other.Hits
	s.BehindSkipped += other.BehindSkipped
}

// HitRatio returns the fraction of primary rays that hit something
func (s RenderStats) HitRatio() float64 {
	if s.PrimaryRays == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.PrimaryRays)
}
