package geometry

import "fmt"

// Intersection is the outcome of a ray-shape test: either no hit, or a hit
// at a parametric distance along the ray. The zero value is a miss.
type Intersection struct {
	hit      bool
	distance float64
}

// NoHit returns an Intersection describing a miss
func NoHit() Intersection {
	return Intersection{}
}

// Hit returns an Intersection at distance t along the ray.
// t is not required to be non-negative; see Sphere.Intersect.
func Hit(t float64) Intersection {
	return Intersection{hit: true, distance: t}
}

// IsHit reports whether the ray struck the shape
func (i Intersection) IsHit() bool {
	return i.hit
}

// Distance returns the hit distance and true, or 0 and false on a miss
func (i Intersection) Distance() (float64, bool) {
	if !i.hit {
		return 0, false
	}
	return i.distance, true
}

func (i Intersection) String() string {
	if !i.hit {
		return "NoHit"
	}
	return fmt.Sprintf("Hit(%g)", i.distance)
}
