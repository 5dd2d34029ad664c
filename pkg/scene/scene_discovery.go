package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	build       func(...renderer.CameraConfig) *Scene
}

var builtinScenes = []SceneInfo{
	{
		Name:        "default",
		Description: "Three spheres under a single point light",
		build:       NewDefaultScene,
	},
	{
		Name:        "spheregrid",
		Description: "Grid of spheres with OKLCH color variation",
		build:       NewSphereGridScene,
	},
}

// ListScenes returns the built-in scenes in display order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	return scenes
}

// Lookup builds the named scene, applying any camera override
func Lookup(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.Name == name {
			return info.build(cameraOverrides...), nil
		}
	}
	return nil, fmt.Errorf("unknown scene: %q", name)
}
