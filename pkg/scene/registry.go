package scene

import (
	"errors"
	"fmt"
)

// ErrUnknownScene is returned by Lookup for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// Options tune how built-in scenes are constructed
type Options struct {
	TexturePath string // Image for the earth scene; empty uses a generated checkerboard
	Seed        int64  // Layout seed for randomly generated scenes
}

// Info describes a registered scene
type Info struct {
	Name        string
	Description string
	build       func(opts Options) (*Scene, error)
}

var registry = []Info{
	{"three-spheres", "Diffuse, hollow glass and fuzzed metal spheres on a ground sphere", buildThreeSpheres},
	{"many-spheres", "Hundreds of small random spheres around three large ones", buildManySpheres},
	{"checkered-spheres", "Two checker textured spheres touching at the origin", buildCheckeredSpheres},
	{"earth", "An image textured globe", buildEarth},
	{"perlin-spheres", "Perlin noise textured sphere on a noise textured ground", buildPerlinSpheres},
	{"quads", "Five coloured quads forming an open box", buildQuads},
	{"simple-light", "Noise textured spheres lit by a sphere and a quad emitter", buildSimpleLight},
	{"cornell-box", "Cornell box with two rotated boxes and a ceiling light", buildCornellBox},
}

// List returns the registered scenes in display order
func List() []Info {
	return append([]Info(nil), registry...)
}

// Names returns the registered scene names in display order
func Names() []string {
	names := make([]string, len(registry))
	for i, info := range registry {
		names[i] = info.Name
	}
	return names
}

// Lookup builds the named scene. The BVH is not built until Preprocess.
func Lookup(name string, opts Options) (*Scene, error) {
	for _, info := range registry {
		if info.Name != name {
			continue
		}

		s, err := info.build(opts)
		if err != nil {
			return nil, fmt.Errorf("building scene %q: %w", name, err)
		}
		s.Name = name
		logger.Infof("Built scene %q with %d shapes: %s", name, s.GetPrimitiveCount(), s.Summary())
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}
