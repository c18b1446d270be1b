package scene

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/df07/whitted-raytracer/pkg/material"
)

// Info describes a builtin scene
type Info struct {
	Name        string
	Description string
}

// Builder constructs a scene whose recursive materials trace through tracer
type Builder func(tracer material.Tracer) (*Scene, error)

var builtins = map[string]struct {
	description string
	build       Builder
}{
	"default":   {"Phong, mirror and glass spheres on a checkered floor", NewDefaultScene},
	"cornell":   {"Cornell box built from axis-aligned quads", NewCornellScene},
	"cylinders": {"Capped cylinders with mixed materials", NewCylinderScene},
	"mesh":      {"Fan-triangulated polygon meshes", NewMeshScene},
	"textures":  {"Checker, image and normal-mapped textures", NewTextureScene},
	"whitted":   {"Whitted's reflective floor and glass sphere", NewWhittedScene},
}

// List returns every builtin scene sorted by name
func List() []Info {
	infos := make([]Info, 0, len(builtins))
	for name, b := range builtins {
		infos = append(infos, Info{Name: name, Description: b.description})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Build constructs the named builtin scene
func Build(name string, tracer material.Tracer) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScene, "%q", name)
	}
	return b.build(tracer)
}
