package loaders

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/lights"
	"github.com/df07/whitted-raytracer/pkg/material"
	"github.com/df07/whitted-raytracer/pkg/scene"
)

// vec3 decodes a three element YAML sequence
type vec3 core.Vec3

func (v *vec3) UnmarshalYAML(node *yaml.Node) error {
	var xs []float64
	if err := node.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 3 {
		return errors.Errorf("line %d: expected 3 components, got %d", node.Line, len(xs))
	}
	*v = vec3(core.NewVec3(xs[0], xs[1], xs[2]))
	return nil
}

func (v *vec3) vec() core.Vec3 {
	if v == nil {
		return core.Vec3{}
	}
	return core.Vec3(*v)
}

func (v *vec3) color(fallback core.Color) core.Color {
	if v == nil {
		return fallback
	}
	return core.NewColor(v.X, v.Y, v.Z)
}

// vec2 decodes a two element YAML sequence
type vec2 core.Vec2

func (v *vec2) UnmarshalYAML(node *yaml.Node) error {
	var xs []float64
	if err := node.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 2 {
		return errors.Errorf("line %d: expected 2 components, got %d", node.Line, len(xs))
	}
	*v = vec2(core.NewVec2(xs[0], xs[1]))
	return nil
}

type sceneFile struct {
	Name       string                 `yaml:"name"`
	Camera     cameraDef              `yaml:"camera"`
	Sampling   samplingDef            `yaml:"sampling"`
	Background backgroundDef          `yaml:"background"`
	Textures   map[string]textureDef  `yaml:"textures"`
	Materials  map[string]materialDef `yaml:"materials"`
	Entities   []entityDef            `yaml:"entities"`
	Lights     []lightDef             `yaml:"lights"`
}

type cameraDef struct {
	Center      vec3    `yaml:"center"`
	LookAt      vec3    `yaml:"look_at"`
	Up          *vec3   `yaml:"up"`
	Width       int     `yaml:"width"`
	AspectRatio float64 `yaml:"aspect_ratio"`
	VFov        float64 `yaml:"vfov"`
}

type samplingDef struct {
	SamplesPerPixel int `yaml:"samples_per_pixel"`
	MaxDepth        int `yaml:"max_depth"`
}

type backgroundDef struct {
	Top    *vec3 `yaml:"top"`
	Bottom *vec3 `yaml:"bottom"`
}

type textureDef struct {
	Type      string  `yaml:"type"` // checker, image, bump
	Even      *vec3   `yaml:"even"`
	Odd       *vec3   `yaml:"odd"`
	Scale     float64 `yaml:"scale"`
	Path      string  `yaml:"path"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Frequency float64 `yaml:"frequency"`
	Strength  float64 `yaml:"strength"`
}

type layerDef struct {
	Material string  `yaml:"material"`
	Weight   float64 `yaml:"weight"`
}

type materialDef struct {
	Type string `yaml:"type"`

	// phong, textured, normal_mapped
	Ambient   *vec3   `yaml:"ambient"`
	Diffuse   *vec3   `yaml:"diffuse"`
	Specular  *vec3   `yaml:"specular"`
	Shininess float64 `yaml:"shininess"`
	Texture   string  `yaml:"texture"`
	Strength  float64 `yaml:"ambient_strength"`
	Base      string  `yaml:"base"`
	NormalMap string  `yaml:"normal_map"`

	// mirror, glass, emissive
	Albedo          *vec3    `yaml:"albedo"`
	Transparency    *float64 `yaml:"transparency"`
	RefractiveIndex float64  `yaml:"refractive_index"`
	Split           bool     `yaml:"split"`
	Emission        *vec3    `yaml:"emission"`

	// blend
	Layers []layerDef `yaml:"layers"`
}

type entityDef struct {
	Type     string `yaml:"type"`
	Material string `yaml:"material"`

	Center *vec3   `yaml:"center"`
	Radius float64 `yaml:"radius"`
	YMin   float64 `yaml:"y_min"`
	YMax   float64 `yaml:"y_max"`

	Axis  string  `yaml:"axis"`
	Value float64 `yaml:"value"`
	Min   vec2    `yaml:"min"`
	Max   vec2    `yaml:"max"`

	Vertices  []vec3  `yaml:"vertices"`
	Faces     [][]int `yaml:"faces"`
	PLY       string  `yaml:"ply"`
	Scale     float64 `yaml:"scale"`
	Translate *vec3   `yaml:"translate"`

	Children []entityDef `yaml:"children"`
}

type lightDef struct {
	Type        string    `yaml:"type"` // point, directional, bulb
	Position    *vec3     `yaml:"position"`
	Direction   *vec3     `yaml:"direction"`
	Intensity   *vec3     `yaml:"intensity"`
	Attenuation []float64 `yaml:"attenuation"`
	Radius      float64   `yaml:"radius"`
}

// LoadScene reads a YAML scene description from path. Relative texture and
// PLY paths resolve against the directory holding the file.
func LoadScene(path string, tracer material.Tracer, logger core.Logger) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open scene file")
	}
	defer file.Close()

	s, err := ParseScene(file, filepath.Dir(path), tracer, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// ParseScene builds a scene from a YAML stream
func ParseScene(r io.Reader, baseDir string, tracer material.Tracer, logger core.Logger) (*scene.Scene, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	var file sceneFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "failed to decode scene")
	}

	b := &sceneBuilder{
		file:      &file,
		baseDir:   baseDir,
		tracer:    tracer,
		logger:    logger,
		textures:  make(map[string]material.ColorSource),
		materials: make(map[string]material.Material),
		resolving: make(map[string]bool),
	}
	return b.build()
}

type sceneBuilder struct {
	file    *sceneFile
	baseDir string
	tracer  material.Tracer
	logger  core.Logger

	textures  map[string]material.ColorSource
	materials map[string]material.Material
	resolving map[string]bool // materials currently being built, for cycle detection
}

func (b *sceneBuilder) build() (*scene.Scene, error) {
	s := scene.New(b.file.Name)

	cam := b.file.Camera
	s.CameraConfig = geometry.CameraConfig{
		Center:      cam.Center.vec(),
		LookAt:      cam.LookAt.vec(),
		Up:          core.NewVec3(0, 1, 0),
		Width:       cam.Width,
		AspectRatio: cam.AspectRatio,
		VFov:        cam.VFov,
	}
	if cam.Up != nil {
		s.CameraConfig.Up = cam.Up.vec()
	}
	if s.CameraConfig.VFov == 0 {
		s.CameraConfig.VFov = 40
	}
	if s.CameraConfig.AspectRatio == 0 {
		s.CameraConfig.AspectRatio = 16.0 / 9.0
	}

	if b.file.Sampling.SamplesPerPixel > 0 {
		s.SamplingConfig.SamplesPerPixel = b.file.Sampling.SamplesPerPixel
	}
	if b.file.Sampling.MaxDepth > 0 {
		s.SamplingConfig.MaxDepth = b.file.Sampling.MaxDepth
	}
	s.TopColor = b.file.Background.Top.color(s.TopColor)
	s.BottomColor = b.file.Background.Bottom.color(s.BottomColor)

	for i, def := range b.file.Entities {
		entity, err := b.entity(def)
		if err != nil {
			return nil, errors.Wrapf(err, "entity %d", i)
		}
		s.Add(entity)
	}

	for i, def := range b.file.Lights {
		if err := b.light(s, def); err != nil {
			return nil, errors.Wrapf(err, "light %d", i)
		}
	}

	b.logger.Debugf("Loaded scene %q: %d primitives, %d lights, %d materials",
		s.Name, s.PrimitiveCount(), len(s.Lights()), len(b.materials))
	return s, nil
}

func (b *sceneBuilder) texture(name string) (material.ColorSource, error) {
	if tex, ok := b.textures[name]; ok {
		return tex, nil
	}
	def, ok := b.file.Textures[name]
	if !ok {
		return nil, errors.Errorf("undefined texture %q", name)
	}

	var tex material.ColorSource
	switch def.Type {
	case "checker":
		scale := def.Scale
		if scale == 0 {
			scale = 8
		}
		tex = material.NewChecker(def.Even.color(core.White), def.Odd.color(core.Black), scale)
	case "image":
		path := def.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(b.baseDir, path)
		}
		img, err := LoadImage(path)
		if err != nil {
			return nil, errors.Wrapf(err, "texture %q", name)
		}
		b.logger.Debugf("Loaded texture %q: %dx%d", name, img.Width, img.Height)
		tex = img
	case "bump":
		tex = material.NewBumpNormalMap(max(def.Width, 1), max(def.Height, 1), def.Frequency, def.Strength)
	default:
		return nil, errors.Wrapf(ErrUnknownType, "texture %q has type %q", name, def.Type)
	}

	b.textures[name] = tex
	return tex, nil
}

func (b *sceneBuilder) material(name string) (material.Material, error) {
	if mat, ok := b.materials[name]; ok {
		return mat, nil
	}
	def, ok := b.file.Materials[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMaterial, "%q", name)
	}
	if b.resolving[name] {
		return nil, errors.Errorf("material %q references itself", name)
	}
	b.resolving[name] = true
	defer delete(b.resolving, name)

	mat, err := b.newMaterial(name, def)
	if err != nil {
		return nil, err
	}
	b.materials[name] = mat
	return mat, nil
}

func (b *sceneBuilder) newMaterial(name string, def materialDef) (material.Material, error) {
	switch def.Type {
	case "phong":
		return b.phong(def), nil
	case "textured":
		tex, err := b.texture(def.Texture)
		if err != nil {
			return nil, errors.Wrapf(err, "material %q", name)
		}
		return material.NewTextured(tex, def.Strength, def.Specular.color(core.Black), def.Shininess), nil
	case "normal_mapped":
		base, err := b.material(def.Base)
		if err != nil {
			return nil, errors.Wrapf(err, "material %q", name)
		}
		phong, ok := base.(*material.Phong)
		if !ok {
			return nil, errors.Errorf("material %q: base %q is not a phong surface", name, def.Base)
		}
		normalMap, err := b.texture(def.NormalMap)
		if err != nil {
			return nil, errors.Wrapf(err, "material %q", name)
		}
		return material.NewNormalMapped(phong, normalMap), nil
	case "mirror":
		return material.NewMirror(def.Albedo.color(core.White), b.tracer), nil
	case "glass":
		transparency := 1.0
		if def.Transparency != nil {
			transparency = *def.Transparency
		}
		ior := def.RefractiveIndex
		if ior == 0 {
			ior = 1.5
		}
		glass := material.NewGlass(def.Albedo.color(core.White), transparency, ior, b.tracer)
		glass.Split = def.Split
		return glass, nil
	case "emissive":
		return material.NewEmissive(def.Emission.color(core.White)), nil
	case "blend":
		layers := make([]material.Layer, 0, len(def.Layers))
		for _, layer := range def.Layers {
			mat, err := b.material(layer.Material)
			if err != nil {
				return nil, errors.Wrapf(err, "material %q", name)
			}
			layers = append(layers, material.Layer{Weight: layer.Weight, Material: mat})
		}
		return material.NewBlend(layers...), nil
	default:
		return nil, errors.Wrapf(ErrUnknownType, "material %q has type %q", name, def.Type)
	}
}

func (b *sceneBuilder) phong(def materialDef) *material.Phong {
	diffuse := def.Diffuse.color(core.Gray(0.5))
	return material.NewPhong(
		def.Ambient.color(diffuse.Multiply(0.1)),
		diffuse,
		def.Specular.color(core.Black),
		def.Shininess,
	)
}

func (b *sceneBuilder) entity(def entityDef) (geometry.Entity, error) {
	var mat material.Material
	if def.Material != "" {
		var err error
		if mat, err = b.material(def.Material); err != nil {
			return nil, err
		}
	} else if def.Type != "group" {
		return nil, errors.Errorf("%s has no material", def.Type)
	}

	switch def.Type {
	case "sphere":
		return geometry.NewSphere(def.Center.vec(), def.Radius, mat), nil
	case "cylinder":
		return geometry.NewCylinder(def.Center.vec(), def.YMin, def.YMax, def.Radius, mat), nil
	case "quad":
		axis, err := parseAxis(def.Axis)
		if err != nil {
			return nil, err
		}
		return geometry.NewQuad(axis, def.Value, core.Vec2(def.Min), core.Vec2(def.Max), mat), nil
	case "triangle":
		if len(def.Vertices) != 3 {
			return nil, errors.Errorf("triangle needs 3 vertices, got %d", len(def.Vertices))
		}
		return geometry.NewTriangle(def.Vertices[0].vec(), def.Vertices[1].vec(), def.Vertices[2].vec(), mat), nil
	case "mesh":
		return b.mesh(def, mat)
	case "group":
		group := geometry.NewEntityList()
		for i, child := range def.Children {
			if child.Material == "" && def.Material != "" {
				child.Material = def.Material
			}
			e, err := b.entity(child)
			if err != nil {
				return nil, errors.Wrapf(err, "child %d", i)
			}
			group.Add(e)
		}
		return group, nil
	default:
		return nil, errors.Wrapf(ErrUnknownType, "entity type %q", def.Type)
	}
}

func (b *sceneBuilder) mesh(def entityDef, mat material.Material) (geometry.Entity, error) {
	vertices := make([]core.Vec3, len(def.Vertices))
	for i := range def.Vertices {
		vertices[i] = def.Vertices[i].vec()
	}
	faces := def.Faces

	if def.PLY != "" {
		path := def.PLY
		if !filepath.IsAbs(path) {
			path = filepath.Join(b.baseDir, path)
		}
		data, err := LoadPLY(path)
		if err != nil {
			return nil, err
		}
		vertices, faces = data.Vertices, data.Faces
		b.logger.Debugf("Loaded PLY %s: %d vertices, %d faces", def.PLY, len(vertices), len(faces))
	}

	scale := def.Scale
	if scale == 0 {
		scale = 1
	}
	return geometry.NewMesh(vertices, faces, scale, def.Translate.vec(), mat)
}

func (b *sceneBuilder) light(s *scene.Scene, def lightDef) error {
	intensity := def.Intensity.color(core.White)

	switch def.Type {
	case "point":
		light := lights.NewPointLight(def.Position.vec(), intensity)
		if len(def.Attenuation) > 0 {
			if len(def.Attenuation) != 3 {
				return errors.Errorf("attenuation needs 3 coefficients, got %d", len(def.Attenuation))
			}
			light.Attenuation = lights.Attenuation{
				Constant:  def.Attenuation[0],
				Linear:    def.Attenuation[1],
				Quadratic: def.Attenuation[2],
			}
		}
		s.AddLight(light)
	case "directional":
		if def.Direction == nil {
			return errors.New("directional light has no direction")
		}
		s.AddLight(lights.NewDirectionalLight(def.Direction.vec(), intensity))
	case "bulb":
		radius := def.Radius
		if radius == 0 {
			radius = 0.05
		}
		s.AddBulb(def.Position.vec(), intensity, radius)
	default:
		return errors.Wrapf(ErrUnknownType, "light type %q", def.Type)
	}
	return nil
}

func parseAxis(name string) (geometry.Axis, error) {
	switch strings.ToLower(name) {
	case "x":
		return geometry.AxisX, nil
	case "y":
		return geometry.AxisY, nil
	case "z":
		return geometry.AxisZ, nil
	default:
		return 0, errors.Errorf("invalid quad axis %q", name)
	}
}
