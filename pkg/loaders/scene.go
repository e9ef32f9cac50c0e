package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/geometry"
	"github.com/df07/go-scenegraph-raytracer/pkg/lights"
	"github.com/df07/go-scenegraph-raytracer/pkg/material"
	"github.com/df07/go-scenegraph-raytracer/pkg/scene"
)

// ErrUnknownReference is returned when a scene file names a material or
// primitive it does not define.
var ErrUnknownReference = errors.New("loaders: unknown reference")

// ErrInvalidFalloff is returned for a light falloff with a negative
// coefficient or with every coefficient zero.
var ErrInvalidFalloff = errors.New("loaders: invalid light falloff")

type vec3 [3]float64

func (v vec3) vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// sceneFile is the YAML layout of a scene description
type sceneFile struct {
	Name  string `yaml:"name"`
	Image struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"image"`
	Camera struct {
		Eye  vec3    `yaml:"eye"`
		View vec3    `yaml:"view"`
		Up   vec3    `yaml:"up"`
		Fov  float64 `yaml:"fov"`
	} `yaml:"camera"`
	Ambient    vec3                     `yaml:"ambient"`
	Lights     []lightSpec              `yaml:"lights"`
	Materials  map[string]materialSpec  `yaml:"materials"`
	Primitives map[string]primitiveSpec `yaml:"primitives"`
	Root       nodeSpec                 `yaml:"root"`
}

type lightSpec struct {
	Position vec3  `yaml:"position"`
	Color    vec3  `yaml:"color"`
	Falloff  *vec3 `yaml:"falloff"` // Defaults to no attenuation
}

type materialSpec struct {
	Kd        vec3    `yaml:"kd"`
	Ks        vec3    `yaml:"ks"`
	Shininess float64 `yaml:"shininess"`
}

type primitiveSpec struct {
	Type   string  `yaml:"type"` // sphere, cube, nh_sphere, nh_box or mesh
	Center vec3    `yaml:"center"`
	Radius float64 `yaml:"radius"`
	Corner vec3    `yaml:"corner"`
	Size   float64 `yaml:"size"`
	File   string  `yaml:"file"`
}

type rotationSpec struct {
	Axis  string  `yaml:"axis"`
	Angle float64 `yaml:"angle"`
}

// nodeSpec describes one node. Its transform is applied as scale, then the
// rotations in order, then translate.
type nodeSpec struct {
	Name      string         `yaml:"name"`
	Primitive string         `yaml:"primitive"`
	Material  string         `yaml:"material"`
	Scale     *vec3          `yaml:"scale"`
	Rotate    []rotationSpec `yaml:"rotate"`
	Translate *vec3          `yaml:"translate"`
	Children  []nodeSpec     `yaml:"children"`
}

// LoadScene loads a YAML scene description. Mesh files are resolved
// relative to the scene file.
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file, filepath.Dir(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	logger.Infof("loaded scene %q from %s: %d nodes, %d lights", s.Name, filename, s.GetNodeCount(), len(s.Lights))
	return s, nil
}

// ParseScene builds a scene from a YAML description. Relative mesh paths
// are resolved against baseDir.
func ParseScene(r io.Reader, baseDir string) (*scene.Scene, error) {
	var desc sceneFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&desc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	b := &sceneBuilder{
		builder:    scene.NewBuilder(),
		desc:       &desc,
		baseDir:    baseDir,
		materials:  make(map[string]*material.Phong),
		primitives: make(map[string]geometry.Primitive),
	}

	root, err := b.node(desc.Root)
	if err != nil {
		return nil, err
	}

	sceneLights := make([]lights.PointLight, 0, len(desc.Lights))
	for i, spec := range desc.Lights {
		falloff := [3]float64{1, 0, 0}
		if spec.Falloff != nil {
			falloff = *spec.Falloff
		}
		if falloff[0] < 0 || falloff[1] < 0 || falloff[2] < 0 || falloff == [3]float64{} {
			return nil, fmt.Errorf("light %d: %w: %v", i, ErrInvalidFalloff, falloff)
		}
		sceneLights = append(sceneLights, lights.NewPointLight(spec.Position.vec(), spec.Color.vec(), falloff))
	}

	return &scene.Scene{
		Name: desc.Name,
		Root: root,
		Camera: scene.Camera{
			Eye:  desc.Camera.Eye.vec(),
			View: desc.Camera.View.vec(),
			Up:   desc.Camera.Up.vec(),
			FovY: desc.Camera.Fov,
		},
		Ambient: desc.Ambient.vec(),
		Lights:  sceneLights,
		Width:   desc.Image.Width,
		Height:  desc.Image.Height,
	}, nil
}

// sceneBuilder turns node specs into scene nodes. Materials and primitives
// are created once per name and shared by every node that uses them.
type sceneBuilder struct {
	builder    *scene.Builder
	desc       *sceneFile
	baseDir    string
	materials  map[string]*material.Phong
	primitives map[string]geometry.Primitive
}

func (b *sceneBuilder) node(spec nodeSpec) (*scene.Node, error) {
	var node *scene.Node
	if spec.Primitive == "" {
		node = b.builder.Group(spec.Name)
	} else {
		prim, err := b.primitive(spec.Primitive)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
		if spec.Material == "" {
			return nil, fmt.Errorf("node %q: %w", spec.Name, scene.ErrMissingMaterial)
		}
		mat, err := b.material(spec.Material)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
		node = b.builder.Geometry(spec.Name, prim, mat)
	}

	if err := applyTransforms(node, spec); err != nil {
		return nil, fmt.Errorf("node %q: %w", spec.Name, err)
	}

	for _, childSpec := range spec.Children {
		child, err := b.node(childSpec)
		if err != nil {
			return nil, err
		}
		if err := node.AddChild(child); err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
	}
	return node, nil
}

func applyTransforms(node *scene.Node, spec nodeSpec) error {
	if spec.Scale != nil {
		if err := node.Scale(spec.Scale.vec()); err != nil {
			return err
		}
	}
	for _, rotation := range spec.Rotate {
		if utf8.RuneCountInString(rotation.Axis) != 1 {
			return fmt.Errorf("%w: %q", scene.ErrInvalidAxis, rotation.Axis)
		}
		axis, _ := utf8.DecodeRuneInString(rotation.Axis)
		if err := node.Rotate(axis, rotation.Angle); err != nil {
			return err
		}
	}
	if spec.Translate != nil {
		node.Translate(spec.Translate.vec())
	}
	return nil
}

func (b *sceneBuilder) material(name string) (*material.Phong, error) {
	if mat, ok := b.materials[name]; ok {
		return mat, nil
	}
	spec, ok := b.desc.Materials[name]
	if !ok {
		return nil, fmt.Errorf("%w: material %q", ErrUnknownReference, name)
	}
	mat := material.NewPhong(spec.Kd.vec(), spec.Ks.vec(), spec.Shininess)
	b.materials[name] = mat
	return mat, nil
}

func (b *sceneBuilder) primitive(name string) (geometry.Primitive, error) {
	if prim, ok := b.primitives[name]; ok {
		return prim, nil
	}
	spec, ok := b.desc.Primitives[name]
	if !ok {
		return nil, fmt.Errorf("%w: primitive %q", ErrUnknownReference, name)
	}

	var prim geometry.Primitive
	switch spec.Type {
	case "sphere":
		prim = geometry.NewUnitSphere()
	case "cube":
		prim = geometry.NewUnitCube()
	case "nh_sphere":
		prim = geometry.NewSphere(spec.Center.vec(), spec.Radius)
	case "nh_box":
		prim = geometry.NewBox(spec.Corner.vec(), spec.Size)
	case "mesh":
		path := spec.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(b.baseDir, path)
		}
		mesh, err := LoadMesh(path)
		if err != nil {
			return nil, fmt.Errorf("primitive %q: %w", name, err)
		}
		prim = mesh
	default:
		return nil, fmt.Errorf("primitive %q: unknown type %q", name, spec.Type)
	}

	b.primitives[name] = prim
	return prim, nil
}
