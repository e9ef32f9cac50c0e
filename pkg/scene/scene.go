package scene

import (
	"fmt"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/lights"
)

// Camera describes the viewpoint of a scene
type Camera struct {
	Eye  core.Vec3 // Camera position
	View core.Vec3 // Viewing direction; its length is the distance to the image plane
	Up   core.Vec3 // Up hint, must not be parallel to View
	FovY float64   // Vertical field of view in degrees
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Name    string
	Root    *Node
	Camera  Camera
	Ambient core.Vec3           // Ambient light color
	Lights  []lights.PointLight // Lights in the scene
	Width   int                 // Image width
	Height  int                 // Image height
}

// Validate checks that the scene can be rendered: it needs a root, a
// positive image size, and a primitive and material on every geometry node.
func (s *Scene) Validate() error {
	if s.Root == nil {
		return ErrNilNode
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidImageSize, s.Width, s.Height)
	}

	var err error
	s.Root.Walk(func(node *Node, _ int) {
		if err != nil || node.Type() != GeometryNode {
			return
		}
		switch {
		case node.Primitive() == nil:
			err = fmt.Errorf("%w: %s", ErrMissingPrimitive, node)
		case node.Material() == nil:
			err = fmt.Errorf("%w: %s", ErrMissingMaterial, node)
		}
	})
	return err
}

// GetNodeCount returns the number of nodes in the scene graph
func (s *Scene) GetNodeCount() int {
	if s.Root == nil {
		return 0
	}
	return s.Root.Count()
}
