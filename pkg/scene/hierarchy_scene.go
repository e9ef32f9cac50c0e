package scene

import (
	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/geometry"
	"github.com/df07/go-scenegraph-raytracer/pkg/lights"
	"github.com/df07/go-scenegraph-raytracer/pkg/material"
)

// NewHierarchyScene creates a small articulated figure. Limbs hang off
// joint groups, so rotating a shoulder moves the whole arm with it.
func NewHierarchyScene() *Scene {
	b := NewBuilder()
	root := b.Group("root")

	sphere := geometry.NewUnitSphere()
	cube := geometry.NewUnitCube()

	skin := material.NewPhong(core.NewVec3(0.9, 0.7, 0.6), core.NewVec3(0.2, 0.2, 0.2), 10)
	shirt := material.NewPhong(core.NewVec3(0.2, 0.3, 0.7), core.NewVec3(0.3, 0.3, 0.3), 20)
	mirror := material.NewPhong(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.9, 0.9, 0.9), 100)

	body := b.Group("body")
	must(body.Rotate('y', -20))
	must(root.AddChild(body))

	torso := b.Geometry("torso", sphere, shirt)
	must(torso.Scale(core.NewVec3(1, 1.5, 0.7)))
	must(body.AddChild(torso))

	head := b.Geometry("head", sphere, skin)
	must(head.Scale(core.NewVec3(0.6, 0.6, 0.6)))
	head.Translate(core.NewVec3(0, 2.2, 0))
	must(body.AddChild(head))

	// Each arm is a shoulder joint holding an upper arm and an elbow joint
	for _, side := range []struct {
		name  string
		sign  float64
		angle float64
	}{
		{"left", -1, -30},
		{"right", 1, 60},
	} {
		shoulder := b.Group(side.name + "_shoulder")
		must(shoulder.Rotate('z', side.angle))
		shoulder.Translate(core.NewVec3(side.sign*1.1, 1.1, 0))
		must(body.AddChild(shoulder))

		upper := b.Geometry(side.name+"_upper_arm", sphere, shirt)
		must(upper.Scale(core.NewVec3(0.25, 0.7, 0.25)))
		upper.Translate(core.NewVec3(0, -0.7, 0))
		must(shoulder.AddChild(upper))

		elbow := b.Group(side.name + "_elbow")
		must(elbow.Rotate('x', -45))
		elbow.Translate(core.NewVec3(0, -1.4, 0))
		must(shoulder.AddChild(elbow))

		hand := b.Geometry(side.name+"_hand", sphere, skin)
		must(hand.Scale(core.NewVec3(0.2, 0.6, 0.2)))
		hand.Translate(core.NewVec3(0, -0.6, 0))
		must(elbow.AddChild(hand))
	}

	plinth := b.Geometry("plinth", cube, mirror)
	must(plinth.Scale(core.NewVec3(4, 0.5, 4)))
	plinth.Translate(core.NewVec3(-2, -2.5, -2))
	must(root.AddChild(plinth))

	return &Scene{
		Name: "hier",
		Root: root,
		Camera: Camera{
			Eye:  core.NewVec3(0, 1, 10),
			View: core.NewVec3(0, -0.5, -10),
			Up:   core.NewVec3(0, 1, 0),
			FovY: 40,
		},
		Ambient: core.NewVec3(0.3, 0.3, 0.3),
		Lights: []lights.PointLight{
			lights.NewUnattenuatedLight(core.NewVec3(5, 8, 8), core.NewVec3(0.8, 0.8, 0.8)),
		},
		Width:  400,
		Height: 400,
	}
}

// NewEmptyScene creates a scene with nothing in it; every pixel shows the
// background
func NewEmptyScene() *Scene {
	return &Scene{
		Name: "empty",
		Root: NewBuilder().Group("root"),
		Camera: Camera{
			Eye:  core.NewVec3(0, 0, 0),
			View: core.NewVec3(0, 0, -1),
			Up:   core.NewVec3(0, 1, 0),
			FovY: 50,
		},
		Width:  256,
		Height: 256,
	}
}
