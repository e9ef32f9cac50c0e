package scene

import (
	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/geometry"
	"github.com/df07/go-scenegraph-raytracer/pkg/lights"
	"github.com/df07/go-scenegraph-raytracer/pkg/material"
)

// NewDefaultScene creates a default scene with three spheres and a cube on
// a large flattened box
func NewDefaultScene() *Scene {
	b := NewBuilder()
	root := b.Group("root")

	// Create materials
	red := material.NewPhong(core.NewVec3(0.7, 0.2, 0.2), core.NewVec3(0.4, 0.4, 0.4), 25)
	green := material.NewPhong(core.NewVec3(0.2, 0.6, 0.3), core.NewVec3(0.5, 0.7, 0.5), 25)
	blue := material.NewPhong(core.NewVec3(0.2, 0.3, 0.8), core.NewVec3(0.8, 0.8, 0.8), 60)
	floor := material.NewPhong(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.2, 0.2, 0.2), 10)

	// Spheres are placed with explicit centers, the cube through its node transform
	must(root.AddChild(b.Geometry("s1", geometry.NewSphere(core.NewVec3(0, 0, -400), 100), red)))
	must(root.AddChild(b.Geometry("s2", geometry.NewSphere(core.NewVec3(200, 50, -100), 150), blue)))
	must(root.AddChild(b.Geometry("s3", geometry.NewSphere(core.NewVec3(-150, -85, 150), 30), green)))

	cube := b.Geometry("b1", geometry.NewUnitCube(), green)
	must(cube.Scale(core.NewVec3(100, 100, 100)))
	must(cube.Rotate('y', 30))
	cube.Translate(core.NewVec3(-250, -150, -100))
	must(root.AddChild(cube))

	plane := b.Geometry("plane", geometry.NewUnitCube(), floor)
	must(plane.Scale(core.NewVec3(2000, 10, 2000)))
	plane.Translate(core.NewVec3(-1000, -160, -1000))
	must(root.AddChild(plane))

	return &Scene{
		Name: "default",
		Root: root,
		Camera: Camera{
			Eye:  core.NewVec3(0, 0, 800),
			View: core.NewVec3(0, 0, -800),
			Up:   core.NewVec3(0, 1, 0),
			FovY: 50,
		},
		Ambient: core.NewVec3(0.3, 0.3, 0.3),
		Lights: []lights.PointLight{
			lights.NewUnattenuatedLight(core.NewVec3(-100, 150, 400), core.NewVec3(0.9, 0.9, 0.9)),
			lights.NewUnattenuatedLight(core.NewVec3(400, 100, 150), core.NewVec3(0.7, 0.0, 0.7)),
		},
		Width:  512,
		Height: 512,
	}
}

// must panics on errors that only a broken scene constructor can produce
func must(err error) {
	if err != nil {
		panic(err)
	}
}
