package scene

import (
	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/geometry"
	"github.com/df07/go-scenegraph-raytracer/pkg/lights"
	"github.com/df07/go-scenegraph-raytracer/pkg/material"
)

// NewTetrahedronMesh returns a regular tetrahedron with unit circumradius
// centered at the origin, faces wound outward
func NewTetrahedronMesh() *geometry.Mesh {
	vertices := []core.Vec3{
		core.NewVec3(1, 1, 1).Normalize(),
		core.NewVec3(1, -1, -1).Normalize(),
		core.NewVec3(-1, 1, -1).Normalize(),
		core.NewVec3(-1, -1, 1).Normalize(),
	}
	faces := []geometry.Face{
		{0, 2, 3},
		{0, 3, 1},
		{0, 1, 2},
		{1, 3, 2},
	}

	mesh, err := geometry.NewMesh(vertices, faces)
	must(err)
	return mesh
}

// NewTriangleMeshScene creates a scene showcasing mesh geometry: two
// tetrahedra sharing one mesh, rotated differently, above a flat box
func NewTriangleMeshScene() *Scene {
	b := NewBuilder()
	root := b.Group("root")

	mesh := NewTetrahedronMesh()
	gold := material.NewPhong(core.NewVec3(0.8, 0.6, 0.2), core.NewVec3(0.6, 0.6, 0.4), 50)
	teal := material.NewPhong(core.NewVec3(0.1, 0.5, 0.5), core.NewVec3(0.3, 0.3, 0.3), 20)
	floor := material.NewPhong(core.NewVec3(0.6, 0.6, 0.6), core.NewVec3(0.1, 0.1, 0.1), 5)

	left := b.Geometry("tetra_left", mesh, gold)
	must(left.Rotate('y', 20))
	left.Translate(core.NewVec3(-1.3, 1, 0))
	must(root.AddChild(left))

	right := b.Geometry("tetra_right", mesh, teal)
	must(right.Scale(core.NewVec3(0.8, 0.8, 0.8)))
	must(right.Rotate('x', 35))
	must(right.Rotate('y', -40))
	right.Translate(core.NewVec3(1.3, 0.8, 0))
	must(root.AddChild(right))

	ground := b.Geometry("ground", geometry.NewUnitCube(), floor)
	must(ground.Scale(core.NewVec3(10, 0.2, 10)))
	ground.Translate(core.NewVec3(-5, -0.2, -5))
	must(root.AddChild(ground))

	return &Scene{
		Name: "mesh",
		Root: root,
		Camera: Camera{
			Eye:  core.NewVec3(0, 2, 6),
			View: core.NewVec3(0, -1, -6),
			Up:   core.NewVec3(0, 1, 0),
			FovY: 45,
		},
		Ambient: core.NewVec3(0.25, 0.25, 0.25),
		Lights: []lights.PointLight{
			lights.NewUnattenuatedLight(core.NewVec3(4, 6, 5), core.NewVec3(0.9, 0.9, 0.9)),
			lights.NewUnattenuatedLight(core.NewVec3(-5, 3, 2), core.NewVec3(0.3, 0.3, 0.5)),
		},
		Width:  600,
		Height: 400,
	}
}
