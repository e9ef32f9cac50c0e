package geometry

import (
	"math"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
)

// Box represents an axis-aligned cube given by its minimum corner and edge
// length, made up of 6 quads
type Box struct {
	Corner core.Vec3  // Minimum corner
	Size   float64    // Edge length
	faces  [6]polygon // The 6 quad faces, wound so their normals point outward
}

// NewBox creates a new cube spanning [corner, corner+size] on every axis
func NewBox(corner core.Vec3, size float64) *Box {
	box := &Box{
		Corner: corner,
		Size:   size,
	}

	// Generate the 6 faces
	box.generateFaces()

	return box
}

// generateFaces creates the 6 quad faces of the box
func (b *Box) generateFaces() {
	x0, y0, z0 := b.Corner.X, b.Corner.Y, b.Corner.Z
	x1, y1, z1 := x0+b.Size, y0+b.Size, z0+b.Size

	corners := [8]core.Vec3{
		core.NewVec3(x0, y0, z0), // 0: left-bottom-back
		core.NewVec3(x1, y0, z0), // 1: right-bottom-back
		core.NewVec3(x0, y1, z0), // 2: left-top-back
		core.NewVec3(x1, y1, z0), // 3: right-top-back
		core.NewVec3(x0, y0, z1), // 4: left-bottom-front
		core.NewVec3(x1, y0, z1), // 5: right-bottom-front
		core.NewVec3(x0, y1, z1), // 6: left-top-front
		core.NewVec3(x1, y1, z1), // 7: right-top-front
	}

	// Back face (Z-)
	b.faces[0] = newPolygon(corners[2], corners[3], corners[1], corners[0])
	// Top face (Y+)
	b.faces[1] = newPolygon(corners[6], corners[7], corners[3], corners[2])
	// Right face (X+)
	b.faces[2] = newPolygon(corners[3], corners[7], corners[5], corners[1])
	// Left face (X-)
	b.faces[3] = newPolygon(corners[4], corners[6], corners[2], corners[0])
	// Front face (Z+)
	b.faces[4] = newPolygon(corners[5], corners[7], corners[6], corners[4])
	// Bottom face (Y-)
	b.faces[5] = newPolygon(corners[1], corners[5], corners[4], corners[0])
}

// Intersect tests the ray against every face and keeps the nearest
func (b *Box) Intersect(ray core.Ray) (core.Intersection, bool) {
	closest := core.NoIntersection()
	closestT := math.Inf(1)
	hitAnything := false

	for _, face := range b.faces {
		t, point, ok := face.intersect(ray, closestT)
		if !ok {
			continue
		}
		closestT = t
		closest.Point = point
		closest.Normal = face.normal
		hitAnything = true
	}

	return closest, hitAnything
}

// unitCube is the canonical cube every UnitCube delegates to
var unitCube = NewBox(core.NewVec3(0, 0, 0), 1)

// UnitCube is the cube spanning [0, 1] on every axis
type UnitCube struct{}

// NewUnitCube creates a unit cube
func NewUnitCube() UnitCube {
	return UnitCube{}
}

// Intersect tests the ray against the canonical cube
func (UnitCube) Intersect(ray core.Ray) (core.Intersection, bool) {
	return unitCube.Intersect(ray)
}
