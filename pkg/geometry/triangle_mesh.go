package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
)

// boundsPadding keeps a usable volume around flat meshes
const boundsPadding = 1e-9

// Face holds the three 0-based vertex indices of a triangle
type Face [3]int

// Mesh represents a triangulated surface tested face by face. The bounding
// box is computed once at construction and rejects rays that cannot reach
// any triangle.
type Mesh struct {
	vertices  []core.Vec3
	faces     []Face
	triangles []polygon // One cached polygon per face
	bounds    core.AABB
}

// NewMesh creates a mesh from vertex positions and triangular faces.
// It returns an error if a face references a vertex that does not exist.
func NewMesh(vertices []core.Vec3, faces []Face) (*Mesh, error) {
	triangles := make([]polygon, len(faces))

	for i, face := range faces {
		for _, index := range face {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0, %d)", i, index, len(vertices))
			}
		}
		triangles[i] = newPolygon(vertices[face[0]], vertices[face[1]], vertices[face[2]])
	}

	return &Mesh{
		vertices:  vertices,
		faces:     faces,
		triangles: triangles,
		bounds:    core.NewAABBFromPoints(vertices...).Expand(boundsPadding),
	}, nil
}

// Intersect tests the ray against the bounding box and then every face,
// keeping the nearest hit
func (m *Mesh) Intersect(ray core.Ray) (core.Intersection, bool) {
	if len(m.triangles) == 0 || !m.bounds.Hit(ray, 0, math.Inf(1)) {
		return core.NoIntersection(), false
	}

	closest := core.NoIntersection()
	closestT := math.Inf(1)
	hitAnything := false

	for _, triangle := range m.triangles {
		t, point, ok := triangle.intersect(ray, closestT)
		if !ok {
			continue
		}
		closestT = t
		closest.Point = point
		closest.Normal = triangle.normal
		hitAnything = true
	}

	return closest, hitAnything
}

// Bounds returns the mesh's bounding box
func (m *Mesh) Bounds() core.AABB {
	return m.bounds
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// FaceCount returns the number of triangles
func (m *Mesh) FaceCount() int {
	return len(m.faces)
}
