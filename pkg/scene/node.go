package scene

import (
	"fmt"
	"math"
	"unicode"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/geometry"
	"github.com/df07/go-scenegraph-raytracer/pkg/material"
)

// NodeType tags what a node contributes to the scene
type NodeType int

const (
	// GroupNode only carries a transform and children
	GroupNode NodeType = iota
	// GeometryNode also carries a primitive and its material
	GeometryNode
)

// String returns the type name used when printing nodes
func (t NodeType) String() string {
	switch t {
	case GroupNode:
		return "Group"
	case GeometryNode:
		return "Geometry"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// Node is one element of the scene hierarchy. Each node owns its children
// and a local transform relative to its parent, with the inverse kept in
// step by every mutator.
type Node struct {
	id        int
	name      string
	kind      NodeType
	transform core.Mat4
	inverse   core.Mat4
	children  []*Node
	attached  bool

	// Geometry nodes only
	primitive geometry.Primitive
	material  *material.Phong
}

// Builder hands out nodes with unique, increasing ids
type Builder struct {
	nextID int
}

// NewBuilder creates a builder whose first node gets id 0
func NewBuilder() *Builder {
	return &Builder{}
}

// Group creates a group node with the identity transform
func (b *Builder) Group(name string) *Node {
	return b.newNode(name, GroupNode)
}

// Geometry creates a geometry node drawing prim with mat. Both may be shared
// with other nodes.
func (b *Builder) Geometry(name string, prim geometry.Primitive, mat *material.Phong) *Node {
	node := b.newNode(name, GeometryNode)
	node.primitive = prim
	node.material = mat
	return node
}

// Count returns the number of nodes created so far
func (b *Builder) Count() int {
	return b.nextID
}

func (b *Builder) newNode(name string, kind NodeType) *Node {
	node := &Node{
		id:        b.nextID,
		name:      name,
		kind:      kind,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}
	b.nextID++
	return node
}

// ID returns the node's id
func (n *Node) ID() int { return n.id }

// Name returns the node's name
func (n *Node) Name() string { return n.name }

// Type returns the node's type tag
func (n *Node) Type() NodeType { return n.kind }

// Transform returns the local transform
func (n *Node) Transform() core.Mat4 { return n.transform }

// Inverse returns the cached inverse of the local transform
func (n *Node) Inverse() core.Mat4 { return n.inverse }

// Children returns the node's children in insertion order
func (n *Node) Children() []*Node { return n.children }

// Primitive returns the primitive of a geometry node
func (n *Node) Primitive() geometry.Primitive { return n.primitive }

// Material returns the material of a geometry node
func (n *Node) Material() *material.Phong { return n.material }

// SetMaterial replaces the material reference of the node
func (n *Node) SetMaterial(mat *material.Phong) {
	n.material = mat
}

// SetTransform replaces the local transform. A singular matrix is rejected
// and leaves the node unchanged.
func (n *Node) SetTransform(m core.Mat4) error {
	inverse, ok := core.Invert(m)
	if !ok {
		return ErrSingularTransform
	}
	n.transform = m
	n.inverse = inverse
	return nil
}

// Translate pre-multiplies the local transform by a translation
func (n *Node) Translate(offset core.Vec3) {
	n.transform = core.Translation(offset).Mul4(n.transform)
	n.inverse = n.inverse.Mul4(core.Translation(offset.Negate()))
}

// Scale pre-multiplies the local transform by a per-axis scale. A zero or
// non-finite factor is rejected and leaves the node unchanged.
func (n *Node) Scale(factors core.Vec3) error {
	for _, f := range [3]float64{factors.X, factors.Y, factors.Z} {
		if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrSingularTransform
		}
	}
	n.transform = core.Scaling(factors).Mul4(n.transform)
	n.inverse = n.inverse.Mul4(core.Scaling(core.NewVec3(1/factors.X, 1/factors.Y, 1/factors.Z)))
	return nil
}

// Rotate pre-multiplies the local transform by a rotation of degrees about
// the x, y or z axis
func (n *Node) Rotate(axis rune, degrees float64) error {
	var direction core.Vec3
	switch unicode.ToLower(axis) {
	case 'x':
		direction = core.NewVec3(1, 0, 0)
	case 'y':
		direction = core.NewVec3(0, 1, 0)
	case 'z':
		direction = core.NewVec3(0, 0, 1)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAxis, axis)
	}

	rotation := core.Rotation(degrees*math.Pi/180, direction)
	n.transform = rotation.Mul4(n.transform)
	n.inverse = n.inverse.Mul4(rotation.Transpose())
	return nil
}

// AddChild appends child to the node's children. The child must not be nil,
// must not already have a parent, and must not contain the node.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return ErrNilNode
	}
	if child.attached {
		return fmt.Errorf("%w: %s", ErrAlreadyAttached, child)
	}
	if child.contains(n) {
		return fmt.Errorf("%w: %s under %s", ErrCycle, child, n)
	}
	child.attached = true
	n.children = append(n.children, child)
	return nil
}

// RemoveChild detaches child from the node. It reports whether child was
// one of the node's children.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.attached = false
			return true
		}
	}
	return false
}

func (n *Node) contains(target *Node) bool {
	if n == target {
		return true
	}
	for _, child := range n.children {
		if child.contains(target) {
			return true
		}
	}
	return false
}

// Walk visits the subtree depth-first, parents before children
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int), depth int) {
	fn(n, depth)
	for _, child := range n.children {
		child.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the subtree, the node included
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) { count++ })
	return count
}

// String prints the node as Type:[name:x, id:n]
func (n *Node) String() string {
	return fmt.Sprintf("%s:[name:%s, id:%d]", n.kind, n.name, n.id)
}

// Intersect finds the nearest hit of a ray given in the parent's frame. The
// ray is carried into the local frame, tested against the node's primitive
// and its children there, and the winning hit is carried back out.
func (n *Node) Intersect(ray core.Ray) (core.Intersection, bool) {
	local := ray.Transform(n.inverse)

	closest := core.NoIntersection()
	closestDistance := math.Inf(1)
	hitAnything := false

	if n.kind == GeometryNode && n.primitive != nil {
		if hit, ok := n.primitive.Intersect(local); ok {
			if n.material != nil {
				hit.Material = n.material
			}
			closest = hit
			closestDistance = hit.Distance(local.Origin)
			hitAnything = true
		}
	}

	for _, child := range n.children {
		hit, ok := child.Intersect(local)
		if !ok {
			continue
		}
		if distance := hit.Distance(local.Origin); distance < closestDistance {
			closest = hit
			closestDistance = distance
			hitAnything = true
		}
	}

	if !hitAnything {
		return core.NoIntersection(), false
	}
	return closest.TransformWithInverse(n.transform, n.inverse), true
}
