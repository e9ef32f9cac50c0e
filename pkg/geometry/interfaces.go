package geometry

import (
	"github.com/df07/go-scenegraph-raytracer/pkg/core"
)

// Primitive is a shape defined in its own canonical space. Intersect returns
// the nearest hit with a non-negative ray parameter; misses, including
// degenerate configurations, are reported as false and never as errors.
// The returned intersection carries no material.
type Primitive interface {
	Intersect(ray core.Ray) (core.Intersection, bool)
}
