package integrator

import (
	"github.com/df07/go-scenegraph-raytracer/pkg/core"
)

// Intersector finds the nearest surface along a ray. A scene graph root
// node is the usual implementation.
type Intersector interface {
	Intersect(ray core.Ray) (core.Intersection, bool)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along ray. Rays that escape the scene
	// return background; depth bounds the number of recursive bounces.
	RayColor(ray core.Ray, background core.Vec3, depth int) core.Vec3
}
