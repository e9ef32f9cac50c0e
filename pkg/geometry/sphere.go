package geometry

import (
	"github.com/df07/go-scenegraph-raytracer/pkg/core"
)

// Sphere represents a sphere with an explicit center and radius
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (core.Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	roots := QuadraticRoots(a, b, c)

	var impact float64
	switch len(roots) {
	case 0:
		return core.NoIntersection(), false
	case 1:
		impact = roots[0]
	default:
		// Entry point unless it lies behind the origin, then the exit point
		impact = min(roots[0], roots[1])
		if impact < 0 {
			impact = max(roots[0], roots[1])
		}
	}

	// Behind the ray origin
	if impact < 0 {
		return core.NoIntersection(), false
	}

	point := ray.At(impact)
	return core.Intersection{
		Point:  point,
		Normal: point.Subtract(s.Center).Normalize(),
	}, true
}

// unitSphere is the canonical sphere every UnitSphere delegates to
var unitSphere = NewSphere(core.NewVec3(0, 0, 0), 1)

// UnitSphere is the sphere of radius 1 centered at the origin. Placement and
// size come from the scene graph transforms above it.
type UnitSphere struct{}

// NewUnitSphere creates a unit sphere
func NewUnitSphere() UnitSphere {
	return UnitSphere{}
}

// Intersect tests the ray against the canonical sphere
func (UnitSphere) Intersect(ray core.Ray) (core.Intersection, bool) {
	return unitSphere.Intersect(ray)
}
