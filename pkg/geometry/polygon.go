package geometry

import (
	"math"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
)

// polygon is a planar convex polygon whose normal follows the vertex winding
type polygon struct {
	points []core.Vec3
	normal core.Vec3
}

// newPolygon caches the winding normal normalize((p1-p0) x (p2-p0)).
// Collinear points produce a zero normal, which never intersects.
func newPolygon(points ...core.Vec3) polygon {
	normal := points[1].Subtract(points[0]).Cross(points[2].Subtract(points[0])).Normalize()
	return polygon{points: points, normal: normal}
}

// intersect returns the ray parameter and point where the ray crosses the
// polygon. Parallel rays, negative parameters and parameters that are not
// strictly below best are rejected.
func (p polygon) intersect(ray core.Ray, best float64) (float64, core.Vec3, bool) {
	denom := p.normal.Dot(ray.Direction)
	if math.Abs(denom) < core.MachineEpsilon {
		return 0, core.Vec3{}, false
	}

	t := p.points[0].Subtract(ray.Origin).Dot(p.normal) / denom
	if t < 0 || t >= best {
		return 0, core.Vec3{}, false
	}

	point := ray.At(t)
	if !p.contains(point) {
		return 0, core.Vec3{}, false
	}
	return t, point, true
}

// contains reports whether a point on the polygon's plane lies inside it:
// every edge must see the point on the side the normal turns towards.
func (p polygon) contains(point core.Vec3) bool {
	for i, current := range p.points {
		next := p.points[(i+1)%len(p.points)]
		edge := next.Subtract(current)
		if edge.Cross(point.Subtract(current)).Dot(p.normal) < 0 {
			return false
		}
	}
	return true
}
