package core

import "math"

// Intersection records where a ray met a surface
type Intersection struct {
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Unit surface normal
	Material Material // Surface material, nil until a geometry node claims the hit
}

// NoIntersection returns the empty intersection: a point at infinity on every
// axis, a zero normal and no material.
func NoIntersection() Intersection {
	inf := math.Inf(1)
	return Intersection{Point: Vec3{inf, inf, inf}}
}

// IsSet reports whether the intersection holds a finite point
func (i Intersection) IsSet() bool {
	return !i.Point.IsInf()
}

// Distance returns the distance from origin to the intersection point
func (i Intersection) Distance(origin Vec3) float64 {
	return i.Point.Distance(origin)
}

// Transform maps the intersection by m: the point directly and the normal by
// the inverse-transpose of m, renormalized.
func (i Intersection) Transform(m Mat4) Intersection {
	return i.TransformWithInverse(m, m.Inv())
}

// TransformWithInverse is Transform for callers that already hold the
// inverse of m
func (i Intersection) TransformWithInverse(m, inverse Mat4) Intersection {
	return Intersection{
		Point:    TransformPoint(m, i.Point),
		Normal:   TransformVector(inverse.Transpose(), i.Normal).Normalize(),
		Material: i.Material,
	}
}
