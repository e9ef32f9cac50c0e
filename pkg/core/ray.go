package core

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray mapped by m: the origin as a position and the
// direction as a vector, renormalized so parameters stay distances.
func (r Ray) Transform(m Mat4) Ray {
	return NewRay(TransformPoint(m, r.Origin), TransformVector(m, r.Direction))
}
