package lights

import "github.com/df07/go-scenegraph-raytracer/pkg/core"

// PointLight is an omnidirectional light with polynomial distance falloff
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3
	Falloff  [3]float64 // Constant, linear and quadratic attenuation coefficients
}

// NewPointLight creates a point light
func NewPointLight(position, color core.Vec3, falloff [3]float64) PointLight {
	return PointLight{Position: position, Color: color, Falloff: falloff}
}

// NewUnattenuatedLight creates a point light whose intensity does not fall off
func NewUnattenuatedLight(position, color core.Vec3) PointLight {
	return NewPointLight(position, color, [3]float64{1, 0, 0})
}

// Attenuation returns 1 / (c0 + c1*d + c2*d^2) for a distance d from the light
func (l PointLight) Attenuation(distance float64) float64 {
	return 1.0 / (l.Falloff[0] + l.Falloff[1]*distance + l.Falloff[2]*distance*distance)
}

// Radiance returns the light color attenuated for a point at the given distance
func (l PointLight) Radiance(distance float64) core.Vec3 {
	return l.Color.Multiply(l.Attenuation(distance))
}
