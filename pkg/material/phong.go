package material

import (
	"github.com/df07/go-scenegraph-raytracer/pkg/core"
)

// Phong represents a surface lit by the Phong reflection model
type Phong struct {
	Kd       core.Vec3 // Diffuse reflectance
	Ks       core.Vec3 // Specular reflectance, also the mirror reflection weight
	Exponent float64   // Specular exponent
}

// NewPhong creates a new Phong material
func NewPhong(kd, ks core.Vec3, shininess float64) *Phong {
	return &Phong{Kd: kd, Ks: ks, Exponent: shininess}
}

// Diffuse implements core.Material
func (p *Phong) Diffuse() core.Vec3 { return p.Kd }

// Specular implements core.Material
func (p *Phong) Specular() core.Vec3 { return p.Ks }

// Shininess implements core.Material
func (p *Phong) Shininess() float64 { return p.Exponent }
