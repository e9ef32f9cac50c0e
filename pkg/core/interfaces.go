package core

// Material describes the Phong reflectance of a surface
type Material interface {
	Diffuse() Vec3
	Specular() Vec3
	Shininess() float64
}
