package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MachineEpsilon is the difference between 1.0 and the next representable float64
const MachineEpsilon = 0x1p-52

// Mat4 is a homogeneous 4x4 affine transform (column-major, mathgl layout)
type Mat4 = mgl64.Mat4

// Identity returns the identity transform
func Identity() Mat4 {
	return mgl64.Ident4()
}

// Translation returns a transform that moves points by v
func Translation(v Vec3) Mat4 {
	return mgl64.Translate3D(v.X, v.Y, v.Z)
}

// Scaling returns a transform that scales each axis by the matching component of v
func Scaling(v Vec3) Mat4 {
	return mgl64.Scale3D(v.X, v.Y, v.Z)
}

// Rotation returns a right-handed rotation of angle radians about axis
func Rotation(angle float64, axis Vec3) Mat4 {
	return mgl64.HomogRotate3D(angle, axis.Normalize().Mgl())
}

// TransformPoint maps p as a position (w = 1)
func TransformPoint(m Mat4, p Vec3) Vec3 {
	return FromMgl(m.Mul4x1(p.Vec4(1)).Vec3())
}

// TransformVector maps v as a direction (w = 0), ignoring translation
func TransformVector(m Mat4, v Vec3) Vec3 {
	return FromMgl(m.Mul4x1(v.Vec4(0)).Vec3())
}

// Invert returns the inverse of m. It reports false when m is singular
// or contains non-finite entries.
func Invert(m Mat4) (Mat4, bool) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Mat4{}, false
	}
	return m.Inv(), true
}
