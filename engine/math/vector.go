package math

// NewVec3 views a 3-float array. The array type fixes the size at compile time.
func NewVec3[A ~[3]float32](a *A) Vec3 {
	return Vec3{fromArray((*a)[:])}
}

// Vec3Of views an arbitrary aggregate, such as a struct of three float32 fields.
func Vec3Of[A any](agg *A) (Vec3, error) {
	v, err := Alias[float32](agg, 3)
	return Vec3{v}, err
}

func (v Vec3) X() float32 { return v.At(0) }
func (v Vec3) Y() float32 { return v.At(1) }
func (v Vec3) Z() float32 { return v.At(2) }

func (v Vec3) SetXYZ(x, y, z float32) {
	v.Set(0, x)
	v.Set(1, y)
	v.Set(2, z)
}

// dot of a row against three scalars, used for strided columns.
func dot(lhs Mat3Row, rx, ry, rz float32) float32 {
	return lhs.At(0)*rx + lhs.At(1)*ry + lhs.At(2)*rz
}
