package math

import "golang.org/x/image/math/f32"

// NewMat4 views a 16-float row major array (f32.Mat4, mgl32.Mat4, [16]float32).
func NewMat4[A ~[16]float32](a *A) Mat4 {
	return Mat4{fromArray((*a)[:])}
}

func Mat4Of[A any](agg *A) (Mat4, error) {
	v, err := Alias[float32](agg, 16)
	return Mat4{v}, err
}

// Row returns row i (4 floats) as a view into the same storage.
func (m Mat4) Row(i int) View[float32] {
	return m.Sub(4*i, 4)
}

// Row3 holds the translation after RigidTransform.
func (m Mat4) Row3() View[float32] {
	return m.Row(3)
}

func (m Mat4) SetIdentity() Mat4 {
	id := Identity4()
	m.CopyFrom(id[:])
	return m
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 */
func Identity4() f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
