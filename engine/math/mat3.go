package math

import "golang.org/x/image/math/f32"

// NewMat3 views a 9-float row major array.
func NewMat3[A ~[9]float32](a *A) Mat3 {
	return Mat3{fromArray((*a)[:])}
}

// Mat3Of views an arbitrary 36 byte aggregate as a Mat3.
func Mat3Of[A any](agg *A) (Mat3, error) {
	v, err := Alias[float32](agg, 9)
	return Mat3{v}, err
}

// Row returns row i as a read-only view into the same storage.
func (m Mat3) Row(i int) Mat3Row {
	return Mat3Row{m.Sub(3*i, 3)}
}

func (m Mat3) Row0() Mat3Row { return m.Row(0) }
func (m Mat3) Row1() Mat3Row { return m.Row(1) }
func (m Mat3) Row2() Mat3Row { return m.Row(2) }

func (r Mat3Row) Len() int         { return r.row.Len() }
func (r Mat3Row) At(i int) float32 { return r.row.At(i) }
func (r Mat3Row) X() float32       { return r.row.At(0) }
func (r Mat3Row) Y() float32       { return r.row.At(1) }
func (r Mat3Row) Z() float32       { return r.row.At(2) }

// Values copies the row out.
func (r Mat3Row) Values() [3]float32 {
	return [3]float32{r.row.At(0), r.row.At(1), r.row.At(2)}
}

/**
 * @brief Creates and returns a 3x3 identity matrix.
 */
func Identity3() f32.Mat3 {
	return f32.Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

/**
 * @brief Returns the row major product lhs * rhs.
 * The result owns its storage since there is no aggregate to alias.
 *
 * @param lhs The left matrix.
 * @param rhs The right matrix.
 * @return The product as a fresh 9-float array.
 */
func Multiply(lhs, rhs Mat3) f32.Mat3 {
	r0, r1, r2 := lhs.Row0(), lhs.Row1(), lhs.Row2()
	return f32.Mat3{
		dot(r0, rhs.At(0), rhs.At(3), rhs.At(6)),
		dot(r0, rhs.At(1), rhs.At(4), rhs.At(7)),
		dot(r0, rhs.At(2), rhs.At(5), rhs.At(8)),
		dot(r1, rhs.At(0), rhs.At(3), rhs.At(6)),
		dot(r1, rhs.At(1), rhs.At(4), rhs.At(7)),
		dot(r1, rhs.At(2), rhs.At(5), rhs.At(8)),
		dot(r2, rhs.At(0), rhs.At(3), rhs.At(6)),
		dot(r2, rhs.At(1), rhs.At(4), rhs.At(7)),
		dot(r2, rhs.At(2), rhs.At(5), rhs.At(8)),
	}
}
