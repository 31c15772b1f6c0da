package math

// NewQuaternion views a 4-float array as [x, y, z, w].
func NewQuaternion[A ~[4]float32](a *A) Quaternion {
	return Quaternion{fromArray((*a)[:])}
}

func QuaternionOf[A any](agg *A) (Quaternion, error) {
	v, err := Alias[float32](agg, 4)
	return Quaternion{v}, err
}

func (q Quaternion) X() float32 { return q.At(0) }
func (q Quaternion) Y() float32 { return q.At(1) }
func (q Quaternion) Z() float32 { return q.At(2) }
func (q Quaternion) W() float32 { return q.At(3) }

func (q Quaternion) SetXYZW(x, y, z, w float32) Quaternion {
	q.Set(0, x)
	q.Set(1, y)
	q.Set(2, z)
	q.Set(3, w)
	return q
}

func (q Quaternion) SetIdentity() Quaternion {
	return q.SetXYZW(0, 0, 0, 1)
}
