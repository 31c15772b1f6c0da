package math

import (
	"fmt"
	m "math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/orbitview/engine/core"
)

// The functions below marshal views into mgl32 values, let mgl32 do the math
// and copy the result back into the caller supplied destination view.
//
// mgl32.Mat4 is column major with column vectors. Its memory image is the
// row major, row vector layout used by Mat4 (translation in elements 12..14),
// so matrices are copied element for element. mgl32.Quat is {W, V} and gets
// reordered to [x, y, z, w].

func loadQuat(q Quaternion) mgl32.Quat {
	return mgl32.Quat{W: q.W(), V: mgl32.Vec3{q.X(), q.Y(), q.Z()}}
}

func storeQuat(dst Quaternion, q mgl32.Quat) Quaternion {
	return dst.SetXYZW(q.V[0], q.V[1], q.V[2], q.W)
}

func loadVec3(v Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), v.Y(), v.Z()}
}

func storeMat4(dst Mat4, mat mgl32.Mat4) Mat4 {
	dst.CopyFrom(mat[:])
	return dst
}

/**
 * @brief Multiplies the provided quaternions into dst. The result applies the
 * lhs rotation first and the rhs rotation second (Hamilton product rhs*lhs).
 *
 * @param dst The destination view. May alias lhs or rhs.
 * @param lhs The rotation applied first.
 * @param rhs The rotation applied second.
 * @return dst.
 */
func MultiplyQuaternions(dst, lhs, rhs Quaternion) Quaternion {
	return storeQuat(dst, loadQuat(rhs).Mul(loadQuat(lhs)))
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param dst The destination view.
 * @param axis The axis of rotation. Must be unit length, it is not renormalized.
 * @param angle The angle of rotation.
 * @return dst.
 */
func QuaternionFromAxisAngle(dst Quaternion, axis Vec3, angle Radians) Quaternion {
	return storeQuat(dst, mgl32.QuatRotate(float32(angle), loadVec3(axis)))
}

/**
 * @brief Writes a right handed perspective matrix into dst.
 * Depth maps to the OpenGL clip range [-1, 1], not the Direct3D [0, 1]
 * produced by XMMatrixPerspectiveFovRH. Only elements 10 and 14 differ.
 *
 * @param dst The destination view.
 * @param fovY The vertical field of view, in (0, pi).
 * @param aspectRatio The aspect ratio, > 0.
 * @param nearZ The near clipping plane distance, > 0.
 * @param farZ The far clipping plane distance, > nearZ.
 * @return dst, or ErrInvalidProjection when a precondition fails. dst is untouched on error.
 */
func PerspectiveRH(dst Mat4, fovY Radians, aspectRatio, nearZ, farZ float32) (Mat4, error) {
	fov := float32(fovY)
	switch {
	case !(fov > 0 && fov < K_PI):
		return dst, fmt.Errorf("%w: field of view %v rad outside (0, pi)", core.ErrInvalidProjection, fov)
	case !(aspectRatio > 0) || m.IsInf(float64(aspectRatio), 0):
		return dst, fmt.Errorf("%w: aspect ratio %v", core.ErrInvalidProjection, aspectRatio)
	case !(nearZ > 0 && nearZ < farZ) || m.IsInf(float64(farZ), 0):
		return dst, fmt.Errorf("%w: clip planes near=%v far=%v", core.ErrInvalidProjection, nearZ, farZ)
	}
	return storeMat4(dst, mgl32.Perspective(fov, aspectRatio, nearZ, farZ)), nil
}

/**
 * @brief Writes a rotation plus translation matrix into dst.
 * Row 3 is overwritten with [tx, ty, tz, 1].
 *
 * @param dst The destination view.
 * @param rotation The rotation quaternion.
 * @param translation The translation.
 * @return dst.
 */
func RigidTransform(dst Mat4, rotation Quaternion, translation Vec3) Mat4 {
	storeMat4(dst, loadQuat(rotation).Mat4())
	t := dst.Row3()
	t.Set(0, translation.X())
	t.Set(1, translation.Y())
	t.Set(2, translation.Z())
	t.Set(3, 1)
	return dst
}
