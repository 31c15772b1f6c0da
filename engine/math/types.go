package math

/** @brief A view of 3 floats, typically a direction or translation. */
type Vec3 struct {
	View[float32]
}

/**
 * @brief A view of a 3x3 matrix in row major order.
 *
 * [0, 1, 2][x]    [0x + 1y + 2z]
 * [3, 4, 5][y] => [3x + 4y + 5z]
 * [6, 7, 8][z]    [6x + 7y + 8z]
 */
type Mat3 struct {
	View[float32]
}

/**
 * @brief A read-only row of a Mat3. It still aliases the matrix, so writes to
 * the matrix storage show up through the row.
 */
type Mat3Row struct {
	row View[float32]
}

/**
 * @brief A view of a 4x4 matrix in row major order, rows of 4.
 * After RigidTransform row 3 holds the translation [tx, ty, tz, 1].
 */
type Mat4 struct {
	View[float32]
}

/** @brief A view of a quaternion laid out as [x, y, z, w]. */
type Quaternion struct {
	View[float32]
}
