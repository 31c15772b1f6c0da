package math

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
)

// Degrees is an angle measured in degrees.
type Degrees float32

// Radians is an angle measured in radians.
type Radians float32

func (d Degrees) Radians() Radians {
	return Radians(DegToRad(float32(d)))
}

// Add accumulates delta. Mixing units does not compile.
func (d Degrees) Add(delta Degrees) Degrees {
	return d + delta
}

func (r Radians) Radians() Radians {
	return r
}

func (r Radians) Add(delta Radians) Radians {
	return r + delta
}

func (r Radians) Degrees() Degrees {
	return Degrees(RadToDeg(float32(r)))
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}
