package components

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/orbitview/engine/core"
	"github.com/spaghettifunk/orbitview/engine/math"
	"golang.org/x/image/math/f32"
)

/**
 * @brief A camera that orbits a pivot. Yaw and pitch rotate around the
 * pivot, the shift moves the pivot in screen space and along the view axis.
 * Not safe for concurrent use; the owner serializes access.
 */
type OrbitCamera struct {
	config OrbitCameraConfig

	fovY   math.Radians
	width  int
	height int

	/** @brief Accumulated, never clamped or wrapped. */
	yaw   math.Degrees
	pitch math.Degrees
	/** @brief Horizontal, vertical, signed distance. */
	shift f32.Vec3
}

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

var (
	worldUp    = f32.Vec3{0, 1, 0}
	worldRight = f32.Vec3{1, 0, 0}
)

func NewOrbitCamera(config *OrbitCameraConfig) (*OrbitCamera, error) {
	cfg := DefaultOrbitCameraConfig()
	if config != nil {
		cfg = *config
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &OrbitCamera{config: cfg}
	c.Reset()
	return c, nil
}

// Reset restores the configured initial state.
func (c *OrbitCamera) Reset() {
	c.fovY = c.config.FovY()
	c.width = c.config.Width
	c.height = c.config.Height
	c.yaw = 0
	c.pitch = 0
	c.shift = f32.Vec3(c.config.InitialShift)
}

// SetConfig applies a new configuration while keeping the current orientation,
// shift and viewport.
func (c *OrbitCamera) SetConfig(config OrbitCameraConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	c.config = config
	c.fovY = config.FovY()
	return nil
}

func (c *OrbitCamera) Config() OrbitCameraConfig {
	return c.config
}

func (c *OrbitCamera) FovY() math.Radians {
	return c.fovY
}

func (c *OrbitCamera) Size() (int, int) {
	return c.width, c.height
}

func (c *OrbitCamera) Yaw() math.Degrees {
	return c.yaw
}

func (c *OrbitCamera) Pitch() math.Degrees {
	return c.pitch
}

func (c *OrbitCamera) Shift() [3]float32 {
	return c.shift
}

// Distance is the signed view axis component of the shift.
func (c *OrbitCamera) Distance() float32 {
	return c.shift[2]
}

// Resize stores the viewport size. Non-positive sizes are rejected and leave the camera untouched.
func (c *OrbitCamera) Resize(width, height int) error {
	if width == c.width && height == c.height {
		return nil
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", core.ErrInvalidViewport, width, height)
	}
	c.width = width
	c.height = height
	return nil
}

func (c *OrbitCamera) Rotate(dYaw, dPitch int) {
	c.yaw = c.yaw.Add(math.Degrees(dYaw))
	c.pitch = c.pitch.Add(math.Degrees(dPitch))
}

// Pan moves the pivot so a drag of (dx, dy) pixels follows the cursor at the current distance.
func (c *OrbitCamera) Pan(dx, dy int) {
	factor := math32.Tan(float32(c.fovY)*0.5) * 2 * math32.Abs(c.shift[2]) / float32(c.height)
	c.shift[0] -= float32(dx) * factor
	c.shift[1] += float32(dy) * factor
}

func (c *OrbitCamera) Dolly(delta int) {
	if delta > 0 {
		c.shift[2] *= c.config.DollyIn
	} else if delta < 0 {
		c.shift[2] *= c.config.DollyOut
	}
}

/**
 * @brief Writes the projection and view matrices for the current state.
 * Yaw rotates about world up, pitch about world right, yaw is applied first.
 *
 * @param projection Destination of the perspective matrix.
 * @param view Destination of the view matrix.
 * @return An error if the projection parameters are degenerate.
 */
func (c *OrbitCamera) ComputeMatrices(projection, view math.Mat4) error {
	aspectRatio := float32(c.width) / float32(c.height)
	if _, err := math.PerspectiveRH(projection, c.fovY, aspectRatio, c.config.Near, c.config.Far); err != nil {
		return err
	}

	var yawBuf, pitchBuf, rotBuf f32.Vec4
	up, right := worldUp, worldRight
	yaw := math.QuaternionFromAxisAngle(math.NewQuaternion(&yawBuf), math.NewVec3(&up), c.yaw.Radians())
	pitch := math.QuaternionFromAxisAngle(math.NewQuaternion(&pitchBuf), math.NewVec3(&right), c.pitch.Radians())
	rot := math.MultiplyQuaternions(math.NewQuaternion(&rotBuf), yaw, pitch)

	shift := c.shift
	math.RigidTransform(view, rot, math.NewVec3(&shift))
	return nil
}
