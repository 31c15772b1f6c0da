package components

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/orbitview/engine/core"
	"github.com/spaghettifunk/orbitview/engine/math"
)

/** @brief The orbit camera configuration. Tuning values, not derived constraints. */
type OrbitCameraConfig struct {
	/** @brief Vertical field of view in degrees. */
	FovYDegrees float32 `toml:"fov_y_degrees"`
	/** @brief Near clipping plane distance. */
	Near float32 `toml:"near"`
	/** @brief Far clipping plane distance. */
	Far float32 `toml:"far"`
	/** @brief Distance multiplier applied when dollying toward the pivot. */
	DollyIn float32 `toml:"dolly_in"`
	/** @brief Distance multiplier applied when dollying away from the pivot. */
	DollyOut float32 `toml:"dolly_out"`
	/**
	 * @brief Initial pivot shift: horizontal, vertical and signed distance
	 * along the view axis (negative moves away from the origin).
	 */
	InitialShift [3]float32 `toml:"initial_shift"`
	/** @brief Initial viewport size. */
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

func DefaultOrbitCameraConfig() OrbitCameraConfig {
	return OrbitCameraConfig{
		FovYDegrees:  30,
		Near:         0.01,
		Far:          1000,
		DollyIn:      0.9,
		DollyOut:     1.1,
		InitialShift: [3]float32{0, -0.8, -5},
		Width:        1,
		Height:       1,
	}
}

func (c *OrbitCameraConfig) FovY() math.Radians {
	return math.Degrees(c.FovYDegrees).Radians()
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// Validate reports the first field that would produce a degenerate camera.
func (c *OrbitCameraConfig) Validate() error {
	for i, v := range c.InitialShift {
		if !finite(v) {
			return fmt.Errorf("%w: initial_shift[%d] %v must be finite", core.ErrInvalidConfig, i, v)
		}
	}
	switch {
	case !(c.FovYDegrees > 0 && c.FovYDegrees < 180):
		return fmt.Errorf("%w: fov_y_degrees %v must be in (0, 180)", core.ErrInvalidConfig, c.FovYDegrees)
	case !finite(c.Near) || !finite(c.Far):
		return fmt.Errorf("%w: near %v and far %v must be finite", core.ErrInvalidConfig, c.Near, c.Far)
	case !finite(c.DollyIn) || !finite(c.DollyOut):
		return fmt.Errorf("%w: dolly_in %v and dolly_out %v must be finite", core.ErrInvalidConfig, c.DollyIn, c.DollyOut)
	case !(c.Near > 0):
		return fmt.Errorf("%w: near %v must be > 0", core.ErrInvalidConfig, c.Near)
	case !(c.Far > c.Near):
		return fmt.Errorf("%w: far %v must be > near %v", core.ErrInvalidConfig, c.Far, c.Near)
	case !(c.DollyIn > 0 && c.DollyIn < 1):
		return fmt.Errorf("%w: dolly_in %v must be in (0, 1)", core.ErrInvalidConfig, c.DollyIn)
	case !(c.DollyOut > 1):
		return fmt.Errorf("%w: dolly_out %v must be > 1", core.ErrInvalidConfig, c.DollyOut)
	case c.InitialShift[2] == 0:
		return fmt.Errorf("%w: initial_shift distance must be non-zero", core.ErrInvalidConfig)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d must be positive", core.ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}
