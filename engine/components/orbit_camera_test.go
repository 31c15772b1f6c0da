package components

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/orbitview/engine/core"
	"github.com/spaghettifunk/orbitview/engine/math"
	"golang.org/x/image/math/f32"
)

func newTestCamera(t *testing.T) *OrbitCamera {
	t.Helper()
	c, err := NewOrbitCamera(nil)
	if err != nil {
		t.Fatalf("NewOrbitCamera: %v", err)
	}
	return c
}

func TestNewOrbitCameraDefaults(t *testing.T) {
	c := newTestCamera(t)

	if w, h := c.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %dx%d, want 1x1", w, h)
	}
	if got := c.Shift(); got != [3]float32{0, -0.8, -5} {
		t.Errorf("Shift() = %v", got)
	}
	if got, want := c.FovY(), math.Degrees(30).Radians(); got != want {
		t.Errorf("FovY() = %v, want %v", got, want)
	}
}

func TestNewOrbitCameraRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultOrbitCameraConfig()
	cfg.Near = 0
	if _, err := NewOrbitCamera(&cfg); !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("got %v, want ErrInvalidConfig", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*OrbitCameraConfig)
	}{
		{"zero fov", func(c *OrbitCameraConfig) { c.FovYDegrees = 0 }},
		{"fov of 180", func(c *OrbitCameraConfig) { c.FovYDegrees = 180 }},
		{"negative near", func(c *OrbitCameraConfig) { c.Near = -1 }},
		{"far before near", func(c *OrbitCameraConfig) { c.Far = c.Near / 2 }},
		{"dolly in of 1", func(c *OrbitCameraConfig) { c.DollyIn = 1 }},
		{"dolly out below 1", func(c *OrbitCameraConfig) { c.DollyOut = 0.5 }},
		{"zero distance", func(c *OrbitCameraConfig) { c.InitialShift[2] = 0 }},
		{"zero height", func(c *OrbitCameraConfig) { c.Height = 0 }},
		{"NaN distance", func(c *OrbitCameraConfig) { c.InitialShift[2] = math32.NaN() }},
		{"infinite horizontal shift", func(c *OrbitCameraConfig) { c.InitialShift[0] = math32.Inf(-1) }},
		{"NaN near", func(c *OrbitCameraConfig) { c.Near = math32.NaN() }},
		{"infinite far", func(c *OrbitCameraConfig) { c.Far = math32.Inf(1) }},
		{"NaN dolly in", func(c *OrbitCameraConfig) { c.DollyIn = math32.NaN() }},
		{"infinite dolly out", func(c *OrbitCameraConfig) { c.DollyOut = math32.Inf(1) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultOrbitCameraConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, core.ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}

	cfg := DefaultOrbitCameraConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestResize(t *testing.T) {
	c := newTestCamera(t)

	if err := c.Resize(800, 600); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	before := *c
	if err := c.Resize(800, 600); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if *c != before {
		t.Errorf("second identical Resize changed state")
	}

	for _, size := range [][2]int{{0, 600}, {800, 0}, {-1, 600}, {800, -5}} {
		if err := c.Resize(size[0], size[1]); !errors.Is(err, core.ErrInvalidViewport) {
			t.Errorf("Resize(%d, %d) = %v, want ErrInvalidViewport", size[0], size[1], err)
		}
	}
	if w, h := c.Size(); w != 800 || h != 600 {
		t.Errorf("rejected resize changed size to %dx%d", w, h)
	}
}

func TestRotateAccumulatesWithoutWrapping(t *testing.T) {
	c := newTestCamera(t)
	for i := 0; i < 5; i++ {
		c.Rotate(100, -30)
	}
	if c.Yaw() != 500 || c.Pitch() != -150 {
		t.Errorf("yaw/pitch = %v/%v, want 500/-150", c.Yaw(), c.Pitch())
	}
}

func TestDollyDecaysMonotonically(t *testing.T) {
	c := newTestCamera(t)

	prev := math32.Abs(c.Distance())
	for i := 0; i < 200; i++ {
		c.Dolly(1)
		d := math32.Abs(c.Distance())
		if d >= prev || d == 0 {
			t.Fatalf("step %d: distance %v after %v", i, d, prev)
		}
		prev = d
	}

	c.Reset()
	c.Dolly(0)
	if c.Distance() != -5 {
		t.Errorf("Dolly(0) changed distance to %v", c.Distance())
	}
	c.Dolly(-3)
	if got := c.Distance(); math32.Abs(got-(-5.5)) > 1e-5 {
		t.Errorf("Dolly(-3) distance = %v, want -5.5", got)
	}
}

func TestDollyUsesConfiguredFactors(t *testing.T) {
	cfg := DefaultOrbitCameraConfig()
	cfg.DollyIn = 0.5
	cfg.DollyOut = 2
	c, err := NewOrbitCamera(&cfg)
	if err != nil {
		t.Fatalf("NewOrbitCamera: %v", err)
	}
	c.Dolly(1)
	if c.Distance() != -2.5 {
		t.Errorf("distance = %v, want -2.5", c.Distance())
	}
	c.Dolly(-1)
	c.Dolly(-1)
	if c.Distance() != -10 {
		t.Errorf("distance = %v, want -10", c.Distance())
	}
}

func TestPanScalesWithDistance(t *testing.T) {
	c := newTestCamera(t)
	if err := c.Resize(640, 480); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	pan := func() (float32, float32) {
		before := c.Shift()
		c.Pan(10, 10)
		after := c.Shift()
		return after[0] - before[0], after[1] - before[1]
	}

	dxFar, dyFar := pan()
	if dxFar >= 0 || dyFar <= 0 {
		t.Fatalf("pan direction: dx=%v dy=%v, want horizontal decrease and vertical increase", dxFar, dyFar)
	}

	distFar := math32.Abs(c.Distance())
	for i := 0; i < 5; i++ {
		c.Dolly(1)
	}
	distNear := math32.Abs(c.Distance())

	dxNear, dyNear := pan()
	ratio := distNear / distFar
	if math32.Abs(dxNear/dxFar-ratio) > 1e-4 || math32.Abs(dyNear/dyFar-ratio) > 1e-4 {
		t.Errorf("pan scale %v/%v, want %v", dxNear/dxFar, dyNear/dyFar, ratio)
	}

	want := math32.Tan(float32(c.FovY())*0.5) * 2 * distNear / 480 * 10
	if math32.Abs(dyNear-want) > 1e-5 {
		t.Errorf("vertical pan = %v, want %v", dyNear, want)
	}
}

func TestComputeMatricesDeterministic(t *testing.T) {
	c := newTestCamera(t)
	_ = c.Resize(1280, 720)
	c.Rotate(37, -12)
	c.Pan(5, -3)
	c.Dolly(1)

	var p1, v1, p2, v2 f32.Mat4
	if err := c.ComputeMatrices(math.NewMat4(&p1), math.NewMat4(&v1)); err != nil {
		t.Fatalf("ComputeMatrices: %v", err)
	}
	if err := c.ComputeMatrices(math.NewMat4(&p2), math.NewMat4(&v2)); err != nil {
		t.Fatalf("ComputeMatrices: %v", err)
	}
	if p1 != p2 || v1 != v2 {
		t.Errorf("matrices differ between calls")
	}
}

func TestComputeMatricesLayout(t *testing.T) {
	c := newTestCamera(t)
	_ = c.Resize(200, 100)

	var projection, view f32.Mat4
	if err := c.ComputeMatrices(math.NewMat4(&projection), math.NewMat4(&view)); err != nil {
		t.Fatalf("ComputeMatrices: %v", err)
	}

	// No rotation: the view is the identity with the shift in row 3.
	want := f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, -0.8, -5, 1,
	}
	if view != want {
		t.Errorf("view = %v, want %v", view, want)
	}

	f := 1 / math32.Tan(float32(c.FovY())/2)
	if math32.Abs(projection[5]-f) > 1e-4 || math32.Abs(projection[0]-f/2) > 1e-4 {
		t.Errorf("projection scale = %v/%v, want %v/%v", projection[0], projection[5], f/2, f)
	}
	if projection[11] != -1 {
		t.Errorf("projection[11] = %v, want -1", projection[11])
	}
}

func TestComputeMatricesAppliesYawThenPitch(t *testing.T) {
	c := newTestCamera(t)
	c.Rotate(90, 90)

	var projection, view f32.Mat4
	if err := c.ComputeMatrices(math.NewMat4(&projection), math.NewMat4(&view)); err != nil {
		t.Fatalf("ComputeMatrices: %v", err)
	}

	// +X yawed to -Z, then pitched about +X to +Y.
	row0 := view[0:3]
	want := []float32{0, 1, 0}
	for i := range want {
		if math32.Abs(row0[i]-want[i]) > 1e-5 {
			t.Fatalf("row0 = %v, want %v", row0, want)
		}
	}
}

func TestSetConfigKeepsState(t *testing.T) {
	c := newTestCamera(t)
	c.Rotate(10, 20)
	c.Dolly(1)
	shift := c.Shift()

	cfg := DefaultOrbitCameraConfig()
	cfg.FovYDegrees = 60
	if err := c.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if c.Shift() != shift || c.Yaw() != 10 || c.Pitch() != 20 {
		t.Errorf("SetConfig reset orientation")
	}
	if c.FovY() != math.Degrees(60).Radians() {
		t.Errorf("FovY not updated")
	}

	cfg.Far = 0
	if err := c.SetConfig(cfg); !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("got %v, want ErrInvalidConfig", err)
	}
	if c.Config().FovYDegrees != 60 {
		t.Errorf("invalid config was applied")
	}
}
