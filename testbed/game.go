package testbed

import (
	"github.com/spaghettifunk/orbitview/engine"
	"github.com/spaghettifunk/orbitview/engine/core"
)

// InputStep is one scripted platform callback.
type InputStep struct {
	Name   string
	Button core.Button
	Press  *bool
	MoveX  int32
	MoveY  int32
	Move   bool
	Wheel  int8
	Width  int32
	Height int32
}

func press(b core.Button, down bool) InputStep {
	return InputStep{Name: "button", Button: b, Press: &down}
}

func move(x, y int32) InputStep {
	return InputStep{Name: "move", MoveX: x, MoveY: y, Move: true}
}

// DefaultScript orbits, pans and dollies the camera in a 1280x720 window.
func DefaultScript() []InputStep {
	return []InputStep{
		{Name: "resize", Width: 1280, Height: 720},
		move(640, 360),
		press(core.BUTTON_LEFT, true),
		move(700, 340),
		move(760, 330),
		press(core.BUTTON_LEFT, false),
		press(core.BUTTON_RIGHT, true),
		move(740, 350),
		press(core.BUTTON_RIGHT, false),
		{Name: "wheel", Wheel: 1},
		{Name: "wheel", Wheel: 1},
		{Name: "wheel", Wheel: -1},
	}
}

type TestGame struct {
	Engine *engine.Engine
	Script []InputStep
	// Frames records one view matrix per step, for inspection.
	Frames []engine.FrameMatrices
}

func NewTestGame(e *engine.Engine, script []InputStep) *TestGame {
	return &TestGame{Engine: e, Script: script}
}

func (g *TestGame) apply(step InputStep) {
	in := g.Engine.Input
	switch {
	case step.Press != nil:
		in.ProcessButton(step.Button, *step.Press)
	case step.Move:
		in.ProcessMouseMove(step.MoveX, step.MoveY)
	case step.Wheel != 0:
		in.ProcessMouseWheel(step.Wheel)
	case step.Width != 0 || step.Height != 0:
		in.ProcessResize(step.Width, step.Height)
	}
}

// Run replays the script, computing and logging the matrices after every step.
func (g *TestGame) Run() error {
	core.LogInfo("replaying %d input steps...", len(g.Script))
	for i, step := range g.Script {
		g.apply(step)
		frame, err := g.Engine.Frame()
		if err != nil {
			return err
		}
		g.Frames = append(g.Frames, *frame)

		cam := g.Engine.Camera()
		core.LogDebug("step %02d %-6s yaw=%v pitch=%v shift=%v", i, step.Name, cam.Yaw(), cam.Pitch(), cam.Shift())
	}

	if n := len(g.Frames); n > 0 {
		last := g.Frames[n-1]
		core.LogInfo("projection: %v", last.Projection)
		core.LogInfo("view: %v", last.View)
	}
	return nil
}
