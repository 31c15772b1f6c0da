package core

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Mouse state structure
type MouseState struct {
	X       int32
	Y       int32
	Buttons [BUTTON_MAX_BUTTONS]bool // button states (pressed/released)
}

// InputState holds current and previous mouse states and turns raw platform
// callbacks into events on the attached event system.
type InputState struct {
	MouseCurrent  MouseState
	MousePrevious MouseState

	width  int32
	height int32
	events *EventSystem
}

func NewInputState(events *EventSystem) *InputState {
	return &InputState{events: events}
}

// Update copies current states to previous states. Call once per frame.
func (is *InputState) Update() {
	is.MousePrevious = is.MouseCurrent
}

func (is *InputState) IsButtonDown(button Button) bool {
	return is.MouseCurrent.Buttons[button]
}

func (is *InputState) IsButtonUp(button Button) bool {
	return !is.MouseCurrent.Buttons[button]
}

func (is *InputState) WasButtonDown(button Button) bool {
	return is.MousePrevious.Buttons[button]
}

func (is *InputState) MousePosition() (int32, int32) {
	return is.MouseCurrent.X, is.MouseCurrent.Y
}

func (is *InputState) ProcessButton(button Button, pressed bool) {
	if button >= BUTTON_MAX_BUTTONS {
		LogWarn("ignoring unknown mouse button %d", button)
		return
	}
	// If the state changed, fire an event.
	if is.MouseCurrent.Buttons[button] == pressed {
		return
	}
	is.MouseCurrent.Buttons[button] = pressed

	code := EVENT_CODE_BUTTON_RELEASED
	if pressed {
		code = EVENT_CODE_BUTTON_PRESSED
	}
	ctx := EventContext{}
	ctx.Data.U16[0] = uint16(button)
	is.events.Fire(code, is, ctx)
}

func (is *InputState) ProcessMouseMove(x, y int32) {
	// Only process if actually different
	if is.MouseCurrent.X == x && is.MouseCurrent.Y == y {
		return
	}
	dx := x - is.MouseCurrent.X
	dy := y - is.MouseCurrent.Y
	is.MouseCurrent.X = x
	is.MouseCurrent.Y = y

	ctx := EventContext{}
	ctx.Data.I32[0] = x
	ctx.Data.I32[1] = y
	ctx.Data.I32[2] = dx
	ctx.Data.I32[3] = dy
	is.events.Fire(EVENT_CODE_MOUSE_MOVED, is, ctx)
}

func (is *InputState) ProcessMouseWheel(zDelta int8) {
	ctx := EventContext{}
	ctx.Data.I8[0] = zDelta
	is.events.Fire(EVENT_CODE_MOUSE_WHEEL, is, ctx)
}

func (is *InputState) ProcessResize(width, height int32) {
	if is.width == width && is.height == height {
		return
	}
	is.width = width
	is.height = height

	ctx := EventContext{}
	ctx.Data.I32[0] = width
	ctx.Data.I32[1] = height
	is.events.Fire(EVENT_CODE_RESIZED, is, ctx)
}
