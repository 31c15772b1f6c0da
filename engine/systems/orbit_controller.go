package systems

import (
	"github.com/spaghettifunk/orbitview/engine/components"
	"github.com/spaghettifunk/orbitview/engine/core"
)

// OrbitController turns input events into camera operations:
//
//	left drag           rotate (yaw, pitch)
//	right/middle drag   pan
//	wheel               dolly
//	resize              viewport
type OrbitController struct {
	camera *components.OrbitCamera
	events *core.EventSystem
	input  *core.InputState
}

var controllerCodes = []core.SystemEventCode{
	core.EVENT_CODE_MOUSE_MOVED,
	core.EVENT_CODE_MOUSE_WHEEL,
	core.EVENT_CODE_RESIZED,
}

func NewOrbitController(camera *components.OrbitCamera, events *core.EventSystem, input *core.InputState) *OrbitController {
	oc := &OrbitController{
		camera: camera,
		events: events,
		input:  input,
	}
	for _, code := range controllerCodes {
		events.Register(code, oc, oc.onEvent)
	}
	return oc
}

func (oc *OrbitController) Camera() *components.OrbitCamera {
	return oc.camera
}

// SetCamera switches the driven camera without re-registering.
func (oc *OrbitController) SetCamera(camera *components.OrbitCamera) {
	oc.camera = camera
}

func (oc *OrbitController) Shutdown() {
	for _, code := range controllerCodes {
		oc.events.Unregister(code, oc)
	}
}

func (oc *OrbitController) onEvent(code core.SystemEventCode, sender interface{}, listener interface{}, context core.EventContext) bool {
	switch code {
	case core.EVENT_CODE_MOUSE_MOVED:
		dx := int(context.Data.I32[2])
		dy := int(context.Data.I32[3])
		switch {
		case oc.input.IsButtonDown(core.BUTTON_LEFT):
			oc.camera.Rotate(dx, dy)
			return true
		case oc.input.IsButtonDown(core.BUTTON_RIGHT), oc.input.IsButtonDown(core.BUTTON_MIDDLE):
			oc.camera.Pan(dx, dy)
			return true
		}
		return false

	case core.EVENT_CODE_MOUSE_WHEEL:
		oc.camera.Dolly(int(context.Data.I8[0]))
		return true

	case core.EVENT_CODE_RESIZED:
		w := int(context.Data.I32[0])
		h := int(context.Data.I32[1])
		if err := oc.camera.Resize(w, h); err != nil {
			core.LogWarn("orbit camera resize ignored: %s", err)
		}
		// Let other listeners see the resize as well.
		return false
	}
	return false
}
