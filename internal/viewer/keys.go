package viewer

import "github.com/Faultbox/hmdview/internal/engine/camera"

// Key is a key the viewer reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	Key0
	Key1
	Key2
	Key3
	Key4
	KeyP
	KeyG
	KeyF12
)

// controlKeys maps the number keys to the control they arm.
var controlKeys = map[Key]camera.Control{
	Key0: camera.ControlNone,
	Key1: camera.ControlModel,
	Key2: camera.ControlViewerPosition,
	Key3: camera.ControlViewerTarget,
	Key4: camera.ControlClipNear,
}
