package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/hmdview/pkg/math"
)

// MouseSensitivity is the number of pixels of drag per unit of movement.
const MouseSensitivity float32 = 40

// Control selects which part of the State a drag edits.
type Control int

const (
	ControlNone Control = iota
	ControlModel
	ControlViewerPosition
	ControlViewerTarget
	ControlClipNear
)

// String returns the control name.
func (c Control) String() string {
	switch c {
	case ControlNone:
		return "none"
	case ControlModel:
		return "model"
	case ControlViewerPosition:
		return "viewer-position"
	case ControlViewerTarget:
		return "viewer-target"
	case ControlClipNear:
		return "clip-near"
	default:
		return "unknown"
	}
}

// Modifiers is the keyboard modifier state during a drag.
// Ctrl also covers the command key on macOS.
type Modifiers struct {
	Shift bool
	Ctrl  bool
}

// ComputeMovement converts the pointer delta since prev into movement units,
// flipping Y so that up is positive.
func ComputeMovement(x, y float32, prev math.Vec2) math.Vec2 {
	return math.Vec2{
		X: (x - prev.X) / MouseSensitivity,
		Y: -(y - prev.Y) / MouseSensitivity,
	}
}

// ApplyMovement maps a movement onto the part of s selected by control.
func ApplyMovement(s *State, control Control, mods Modifiers, movement math.Vec2) {
	switch control {
	case ControlNone:
	case ControlModel:
		UpdateModel(s, mods, movement)
	case ControlViewerPosition:
		s.ViewerPosition = translateXYZ(s.ViewerPosition, mods, movement)
	case ControlViewerTarget:
		s.ViewerTarget = translateXYZ(s.ViewerTarget, mods, movement)
	case ControlClipNear:
		UpdateClipNear(s, movement)
	}
}

// UpdateModel translates the model in XY with shift, in Z with ctrl, and
// rotates it (one degree per unit) otherwise.
func UpdateModel(s *State, mods Modifiers, movement math.Vec2) {
	switch {
	case mods.Shift && !mods.Ctrl:
		s.ModelTranslation.X += movement.X
		s.ModelTranslation.Y += movement.Y
	case !mods.Shift && mods.Ctrl:
		s.ModelTranslation.Z += movement.Y
	default:
		s.ModelRotation.X += degToRad(movement.X)
		s.ModelRotation.Y += degToRad(movement.Y)
	}
}

// UpdateClipNear moves the near plane and keeps it within [1, ClipFar].
func UpdateClipNear(s *State, movement math.Vec2) {
	s.ClipNear = clamp(s.ClipNear+movement.Y, 1, s.ClipFar)
}

// translateXYZ moves p in XY, or along Z with ctrl held.
func translateXYZ(p math.Vec3, mods Modifiers, movement math.Vec2) math.Vec3 {
	if mods.Ctrl {
		p.Z += movement.Y
		return p
	}
	p.X += movement.X
	p.Y += movement.Y
	return p
}

func degToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

func clamp(v, lo, hi float32) float32 {
	if v < lo || math32.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
