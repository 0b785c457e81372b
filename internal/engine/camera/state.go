// Package camera tracks the user-driven model and viewer transform and
// derives the model, view and projection matrices from it each frame.
package camera

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/hmdview/pkg/math"
)

// Default clipping planes for a new session.
const (
	DefaultClipNear float32 = 1
	DefaultClipFar  float32 = 10000
)

// State accumulates the transform parameters driven by mouse input.
// The owner passes it to the input mapping and to Builder.Update; nothing in
// this package keeps a reference to it between calls.
type State struct {
	ClipNear float32
	ClipFar  float32

	ModelTranslation math.Vec3
	ModelRotation    math.Vec2 // radians; X is yaw, Y is pitch

	ViewerPosition math.Vec3
	ViewerTarget   math.Vec3

	UsePerspective bool
}

// NewState returns the session start state with the viewer placed
// distanceScreenViewer in front of the origin.
func NewState(distanceScreenViewer float32) State {
	return State{
		ClipNear:       DefaultClipNear,
		ClipFar:        DefaultClipFar,
		ViewerPosition: math.Vec3{X: 0, Y: 0, Z: distanceScreenViewer},
		UsePerspective: true,
	}
}

// String renders the readout shown next to the canvas.
func (s State) String() string {
	return fmt.Sprintf("Translation: %s Rotation: (%.3f, %.3f) Viewer position: %s Viewer target: %s",
		vec3String(s.ModelTranslation),
		s.ModelRotation.X, s.ModelRotation.Y,
		vec3String(s.ViewerPosition),
		vec3String(s.ViewerTarget),
	)
}

// MarshalLogObject lets the state be logged with zap.Object.
func (s State) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat32("clip_near", s.ClipNear)
	enc.AddFloat32("clip_far", s.ClipFar)
	enc.AddString("translation", vec3String(s.ModelTranslation))
	enc.AddFloat32("yaw", s.ModelRotation.X)
	enc.AddFloat32("pitch", s.ModelRotation.Y)
	enc.AddString("viewer_position", vec3String(s.ViewerPosition))
	enc.AddString("viewer_target", vec3String(s.ViewerTarget))
	enc.AddBool("perspective", s.UsePerspective)
	return nil
}

func vec3String(v math.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
