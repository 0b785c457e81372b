package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/hmdview/pkg/math"
)

func TestNewState(t *testing.T) {
	s := NewState(500)

	if s.ClipNear != 1 || s.ClipFar != 10000 {
		t.Errorf("expected clip planes 1/10000, got %f/%f", s.ClipNear, s.ClipFar)
	}
	if s.ViewerPosition != (math.Vec3{Z: 500}) {
		t.Errorf("expected viewer at (0, 0, 500), got %v", s.ViewerPosition)
	}
	if s.ViewerTarget != (math.Vec3{}) {
		t.Errorf("expected target at origin, got %v", s.ViewerTarget)
	}
	if !s.UsePerspective {
		t.Error("expected perspective projection")
	}
}

func TestControllerIgnoresMoveWithoutPress(t *testing.T) {
	s := NewState(500)
	c := NewController(&s)
	c.Select(ControlModel)

	c.Move(400, 400, Modifiers{Shift: true})
	assert.Equal(t, math.Vec3{}, s.ModelTranslation)
}

func TestControllerDrag(t *testing.T) {
	s := NewState(500)
	c := NewController(&s)
	c.Select(ControlModel)

	c.Press(100, 100)

	c.Move(140, 100, Modifiers{Shift: true})
	c.Move(180, 60, Modifiers{Shift: true})

	// Second move is measured from the first, not from the press.
	assert.Equal(t, math.Vec3{X: 2, Y: 1}, s.ModelTranslation)

	c.Release()
	c.Move(400, 400, Modifiers{Shift: true})
	assert.Equal(t, math.Vec3{X: 2, Y: 1}, s.ModelTranslation)
}

func TestControllerTracksPointerWhileReleased(t *testing.T) {
	s := NewState(500)
	c := NewController(&s)
	c.Select(ControlModel)

	c.Move(120, 80, Modifiers{})
	assert.Equal(t, math.Vec2{X: 120, Y: 80}, c.prev)
	assert.Equal(t, NewState(500), s, "moves without a press do not edit the state")

	c.Press(100, 100)
	c.Release()
	c.Move(300, 260, Modifiers{})
	assert.Equal(t, math.Vec2{X: 300, Y: 260}, c.prev)
	assert.Equal(t, NewState(500), s)
}

func TestControllerNoControlTracksPointer(t *testing.T) {
	s := NewState(500)
	c := NewController(&s)

	c.Press(0, 0)
	c.Move(400, 0, Modifiers{})
	assert.Equal(t, NewState(500), s, "no control selected should not change state")

	// Selecting mid-drag measures from the last pointer position.
	c.Select(ControlViewerPosition)
	c.Move(440, 0, Modifiers{})
	assert.Equal(t, math.Vec3{X: 1, Z: 500}, s.ViewerPosition)
}

func TestControllerSwitchControls(t *testing.T) {
	s := NewState(500)
	c := NewController(&s)

	c.Select(ControlViewerTarget)
	c.Press(0, 0)
	c.Move(0, -40, Modifiers{Ctrl: true})
	assert.Equal(t, math.Vec3{Z: 1}, s.ViewerTarget)

	c.Select(ControlClipNear)
	c.Move(0, -120, Modifiers{})
	assert.Equal(t, float32(3), s.ClipNear)
	assert.Equal(t, ControlClipNear, c.Control())
}

func TestTogglePerspective(t *testing.T) {
	s := NewState(500)
	c := NewController(&s)

	c.TogglePerspective()
	assert.False(t, s.UsePerspective)
	c.TogglePerspective()
	assert.True(t, s.UsePerspective)
}

func TestStateString(t *testing.T) {
	s := NewState(500)
	s.ModelTranslation = math.Vec3{X: 1, Y: 2, Z: 3}
	assert.Contains(t, s.String(), "Translation: (1.000, 2.000, 3.000)")
	assert.Contains(t, s.String(), "Viewer position: (0.000, 0.000, 500.000)")
}
