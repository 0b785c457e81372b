package camera

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hmdview/internal/logger"
	"github.com/Faultbox/hmdview/pkg/math"
)

// Controller turns pointer and control-selection events into State updates.
type Controller struct {
	state   *State
	control Control
	held    bool
	prev    math.Vec2
	log     *zap.Logger
}

// NewController returns a controller editing state with no control selected.
func NewController(state *State) *Controller {
	return &Controller{
		state: state,
		log:   logger.Named("camera"),
	}
}

// Control returns the selected control.
func (c *Controller) Control() Control {
	return c.control
}

// Select arms a control. Drags only edit the armed control.
func (c *Controller) Select(control Control) {
	c.control = control
	c.log.Debug("control selected", zap.Stringer("control", control))
}

// Press records the pointer position and starts a drag.
func (c *Controller) Press(x, y float32) {
	c.prev = math.Vec2{X: x, Y: y}
	c.held = true
}

// Release ends a drag. Called on button up and when the pointer leaves the canvas.
func (c *Controller) Release() {
	c.held = false
}

// Move records the pointer position and, while a drag is active, applies the
// movement since the last event.
func (c *Controller) Move(x, y float32, mods Modifiers) {
	movement := ComputeMovement(x, y, c.prev)
	c.prev = math.Vec2{X: x, Y: y}

	if !c.held || c.control == ControlNone {
		return
	}
	ApplyMovement(c.state, c.control, mods, movement)
	c.log.Debug("state updated", zap.Object("state", *c.state))
}

// TogglePerspective switches between perspective and orthographic projection.
func (c *Controller) TogglePerspective() {
	c.state.UsePerspective = !c.state.UsePerspective
	c.log.Debug("projection toggled", zap.Bool("perspective", c.state.UsePerspective))
}
