// Package viewer holds the interactive session of the HMD viewer: it routes
// pointer and key input to the camera controller and keeps the lighting,
// shading and lens settings the renderer draws with. It has no GL or SDL
// dependency.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/hmdview/internal/config"
	"github.com/Faultbox/hmdview/internal/engine/camera"
	"github.com/Faultbox/hmdview/internal/engine/lens"
	"github.com/Faultbox/hmdview/internal/engine/lighting"
	"github.com/Faultbox/hmdview/internal/engine/shader"
	"github.com/Faultbox/hmdview/internal/logger"
)

// Requests are actions the session asks its host loop to perform.
type Requests struct {
	Quit       bool
	Screenshot bool
	// Reshade is set when the shading model or the scene lights changed.
	Reshade bool
}

// Session is one viewing session.
type Session struct {
	state      camera.State
	controller *camera.Controller
	builder    *camera.Builder

	shading  shader.Model
	material lighting.Material
	env      lighting.Environment

	pixelPitch float32
	ipd        float32
	lens       lens.Params

	requests Requests
	log      *zap.Logger
}

// NewSession starts a session from cfg. cfg must be valid.
func NewSession(cfg *config.Config) (*Session, error) {
	model, err := shader.ParseModel(cfg.Viewer.Shading)
	if err != nil {
		return nil, err
	}

	s := &Session{
		state:   camera.NewState(cfg.Display.DistanceScreenViewer),
		shading: model,
		log:     logger.Named("viewer"),
	}
	s.state.ClipNear = cfg.Viewer.ClipNear
	s.state.ClipFar = cfg.Viewer.ClipFar
	s.state.UsePerspective = !cfg.Viewer.Orthographic

	s.controller = camera.NewController(&s.state)
	s.builder = camera.NewBuilder(displayFrom(cfg.Display))
	s.applyScene(cfg)
	s.requests.Reshade = true

	return s, nil
}

func displayFrom(d config.DisplayConfig) camera.Display {
	return camera.Display{
		CanvasWidth:          d.Width,
		CanvasHeight:         d.Height,
		PixelPitch:           d.PixelPitch,
		DistanceScreenViewer: d.DistanceScreenViewer,
	}
}

func (s *Session) applyScene(cfg *config.Config) {
	s.material, s.env = lighting.FromConfig(cfg.Lighting)
	s.pixelPitch = cfg.Display.PixelPitch
	s.ipd = cfg.Display.IPD
	s.lens = lens.Params{
		DistLensScreen: cfg.Lens.DistLensScreen,
		K1:             cfg.Lens.K1,
		K2:             cfg.Lens.K2,
	}
}

// ApplyConfig takes the scene settings of a reloaded config: lighting, lens,
// shading model and display geometry. The canvas size and the user-driven
// transform state are kept.
func (s *Session) ApplyConfig(cfg *config.Config) error {
	model, err := shader.ParseModel(cfg.Viewer.Shading)
	if err != nil {
		return fmt.Errorf("apply config: %w", err)
	}

	display := s.builder.Display()
	display.PixelPitch = cfg.Display.PixelPitch
	display.DistanceScreenViewer = cfg.Display.DistanceScreenViewer
	s.builder.SetDisplay(display)

	s.shading = model
	s.applyScene(cfg)
	s.requests.Reshade = true

	s.log.Info("config applied",
		zap.Stringer("shading", model),
		zap.Int("point_lights", len(s.env.PointLights)),
		zap.Int("directional_lights", len(s.env.DirectionalLights)),
	)
	return nil
}

// PointerDown starts a drag at (x, y).
func (s *Session) PointerDown(x, y float32) {
	s.controller.Press(x, y)
}

// PointerMove continues a drag.
func (s *Session) PointerMove(x, y float32, mods camera.Modifiers) {
	s.controller.Move(x, y, mods)
}

// PointerUp ends a drag. It is also used when the pointer leaves the window.
func (s *Session) PointerUp() {
	s.controller.Release()
}

// KeyDown handles a key press.
func (s *Session) KeyDown(k Key) {
	if control, ok := controlKeys[k]; ok {
		s.controller.Select(control)
		return
	}

	switch k {
	case KeyEscape:
		s.requests.Quit = true
	case KeyP:
		s.controller.TogglePerspective()
		s.log.Debug("projection toggled", zap.Bool("perspective", s.state.UsePerspective))
	case KeyG:
		s.shading = s.shading.Next()
		s.requests.Reshade = true
		s.log.Debug("shading changed", zap.Stringer("shading", s.shading))
	case KeyF12:
		s.requests.Screenshot = true
	}
}

// Resize updates the canvas size in pixels.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	display := s.builder.Display()
	display.CanvasWidth = width
	display.CanvasHeight = height
	s.builder.SetDisplay(display)
}

// TakeRequests returns the pending requests and clears them.
func (s *Session) TakeRequests() Requests {
	r := s.requests
	s.requests = Requests{}
	return r
}

// Matrices returns this frame's transforms.
func (s *Session) Matrices() camera.Matrices {
	return s.builder.Update(s.state)
}

// State returns a copy of the transform state.
func (s *Session) State() camera.State {
	return s.state
}

// Control returns the armed control.
func (s *Session) Control() camera.Control {
	return s.controller.Control()
}

// Shading returns the active shading model.
func (s *Session) Shading() shader.Model {
	return s.shading
}

// Lighting returns the material and light environment.
func (s *Session) Lighting() (lighting.Material, lighting.Environment) {
	return s.material, s.env
}

// Lens returns the per-eye lens geometry for the current canvas and the
// distortion coefficients.
func (s *Session) Lens() (left, right lens.Eye, params lens.Params) {
	d := s.builder.Display()
	width := float32(d.CanvasWidth) * s.pixelPitch
	height := float32(d.CanvasHeight) * s.pixelPitch
	left, right = lens.Eyes(width, height, s.ipd)
	return left, right, s.lens
}

// Title summarises the session for the window title.
func (s *Session) Title() string {
	projection := "perspective"
	if !s.state.UsePerspective {
		projection = "orthographic"
	}
	return fmt.Sprintf("hmdview | control: %s | %s | %s", s.Control(), s.shading, projection)
}
