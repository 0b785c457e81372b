// Package app runs the viewer's window and frame loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/hmdview/internal/config"
	"github.com/Faultbox/hmdview/internal/engine/camera"
	"github.com/Faultbox/hmdview/internal/engine/debug"
	"github.com/Faultbox/hmdview/internal/engine/input"
	"github.com/Faultbox/hmdview/internal/engine/mesh"
	"github.com/Faultbox/hmdview/internal/engine/renderer"
	"github.com/Faultbox/hmdview/internal/engine/window"
	"github.com/Faultbox/hmdview/internal/logger"
	"github.com/Faultbox/hmdview/internal/viewer"
)

// Demo scene geometry, in mm like the display.
const (
	sphereRadius = 100
	sphereStacks = 48
	sphereSlices = 64
	groundSize   = 600
	groundLevel  = -150
)

var keyBindings = map[sdl.Scancode]viewer.Key{
	sdl.SCANCODE_ESCAPE: viewer.KeyEscape,
	sdl.SCANCODE_0:      viewer.Key0,
	sdl.SCANCODE_1:      viewer.Key1,
	sdl.SCANCODE_2:      viewer.Key2,
	sdl.SCANCODE_3:      viewer.Key3,
	sdl.SCANCODE_4:      viewer.Key4,
	sdl.SCANCODE_P:      viewer.KeyP,
	sdl.SCANCODE_G:      viewer.KeyG,
	sdl.SCANCODE_F12:    viewer.KeyF12,
}

// App is the running viewer.
type App struct {
	running bool
	log     *zap.Logger

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	session     *viewer.Session
	screenshots *debug.ScreenshotCapture
	watcher     *config.Watcher

	title string
}

// New creates the window, renderer and session for cfg. configPath is the
// file to watch for changes; empty disables reloading.
func New(cfg *config.Config, configPath string) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing viewer",
		zap.Int("width", cfg.Display.Width),
		zap.Int("height", cfg.Display.Height),
		zap.String("shading", cfg.Viewer.Shading),
	)

	session, err := viewer.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{
		log:         log,
		session:     session,
		input:       input.New(),
		screenshots: debug.NewScreenshotCapture("screenshots", "hmdview"),
	}

	a.window, err = window.New(window.Config{
		Title:      session.Title(),
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		Fullscreen: cfg.Display.Fullscreen,
		VSync:      cfg.Display.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The GL context must exist before the renderer.
	width, height := a.window.GetDrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	session.Resize(width, height)

	scene := mesh.Sphere(sphereRadius, sphereStacks, sphereSlices)
	scene.Merge(mesh.Plane(groundSize, groundLevel))
	if err := a.renderer.UploadMesh(scene); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to upload scene: %w", err)
	}

	if configPath != "" {
		a.watcher, err = config.Watch(configPath)
		if err != nil {
			log.Warn("config reloading disabled", zap.String("path", configPath), zap.Error(err))
		}
	}

	log.Info("viewer initialized")
	return a, nil
}

// Run starts the frame loop. It returns when the window is closed or
// Escape is pressed.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents(a.input.Events())
		a.pollConfig()

		req := a.session.TakeRequests()
		if req.Quit {
			a.running = false
			break
		}
		if req.Reshade {
			_, env := a.session.Lighting()
			if err := a.renderer.SetShading(a.session.Shading(), env); err != nil {
				return fmt.Errorf("shading: %w", err)
			}
		}

		a.render()

		if req.Screenshot {
			a.screenshot()
		}

		a.window.SwapBuffers()
		a.updateTitle()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents(events []input.Event) {
	for _, e := range events {
		switch e.Type {
		case input.EventWindowResize:
			width, height := a.window.GetDrawableSize()
			a.renderer.Resize(width, height)
			a.session.Resize(width, height)
		case input.EventMouseDown:
			if e.Button == sdl.BUTTON_LEFT {
				a.session.PointerDown(float32(e.MouseX), float32(e.MouseY))
			}
		case input.EventMouseMove:
			a.session.PointerMove(float32(e.MouseX), float32(e.MouseY), camera.Modifiers{
				Shift: e.Mods.Shift,
				Ctrl:  e.Mods.Ctrl,
			})
		case input.EventMouseUp:
			if e.Button == sdl.BUTTON_LEFT {
				a.session.PointerUp()
			}
		case input.EventMouseLeave:
			a.session.PointerUp()
		case input.EventKeyDown:
			if k, ok := keyBindings[e.Key]; ok {
				a.session.KeyDown(k)
			}
		}
	}
}

// pollConfig applies a reloaded config without blocking the frame.
func (a *App) pollConfig() {
	if a.watcher == nil {
		return
	}
	select {
	case cfg := <-a.watcher.Changes():
		if err := a.session.ApplyConfig(cfg); err != nil {
			a.log.Warn("reloaded config rejected", zap.Error(err))
			return
		}
		logger.SetLevel(cfg.Logging.Level)
	default:
	}
}

func (a *App) render() {
	material, env := a.session.Lighting()

	a.renderer.Begin()
	a.renderer.Draw(a.session.Matrices(), material, env)
}

func (a *App) screenshot() {
	width, height := a.renderer.Size()
	left, right, params := a.session.Lens()

	raw, unwarped, err := a.screenshots.CaptureUnwarped(a.renderer.ReadPixels(), width, height, left, right, params)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("raw", raw), zap.String("unwarped", unwarped))
}

func (a *App) updateTitle() {
	title := a.session.Title()
	if title == a.title {
		return
	}
	a.title = title
	a.window.SetTitle(title)
	a.log.Debug("state", zap.Stringer("state", a.session.State()))
}

// Close releases the watcher, renderer and window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing config watcher", zap.Error(err))
		}
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
