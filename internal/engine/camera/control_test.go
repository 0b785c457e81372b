package camera

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/hmdview/pkg/math"
)

func TestComputeMovement(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float32
		prev       math.Vec2
		wantX      float32
		wantY      float32
	}{
		{"no motion", 100, 100, math.Vec2{X: 100, Y: 100}, 0, 0},
		{"right", 140, 0, math.Vec2{}, 3.5, 0},
		{"down is negative", 0, 80, math.Vec2{}, 0, -2},
		{"up is positive", 10, 10, math.Vec2{X: 10, Y: 30}, 0, 0.5},
		{"fractional", 13, -7, math.Vec2{X: 3, Y: 5}, 10.0 / 40.0, 12.0 / 40.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMovement(tt.x, tt.y, tt.prev)
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("ComputeMovement() = %v, want (%v, %v)", got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestComputeMovementMatchesFormula(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		prev := math.Vec2{X: float32(rng.Intn(4000) - 2000), Y: float32(rng.Intn(4000) - 2000)}
		x := float32(rng.Intn(4000) - 2000)
		y := float32(rng.Intn(4000) - 2000)

		got := ComputeMovement(x, y, prev)
		dx, dy := x-prev.X, y-prev.Y
		if got.X != dx/40 || got.Y != -dy/40 {
			t.Fatalf("delta (%v, %v): got %v, want (%v, %v)", dx, dy, got, dx/40, -dy/40)
		}
	}
}

func TestUpdateModel(t *testing.T) {
	move := math.Vec2{X: 2, Y: 3}
	tests := []struct {
		name            string
		mods            Modifiers
		wantTranslation math.Vec3
		wantRotation    math.Vec2
	}{
		{"shift translates XY", Modifiers{Shift: true}, math.Vec3{X: 2, Y: 3}, math.Vec2{}},
		{"ctrl translates Z", Modifiers{Ctrl: true}, math.Vec3{Z: 3}, math.Vec2{}},
		{"no modifier rotates", Modifiers{}, math.Vec3{}, math.Vec2{X: degToRad(2), Y: degToRad(3)}},
		{"shift and ctrl rotate", Modifiers{Shift: true, Ctrl: true}, math.Vec3{}, math.Vec2{X: degToRad(2), Y: degToRad(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(500)
			UpdateModel(&s, tt.mods, move)
			assert.Equal(t, tt.wantTranslation, s.ModelTranslation)
			assert.Equal(t, tt.wantRotation, s.ModelRotation)
		})
	}
}

func TestApplyMovementViewer(t *testing.T) {
	move := math.Vec2{X: 1.5, Y: -0.5}
	tests := []struct {
		name       string
		control    Control
		mods       Modifiers
		wantPos    math.Vec3
		wantTarget math.Vec3
	}{
		{"position XY", ControlViewerPosition, Modifiers{}, math.Vec3{X: 1.5, Y: -0.5, Z: 500}, math.Vec3{}},
		{"position XY ignores shift", ControlViewerPosition, Modifiers{Shift: true}, math.Vec3{X: 1.5, Y: -0.5, Z: 500}, math.Vec3{}},
		{"position Z", ControlViewerPosition, Modifiers{Ctrl: true}, math.Vec3{Z: 499.5}, math.Vec3{}},
		{"target XY", ControlViewerTarget, Modifiers{}, math.Vec3{Z: 500}, math.Vec3{X: 1.5, Y: -0.5}},
		{"target Z", ControlViewerTarget, Modifiers{Ctrl: true, Shift: true}, math.Vec3{Z: 500}, math.Vec3{Z: -0.5}},
		{"no control", ControlNone, Modifiers{Ctrl: true}, math.Vec3{Z: 500}, math.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(500)
			ApplyMovement(&s, tt.control, tt.mods, move)
			assert.Equal(t, tt.wantPos, s.ViewerPosition)
			assert.Equal(t, tt.wantTarget, s.ViewerTarget)
		})
	}
}

func TestUpdateClipNearClamps(t *testing.T) {
	s := NewState(500)
	s.ClipFar = 10

	UpdateClipNear(&s, math.Vec2{Y: 4})
	if s.ClipNear != 5 {
		t.Errorf("expected clip near 5, got %f", s.ClipNear)
	}

	UpdateClipNear(&s, math.Vec2{Y: 100})
	if s.ClipNear != 10 {
		t.Errorf("expected clip near clamped to far (10), got %f", s.ClipNear)
	}

	UpdateClipNear(&s, math.Vec2{Y: -100})
	if s.ClipNear != 1 {
		t.Errorf("expected clip near clamped to 1, got %f", s.ClipNear)
	}
}

func TestClipNearStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 50; run++ {
		s := NewState(500)
		s.ClipFar = 1 + rng.Float32()*100
		for i := 0; i < 200; i++ {
			dy := float32(rng.Intn(2001) - 1000)
			ApplyMovement(&s, ControlClipNear, Modifiers{}, ComputeMovement(0, dy, math.Vec2{}))
			if s.ClipNear < 1 || s.ClipNear > s.ClipFar {
				t.Fatalf("run %d step %d: clip near %f outside [1, %f]", run, i, s.ClipNear, s.ClipFar)
			}
		}
	}
}

func TestControlString(t *testing.T) {
	assert.Equal(t, "model", ControlModel.String())
	assert.Equal(t, "clip-near", ControlClipNear.String())
	assert.Equal(t, "unknown", Control(99).String())
}
