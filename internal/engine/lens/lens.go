// Package lens models the radial distortion of head-mounted display lenses
// and pre-distorts (unwarps) rendered images so they look straight through
// the lens.
package lens

import (
	"github.com/Faultbox/hmdview/pkg/math"
)

// minDistance floors the lens-to-screen distance.
const minDistance float32 = 1e-6

// Params are the lens distortion coefficients.
type Params struct {
	DistLensScreen float32 // mm
	K1             float32
	K2             float32
}

// Scale returns the radial scale 1 + K1*r^2 + K2*r^4 for a point radiusMM
// away from the lens centre, with r normalised by the lens-to-screen distance.
func (p Params) Scale(radiusMM float32) float32 {
	r := radiusMM / max(p.DistLensScreen, minDistance)
	r2 := r * r
	return 1 + p.K1*r2 + p.K2*r2*r2
}

// Eye is the lens geometry of one eye's half of the screen.
type Eye struct {
	// Center is the lens centre in the viewport's [0,1] texture coordinates.
	Center math.Vec2
	// ViewportSize is the viewport extent in mm.
	ViewportSize math.Vec2
}

// Eyes returns the left and right eye geometry for a screen of the given
// physical size, split in two side-by-side viewports, viewed with the given
// interpupillary distance. All lengths are in mm.
func Eyes(screenWidth, screenHeight, ipd float32) (left, right Eye) {
	viewport := math.Vec2{X: screenWidth / 2, Y: screenHeight}
	offset := ipd / max(screenWidth, minDistance)

	left = Eye{Center: math.Vec2{X: 1 - offset, Y: 0.5}, ViewportSize: viewport}
	right = Eye{Center: math.Vec2{X: offset, Y: 0.5}, ViewportSize: viewport}
	return left, right
}

// Distort maps an undistorted texture coordinate to the coordinate to sample
// from. ok is false when the sample falls outside the viewport.
func (e Eye) Distort(p Params, uv math.Vec2) (out math.Vec2, ok bool) {
	d := uv.Sub(e.Center)
	radius := d.Mul(e.ViewportSize).Length()
	out = e.Center.Add(d.Scale(p.Scale(radius)))
	ok = out.X >= 0 && out.X <= 1 && out.Y >= 0 && out.Y <= 1
	return out, ok
}
