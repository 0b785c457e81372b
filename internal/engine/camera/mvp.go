package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/hmdview/pkg/math"
)

// epsilon is the smallest magnitude allowed for a projection denominator.
const epsilon float32 = 1e-6

var (
	worldUp = math.Vec3{X: 0, Y: 1, Z: 0}
	// fallbackUp is used when the viewer looks straight up or down.
	fallbackUp = math.Vec3{X: 0, Y: 0, Z: -1}
	// defaultLook is used when the viewer position equals the target.
	defaultLook = math.Vec3{X: 0, Y: 0, Z: 1}
)

// Matrices is the per-frame transform set handed to the renderer.
type Matrices struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4
}

// ModelView returns View * Model.
func (m Matrices) ModelView() math.Mat4 {
	return m.View.Mul(m.Model)
}

// NormalMatrix returns the matrix that takes object-space normals to view space.
func (m Matrices) NormalMatrix() math.Mat3 {
	return m.ModelView().NormalMatrix()
}

// Builder derives Matrices from a State. It holds only the display geometry.
type Builder struct {
	display Display
}

// NewBuilder creates a builder for the given display.
func NewBuilder(display Display) *Builder {
	return &Builder{display: display}
}

// SetDisplay replaces the display geometry, e.g. after a canvas resize.
func (b *Builder) SetDisplay(display Display) {
	b.display = display
}

// Display returns the display geometry.
func (b *Builder) Display() Display {
	return b.display
}

// Update recomputes every matrix from s.
func (b *Builder) Update(s State) Matrices {
	frustum := b.display.FrustumFor(s.ClipNear, s.UsePerspective)

	var projection math.Mat4
	if s.UsePerspective {
		projection = PerspectiveTransform(frustum, s.ClipNear, s.ClipFar)
	} else {
		projection = OrthographicTransform(frustum, s.ClipNear, s.ClipFar)
	}

	return Matrices{
		Model:      ModelTransform(s),
		View:       ViewTransform(s.ViewerPosition, s.ViewerTarget),
		Projection: projection,
	}
}

// ModelTransform returns T * Ry(yaw) * Rx(pitch): the model is rotated about
// its own origin and then translated in world space.
func ModelTransform(s State) math.Mat4 {
	return math.TranslateVec3(s.ModelTranslation).
		Mul(math.RotateY(s.ModelRotation.X)).
		Mul(math.RotateX(s.ModelRotation.Y))
}

// ViewTransform returns the world-to-camera matrix for a viewer at eye looking
// at target, with the camera looking down -Z.
//
// If eye equals target the viewer looks down -Z. If the view direction is
// parallel to world up, (0, 0, -1) is used as the up vector instead.
func ViewTransform(eye, target math.Vec3) math.Mat4 {
	look := defaultLook
	if d := eye.Sub(target); d.Length() >= epsilon {
		look = d.Normalize()
	}

	up := worldUp
	if math32.Abs(look.Dot(worldUp)) > 1-1e-4 {
		up = fallbackUp
	}

	right := up.Cross(look).Normalize()
	camUp := look.Cross(right).Normalize()

	// The basis is orthonormal, so its transpose is its inverse.
	rotation := math.FromBasis(right, camUp, look).Transpose()
	return rotation.Mul(math.TranslateVec3(eye.Negate()))
}

// PerspectiveTransform returns the OpenGL perspective matrix for the frustum
// f at clipNear. For a symmetric frustum this is the familiar
// f/aspect, f form with f = clipNear / top.
func PerspectiveTransform(f Frustum, clipNear, clipFar float32) math.Mat4 {
	width := nonZero(f.Right - f.Left)
	height := nonZero(f.Top - f.Bottom)
	depth := nonZero(clipFar - clipNear)

	return math.Mat4{
		2 * clipNear / width, 0, 0, 0,
		0, 2 * clipNear / height, 0, 0,
		(f.Right + f.Left) / width, (f.Top + f.Bottom) / height, -(clipFar + clipNear) / depth, -1,
		0, 0, -2 * clipFar * clipNear / depth, 0,
	}
}

// OrthographicTransform returns the OpenGL orthographic matrix for the box
// bounded by f and the clipping planes.
func OrthographicTransform(f Frustum, clipNear, clipFar float32) math.Mat4 {
	width := nonZero(f.Right - f.Left)
	height := nonZero(f.Top - f.Bottom)
	depth := nonZero(clipFar - clipNear)

	return math.Mat4{
		2 / width, 0, 0, 0,
		0, 2 / height, 0, 0,
		0, 0, -2 / depth, 0,
		-(f.Right + f.Left) / width, -(f.Top + f.Bottom) / height, -(clipFar + clipNear) / depth, 1,
	}
}

// nonZero keeps the sign of v but lifts its magnitude to at least epsilon.
func nonZero(v float32) float32 {
	if math32.Abs(v) >= epsilon {
		return v
	}
	if v < 0 {
		return -epsilon
	}
	return epsilon
}
