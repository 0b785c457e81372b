package camera

// Display describes the physical screen the canvas is shown on.
// Lengths are in millimetres.
type Display struct {
	CanvasWidth          int
	CanvasHeight         int
	PixelPitch           float32
	DistanceScreenViewer float32
}

// Frustum holds the near-plane bounds in camera space.
type Frustum struct {
	Left, Right, Bottom, Top float32
}

// FrustumFor returns the near-plane bounds for the given projection mode.
// The perspective frustum is the physical canvas scaled from the screen
// distance back to clipNear, so the image matches the real field of view.
// The orthographic frustum is the canvas itself.
func (d Display) FrustumFor(clipNear float32, perspective bool) Frustum {
	right := float32(d.CanvasWidth) * d.PixelPitch / 2
	top := float32(d.CanvasHeight) * d.PixelPitch / 2

	if perspective {
		scale := clipNear / d.DistanceScreenViewer
		right *= scale
		top *= scale
	}

	return Frustum{Left: -right, Right: right, Bottom: -top, Top: top}
}

// Aspect returns the width/height ratio of the frustum.
func (f Frustum) Aspect() float32 {
	return (f.Right - f.Left) / nonZero(f.Top-f.Bottom)
}
