package lens

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/Faultbox/hmdview/pkg/math"
)

// Unwarp pre-distorts src as seen through one lens. Pixels whose sample falls
// outside src are transparent black.
func Unwarp(src image.Image, eye Eye, p Params) *image.RGBA {
	rgba := toRGBA(src)
	b := rgba.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	unwarpInto(dst, dst.Bounds(), rgba, b, eye, p)
	return dst
}

// UnwarpStereo pre-distorts a side-by-side stereo image: the left half
// through the left lens, the right half through the right lens.
func UnwarpStereo(src image.Image, left, right Eye, p Params) *image.RGBA {
	rgba := toRGBA(src)
	b := rgba.Bounds()
	half := b.Dx() / 2

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	srcL := image.Rect(b.Min.X, b.Min.Y, b.Min.X+half, b.Max.Y)
	srcR := image.Rect(b.Min.X+half, b.Min.Y, b.Max.X, b.Max.Y)
	draw.Draw(dst, image.Rect(0, 0, half, b.Dy()), Unwarp(rgba.SubImage(srcL), left, p), image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(half, 0, b.Dx(), b.Dy()), Unwarp(rgba.SubImage(srcR), right, p), image.Point{}, draw.Src)
	return dst
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, src, b.Min, draw.Src)
	return rgba
}

// unwarpInto fills dstRect of dst from srcRect of src. Texture v runs bottom
// to top, image rows top to bottom.
func unwarpInto(dst *image.RGBA, dstRect image.Rectangle, src *image.RGBA, srcRect image.Rectangle, eye Eye, p Params) {
	w, h := dstRect.Dx(), dstRect.Dy()
	if w == 0 || h == 0 || srcRect.Empty() {
		return
	}

	for y := 0; y < h; y++ {
		v := 1 - (float32(y)+0.5)/float32(h)
		for x := 0; x < w; x++ {
			u := (float32(x) + 0.5) / float32(w)

			st, ok := eye.Distort(p, math.Vec2{X: u, Y: v})
			if !ok {
				dst.SetRGBA(dstRect.Min.X+x, dstRect.Min.Y+y, color.RGBA{})
				continue
			}
			dst.SetRGBA(dstRect.Min.X+x, dstRect.Min.Y+y, sample(src, srcRect, st))
		}
	}
}

// sample reads src at texture coordinate st inside r with bilinear filtering
// and edge clamping.
func sample(src *image.RGBA, r image.Rectangle, st math.Vec2) color.RGBA {
	fx := st.X*float32(r.Dx()) - 0.5
	fy := (1-st.Y)*float32(r.Dy()) - 0.5

	x0 := floor(fx)
	y0 := floor(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := at(src, r, x0, y0)
	c10 := at(src, r, x0+1, y0)
	c01 := at(src, r, x0, y0+1)
	c11 := at(src, r, x0+1, y0+1)

	lerp := func(a, b, c, d uint8) uint8 {
		top := float32(a)*(1-tx) + float32(b)*tx
		bottom := float32(c)*(1-tx) + float32(d)*tx
		return uint8(top*(1-ty) + bottom*ty + 0.5)
	}

	return color.RGBA{
		R: lerp(c00.R, c10.R, c01.R, c11.R),
		G: lerp(c00.G, c10.G, c01.G, c11.G),
		B: lerp(c00.B, c10.B, c01.B, c11.B),
		A: lerp(c00.A, c10.A, c01.A, c11.A),
	}
}

func at(src *image.RGBA, r image.Rectangle, x, y int) color.RGBA {
	x = min(max(x, 0), r.Dx()-1)
	y = min(max(y, 0), r.Dy()-1)
	return src.RGBAAt(r.Min.X+x, r.Min.Y+y)
}

func floor(f float32) int {
	i := int(f)
	if f < float32(i) {
		i--
	}
	return i
}
