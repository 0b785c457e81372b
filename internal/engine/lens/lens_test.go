package lens

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/hmdview/pkg/math"
)

var testParams = Params{DistLensScreen: 39.4, K1: 0.34, K2: 0.55}

func TestScale(t *testing.T) {
	assert.Equal(t, float32(1), testParams.Scale(0))
	assert.Equal(t, float32(1), Params{DistLensScreen: 40}.Scale(25))

	// r = 1 at the lens-to-screen distance.
	assert.InDelta(t, 1+0.34+0.55, testParams.Scale(39.4), 1e-5)

	prev := testParams.Scale(0)
	for r := float32(1); r < 60; r++ {
		s := testParams.Scale(r)
		assert.Greater(t, s, prev, "scale must grow with radius")
		prev = s
	}
}

func TestScaleZeroDistance(t *testing.T) {
	s := Params{K1: 1}.Scale(0)
	assert.Equal(t, float32(1), s)
}

func TestEyes(t *testing.T) {
	left, right := Eyes(120, 70, 64)

	assert.InDelta(t, 1-64.0/120, left.Center.X, 1e-6)
	assert.InDelta(t, 64.0/120, right.Center.X, 1e-6)
	assert.Equal(t, float32(0.5), left.Center.Y)
	assert.Equal(t, float32(0.5), right.Center.Y)
	assert.InDelta(t, 1, left.Center.X+right.Center.X, 1e-6)
	assert.Equal(t, math.Vec2{X: 60, Y: 70}, left.ViewportSize)

	// Eyes exactly at the viewport centres.
	left, right = Eyes(128, 72, 64)
	assert.Equal(t, float32(0.5), left.Center.X)
	assert.Equal(t, float32(0.5), right.Center.X)
}

func TestDistort(t *testing.T) {
	left, _ := Eyes(120, 70, 64)

	out, ok := left.Distort(testParams, left.Center)
	assert.True(t, ok)
	assert.Equal(t, left.Center, out, "lens centre is fixed")

	uv := math.Vec2{X: 0.3, Y: 0.6}
	out, ok = left.Distort(Params{DistLensScreen: 40}, uv)
	assert.True(t, ok)
	assert.InDelta(t, uv.X, out.X, 1e-6, "no distortion without coefficients")
	assert.InDelta(t, uv.Y, out.Y, 1e-6, "no distortion without coefficients")

	// Barrel correction samples further out along the same ray.
	out, ok = left.Distort(testParams, uv)
	require.True(t, ok)
	before := uv.Sub(left.Center)
	after := out.Sub(left.Center)
	assert.Greater(t, after.Length(), before.Length())
	assert.InDelta(t, 0, before.X*after.Y-before.Y*after.X, 1e-6, "stays on the radial line")

	_, ok = left.Distort(Params{DistLensScreen: 10, K1: 5}, math.Vec2{X: 0, Y: 0})
	assert.False(t, ok, "corner samples leave the viewport")
}

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	return img
}

func TestUnwarpIdentity(t *testing.T) {
	src := checker(16, 12)
	eye := Eye{Center: math.Vec2{X: 0.5, Y: 0.5}, ViewportSize: math.Vec2{X: 30, Y: 20}}

	got := Unwarp(src, eye, Params{DistLensScreen: 40})
	require.Equal(t, src.Bounds(), got.Bounds())
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			assert.Equal(t, src.RGBAAt(x, y), got.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestUnwarpClearsOutside(t *testing.T) {
	src := checker(16, 16)
	eye := Eye{Center: math.Vec2{X: 0.5, Y: 0.5}, ViewportSize: math.Vec2{X: 40, Y: 40}}

	got := Unwarp(src, eye, Params{DistLensScreen: 10, K1: 2})
	assert.Equal(t, color.RGBA{}, got.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, got.RGBAAt(15, 15))
	assert.Equal(t, uint8(255), got.RGBAAt(8, 8).A, "centre keeps its pixel")
}

func TestUnwarpStereo(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 10))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if x < 10 {
				src.SetRGBA(x, y, red)
			} else {
				src.SetRGBA(x, y, blue)
			}
		}
	}

	left, right := Eyes(40, 20, 20)
	got := UnwarpStereo(src, left, right, testParams)

	require.Equal(t, src.Bounds(), got.Bounds())
	assert.Equal(t, red, got.RGBAAt(5, 5), "left half samples the left image")
	assert.Equal(t, blue, got.RGBAAt(15, 5), "right half samples the right image")
}

func TestUnwarpConvertsImageTypes(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	eye := Eye{Center: math.Vec2{X: 0.5, Y: 0.5}, ViewportSize: math.Vec2{X: 4, Y: 4}}

	got := Unwarp(src, eye, Params{DistLensScreen: 40})
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, got.RGBAAt(1, 2))
}
