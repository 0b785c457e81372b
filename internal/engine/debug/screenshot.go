// Package debug saves frame captures for inspection.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/hmdview/internal/engine/lens"
)

// ScreenshotCapture writes frames as PNG files named <prefix>_<timestamp>.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// ImageFromPixels builds an image from bottom-up RGBA rows as returned by
// glReadPixels, flipping them so the first row is the top of the frame.
func ImageFromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

// CaptureUnwarped saves the frame twice: as rendered, and pre-distorted for
// the HMD lenses with a "_unwarped" suffix. It returns both paths.
func (sc *ScreenshotCapture) CaptureUnwarped(pixels []byte, width, height int, left, right lens.Eye, params lens.Params) (raw, unwarped string, err error) {
	img, err := ImageFromPixels(pixels, width, height)
	if err != nil {
		return "", "", err
	}

	raw, err = sc.save(sc.GenerateFilename(""), img)
	if err != nil {
		return "", "", err
	}

	unwarped, err = sc.save(sc.GenerateFilename("_unwarped"), lens.UnwarpStereo(img, left, right, params))
	if err != nil {
		return raw, "", err
	}
	return raw, unwarped, nil
}

// GenerateFilename generates a screenshot filename without saving.
func (sc *ScreenshotCapture) GenerateFilename(suffix string) string {
	timestamp := sc.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s%s.png", sc.prefix, timestamp, suffix)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

func (sc *ScreenshotCapture) save(filename string, img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}
