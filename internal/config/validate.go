package config

import (
	"errors"
	"fmt"
)

// Validate rejects settings the camera and lighting math cannot work with.
func (c *Config) Validate() error {
	var errs []error

	d := c.Display
	if d.Width <= 0 || d.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", d.Width, d.Height))
	}
	if d.PixelPitch <= 0 {
		errs = append(errs, fmt.Errorf("display.pixel_pitch must be positive, got %g", d.PixelPitch))
	}
	if d.DistanceScreenViewer <= 0 {
		errs = append(errs, fmt.Errorf("display.distance_screen_viewer must be positive, got %g", d.DistanceScreenViewer))
	}
	if d.IPD < 0 {
		errs = append(errs, fmt.Errorf("display.ipd must not be negative, got %g", d.IPD))
	}

	v := c.Viewer
	if v.ClipNear < 1 {
		errs = append(errs, fmt.Errorf("viewer.clip_near must be at least 1, got %g", v.ClipNear))
	}
	if v.ClipFar <= v.ClipNear {
		errs = append(errs, fmt.Errorf("viewer.clip_far (%g) must be greater than clip_near (%g)", v.ClipFar, v.ClipNear))
	}
	switch v.Shading {
	case ShadingGouraudDiffuse, ShadingGouraud, ShadingPhong:
	default:
		errs = append(errs, fmt.Errorf("viewer.shading: unknown model %q", v.Shading))
	}

	l := c.Lighting
	if l.Material.Shininess < 0 {
		errs = append(errs, fmt.Errorf("lighting.material.shininess must not be negative, got %g", l.Material.Shininess))
	}
	if l.Attenuation == ([3]float32{}) {
		errs = append(errs, errors.New("lighting.attenuation must have a non-zero coefficient"))
	}
	for i, a := range l.Attenuation {
		if a < 0 {
			errs = append(errs, fmt.Errorf("lighting.attenuation[%d] must not be negative, got %g", i, a))
		}
	}

	if c.Lens.DistLensScreen <= 0 {
		errs = append(errs, fmt.Errorf("lens.dist_lens_screen must be positive, got %g", c.Lens.DistLensScreen))
	}

	return errors.Join(errs...)
}
