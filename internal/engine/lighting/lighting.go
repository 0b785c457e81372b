// Package lighting evaluates the Phong reflection model used by the viewer's
// shading programs and packs scene lights for GPU upload.
//
// The same formulas run on the GPU (see internal/engine/shader/shaders); the
// Go evaluator is the reference the shaders are checked against and is used
// for CPU-side previews.
package lighting

import (
	"github.com/Faultbox/hmdview/pkg/math"
)

// Material holds Phong reflectance coefficients.
type Material struct {
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// PointLight is a light at a world-space position.
type PointLight struct {
	Position math.Vec3
	Color    math.Vec3
}

// DirectionalLight is a light infinitely far away. Direction points from the
// surface towards the light and is used as given, in view space.
type DirectionalLight struct {
	Direction math.Vec3
	Color     math.Vec3
}

// Attenuation is the distance falloff 1 / (Constant + Linear*d + Quadratic*d^2).
// It applies to point lights only.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// NoFalloff is the attenuation that leaves light intensity unchanged.
var NoFalloff = Attenuation{Constant: 1}

// Factor returns the attenuation multiplier at distance d.
func (a Attenuation) Factor(d float32) float32 {
	denom := a.Constant + a.Linear*d + a.Quadratic*d*d
	if denom < epsilon {
		denom = epsilon
	}
	return 1 / denom
}

// Array returns the coefficients in uniform order.
func (a Attenuation) Array() [3]float32 {
	return [3]float32{a.Constant, a.Linear, a.Quadratic}
}

// Environment is everything that lights a scene apart from the material.
type Environment struct {
	AmbientColor      math.Vec3
	Attenuation       Attenuation
	PointLights       []PointLight
	DirectionalLights []DirectionalLight
}
