// Package shader assembles the GLSL programs of the viewer's shading models
// and names the uniforms they share. Compilation happens in the renderer.
package shader

import "fmt"

// Model selects where the reflection model is evaluated.
type Model int

const (
	// GouraudDiffuse lights vertices with ambient and diffuse terms only.
	GouraudDiffuse Model = iota
	// Gouraud lights vertices and interpolates the colour.
	Gouraud
	// Phong interpolates normals and lights each fragment.
	Phong
)

var modelNames = [...]string{
	GouraudDiffuse: "gouraud-diffuse",
	Gouraud:        "gouraud",
	Phong:          "phong",
}

func (m Model) String() string {
	if m < 0 || int(m) >= len(modelNames) {
		return fmt.Sprintf("Model(%d)", int(m))
	}
	return modelNames[m]
}

// Next returns the model after m, wrapping around.
func (m Model) Next() Model {
	return (m + 1) % Model(len(modelNames))
}

// ParseModel converts a configuration name into a Model.
func ParseModel(name string) (Model, error) {
	for i, n := range modelNames {
		if n == name {
			return Model(i), nil
		}
	}
	return Phong, fmt.Errorf("unknown shading model %q", name)
}
