package shader

import "fmt"

// LightUniforms are the locations of one light's fields. Vector is the
// position of a point light or the direction of a directional light.
type LightUniforms struct {
	Vector int32
	Color  int32
}

// Uniforms caches the locations of the uniform contract shared by all
// shading programs. Inactive uniforms are -1, which GL ignores on upload.
type Uniforms struct {
	ModelViewMat  int32
	ProjectionMat int32
	ViewMat       int32
	NormalMat     int32

	MaterialAmbient   int32
	MaterialDiffuse   int32
	MaterialSpecular  int32
	MaterialShininess int32

	Attenuation       int32
	AmbientLightColor int32

	PointLights       []LightUniforms
	DirectionalLights []LightUniforms
}

// PointLightName returns the uniform name of a point light field.
func PointLightName(i int, field string) string {
	return fmt.Sprintf("pointLights[%d].%s", i, field)
}

// DirectionalLightName returns the uniform name of a directional light field.
func DirectionalLightName(i int, field string) string {
	return fmt.Sprintf("directionalLights[%d].%s", i, field)
}

// ResolveUniforms resolves the uniform contract through lookup, which is
// typically glGetUniformLocation bound to a linked program.
func ResolveUniforms(lookup func(name string) int32, numPoint, numDir int) *Uniforms {
	u := &Uniforms{
		ModelViewMat:      lookup("modelViewMat"),
		ProjectionMat:     lookup("projectionMat"),
		ViewMat:           lookup("viewMat"),
		NormalMat:         lookup("normalMat"),
		MaterialAmbient:   lookup("material.ambient"),
		MaterialDiffuse:   lookup("material.diffuse"),
		MaterialSpecular:  lookup("material.specular"),
		MaterialShininess: lookup("material.shininess"),
		Attenuation:       lookup("attenuation"),
		AmbientLightColor: lookup("ambientLightColor"),
	}

	for i := 0; i < numPoint; i++ {
		u.PointLights = append(u.PointLights, LightUniforms{
			Vector: lookup(PointLightName(i, "position")),
			Color:  lookup(PointLightName(i, "color")),
		})
	}
	for i := 0; i < numDir; i++ {
		u.DirectionalLights = append(u.DirectionalLights, LightUniforms{
			Vector: lookup(DirectionalLightName(i, "direction")),
			Color:  lookup(DirectionalLightName(i, "color")),
		})
	}

	return u
}
