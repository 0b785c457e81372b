package shader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModel(t *testing.T) {
	tests := []struct {
		name    string
		want    Model
		wantErr bool
	}{
		{"gouraud-diffuse", GouraudDiffuse, false},
		{"gouraud", Gouraud, false},
		{"phong", Phong, false},
		{"flat", Phong, true},
		{"", Phong, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseModel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
		})
	}
}

func TestModelNext(t *testing.T) {
	assert.Equal(t, Gouraud, GouraudDiffuse.Next())
	assert.Equal(t, Phong, Gouraud.Next())
	assert.Equal(t, GouraudDiffuse, Phong.Next())
	assert.Equal(t, "Model(7)", Model(7).String())
}

func TestSourceHeader(t *testing.T) {
	for _, model := range []Model{GouraudDiffuse, Gouraud, Phong} {
		t.Run(model.String(), func(t *testing.T) {
			vert, frag := Source(model, 3, 2)
			for _, src := range []string{vert, frag} {
				lines := strings.Split(src, "\n")
				require.GreaterOrEqual(t, len(lines), 3)
				assert.Equal(t, Version, lines[0], "version must be the first line")
				assert.Equal(t, "#define NUM_POINT_LIGHTS 3", lines[1])
				assert.Equal(t, "#define NUM_DIR_LIGHTS 2", lines[2])
				assert.Equal(t, 1, strings.Count(src, "#version"))
			}
		})
	}
}

func TestSourceLightingStage(t *testing.T) {
	tests := []struct {
		model       Model
		litVertex   bool
		diffuseOnly bool
	}{
		{GouraudDiffuse, true, true},
		{Gouraud, true, false},
		{Phong, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			vert, frag := Source(tt.model, 1, 0)

			lit, unlit := frag, vert
			if tt.litVertex {
				lit, unlit = vert, frag
			}
			assert.Contains(t, lit, "vec3 shade(")
			assert.NotContains(t, unlit, "vec3 shade(")

			assert.Equal(t, tt.diffuseOnly, strings.Contains(vert+frag, "#define DIFFUSE_ONLY"))
		})
	}
}

func TestSourceNegativeCounts(t *testing.T) {
	vert, _ := Source(Phong, -1, -4)
	assert.Contains(t, vert, "#define NUM_POINT_LIGHTS 0\n")
	assert.Contains(t, vert, "#define NUM_DIR_LIGHTS 0\n")
}

func TestSourceUniformContract(t *testing.T) {
	vert, frag := Source(Phong, 1, 1)
	all := vert + frag
	for _, name := range []string{
		"modelViewMat", "projectionMat", "viewMat", "normalMat",
		"material", "attenuation", "ambientLightColor",
		"pointLights", "directionalLights",
	} {
		assert.Contains(t, all, name)
	}
}

func TestResolveUniforms(t *testing.T) {
	var asked []string
	lookup := func(name string) int32 {
		asked = append(asked, name)
		return int32(len(asked) - 1)
	}

	u := ResolveUniforms(lookup, 2, 1)

	assert.Equal(t, "modelViewMat", asked[u.ModelViewMat])
	assert.Equal(t, "projectionMat", asked[u.ProjectionMat])
	assert.Equal(t, "viewMat", asked[u.ViewMat])
	assert.Equal(t, "normalMat", asked[u.NormalMat])
	assert.Equal(t, "material.shininess", asked[u.MaterialShininess])
	assert.Equal(t, "ambientLightColor", asked[u.AmbientLightColor])

	require.Len(t, u.PointLights, 2)
	assert.Equal(t, "pointLights[1].position", asked[u.PointLights[1].Vector])
	assert.Equal(t, "pointLights[1].color", asked[u.PointLights[1].Color])

	require.Len(t, u.DirectionalLights, 1)
	assert.Equal(t, "directionalLights[0].direction", asked[u.DirectionalLights[0].Vector])
	assert.Equal(t, "directionalLights[0].color", asked[u.DirectionalLights[0].Color])
}
