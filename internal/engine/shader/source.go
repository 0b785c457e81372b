package shader

import (
	"fmt"
	"strings"

	"github.com/Faultbox/hmdview/internal/engine/shader/shaders"
)

// Version is the GLSL version line every stage starts with.
const Version = "#version 410 core"

// Source assembles the vertex and fragment stages for model. The light counts
// are compiled in as NUM_POINT_LIGHTS and NUM_DIR_LIGHTS.
func Source(model Model, numPoint, numDir int) (vertex, fragment string) {
	defines := header(model, numPoint, numDir)

	switch model {
	case GouraudDiffuse, Gouraud:
		vertex = join(defines, shaders.Lighting, shaders.GouraudVertex)
		fragment = join(defines, shaders.GouraudFragment)
	default:
		vertex = join(defines, shaders.PhongVertex)
		fragment = join(defines, shaders.Lighting, shaders.PhongFragment)
	}
	return vertex, fragment
}

func header(model Model, numPoint, numDir int) string {
	var b strings.Builder
	b.WriteString(Version)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "#define NUM_POINT_LIGHTS %d\n", max(numPoint, 0))
	fmt.Fprintf(&b, "#define NUM_DIR_LIGHTS %d\n", max(numDir, 0))
	b.WriteString("#define EPSILON 1e-6\n")
	if model == GouraudDiffuse {
		b.WriteString("#define DIFFUSE_ONLY\n")
	}
	return b.String()
}

func join(parts ...string) string {
	return strings.Join(parts, "\n")
}
