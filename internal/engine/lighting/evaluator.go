package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/hmdview/pkg/math"
)

// epsilon floors the attenuation denominator so a light sitting on the
// surface stays finite.
const epsilon float32 = 1e-6

// Evaluator computes reflected colour for an Environment seen through View.
type Evaluator struct {
	Env  Environment
	View math.Mat4

	// DiffuseOnly drops the specular term, as the Gouraud-diffuse program does.
	DiffuseOnly bool
}

// NewEvaluator creates an evaluator for env and the given view matrix.
func NewEvaluator(env Environment, view math.Mat4) *Evaluator {
	return &Evaluator{Env: env, View: view}
}

// Ambient returns the ambient reflection. It is independent of the lights.
func (e *Evaluator) Ambient(m Material) math.Vec3 {
	return m.Ambient.Mul(e.Env.AmbientColor)
}

// Fragment shades a surface point given its view-space normal and position.
// This is the per-fragment (Phong) path.
func (e *Evaluator) Fragment(m Material, normal, position math.Vec3) math.Vec3 {
	n := normal.Normalize()
	color := e.Ambient(m)

	for _, light := range e.Env.PointLights {
		lightPos := e.View.TransformPoint(light.Position)
		lightVec := lightPos.Sub(position)
		atten := e.Env.Attenuation.Factor(lightVec.Length())
		color = color.Add(e.reflect(m, light.Color, lightVec.Normalize(), n, position).Scale(atten))
	}

	for _, light := range e.Env.DirectionalLights {
		color = color.Add(e.reflect(m, light.Color, light.Direction.Normalize(), n, position))
	}

	return color
}

// Vertex shades an object-space vertex. The position and normal are taken to
// view space with modelView and normalMat before evaluation, so the result
// equals Fragment at the same view-space point. This is the per-vertex
// (Gouraud) path.
func (e *Evaluator) Vertex(m Material, modelView math.Mat4, normalMat math.Mat3, position, normal math.Vec3) math.Vec3 {
	return e.Fragment(m, normalMat.MulVec3(normal), modelView.TransformPoint(position))
}

// reflect returns diffuse plus specular for a unit light direction l and
// unit normal n at view-space position p.
func (e *Evaluator) reflect(m Material, lightColor, l, n, p math.Vec3) math.Vec3 {
	diffuse := m.Diffuse.Mul(lightColor).Scale(math32.Max(n.Dot(l), 0))
	if e.DiffuseOnly {
		return diffuse
	}

	v := p.Negate().Normalize()
	r := l.Negate().Reflect(n)
	spec := math32.Pow(math32.Max(r.Dot(v), 0), m.Shininess)

	return diffuse.Add(m.Specular.Mul(lightColor).Scale(spec))
}
