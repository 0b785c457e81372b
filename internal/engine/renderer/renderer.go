// Package renderer draws the lit demo mesh with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hmdview/internal/engine/camera"
	"github.com/Faultbox/hmdview/internal/engine/lighting"
	"github.com/Faultbox/hmdview/internal/engine/mesh"
	"github.com/Faultbox/hmdview/internal/engine/shader"
	"github.com/Faultbox/hmdview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	model    shader.Model
	program  uint32
	uniforms *shader.Uniforms
	lights   *lighting.LightBuffer

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		model:  -1,
		lights: lighting.NewLightBuffer(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.deleteMesh()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// Resize handles window resize. width and height are drawable pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current drawable size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// UploadMesh replaces the drawn geometry.
func (r *Renderer) UploadMesh(m *mesh.Mesh) error {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("empty mesh")
	}
	r.deleteMesh()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	data := m.Interleaved()
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	// position(3) + normal(3) floats
	stride := int32(mesh.FloatsPerVertex * 4)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)

	gl.BindVertexArray(0)
	r.indexCount = int32(len(m.Indices))

	center := m.Bounds.Center()
	r.log.Debug("mesh uploaded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Float32s("center", center[:]),
	)
	return nil
}

func (r *Renderer) deleteMesh() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	r.indexCount = 0
}

// SetShading selects the shading model and scene lights. The program is
// rebuilt only when the model or a light count changes.
func (r *Renderer) SetShading(model shader.Model, env lighting.Environment) error {
	prevPoint, prevDir := len(r.lights.Point), len(r.lights.Directional)
	if dropped := r.lights.SetEnvironment(env); dropped > 0 {
		r.log.Warn("too many lights, extra lights ignored",
			zap.Int("dropped", dropped),
			zap.Int("max_point", lighting.MaxPointLights),
			zap.Int("max_directional", lighting.MaxDirectionalLights),
		)
	}

	numPoint, numDir := len(r.lights.Point), len(r.lights.Directional)
	if r.program != 0 && model == r.model && numPoint == prevPoint && numDir == prevDir {
		return nil
	}

	program, err := buildProgram(model, numPoint, numDir)
	if err != nil {
		return err
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}

	r.program = program
	r.model = model
	r.uniforms = locateUniforms(program, numPoint, numDir)

	r.log.Info("shading program built",
		zap.Stringer("model", model),
		zap.Int("point_lights", numPoint),
		zap.Int("directional_lights", numDir),
	)
	return nil
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the uploaded mesh with the given transforms and material.
// SetShading must have been called first.
func (r *Renderer) Draw(m camera.Matrices, mat lighting.Material, env lighting.Environment) {
	if r.program == 0 || r.vao == 0 {
		return
	}

	gl.UseProgram(r.program)
	u := r.uniforms

	modelView := m.ModelView()
	normalMat := m.NormalMatrix()
	gl.UniformMatrix4fv(u.ModelViewMat, 1, false, modelView.Ptr())
	gl.UniformMatrix4fv(u.ProjectionMat, 1, false, m.Projection.Ptr())
	gl.UniformMatrix4fv(u.ViewMat, 1, false, m.View.Ptr())
	gl.UniformMatrix3fv(u.NormalMat, 1, false, normalMat.Ptr())

	gl.Uniform3f(u.MaterialAmbient, mat.Ambient.X, mat.Ambient.Y, mat.Ambient.Z)
	gl.Uniform3f(u.MaterialDiffuse, mat.Diffuse.X, mat.Diffuse.Y, mat.Diffuse.Z)
	gl.Uniform3f(u.MaterialSpecular, mat.Specular.X, mat.Specular.Y, mat.Specular.Z)
	gl.Uniform1f(u.MaterialShininess, mat.Shininess)

	att := env.Attenuation.Array()
	gl.Uniform3fv(u.Attenuation, 1, &att[0])
	gl.Uniform3f(u.AmbientLightColor, env.AmbientColor.X, env.AmbientColor.Y, env.AmbientColor.Z)

	uploadLights(u.PointLights, r.lights.PointPositions(), r.lights.PointColors())
	uploadLights(u.DirectionalLights, r.lights.DirectionalDirections(), r.lights.DirectionalColors())

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func uploadLights(locs []shader.LightUniforms, vectors, colors []float32) {
	for i, loc := range locs {
		if (i+1)*3 > len(vectors) {
			return
		}
		gl.Uniform3fv(loc.Vector, 1, &vectors[i*3])
		gl.Uniform3fv(loc.Color, 1, &colors[i*3])
	}
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() []byte {
	width, height := r.config.Width, r.config.Height
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
