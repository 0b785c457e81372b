// Package shaders provides embedded GLSL shader sources.
//
// The sources carry no #version line and no light-count defines; the shader
// package prepends both when it assembles a program.
package shaders

import _ "embed"

// Lighting holds the material, light uniforms and the reflection model shared
// by every lit stage.
//
//go:embed lighting.glsl
var Lighting string

// GouraudVertex lights each vertex and passes the colour on.
//
//go:embed gouraud.vert
var GouraudVertex string

// GouraudFragment writes the interpolated vertex colour.
//
//go:embed gouraud.frag
var GouraudFragment string

// PhongVertex passes view-space position and normal to the fragment stage.
//
//go:embed phong.vert
var PhongVertex string

// PhongFragment lights each fragment.
//
//go:embed phong.frag
var PhongFragment string
