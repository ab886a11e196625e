// Package shaders embeds the GLSL sources used by the scene renderers.
package shaders

import _ "embed"

// Attribute indices shared by the ocean shaders and the renderer's VAO.
const (
	AttribPosition = 0
	AttribNormal   = 1
)

//go:embed ocean.vert
var OceanVertexShader string

//go:embed ocean.frag
var OceanFragmentShader string
