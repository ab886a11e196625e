// Package scene renders the ocean surface with OpenGL.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/smarkuck/Tessendorf-Waves/internal/engine/scene/shaders"
	"github.com/smarkuck/Tessendorf-Waves/internal/engine/shader"
)

// Default colors for the reflection shading.
var (
	DefaultSkyColor   = mgl32.Vec3{0.62, 0.78, 0.92}
	DefaultWaterColor = mgl32.Vec3{0.0, 0.16, 0.26}
)

// OceanRenderer draws an ocean surface mesh made of triangle strips.
type OceanRenderer struct {
	program *shader.Program

	vao       uint32
	posVBO    uint32
	normalVBO uint32

	// Mesh layout
	strips      int
	stripLength int

	SkyColor   mgl32.Vec3
	WaterColor mgl32.Vec3
	SunDir     mgl32.Vec3 // Unit vector towards the sun
	LineMode   bool
}

// NewOceanRenderer compiles the ocean program and allocates its buffers.
func NewOceanRenderer(sunDir mgl32.Vec3) (*OceanRenderer, error) {
	program, err := shader.Compile(shaders.OceanVertexShader, shaders.OceanFragmentShader, map[uint32]string{
		shaders.AttribPosition: "pos",
		shaders.AttribNormal:   "normal",
	})
	if err != nil {
		return nil, fmt.Errorf("ocean shader: %w", err)
	}

	r := &OceanRenderer{
		program:    program,
		SkyColor:   DefaultSkyColor,
		WaterColor: DefaultWaterColor,
		SunDir:     sunDir,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.posVBO)
	gl.VertexAttribPointerWithOffset(shaders.AttribPosition, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(shaders.AttribPosition)

	gl.GenBuffers(1, &r.normalVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.normalVBO)
	gl.VertexAttribPointerWithOffset(shaders.AttribNormal, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(shaders.AttribNormal)

	gl.BindVertexArray(0)

	return r, nil
}

// SetLayout records how the uploaded vertices split into strips.
func (r *OceanRenderer) SetLayout(strips, stripLength int) {
	r.strips = strips
	r.stripLength = stripLength
}

// Upload replaces the vertex positions and normals. Both are xyz triples of
// equal length and are re-sent every frame.
func (r *OceanRenderer) Upload(positions, normals []float32) {
	if len(positions) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.normalVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(normals)*4, gl.Ptr(normals), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws the surface once per model matrix.
func (r *OceanRenderer) Render(view, proj mgl32.Mat4, eye mgl32.Vec3, models []mgl32.Mat4) {
	if r.vao == 0 || r.strips == 0 {
		return
	}

	r.program.Use()

	if r.LineMode {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		gl.Uniform1i(r.program.Uniform("isColor"), 1)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		gl.Uniform1i(r.program.Uniform("isColor"), 0)
	}

	gl.UniformMatrix4fv(r.program.Uniform("V"), 1, false, &view[0])
	gl.UniformMatrix4fv(r.program.Uniform("P"), 1, false, &proj[0])
	gl.Uniform3fv(r.program.Uniform("cameraPosition"), 1, &eye[0])
	gl.Uniform3fv(r.program.Uniform("skyColor"), 1, &r.SkyColor[0])
	gl.Uniform3fv(r.program.Uniform("waterColor"), 1, &r.WaterColor[0])
	gl.Uniform3fv(r.program.Uniform("sunDir"), 1, &r.SunDir[0])

	locM := r.program.Uniform("M")

	gl.BindVertexArray(r.vao)
	for i := range models {
		gl.UniformMatrix4fv(locM, 1, false, &models[i][0])
		for s := 0; s < r.strips; s++ {
			gl.DrawArrays(gl.TRIANGLE_STRIP, int32(s*r.stripLength), int32(r.stripLength))
		}
	}
	gl.BindVertexArray(0)

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// Destroy releases all resources.
func (r *OceanRenderer) Destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.posVBO != 0 {
		gl.DeleteBuffers(1, &r.posVBO)
		r.posVBO = 0
	}
	if r.normalVBO != 0 {
		gl.DeleteBuffers(1, &r.normalVBO)
		r.normalVBO = 0
	}
	if r.program != nil {
		r.program.Delete()
	}
}
