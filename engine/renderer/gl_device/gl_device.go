// Package gl_device implements device.Device on OpenGL 4.1 core through go-gl.
package gl_device

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/device"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = 4

// glDevice holds no state of its own; the GL context it talks to is the one current on the
// calling thread when NewDevice ran.
type glDevice struct {
	version string
}

var _ device.Device = &glDevice{}

// NewDevice loads the OpenGL function pointers for the current context.
// A window with a current GL context must exist before this is called.
//
// go-gl: https://pkg.go.dev/github.com/go-gl/gl/v4.1-core/gl#Init
//
// Returns:
//   - device.Device: the OpenGL device
//   - error: error if the function pointers could not be loaded
func NewDevice() (device.Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return &glDevice{version: gl.GoStr(gl.GetString(gl.VERSION))}, nil
}

func stageEnum(stage device.ShaderStage) uint32 {
	if stage == device.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (d *glDevice) CompileShader(stage device.ShaderStage, source string) (uint32, string, bool) {
	shader := gl.CreateShader(stageEnum(stage))

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return shader, strings.TrimRight(log, "\x00"), false
	}
	return shader, "", true
}

func (d *glDevice) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *glDevice) LinkProgram(shaders ...uint32) (uint32, string, bool) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return program, strings.TrimRight(log, "\x00"), false
	}
	for _, s := range shaders {
		gl.DetachShader(program, s)
	}
	return program, "", true
}

func (d *glDevice) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *glDevice) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *glDevice) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *glDevice) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *glDevice) UniformMatrix4(location int32, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *glDevice) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	return vao
}

func (d *glDevice) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *glDevice) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *glDevice) CreateStaticBuffer(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)
	}
	return vbo
}

func (d *glDevice) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *glDevice) EnableVertexAttribute(location uint32, size, stride, offset int32) {
	gl.EnableVertexAttribArray(location)
	gl.VertexAttribPointerWithOffset(location, size, gl.FLOAT, false, stride, uintptr(offset))
}

func (d *glDevice) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

func (d *glDevice) Clear(r, g, b, a float32, depth bool) {
	gl.ClearColor(r, g, b, a)
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

func (d *glDevice) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}

func (d *glDevice) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (d *glDevice) Version() string {
	return d.version
}
