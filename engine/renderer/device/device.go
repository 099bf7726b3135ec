// Package device defines the rendering backend contract. The render loop and shader loader hold
// an explicit Device handle instead of relying on an implicitly bound graphics context.
package device

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	// StageVertex is the vertex shader stage.
	StageVertex ShaderStage = iota
	// StageFragment is the fragment shader stage.
	StageFragment
)

// String returns the lowercase stage name.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// VertexAttribute describes one float attribute inside an interleaved vertex buffer.
type VertexAttribute struct {
	// Name is the attribute name in the vertex shader.
	Name string
	// Location is the fixed attribute location, or -1 to look it up by name.
	Location int32
	// Size is the number of float components (1-4).
	Size int32
	// Offset is the byte offset inside one vertex.
	Offset int32
}

// Device is the rendering backend collaborator. All calls must happen on the thread that owns
// the graphics context.
type Device interface {
	// CompileShader creates and compiles a shader object.
	//
	// Parameters:
	//   - stage: the shader stage
	//   - source: GLSL source text
	//
	// Returns:
	//   - uint32: the shader handle (valid even when compilation fails, so it can be deleted)
	//   - string: the backend's info log when compilation failed, empty on success
	//   - bool: true if compilation succeeded
	CompileShader(stage ShaderStage, source string) (uint32, string, bool)

	// DeleteShader releases a shader object.
	DeleteShader(shader uint32)

	// LinkProgram creates a program, attaches the shaders and links it.
	//
	// Parameters:
	//   - shaders: compiled shader handles
	//
	// Returns:
	//   - uint32: the program handle
	//   - string: the link info log when linking failed, empty on success
	//   - bool: true if linking succeeded
	LinkProgram(shaders ...uint32) (uint32, string, bool)

	// DeleteProgram releases a program object.
	DeleteProgram(program uint32)

	// UseProgram binds a program for subsequent draws.
	UseProgram(program uint32)

	// UniformLocation returns the location of a uniform, or -1 if the program has none by that name.
	UniformLocation(program uint32, name string) int32

	// AttribLocation returns the location of a vertex attribute, or -1 if not found.
	AttribLocation(program uint32, name string) int32

	// UniformMatrix4 uploads a column-major 4x4 float matrix to the bound program.
	UniformMatrix4(location int32, m [16]float32)

	// CreateVertexArray creates and binds a vertex array object.
	CreateVertexArray() uint32

	// BindVertexArray binds a vertex array object.
	BindVertexArray(vao uint32)

	// DeleteVertexArray releases a vertex array object.
	DeleteVertexArray(vao uint32)

	// CreateStaticBuffer creates an array buffer and uploads data once with static usage.
	// The buffer stays bound.
	CreateStaticBuffer(data []float32) uint32

	// DeleteBuffer releases a buffer.
	DeleteBuffer(buffer uint32)

	// EnableVertexAttribute enables and points one attribute at the bound buffer.
	//
	// Parameters:
	//   - location: attribute location
	//   - size: float components per vertex
	//   - stride: bytes between consecutive vertices
	//   - offset: byte offset of the attribute inside a vertex
	EnableVertexAttribute(location uint32, size, stride, offset int32)

	// DrawTriangles draws count vertices from first as a triangle list.
	DrawTriangles(first, count int32)

	// Clear clears the color buffer, and the depth buffer if depth is true.
	Clear(r, g, b, a float32, depth bool)

	// EnableDepthTest turns on depth testing with a less-than comparison.
	EnableDepthTest()

	// Viewport sets the viewport to the framebuffer size.
	Viewport(width, height int32)

	// Version returns a human-readable backend version string.
	Version() string
}
