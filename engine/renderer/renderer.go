package renderer

import (
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// MVPUniform is the uniform name the renderer uploads the model-view-projection matrix to.
const MVPUniform = "MVP"

// mesh holds the GPU objects created for one scene's static geometry.
type mesh struct {
	program     shader.Program
	vao         uint32
	vbo         uint32
	vertexCount int32
	mvpLocation int32
}

// cachedProgram keeps the file system a program was compiled from alive, so its identity in
// the cache key cannot be reused by another value.
type cachedProgram struct {
	fsys    fs.FS
	program shader.Program
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	dev          device.Device
	programCache map[string]cachedProgram

	scene      scene.Scene
	mesh       *mesh
	clearColor [4]float32
	depthTest  bool

	pendingViewport *[2]int
}

// ProgramKey builds the program cache key for a pair of shader paths read from fsys.
// The same paths in two different file systems produce different keys.
//
// Parameters:
//   - fsys: the file system the shaders are read from
//   - vertexPath: path of the vertex shader
//   - fragmentPath: path of the fragment shader
//
// Returns:
//   - string: the cache key
func ProgramKey(fsys fs.FS, vertexPath, fragmentPath string) string {
	return fsIdentity(fsys) + "|" + vertexPath + "+" + fragmentPath
}

// fsIdentity names a file system value. Reference types are identified by address, value
// types such as os.DirFS by their contents.
func fsIdentity(fsys fs.FS) string {
	if fsys == nil {
		return "<nil>"
	}
	v := reflect.ValueOf(fsys)
	switch v.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("%T@%#x", fsys, v.Pointer())
	default:
		return fmt.Sprintf("%T:%#v", fsys, fsys)
	}
}

// Renderer defines the interface for the rendering system.
//
// The Renderer owns the GPU objects of the loaded scene: its linked program, vertex array and
// static vertex buffer. Programs are cached by key so reloading a scene with the same shaders
// does not recompile them. All methods must be called on the thread owning the graphics context.
type Renderer interface {
	// Device returns the backend the renderer draws through.
	//
	// Returns:
	//   - device.Device: the rendering device
	Device() device.Device

	// Program retrieves the cached program for the given key.
	//
	// Parameters:
	//   - key: the program key built by ProgramKey
	//
	// Returns:
	//   - shader.Program: the cached program
	//   - bool: false if no program is cached under key
	Program(key string) (shader.Program, bool)

	// Programs retrieves a copy of the program cache.
	//
	// Returns:
	//   - map[string]shader.Program: program keys to programs
	Programs() map[string]shader.Program

	// LoadScene prepares a scene for drawing. Shaders are read from the scene's file system and
	// compiled, and the geometry is uploaded once into a static buffer. Only after that succeeds
	// are the previous scene's buffers released and the new scene made current; on error the
	// previous scene stays loaded. Clear-only scenes need no shaders.
	//
	// Parameters:
	//   - s: the scene to load
	//
	// Returns:
	//   - error: a read error, a *shader.CompileError, or an attribute lookup error
	LoadScene(s scene.Scene) error

	// Scene returns the loaded scene, or nil.
	//
	// Returns:
	//   - scene.Scene: the loaded scene
	Scene() scene.Scene

	// Resize sets the viewport to a new framebuffer size.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// Draw clears the framebuffer and draws the loaded scene's geometry with the given matrix.
	// The matrix is only uploaded when the program declares an MVP uniform.
	//
	// Parameters:
	//   - mvp: the model-view-projection matrix for this frame
	Draw(mvp mgl32.Mat4)

	// Release deletes all cached programs and the loaded scene's vertex array and buffer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer that draws through the given device.
//
// Parameters:
//   - dev: the rendering device
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new Renderer instance
func NewRenderer(dev device.Device, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:           &sync.Mutex{},
		dev:          dev,
		programCache: make(map[string]cachedProgram),
		clearColor:   [4]float32{0, 0, 0, 1},
	}

	for _, opt := range options {
		opt(r)
	}

	if r.pendingViewport != nil {
		r.dev.Viewport(int32(r.pendingViewport[0]), int32(r.pendingViewport[1]))
	}
	return r
}

func (r *renderer) Device() device.Device {
	return r.dev
}

func (r *renderer) Program(key string) (shader.Program, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.programCache[key]
	return c.program, ok
}

func (r *renderer) Programs() map[string]shader.Program {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make(map[string]shader.Program, len(r.programCache))
	for k, c := range r.programCache {
		cp[k] = c.program
	}
	return cp
}

func (r *renderer) Scene() scene.Scene {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scene
}

func (r *renderer) LoadScene(s scene.Scene) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var m *mesh
	if g := s.Geometry(); !g.Empty() {
		var err error
		if m, err = r.buildMesh(s, g); err != nil {
			return err
		}
	}

	r.releaseMesh()
	r.mesh = m
	r.scene = s
	r.clearColor = s.ClearColor()
	if s.DepthTest() && !r.depthTest {
		r.dev.EnableDepthTest()
		r.depthTest = true
	}
	return nil
}

// buildMesh compiles the scene's program and uploads its geometry. Attribute locations are
// resolved before any vertex array or buffer is created, so a failure allocates nothing.
// Caller must hold the mutex.
func (r *renderer) buildMesh(s scene.Scene, g scene.Geometry) (*mesh, error) {
	program, err := r.program(s)
	if err != nil {
		return nil, err
	}

	locations := make([]uint32, len(g.Attributes))
	for i, attr := range g.Attributes {
		location := attr.Location
		if location < 0 {
			location = r.dev.AttribLocation(program.Handle, attr.Name)
		}
		if location < 0 {
			return nil, fmt.Errorf("program %q has no vertex attribute %q", program.Key, attr.Name)
		}
		locations[i] = uint32(location)
	}

	m := &mesh{
		program:     program,
		vertexCount: g.VertexCount(),
		mvpLocation: r.dev.UniformLocation(program.Handle, MVPUniform),
	}
	m.vao = r.dev.CreateVertexArray()
	m.vbo = r.dev.CreateStaticBuffer(g.Vertices)
	for i, attr := range g.Attributes {
		r.dev.EnableVertexAttribute(locations[i], attr.Size, g.Stride, attr.Offset)
	}
	return m, nil
}

// program returns the cached program for the scene's file system and shader paths, compiling
// it on first use.
// Caller must hold the mutex.
func (r *renderer) program(s scene.Scene) (shader.Program, error) {
	fsys := s.ShaderFS()
	vertexPath, fragmentPath := s.ShaderPaths()
	key := ProgramKey(fsys, vertexPath, fragmentPath)
	if c, ok := r.programCache[key]; ok {
		return c.program, nil
	}

	vertex, fragment, err := shader.LoadPair(fsys, vertexPath, fragmentPath)
	if err != nil {
		return shader.Program{}, err
	}
	p, err := shader.CompileProgram(r.dev, vertex, fragment)
	if err != nil {
		return shader.Program{}, err
	}
	r.programCache[key] = cachedProgram{fsys: fsys, program: p}
	return p, nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dev.Viewport(int32(width), int32(height))
}

func (r *renderer) Draw(mvp mgl32.Mat4) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.clearColor
	r.dev.Clear(c[0], c[1], c[2], c[3], r.depthTest)

	if r.mesh == nil || r.scene == nil || !r.scene.Active() {
		return
	}

	r.dev.UseProgram(r.mesh.program.Handle)
	r.dev.BindVertexArray(r.mesh.vao)
	if r.mesh.mvpLocation >= 0 {
		r.dev.UniformMatrix4(r.mesh.mvpLocation, mvp)
	}
	r.dev.DrawTriangles(0, r.mesh.vertexCount)
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseMesh()
	for key, c := range r.programCache {
		r.dev.DeleteProgram(c.program.Handle)
		delete(r.programCache, key)
	}
}

// releaseMesh deletes the loaded scene's vertex array and buffer.
// Caller must hold the mutex.
func (r *renderer) releaseMesh() {
	if r.mesh == nil {
		return
	}
	r.dev.DeleteBuffer(r.mesh.vbo)
	r.dev.DeleteVertexArray(r.mesh.vao)
	r.mesh = nil
}
