package scene

import (
	"embed"
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed assets/shaders/*
var embeddedShaders embed.FS

var shaderAssets = mustSub(embeddedShaders, "assets/shaders")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}

// Shaders returns the embedded shader assets rooted at the shaders directory.
// Every call returns the same fs.FS value.
//
// Returns:
//   - fs.FS: file system containing triangle.vert, triangle.frag, cube.vert and cube.frag
func Shaders() fs.FS {
	return shaderAssets
}

// CameraMode selects how a scene builds its view matrix.
type CameraMode int

const (
	// CameraNone draws without an MVP uniform.
	CameraNone CameraMode = iota
	// CameraStatic uses a fixed look-at.
	CameraStatic
	// CameraFly drives the view from the first-person controller.
	CameraFly
)

// String returns the lowercase mode name.
func (m CameraMode) String() string {
	switch m {
	case CameraStatic:
		return "static"
	case CameraFly:
		return "fly"
	default:
		return "none"
	}
}

// scene is the implementation of the Scene interface.
type scene struct {
	name           string
	active         bool
	clearColor     [4]float32
	depthTest      bool
	geometry       Geometry
	shaderFS       fs.FS
	vertexShader   string
	fragmentShader string
	cameraMode     CameraMode
	model          mgl32.Mat4
	eye            mgl32.Vec3
	target         mgl32.Vec3
	up             mgl32.Vec3
}

// Scene describes one step of the progression: what to clear to, what to draw, with which
// shaders, and how the camera behaves.
type Scene interface {
	// Name returns the scene's name.
	Name() string

	// Active reports whether the scene should be drawn.
	Active() bool

	// SetActive toggles drawing of the scene.
	SetActive(active bool)

	// ClearColor returns the RGBA clear color.
	ClearColor() [4]float32

	// DepthTest reports whether depth testing is enabled.
	DepthTest() bool

	// Geometry returns the static vertex data. Empty for clear-only scenes.
	Geometry() Geometry

	// ShaderFS returns the file system the shader paths resolve against.
	ShaderFS() fs.FS

	// ShaderPaths returns the vertex and fragment shader paths inside ShaderFS.
	ShaderPaths() (vertex, fragment string)

	// SetShaderFS replaces the file system shader paths resolve against.
	SetShaderFS(fsys fs.FS)

	// CameraMode returns how the view matrix is produced.
	CameraMode() CameraMode

	// Model returns the object transform.
	Model() mgl32.Mat4

	// LookAt returns the static eye, target and up for CameraStatic.
	LookAt() (eye, target, up mgl32.Vec3)
}

var _ Scene = &scene{}

// NewScene creates a scene with the given name. Defaults: active, black clear color, no
// geometry, embedded shaders, no camera, identity model, look-at from (0,0,5) to the origin.
//
// Parameters:
//   - name: the scene name
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		name:       name,
		active:     true,
		clearColor: [4]float32{0, 0, 0, 1},
		shaderFS:   Shaders(),
		model:      mgl32.Ident4(),
		eye:        mgl32.Vec3{0, 0, 5},
		up:         mgl32.Vec3{0, 1, 0},
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Active() bool {
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.active = active
}

func (s *scene) ClearColor() [4]float32 {
	return s.clearColor
}

func (s *scene) DepthTest() bool {
	return s.depthTest
}

func (s *scene) Geometry() Geometry {
	return s.geometry
}

func (s *scene) ShaderFS() fs.FS {
	return s.shaderFS
}

func (s *scene) ShaderPaths() (string, string) {
	return s.vertexShader, s.fragmentShader
}

func (s *scene) SetShaderFS(fsys fs.FS) {
	s.shaderFS = fsys
}

func (s *scene) CameraMode() CameraMode {
	return s.cameraMode
}

func (s *scene) Model() mgl32.Mat4 {
	return s.model
}

func (s *scene) LookAt() (mgl32.Vec3, mgl32.Vec3, mgl32.Vec3) {
	return s.eye, s.target, s.up
}
