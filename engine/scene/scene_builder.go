package scene

import (
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithClearColor sets the RGBA color the framebuffer is cleared to each frame.
//
// Parameters:
//   - r, g, b, a: color components in [0, 1]
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithClearColor(r, g, b, a float32) SceneBuilderOption {
	return func(s *scene) {
		s.clearColor = [4]float32{r, g, b, a}
	}
}

// WithDepthTest enables depth testing and depth buffer clears.
//
// Parameters:
//   - enabled: true to enable depth testing
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDepthTest(enabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.depthTest = enabled
	}
}

// WithGeometry sets the static geometry drawn each frame.
//
// Parameters:
//   - g: the vertex data and layout
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithGeometry(g Geometry) SceneBuilderOption {
	return func(s *scene) {
		s.geometry = g
	}
}

// WithShaders sets the vertex and fragment shader paths inside the scene's shader file system.
//
// Parameters:
//   - vertex: path of the vertex shader
//   - fragment: path of the fragment shader
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShaders(vertex, fragment string) SceneBuilderOption {
	return func(s *scene) {
		s.vertexShader = vertex
		s.fragmentShader = fragment
	}
}

// WithShaderFS sets the file system shader paths resolve against. Defaults to the embedded assets.
//
// Parameters:
//   - fsys: the shader file system
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShaderFS(fsys fs.FS) SceneBuilderOption {
	return func(s *scene) {
		s.shaderFS = fsys
	}
}

// WithCameraMode sets how the view matrix is produced.
//
// Parameters:
//   - mode: CameraNone, CameraStatic or CameraFly
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCameraMode(mode CameraMode) SceneBuilderOption {
	return func(s *scene) {
		s.cameraMode = mode
	}
}

// WithModel sets the object transform.
//
// Parameters:
//   - model: the model matrix
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithModel(model mgl32.Mat4) SceneBuilderOption {
	return func(s *scene) {
		s.model = model
	}
}

// WithLookAt sets the static eye, target and up vectors used by CameraStatic.
//
// Parameters:
//   - eye: camera position
//   - target: point to look at
//   - up: up vector
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLookAt(eye, target, up mgl32.Vec3) SceneBuilderOption {
	return func(s *scene) {
		s.eye, s.target, s.up = eye, target, up
	}
}
