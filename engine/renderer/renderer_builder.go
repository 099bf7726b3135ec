package renderer

import (
	"io/fs"

	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithProgram pre-registers a linked program in the renderer's program cache.
// Scenes reading the same shader paths from the same file system reuse it instead of compiling.
//
// Parameters:
//   - fsys: the file system the shaders would be read from
//   - vertexPath: path of the vertex shader
//   - fragmentPath: path of the fragment shader
//   - p: the linked program
//
// Returns:
//   - RendererBuilderOption: a function that applies the program option to a renderer
func WithProgram(fsys fs.FS, vertexPath, fragmentPath string, p shader.Program) RendererBuilderOption {
	return func(r *renderer) {
		r.programCache[ProgramKey(fsys, vertexPath, fragmentPath)] = cachedProgram{fsys: fsys, program: p}
	}
}

// WithViewport sets the initial viewport size.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the viewport option to a renderer
func WithViewport(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingViewport = &[2]int{width, height}
	}
}
