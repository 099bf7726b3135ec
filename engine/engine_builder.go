package engine

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window the engine drives. Its cursor and keys feed the fly camera.
//
// Parameters:
//   - w: a created Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer that draws each frame.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCamera sets the camera instead of the default 45 degree perspective camera.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithController sets the fly camera controller used by fly scenes.
//
// Parameters:
//   - cc: the controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(cc camera.CameraController) EngineBuilderOption {
	return func(e *engine) {
		e.controller = cc
	}
}

// WithSamplerOptions configures the input sampler created for the window, e.g. key bindings.
//
// Parameters:
//   - options: sampler options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSamplerOptions(options ...input.SamplerBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.samplerOpt = append(e.samplerOpt, options...)
	}
}

// WithMaxFrames stops Run after the given number of frames.
//
// Parameters:
//   - frames: frame limit, 0 runs until the window closes
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMaxFrames(frames uint64) EngineBuilderOption {
	return func(e *engine) {
		e.maxFrames = frames
	}
}
