package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/Carmen-Shannon/oxy-gl/engine/timing"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrNoWindow is returned by Run when the engine was built without a window.
	ErrNoWindow = errors.New("engine has no window")
	// ErrNoRenderer is returned by Run when the engine was built without a renderer.
	ErrNoRenderer = errors.New("engine has no renderer")
)

// engine implements the Engine interface.
// Everything runs on the caller's thread, which must own the graphics context.
type engine struct {
	window   window.Window
	renderer renderer.Renderer

	camera     camera.Camera
	controller camera.CameraController
	sampler    input.Sampler
	samplerOpt []input.SamplerBuilderOption

	scene scene.Scene
	clock *timing.FrameClock

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback func(t timing.FrameTiming)
	maxFrames     uint64 // 0 = run until closed

	quitChannel chan struct{}
	quitOnce    sync.Once
}

// Engine is the main entry point for the engine.
// It owns the frame loop: sample input, integrate the fly camera, compose the MVP, draw, swap
// and poll events.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the renderer drawing the scene.
	//
	// Returns:
	//   - renderer.Renderer: the renderer
	Renderer() renderer.Renderer

	// Camera returns the camera producing the view and projection matrices.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Controller returns the fly camera controller.
	//
	// Returns:
	//   - camera.CameraController: the controller
	Controller() camera.CameraController

	// Scene returns the loaded scene, or nil.
	//
	// Returns:
	//   - scene.Scene: the loaded scene
	Scene() scene.Scene

	// LoadScene uploads the scene through the renderer and configures the camera for its mode.
	// Fly scenes attach the controller, hide the cursor and center it.
	//
	// Parameters:
	//   - s: the scene to load
	//
	// Returns:
	//   - error: the renderer's load error, e.g. a *shader.CompileError
	LoadScene(s scene.Scene) error

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameCallback registers a function called at the end of every frame.
	//
	// Parameters:
	//   - callback: function receiving the frame's timing
	SetFrameCallback(callback func(t timing.FrameTiming))

	// Frames returns how many frames have run.
	//
	// Returns:
	//   - uint64: the frame count
	Frames() uint64

	// Run drives the frame loop until the window should close, the context is canceled, Quit
	// is called, or the frame limit is reached. Blocks the calling thread.
	//
	// Parameters:
	//   - ctx: cancels the loop between frames
	//
	// Returns:
	//   - error: ErrNoWindow or ErrNoRenderer if the engine is incomplete
	Run(ctx context.Context) error

	// Quit stops the loop after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// A default camera and fly controller are created when none are supplied.
//
// Parameters:
//   - options: functional options for engine configuration (window, renderer, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		clock:            timing.NewFrameClock(),
		quitChannel:      make(chan struct{}),
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.controller == nil {
		e.controller = camera.NewCameraController()
	}
	if e.camera == nil {
		e.camera = camera.NewCamera()
	}

	if e.window != nil {
		e.sampler = input.NewSampler(e.window, e.samplerOpt...)
		e.window.SetResizeCallback(e.resize)
		e.resize(e.window.FramebufferSize())
	}

	return e
}

// resize keeps the viewport and the projection aspect ratio in step with the framebuffer.
func (e *engine) resize(width, height int) {
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	if width > 0 && height > 0 {
		e.camera.SetAspect(float32(width) / float32(height))
	}
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) LoadScene(s scene.Scene) error {
	if e.renderer == nil {
		return ErrNoRenderer
	}
	if err := e.renderer.LoadScene(s); err != nil {
		return fmt.Errorf("failed to load scene %q: %w", s.Name(), err)
	}
	e.scene = s

	switch s.CameraMode() {
	case scene.CameraFly:
		e.camera.SetController(e.controller)
		if e.window != nil {
			e.window.SetCursorHidden(true)
			width, height := e.window.Size()
			e.window.SetCursorPos(float64(width)/2, float64(height)/2)
		}
	default:
		e.camera.SetController(nil)
		e.camera.SetLookAt(s.LookAt())
		if e.window != nil {
			e.window.SetCursorHidden(false)
		}
	}

	e.clock.Reset()
	log.Printf("[Engine] loaded scene %q (camera: %s)", s.Name(), s.CameraMode())
	return nil
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameCallback(callback func(t timing.FrameTiming)) {
	e.frameCallback = callback
}

func (e *engine) Frames() uint64 {
	return e.clock.Frames()
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) Run(ctx context.Context) error {
	if e.window == nil {
		return ErrNoWindow
	}
	if e.renderer == nil {
		return ErrNoRenderer
	}

	for !e.window.ShouldClose() {
		select {
		case <-ctx.Done():
			log.Printf("[Engine] stopping: %v", ctx.Err())
			return nil
		case <-e.quitChannel:
			return nil
		default:
		}

		e.frame()

		if e.maxFrames > 0 && e.clock.Frames() >= e.maxFrames {
			return nil
		}
	}
	return nil
}

// frame runs one iteration of the loop.
func (e *engine) frame() {
	t := e.clock.Tick(e.window.Time())

	mvp := mgl32.Ident4()
	if e.scene != nil {
		if e.scene.CameraMode() == scene.CameraFly {
			e.controller.Update(e.sampler.Sample(), t.DeltaTime)
		}
		if e.scene.CameraMode() != scene.CameraNone {
			e.camera.Update()
			mvp = e.camera.Transforms(e.scene.Model()).MVP
		}
	}

	e.renderer.Draw(mvp)
	e.window.SwapBuffers()
	e.window.PollEvents()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(t.DeltaTime)
	}
	if e.frameCallback != nil {
		e.frameCallback(t)
	}
}
