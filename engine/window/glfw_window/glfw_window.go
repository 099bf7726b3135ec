// Package glfw_window implements window.Window on GLFW with an OpenGL 4.1 core context.
package glfw_window

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW window and its registered callbacks.
type glfwWindow struct {
	window   *glfw.Window
	settings window.Settings
	onResize func(width, height int)
	closed   bool
}

var _ window.Window = &glfwWindow{}

// NewWindow initializes GLFW, creates a window with an OpenGL 4.1 core forward-compatible
// context and makes the context current. Must be called from the main thread, locked with
// runtime.LockOSThread.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - window.Window: the created window
//   - error: an error wrapping window.ErrWindowCreation
func NewWindow(options ...window.WindowBuilderOption) (window.Window, error) {
	settings := window.NewSettings(options...)

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: failed to initialize GLFW: %w", window.ErrWindowCreation, err)
	}

	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.WindowHint(glfw.Samples, settings.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	win, err := glfw.CreateWindow(settings.Width, settings.Height, settings.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: failed to open GLFW window, the GPU may not support OpenGL 4.1: %w", window.ErrWindowCreation, err)
	}
	win.MakeContextCurrent()
	win.SetSizeLimits(settings.MinWidth, settings.MinHeight, settings.MaxWidth, settings.MaxHeight)
	if settings.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gw := &glfwWindow{
		window:   win,
		settings: settings,
	}

	// Key presses between polls are not lost.
	win.SetInputMode(glfw.StickyKeysMode, glfw.True)
	gw.SetCursorHidden(settings.HideCursor)

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	// Framebuffer size is in pixels, which is what the viewport needs on high-DPI displays.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFramebufferSizeCallback
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if gw.onResize != nil {
			gw.onResize(width, height)
		}
	})

	return gw, nil
}

func (w *glfwWindow) CursorPos() (float64, float64) {
	return w.window.GetCursorPos()
}

func (w *glfwWindow) SetCursorPos(x, y float64) {
	w.window.SetCursorPos(x, y)
}

func (w *glfwWindow) KeyPressed(keyCode int) bool {
	return w.window.GetKey(glfw.Key(keyCode)) == glfw.Press
}

func (w *glfwWindow) Size() (int, int) {
	return w.window.GetSize()
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) Time() float64 {
	return glfw.GetTime()
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) ShouldClose() bool {
	return w.closed || w.window.ShouldClose()
}

func (w *glfwWindow) SetShouldClose(value bool) {
	w.window.SetShouldClose(value)
}

func (w *glfwWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *glfwWindow) SetCursorHidden(hidden bool) {
	mode := glfw.CursorNormal
	if hidden {
		mode = glfw.CursorHidden
	}
	w.window.SetInputMode(glfw.CursorMode, mode)
}

// Close destroys the GLFW window and terminates the GLFW library.
func (w *glfwWindow) Close() error {
	if w.closed {
		return fmt.Errorf("window is already closed")
	}
	w.closed = true
	w.window.Destroy()
	glfw.Terminate()
	return nil
}
