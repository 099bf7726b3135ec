// Package window defines the platform window the engine drives. The GLFW implementation lives in
// the glfw_window sub-package so that code depending only on this contract builds without cgo.
package window

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

// ErrWindowCreation is wrapped by every error returned while creating a window or its context.
var ErrWindowCreation = errors.New("window creation failed")

// Window provides the platform window, its graphics context and input state.
// All methods must be called on the thread that created the window.
type Window interface {
	// CursorPos returns the cursor position in screen units relative to the top-left corner.
	//
	// Returns:
	//   - float64: x position
	//   - float64: y position
	CursorPos() (x, y float64)

	// SetCursorPos moves the cursor.
	//
	// Parameters:
	//   - x, y: new position in screen units
	SetCursorPos(x, y float64)

	// KeyPressed reports whether a key is held down.
	//
	// Parameters:
	//   - keyCode: GLFW key code, see the common.Key* constants
	//
	// Returns:
	//   - bool: true if the key's last state is pressed
	KeyPressed(keyCode int) bool

	// Size returns the window size in screen units.
	//
	// Returns:
	//   - int: width
	//   - int: height
	Size() (width, height int)

	// FramebufferSize returns the framebuffer size in pixels. Differs from Size on high-DPI displays.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	FramebufferSize() (width, height int)

	// Time returns seconds elapsed since the windowing library was initialized.
	//
	// Returns:
	//   - float64: elapsed seconds
	Time() float64

	// PollEvents processes pending window and input events without blocking.
	PollEvents()

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// ShouldClose reports whether the window was asked to close, by the user or by Escape.
	//
	// Returns:
	//   - bool: true if the window should close
	ShouldClose() bool

	// SetShouldClose sets the close flag.
	//
	// Parameters:
	//   - value: the new close flag
	SetShouldClose(value bool)

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving the new framebuffer width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetCursorHidden hides the cursor while it is over the window.
	//
	// Parameters:
	//   - hidden: true to hide the cursor
	SetCursorHidden(hidden bool)

	// Close destroys the window and releases the graphics context.
	//
	// Returns:
	//   - error: error if the window was already closed
	Close() error
}

// Settings holds the window configuration collected from WindowBuilderOptions.
type Settings struct {
	// Title is the window title displayed in the title bar.
	Title string

	// Width and Height are the requested window size in screen units.
	Width  int
	Height int

	// MinWidth, MinHeight, MaxWidth and MaxHeight bound the size during resize.
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int

	// Samples is the multisample count requested for the default framebuffer, 0 disables it.
	Samples int

	// VSync waits for one vertical blank per buffer swap.
	VSync bool

	// HideCursor hides the cursor over the window, used by the fly camera.
	HideCursor bool
}

// DefaultTitle is used when no title is configured.
const DefaultTitle = "oxy-gl"

// NewSettings applies options over the defaults (1024x768, 4x multisampling, vsync on) and
// clamps the requested size into the min/max bounds.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Settings: the resolved settings
func NewSettings(options ...WindowBuilderOption) Settings {
	s := Settings{
		Width:     1024,
		Height:    768,
		MinWidth:  320,
		MinHeight: 240,
		MaxWidth:  3840,
		MaxHeight: 2160,
		Samples:   4,
		VSync:     true,
	}
	for _, opt := range options {
		opt(&s)
	}

	s.Title = common.Coalesce(s.Title, DefaultTitle)
	s.MaxWidth = max(s.MaxWidth, s.MinWidth)
	s.MaxHeight = max(s.MaxHeight, s.MinHeight)
	s.Width = common.Clamp(s.Width, s.MinWidth, s.MaxWidth)
	s.Height = common.Clamp(s.Height, s.MinHeight, s.MaxHeight)
	s.Samples = max(s.Samples, 0)
	return s
}
