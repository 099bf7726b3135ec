package window

// WindowBuilderOption is a functional option for configuring window Settings.
// Use the With* functions to create options.
type WindowBuilderOption func(s *Settings)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(s *Settings) {
		s.Title = title
	}
}

// WithMaxWidth sets the maximum allowed window width.
//
// Parameters:
//   - maxWidth: maximum width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMaxWidth(maxWidth int) WindowBuilderOption {
	return func(s *Settings) {
		s.MaxWidth = maxWidth
	}
}

// WithMaxHeight sets the maximum allowed window height.
//
// Parameters:
//   - maxHeight: maximum height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMaxHeight(maxHeight int) WindowBuilderOption {
	return func(s *Settings) {
		s.MaxHeight = maxHeight
	}
}

// WithMinWidth sets the minimum allowed window width.
//
// Parameters:
//   - minWidth: minimum width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinWidth(minWidth int) WindowBuilderOption {
	return func(s *Settings) {
		s.MinWidth = minWidth
	}
}

// WithMinHeight sets the minimum allowed window height.
//
// Parameters:
//   - minHeight: minimum height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinHeight(minHeight int) WindowBuilderOption {
	return func(s *Settings) {
		s.MinHeight = minHeight
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(s *Settings) {
		s.Width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(s *Settings) {
		s.Height = height
	}
}

// WithSamples sets the multisample count of the default framebuffer.
//
// Parameters:
//   - samples: sample count, 0 to disable multisampling
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSamples(samples int) WindowBuilderOption {
	return func(s *Settings) {
		s.Samples = samples
	}
}

// WithVSync toggles waiting for a vertical blank on every buffer swap.
//
// Parameters:
//   - enabled: true to enable vsync
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithVSync(enabled bool) WindowBuilderOption {
	return func(s *Settings) {
		s.VSync = enabled
	}
}

// WithHiddenCursor hides the cursor while it is over the window.
//
// Parameters:
//   - hidden: true to hide the cursor
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHiddenCursor(hidden bool) WindowBuilderOption {
	return func(s *Settings) {
		s.HideCursor = hidden
	}
}
