// Package config loads the optional TOML file that tunes the window and the fly camera.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid config")

// WindowConfig configures the window.
type WindowConfig struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Samples int    `toml:"samples"`
	VSync   bool   `toml:"vsync"`
}

// CameraConfig configures the projection and the fly camera's starting state.
type CameraConfig struct {
	Position         [3]float32 `toml:"position"`
	HorizontalAngle  float32    `toml:"horizontal_angle"`
	VerticalAngle    float32    `toml:"vertical_angle"`
	FieldOfView      float32    `toml:"field_of_view"`
	MovementSpeed    float32    `toml:"movement_speed"`
	MouseSensitivity float32    `toml:"mouse_sensitivity"`
	Near             float32    `toml:"near"`
	Far              float32    `toml:"far"`
	UpMode           string     `toml:"up_mode"`
	WrapAngles       bool       `toml:"wrap_angles"`
}

// Config is the root of the TOML file. Every field is optional; missing fields keep their
// Default value.
type Config struct {
	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`

	// ShaderDir replaces the embedded shaders with files from a directory.
	ShaderDir string `toml:"shader_dir,omitempty"`

	// Profile logs frame rate and memory statistics once per second.
	Profile bool `toml:"profile"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - Config: the defaults
func Default() Config {
	state := camera.DefaultState()
	return Config{
		Window: WindowConfig{
			Title:   window.DefaultTitle,
			Width:   1024,
			Height:  768,
			Samples: 4,
			VSync:   true,
		},
		Camera: CameraConfig{
			Position:         [3]float32(state.Position),
			HorizontalAngle:  state.HorizontalAngle,
			VerticalAngle:    state.VerticalAngle,
			FieldOfView:      state.FieldOfView,
			MovementSpeed:    state.MovementSpeed,
			MouseSensitivity: state.MouseSensitivity,
			Near:             0.1,
			Far:              100,
			UpMode:           camera.UpModeCrossProduct.String(),
		},
	}
}

// Load reads a TOML file over the defaults and validates the result.
// An empty path returns the defaults.
//
// Parameters:
//   - path: the TOML file path, or ""
//
// Returns:
//   - Config: the loaded configuration
//   - error: a read, decode or validation error
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := cfg.decode(data); err != nil {
		return cfg, fmt.Errorf("failed to decode config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// decode unmarshals strictly so misspelled keys are reported instead of ignored.
func (c *Config) decode(data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(c)
}

// Validate checks ranges that would otherwise produce a degenerate projection or window.
//
// Returns:
//   - error: an error wrapping ErrInvalid, or nil
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	if c.Window.Samples < 0 {
		errs = append(errs, fmt.Errorf("%w: window samples %d must not be negative", ErrInvalid, c.Window.Samples))
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180 {
		errs = append(errs, fmt.Errorf("%w: field of view %v must be in (0, 180) degrees", ErrInvalid, c.Camera.FieldOfView))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("%w: clip planes near=%v far=%v need 0 < near < far", ErrInvalid, c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.MovementSpeed < 0 || c.Camera.MouseSensitivity < 0 {
		errs = append(errs, fmt.Errorf("%w: movement speed and mouse sensitivity must not be negative", ErrInvalid))
	}
	if _, ok := camera.ParseUpMode(c.Camera.UpMode); !ok {
		errs = append(errs, fmt.Errorf("%w: unknown up mode %q", ErrInvalid, c.Camera.UpMode))
	}
	return errors.Join(errs...)
}

// Marshal encodes the configuration as TOML.
//
// Returns:
//   - []byte: the TOML document
//   - error: an encoding error
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// WindowOptions converts the window section into builder options.
//
// Returns:
//   - []window.WindowBuilderOption: options for glfw_window.NewWindow
func (c Config) WindowOptions() []window.WindowBuilderOption {
	return []window.WindowBuilderOption{
		window.WithTitle(c.Window.Title),
		window.WithWidth(c.Window.Width),
		window.WithHeight(c.Window.Height),
		window.WithSamples(c.Window.Samples),
		window.WithVSync(c.Window.VSync),
	}
}

// ControllerOptions converts the camera section into fly controller options.
//
// Returns:
//   - []camera.CameraControllerOption: options for camera.NewCameraController
func (c Config) ControllerOptions() []camera.CameraControllerOption {
	mode, _ := camera.ParseUpMode(c.Camera.UpMode)
	return []camera.CameraControllerOption{
		camera.WithState(camera.State{
			Position:         mgl32.Vec3(c.Camera.Position),
			HorizontalAngle:  c.Camera.HorizontalAngle,
			VerticalAngle:    c.Camera.VerticalAngle,
			FieldOfView:      c.Camera.FieldOfView,
			MovementSpeed:    c.Camera.MovementSpeed,
			MouseSensitivity: c.Camera.MouseSensitivity,
		}),
		camera.WithUpMode(mode),
		camera.WithAngleWrap(c.Camera.WrapAngles),
	}
}

// CameraOptions converts the projection settings into camera options.
//
// Returns:
//   - []camera.CameraBuilderOption: options for camera.NewCamera
func (c Config) CameraOptions() []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithFov(c.Camera.FieldOfView),
		camera.WithNear(c.Camera.Near),
		camera.WithFar(c.Camera.Far),
	}
}
