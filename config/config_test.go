package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oxy-gl.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, [3]float32{0, 0, 5}, cfg.Camera.Position)
	assert.Equal(t, "cross", cfg.Camera.UpMode)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
profile = true

[window]
title = "Tutorial 06"
width = 800

[camera]
position = [1.0, 2.0, 3.0]
movement_speed = 5.0
up_mode = "world"
wrap_angles = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Profile)
	assert.Equal(t, "Tutorial 06", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, float32(5), cfg.Camera.MovementSpeed)
	assert.Equal(t, float32(45), cfg.Camera.FieldOfView)

	cc := camera.NewCameraController(cfg.ControllerOptions()...)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cc.Position())
	assert.Equal(t, float32(5), cc.MovementSpeed())
	assert.Equal(t, camera.UpModeWorld, cc.UpMode())

	s := window.NewSettings(cfg.WindowOptions()...)
	assert.Equal(t, "Tutorial 06", s.Title)
	assert.Equal(t, 800, s.Width)

	cam := camera.NewCamera(cfg.CameraOptions()...)
	assert.Equal(t, float32(100), cam.Far())
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "[camera]\nfeild_of_view = 60\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero width":   func(c *Config) { c.Window.Width = 0 },
		"samples":      func(c *Config) { c.Window.Samples = -1 },
		"fov":          func(c *Config) { c.Camera.FieldOfView = 180 },
		"near":         func(c *Config) { c.Camera.Near = 0 },
		"far":          func(c *Config) { c.Camera.Far = 0.05 },
		"speed":        func(c *Config) { c.Camera.MovementSpeed = -1 },
		"unknown mode": func(c *Config) { c.Camera.UpMode = "sideways" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	_, err := Load(writeConfig(t, "[camera]\nnear = 10.0\nfar = 1.0\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Camera.UpMode = "world"
	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "[camera]")

	var back Config
	require.NoError(t, back.decode(data))
	assert.Equal(t, cfg, back)
}
