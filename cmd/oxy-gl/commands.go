package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/Carmen-Shannon/oxy-gl/config"
	"github.com/Carmen-Shannon/oxy-gl/engine"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/gl_device"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/Carmen-Shannon/oxy-gl/engine/window/glfw_window"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "oxy-gl",
		Short:         "Walk through the OpenGL basics: a window, a triangle, a cube and a fly camera",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	windowCmd = &cobra.Command{
		Use:   scene.LessonWindow,
		Short: "open a window cleared to a solid color",
		RunE:  lessonRunner(scene.LessonWindow),
	}
	triangleCmd = &cobra.Command{
		Use:   scene.LessonTriangle,
		Short: "draw a red triangle in clip space",
		RunE:  lessonRunner(scene.LessonTriangle),
	}
	cubeCmd = &cobra.Command{
		Use:   scene.LessonCube,
		Short: "draw a colored cube through a fixed perspective camera",
		RunE:  lessonRunner(scene.LessonCube),
	}
	cameraCmd = &cobra.Command{
		Use:   scene.LessonCamera,
		Short: "fly around the colored cube with the mouse and arrow keys or WASD",
		RunE:  lessonRunner(scene.LessonCamera),
	}
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	// Flags.

	configPath string
	profile    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to a TOML file overriding window and camera defaults")
	rootCmd.PersistentFlags().BoolVarP(&profile, "profile", "p", false,
		"log frame rate and memory statistics once per second")
	rootCmd.AddCommand(windowCmd, triangleCmd, cubeCmd, cameraCmd, configCmd)
}

func lessonRunner(name string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return runLesson(cmd.Context(), name, cfg)
	}
}

// runLesson opens the window, loads the lesson's scene and blocks in the frame loop until the
// window closes or the process is interrupted.
func runLesson(ctx context.Context, name string, cfg config.Config) error {
	var sceneOpts []scene.SceneBuilderOption
	if cfg.ShaderDir != "" {
		sceneOpts = append(sceneOpts, scene.WithShaderFS(os.DirFS(cfg.ShaderDir)))
	}
	s, ok := scene.ByName(name, sceneOpts...)
	if !ok {
		return fmt.Errorf("unknown lesson %q", name)
	}

	winOpts := cfg.WindowOptions()
	if cfg.Window.Title == window.DefaultTitle {
		winOpts = append(winOpts, window.WithTitle(window.DefaultTitle+": "+s.Name()))
	}
	win, err := glfw_window.NewWindow(winOpts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := win.Close(); err != nil {
			log.Printf("[Engine] %v", err)
		}
	}()

	dev, err := gl_device.NewDevice()
	if err != nil {
		return err
	}
	log.Printf("[Engine] OpenGL version %s", dev.Version())

	r := renderer.NewRenderer(dev)
	defer r.Release()

	e := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCamera(camera.NewCamera(cfg.CameraOptions()...)),
		engine.WithController(camera.NewCameraController(cfg.ControllerOptions()...)),
		engine.WithProfiling(cfg.Profile || profile),
	)
	if err := e.LoadScene(s); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return e.Run(ctx)
}
