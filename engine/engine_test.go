package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/device/fake_device"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/Carmen-Shannon/oxy-gl/engine/timing"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow advances its clock by step on every swap and asks to close after closeAfter swaps.
type fakeWindow struct {
	now          float64
	step         float64
	closeAfter   int
	swaps        int
	polls        int
	shouldClose  bool
	cursorX      float64
	cursorY      float64
	keys         map[int]bool
	cursorHidden bool
	onResize     func(width, height int)
	closed       bool
}

var _ window.Window = &fakeWindow{}

func newFakeWindow(closeAfter int) *fakeWindow {
	return &fakeWindow{step: 0.5, closeAfter: closeAfter, keys: map[int]bool{}}
}

func (w *fakeWindow) CursorPos() (float64, float64)       { return w.cursorX, w.cursorY }
func (w *fakeWindow) SetCursorPos(x, y float64)           { w.cursorX, w.cursorY = x, y }
func (w *fakeWindow) KeyPressed(keyCode int) bool         { return w.keys[keyCode] }
func (w *fakeWindow) Size() (int, int)                    { return 800, 600 }
func (w *fakeWindow) FramebufferSize() (int, int)         { return 1600, 1200 }
func (w *fakeWindow) Time() float64                       { return w.now }
func (w *fakeWindow) PollEvents()                         { w.polls++ }
func (w *fakeWindow) ShouldClose() bool                   { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(value bool)           { w.shouldClose = value }
func (w *fakeWindow) SetResizeCallback(cb func(int, int)) { w.onResize = cb }
func (w *fakeWindow) SetCursorHidden(hidden bool)         { w.cursorHidden = hidden }

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
	w.now += w.step
	if w.closeAfter > 0 && w.swaps >= w.closeAfter {
		w.shouldClose = true
	}
}

func (w *fakeWindow) Close() error {
	w.closed = true
	return nil
}

func newTestEngine(t *testing.T, win *fakeWindow, options ...EngineBuilderOption) (Engine, *fake_device.Device) {
	t.Helper()
	dev := fake_device.New()
	e := NewEngine(append([]EngineBuilderOption{
		WithWindow(win),
		WithRenderer(renderer.NewRenderer(dev)),
	}, options...)...)
	return e, dev
}

func TestRunStopsOnShouldClose(t *testing.T) {
	win := newFakeWindow(3)
	e, dev := newTestEngine(t, win)
	require.NoError(t, e.LoadScene(scene.Triangle()))

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 3, win.swaps)
	assert.Equal(t, 3, win.polls)
	assert.Len(t, dev.Draws, 3)
	assert.Equal(t, uint64(3), e.Frames())
}

func TestRunStopsOnCancel(t *testing.T) {
	win := newFakeWindow(0)
	e, dev := newTestEngine(t, win)
	require.NoError(t, e.LoadScene(scene.HelloWindow()))

	ctx, cancel := context.WithCancel(context.Background())
	e.SetFrameCallback(func(timing.FrameTiming) {
		if e.Frames() == 2 {
			cancel()
		}
	})
	require.NoError(t, e.Run(ctx))
	assert.Equal(t, 2, dev.Clears)
	assert.Empty(t, dev.Draws)
}

func TestQuitAndFrameLimit(t *testing.T) {
	win := newFakeWindow(0)
	e, _ := newTestEngine(t, win, WithMaxFrames(4), WithProfiling(true))
	require.NoError(t, e.LoadScene(scene.HelloWindow()))
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 4, win.swaps)

	e.Quit()
	e.Quit()
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 4, win.swaps)
}

func TestRunRequiresCollaborators(t *testing.T) {
	assert.ErrorIs(t, NewEngine().Run(context.Background()), ErrNoWindow)
	assert.ErrorIs(t, NewEngine(WithWindow(newFakeWindow(1))).Run(context.Background()), ErrNoRenderer)
	assert.ErrorIs(t, NewEngine().LoadScene(scene.HelloWindow()), ErrNoRenderer)
}

func TestResizeUpdatesViewportAndAspect(t *testing.T) {
	win := newFakeWindow(1)
	e, dev := newTestEngine(t, win)
	assert.Equal(t, [2]int32{1600, 1200}, dev.ViewportSize)
	assert.InDelta(t, 4.0/3.0, e.Camera().Aspect(), 1e-6)

	win.onResize(1920, 1080)
	assert.Equal(t, [2]int32{1920, 1080}, dev.ViewportSize)
	assert.InDelta(t, 16.0/9.0, e.Camera().Aspect(), 1e-6)

	win.onResize(0, 0)
	assert.InDelta(t, 16.0/9.0, e.Camera().Aspect(), 1e-6)
}

func TestStaticCubeUploadsLookAtMVP(t *testing.T) {
	win := newFakeWindow(2)
	e, dev := newTestEngine(t, win)
	s := scene.ColoredCube()
	require.NoError(t, e.LoadScene(s))
	assert.False(t, win.cursorHidden)
	assert.Nil(t, e.Camera().Controller())

	require.NoError(t, e.Run(context.Background()))

	eye, target, up := s.LookAt()
	projection := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)
	want := projection.Mul4(mgl32.LookAtV(eye, target, up)).Mul4(s.Model())
	require.Len(t, dev.Draws, 2)
	for _, d := range dev.Draws {
		assert.True(t, d.MVPUploaded)
		assert.Equal(t, [16]float32(want), d.MVP)
	}
}

func TestFlySceneMovesCamera(t *testing.T) {
	win := newFakeWindow(3)
	cc := camera.NewCameraController(camera.WithMovementSpeed(2))
	e, dev := newTestEngine(t, win, WithController(cc))
	require.NoError(t, e.LoadScene(scene.FlyCamera()))

	assert.True(t, win.cursorHidden)
	assert.Equal(t, 400.0, win.cursorX)
	assert.Equal(t, 300.0, win.cursorY)
	assert.Equal(t, cc, e.Camera().Controller())
	assert.Equal(t, cc, e.Controller())

	start := cc.State()
	win.keys[common.KeyUp] = true

	var deltas []float32
	e.SetFrameCallback(func(ft timing.FrameTiming) {
		deltas = append(deltas, ft.DeltaTime)
	})
	require.NoError(t, e.Run(context.Background()))

	// First frame has no previous sample, then 0.5 s per frame.
	assert.Equal(t, []float32{0, 0.5, 0.5}, deltas)
	end := cc.State()
	assert.Equal(t, start.HorizontalAngle, end.HorizontalAngle)
	assert.Equal(t, start.VerticalAngle, end.VerticalAngle)
	assert.InDelta(t, 2.0, end.Position.Sub(start.Position).Len(), 1e-5)
	assert.Len(t, dev.Draws, 3)
	assert.NotEqual(t, dev.Draws[0].MVP, dev.Draws[2].MVP)
}

func TestLoadSceneCompileErrorIsWrapped(t *testing.T) {
	win := newFakeWindow(1)
	e, dev := newTestEngine(t, win)
	dev.FailStage[device.StageVertex] = "0:1: bad"

	err := e.LoadScene(scene.Triangle())
	var compileErr *shader.CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, shader.ErrorStageVertex, compileErr.Stage)
	assert.Nil(t, e.Scene())
	assert.Equal(t, win, e.Window())
}
