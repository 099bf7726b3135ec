package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// State is the fly camera's mutable state, advanced once per frame.
type State struct {
	Position         mgl32.Vec3
	HorizontalAngle  float32 // radians
	VerticalAngle    float32 // radians
	FieldOfView      float32 // degrees
	MovementSpeed    float32 // world units per second
	MouseSensitivity float32 // radians per pixel per second
}

// DefaultState returns the starting state of the fly camera: five units back on +Z,
// looking toward -Z.
//
// Returns:
//   - State: the default camera state
func DefaultState() State {
	return State{
		Position:         mgl32.Vec3{0, 0, 5},
		HorizontalAngle:  math32.Pi,
		VerticalAngle:    0,
		FieldOfView:      45,
		MovementSpeed:    3,
		MouseSensitivity: 0.005,
	}
}

// IntegratorSettings tunes Integrate beyond what State carries.
type IntegratorSettings struct {
	// UpMode selects cross-product or fixed world up.
	UpMode UpMode
	// WrapAngles maps both angles into [-Pi, Pi) after each update.
	WrapAngles bool
}

// Integrate advances a camera state by one frame. It is a pure function of its inputs.
// Angles accumulate sensitivity * deltaTime * cursor delta and are never clamped.
// Each held movement key adds its axis scaled by deltaTime * speed, so diagonal movement
// is faster than movement along a single axis.
//
// Parameters:
//   - prev: the state at the start of the frame
//   - sample: cursor delta and pressed movement keys
//   - deltaTime: seconds since the previous frame; values <= 0 return prev unchanged
//   - settings: up vector mode and angle wrapping
//
// Returns:
//   - State: the new state
//   - ViewBasis: the basis for the new angles
func Integrate(prev State, sample input.Sample, deltaTime float32, settings IntegratorSettings) (State, ViewBasis) {
	if deltaTime <= 0 {
		return prev, ComputeBasis(prev.HorizontalAngle, prev.VerticalAngle, settings.UpMode)
	}

	next := prev
	next.HorizontalAngle += prev.MouseSensitivity * deltaTime * sample.DX
	next.VerticalAngle += prev.MouseSensitivity * deltaTime * sample.DY
	if settings.WrapAngles {
		next.HorizontalAngle = common.WrapAngle(next.HorizontalAngle)
		next.VerticalAngle = common.WrapAngle(next.VerticalAngle)
	}

	basis := ComputeBasis(next.HorizontalAngle, next.VerticalAngle, settings.UpMode)

	step := deltaTime * prev.MovementSpeed
	if sample.Keys.Has(common.MoveForward) {
		next.Position = next.Position.Add(basis.Direction.Mul(step))
	}
	if sample.Keys.Has(common.MoveBackward) {
		next.Position = next.Position.Sub(basis.Direction.Mul(step))
	}
	if sample.Keys.Has(common.StrafeRight) {
		next.Position = next.Position.Add(basis.Right.Mul(step))
	}
	if sample.Keys.Has(common.StrafeLeft) {
		next.Position = next.Position.Sub(basis.Right.Mul(step))
	}
	return next, basis
}

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	state    State
	settings IntegratorSettings
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new fly controller starting from DefaultState.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:    &sync.Mutex{},
		state: DefaultState(),
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

// basis computes the view basis for the current angles.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) basis() ViewBasis {
	return ComputeBasis(cc.state.HorizontalAngle, cc.state.VerticalAngle, cc.settings.UpMode)
}

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Position
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Position.Add(cc.basis().Direction)
}

func (cc *cameraControllerImpl) Basis() ViewBasis {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.basis()
}

func (cc *cameraControllerImpl) State() State {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state
}

func (cc *cameraControllerImpl) SetState(s State) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.state = s
}

func (cc *cameraControllerImpl) SetPosition(pos mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.state.Position = pos
}

func (cc *cameraControllerImpl) FieldOfView() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.FieldOfView
}

func (cc *cameraControllerImpl) MovementSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.MovementSpeed
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.MouseSensitivity
}

func (cc *cameraControllerImpl) UpMode() UpMode {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.settings.UpMode
}

func (cc *cameraControllerImpl) Update(sample input.Sample, deltaTime float32) State {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.state, _ = Integrate(cc.state, sample, deltaTime, cc.settings)
	return cc.state
}
