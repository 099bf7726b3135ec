package camera

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController defines the first-person fly controller.
// The controller owns the CameraState (position, angles, speeds). Camera reads from the
// controller and computes view/projection matrices.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the look-at point, one unit along the current view direction.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// Basis returns the view basis for the current angles.
	//
	// Returns:
	//   - ViewBasis: direction, right and up vectors
	Basis() ViewBasis

	// State returns a copy of the current camera state.
	//
	// Returns:
	//   - State: the camera state
	State() State

	// SetState replaces the camera state.
	//
	// Parameters:
	//   - s: the new state
	SetState(s State)

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - pos: world-space coordinates
	SetPosition(pos mgl32.Vec3)

	// FieldOfView returns the field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	FieldOfView() float32

	// MovementSpeed returns the movement speed in world units per second.
	//
	// Returns:
	//   - float32: movement speed
	MovementSpeed() float32

	// MouseSensitivity returns the radians per pixel per second applied to cursor deltas.
	//
	// Returns:
	//   - float32: mouse sensitivity
	MouseSensitivity() float32

	// UpMode returns how the controller derives its up vector.
	//
	// Returns:
	//   - UpMode: the up vector mode
	UpMode() UpMode

	// Update integrates one frame of input into the camera state.
	// A non-positive deltaTime leaves the state untouched.
	//
	// Parameters:
	//   - sample: the cursor delta and pressed movement keys for this frame
	//   - deltaTime: seconds elapsed since the previous frame
	//
	// Returns:
	//   - State: the new camera state
	Update(sample input.Sample, deltaTime float32) State
}
