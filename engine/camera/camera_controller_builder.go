package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithState replaces the whole starting state.
//
// Parameters:
//   - s: the starting state
//
// Returns:
//   - CameraControllerOption: functional option to set the state
func WithState(s State) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state = s
	}
}

// WithPosition sets the starting world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Position = mgl32.Vec3{x, y, z}
	}
}

// WithHorizontalAngle sets the starting horizontal angle.
//
// Parameters:
//   - angle: radians, 0 looks toward +Z
//
// Returns:
//   - CameraControllerOption: functional option to set the horizontal angle
func WithHorizontalAngle(angle float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.HorizontalAngle = angle
	}
}

// WithVerticalAngle sets the starting vertical angle.
//
// Parameters:
//   - angle: radians, 0 is horizontal
//
// Returns:
//   - CameraControllerOption: functional option to set the vertical angle
func WithVerticalAngle(angle float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.VerticalAngle = angle
	}
}

// WithFieldOfView sets the field of view.
//
// Parameters:
//   - degrees: vertical field of view in degrees
//
// Returns:
//   - CameraControllerOption: functional option to set the field of view
func WithFieldOfView(degrees float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.FieldOfView = degrees
	}
}

// WithMovementSpeed sets the keyboard movement speed.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - CameraControllerOption: functional option to set movement speed
func WithMovementSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.MovementSpeed = speed
	}
}

// WithMouseSensitivity sets the mouse look sensitivity.
//
// Parameters:
//   - sensitivity: radians per pixel per second
//
// Returns:
//   - CameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.MouseSensitivity = sensitivity
	}
}

// WithUpMode selects how the up vector is derived.
//
// Parameters:
//   - mode: UpModeCrossProduct (default) or UpModeWorld
//
// Returns:
//   - CameraControllerOption: functional option to set the up mode
func WithUpMode(mode UpMode) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.settings.UpMode = mode
	}
}

// WithAngleWrap enables wrapping both angles into [-Pi, Pi) after every update.
//
// Parameters:
//   - enabled: true to wrap angles
//
// Returns:
//   - CameraControllerOption: functional option to toggle angle wrapping
func WithAngleWrap(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.settings.WrapAngles = enabled
	}
}
