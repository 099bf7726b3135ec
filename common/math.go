package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// TwoPi is a full turn in radians.
const TwoPi = 2 * math32.Pi

// WrapAngle maps an angle in radians into the half-open range [-Pi, Pi).
// Used by the fly camera when angle wrapping is enabled; the integrator itself never clamps.
//
// Parameters:
//   - angle: the angle in radians, any finite value
//
// Returns:
//   - float32: the equivalent angle in [-Pi, Pi)
func WrapAngle(angle float32) float32 {
	wrapped := angle - TwoPi*math32.Floor((angle+math32.Pi)/TwoPi)
	// Floor rounding can land exactly on +Pi for inputs just below an odd multiple of Pi.
	if wrapped >= math32.Pi {
		wrapped -= TwoPi
	}
	return wrapped
}

// Identity4 returns the 4x4 identity matrix (column-major, OpenGL convention).
//
// Returns:
//   - mgl32.Mat4: the identity matrix
func Identity4() mgl32.Mat4 {
	return mgl32.Ident4()
}

// Mul4 multiplies two or more 4x4 matrices left to right.
// All matrices are column-major, so Mul4(p, v, m) yields p * v * m.
//
// Parameters:
//   - first: the left-most matrix
//   - rest: the remaining matrices in multiplication order
//
// Returns:
//   - mgl32.Mat4: the product
func Mul4(first mgl32.Mat4, rest ...mgl32.Mat4) mgl32.Mat4 {
	out := first
	for _, m := range rest {
		out = out.Mul4(m)
	}
	return out
}

// Perspective creates an OpenGL perspective projection matrix (clip space z in [-1, 1]).
//
// Parameters:
//   - fovYDegrees: vertical field of view in degrees
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func Perspective(fovYDegrees, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovYDegrees), aspect, near, far)
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view space.
//
// Parameters:
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation
//
// Returns:
//   - mgl32.Mat4: the view matrix
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, center, up)
}
