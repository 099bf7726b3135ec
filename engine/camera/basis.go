package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// UpMode selects how the view basis derives its up vector.
type UpMode int

const (
	// UpModeCrossProduct derives up as right x direction, keeping the basis orthonormal.
	UpModeCrossProduct UpMode = iota

	// UpModeWorld uses the fixed world up (0, 1, 0). Only orthogonal to direction when
	// the vertical angle is zero.
	UpModeWorld
)

// String returns the config name of the mode.
func (m UpMode) String() string {
	switch m {
	case UpModeWorld:
		return "world"
	default:
		return "cross"
	}
}

// ParseUpMode converts a config name into an UpMode.
//
// Parameters:
//   - name: "cross", "world" or empty (defaults to cross)
//
// Returns:
//   - UpMode: the parsed mode
//   - bool: false if the name is unknown
func ParseUpMode(name string) (UpMode, bool) {
	switch name {
	case "", "cross":
		return UpModeCrossProduct, true
	case "world":
		return UpModeWorld, true
	}
	return UpModeCrossProduct, false
}

// WorldUp is the world's vertical axis.
var WorldUp = mgl32.Vec3{0, 1, 0}

// ViewBasis holds the camera's local axes for a single frame.
// Derived from the angles each frame and never stored.
type ViewBasis struct {
	Direction mgl32.Vec3 // unit forward vector
	Right     mgl32.Vec3 // unit right vector, always horizontal
	Up        mgl32.Vec3 // unit up vector
}

// ComputeBasis builds the view basis from spherical angles.
//
//	direction = (cos v * sin h, sin v, cos v * cos h)
//	right     = (sin(h - Pi/2), 0, cos(h - Pi/2))
//	up        = right x direction, or (0, 1, 0) for UpModeWorld
//
// Parameters:
//   - horizontal: horizontal angle in radians
//   - vertical: vertical angle in radians
//   - mode: how to derive the up vector
//
// Returns:
//   - ViewBasis: the direction, right and up vectors
func ComputeBasis(horizontal, vertical float32, mode UpMode) ViewBasis {
	cosV, sinV := math32.Cos(vertical), math32.Sin(vertical)
	b := ViewBasis{
		Direction: mgl32.Vec3{
			cosV * math32.Sin(horizontal),
			sinV,
			cosV * math32.Cos(horizontal),
		},
		Right: mgl32.Vec3{
			math32.Sin(horizontal - math32.Pi/2),
			0,
			math32.Cos(horizontal - math32.Pi/2),
		},
	}
	if mode == UpModeWorld {
		b.Up = WorldUp
	} else {
		b.Up = b.Right.Cross(b.Direction)
	}
	return b
}
