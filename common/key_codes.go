package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII)
	KeyA     = 65  // A key (ASCII)
	KeyS     = 83  // S key (ASCII)
	KeyD     = 68  // D key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)

	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)

// MovementKey identifies one of the fly camera's movement directions.
type MovementKey uint8

const (
	// MoveForward moves along the view direction.
	MoveForward MovementKey = 1 << iota
	// MoveBackward moves against the view direction.
	MoveBackward
	// StrafeLeft moves against the right vector.
	StrafeLeft
	// StrafeRight moves along the right vector.
	StrafeRight
)

// MovementKeys is the set of movement keys held down during a frame.
type MovementKeys uint8

// Has reports whether k is in the set.
func (m MovementKeys) Has(k MovementKey) bool {
	return m&MovementKeys(k) != 0
}

// With returns the set with k added.
func (m MovementKeys) With(k MovementKey) MovementKeys {
	return m | MovementKeys(k)
}

// String renders the set as a compact "FBLR" mask, using '-' for released keys.
func (m MovementKeys) String() string {
	out := []byte("----")
	for i, k := range []MovementKey{MoveForward, MoveBackward, StrafeLeft, StrafeRight} {
		if m.Has(k) {
			out[i] = "FBLR"[i]
		}
	}
	return string(out)
}

// DefaultKeyBindings maps each movement direction to the key codes that trigger it.
// Arrow keys and WASD are both bound.
//
// Returns:
//   - map[MovementKey][]int: key codes per movement direction
func DefaultKeyBindings() map[MovementKey][]int {
	return map[MovementKey][]int{
		MoveForward:  {KeyUp, KeyW},
		MoveBackward: {KeyDown, KeyS},
		StrafeLeft:   {KeyLeft, KeyA},
		StrafeRight:  {KeyRight, KeyD},
	}
}
