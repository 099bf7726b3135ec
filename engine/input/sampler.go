package input

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
)

// Source is the slice of the window the sampler reads from.
// Cursor coordinates are in screen units relative to the window's top-left corner.
type Source interface {
	// CursorPos returns the current cursor position.
	CursorPos() (x, y float64)
	// SetCursorPos moves the cursor.
	SetCursorPos(x, y float64)
	// KeyPressed reports whether the key with the given GLFW key code is held down.
	KeyPressed(keyCode int) bool
	// Size returns the window size in screen units.
	Size() (width, height int)
}

// Sample is one frame of fly camera input.
type Sample struct {
	// DX is centerX - cursorX. Positive when the cursor moved left of center.
	DX float32
	// DY is centerY - cursorY. Positive when the cursor moved above center.
	DY float32
	// Keys holds the movement keys pressed this frame.
	Keys common.MovementKeys
}

// Sampler reads cursor deltas and movement keys once per frame.
type Sampler interface {
	// Sample reads the cursor offset from the window center and the pressed movement keys,
	// then moves the cursor back to the center so the next sample is relative to it again.
	//
	// Returns:
	//   - Sample: the cursor delta and pressed keys
	Sample() Sample

	// Bindings returns the key codes bound to each movement direction.
	//
	// Returns:
	//   - map[common.MovementKey][]int: key codes per direction
	Bindings() map[common.MovementKey][]int
}

type samplerImpl struct {
	source   Source
	bindings map[common.MovementKey][]int
}

var _ Sampler = &samplerImpl{}

// NewSampler creates a Sampler reading from source with the default arrow/WASD bindings.
//
// Parameters:
//   - source: the window to read from
//   - options: functional options to configure the sampler
//
// Returns:
//   - Sampler: the newly created sampler
func NewSampler(source Source, options ...SamplerBuilderOption) Sampler {
	s := &samplerImpl{
		source:   source,
		bindings: common.DefaultKeyBindings(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *samplerImpl) Sample() Sample {
	width, height := s.source.Size()
	centerX, centerY := float64(width)/2, float64(height)/2

	x, y := s.source.CursorPos()
	out := Sample{
		DX: float32(centerX - x),
		DY: float32(centerY - y),
	}
	for key, codes := range s.bindings {
		for _, code := range codes {
			if s.source.KeyPressed(code) {
				out.Keys = out.Keys.With(key)
				break
			}
		}
	}

	s.source.SetCursorPos(centerX, centerY)
	return out
}

func (s *samplerImpl) Bindings() map[common.MovementKey][]int {
	cp := make(map[common.MovementKey][]int, len(s.bindings))
	for k, v := range s.bindings {
		cp[k] = append([]int(nil), v...)
	}
	return cp
}
