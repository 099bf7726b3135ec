package input

import "github.com/Carmen-Shannon/oxy-gl/common"

// SamplerBuilderOption is a functional option for configuring a Sampler.
type SamplerBuilderOption func(*samplerImpl)

// WithBindings replaces the key bindings. Directions missing from the map are unbound.
//
// Parameters:
//   - bindings: key codes per movement direction
//
// Returns:
//   - SamplerBuilderOption: option function to apply
func WithBindings(bindings map[common.MovementKey][]int) SamplerBuilderOption {
	return func(s *samplerImpl) {
		s.bindings = bindings
	}
}

// WithBinding adds key codes to one movement direction, keeping the existing ones.
//
// Parameters:
//   - key: the movement direction
//   - codes: GLFW key codes that trigger it
//
// Returns:
//   - SamplerBuilderOption: option function to apply
func WithBinding(key common.MovementKey, codes ...int) SamplerBuilderOption {
	return func(s *samplerImpl) {
		s.bindings[key] = append(s.bindings[key], codes...)
	}
}
