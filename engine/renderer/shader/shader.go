package shader

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/device"
)

// shader is the implementation of the Shader interface.
type shader struct {
	key    string
	source string
	stage  device.ShaderStage
	pp     PreProcessor
}

// Shader is a pre-processed GLSL source for a single pipeline stage.
type Shader interface {
	// Key retrieves the unique identifier for this shader, usually its asset path.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the pre-processed GLSL source handed to the driver.
	//
	// Returns:
	//   - string: the GLSL source
	Source() string

	// Stage returns the pipeline stage this shader targets.
	//
	// Returns:
	//   - device.ShaderStage: vertex or fragment
	Stage() device.ShaderStage

	// Version returns the GLSL version directive of the source, e.g. "330 core".
	//
	// Returns:
	//   - string: the version directive without the leading "#version"
	Version() string
}

var _ Shader = &shader{}

// NewShader pre-processes source and wraps it as a Shader.
//
// Parameters:
//   - key: a unique identifier for the shader, used in diagnostics
//   - stage: the pipeline stage
//   - source: raw GLSL source text
//
// Returns:
//   - Shader: the shader
//   - error: error if the source is empty or has a misplaced #version directive
func NewShader(key string, stage device.ShaderStage, source string) (Shader, error) {
	s := &shader{
		key:   key,
		stage: stage,
		pp:    NewPreProcessor(),
	}
	processed, err := s.pp.Process(source)
	if err != nil {
		return nil, fmt.Errorf("shader: failed to pre-process %s source %q: %w", stage, key, err)
	}
	s.source = processed
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) Stage() device.ShaderStage {
	return s.stage
}

func (s *shader) Version() string {
	return s.pp.Version()
}
