package shader

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/device"
)

// ErrorStage identifies where program creation failed.
type ErrorStage int

const (
	// ErrorStageVertex means the vertex shader failed to compile.
	ErrorStageVertex ErrorStage = iota
	// ErrorStageFragment means the fragment shader failed to compile.
	ErrorStageFragment
	// ErrorStageLink means the program failed to link.
	ErrorStageLink
)

// String returns the lowercase stage name.
func (s ErrorStage) String() string {
	switch s {
	case ErrorStageVertex:
		return "vertex"
	case ErrorStageFragment:
		return "fragment"
	case ErrorStageLink:
		return "link"
	default:
		return "unknown"
	}
}

// CompileError carries the backend diagnostic for a failed compile or link.
// Callers decide the exit policy.
type CompileError struct {
	Stage ErrorStage
	Key   string // shader key for compile failures, program key for link failures
	Log   string // backend info log
}

func (e *CompileError) Error() string {
	if e.Stage == ErrorStageLink {
		return fmt.Sprintf("program %q failed to link:\n%s", e.Key, e.Log)
	}
	return fmt.Sprintf("%s shader %q failed to compile:\n%s", e.Stage, e.Key, e.Log)
}

func stageOf(s device.ShaderStage) ErrorStage {
	if s == device.StageFragment {
		return ErrorStageFragment
	}
	return ErrorStageVertex
}

// Program is a linked GPU program.
type Program struct {
	// Handle is the backend program object.
	Handle uint32
	// Key names the program in diagnostics, "<vertex key>+<fragment key>".
	Key string
}

// CompileProgram compiles a vertex and fragment shader and links them into a program.
// Intermediate shader objects are released on both success and failure.
//
// Parameters:
//   - dev: the device that owns the graphics context
//   - vertex: the vertex stage shader
//   - fragment: the fragment stage shader
//
// Returns:
//   - Program: the linked program
//   - error: a *CompileError tagged with the failing stage, or a plain error for mismatched stages
func CompileProgram(dev device.Device, vertex, fragment Shader) (Program, error) {
	if vertex.Stage() != device.StageVertex {
		return Program{}, fmt.Errorf("shader %q is a %s shader, want vertex", vertex.Key(), vertex.Stage())
	}
	if fragment.Stage() != device.StageFragment {
		return Program{}, fmt.Errorf("shader %q is a %s shader, want fragment", fragment.Key(), fragment.Stage())
	}

	var compiled []uint32
	release := func() {
		for _, h := range compiled {
			dev.DeleteShader(h)
		}
	}
	defer release()

	for _, s := range []Shader{vertex, fragment} {
		handle, log, ok := dev.CompileShader(s.Stage(), s.Source())
		compiled = append(compiled, handle)
		if !ok {
			return Program{}, &CompileError{Stage: stageOf(s.Stage()), Key: s.Key(), Log: log}
		}
	}

	key := vertex.Key() + "+" + fragment.Key()
	handle, log, ok := dev.LinkProgram(compiled...)
	if !ok {
		dev.DeleteProgram(handle)
		return Program{}, &CompileError{Stage: ErrorStageLink, Key: key, Log: log}
	}
	return Program{Handle: handle, Key: key}, nil
}
