// pre_processor.go normalizes GLSL source before it reaches the driver: it strips a UTF-8 byte
// order mark, converts CRLF line endings, and makes sure the source starts with a #version
// directive, inserting the default one when absent.
package shader

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultVersion is the GLSL version inserted when a source has no #version directive.
const DefaultVersion = "330 core"

const versionDirective = "#version"

var (
	// ErrEmptySource is returned for sources that contain only whitespace.
	ErrEmptySource = errors.New("empty shader source")

	// ErrMisplacedVersion is returned when #version appears after other statements.
	ErrMisplacedVersion = errors.New("#version must be the first statement")
)

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	defaultVersion string
	version        string
}

// PreProcessor prepares raw GLSL text for compilation.
type PreProcessor interface {
	// Process normalizes the source and ensures a leading #version directive.
	//
	// Parameters:
	//   - source: the raw GLSL source
	//
	// Returns:
	//   - string: the processed source
	//   - error: ErrEmptySource or ErrMisplacedVersion
	Process(source string) (string, error)

	// Version returns the version directive seen or inserted by the last Process call.
	//
	// Returns:
	//   - string: e.g. "330 core", empty before Process is called
	Version() string
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor that inserts DefaultVersion when needed.
//
// Returns:
//   - PreProcessor: the pre-processor
func NewPreProcessor() PreProcessor {
	return &preProcessor{defaultVersion: DefaultVersion}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.version = ""
	source = strings.TrimPrefix(source, "\ufeff")
	source = strings.ReplaceAll(source, "\r\n", "\n")
	if strings.TrimSpace(source) == "" {
		return "", ErrEmptySource
	}

	lines := strings.Split(source, "\n")
	first := -1
	inComment := false
	for i, line := range lines {
		var trimmed string
		trimmed, inComment = stripComments(line, inComment)
		trimmed = strings.TrimSpace(trimmed)
		if trimmed == "" {
			continue
		}
		if first < 0 {
			first = i
		}
		if strings.HasPrefix(trimmed, versionDirective) {
			if i != first {
				return "", fmt.Errorf("line %d: %w", i+1, ErrMisplacedVersion)
			}
			p.version = strings.TrimSpace(strings.TrimPrefix(trimmed, versionDirective))
		}
	}

	if p.version != "" {
		return source, nil
	}
	p.version = p.defaultVersion
	return versionDirective + " " + p.defaultVersion + "\n" + source, nil
}

func (p *preProcessor) Version() string {
	return p.version
}

// stripComments removes // and /* */ comments from one line.
//
// Parameters:
//   - line: a single source line
//   - inComment: true if the line starts inside a block comment
//
// Returns:
//   - string: the code outside comments
//   - bool: true if a block comment is still open at the end of the line
func stripComments(line string, inComment bool) (string, bool) {
	var code strings.Builder
	for line != "" {
		if inComment {
			end := strings.Index(line, "*/")
			if end < 0 {
				return code.String(), true
			}
			line = line[end+2:]
			inComment = false
			code.WriteByte(' ')
			continue
		}
		lineIdx := strings.Index(line, "//")
		blockIdx := strings.Index(line, "/*")
		switch {
		case blockIdx >= 0 && (lineIdx < 0 || blockIdx < lineIdx):
			code.WriteString(line[:blockIdx])
			line = line[blockIdx+2:]
			inComment = true
		case lineIdx >= 0:
			code.WriteString(line[:lineIdx])
			return code.String(), false
		default:
			code.WriteString(line)
			line = ""
		}
	}
	return code.String(), inComment
}
