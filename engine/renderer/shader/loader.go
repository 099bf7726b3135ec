package shader

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/device"
)

// LoadSources reads shader source files from fsys in parallel on a worker pool.
// Sources are returned in the order of paths. All read errors are joined.
//
// Parameters:
//   - fsys: the file system to read from (embedded assets or a directory)
//   - paths: slash-separated paths inside fsys
//
// Returns:
//   - []string: the file contents, one per path
//   - error: joined read errors, nil if every file was read
func LoadSources(fsys fs.FS, paths ...string) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	sources := make([]string, len(paths))
	errs := make([]error, len(paths))

	pool := worker.NewDynamicWorkerPool(max(min(len(paths), runtime.NumCPU()), 1), len(paths), 1*time.Second)

	// A WaitGroup is the barrier; the pool's workers idle-exit on their own.
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				data, err := fs.ReadFile(fsys, path)
				if err != nil {
					errs[i] = fmt.Errorf("shader: failed to read source file %q: %w", path, err)
					return nil, errs[i]
				}
				sources[i] = string(data)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return sources, errors.Join(errs...)
}

// LoadPair reads and pre-processes a vertex and fragment shader from fsys.
//
// Parameters:
//   - fsys: the file system to read from
//   - vertexPath: path of the vertex shader
//   - fragmentPath: path of the fragment shader
//
// Returns:
//   - Shader: the vertex shader
//   - Shader: the fragment shader
//   - error: read or pre-processing error
func LoadPair(fsys fs.FS, vertexPath, fragmentPath string) (Shader, Shader, error) {
	sources, err := LoadSources(fsys, vertexPath, fragmentPath)
	if err != nil {
		return nil, nil, err
	}
	vertex, err := NewShader(vertexPath, device.StageVertex, sources[0])
	if err != nil {
		return nil, nil, err
	}
	fragment, err := NewShader(fragmentPath, device.StageFragment, sources[1])
	if err != nil {
		return nil, nil, err
	}
	return vertex, fragment, nil
}
