package renderer

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/device/fake_device"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearOnlyScene(t *testing.T) {
	dev := fake_device.New()
	r := NewRenderer(dev, WithViewport(800, 600))
	assert.Equal(t, [2]int32{800, 600}, dev.ViewportSize)

	require.NoError(t, r.LoadScene(scene.HelloWindow()))
	r.Draw(mgl32.Ident4())

	assert.Equal(t, 1, dev.Clears)
	assert.Empty(t, dev.Draws)
	assert.Empty(t, dev.Compiled)
	assert.Empty(t, dev.Buffers)
}

func TestTriangleSkipsMissingUniform(t *testing.T) {
	dev := fake_device.New()
	dev.Uniforms = map[string]int32{}
	r := NewRenderer(dev)

	require.NoError(t, r.LoadScene(scene.Triangle()))
	r.Draw(mgl32.Ident4())

	require.Len(t, dev.Draws, 1)
	assert.Equal(t, int32(3), dev.Draws[0].Count)
	assert.False(t, dev.Draws[0].MVPUploaded)
	assert.Equal(t, 0, dev.UniformUploads)
	assert.False(t, dev.DepthTest)
}

func TestCubeUploadsOnceAndDrawsEveryFrame(t *testing.T) {
	dev := fake_device.New()
	r := NewRenderer(dev)
	s := scene.ColoredCube()

	require.NoError(t, r.LoadScene(s))
	assert.True(t, dev.DepthTest)
	require.Len(t, dev.Buffers, 1)
	assert.Equal(t, s.Geometry().Vertices, dev.Buffers[0])
	assert.Equal(t, []fake_device.Attribute{
		{Location: 0, Size: 3, Stride: 24, Offset: 0},
		{Location: 1, Size: 3, Stride: 24, Offset: 12},
	}, dev.AttributesSet)

	mvp := mgl32.Translate3D(1, 2, 3)
	for range 3 {
		r.Draw(mvp)
	}

	assert.Len(t, dev.Buffers, 1)
	require.Len(t, dev.Draws, 3)
	for _, d := range dev.Draws {
		assert.Equal(t, int32(36), d.Count)
		assert.True(t, d.MVPUploaded)
		assert.Equal(t, [16]float32(mvp), d.MVP)
		assert.NotZero(t, d.Program)
	}
	assert.Equal(t, 3, dev.Clears)
}

func TestProgramsAreCached(t *testing.T) {
	dev := fake_device.New()
	r := NewRenderer(dev)

	require.NoError(t, r.LoadScene(scene.ColoredCube()))
	require.NoError(t, r.LoadScene(scene.FlyCamera()))

	assert.Len(t, dev.Linked, 1)
	assert.Len(t, r.Programs(), 1)
	p, ok := r.Program(ProgramKey(scene.Shaders(), "cube.vert", "cube.frag"))
	require.True(t, ok)
	assert.Equal(t, "cube.vert+cube.frag", p.Key)
	assert.Equal(t, "Fly camera", r.Scene().Name())

	r.Release()
	assert.Empty(t, r.Programs())
	assert.Contains(t, dev.DeletedPrograms, p.Handle)
}

func TestSamePathsFromDifferentFileSystemsCompileSeparately(t *testing.T) {
	dev := fake_device.New()
	r := NewRenderer(dev)

	red := fstest.MapFS{
		"lesson.vert": {Data: []byte("#version 410 core\nvoid main() {}\n")},
		"lesson.frag": {Data: []byte("#version 410 core\nout vec4 c;\nvoid main() { c = vec4(1, 0, 0, 1); }\n")},
	}
	blue := fstest.MapFS{
		"lesson.vert": {Data: []byte("#version 410 core\nvoid main() {}\n")},
		"lesson.frag": {Data: []byte("#version 410 core\nout vec4 c;\nvoid main() { c = vec4(0, 0, 1, 1); }\n")},
	}

	require.NoError(t, r.LoadScene(scene.Triangle(scene.WithShaderFS(red), scene.WithShaders("lesson.vert", "lesson.frag"))))
	require.NoError(t, r.LoadScene(scene.Triangle(scene.WithShaderFS(blue), scene.WithShaders("lesson.vert", "lesson.frag"))))

	assert.Len(t, dev.Linked, 2)
	assert.Len(t, r.Programs(), 2)
	assert.NotEqual(t, ProgramKey(red, "lesson.vert", "lesson.frag"), ProgramKey(blue, "lesson.vert", "lesson.frag"))

	require.NoError(t, r.LoadScene(scene.Triangle(scene.WithShaderFS(red), scene.WithShaders("lesson.vert", "lesson.frag"))))
	assert.Len(t, dev.Linked, 2)
}

func TestProgramKeyForDirFS(t *testing.T) {
	assert.Equal(t,
		ProgramKey(os.DirFS("/shaders"), "a.vert", "a.frag"),
		ProgramKey(os.DirFS("/shaders"), "a.vert", "a.frag"))
	assert.NotEqual(t,
		ProgramKey(os.DirFS("/shaders"), "a.vert", "a.frag"),
		ProgramKey(os.DirFS("/other"), "a.vert", "a.frag"))
	assert.Equal(t,
		ProgramKey(scene.Shaders(), "cube.vert", "cube.frag"),
		ProgramKey(scene.Shaders(), "cube.vert", "cube.frag"))
}

func TestFailedLoadKeepsPreviousScene(t *testing.T) {
	dev := fake_device.New()
	r := NewRenderer(dev)
	require.NoError(t, r.LoadScene(scene.ColoredCube()))
	buffers, arrays := len(dev.Buffers), len(dev.VertexArrays)

	err := r.LoadScene(scene.FlyCamera(scene.WithShaderFS(fstest.MapFS{}), scene.WithShaders("x.vert", "x.frag")))
	require.Error(t, err)

	assert.Equal(t, "Colored cube", r.Scene().Name())
	assert.Empty(t, dev.DeletedBuffers)
	assert.Empty(t, dev.DeletedVertexArrays)
	assert.Len(t, dev.Buffers, buffers)
	assert.Len(t, dev.VertexArrays, arrays)

	r.Draw(mgl32.Ident4())
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, int32(36), dev.Draws[0].Count)
}

func TestReloadReleasesVertexArrayAndBuffer(t *testing.T) {
	dev := fake_device.New()
	r := NewRenderer(dev)

	require.NoError(t, r.LoadScene(scene.Triangle()))
	require.Len(t, dev.VertexArrays, 1)
	require.Len(t, dev.BufferHandles, 1)
	firstVAO, firstVBO := dev.VertexArrays[0], dev.BufferHandles[0]

	require.NoError(t, r.LoadScene(scene.ColoredCube()))
	assert.Equal(t, []uint32{firstVAO}, dev.DeletedVertexArrays)
	assert.Equal(t, []uint32{firstVBO}, dev.DeletedBuffers)

	r.Release()
	assert.Equal(t, []uint32{firstVAO, dev.VertexArrays[1]}, dev.DeletedVertexArrays)
	assert.Equal(t, []uint32{firstVBO, dev.BufferHandles[1]}, dev.DeletedBuffers)
}

func TestPreRegisteredProgram(t *testing.T) {
	dev := fake_device.New()
	r := NewRenderer(dev, WithProgram(scene.Shaders(), "triangle.vert", "triangle.frag", shader.Program{Handle: 42, Key: "preloaded"}))

	require.NoError(t, r.LoadScene(scene.Triangle()))
	r.Draw(mgl32.Ident4())
	assert.Empty(t, dev.Compiled)
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, uint32(42), dev.Draws[0].Program)
}

func TestCompileFailureIsReturned(t *testing.T) {
	dev := fake_device.New()
	dev.FailStage[device.StageFragment] = "0:3: syntax error"
	r := NewRenderer(dev)

	err := r.LoadScene(scene.Triangle())
	var compileErr *shader.CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, shader.ErrorStageFragment, compileErr.Stage)
	assert.Equal(t, "0:3: syntax error", compileErr.Log)

	r.Draw(mgl32.Ident4())
	assert.Empty(t, dev.Draws)
}

func TestMissingShaderFile(t *testing.T) {
	dev := fake_device.New()
	r := NewRenderer(dev)

	err := r.LoadScene(scene.Triangle(scene.WithShaderFS(fstest.MapFS{})))
	require.Error(t, err)
	assert.Empty(t, dev.Compiled)
}

func TestAttributeLookupByName(t *testing.T) {
	dev := fake_device.New()
	r := NewRenderer(dev)

	g := scene.TriangleGeometry()
	g.Attributes[0].Location = -1
	require.NoError(t, r.LoadScene(scene.Triangle(scene.WithGeometry(g))))
	assert.Equal(t, uint32(0), dev.AttributesSet[0].Location)

	arrays, buffers := len(dev.VertexArrays), len(dev.Buffers)
	g.Attributes[0].Name = "missing"
	err := r.LoadScene(scene.Triangle(scene.WithGeometry(g)))
	assert.ErrorContains(t, err, "missing")
	assert.Len(t, dev.VertexArrays, arrays)
	assert.Len(t, dev.Buffers, buffers)
	assert.Empty(t, dev.DeletedVertexArrays)
}

func TestInactiveSceneOnlyClears(t *testing.T) {
	dev := fake_device.New()
	r := NewRenderer(dev)
	require.NoError(t, r.LoadScene(scene.Triangle(scene.WithActive(false))))

	r.Draw(mgl32.Ident4())
	assert.Equal(t, 1, dev.Clears)
	assert.Empty(t, dev.Draws)
}

func TestResize(t *testing.T) {
	dev := fake_device.New()
	r := NewRenderer(dev)
	r.Resize(1024, 768)
	assert.Equal(t, [2]int32{1024, 768}, dev.ViewportSize)
	assert.Equal(t, dev, r.Device())
}
