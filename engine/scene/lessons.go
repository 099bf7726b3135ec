package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Lesson names accepted by ByName.
const (
	LessonWindow   = "window"
	LessonTriangle = "triangle"
	LessonCube     = "cube"
	LessonCamera   = "camera"
)

var lessons = map[string]func(options ...SceneBuilderOption) Scene{
	LessonWindow:   HelloWindow,
	LessonTriangle: Triangle,
	LessonCube:     ColoredCube,
	LessonCamera:   FlyCamera,
}

// HelloWindow is the first step: an empty window cleared to a teal color.
func HelloWindow(options ...SceneBuilderOption) Scene {
	return NewScene("Hello window", append([]SceneBuilderOption{
		WithClearColor(0.2, 0.3, 0.3, 1.0),
	}, options...)...)
}

// Triangle draws one red triangle directly in clip space.
func Triangle(options ...SceneBuilderOption) Scene {
	return NewScene("Triangle", append([]SceneBuilderOption{
		WithClearColor(0.0, 0.0, 0.4, 1.0),
		WithGeometry(TriangleGeometry()),
		WithShaders("triangle.vert", "triangle.frag"),
	}, options...)...)
}

// ColoredCube draws the colored cube seen from a fixed point at (4, 3, 3).
func ColoredCube(options ...SceneBuilderOption) Scene {
	return NewScene("Colored cube", append([]SceneBuilderOption{
		WithClearColor(0.0, 0.0, 0.4, 1.0),
		WithDepthTest(true),
		WithGeometry(CubeGeometry()),
		WithShaders("cube.vert", "cube.frag"),
		WithCameraMode(CameraStatic),
		WithLookAt(mgl32.Vec3{4, 3, 3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}),
	}, options...)...)
}

// FlyCamera draws the colored cube with the mouse and keyboard fly camera.
func FlyCamera(options ...SceneBuilderOption) Scene {
	return NewScene("Fly camera", append([]SceneBuilderOption{
		WithClearColor(0.0, 0.0, 0.4, 1.0),
		WithDepthTest(true),
		WithGeometry(CubeGeometry()),
		WithShaders("cube.vert", "cube.frag"),
		WithCameraMode(CameraFly),
	}, options...)...)
}

// ByName builds the lesson scene registered under name.
//
// Parameters:
//   - name: one of LessonWindow, LessonTriangle, LessonCube, LessonCamera
//   - options: extra options applied after the lesson defaults
//
// Returns:
//   - Scene: the scene
//   - bool: false if no lesson has that name
func ByName(name string, options ...SceneBuilderOption) (Scene, bool) {
	build, ok := lessons[name]
	if !ok {
		return nil, false
	}
	return build(options...), true
}

// Names returns the lesson names in sorted order.
func Names() []string {
	names := make([]string, 0, len(lessons))
	for name := range lessons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
