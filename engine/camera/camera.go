package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	// static look-at, used only while no controller is attached
	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3

	fov    float32 // degrees
	aspect float32
	near   float32
	far    float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4

	controller CameraController
}

// Camera defines the interface for the camera system.
// The camera holds perspective settings and computes view/projection matrices, either from an
// attached CameraController or from a static look-at, each frame via Update().
type Camera interface {
	// Fov returns the field of view in degrees. When a controller is attached its
	// FieldOfView takes precedence.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the view matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the projection matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view from the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Transforms composes the full matrix set for an object transform using the matrices
	// from the last Update.
	//
	// Parameters:
	//   - model: the object's model matrix
	//
	// Returns:
	//   - TransformMatrices: projection, view, model and MVP
	Transforms(model mgl32.Mat4) TransformMatrices

	// Controller returns the attached CameraController, or nil.
	//
	// Returns:
	//   - CameraController: the attached controller or nil
	Controller() CameraController

	// Update recomputes the view and projection matrices. Called once per frame; there is
	// no dirty tracking.
	Update()

	// SetLookAt sets the static eye, target and up used while no controller is attached.
	//
	// Parameters:
	//   - eye: camera position
	//   - target: point to look at
	//   - up: up vector
	SetLookAt(eye, target, up mgl32.Vec3)

	// SetFov sets the field of view in degrees and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in degrees
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetController attaches a CameraController to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach, or nil to fall back to the static look-at
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings
// (45 degrees, 4:3, near 0.1, far 100) looking from (0, 0, 5) at the origin.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		eye:    mgl32.Vec3{0, 0, 5},
		target: mgl32.Vec3{0, 0, 0},
		up:     WorldUp,
		fov:    45,
		aspect: 4.0 / 3.0,
		near:   0.1,
		far:    100,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fovDegrees()
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Transforms(model mgl32.Mat4) TransformMatrices {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ComposeTransforms(c.projectionMatrix, c.viewMatrix, model)
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
}

func (c *cameraImpl) SetLookAt(eye, target, up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eye, c.target, c.up = eye, target, up
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

// fovDegrees resolves the active field of view.
// Caller must hold the mutex.
func (c *cameraImpl) fovDegrees() float32 {
	if c.controller != nil {
		return c.controller.FieldOfView()
	}
	return c.fov
}

// updateMatrices recalculates the view, projection and view-projection matrices.
// With a controller attached the view looks from its position along its direction using its
// up vector; otherwise the static look-at is used.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	eye, target, up := c.eye, c.target, c.up
	if c.controller != nil {
		basis := c.controller.Basis()
		eye = c.controller.Position()
		target = eye.Add(basis.Direction)
		up = basis.Up
	}

	c.viewMatrix = common.LookAt(eye, target, up)
	c.projectionMatrix = common.Perspective(c.fovDegrees(), c.aspect, c.near, c.far)
	c.viewProjectionMatrix = common.Mul4(c.projectionMatrix, c.viewMatrix)
}
