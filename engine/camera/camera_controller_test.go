package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVecNear(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}

func allKeys() common.MovementKeys {
	return common.MovementKeys(0).
		With(common.MoveForward).
		With(common.MoveBackward).
		With(common.StrafeLeft).
		With(common.StrafeRight)
}

func TestIntegrateZeroDeltaTimeIsIdentity(t *testing.T) {
	start := DefaultState()
	start.Position = mgl32.Vec3{1, -2, 3}
	start.HorizontalAngle = 17.5
	start.VerticalAngle = -0.3

	for _, sample := range []input.Sample{
		{},
		{DX: 120, DY: -45},
		{DX: -3, DY: 9, Keys: allKeys()},
		{Keys: common.MovementKeys(0).With(common.MoveForward)},
	} {
		for _, settings := range []IntegratorSettings{{}, {UpMode: UpModeWorld, WrapAngles: true}} {
			got, _ := Integrate(start, sample, 0, settings)
			assert.Equal(t, start, got, "sample %+v settings %+v", sample, settings)
		}
	}
}

func TestDirectionIsUnitLength(t *testing.T) {
	for h := float32(-40); h <= 40; h += 0.73 {
		for v := float32(-7); v <= 7; v += 0.41 {
			b := ComputeBasis(h, v, UpModeCrossProduct)
			assert.InDelta(t, 1.0, b.Direction.Len(), 1e-5, "h=%v v=%v", h, v)
			assert.InDelta(t, 1.0, b.Right.Len(), 1e-5, "h=%v v=%v", h, v)
		}
	}
}

func TestRightIsHorizontal(t *testing.T) {
	for h := float32(-10); h <= 10; h += 0.25 {
		for _, mode := range []UpMode{UpModeCrossProduct, UpModeWorld} {
			b := ComputeBasis(h, 0.7, mode)
			assert.Equal(t, float32(0), b.Right.Y())
		}
	}
}

func TestCrossProductBasisIsOrthonormal(t *testing.T) {
	for h := float32(-6); h <= 6; h += 0.5 {
		for v := float32(-1.5); v <= 1.5; v += 0.25 {
			b := ComputeBasis(h, v, UpModeCrossProduct)
			assert.InDelta(t, 1.0, b.Up.Len(), 1e-5)
			assert.InDelta(t, 0, b.Up.Dot(b.Direction), 1e-5)
			assert.InDelta(t, 0, b.Up.Dot(b.Right), 1e-5)
			assert.InDelta(t, 0, b.Right.Dot(b.Direction), 1e-5)
		}
	}
}

func TestWorldUpBasis(t *testing.T) {
	b := ComputeBasis(1.2, 0.5, UpModeWorld)
	assert.Equal(t, WorldUp, b.Up)
	// Tilted camera: world up is not orthogonal to the view direction.
	assert.Greater(t, math32.Abs(b.Up.Dot(b.Direction)), float32(0.1))

	level := ComputeBasis(1.2, 0, UpModeWorld)
	assert.InDelta(t, 0, level.Up.Dot(level.Direction), 1e-6)
}

func TestDefaultStateLooksDownNegativeZ(t *testing.T) {
	s := DefaultState()
	b := ComputeBasis(s.HorizontalAngle, s.VerticalAngle, UpModeCrossProduct)
	assert.InDelta(t, 0, b.Direction.X(), 1e-6)
	assert.InDelta(t, 0, b.Direction.Y(), 1e-6)
	assert.InDelta(t, -1, b.Direction.Z(), 1e-6)
	assert.InDelta(t, 1, b.Up.Y(), 1e-6)
}

func TestForwardThenBackwardRoundTrips(t *testing.T) {
	start := DefaultState()
	start.Position = mgl32.Vec3{0.5, 1.5, -2}
	start.HorizontalAngle = 0.8
	start.VerticalAngle = 0.3

	forward := input.Sample{Keys: common.MovementKeys(0).With(common.MoveForward)}
	backward := input.Sample{Keys: common.MovementKeys(0).With(common.MoveBackward)}

	s := start
	for range 10 {
		s, _ = Integrate(s, forward, 0.016, IntegratorSettings{})
	}
	assert.Greater(t, s.Position.Sub(start.Position).Len(), float32(0.4))
	for range 10 {
		s, _ = Integrate(s, backward, 0.016, IntegratorSettings{})
	}
	assertVecNear(t, start.Position, s.Position, 1e-5)
}

func TestStrafeRoundTrips(t *testing.T) {
	start := DefaultState()
	left := input.Sample{Keys: common.MovementKeys(0).With(common.StrafeLeft)}
	right := input.Sample{Keys: common.MovementKeys(0).With(common.StrafeRight)}

	s, _ := Integrate(start, left, 0.5, IntegratorSettings{})
	s, _ = Integrate(s, right, 0.5, IntegratorSettings{})
	assertVecNear(t, start.Position, s.Position, 1e-5)
}

func TestForwardOneSecondScenario(t *testing.T) {
	start := DefaultState()
	start.MouseSensitivity = 0.1
	start.MovementSpeed = 3.0

	got, basis := Integrate(start, input.Sample{Keys: common.MovementKeys(0).With(common.MoveForward)}, 1.0, IntegratorSettings{})

	assert.Equal(t, start.HorizontalAngle, got.HorizontalAngle)
	assert.Equal(t, start.VerticalAngle, got.VerticalAngle)
	assert.Equal(t, start.Position.Add(basis.Direction.Mul(3.0)), got.Position)
}

func TestMouseDeltaIntegration(t *testing.T) {
	start := DefaultState()
	start.MouseSensitivity = 0.01

	got, _ := Integrate(start, input.Sample{DX: 20, DY: -10}, 0.5, IntegratorSettings{})
	assert.InDelta(t, start.HorizontalAngle+0.1, got.HorizontalAngle, 1e-6)
	assert.InDelta(t, start.VerticalAngle-0.05, got.VerticalAngle, 1e-6)
	assert.Equal(t, start.Position, got.Position)
}

func TestDiagonalMovementIsAdditive(t *testing.T) {
	start := DefaultState()
	diagonal := common.MovementKeys(0).With(common.MoveForward).With(common.StrafeRight)

	got, basis := Integrate(start, input.Sample{Keys: diagonal}, 1, IntegratorSettings{})
	moved := got.Position.Sub(start.Position)

	want := basis.Direction.Add(basis.Right).Mul(start.MovementSpeed)
	assertVecNear(t, want, moved, 1e-5)
	assert.InDelta(t, start.MovementSpeed*math32.Sqrt(2), moved.Len(), 1e-4)
}

func TestOpposingKeysCancel(t *testing.T) {
	start := DefaultState()
	got, _ := Integrate(start, input.Sample{Keys: allKeys()}, 1, IntegratorSettings{})
	assertVecNear(t, start.Position, got.Position, 1e-5)
}

func TestAnglesAccumulateUnboundedUnlessWrapped(t *testing.T) {
	start := DefaultState()
	start.MouseSensitivity = 1
	sample := input.Sample{DX: 10}

	s := start
	for range 5 {
		s, _ = Integrate(s, sample, 1, IntegratorSettings{})
	}
	assert.InDelta(t, start.HorizontalAngle+50, s.HorizontalAngle, 1e-4)

	w := start
	for range 5 {
		w, _ = Integrate(w, sample, 1, IntegratorSettings{WrapAngles: true})
	}
	assert.GreaterOrEqual(t, w.HorizontalAngle, -math32.Pi)
	assert.Less(t, w.HorizontalAngle, math32.Pi)
	assert.InDelta(t, math32.Sin(s.HorizontalAngle), math32.Sin(w.HorizontalAngle), 1e-3)
}

func TestControllerUpdate(t *testing.T) {
	cc := NewCameraController(
		WithPosition(1, 2, 3),
		WithHorizontalAngle(0),
		WithMovementSpeed(2),
		WithMouseSensitivity(0.5),
		WithFieldOfView(60),
	)
	require.Equal(t, mgl32.Vec3{1, 2, 3}, cc.Position())
	assert.Equal(t, float32(60), cc.FieldOfView())
	assert.Equal(t, float32(2), cc.MovementSpeed())
	assert.Equal(t, float32(0.5), cc.MouseSensitivity())
	assert.Equal(t, UpModeCrossProduct, cc.UpMode())
	assertVecNear(t, mgl32.Vec3{1, 2, 4}, cc.Target(), 1e-6)

	state := cc.Update(input.Sample{Keys: common.MovementKeys(0).With(common.MoveForward)}, 0.5)
	assertVecNear(t, mgl32.Vec3{1, 2, 4}, state.Position, 1e-6)
	assert.Equal(t, state, cc.State())

	cc.SetPosition(mgl32.Vec3{})
	assert.Equal(t, mgl32.Vec3{}, cc.Position())

	cc.SetState(DefaultState())
	assert.Equal(t, DefaultState(), cc.State())
}

func TestControllerOptions(t *testing.T) {
	s := DefaultState()
	s.VerticalAngle = 0.4
	cc := NewCameraController(WithState(s), WithUpMode(UpModeWorld), WithAngleWrap(true), WithVerticalAngle(0.2))
	assert.Equal(t, float32(0.2), cc.State().VerticalAngle)
	assert.Equal(t, UpModeWorld, cc.UpMode())
	assert.Equal(t, WorldUp, cc.Basis().Up)
}

func TestParseUpMode(t *testing.T) {
	for name, want := range map[string]UpMode{"": UpModeCrossProduct, "cross": UpModeCrossProduct, "world": UpModeWorld} {
		got, ok := ParseUpMode(name)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := ParseUpMode("sideways")
	assert.False(t, ok)
	assert.Equal(t, "world", UpModeWorld.String())
	assert.Equal(t, "cross", UpModeCrossProduct.String())
}
