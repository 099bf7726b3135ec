package camera

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

// TransformMatrices is the per-frame set of matrices handed to the renderer.
// All matrices are column-major, matching glUniformMatrix4fv with transpose=false.
type TransformMatrices struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4
	MVP        mgl32.Mat4 // Projection * View * Model
}

// ComposeTransforms multiplies projection * view * model in that fixed order.
//
// Parameters:
//   - projection: the perspective matrix
//   - view: the look-at matrix
//   - model: the object transform
//
// Returns:
//   - TransformMatrices: the inputs plus the composed MVP
func ComposeTransforms(projection, view, model mgl32.Mat4) TransformMatrices {
	return TransformMatrices{
		Projection: projection,
		View:       view,
		Model:      model,
		MVP:        common.Mul4(projection, view, model),
	}
}
