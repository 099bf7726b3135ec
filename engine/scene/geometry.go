package scene

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/device"
)

const floatSize = 4

// Geometry is static, interleaved float vertex data uploaded once.
type Geometry struct {
	// Vertices holds the interleaved attribute data.
	Vertices []float32
	// Attributes describes each attribute inside one vertex.
	Attributes []device.VertexAttribute
	// Stride is the size of one vertex in bytes.
	Stride int32
}

// VertexCount returns the number of whole vertices in the buffer.
//
// Returns:
//   - int32: vertex count, 0 for empty geometry
func (g Geometry) VertexCount() int32 {
	if g.Stride == 0 {
		return 0
	}
	return int32(len(g.Vertices)*floatSize) / g.Stride
}

// Empty reports whether there is nothing to draw.
func (g Geometry) Empty() bool {
	return g.VertexCount() == 0
}

// TriangleGeometry returns a single triangle in normalized device coordinates, positions only.
//
// Returns:
//   - Geometry: three vertices with a vec3 position at location 0
func TriangleGeometry() Geometry {
	return Geometry{
		Vertices: []float32{
			-1, -1, 0,
			1, -1, 0,
			0, 1, 0,
		},
		Attributes: []device.VertexAttribute{
			{Name: "vertexPosition_modelspace", Location: 0, Size: 3, Offset: 0},
		},
		Stride: 3 * floatSize,
	}
}

// cubeFaces lists each face's corners counter-clockwise as seen from outside the cube.
var cubeFaces = [6][4][3]float32{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},     // +Z
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, // -Z
	{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},     // +X
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, // -X
	{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},     // +Y
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, // -Y
}

// CubeGeometry returns a 2x2x2 cube centered on the origin as 12 triangles.
// Each vertex carries a position and a color derived from it, (p + 1) / 2, so every corner
// has a distinct RGB value.
//
// Returns:
//   - Geometry: 36 vertices with position at location 0 and color at location 1
func CubeGeometry() Geometry {
	vertices := make([]float32, 0, 6*6*6)
	for _, face := range cubeFaces {
		for _, corner := range [6]int{0, 1, 2, 0, 2, 3} {
			p := face[corner]
			vertices = append(vertices,
				p[0], p[1], p[2],
				(p[0]+1)/2, (p[1]+1)/2, (p[2]+1)/2,
			)
		}
	}
	return Geometry{
		Vertices: vertices,
		Attributes: []device.VertexAttribute{
			{Name: "vertexPosition_modelspace", Location: 0, Size: 3, Offset: 0},
			{Name: "vertexColor", Location: 1, Size: 3, Offset: 3 * floatSize},
		},
		Stride: 6 * floatSize,
	}
}
