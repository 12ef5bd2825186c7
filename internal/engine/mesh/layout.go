// Package mesh uploads vertex data to OpenGL and draws it.
package mesh

import (
	"github.com/Faultbox/tramway/internal/assets"
)

// Layout lists the component count of each vertex attribute, in location
// order. {3, 3} is position + normal (or color) at locations 0 and 1.
type Layout []int

// Common layouts.
var (
	PositionOnly   = Layout{3}
	PositionNormal = Layout{3, 3}
	PositionColor  = Layout{3, 3}
)

// Stride returns the number of floats per vertex.
func (l Layout) Stride() int {
	n := 0
	for _, c := range l {
		n += c
	}
	return n
}

// VertexCount returns how many whole vertices data holds for this layout.
func (l Layout) VertexCount(data []float32) int32 {
	stride := l.Stride()
	if stride == 0 {
		return 0
	}
	return int32(len(data) / stride)
}

// Interleave packs a loaded mesh as position + normal vertices.
// Missing normals are zero.
func Interleave(d *assets.MeshData) []float32 {
	out := make([]float32, 0, len(d.Positions)*6)
	for i, p := range d.Positions {
		var n [3]float32
		if i < len(d.Normals) {
			n = d.Normals[i]
		}
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out
}
