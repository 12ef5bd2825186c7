package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/tramway/pkg/math"
)

// Instanced is a mesh drawn once per offset. Offsets are fed to the vertex
// shader as a per-instance vec3 at the location after the mesh attributes.
type Instanced struct {
	*Mesh
	instanceVBO uint32
	offsets     []math.Vec3
}

// NewInstanced uploads data and the initial instance offsets.
func NewInstanced(data []float32, layout Layout, offsets []math.Vec3) *Instanced {
	m := &Instanced{Mesh: New(data, layout)}
	loc := uint32(len(layout))

	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.instanceVBO)
	gl.VertexAttribPointerWithOffset(loc, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(loc)
	gl.VertexAttribDivisor(loc, 1)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	m.upload(offsets)
	return m
}

// DrawInstanced draws the mesh once per offset, re-uploading offsets only
// when they changed since the last call.
func (m *Instanced) DrawInstanced(offsets []math.Vec3) {
	if len(offsets) == 0 {
		return
	}
	if !sameOffsets(m.offsets, offsets) {
		m.upload(offsets)
	}

	gl.BindVertexArray(m.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, m.count, int32(len(offsets)))
	gl.BindVertexArray(0)
}

// Delete releases GPU buffers.
func (m *Instanced) Delete() {
	if m.instanceVBO != 0 {
		gl.DeleteBuffers(1, &m.instanceVBO)
		m.instanceVBO = 0
	}
	m.Mesh.Delete()
}

func (m *Instanced) upload(offsets []math.Vec3) {
	m.offsets = append(m.offsets[:0], offsets...)
	if len(offsets) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(offsets)*3*4, gl.Ptr(offsets), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func sameOffsets(a, b []math.Vec3) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
