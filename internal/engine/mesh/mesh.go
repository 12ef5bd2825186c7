package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/tramway/internal/assets"
)

// Mesh is a VAO with its vertex buffer and optional index buffer.
type Mesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// New uploads non-indexed vertex data. The draw count is derived from the
// layout, never from the byte size of data.
func New(data []float32, layout Layout) *Mesh {
	m := &Mesh{count: layout.VertexCount(data)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	setAttributes(layout)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

// NewIndexed uploads vertex data with a triangle index list.
func NewIndexed(data []float32, layout Layout, indices []uint32) *Mesh {
	m := &Mesh{count: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	setAttributes(layout)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

// FromAsset uploads a loaded mesh as position + normal.
func FromAsset(d *assets.MeshData) *Mesh {
	return NewIndexed(Interleave(d), PositionNormal, d.Indices)
}

// Count returns the number of vertices (or indices) drawn.
func (m *Mesh) Count() int32 {
	return m.count
}

// Draw binds the VAO and draws its triangles.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.ebo != 0 {
		gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases GPU buffers.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

// setAttributes configures float attributes of the bound VBO at locations
// 0..len(layout)-1.
func setAttributes(layout Layout) {
	stride := int32(layout.Stride() * 4)
	offset := 0
	for i, size := range layout {
		gl.VertexAttribPointerWithOffset(uint32(i), int32(size), gl.FLOAT, false, stride, uintptr(offset*4))
		gl.EnableVertexAttribArray(uint32(i))
		offset += size
	}
}
