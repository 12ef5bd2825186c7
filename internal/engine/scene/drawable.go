package scene

import "github.com/Faultbox/tramway/pkg/math"

// ModelUniform is the uniform the world transform is uploaded to.
const ModelUniform = "model"

// Program is a linked shader program.
type Program interface {
	Use()
	SetMat4(name string, m math.Mat4)
}

// Mesh is uploaded geometry that can bind itself and issue a draw call.
type Mesh interface {
	Draw()
}

// InstancedMesh is a Mesh that can also be drawn once per instance offset.
type InstancedMesh interface {
	Mesh
	DrawInstanced(offsets []math.Vec3)
}

// Drawable can be rendered given a world transform, using the shader it was
// built with.
type Drawable interface {
	Render(world math.Mat4)
}

// Instancer is implemented by drawables that support instanced rendering.
type Instancer interface {
	Drawable
	RenderInstanced(world math.Mat4, offsets []math.Vec3)
}

// Model is a single mesh drawn with one program.
type Model struct {
	Mesh    Mesh
	Program Program
}

// NewModel creates a single-mesh drawable.
func NewModel(mesh Mesh, program Program) *Model {
	return &Model{Mesh: mesh, Program: program}
}

// Render uploads world as the model matrix and draws the mesh.
func (m *Model) Render(world math.Mat4) {
	m.Program.Use()
	m.Program.SetMat4(ModelUniform, world)
	m.Mesh.Draw()
}

// RenderInstanced draws the mesh once per offset. Meshes without instancing
// support fall back to one draw per offset with a translated world transform.
func (m *Model) RenderInstanced(world math.Mat4, offsets []math.Vec3) {
	m.Program.Use()
	if im, ok := m.Mesh.(InstancedMesh); ok {
		m.Program.SetMat4(ModelUniform, world)
		im.DrawInstanced(offsets)
		return
	}
	for _, off := range offsets {
		m.Program.SetMat4(ModelUniform, world.Translate(off))
		m.Mesh.Draw()
	}
}

// MultiModel is several meshes sharing one program and transform, e.g. the
// sub-meshes of an imported model file.
type MultiModel struct {
	Meshes  []Mesh
	Program Program
}

// NewMultiModel creates a multi-mesh drawable.
func NewMultiModel(program Program, meshes ...Mesh) *MultiModel {
	return &MultiModel{Meshes: meshes, Program: program}
}

// Render draws every mesh in order with the same model matrix.
func (m *MultiModel) Render(world math.Mat4) {
	m.Program.Use()
	m.Program.SetMat4(ModelUniform, world)
	for _, mesh := range m.Meshes {
		mesh.Draw()
	}
}
