package assets

import "math"

// MeshData is CPU-side indexed triangle geometry.
type MeshData struct {
	Name      string
	Positions [][3]float32
	Normals   [][3]float32 // same length as Positions, or empty
	UVs       [][2]float32 // same length as Positions, or empty
	Indices   []uint32     // triangle list
}

// Model is a parsed model file. A file may hold several meshes
// (OBJ objects/groups, glTF primitives).
type Model struct {
	Path   string
	Meshes []*MeshData
}

// VertexCount returns the total number of vertices over all meshes.
func (m *Model) VertexCount() int {
	n := 0
	for _, mesh := range m.Meshes {
		n += len(mesh.Positions)
	}
	return n
}

// EnsureNormals fills Normals with area-weighted vertex normals when the
// source file did not provide any.
func (d *MeshData) EnsureNormals() {
	if len(d.Normals) == len(d.Positions) {
		return
	}

	acc := make([][3]float32, len(d.Positions))
	for i := 0; i+2 < len(d.Indices); i += 3 {
		a, b, c := d.Indices[i], d.Indices[i+1], d.Indices[i+2]
		p0, p1, p2 := d.Positions[a], d.Positions[b], d.Positions[c]

		e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		e2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		n := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}

		for _, idx := range [3]uint32{a, b, c} {
			acc[idx][0] += n[0]
			acc[idx][1] += n[1]
			acc[idx][2] += n[2]
		}
	}

	for i := range acc {
		acc[i] = normalize(acc[i])
	}
	d.Normals = acc
}

func normalize(v [3]float32) [3]float32 {
	l := sqrt32(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
