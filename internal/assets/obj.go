package assets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOBJ reads a Wavefront OBJ file.
func LoadOBJ(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	model, err := ParseOBJ(f)
	if err != nil {
		return nil, err
	}
	model.Path = path
	return model, nil
}

type objKey struct {
	v, vt, vn int
}

type objBuilder struct {
	mesh      *MeshData
	seen      map[objKey]uint32
	hasUV     bool
	missingVN bool
}

func newOBJBuilder(name string) *objBuilder {
	return &objBuilder{
		mesh: &MeshData{Name: name},
		seen: make(map[objKey]uint32),
	}
}

// ParseOBJ parses OBJ geometry: positions, texture coordinates, normals and
// polygonal faces (fan-triangulated). Each "o" or "g" statement starts a new
// mesh. Materials, lines and points are ignored.
func ParseOBJ(r io.Reader) (*Model, error) {
	var (
		positions [][3]float32
		uvs       [][2]float32
		normals   [][3]float32
		meshes    []*MeshData
	)

	cur := newOBJBuilder("default")
	flush := func() {
		if len(cur.mesh.Indices) == 0 {
			return
		}
		if !cur.hasUV {
			cur.mesh.UVs = nil
		}
		if cur.missingVN {
			cur.mesh.Normals = nil
		}
		cur.mesh.EnsureNormals()
		meshes = append(meshes, cur.mesh)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, [3]float32{v[0], v[1], v[2]})

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texcoord: %w", lineNo, err)
			}
			uvs = append(uvs, [2]float32{v[0], v[1]})

		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, [3]float32{v[0], v[1], v[2]})

		case "o", "g":
			name := "default"
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}
			flush()
			cur = newOBJBuilder(name)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices, got %d", lineNo, len(fields)-1)
			}
			corners := make([]uint32, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				key, err := parseFaceVertex(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: face: %w", lineNo, err)
				}
				corners = append(corners, cur.vertex(key, positions, uvs, normals))
			}
			for i := 1; i+1 < len(corners); i++ {
				cur.mesh.Indices = append(cur.mesh.Indices, corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}

	flush()
	if len(meshes) == 0 {
		return nil, fmt.Errorf("obj has no faces")
	}

	return &Model{Meshes: meshes}, nil
}

// vertex returns the index of the unique position/uv/normal combination,
// appending it to the mesh on first use.
func (b *objBuilder) vertex(key objKey, positions [][3]float32, uvs [][2]float32, normals [][3]float32) uint32 {
	if idx, ok := b.seen[key]; ok {
		return idx
	}

	idx := uint32(len(b.mesh.Positions))
	b.mesh.Positions = append(b.mesh.Positions, positions[key.v])

	var uv [2]float32
	if key.vt >= 0 {
		uv = uvs[key.vt]
		b.hasUV = true
	}
	b.mesh.UVs = append(b.mesh.UVs, uv)

	var n [3]float32
	if key.vn >= 0 {
		n = normals[key.vn]
	} else {
		b.missingVN = true
	}
	b.mesh.Normals = append(b.mesh.Normals, n)

	b.seen[key] = idx
	return idx
}

// parseFaceVertex parses "v", "v/vt", "v//vn" or "v/vt/vn" into zero-based
// indices, -1 for absent parts. Negative OBJ indices count from the end.
func parseFaceVertex(tok string, nv, nvt, nvn int) (objKey, error) {
	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return objKey{}, fmt.Errorf("bad vertex %q", tok)
	}

	key := objKey{v: -1, vt: -1, vn: -1}
	counts := [3]int{nv, nvt, nvn}
	dst := [3]*int{&key.v, &key.vt, &key.vn}

	for i, p := range parts {
		if p == "" {
			if i == 0 {
				return objKey{}, fmt.Errorf("bad vertex %q", tok)
			}
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return objKey{}, fmt.Errorf("bad vertex %q: %w", tok, err)
		}
		switch {
		case n > 0:
			n--
		case n < 0:
			n += counts[i]
		default:
			return objKey{}, fmt.Errorf("bad vertex %q: index 0", tok)
		}
		if n < 0 || n >= counts[i] {
			return objKey{}, fmt.Errorf("vertex %q out of range", tok)
		}
		*dst[i] = n
	}

	return key, nil
}

// parseFloats parses at least n floats; extra components (e.g. w) are ignored.
func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}
