package mesh

// CubeVertices is a unit cube centred on the origin, position + normal,
// 36 vertices.
var CubeVertices = []float32{
	-0.5, -0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,

	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,

	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,

	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,

	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,

	-0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
}

// SkyboxVertices is a 2-unit cube seen from inside, position only.
var SkyboxVertices = []float32{
	-1, 1, -1,
	-1, -1, -1,
	1, -1, -1,
	1, -1, -1,
	1, 1, -1,
	-1, 1, -1,

	-1, -1, 1,
	-1, -1, -1,
	-1, 1, -1,
	-1, 1, -1,
	-1, 1, 1,
	-1, -1, 1,

	1, -1, -1,
	1, -1, 1,
	1, 1, 1,
	1, 1, 1,
	1, 1, -1,
	1, -1, -1,

	-1, -1, 1,
	-1, 1, 1,
	1, 1, 1,
	1, 1, 1,
	1, -1, 1,
	-1, -1, 1,

	-1, 1, -1,
	1, 1, -1,
	1, 1, 1,
	1, 1, 1,
	-1, 1, 1,
	-1, 1, -1,

	-1, -1, -1,
	-1, -1, 1,
	1, -1, -1,
	1, -1, -1,
	-1, -1, 1,
	1, -1, 1,
}

// PlaneVertices is a 2x2 quad on y=0, position + color.
var PlaneVertices = []float32{
	-1, 0, -1, 0.4, 0.5, 0.5,
	1, 0, -1, 0.4, 0.5, 0.5,
	1, 0, 1, 0.4, 0.5, 0.5,
	1, 0, 1, 0.4, 0.5, 0.5,
	-1, 0, 1, 0.4, 0.5, 0.5,
	-1, 0, -1, 0.4, 0.5, 0.5,
}

// BuildingVertices is a brown unit cube, position + color.
var BuildingVertices = colored(CubeVertices, [3]float32{0.6, 0.3, 0.1})

// colored replaces the normals of a position + normal array with a flat color.
func colored(src []float32, c [3]float32) []float32 {
	out := make([]float32, len(src))
	copy(out, src)
	for i := 0; i+5 < len(out); i += 6 {
		out[i+3], out[i+4], out[i+5] = c[0], c[1], c[2]
	}
	return out
}
