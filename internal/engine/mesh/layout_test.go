package mesh

import (
	"testing"

	"github.com/Faultbox/tramway/internal/assets"
	"github.com/Faultbox/tramway/pkg/math"
)

func TestVertexCount(t *testing.T) {
	tests := []struct {
		name   string
		data   []float32
		layout Layout
		want   int32
	}{
		{"cube", CubeVertices, PositionNormal, 36},
		{"skybox", SkyboxVertices, PositionOnly, 36},
		{"plane", PlaneVertices, PositionColor, 6},
		{"building", BuildingVertices, PositionColor, 36},
		{"partial vertex dropped", make([]float32, 10), PositionNormal, 1},
		{"empty layout", CubeVertices, Layout{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.VertexCount(tt.data); got != tt.want {
				t.Errorf("VertexCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStride(t *testing.T) {
	if got := (Layout{3, 3, 2}).Stride(); got != 8 {
		t.Errorf("Stride = %d, want 8", got)
	}
}

func TestBuildingVerticesColored(t *testing.T) {
	for i := 0; i < len(BuildingVertices); i += 6 {
		if BuildingVertices[i+3] != 0.6 || BuildingVertices[i+4] != 0.3 || BuildingVertices[i+5] != 0.1 {
			t.Fatalf("vertex %d color = %v", i/6, BuildingVertices[i+3:i+6])
		}
		if BuildingVertices[i] != CubeVertices[i] {
			t.Fatalf("vertex %d position differs from cube", i/6)
		}
	}
	// The source cube keeps its normals.
	if CubeVertices[5] != -1 {
		t.Errorf("CubeVertices modified: normal z = %v", CubeVertices[5])
	}
}

func TestInterleave(t *testing.T) {
	d := &assets.MeshData{
		Positions: [][3]float32{{1, 2, 3}, {4, 5, 6}},
		Normals:   [][3]float32{{0, 1, 0}},
	}

	got := Interleave(d)
	want := []float32{1, 2, 3, 0, 1, 0, 4, 5, 6, 0, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSameOffsets(t *testing.T) {
	a := []math.Vec3{{X: 1}, {X: 2}}
	if !sameOffsets(a, []math.Vec3{{X: 1}, {X: 2}}) {
		t.Error("equal offsets reported different")
	}
	if sameOffsets(a, a[:1]) {
		t.Error("different lengths reported equal")
	}
	if sameOffsets(a, []math.Vec3{{X: 1}, {X: 3}}) {
		t.Error("different values reported equal")
	}
}
