package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translation(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestMulMatchesMathGL(t *testing.T) {
	a := Translation(Vec3{1, -2, 3}).Mul(Rotation(0.7, Vec3{0, 1, 0}))
	b := Scaling(Vec3{2, 3, 4}).Mul(Translation(Vec3{5, 6, 7}))

	got := a.Mul(b)
	want := Mat4(mgl32.Mat4(a).Mul4(mgl32.Mat4(b)))
	if !got.ApproxEqual(want, eps) {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
}

func TestComposition(t *testing.T) {
	tests := []struct {
		name string
		got  Mat4
		want mgl32.Mat4
	}{
		{
			name: "translate",
			got:  Identity().Translate(Vec3{5, 10, 15}),
			want: mgl32.Translate3D(5, 10, 15),
		},
		{
			name: "rotate about up",
			got:  Identity().Rotate(0.3, Up),
			want: mgl32.HomogRotate3D(0.3, mgl32.Vec3{0, 1, 0}),
		},
		{
			name: "scale",
			got:  Identity().ScaleBy(Vec3{0.05, 0.23, 0.1}),
			want: mgl32.Scale3D(0.05, 0.23, 0.1),
		},
		{
			name: "door transform",
			got:  TRS(Vec3{31.2, 2, -19.67}, 0.1, Up, Vec3{0.05, 0.23, 0.1}),
			want: mgl32.Translate3D(31.2, 2, -19.67).
				Mul4(mgl32.HomogRotate3D(0.1, mgl32.Vec3{0, 1, 0})).
				Mul4(mgl32.Scale3D(0.05, 0.23, 0.1)),
		},
		{
			name: "tram transform",
			got: Identity().
				Translate(Vec3{0, -0.5, 0}).
				ScaleBy(Vec3{0.01, 0.01, 0.01}).
				Translate(Vec3{4, 1, 1}),
			want: mgl32.Translate3D(0, -0.5, 0).
				Mul4(mgl32.Scale3D(0.01, 0.01, 0.01)).
				Mul4(mgl32.Translate3D(4, 1, 1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(Mat4(tt.want), eps) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestTranslateThenScaleOrder(t *testing.T) {
	// translate(offset) * scale(s) * translate(p) moves the origin to offset + s*p.
	m := Identity().
		Translate(Vec3{0, -0.5, 0}).
		ScaleBy(Vec3{0.01, 0.01, 0.01}).
		Translate(Vec3{100, 0, 0})

	got := m.Origin()
	want := Vec3{1, -0.5, 0}
	if !got.ApproxEqual(want, eps) {
		t.Errorf("Origin: got %v, want %v", got, want)
	}
}

func TestRotationZeroAxis(t *testing.T) {
	if got := Rotation(1, Vec3{}); got != Identity() {
		t.Errorf("Rotation with zero axis: got %v, want identity", got)
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translation(Vec3{10, 20, 30})
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := Rotation(float32(math.Pi/2), Up)
	result := m.TransformVec3(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if !result.ApproxEqual(Vec3{0, 0, -1}, 0.001) {
		t.Errorf("Rotate Y 90: got %v, want (0, 0, -1)", result)
	}
}

func TestPerspectiveMatchesMathGL(t *testing.T) {
	got := Perspective(Radians(45), 1280.0/720.0, 0.1, 100)
	want := Mat4(mgl32.Perspective(mgl32.DegToRad(45), 1280.0/720.0, 0.1, 100))
	if !got.ApproxEqual(want, 1e-4) {
		t.Errorf("Perspective: got %v, want %v", got, want)
	}
	if got[11] != -1 || got[15] != 0 {
		t.Errorf("Perspective: [11]=%f [15]=%f, want -1 and 0", got[11], got[15])
	}
}

func TestLookAtMatchesMathGL(t *testing.T) {
	eye := Vec3{-1.2, 0, -0.8}
	center := Vec3{-0.2, 0, -0.8}
	got := LookAt(eye, center, Up)
	want := Mat4(mgl32.LookAtV(
		mgl32.Vec3{-1.2, 0, -0.8},
		mgl32.Vec3{-0.2, 0, -0.8},
		mgl32.Vec3{0, 1, 0},
	))
	if !got.ApproxEqual(want, eps) {
		t.Errorf("LookAt: got %v, want %v", got, want)
	}
}

func TestWithoutTranslation(t *testing.T) {
	m := Translation(Vec3{4, 5, 6}).Rotate(0.5, Up)
	got := m.WithoutTranslation()

	if got.Origin() != (Vec3{}) {
		t.Errorf("WithoutTranslation: origin %v, want zero", got.Origin())
	}
	for _, i := range []int{0, 1, 2, 4, 5, 6, 8, 9, 10} {
		if got[i] != m[i] {
			t.Errorf("WithoutTranslation: element %d = %f, want %f", i, got[i], m[i])
		}
	}
	if got[15] != 1 {
		t.Errorf("WithoutTranslation [15] = %f, want 1", got[15])
	}
}
