package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3AddSub(t *testing.T) {
	a := Vec3{31, 2, -20}
	d := Vec3{1, 0, 0}
	if got := a.Add(d).Sub(d); got != a {
		t.Errorf("Add then Sub = %v, want %v", got, a)
	}
}

func TestVec3Div(t *testing.T) {
	v := Vec3{150, 1, 1}
	got := v.Div(100)
	want := Vec3{1.5, 0.01, 0.01}
	if got != want {
		t.Errorf("Vec3.Div() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	if l := v.Normalize().Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize() = %v, want zero", got)
	}
}
