package camera

import (
	"testing"

	"github.com/Faultbox/tramway/pkg/math"
)

func TestDefaultFacesNegativeZ(t *testing.T) {
	c := New(DefaultConfig())

	if !c.Front().ApproxEqual(math.Vec3{X: 0, Y: 0, Z: -1}, 1e-5) {
		t.Errorf("front: got %v, want (0,0,-1)", c.Front())
	}
	if got := c.Position(); got != (math.Vec3{X: -1.2, Y: 0, Z: -0.8}) {
		t.Errorf("position: got %v", got)
	}
}

func TestSetPositionKeepsOrientation(t *testing.T) {
	c := New(DefaultConfig())
	c.HandleLook(100, 20)
	yaw, pitch := c.Yaw, c.Pitch

	c.SetPosition(math.Vec3{X: 5, Y: 1, Z: 2})

	if c.Yaw != yaw || c.Pitch != pitch {
		t.Errorf("orientation changed: yaw %f pitch %f, want %f %f", c.Yaw, c.Pitch, yaw, pitch)
	}
	if got := c.Position(); got != (math.Vec3{X: 5, Y: 1, Z: 2}) {
		t.Errorf("position: got %v", got)
	}
}

func TestHandleMovement(t *testing.T) {
	tests := []struct {
		dir  Direction
		want math.Vec3
	}{
		{Forward, math.Vec3{X: 0, Y: 0, Z: -2.5}},
		{Backward, math.Vec3{X: 0, Y: 0, Z: 2.5}},
		{Left, math.Vec3{X: -2.5, Y: 0, Z: 0}},
		{Right, math.Vec3{X: 2.5, Y: 0, Z: 0}},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Position = math.Vec3{}
		c := New(cfg)
		c.HandleMovement(tt.dir, 1)
		if !c.Position().ApproxEqual(tt.want, 1e-5) {
			t.Errorf("direction %d: got %v, want %v", tt.dir, c.Position(), tt.want)
		}
	}
}

func TestPitchClamp(t *testing.T) {
	c := New(DefaultConfig())
	c.HandleLook(0, 10000)
	if c.Pitch != 89 {
		t.Errorf("pitch: got %f, want 89", c.Pitch)
	}
	c.HandleLook(0, -20000)
	if c.Pitch != -89 {
		t.Errorf("pitch: got %f, want -89", c.Pitch)
	}
}

func TestZoomClamp(t *testing.T) {
	c := New(DefaultConfig())
	c.HandleZoom(10)
	if c.Zoom != 35 {
		t.Errorf("zoom: got %f, want 35", c.Zoom)
	}
	c.HandleZoom(100)
	if c.Zoom != 1 {
		t.Errorf("zoom: got %f, want 1", c.Zoom)
	}
	c.HandleZoom(-100)
	if c.Zoom != 45 {
		t.Errorf("zoom: got %f, want 45", c.Zoom)
	}
}

func TestViewMatrixMovesEyeToOrigin(t *testing.T) {
	c := New(DefaultConfig())
	got := c.ViewMatrix().TransformVec3(c.Position())
	if !got.ApproxEqual(math.Vec3{}, 1e-5) {
		t.Errorf("eye in view space: got %v, want origin", got)
	}
}
