// Package camera provides the free-flying camera used to look at the scene.
package camera

import (
	gomath "math"

	"github.com/Faultbox/tramway/pkg/math"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Config holds the camera's starting state and tuning.
type Config struct {
	Position    math.Vec3
	Yaw         float32 // degrees
	Pitch       float32 // degrees
	Speed       float32 // world units per second
	Sensitivity float32 // degrees per pixel of mouse motion
	Zoom        float32 // vertical field of view, degrees
	MinZoom     float32
	MaxZoom     float32
	Near        float32
	Far         float32
}

// DefaultConfig returns the camera settings of the tram scene.
func DefaultConfig() Config {
	return Config{
		Position:    math.Vec3{X: -1.2, Y: 0, Z: -0.8},
		Yaw:         -90,
		Pitch:       0,
		Speed:       2.5,
		Sensitivity: 0.1,
		Zoom:        45,
		MinZoom:     1,
		MaxZoom:     45,
		Near:        0.1,
		Far:         100,
	}
}

// FlyCamera moves freely with yaw/pitch look and a zoomable field of view.
type FlyCamera struct {
	cfg Config

	position math.Vec3
	front    math.Vec3
	right    math.Vec3
	up       math.Vec3
	worldUp  math.Vec3

	// Orientation in degrees
	Yaw   float32
	Pitch float32

	// Zoom is the vertical field of view in degrees.
	Zoom float32
}

// New creates a camera from cfg.
func New(cfg Config) *FlyCamera {
	c := &FlyCamera{
		cfg:      cfg,
		position: cfg.Position,
		worldUp:  math.Up,
		Yaw:      cfg.Yaw,
		Pitch:    cfg.Pitch,
		Zoom:     cfg.Zoom,
	}
	c.updateVectors()
	return c
}

// Position returns the camera position in world space.
func (c *FlyCamera) Position() math.Vec3 {
	return c.position
}

// SetPosition moves the camera without changing its orientation.
func (c *FlyCamera) SetPosition(p math.Vec3) {
	c.position = p
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() math.Vec3 {
	return c.front
}

// ViewMatrix returns the view matrix for the current position and orientation.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.position.Add(c.front), c.up)
}

// Projection returns the perspective projection for the given aspect ratio.
func (c *FlyCamera) Projection(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(c.Zoom), aspect, c.cfg.Near, c.cfg.Far)
}

// HandleMovement moves the camera along its axes. dt is in seconds.
func (c *FlyCamera) HandleMovement(dir Direction, dt float32) {
	velocity := c.cfg.Speed * dt
	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Scale(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Scale(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Scale(velocity))
	case Right:
		c.position = c.position.Add(c.right.Scale(velocity))
	}
}

// HandleLook turns the camera by a mouse delta in pixels.
// Positive deltaY looks up.
func (c *FlyCamera) HandleLook(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.cfg.Sensitivity
	c.Pitch += deltaY * c.cfg.Sensitivity

	// Clamp pitch so the view never flips over the poles
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}

	c.updateVectors()
}

// HandleZoom narrows or widens the field of view from a scroll delta.
func (c *FlyCamera) HandleZoom(delta float32) {
	c.Zoom -= delta
	if c.Zoom < c.cfg.MinZoom {
		c.Zoom = c.cfg.MinZoom
	}
	if c.Zoom > c.cfg.MaxZoom {
		c.Zoom = c.cfg.MaxZoom
	}
}

func (c *FlyCamera) updateVectors() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))

	c.front = math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
