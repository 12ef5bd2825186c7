package tram

import (
	"go.uber.org/zap"

	"github.com/Faultbox/tramway/internal/logger"
	"github.com/Faultbox/tramway/pkg/math"
)

// Camera is the part of the scene camera the tram may move.
type Camera interface {
	Position() math.Vec3
	SetPosition(p math.Vec3)
}

// Config holds the tram body placement and camera-follow settings.
type Config struct {
	Start          math.Vec3 `yaml:"start"`
	VerticalOffset math.Vec3 `yaml:"vertical_offset"`
	BodyScale      float32   `yaml:"body_scale"`
	Axis           math.Vec3 `yaml:"axis"`
	Step           float32   `yaml:"step"`
	CameraOffset   math.Vec3 `yaml:"camera_offset"`
	CameraDivisor  float32   `yaml:"camera_divisor"`
	Follow         bool      `yaml:"follow"`
}

// DefaultConfig returns the settings of the tram scene.
func DefaultConfig() Config {
	return Config{
		Start:          math.Vec3{X: 1, Y: 1, Z: 1},
		VerticalOffset: math.Vec3{X: 0, Y: -0.5, Z: 0},
		BodyScale:      0.01,
		Axis:           math.Vec3{X: 1, Y: 0, Z: 0},
		Step:           1,
		CameraOffset:   math.Vec3{X: -1.2, Y: 0, Z: -0.8},
		CameraDivisor:  100,
		Follow:         true,
	}
}

// Controller owns the tram's position along the track and the follow flag.
type Controller struct {
	cfg      Config
	position math.Vec3
	follow   bool
	log      *zap.Logger
}

// NewController creates a controller at cfg.Start.
func NewController(cfg Config) *Controller {
	return &Controller{
		cfg:      cfg,
		position: cfg.Start,
		follow:   cfg.Follow,
		log:      logger.Named("tram"),
	}
}

// Position returns the tram position in body units (before body scaling).
func (c *Controller) Position() math.Vec3 {
	return c.position
}

// Following reports whether the camera follows the tram.
func (c *Controller) Following() bool {
	return c.follow
}

// MoveForward moves the tram one step along the axis.
// With follow on the camera is synced to the position before the move.
func (c *Controller) MoveForward(cam Camera) {
	c.move(cam, c.cfg.Step)
}

// MoveBackward moves the tram one step against the axis.
func (c *Controller) MoveBackward(cam Camera) {
	c.move(cam, -c.cfg.Step)
}

func (c *Controller) move(cam Camera, step float32) {
	if c.follow && cam != nil {
		c.SyncCamera(cam)
	}
	c.position = c.position.Add(c.cfg.Axis.Scale(step))
	c.log.Debug("tram moved", zap.Float32("x", c.position.X), zap.Float32("z", c.position.Z))
}

// ToggleFollow flips follow mode.
func (c *Controller) ToggleFollow() {
	c.follow = !c.follow
	c.log.Debug("follow toggled", zap.Bool("follow", c.follow))
}

// CameraTarget returns position / divisor + camera offset.
func (c *Controller) CameraTarget() math.Vec3 {
	return c.position.Div(c.cfg.CameraDivisor).Add(c.cfg.CameraOffset)
}

// SyncCamera moves cam to CameraTarget unless it is already exactly there.
// The comparison is exact; it reports whether the camera was written.
func (c *Controller) SyncCamera(cam Camera) bool {
	target := c.CameraTarget()
	if cam.Position() == target {
		return false
	}
	cam.SetPosition(target)
	return true
}

// Snap moves cam to CameraTarget unconditionally.
func (c *Controller) Snap(cam Camera) {
	cam.SetPosition(c.CameraTarget())
}

// LocalTransform returns translate(verticalOffset) * scale(bodyScale) * translate(position).
// The position is applied in the scaled frame, so the body origin ends up at
// verticalOffset + bodyScale*position. Door nodes are children of the body and
// inherit this transform.
func (c *Controller) LocalTransform() math.Mat4 {
	s := c.cfg.BodyScale
	return math.Identity().
		Translate(c.cfg.VerticalOffset).
		ScaleBy(math.Vec3{X: s, Y: s, Z: s}).
		Translate(c.position)
}
