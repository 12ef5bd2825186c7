// Package tram animates the tram: its door pairs and its travel along the track.
package tram

import (
	"go.uber.org/zap"

	"github.com/Faultbox/tramway/internal/engine/scene"
	"github.com/Faultbox/tramway/internal/logger"
	"github.com/Faultbox/tramway/pkg/math"
)

// LeafConfig describes one door leaf: where it rests when closed and how far
// it moves and turns per step.
type LeafConfig struct {
	Base          math.Vec3 `yaml:"base"`
	PositionDelta math.Vec3 `yaml:"position_delta"`
	AngleDelta    float32   `yaml:"angle_delta"` // radians per step, around the up axis
}

// PairConfig describes a door pair sharing one step counter.
type PairConfig struct {
	Name      string        `yaml:"name"`
	StepLimit int           `yaml:"step_limit"`
	Scale     math.Vec3     `yaml:"scale"`
	Leaves    [2]LeafConfig `yaml:"leaves"`
}

// DefaultPairs returns the four door pairs of the tram model, ordered so
// their leaves are the tram's doors 1-2, 3-4, 5-6 and 7-8.
func DefaultPairs() []PairConfig {
	narrow := math.Vec3{X: 0.05, Y: 0.23, Z: 0.1}
	wide := math.Vec3{X: 0.1, Y: 0.23, Z: 0.1}

	return []PairConfig{
		{
			Name:      "front-outer",
			StepLimit: 15,
			Scale:     narrow,
			Leaves: [2]LeafConfig{
				{Base: math.Vec3{X: 31, Y: 2, Z: -20}, PositionDelta: math.Vec3{X: 0.2, Z: 0.33}, AngleDelta: 0.1},
				{Base: math.Vec3{X: 29, Y: 2, Z: -20}, PositionDelta: math.Vec3{X: -0.33, Z: 0.33}, AngleDelta: 0.05},
			},
		},
		{
			Name:      "middle",
			StepLimit: 5,
			Scale:     wide,
			Leaves: [2]LeafConfig{
				{Base: math.Vec3{X: -2, Y: 2, Z: -20}, PositionDelta: math.Vec3{X: -0.6, Z: 1}, AngleDelta: 0.3},
				{Base: math.Vec3{X: -7, Y: 2, Z: -20}, PositionDelta: math.Vec3{X: 0.6, Z: 1}, AngleDelta: -0.3},
			},
		},
		{
			Name:      "rear",
			StepLimit: 10,
			Scale:     wide,
			Leaves: [2]LeafConfig{
				{Base: math.Vec3{X: -33, Y: 2, Z: -20}, PositionDelta: math.Vec3{X: 0.05, Z: 0.5}, AngleDelta: 0.15},
				{Base: math.Vec3{X: -38, Y: 2, Z: -20}, PositionDelta: math.Vec3{X: -0.05, Z: 0.5}, AngleDelta: -0.15},
			},
		},
		{
			Name:      "front-inner",
			StepLimit: 15,
			Scale:     narrow,
			Leaves: [2]LeafConfig{
				{Base: math.Vec3{X: 27, Y: 2, Z: -20}, PositionDelta: math.Vec3{X: 0.33, Z: 0.33}, AngleDelta: -0.05},
				{Base: math.Vec3{X: 25, Y: 2, Z: -20}, PositionDelta: math.Vec3{X: -0.2, Z: 0.33}, AngleDelta: -0.1},
			},
		},
	}
}

// Leaf is the current state of one door leaf.
type Leaf struct {
	Position math.Vec3
	Angle    float32
}

// DoorAnimator steps a door pair between closed (step 0) and fully open
// (step == StepLimit). Leaf poses are derived from the step as
// base + delta*step, so closing after opening lands exactly on the start pose.
type DoorAnimator struct {
	cfg    PairConfig
	step   int
	leaves [2]Leaf
	nodes  [2]*scene.Node
	log    *zap.Logger
}

// NewDoorAnimator creates a closed door pair. nodes receive the leaf
// transforms; either may be nil.
func NewDoorAnimator(cfg PairConfig, nodes [2]*scene.Node) *DoorAnimator {
	d := &DoorAnimator{
		cfg:   cfg,
		nodes: nodes,
		log:   logger.Named("doors").With(zap.String("pair", cfg.Name)),
	}
	d.pose()
	d.Apply()
	return d
}

// Name returns the pair's name.
func (d *DoorAnimator) Name() string {
	return d.cfg.Name
}

// Step returns the step counter in [0, StepLimit].
func (d *DoorAnimator) Step() int {
	return d.step
}

// StepLimit returns the fully-open step.
func (d *DoorAnimator) StepLimit() int {
	return d.cfg.StepLimit
}

// IsOpen reports whether the pair is fully open.
func (d *DoorAnimator) IsOpen() bool {
	return d.step == d.cfg.StepLimit
}

// IsClosed reports whether the pair is fully closed.
func (d *DoorAnimator) IsClosed() bool {
	return d.step == 0
}

// Leaves returns both leaf poses.
func (d *DoorAnimator) Leaves() [2]Leaf {
	return d.leaves
}

// TickOpen advances one step toward open. It reports whether anything changed;
// at the limit it is a no-op.
func (d *DoorAnimator) TickOpen() bool {
	if d.step >= d.cfg.StepLimit {
		return false
	}
	d.step++
	d.changed()
	return true
}

// TickClose moves one step toward closed. At zero it is a no-op.
func (d *DoorAnimator) TickClose() bool {
	if d.step <= 0 {
		return false
	}
	d.step--
	d.changed()
	return true
}

// Update applies one input tick. Open wins ties: when both are held only
// TickOpen runs.
func (d *DoorAnimator) Update(opening, closing bool) bool {
	if opening {
		return d.TickOpen()
	}
	if closing {
		return d.TickClose()
	}
	return false
}

// LocalTransform returns translate(position) * rotate(angle, up) * scale for leaf i.
func (d *DoorAnimator) LocalTransform(i int) math.Mat4 {
	l := d.leaves[i]
	return math.TRS(l.Position, l.Angle, math.Up, d.cfg.Scale)
}

// Apply pushes both leaf transforms to their nodes.
func (d *DoorAnimator) Apply() {
	for i, n := range d.nodes {
		if n != nil {
			n.SetLocal(d.LocalTransform(i))
		}
	}
}

func (d *DoorAnimator) changed() {
	d.pose()
	d.Apply()
	d.log.Debug("door step",
		zap.Int("step", d.step),
		zap.Int("limit", d.cfg.StepLimit),
	)
}

func (d *DoorAnimator) pose() {
	s := float32(d.step)
	for i, lc := range d.cfg.Leaves {
		d.leaves[i] = Leaf{
			Position: lc.Base.Add(lc.PositionDelta.Scale(s)),
			Angle:    lc.AngleDelta * s,
		}
	}
}
