// Package world assembles the tram scene graph and advances its animation.
package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/tramway/internal/config"
	"github.com/Faultbox/tramway/internal/engine/camera"
	"github.com/Faultbox/tramway/internal/engine/scene"
	"github.com/Faultbox/tramway/internal/logger"
	"github.com/Faultbox/tramway/internal/tram"
	"github.com/Faultbox/tramway/pkg/math"
)

// Ground plane placement.
var (
	GroundOffset = math.Vec3{X: 1, Y: -0.5, Z: 1}
	GroundScale  = math.Vec3{X: 60, Y: 0, Z: 60}
)

// Drawables are the renderable resources the scene refers to. Any of them
// may be nil when its asset failed to load; the node is then kept but draws
// nothing.
type Drawables struct {
	Tram      scene.Drawable
	Door      scene.Drawable
	Ground    scene.Drawable
	Buildings scene.Drawable
}

// Controls is one frame of user intent.
type Controls struct {
	// Held controls, applied once per animation tick.
	TramForward  bool
	TramBackward bool
	OpenDoors    bool
	CloseDoors   bool

	// One-shot controls, applied once per frame.
	ToggleFollow bool
	Snap         bool

	// Camera controls, scaled by frame time.
	CameraForward  bool
	CameraBackward bool
	CameraLeft     bool
	CameraRight    bool
	LookX, LookY   float32
	Zoom           float32
}

// World owns the camera, the tram controllers and the scene graph.
type World struct {
	Camera *camera.FlyCamera
	Tram   *tram.Controller
	Doors  []*tram.DoorAnimator

	Root      *scene.Node
	TramNode  *scene.Node
	Ground    *scene.Node
	Buildings *scene.Node

	// Cubemap is the skybox texture, 0 when none is loaded.
	Cubemap uint32

	log *zap.Logger
}

// New builds the scene: the tram body with every door leaf attached as a
// child, the ground plane and the instanced building grid.
func New(cfg *config.Config, d Drawables) *World {
	w := &World{
		Camera: camera.New(CameraConfig(cfg.Camera)),
		Tram:   tram.NewController(cfg.Tram),
		log:    logger.Named("world"),
	}

	w.Root = scene.NewNode("root", math.Identity(), nil)

	w.TramNode = scene.NewNode("tram", w.Tram.LocalTransform(), d.Tram)
	w.Root.Attach(w.TramNode)

	for _, pc := range cfg.Doors {
		var nodes [2]*scene.Node
		for i := range nodes {
			nodes[i] = scene.NewNode(fmt.Sprintf("%s/%d", pc.Name, i), math.Identity(), d.Door)
			w.TramNode.Attach(nodes[i])
		}
		w.Doors = append(w.Doors, tram.NewDoorAnimator(pc, nodes))
	}

	w.Ground = scene.NewNode("ground", GroundTransform(), d.Ground)
	w.Root.Attach(w.Ground)

	w.Buildings = scene.NewNode("buildings", math.Identity(), d.Buildings)
	w.Buildings.SetInstances(BuildingOffsets(cfg.Buildings))
	w.Root.Attach(w.Buildings)

	w.Root.Walk(math.Identity(), func(n *scene.Node, world math.Mat4) bool {
		w.log.Debug("scene node",
			zap.String("path", n.Path()),
			zap.Bool("drawable", n.Drawable() != nil),
			zap.Any("origin", world.Origin()),
		)
		return true
	})
	w.log.Debug("scene assembled",
		zap.Int("nodes", w.Root.Count()),
		zap.Int("door_pairs", len(w.Doors)),
		zap.Int("buildings", len(w.Buildings.Instances())),
	)
	return w
}

// CameraConfig converts the camera section of the config.
func CameraConfig(c config.CameraConfig) camera.Config {
	return camera.Config{
		Position:    c.Position,
		Yaw:         c.Yaw,
		Pitch:       c.Pitch,
		Speed:       c.Speed,
		Sensitivity: c.Sensitivity,
		Zoom:        c.Zoom,
		MinZoom:     c.MinZoom,
		MaxZoom:     c.MaxZoom,
		Near:        c.Near,
		Far:         c.Far,
	}
}

// GroundTransform returns translate(GroundOffset) * scale(GroundScale).
func GroundTransform() math.Mat4 {
	return math.Identity().Translate(GroundOffset).ScaleBy(GroundScale)
}

// BuildingOffsets lays out the building grid row by row (z outer, x inner).
func BuildingOffsets(b config.BuildingsConfig) []math.Vec3 {
	if b.StepX <= 0 || b.StepZ <= 0 {
		return nil
	}

	var out []math.Vec3
	for z := b.MinZ; z < b.MaxZ; z += b.StepZ {
		for x := b.MinX; x < b.MaxX; x += b.StepX {
			out = append(out, math.Vec3{
				X: float32(x) + b.Offset,
				Y: 0,
				Z: float32(z) + b.Offset,
			})
		}
	}
	return out
}

// Frame applies the per-frame controls: camera motion scaled by dt (seconds),
// follow toggling and camera snapping.
func (w *World) Frame(c Controls, dt float32) {
	if c.CameraForward {
		w.Camera.HandleMovement(camera.Forward, dt)
	}
	if c.CameraBackward {
		w.Camera.HandleMovement(camera.Backward, dt)
	}
	if c.CameraLeft {
		w.Camera.HandleMovement(camera.Left, dt)
	}
	if c.CameraRight {
		w.Camera.HandleMovement(camera.Right, dt)
	}
	if c.LookX != 0 || c.LookY != 0 {
		w.Camera.HandleLook(c.LookX, c.LookY)
	}
	if c.Zoom != 0 {
		w.Camera.HandleZoom(c.Zoom)
	}

	if c.ToggleFollow {
		w.Tram.ToggleFollow()
	}
	if c.Snap {
		w.Tram.Snap(w.Camera)
	}
}

// Tick applies one animation step: tram travel and door motion. The tram
// body transform is rebuilt afterwards; door nodes are updated by their
// animators as they change.
func (w *World) Tick(c Controls) {
	// Forward wins when both are held.
	if c.TramForward {
		w.Tram.MoveForward(w.Camera)
	} else if c.TramBackward {
		w.Tram.MoveBackward(w.Camera)
	}

	for _, d := range w.Doors {
		d.Update(c.OpenDoors, c.CloseDoors)
	}

	w.TramNode.SetLocal(w.Tram.LocalTransform())
}

// CameraDistance returns the distance from the camera to the tram body origin.
func (w *World) CameraDistance() float32 {
	return w.TramNode.World().Origin().Distance(w.Camera.Position())
}

// Draw submits the scene graph and then the skybox, which must come last.
func (w *World) Draw(b scene.Backend) {
	w.Root.Draw(math.Identity(), b)
	b.RenderSkybox(w.Camera.ViewMatrix().WithoutTranslation(), w.Cubemap)
}
