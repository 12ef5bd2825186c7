package scene

import "github.com/Faultbox/tramway/pkg/math"

// Backend issues draw calls for the scene graph.
// Implementations are invoked synchronously from the frame loop.
type Backend interface {
	// Render draws d with the given world transform.
	Render(world math.Mat4, d Drawable)

	// RenderInstanced draws d once per offset, each offset added in model space.
	RenderInstanced(world math.Mat4, d Drawable, offsets []math.Vec3)

	// RenderSkybox draws the cubemap around the camera. view must have its
	// translation removed.
	RenderSkybox(view math.Mat4, cubemap uint32)
}
