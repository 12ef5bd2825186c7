// Package renderer is the OpenGL backend that draws the scene graph.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tramway/internal/engine/mesh"
	"github.com/Faultbox/tramway/internal/engine/scene"
	"github.com/Faultbox/tramway/internal/engine/shader"
	"github.com/Faultbox/tramway/internal/engine/shaders"
	"github.com/Faultbox/tramway/internal/logger"
	"github.com/Faultbox/tramway/pkg/math"
)

// Uniform names shared by the scene programs.
const (
	ViewUniform       = "view"
	ProjectionUniform = "projection"
	CameraPosUniform  = "cameraPos"
	SkyboxUniform     = "skybox"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
}

// Renderer implements scene.Backend on OpenGL 4.1.
type Renderer struct {
	config Config
	log    *zap.Logger

	// Programs receiving view/projection/cameraPos each frame.
	programs []*shader.Program

	skyProgram *shader.Program
	skyMesh    *mesh.Mesh
	cubemap    uint32

	view       math.Mat4
	projection math.Mat4

	drawCalls int
}

var _ scene.Backend = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		log:        logger.Named("renderer"),
		view:       math.Identity(),
		projection: math.Identity(),
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.skyProgram, err = shader.New("skybox", shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create skybox program: %w", err)
	}
	r.skyProgram.Use()
	r.skyProgram.SetInt(SkyboxUniform, 0)
	r.skyMesh = mesh.New(mesh.SkyboxVertices, mesh.PositionOnly)

	return r, nil
}

// Register adds a program that receives the per-frame camera uniforms and
// samples the skybox on texture unit 0.
func (r *Renderer) Register(p *shader.Program) {
	p.Use()
	p.SetInt(SkyboxUniform, 0)
	r.programs = append(r.programs, p)
}

// SetCubemap sets the environment texture bound for every frame.
func (r *Renderer) SetCubemap(id uint32) {
	r.cubemap = id
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.skyMesh != nil {
		r.skyMesh.Delete()
	}
	if r.skyProgram != nil {
		r.skyProgram.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// BeginFrame clears the framebuffer and uploads the camera to every
// registered program.
func (r *Renderer) BeginFrame(view, projection math.Mat4, cameraPos math.Vec3) {
	r.view = view
	r.projection = projection
	r.drawCalls = 0

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.cubemap != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, r.cubemap)
	}

	for _, p := range r.programs {
		p.Use()
		p.SetMat4(ViewUniform, view)
		p.SetMat4(ProjectionUniform, projection)
		p.SetVec3(CameraPosUniform, cameraPos)
	}
}

// Render draws d with the given world transform.
func (r *Renderer) Render(world math.Mat4, d scene.Drawable) {
	d.Render(world)
	r.drawCalls++
}

// RenderInstanced draws d once per offset, with one instanced draw call
// when d supports it.
func (r *Renderer) RenderInstanced(world math.Mat4, d scene.Drawable, offsets []math.Vec3) {
	if inst, ok := d.(scene.Instancer); ok {
		inst.RenderInstanced(world, offsets)
		r.drawCalls++
		return
	}
	for _, off := range offsets {
		d.Render(world.Translate(off))
		r.drawCalls++
	}
}

// RenderSkybox draws the cubemap behind everything drawn so far.
func (r *Renderer) RenderSkybox(view math.Mat4, cubemap uint32) {
	if cubemap == 0 {
		return
	}

	// Depth test passes at the far plane, where the skybox is drawn.
	gl.DepthFunc(gl.LEQUAL)
	r.skyProgram.Use()
	r.skyProgram.SetMat4(ViewUniform, view)
	r.skyProgram.SetMat4(ProjectionUniform, r.projection)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, cubemap)
	r.skyMesh.Draw()
	gl.DepthFunc(gl.LESS)
	r.drawCalls++
}

// DrawCalls returns the number of draws issued since BeginFrame.
func (r *Renderer) DrawCalls() int {
	return r.drawCalls
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
