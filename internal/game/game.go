// Package game implements the viewer's main loop and resource ownership.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/tramway/internal/assets"
	"github.com/Faultbox/tramway/internal/config"
	"github.com/Faultbox/tramway/internal/engine/input"
	"github.com/Faultbox/tramway/internal/engine/renderer"
	"github.com/Faultbox/tramway/internal/engine/screenshot"
	"github.com/Faultbox/tramway/internal/engine/window"
	"github.com/Faultbox/tramway/internal/logger"
	"github.com/Faultbox/tramway/internal/world"
)

// Title is the window title.
const Title = "Tramway"

// Game is the viewer instance. It owns every GPU resource; scene nodes only
// refer to them.
type Game struct {
	config  *config.Config
	running bool
	log     *zap.Logger

	window    *window.Window
	renderer  *renderer.Renderer
	input     *input.Input
	assets    *assets.Manager
	resources *resources

	world   *world.World
	ticker  *world.Ticker
	limiter *FPSLimiter
	capture *screenshot.Capture
}

// New creates the window, GL backend and scene. Backend failures are
// returned; missing or broken assets are logged and the scene runs without
// them.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}

	g.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	bindings, err := input.Resolve(keyNames(cfg.Keys), nil)
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:        Title,
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		Fullscreen:   cfg.Graphics.Fullscreen,
		VSync:        cfg.Graphics.VSync,
		CaptureMouse: cfg.Graphics.CaptureMouse,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.assets = assets.NewManager(cfg.Assets.Root)
	g.resources, err = loadResources(cfg, g.assets, g.renderer)
	if err != nil {
		g.Close()
		return nil, err
	}

	g.input = input.New(bindings)
	g.world = world.New(cfg, g.resources.drawables())
	g.world.Cubemap = g.resources.cubemap
	g.ticker = world.NewTicker(cfg.Scene.TickRate)
	g.limiter = NewFPSLimiter(cfg.Graphics.FPSLimit)
	g.capture = screenshot.New(cfg.Graphics.ScreenshotDir, "tramway")

	g.log.Info("viewer initialized",
		zap.Int("nodes", g.world.Root.Count()),
		zap.Int("tick_rate", cfg.Scene.TickRate),
	)
	return g, nil
}

// Run starts the main loop and returns when the window is closed or the
// quit key is pressed.
func (g *Game) Run() error {
	g.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		act := g.input.Poll()
		if act.Quit {
			g.running = false
			break
		}
		if act.Resized {
			g.renderer.Resize(g.window.DrawableSize())
		}

		// 2. Update scene state
		g.update(act, dt)

		// 3. Render
		g.render()
		if act.Screenshot {
			g.screenshot()
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", float64(dt.Microseconds())/1000)),
				zap.Int("draw_calls", g.renderer.DrawCalls()),
				zap.Float32("camera_distance", g.world.CameraDistance()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		g.limiter.Wait()
	}

	return nil
}

// Close releases every resource in reverse creation order.
func (g *Game) Close() {
	g.log.Info("closing viewer")

	if g.resources != nil {
		g.resources.release()
		g.resources = nil
	}
	if g.assets != nil {
		g.assets.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
		g.renderer = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}

// update applies one frame of input to the world.
func (g *Game) update(act input.Actions, dt time.Duration) {
	c := controlsFrom(act)
	g.world.Frame(c, float32(dt.Seconds()))

	for n := g.ticker.Advance(dt); n > 0; n-- {
		g.world.Tick(c)
	}
}

// render draws the current frame.
func (g *Game) render() {
	cam := g.world.Camera
	g.renderer.BeginFrame(cam.ViewMatrix(), cam.Projection(g.renderer.Aspect()), cam.Position())
	g.world.Draw(g.renderer)
}

func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.capture.Save(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}
