// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/tramway/internal/tram"
	"github.com/Faultbox/tramway/pkg/math"
)

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig    `yaml:"graphics"`
	Camera    CameraConfig      `yaml:"camera"`
	Tram      tram.Config       `yaml:"tram"`
	Doors     []tram.PairConfig `yaml:"doors"`
	Buildings BuildingsConfig   `yaml:"buildings"`
	Assets    AssetsConfig      `yaml:"assets"`
	Keys      KeysConfig        `yaml:"keys"`
	Scene     SceneConfig       `yaml:"scene"`
	Logging   LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	Fullscreen    bool       `yaml:"fullscreen"`
	VSync         bool       `yaml:"vsync"`
	FPSLimit      int        `yaml:"fps_limit"`
	ClearColor    [3]float32 `yaml:"clear_color"`
	CaptureMouse  bool       `yaml:"capture_mouse"`
	ScreenshotDir string     `yaml:"screenshot_dir"`
}

// CameraConfig holds the free camera's start state and tuning.
type CameraConfig struct {
	Position    math.Vec3 `yaml:"position"`
	Yaw         float32   `yaml:"yaw"`
	Pitch       float32   `yaml:"pitch"`
	Speed       float32   `yaml:"speed"`
	Sensitivity float32   `yaml:"sensitivity"`
	Zoom        float32   `yaml:"zoom"`
	MinZoom     float32   `yaml:"min_zoom"`
	MaxZoom     float32   `yaml:"max_zoom"`
	Near        float32   `yaml:"near"`
	Far         float32   `yaml:"far"`
}

// BuildingsConfig describes the instanced building grid.
// Columns run over x in [MinX, MaxX) with StepX, rows over z in [MinZ, MaxZ)
// with StepZ; Offset is added to both coordinates.
type BuildingsConfig struct {
	MinX   int     `yaml:"min_x"`
	MaxX   int     `yaml:"max_x"`
	StepX  int     `yaml:"step_x"`
	MinZ   int     `yaml:"min_z"`
	MaxZ   int     `yaml:"max_z"`
	StepZ  int     `yaml:"step_z"`
	Offset float32 `yaml:"offset"`
}

// AssetsConfig holds model and texture paths, relative to Root.
type AssetsConfig struct {
	Root        string   `yaml:"root"`
	TramModel   string   `yaml:"tram_model"`
	DoorModel   string   `yaml:"door_model"`
	SkyboxFaces []string `yaml:"skybox_faces"` // +X, -X, +Y, -Y, +Z, -Z
}

// KeysConfig maps actions to SDL key names (as accepted by SDL_GetScancodeFromName).
type KeysConfig struct {
	Forward      string `yaml:"forward"`
	Backward     string `yaml:"backward"`
	Open         string `yaml:"open"`
	Close        string `yaml:"close"`
	ToggleFollow string `yaml:"toggle_follow"`
	Snap         string `yaml:"snap"`
	Screenshot   string `yaml:"screenshot"`
	Quit         string `yaml:"quit"`
	CameraFwd    string `yaml:"camera_forward"`
	CameraBack   string `yaml:"camera_backward"`
	CameraLeft   string `yaml:"camera_left"`
	CameraRight  string `yaml:"camera_right"`
}

// SceneConfig holds animation timing.
type SceneConfig struct {
	// TickRate is the number of door/tram ticks per second.
	// 0 ticks once per rendered frame.
	TickRate int `yaml:"tick_rate"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config reproducing the tram scene.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			FPSLimit:      0,
			ClearColor:    [3]float32{0.1, 0.1, 0.1},
			CaptureMouse:  true,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
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
		},
		Tram:  tram.DefaultConfig(),
		Doors: tram.DefaultPairs(),
		Buildings: BuildingsConfig{
			MinX: -10, MaxX: 10, StepX: 2,
			MinZ: -3, MaxZ: 2, StepZ: 3,
			Offset: 1,
		},
		Assets: AssetsConfig{
			Root:      "res",
			TramModel: "models/tramwaj.obj",
			DoorModel: "models/drzwi.obj",
			SkyboxFaces: []string{
				"textures/land_bk.jpg",
				"textures/land_ft.jpg",
				"textures/land_up.jpg",
				"textures/land_dn.jpg",
				"textures/land_lf.jpg",
				"textures/land_rt.jpg",
			},
		},
		Keys: KeysConfig{
			Forward:      "Up",
			Backward:     "Down",
			Open:         "Left",
			Close:        "Right",
			ToggleFollow: "E",
			Snap:         "Space",
			Screenshot:   "F12",
			Quit:         "Escape",
			CameraFwd:    "W",
			CameraBack:   "S",
			CameraLeft:   "A",
			CameraRight:  "D",
		},
		Scene: SceneConfig{
			TickRate: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ConfigDir returns the per-user config directory of the viewer.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "tramway")
}

// Validate checks values the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("graphics: negative fps_limit %d", c.Graphics.FPSLimit))
	}
	if c.Scene.TickRate < 0 {
		errs = append(errs, fmt.Errorf("scene: negative tick_rate %d", c.Scene.TickRate))
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MinZoom > c.Camera.MaxZoom {
		errs = append(errs, fmt.Errorf("camera: invalid zoom range [%v, %v]", c.Camera.MinZoom, c.Camera.MaxZoom))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera: invalid clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Tram.CameraDivisor == 0 {
		errs = append(errs, errors.New("tram: camera_divisor must not be zero"))
	}
	for i, d := range c.Doors {
		if d.StepLimit < 0 {
			errs = append(errs, fmt.Errorf("doors[%d] %q: negative step_limit %d", i, d.Name, d.StepLimit))
		}
	}
	if c.Buildings.StepX <= 0 || c.Buildings.StepZ <= 0 {
		errs = append(errs, fmt.Errorf("buildings: steps must be positive (x=%d z=%d)", c.Buildings.StepX, c.Buildings.StepZ))
	}
	if n := len(c.Assets.SkyboxFaces); n != 6 {
		errs = append(errs, fmt.Errorf("assets: skybox needs 6 faces, got %d", n))
	}

	return errors.Join(errs...)
}
