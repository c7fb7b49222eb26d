package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/engine/math"
	"github.com/spaghettifunk/kestrel/engine/platform"
	"github.com/spaghettifunk/kestrel/engine/renderer/components"
)

type WindowConfig struct {
	// Window starting position, if applicable.
	X int `toml:"x"`
	Y int `toml:"y"`
	// Window starting size, if applicable.
	Width  int  `toml:"width"`
	Height int  `toml:"height"`
	VSync  bool `toml:"vsync"`
	// Background is the RGBA clear colour.
	Background [4]float32 `toml:"background"`
}

type CameraConfig struct {
	FieldOfViewDegrees float32 `toml:"fov_degrees"`
	Near               float32 `toml:"near"`
	Far                float32 `toml:"far"`
	// Distance of the default camera from the origin along +Z.
	Distance float32 `toml:"distance"`
}

type InputConfig struct {
	// Bindings maps action names (up, down, left, right, action, cancel,
	// menu) to key names.
	Bindings map[string]string `toml:"bindings"`
}

type ApplicationConfig struct {
	// The application name used in windowing, if applicable.
	Name        string       `toml:"name"`
	LogLevel    string       `toml:"log_level"`
	AssetsDir   string       `toml:"assets_dir"`
	WatchAssets bool         `toml:"watch_assets"`
	Window      WindowConfig `toml:"window"`
	Camera      CameraConfig `toml:"camera"`
	Input       InputConfig  `toml:"input"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	bindings := make(map[string]string, len(core.DefaultBindings))
	for action, key := range core.DefaultBindings {
		bindings[action.String()] = key.String()
	}
	return &ApplicationConfig{
		Name:        "Kestrel Sandbox",
		LogLevel:    "debug",
		AssetsDir:   "assets",
		WatchAssets: true,
		Window: WindowConfig{
			X:          100,
			Y:          100,
			Width:      960,
			Height:     960,
			Background: [4]float32{0.2, 0.3, 0.3, 1.0},
		},
		Camera: CameraConfig{
			FieldOfViewDegrees: 45,
			Near:               0.1,
			Far:                100,
			Distance:           components.DefaultCameraDistance,
		},
		Input: InputConfig{Bindings: bindings},
	}
}

// LoadApplicationConfig reads a TOML file on top of the defaults. Unknown
// keys are rejected.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	config := DefaultApplicationConfig()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(config); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func (c *ApplicationConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d: %w", c.Window.Width, c.Window.Height, core.ErrOutOfRange))
	}
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if _, err := c.KeyBindings(); err != nil {
		errs = append(errs, err)
	}
	if _, err := math.NewMat4PerspectiveFieldOfView(math.DegToRad(c.Camera.FieldOfViewDegrees), 1, c.Camera.Near, c.Camera.Far); err != nil {
		errs = append(errs, fmt.Errorf("camera: %w", err))
	}
	return errors.Join(errs...)
}

func (c *ApplicationConfig) Level() core.LogLevel {
	level, err := core.ParseLogLevel(c.LogLevel)
	if err != nil {
		return core.InfoLevel
	}
	return level
}

// KeyBindings resolves the configured action and key names.
func (c *ApplicationConfig) KeyBindings() (map[core.Action]core.KeyCode, error) {
	out := make(map[core.Action]core.KeyCode, len(c.Input.Bindings))
	var errs []error
	for actionName, keyName := range c.Input.Bindings {
		action, err := core.ParseAction(actionName)
		if err != nil {
			errs = append(errs, fmt.Errorf("input.bindings: %w", err))
			continue
		}
		key, err := core.ParseKeyCode(keyName)
		if err != nil {
			errs = append(errs, fmt.Errorf("input.bindings.%s: %w", actionName, err))
			continue
		}
		out[action] = key
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func (c *ApplicationConfig) PerspectiveConfig() components.PerspectiveConfig {
	config := components.DefaultPerspectiveConfig(float32(c.Window.Width), float32(c.Window.Height))
	config.FieldOfView = math.DegToRad(c.Camera.FieldOfViewDegrees)
	config.Near = c.Camera.Near
	config.Far = c.Camera.Far
	return config
}

func (c *ApplicationConfig) WindowConfig() platform.WindowConfig {
	return platform.WindowConfig{
		Title:  c.Name,
		X:      c.Window.X,
		Y:      c.Window.Y,
		Width:  c.Window.Width,
		Height: c.Window.Height,
		VSync:  c.Window.VSync,
	}
}

func (c *ApplicationConfig) ClearColour() math.Vec4 {
	bg := c.Window.Background
	return math.NewVec4(bg[0], bg[1], bg[2], bg[3])
}
