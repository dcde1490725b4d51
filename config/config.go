// Package config loads the raycaster settings from a YAML file and lets
// command line flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	// Graphics selects the GPU backend: auto, opengl, directx or metal.
	Graphics string `yaml:"graphics"`
}

type Render struct {
	// Renderer is "shader" (GPU ray marching) or "software".
	Renderer string `yaml:"renderer"`
	// PixelScale renders at 1/PixelScale of the window resolution and
	// upscales with nearest filtering.
	PixelScale int     `yaml:"pixel_scale"`
	FOV        float64 `yaml:"fov_degrees"`
}

type Textures struct {
	Sheet     string `yaml:"sheet"`
	Overlay   string `yaml:"overlay"`
	Sky       string `yaml:"sky"`
	SheetCols int    `yaml:"sheet_cols"`
	SheetRows int    `yaml:"sheet_rows"`
}

type Player struct {
	MoveSpeed float64 `yaml:"move_speed"`
	MouseTurn float64 `yaml:"mouse_turn"`
	KeyTurn   float64 `yaml:"key_turn"`
	Radius    float64 `yaml:"radius"`
}

type Debug struct {
	UI         bool `yaml:"ui"`
	Log        bool `yaml:"log"`
	FPSWindow  int  `yaml:"fps_window"`
	FPSHistory int  `yaml:"fps_history"`
}

type Config struct {
	Window   Window   `yaml:"window"`
	Render   Render   `yaml:"render"`
	Level    string   `yaml:"level"`
	Textures Textures `yaml:"textures"`
	Player   Player   `yaml:"player"`
	Debug    Debug    `yaml:"debug"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:    1920,
			Height:   1080,
			Title:    "Raycaster",
			Graphics: "auto",
		},
		Render: Render{
			Renderer:   "shader",
			PixelScale: 1,
			FOV:        60,
		},
		Textures: Textures{
			Sheet:     "images/sheet.png",
			Overlay:   "images/overlay.png",
			Sky:       "images/sky.png",
			SheetCols: 4,
			SheetRows: 2,
		},
		Player: Player{
			MoveSpeed: 2.5,
			MouseTurn: 0.001,
			KeyTurn:   2.0,
			Radius:    0.2,
		},
		Debug: Debug{
			UI:         true,
			FPSWindow:  120,
			FPSHistory: 200,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// FOVRadians returns the horizontal field of view in radians.
func (c Config) FOVRadians() float64 {
	return c.Render.FOV * math.Pi / 180
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Render.Renderer != "shader" && c.Render.Renderer != "software":
		return fmt.Errorf("%w: renderer %q", ErrInvalid, c.Render.Renderer)
	case c.Render.PixelScale < 1:
		return fmt.Errorf("%w: pixel_scale %d", ErrInvalid, c.Render.PixelScale)
	case c.Render.FOV <= 0 || c.Render.FOV >= 180:
		return fmt.Errorf("%w: fov_degrees %.1f", ErrInvalid, c.Render.FOV)
	case c.Textures.SheetCols < 1 || c.Textures.SheetRows < 1:
		return fmt.Errorf("%w: sheet grid %dx%d", ErrInvalid, c.Textures.SheetCols, c.Textures.SheetRows)
	case c.Player.MoveSpeed < 0 || c.Player.Radius < 0 || c.Player.Radius >= 0.5:
		return fmt.Errorf("%w: player speed %.2f radius %.2f", ErrInvalid, c.Player.MoveSpeed, c.Player.Radius)
	case c.Debug.FPSWindow < 1 || c.Debug.FPSHistory < 1:
		return fmt.Errorf("%w: fps window %d history %d", ErrInvalid, c.Debug.FPSWindow, c.Debug.FPSHistory)
	}

	switch c.Window.Graphics {
	case "auto", "opengl", "directx", "metal":
	default:
		return fmt.Errorf("%w: graphics %q", ErrInvalid, c.Window.Graphics)
	}
	return nil
}

// BindFlags registers command line overrides for the most used settings.
// Call it after Load so flags win over the file.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Window.Width, "width", c.Window.Width, "window width in pixels")
	fs.IntVar(&c.Window.Height, "height", c.Window.Height, "window height in pixels")
	fs.StringVar(&c.Window.Title, "title", c.Window.Title, "window title")
	fs.BoolVar(&c.Window.Fullscreen, "fullscreen", c.Window.Fullscreen, "start fullscreen")
	fs.BoolVar(&c.Window.VSync, "vsync", c.Window.VSync, "wait for vertical sync")
	fs.StringVar(&c.Window.Graphics, "graphics", c.Window.Graphics, "graphics library: auto, opengl, directx, metal")
	fs.StringVar(&c.Render.Renderer, "renderer", c.Render.Renderer, "renderer: shader or software")
	fs.IntVar(&c.Render.PixelScale, "pixel-scale", c.Render.PixelScale, "render at 1/N resolution")
	fs.Float64Var(&c.Render.FOV, "fov", c.Render.FOV, "horizontal field of view in degrees")
	fs.StringVar(&c.Level, "level", c.Level, "level file, pack.txtar[:name] or builtin:name (empty for the built-in level)")
	fs.StringVar(&c.Textures.Sheet, "sheet", c.Textures.Sheet, "wall sheet image")
	fs.StringVar(&c.Textures.Overlay, "overlay", c.Textures.Overlay, "overlay image")
	fs.StringVar(&c.Textures.Sky, "sky", c.Textures.Sky, "sky image")
	fs.IntVar(&c.Textures.SheetCols, "sheet-cols", c.Textures.SheetCols, "wall sheet columns")
	fs.IntVar(&c.Textures.SheetRows, "sheet-rows", c.Textures.SheetRows, "wall sheet rows")
	fs.BoolVar(&c.Debug.UI, "debug-ui", c.Debug.UI, "show the debug window")
	fs.BoolVar(&c.Debug.Log, "debug", c.Debug.Log, "enable debug logging")
}

// FromArgs builds the settings for a command: defaults, then the YAML file
// named by -config, then every other flag on the command line.
func FromArgs(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()
	fs := newFlagSet(name, output, &cfg)
	configPath := fs.Lookup("config")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if path := configPath.Value.String(); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return cfg, err
		}
		// Parse again on top of the file so explicit flags still win.
		cfg = loaded
		if err := newFlagSet(name, output, &cfg).Parse(args); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func newFlagSet(name string, output io.Writer, cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.String("config", "", "YAML settings file")
	cfg.BindFlags(fs)
	return fs
}
