package stream

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/reeftx/path"
	"github.com/matt-g-everett/reeftx/raster"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MaxFrameSide is the largest width or height a frame header can carry.
const MaxFrameSide = math.MaxUint16

// XY is a point as written in the config file.
type XY struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Point converts to raster space.
func (p XY) Point() raster.Point {
	return raster.Point{X: p.X, Y: p.Y}
}

// SeaweedConfig places one seaweed blade.
type SeaweedConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Height float64 `yaml:"height"`
	Sway   float64 `yaml:"sway"`
}

// Config holds everything needed to build and run the scene.
type Config struct {
	Window struct {
		Title  string `yaml:"title"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
	} `yaml:"window"`
	Animation struct {
		IntervalMs int     `yaml:"intervalMs"`
		Speed      float64 `yaml:"speed"`
		Epsilon    float64 `yaml:"epsilon"`
		FadeSecs   float64 `yaml:"fadeSecs"`
	} `yaml:"animation"`
	Fish struct {
		Start   XY `yaml:"start"`
		Control XY `yaml:"control"`
		End     XY `yaml:"end"`
	} `yaml:"fish"`
	Seaweed []SeaweedConfig `yaml:"seaweed"`
	Bubbles struct {
		Count  int     `yaml:"count"`
		Radius float64 `yaml:"radius"`
		Rate   float64 `yaml:"rate"`
		Alpha  float64 `yaml:"alpha"`
		Seed   int64   `yaml:"seed"`
	} `yaml:"bubbles"`
	Palette struct {
		Water    string `yaml:"water"`
		Seaweed  string `yaml:"seaweed"`
		FishBody string `yaml:"fishBody"`
		FishFins string `yaml:"fishFins"`
		FishEye  string `yaml:"fishEye"`
		Bubble   string `yaml:"bubble"`
	} `yaml:"palette"`
	Fill struct {
		OddRule string `yaml:"oddRule"`
	} `yaml:"fill"`
	Output struct {
		Mode   string `yaml:"mode"`
		Ticks  uint64 `yaml:"ticks"`
		Dir    string `yaml:"dir"`
		Format string `yaml:"format"`
	} `yaml:"output"`
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topic    string `yaml:"topic"`
		Width    int    `yaml:"width"`
		Height   int    `yaml:"height"`
	} `yaml:"mqtt"`
	API struct {
		Listen string `yaml:"listen"`
	} `yaml:"api"`
}

// DefaultConfig returns the classic reef: three seaweed blades, fifty
// bubbles and one fish crossing an 800x600 window.
func DefaultConfig() Config {
	var c Config
	c.Window.Title = "Underwater Scene"
	c.Window.Width = 800
	c.Window.Height = 600

	c.Animation.IntervalMs = 16
	c.Animation.Speed = path.DefaultSpeed
	c.Animation.Epsilon = path.DefaultEpsilon
	c.Animation.FadeSecs = 2

	c.Fish.Start = XY{100, 300}
	c.Fish.Control = XY{400, 550}
	c.Fish.End = XY{700, 400}

	c.Seaweed = []SeaweedConfig{
		{X: 100, Y: 0, Height: 100, Sway: 10},
		{X: 250, Y: 0, Height: 120, Sway: 15},
		{X: 400, Y: 0, Height: 150, Sway: 20},
	}

	c.Bubbles.Count = 50
	c.Bubbles.Radius = 5
	c.Bubbles.Rate = 0.05
	c.Bubbles.Alpha = 0.5

	c.Palette.Water = "#000000"
	c.Palette.Seaweed = "#33b34d"
	c.Palette.FishBody = "#e6991a"
	c.Palette.FishFins = "#cc8000"
	c.Palette.FishEye = "#000000"
	c.Palette.Bubble = "#cce6ff"

	c.Fill.OddRule = "drop"

	c.Output.Mode = "window"
	c.Output.Dir = "frames"
	c.Output.Format = "png"

	c.Mqtt.Topic = "home/reef/stream"
	return c
}

// LoadConfig decodes YAML from r on top of DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, c.Validate()
}

// ReadConfig loads the YAML file at configPath.
func ReadConfig(configPath string) (Config, error) {
	f, err := os.Open(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks the values LoadConfig cannot default.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.Width > MaxFrameSide || c.Window.Height > MaxFrameSide {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Animation.IntervalMs <= 0 {
		return fmt.Errorf("%w: interval %dms", ErrInvalidConfig, c.Animation.IntervalMs)
	}
	if c.Animation.Speed <= 0 || c.Animation.Speed > 1 {
		return fmt.Errorf("%w: speed %v outside (0,1]", ErrInvalidConfig, c.Animation.Speed)
	}
	if c.Animation.Epsilon <= 0 {
		return fmt.Errorf("%w: heading epsilon %v must be positive", ErrInvalidConfig, c.Animation.Epsilon)
	}
	if c.Animation.FadeSecs < 0 {
		return fmt.Errorf("%w: negative fade", ErrInvalidConfig)
	}
	if c.Bubbles.Count < 0 || c.Bubbles.Alpha < 0 || c.Bubbles.Alpha > 1 {
		return fmt.Errorf("%w: bubbles count %d alpha %v", ErrInvalidConfig, c.Bubbles.Count, c.Bubbles.Alpha)
	}
	if _, err := raster.ParseFillRule(c.Fill.OddRule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Output.Mode {
	case "window", "terminal", "headless":
	default:
		return fmt.Errorf("%w: output mode %q", ErrInvalidConfig, c.Output.Mode)
	}
	switch c.Output.Format {
	case "png", "gif":
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalidConfig, c.Output.Format)
	}
	// A GIF is buffered until the run ends, so it needs an end.
	if c.Output.Mode == "headless" && c.Output.Format == "gif" && c.Output.Ticks == 0 {
		return fmt.Errorf("%w: gif export needs a tick limit", ErrInvalidConfig)
	}
	if (c.Mqtt.Width == 0) != (c.Mqtt.Height == 0) || c.Mqtt.Width < 0 || c.Mqtt.Height < 0 ||
		c.Mqtt.Width > MaxFrameSide || c.Mqtt.Height > MaxFrameSide {
		return fmt.Errorf("%w: mqtt size %dx%d", ErrInvalidConfig, c.Mqtt.Width, c.Mqtt.Height)
	}
	if _, err := c.Colours(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Palette is the parsed colour set of a scene.
type Palette struct {
	Water    colorful.Color
	Seaweed  colorful.Color
	FishBody colorful.Color
	FishFins colorful.Color
	FishEye  colorful.Color
	Bubble   colorful.Color
}

// Colours parses the hex palette.
func (c Config) Colours() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"water", c.Palette.Water, &p.Water},
		{"seaweed", c.Palette.Seaweed, &p.Seaweed},
		{"fishBody", c.Palette.FishBody, &p.FishBody},
		{"fishFins", c.Palette.FishFins, &p.FishFins},
		{"fishEye", c.Palette.FishEye, &p.FishEye},
		{"bubble", c.Palette.Bubble, &p.Bubble},
	}
	for _, f := range fields {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return p, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// Curve returns the fish path.
func (c Config) Curve() path.Curve {
	return path.Curve{P0: c.Fish.Start.Point(), P1: c.Fish.Control.Point(), P2: c.Fish.End.Point()}
}
