package stream

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	src := `
window:
  width: 320
  height: 240
seaweed:
  - {x: 10, y: 0, height: 50, sway: 3}
bubbles:
  count: 7
fill:
  oddRule: edge
mqtt:
  url: tcp://localhost:1883
  width: 32
  height: 16
`
	c, err := LoadConfig(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Window.Width != 320 || c.Window.Height != 240 {
		t.Errorf("window %dx%d", c.Window.Width, c.Window.Height)
	}
	if len(c.Seaweed) != 1 || c.Seaweed[0].Height != 50 {
		t.Errorf("seaweed = %+v", c.Seaweed)
	}
	if c.Bubbles.Count != 7 || c.Bubbles.Radius != 5 {
		t.Errorf("bubbles = %+v, want count override and default radius", c.Bubbles)
	}
	if c.Animation.IntervalMs != 16 || c.Window.Title != "Underwater Scene" {
		t.Errorf("defaults lost: %+v", c.Animation)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	c, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(c.Seaweed) != 3 {
		t.Errorf("empty file should keep the default reef, got %d blades", len(c.Seaweed))
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"zero interval", func(c *Config) { c.Animation.IntervalMs = 0 }},
		{"speed above one", func(c *Config) { c.Animation.Speed = 1.5 }},
		{"bubble alpha", func(c *Config) { c.Bubbles.Alpha = 2 }},
		{"fill rule", func(c *Config) { c.Fill.OddRule = "wrap" }},
		{"mode", func(c *Config) { c.Output.Mode = "vr" }},
		{"format", func(c *Config) { c.Output.Format = "bmp" }},
		{"mqtt size", func(c *Config) { c.Mqtt.Width = 32 }},
		{"mqtt too wide", func(c *Config) { c.Mqtt.Width, c.Mqtt.Height = MaxFrameSide+1, 16 }},
		{"window too tall", func(c *Config) { c.Window.Height = MaxFrameSide + 1 }},
		{"zero epsilon", func(c *Config) { c.Animation.Epsilon = 0 }},
		{"negative epsilon", func(c *Config) { c.Animation.Epsilon = -0.01 }},
		{"unbounded gif", func(c *Config) { c.Output.Mode, c.Output.Format, c.Output.Ticks = "headless", "gif", 0 }},
		{"palette", func(c *Config) { c.Palette.Water = "navy" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDefaultPalette(t *testing.T) {
	p, err := DefaultConfig().Colours()
	if err != nil {
		t.Fatal(err)
	}
	if p.Seaweed.DistanceRgb(colorfulRGB(0.2, 0.7, 0.3)) > 0.01 {
		t.Errorf("seaweed = %v", p.Seaweed)
	}
	if p.FishBody.DistanceRgb(colorfulRGB(0.9, 0.6, 0.1)) > 0.01 {
		t.Errorf("fish body = %v", p.FishBody)
	}
}

func TestValidateBoundedGIF(t *testing.T) {
	c := DefaultConfig()
	c.Output.Mode, c.Output.Format, c.Output.Ticks = "headless", "gif", 120
	if err := c.Validate(); err != nil {
		t.Errorf("gif with a tick limit rejected: %v", err)
	}
}
