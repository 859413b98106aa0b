package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/reeftx/path"
	"github.com/matt-g-everett/reeftx/raster"
)

// A Scene is an Animation of the reef: seaweed, then bubbles, then the fish
// on top. The fish position comes from the shared Animator; everything else
// is derived from the frame time alone.
type Scene struct {
	width    int
	height   int
	water    colorful.Color
	seaweed  []Seaweed
	weedCol  raster.Color
	bubbles  *BubbleField
	fish     Fish
	animator *path.Animator
	rule     raster.FillRule
	xf       *raster.TransformStack
}

// NewScene builds a Scene from config. The animator is owned by the caller,
// which advances it between frames.
func NewScene(config Config, animator *path.Animator, rnd *rand.Rand) (*Scene, error) {
	palette, err := config.Colours()
	if err != nil {
		return nil, err
	}
	rule, err := raster.ParseFillRule(config.Fill.OddRule)
	if err != nil {
		return nil, err
	}

	s := new(Scene)
	s.width = config.Window.Width
	s.height = config.Window.Height
	s.water = palette.Water
	s.weedCol = raster.Opaque(palette.Seaweed)
	for _, w := range config.Seaweed {
		s.seaweed = append(s.seaweed, Seaweed{X: w.X, Y: w.Y, Height: w.Height, Sway: w.Sway})
	}
	s.bubbles = NewBubbleField(config.Bubbles.Count, config.Bubbles.Radius, config.Bubbles.Rate,
		raster.Translucent(palette.Bubble, config.Bubbles.Alpha), rnd)
	s.fish = Fish{
		Body: raster.Opaque(palette.FishBody),
		Fins: raster.Opaque(palette.FishFins),
		Eye:  raster.Opaque(palette.FishEye),
	}
	s.animator = animator
	s.rule = rule
	s.xf = raster.NewTransformStack()

	return s, nil
}

// Animator returns the path animator driving the fish.
func (s *Scene) Animator() *path.Animator { return s.animator }

// CalculateFrame creates a new Frame instance.
func (s *Scene) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(s.width, s.height)
	f.Clear(s.water)

	for _, w := range s.seaweed {
		w.Draw(f, runtimeMs, s.weedCol, s.rule)
	}
	s.bubbles.Draw(f, runtimeMs)
	s.fish.Draw(f, s.xf, s.animator.Position(), s.animator.Heading(), s.rule)

	return f
}
