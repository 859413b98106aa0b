package stream

import (
	"math/rand"

	"github.com/matt-g-everett/reeftx/raster"
	"github.com/matt-g-everett/reeftx/util"
)

// A BubbleField scatters translucent bubbles that drift upwards. Positions
// are redrawn from the generator every frame, so bubbles have no identity
// from one frame to the next.
type BubbleField struct {
	Count  int
	Radius float64
	Rate   float64
	Colour raster.Color

	rnd *rand.Rand
}

// NewBubbleField creates a field drawing from rnd.
func NewBubbleField(count int, radius, rate float64, colour raster.Color, rnd *rand.Rand) *BubbleField {
	b := new(BubbleField)
	b.Count = count
	b.Radius = radius
	b.Rate = rate
	b.Colour = colour
	b.rnd = rnd
	return b
}

// Positions returns this frame's bubble centres. y is always in [0, height).
func (b *BubbleField) Positions(runtimeMs int64, width, height int) []raster.Point {
	if width <= 0 || height <= 0 {
		return nil
	}
	out := make([]raster.Point, b.Count)
	for i := range out {
		x := float64(b.rnd.Intn(width))
		y := float64(b.rnd.Intn(height))*1.5 - float64(runtimeMs)*b.Rate
		out[i] = raster.Point{X: x, Y: util.PositiveMod(y, float64(height))}
	}
	return out
}

// Draw renders the field onto t.
func (b *BubbleField) Draw(t raster.Target, runtimeMs int64) {
	for _, p := range b.Positions(runtimeMs, t.Width(), t.Height()) {
		raster.FillFan(t, p, raster.Disc(p, b.Radius, raster.DiscSegments), b.Colour)
	}
}
