package stream

import (
	"math"

	"github.com/matt-g-everett/reeftx/raster"
)

// swayRate converts elapsed milliseconds into sway phase.
const swayRate = 0.001

// Seaweed is a zigzag blade rooted at (X, Y).
type Seaweed struct {
	X      float64
	Y      float64
	Height float64
	Sway   float64
}

// Polygon returns the blade outline at runtimeMs. Every vertex shifts by the
// same amount, so the blade swings as a whole; the base x shifts the phase so
// neighbouring blades move out of step.
func (s Seaweed) Polygon(runtimeMs int64) raster.Polygon {
	x, y := s.X, s.Y
	poly := raster.Polygon{
		{X: x, Y: y},
		{X: x - 5, Y: y + 20},
		{X: x + 5, Y: y + 40},
		{X: x, Y: y + s.Height},
		{X: x + 5, Y: y + 40},
		{X: x + 10, Y: y + 20},
	}

	sway := math.Sin(float64(runtimeMs)*swayRate+x) * s.Sway
	poly.Translate(sway, 0)
	return poly
}

// Draw fills the blade onto t.
func (s Seaweed) Draw(t raster.Target, runtimeMs int64, c raster.Color, rule raster.FillRule) {
	raster.FillPolygon(t, s.Polygon(runtimeMs), c, rule)
}
