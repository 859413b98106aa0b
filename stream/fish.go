package stream

import (
	"github.com/matt-g-everett/reeftx/raster"
)

// Fish outline in its local frame, facing +x.
var (
	fishTail   = raster.Polygon{{X: -20, Y: 0}, {X: -35, Y: 10}, {X: -35, Y: -10}}
	fishDorsal = raster.Polygon{{X: -10, Y: 20}, {X: 10, Y: 20}, {X: 5, Y: 30}}
	fishEye    = raster.Point{X: 10, Y: 5}
)

const (
	fishBodyRadius = 20
	fishEyeRadius  = 3
)

// Fish is drawn rigidly at a position and heading.
type Fish struct {
	Body raster.Color
	Fins raster.Color
	Eye  raster.Color
}

// Draw renders the fish centred on pos, rotated by heading degrees.
func (f Fish) Draw(t raster.Target, xf *raster.TransformStack, pos raster.Point, heading float64, rule raster.FillRule) {
	xf.Push()
	defer xf.Pop()
	xf.Translate(pos.X, pos.Y)
	xf.Rotate(heading)

	fan(t, xf, raster.Point{}, fishBodyRadius, f.Body)
	raster.FillPolygon(t, xf.ApplyAll(fishTail), f.Fins, rule)
	fan(t, xf, fishEye, fishEyeRadius, f.Eye)
	raster.FillPolygon(t, xf.ApplyAll(fishDorsal), f.Fins, rule)
}

// fan fills a disc given in the local frame of xf.
func fan(t raster.Target, xf *raster.TransformStack, center raster.Point, r float64, c raster.Color) {
	rim := xf.ApplyAll(raster.Disc(center, r, raster.DiscSegments))
	raster.FillFan(t, xf.Apply(center), rim, c)
}
