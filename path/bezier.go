// Package path moves a point along a looping quadratic Bézier curve.
package path

import (
	"github.com/matt-g-everett/reeftx/raster"
)

// Curve is a quadratic Bézier curve from P0 to P2 pulled towards P1.
type Curve struct {
	P0 raster.Point
	P1 raster.Point
	P2 raster.Point
}

// Eval returns B(t) = u²·P0 + 2ut·P1 + t²·P2 with u = 1-t. Values of t
// outside [0,1] extrapolate the same polynomial.
func (c Curve) Eval(t float64) raster.Point {
	u := 1.0 - t
	a, b, d := u*u, 2*u*t, t*t
	return raster.Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y,
	}
}
