package path

import (
	"math"

	"github.com/matt-g-everett/reeftx/raster"
)

const (
	// DefaultSpeed is the progress added per tick.
	DefaultSpeed = 0.0015
	// DefaultEpsilon is the look-behind used to estimate heading.
	DefaultEpsilon = 0.01
)

// An Animator advances progress along a Curve and tracks the resulting
// position and heading. It loops: once t passes 1 it restarts at 0.
type Animator struct {
	curve   Curve
	speed   float64
	epsilon float64

	t        float64
	position raster.Point
	heading  float64
	loops    int
}

// NewAnimator creates an Animator at t = 0.
func NewAnimator(curve Curve, speed float64) *Animator {
	a := new(Animator)
	a.curve = curve
	a.speed = speed
	a.epsilon = DefaultEpsilon
	a.update()
	return a
}

// SetEpsilon changes the look-behind distance used for heading.
func (a *Animator) SetEpsilon(epsilon float64) {
	a.epsilon = epsilon
	a.update()
}

// Advance moves one tick forward.
func (a *Animator) Advance() {
	a.t += a.speed
	if a.t > 1.0 {
		a.t = 0.0
		a.loops++
	}
	a.update()
}

// update recomputes position and heading. Heading is the backward difference
// from B(t-ε) to B(t); just after a reset t-ε is negative and B extrapolates
// before the start point.
func (a *Animator) update() {
	a.position = a.curve.Eval(a.t)
	prev := a.curve.Eval(a.t - a.epsilon)
	d := a.position.Sub(prev)
	a.heading = math.Atan2(d.Y, d.X) * 180.0 / math.Pi
}

// T returns the current progress in [0,1].
func (a *Animator) T() float64 { return a.t }

// Position returns B(t).
func (a *Animator) Position() raster.Point { return a.position }

// Heading returns the direction of travel in degrees, counter-clockwise from +x.
func (a *Animator) Heading() float64 { return a.heading }

// Loops returns how many times t has wrapped back to 0.
func (a *Animator) Loops() int { return a.loops }

// Curve returns the path being followed.
func (a *Animator) Curve() Curve { return a.curve }
