package stream

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/reeftx/util"
)

// Controller eases an animation in from black over its first seconds.
type Controller struct {
	animation    Animation
	transitionMs int64
	startMs      int64
	started      bool
	black        *Frame
}

// NewController creates an instance of a Controller. A zero transition time
// passes frames straight through.
func NewController(animation Animation, transitionTimeSecs float64) *Controller {
	c := new(Controller)
	c.animation = animation
	c.transitionMs = int64(transitionTimeSecs * 1000)
	return c
}

// CalculateFrame renders the wrapped animation and applies the fade.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	f := c.animation.CalculateFrame(runtimeMs)
	if !c.started {
		c.startMs = runtimeMs
		c.started = true
	}

	elapsed := runtimeMs - c.startMs
	if c.transitionMs <= 0 || elapsed >= c.transitionMs {
		return f
	}

	if c.black == nil || c.black.Width() != f.Width() || c.black.Height() != f.Height() {
		c.black = NewFrame(f.Width(), f.Height())
		c.black.Clear(colorful.Color{})
	}
	return c.black.InterpolateFrame(f, util.EasedProgress(float64(elapsed), float64(c.transitionMs)))
}
