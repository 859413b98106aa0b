package stream

import (
	"context"
	"fmt"
	"time"

	"github.com/matt-g-everett/reeftx/path"
)

// A Sink consumes rendered frames.
type Sink interface {
	Present(f *Frame) error
}

// DriverConfig controls the frame loop.
type DriverConfig struct {
	Interval time.Duration
	// Ticks stops Run after this many frames; 0 runs until cancelled.
	Ticks uint64
	// Now is the wall clock used for animation time. Defaults to time.Now.
	Now func() time.Time
}

// Driver ties the fixed-rate tick to animator advance, rendering and
// presentation. Everything runs on the caller's goroutine.
type Driver struct {
	config    DriverConfig
	animator  *path.Animator
	animation Animation
	sinks     []Sink

	start time.Time
	ticks uint64
	last  *Frame
}

// NewDriver creates a Driver. The animation time origin is the moment of
// creation.
func NewDriver(config DriverConfig, animator *path.Animator, animation Animation, sinks ...Sink) *Driver {
	if config.Interval <= 0 {
		config.Interval = 16 * time.Millisecond
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	d := new(Driver)
	d.config = config
	d.animator = animator
	d.animation = animation
	d.sinks = sinks
	d.start = config.Now()
	return d
}

// AddSink registers another frame consumer.
func (d *Driver) AddSink(s Sink) {
	d.sinks = append(d.sinks, s)
}

// RuntimeMs returns milliseconds since the driver was created.
func (d *Driver) RuntimeMs() int64 {
	return d.config.Now().Sub(d.start).Milliseconds()
}

// Ticks returns the number of completed steps.
func (d *Driver) Ticks() uint64 { return d.ticks }

// Frame returns the most recently rendered frame, or nil before the first step.
func (d *Driver) Frame() *Frame { return d.last }

// Done reports whether the tick limit has been reached.
func (d *Driver) Done() bool {
	return d.config.Ticks > 0 && d.ticks >= d.config.Ticks
}

// Step advances the animator once, renders a frame and presents it.
func (d *Driver) Step() error {
	d.animator.Advance()
	f := d.animation.CalculateFrame(d.RuntimeMs())
	d.last = f
	d.ticks++

	for _, s := range d.sinks {
		if err := s.Present(f); err != nil {
			return fmt.Errorf("present frame %d: %w", d.ticks, err)
		}
	}
	return nil
}

// Run steps on a fixed interval until ctx is done or the tick limit is hit.
func (d *Driver) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(d.config.Interval)
	defer publishTimer.Stop()

	for !d.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-publishTimer.C:
			if err := d.Step(); err != nil {
				return err
			}
		}
	}
	return nil
}
