package stream

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/matt-g-everett/reeftx/path"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type recordingSink struct {
	frames []*Frame
	err    error
}

func (s *recordingSink) Present(f *Frame) error {
	s.frames = append(s.frames, f)
	return s.err
}

// timeAnimation records the runtime it was asked to render.
type timeAnimation struct {
	runtimes []int64
}

func (a *timeAnimation) CalculateFrame(runtimeMs int64) *Frame {
	a.runtimes = append(a.runtimes, runtimeMs)
	return NewFrame(2, 2)
}

func TestDriverStepsMatchClosedForm(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	curve := DefaultConfig().Curve()
	animator := path.NewAnimator(curve, path.DefaultSpeed)
	anim := &timeAnimation{}
	sink := &recordingSink{}
	d := NewDriver(DriverConfig{Interval: 16 * time.Millisecond, Now: clock.Now}, animator, anim, sink)

	const n = 400
	for i := 0; i < n; i++ {
		clock.now = clock.now.Add(16 * time.Millisecond)
		if err := d.Step(); err != nil {
			t.Fatal(err)
		}
	}

	wantT := n * path.DefaultSpeed
	if math.Abs(animator.T()-wantT) > 1e-9 {
		t.Errorf("t = %v after %d ticks, want %v", animator.T(), n, wantT)
	}
	want := curve.Eval(wantT)
	got := animator.Position()
	if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 {
		t.Errorf("position = %v, want %v", got, want)
	}

	if len(sink.frames) != n || d.Ticks() != n {
		t.Errorf("sink got %d frames, driver %d ticks; want %d", len(sink.frames), d.Ticks(), n)
	}
	if d.Frame() != sink.frames[n-1] {
		t.Error("Frame() is not the last presented frame")
	}
	if anim.runtimes[0] != 16 || anim.runtimes[n-1] != 16*n {
		t.Errorf("runtimes %d..%d, want 16..%d", anim.runtimes[0], anim.runtimes[n-1], 16*n)
	}
}

func TestDriverSinkError(t *testing.T) {
	animator := path.NewAnimator(DefaultConfig().Curve(), path.DefaultSpeed)
	boom := errors.New("boom")
	d := NewDriver(DriverConfig{}, animator, &timeAnimation{}, &recordingSink{err: boom})
	if err := d.Step(); !errors.Is(err, boom) {
		t.Errorf("Step error = %v, want wrapped boom", err)
	}
}

func TestDriverRunTickLimit(t *testing.T) {
	animator := path.NewAnimator(DefaultConfig().Curve(), path.DefaultSpeed)
	sink := &recordingSink{}
	d := NewDriver(DriverConfig{Interval: time.Millisecond, Ticks: 5}, animator, &timeAnimation{}, sink)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sink.frames) != 5 || !d.Done() {
		t.Errorf("presented %d frames, want 5", len(sink.frames))
	}
}

func TestDriverRunCancelled(t *testing.T) {
	animator := path.NewAnimator(DefaultConfig().Curve(), path.DefaultSpeed)
	d := NewDriver(DriverConfig{Interval: time.Hour}, animator, &timeAnimation{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}
