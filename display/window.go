//go:build cgo

package display

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/matt-g-everett/reeftx/stream"
)

// Window shows frames in a desktop window. ebiten owns the event loop, so
// the window also drives the frame loop from its Update callback.
type Window struct {
	title  string
	width  int
	height int

	mu    sync.Mutex
	frame *stream.Frame
}

// NewWindow creates a window of fixed title and size.
func NewWindow(title string, width, height int) *Window {
	w := new(Window)
	w.title = title
	w.width = width
	w.height = height
	return w
}

// Present keeps f for the next Draw.
func (w *Window) Present(f *stream.Frame) error {
	w.mu.Lock()
	w.frame = f
	w.mu.Unlock()
	return nil
}

// Run opens the window and blocks until it is closed, ctx is done, or the
// driver's tick limit is reached.
func (w *Window) Run(ctx context.Context, d *stream.Driver, interval time.Duration) error {
	tps := int(time.Second / interval)
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetTPS(tps)

	err := ebiten.RunGame(&windowGame{ctx: ctx, w: w, d: d})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type windowGame struct {
	ctx context.Context
	w   *Window
	d   *stream.Driver
	img *ebiten.Image
}

func (g *windowGame) Update() error {
	if g.ctx.Err() != nil || g.d.Done() {
		return ebiten.Termination
	}
	return g.d.Step()
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.w.mu.Lock()
	f := g.w.frame
	g.w.mu.Unlock()
	if f == nil {
		return
	}

	if g.img == nil || g.img.Bounds().Dx() != f.Width() || g.img.Bounds().Dy() != f.Height() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(f.Width(), f.Height())
	}
	g.img.WritePixels(f.Image().Pix)
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w.width, g.w.height
}
