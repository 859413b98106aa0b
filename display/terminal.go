package display

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-g-everett/reeftx/stream"
)

// upperHalf packs two vertical pixels into one cell: foreground on top,
// background below.
const upperHalf = '▀'

// Terminal paints frames into a terminal with half-block cells.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal initialises the terminal screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return newTerminal(screen)
}

func newTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := new(Terminal)
	t.screen = screen
	return t, nil
}

// Present downsamples f to the terminal and shows it.
func (t *Terminal) Present(f *stream.Frame) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}

	img := f.Scaled(cols, rows*2)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := img.PixOffset(x, y*2)
			bottom := img.PixOffset(x, y*2+1)
			fg := tcell.NewRGBColor(int32(img.Pix[top]), int32(img.Pix[top+1]), int32(img.Pix[top+2]))
			bg := tcell.NewRGBColor(int32(img.Pix[bottom]), int32(img.Pix[bottom+1]), int32(img.Pix[bottom+2]))
			t.screen.SetContent(x, y, upperHalf, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
	t.screen.Show()
	return nil
}

// Watch polls terminal events until Close, calling cancel when the user
// asks to quit with Escape, Ctrl-C or q.
func (t *Terminal) Watch(cancel context.CancelFunc) {
	go func() {
		for {
			switch ev := t.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		}
	}()
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}
