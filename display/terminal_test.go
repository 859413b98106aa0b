package display

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/reeftx/raster"
	"github.com/matt-g-everett/reeftx/stream"
)

func TestTerminalHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := newTerminal(screen)
	if err != nil {
		t.Fatal(err)
	}
	defer term.Close()
	screen.SetSize(4, 2)

	// Top half red, bottom half blue, in world coordinates (y up).
	f := stream.NewFrame(4, 4)
	f.Clear(colorful.Color{B: 1})
	for y := 2; y < 4; y++ {
		f.FillSpan(raster.Span{Y: y, X0: 0, X1: 3}, raster.Opaque(colorful.Color{R: 1}))
	}
	if err := term.Present(f); err != nil {
		t.Fatal(err)
	}

	mainc, _, style, _ := screen.GetContent(1, 0)
	if mainc != upperHalf {
		t.Fatalf("cell rune = %q, want %q", mainc, upperHalf)
	}
	fg, bg, _ := style.Decompose()
	if r, _, _ := fg.RGB(); r != 0xff {
		t.Errorf("top row foreground = %v, want red", fg)
	}
	if r, _, _ := bg.RGB(); r != 0xff {
		t.Errorf("top row background = %v, want red", bg)
	}

	_, _, style, _ = screen.GetContent(1, 1)
	fg, _, _ = style.Decompose()
	if _, _, b := fg.RGB(); b != 0xff {
		t.Errorf("bottom row foreground = %v, want blue", fg)
	}
}
