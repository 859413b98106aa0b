package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/reeftx/raster"
)

func TestMarshalBinary(t *testing.T) {
	f := NewFrame(3, 2)
	f.Clear(colorful.Color{B: 1})
	// World (0,0) is the bottom-left, which is the last encoded row.
	f.Set(0, 0, raster.Opaque(colorful.Color{R: 1}))

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 4+3*2*3 {
		t.Fatalf("len = %d", len(data))
	}
	if w, h := binary.LittleEndian.Uint16(data), binary.LittleEndian.Uint16(data[2:]); w != 3 || h != 2 {
		t.Errorf("header %dx%d, want 3x2", w, h)
	}
	first := data[4:7]
	if first[0] != 0 || first[2] != 0xff {
		t.Errorf("top-left = %v, want blue", first)
	}
	bottomLeft := data[4+3*3 : 4+3*3+3]
	if bottomLeft[0] != 0xff || bottomLeft[2] != 0 {
		t.Errorf("bottom-left = %v, want red", bottomLeft)
	}
}

func TestInterpolateFrame(t *testing.T) {
	a := NewFrame(2, 2)
	b := NewFrame(2, 2)
	a.Clear(colorful.Color{})
	b.Clear(colorful.Color{R: 1, G: 1, B: 1})

	if got := a.InterpolateFrame(b, 0).At(0, 0).R; got != 0 {
		t.Errorf("t=0 red = %v", got)
	}
	if got := a.InterpolateFrame(b, 1).At(0, 0).R; got != 1 {
		t.Errorf("t=1 red = %v", got)
	}
	if got := a.InterpolateFrame(b, 0.5).At(1, 1).R; got < 0.49 || got > 0.51 {
		t.Errorf("t=0.5 red = %v", got)
	}
}

func TestScaled(t *testing.T) {
	f := NewFrame(40, 20)
	f.Clear(colorful.Color{G: 1})
	img := f.Scaled(10, 5)
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 5 {
		t.Fatalf("scaled to %v", b)
	}
	if g := img.Pix[img.PixOffset(5, 2)+1]; g < 0xfe {
		t.Errorf("green = %d, want about 255", g)
	}
	if f.Scaled(40, 20) != f.Image() {
		t.Error("same-size Scaled should not copy")
	}
}
