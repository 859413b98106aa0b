package stream

import (
	"encoding/binary"
	"image"

	"github.com/matt-g-everett/reeftx/raster"
	"golang.org/x/image/draw"
)

// Frame is a rendered picture of the scene.
type Frame struct {
	*raster.Canvas
}

// NewFrame creates a new Frame of the given size.
func NewFrame(width, height int) *Frame {
	f := new(Frame)
	f.Canvas = raster.NewCanvas(width, height)
	return f
}

// InterpolateFrame merges two frames of equal size. transitionPoint 0 gives f,
// 1 gives f2.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(f.Width(), f.Height())
	a, b, dst := f.Image().Pix, f2.Image().Pix, out.Image().Pix
	for i := 0; i < len(dst) && i < len(b); i++ {
		dst[i] = uint8(float64(a[i]) + (float64(b[i])-float64(a[i]))*transitionPoint + 0.5)
	}
	return out
}

// Scaled returns the frame resampled to width x height.
func (f *Frame) Scaled(width, height int) *image.RGBA {
	if width == f.Width() && height == f.Height() {
		return f.Image()
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), f.Image(), f.Image().Bounds(), draw.Src, nil)
	return dst
}

// MarshalBinary encodes a frame for an LED matrix: little-endian uint16
// width and height followed by RGB triplets, top row first.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	return marshalImage(f.Image()), nil
}

func marshalImage(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	data := make([]byte, 4, 4+w*h*3)
	binary.LittleEndian.PutUint16(data[0:], uint16(w))
	binary.LittleEndian.PutUint16(data[2:], uint16(h))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < len(row); x += 4 {
			data = append(data, row[x], row[x+1], row[x+2])
		}
	}
	return data
}
