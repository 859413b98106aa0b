package raster

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Target receives filled spans. Spans handed to a Target are already
// clipped to its bounds.
type Target interface {
	Width() int
	Height() int
	FillSpan(s Span, c Color)
}

// Canvas is an RGBA framebuffer addressed in world coordinates: row 0 is
// the bottom of the image.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas of the given size, cleared to transparent black.
func NewCanvas(width, height int) *Canvas {
	c := new(Canvas)
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return c
}

// Width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image returns the backing image. Its rows run top-down as usual for image.Image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the drawable area in world coordinates.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width(), c.Height())
}

// Clear fills the whole canvas with an opaque colour.
func (c *Canvas) Clear(col colorful.Color) {
	r, g, b := col.Clamped().RGB255()
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = 0xff
	}
}

func (c *Canvas) offset(x, y int) (int, bool) {
	w, h := c.Width(), c.Height()
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, false
	}
	return (h-1-y)*c.img.Stride + x*4, true
}

// At returns the colour stored at (x, y). Outside the canvas it returns black.
func (c *Canvas) At(x, y int) colorful.Color {
	i, ok := c.offset(x, y)
	if !ok {
		return colorful.Color{}
	}
	p := c.img.Pix[i : i+3 : i+3]
	return colorful.Color{R: float64(p[0]) / 255.0, G: float64(p[1]) / 255.0, B: float64(p[2]) / 255.0}
}

// Set paints a single pixel, blending when col is translucent.
func (c *Canvas) Set(x, y int, col Color) {
	if col.A <= 0 {
		return
	}
	i, ok := c.offset(x, y)
	if !ok {
		return
	}
	c.paint(i, col)
}

func (c *Canvas) paint(i int, col Color) {
	p := c.img.Pix[i : i+4 : i+4]
	out := col.Color
	if !col.IsOpaque() {
		dst := colorful.Color{R: float64(p[0]) / 255.0, G: float64(p[1]) / 255.0, B: float64(p[2]) / 255.0}
		out = dst.BlendRgb(col.Color, col.A)
	}
	p[0], p[1], p[2] = out.Clamped().RGB255()
	p[3] = 0xff
}

// FillSpan paints pixels X0..X1 inclusive on row Y. Parts outside the canvas
// are ignored.
func (c *Canvas) FillSpan(s Span, col Color) {
	if col.A <= 0 || s.Y < 0 || s.Y >= c.Height() {
		return
	}
	x0, x1 := s.X0, s.X1
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= c.Width() {
		x1 = c.Width() - 1
	}
	if x0 > x1 {
		return
	}

	start, _ := c.offset(x0, s.Y)
	end := start + (x1-x0+1)*4
	if !col.IsOpaque() {
		for i := start; i < end; i += 4 {
			c.paint(i, col)
		}
		return
	}

	r, g, b := col.Clamped().RGB255()
	row := c.img.Pix[start:end]
	for i := 0; i < len(row); i += 4 {
		row[i] = r
		row[i+1] = g
		row[i+2] = b
		row[i+3] = 0xff
	}
}
