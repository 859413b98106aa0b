package raster

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB colour with an alpha channel. A of 1 is opaque.
type Color struct {
	colorful.Color
	A float64
}

// Opaque wraps c with full alpha.
func Opaque(c colorful.Color) Color {
	return Color{Color: c, A: 1}
}

// Translucent wraps c with alpha a.
func Translucent(c colorful.Color, a float64) Color {
	return Color{Color: c, A: a}
}

// IsOpaque reports whether painting c replaces the destination outright.
func (c Color) IsOpaque() bool {
	return c.A >= 1
}
