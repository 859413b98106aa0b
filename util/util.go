package util

import (
	"math"

	"github.com/fogleman/ease"
)

// PositiveMod returns v mod m in [0, m) for positive m.
func PositiveMod(v float64, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	// -tiny + m can round up to m itself.
	if r >= m {
		r = 0
	}
	return r
}

// EasedProgress maps elapsed/total onto [0,1] through an in-out quadratic.
func EasedProgress(elapsed float64, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return ease.InOutQuad(math.Max(0, math.Min(1, elapsed/total)))
}
