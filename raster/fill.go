package raster

import (
	"fmt"
	"image"
	"math"
	"sort"
)

// Span is a run of pixels X0..X1 (inclusive) on row Y.
type Span struct {
	Y  int
	X0 int
	X1 int
}

// Len returns the number of pixels in the span.
func (s Span) Len() int {
	if s.X1 < s.X0 {
		return 0
	}
	return s.X1 - s.X0 + 1
}

// FillRule decides what happens to the unpaired intersection left over when
// a scanline crosses the polygon boundary an odd number of times.
type FillRule int

const (
	// FillRuleDrop ignores the unpaired intersection.
	FillRuleDrop FillRule = iota
	// FillRuleToEdge fills from the unpaired intersection to the right edge.
	FillRuleToEdge
)

// ParseFillRule maps a config value onto a FillRule.
func ParseFillRule(s string) (FillRule, error) {
	switch s {
	case "", "drop":
		return FillRuleDrop, nil
	case "edge":
		return FillRuleToEdge, nil
	}
	return FillRuleDrop, fmt.Errorf("unknown fill rule %q", s)
}

func (r FillRule) String() string {
	switch r {
	case FillRuleDrop:
		return "drop"
	case FillRuleToEdge:
		return "edge"
	}
	return fmt.Sprintf("FillRule(%d)", int(r))
}

// Spans scan-converts poly into horizontal spans clipped to clip.
//
// Every integer row between the floored vertical extremes is intersected
// with each non-horizontal edge using the half-open test min <= y < max, so
// a vertex shared by two edges is counted once. Intersections are floored,
// sorted, and paired 0-1, 2-3 and so on.
func Spans(poly Polygon, rule FillRule, clip image.Rectangle) []Span {
	if len(poly) == 0 || clip.Empty() {
		return nil
	}

	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	if math.IsNaN(minY) || math.IsNaN(maxY) {
		return nil
	}

	top := floorCoord(maxY)
	bottom := floorCoord(minY)
	if bottom < clip.Min.Y {
		bottom = clip.Min.Y
	}
	if top > clip.Max.Y-1 {
		top = clip.Max.Y - 1
	}

	var spans []Span
	xs := make([]int, 0, len(poly))
	for y := bottom; y <= top; y++ {
		xs = scanline(poly, float64(y), xs[:0])
		sort.Ints(xs)

		spans = appendPairs(spans, y, xs, rule, clip)
	}

	return spans
}

// appendPairs turns sorted intersections on row y into spans. A closed
// polygon with finite vertices always yields an even count under the
// half-open test; an odd count only comes from non-finite input.
func appendPairs(spans []Span, y int, xs []int, rule FillRule, clip image.Rectangle) []Span {
	i := 0
	for ; i+1 < len(xs); i += 2 {
		spans = appendClipped(spans, Span{Y: y, X0: xs[i], X1: xs[i+1]}, clip)
	}
	if i < len(xs) && rule == FillRuleToEdge {
		spans = appendClipped(spans, Span{Y: y, X0: xs[i], X1: clip.Max.X - 1}, clip)
	}
	return spans
}

// scanline appends the floored x-intersections of row y with poly's edges.
func scanline(poly Polygon, y float64, xs []int) []int {
	n := len(poly)
	for i := 0; i < n; i++ {
		p1 := poly[i]
		p2 := poly[(i+1)%n]

		// Horizontal edges would divide by zero and are covered by their neighbours.
		if p1.Y == p2.Y {
			continue
		}
		if y < math.Min(p1.Y, p2.Y) || y >= math.Max(p1.Y, p2.Y) {
			continue
		}

		x := p1.X + (y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y)
		xs = append(xs, floorCoord(x))
	}
	return xs
}

// maxCoord bounds pixel coordinates before conversion to int. It is far
// outside any canvas, so clamping keeps ordering and clipping exact.
const maxCoord = 1 << 30

// floorCoord floors v and clamps it to ±maxCoord, so values beyond the int
// range still clip instead of wrapping. NaN maps to 0.
func floorCoord(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= -maxCoord:
		return -maxCoord
	case v >= maxCoord:
		return maxCoord
	}
	return int(math.Floor(v))
}

func appendClipped(spans []Span, s Span, clip image.Rectangle) []Span {
	if s.X0 < clip.Min.X {
		s.X0 = clip.Min.X
	}
	if s.X1 > clip.Max.X-1 {
		s.X1 = clip.Max.X - 1
	}
	if s.X0 > s.X1 {
		return spans
	}
	return append(spans, s)
}

// FillPolygon paints the interior of poly onto t. An empty polygon is a no-op.
func FillPolygon(t Target, poly Polygon, c Color, rule FillRule) {
	clip := image.Rect(0, 0, t.Width(), t.Height())
	for _, s := range Spans(poly, rule, clip) {
		t.FillSpan(s, c)
	}
}
