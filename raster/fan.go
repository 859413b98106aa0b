package raster

import (
	"image"
	"math"
)

// DiscSegments is the rim resolution used for discs: one vertex per degree.
const DiscSegments = 360

// FillTriangle paints every pixel whose centre lies inside triangle abc.
//
// Rows and columns are sampled at pixel centres with half-open bounds, so two
// triangles sharing an edge never paint the same pixel twice.
func FillTriangle(t Target, a, b, c Point, col Color) {
	clip := image.Rect(0, 0, t.Width(), t.Height())
	for _, s := range triangleSpans(a, b, c, clip) {
		t.FillSpan(s, col)
	}
}

func triangleSpans(a, b, c Point, clip image.Rectangle) []Span {
	minY := math.Min(a.Y, math.Min(b.Y, c.Y))
	maxY := math.Max(a.Y, math.Max(b.Y, c.Y))
	if !(minY < maxY) {
		return nil
	}

	bottom := ceilCoord(minY - 0.5)
	top := ceilCoord(maxY-0.5) - 1
	if bottom < clip.Min.Y {
		bottom = clip.Min.Y
	}
	if top > clip.Max.Y-1 {
		top = clip.Max.Y - 1
	}

	edges := [3][2]Point{canonical(a, b), canonical(b, c), canonical(c, a)}
	var spans []Span
	for y := bottom; y <= top; y++ {
		yc := float64(y) + 0.5
		left, right := math.Inf(1), math.Inf(-1)
		for _, e := range edges {
			p, q := e[0], e[1]
			if p.Y == q.Y || yc < p.Y || yc >= q.Y {
				continue
			}
			x := p.X + (yc-p.Y)*(q.X-p.X)/(q.Y-p.Y)
			left = math.Min(left, x)
			right = math.Max(right, x)
		}
		if !(left <= right) {
			continue
		}
		s := Span{Y: y, X0: ceilCoord(left - 0.5), X1: ceilCoord(right-0.5) - 1}
		spans = appendClipped(spans, s, clip)
	}
	return spans
}

// ceilCoord is the ceiling counterpart of floorCoord.
func ceilCoord(v float64) int {
	return -floorCoord(-v)
}

// canonical orders an edge bottom-up so shared edges evaluate identically
// from either triangle.
func canonical(p, q Point) [2]Point {
	if p.Y > q.Y || (p.Y == q.Y && p.X > q.X) {
		return [2]Point{q, p}
	}
	return [2]Point{p, q}
}

// FillFan paints a triangle fan: center joined to each consecutive pair of
// rim points.
func FillFan(t Target, center Point, rim []Point, col Color) {
	for i := 0; i+1 < len(rim); i++ {
		FillTriangle(t, center, rim[i], rim[i+1], col)
	}
}

// Disc returns the rim of a circle of radius r, closed by repeating the
// first angle at the end.
func Disc(center Point, r float64, segments int) []Point {
	if segments < 3 {
		segments = 3
	}
	rim := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		rim = append(rim, Point{X: center.X + r*math.Cos(angle), Y: center.Y + r*math.Sin(angle)})
	}
	return rim
}
