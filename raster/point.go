package raster

// Point is a location in world space. The origin is bottom-left and y points up.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Polygon is an implicitly closed list of vertices: the last vertex joins the first.
type Polygon []Point

// Translate offsets every vertex by (dx, dy) in place.
func (poly Polygon) Translate(dx, dy float64) {
	for i := range poly {
		poly[i].X += dx
		poly[i].Y += dy
	}
}
