package raster

import "math"

// Matrix is a 2D affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translation returns a transform that moves points by (x, y).
func Translation(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Rotation returns a counter-clockwise rotation by deg degrees.
func Rotation(deg float64) Matrix {
	rad := deg * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m * other: other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a single point.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformStack mirrors the push/pop model-view stack of immediate-mode APIs.
// Translate and Rotate post-multiply the current matrix, so the most recent
// call is applied to vertices first.
type TransformStack struct {
	stack []Matrix
}

// NewTransformStack returns a stack holding only the identity.
func NewTransformStack() *TransformStack {
	s := new(TransformStack)
	s.stack = []Matrix{Identity()}
	return s
}

// Current returns the matrix on top of the stack.
func (s *TransformStack) Current() Matrix {
	return s.stack[len(s.stack)-1]
}

// Push duplicates the current matrix.
func (s *TransformStack) Push() {
	s.stack = append(s.stack, s.Current())
}

// Pop discards the current matrix. The base matrix is never popped.
func (s *TransformStack) Pop() {
	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Depth returns the number of matrices on the stack.
func (s *TransformStack) Depth() int {
	return len(s.stack)
}

// Translate moves the local frame by (x, y).
func (s *TransformStack) Translate(x, y float64) {
	s.stack[len(s.stack)-1] = s.Current().Multiply(Translation(x, y))
}

// Rotate turns the local frame by deg degrees counter-clockwise.
func (s *TransformStack) Rotate(deg float64) {
	s.stack[len(s.stack)-1] = s.Current().Multiply(Rotation(deg))
}

// Apply maps a point from the local frame to world space.
func (s *TransformStack) Apply(p Point) Point {
	return s.Current().Apply(p)
}

// ApplyAll returns a copy of poly mapped to world space.
func (s *TransformStack) ApplyAll(poly Polygon) Polygon {
	m := s.Current()
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = m.Apply(p)
	}
	return out
}
