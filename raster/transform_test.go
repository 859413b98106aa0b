package raster

import (
	"math"
	"testing"
)

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestTransformStack(t *testing.T) {
	s := NewTransformStack()
	s.Push()
	s.Translate(100, 50)
	s.Rotate(90)

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"origin", Point{0, 0}, Point{100, 50}},
		{"x axis", Point{10, 0}, Point{100, 60}},
		{"y axis", Point{0, 10}, Point{90, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Apply(tt.in); !near(got, tt.want) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	s.Pop()
	if got := s.Apply(Point{3, 4}); !near(got, Point{3, 4}) {
		t.Errorf("after Pop, Apply = %v, want identity", got)
	}
	s.Pop()
	if s.Depth() != 1 {
		t.Errorf("base matrix was popped, depth %d", s.Depth())
	}
}

func TestApplyAllCopies(t *testing.T) {
	s := NewTransformStack()
	s.Translate(1, 1)
	in := Polygon{{0, 0}, {1, 0}}
	out := s.ApplyAll(in)
	if in[0] != (Point{0, 0}) {
		t.Errorf("input polygon modified: %v", in)
	}
	if out[1] != (Point{2, 1}) {
		t.Errorf("ApplyAll = %v", out)
	}
}
