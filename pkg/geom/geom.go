// Package geom provides the planar value types used by the floor-plan pipeline.
//
// All coordinates are real-valued, in the caller's unit (feet or meters), with
// the y-axis pointing up and the plot origin at (0, 0). Every type is a plain
// value: operations return new values and never mutate their receivers.
package geom

import "math"

// Eps is the tolerance used for containment and overlap checks. It absorbs
// floating-point drift from proportional scaling without hiding real overlaps.
const Eps = 1e-9

// Point is a position in plot-local coordinates.
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y float64 // bottom-left corner
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Area returns the rectangle's area.
func (r Rect) Area() float64 { return r.W * r.H }

// Center returns the centroid of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// MinSide returns the shorter of width and height.
func (r Rect) MinSide() float64 { return math.Min(r.W, r.H) }

// Inset shrinks the rectangle by d on every side.
// The result may have non-positive width or height; callers validate.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Polygon returns the closed outline of r: five points, first equal to last,
// counter-clockwise starting at the bottom-left corner.
func (r Rect) Polygon() Polygon {
	return Polygon{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Top()},
		{X: r.X, Y: r.Top()},
		{X: r.X, Y: r.Y},
	}
}

// Within reports whether r lies inside the box [0, w] x [0, h].
func (r Rect) Within(w, h float64) bool {
	return r.X >= -Eps && r.Y >= -Eps && r.Right() <= w+Eps && r.Top() <= h+Eps
}

// Overlaps reports whether the interiors of r and o intersect.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right()-Eps && o.X < r.Right()-Eps &&
		r.Y < o.Top()-Eps && o.Y < r.Top()-Eps
}

// Polygon is an ordered list of vertices. Closed polygons repeat the first
// vertex at the end.
type Polygon []Point

// Closed reports whether the first and last vertices coincide.
func (p Polygon) Closed() bool {
	if len(p) < 2 {
		return false
	}
	return p[0] == p[len(p)-1]
}

// SignedArea returns the shoelace area of a closed polygon: positive for
// counter-clockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	var a float64
	for i := 0; i+1 < len(p); i++ {
		a += p[i].X*p[i+1].Y - p[i+1].X*p[i].Y
	}
	return a / 2
}

// Area returns the absolute enclosed area of a closed polygon.
func (p Polygon) Area() float64 { return math.Abs(p.SignedArea()) }

// Segment is a straight line between two points.
type Segment struct {
	A, B Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 { return math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y) }

// Midpoint returns the point halfway between A and B.
func (s Segment) Midpoint() Point { return Point{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2} }
