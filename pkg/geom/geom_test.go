package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 10, H: 4}

	assert.Equal(t, 11.0, r.Right())
	assert.Equal(t, 6.0, r.Top())
	assert.Equal(t, 40.0, r.Area())
	assert.Equal(t, Point{X: 6, Y: 4}, r.Center())
	assert.Equal(t, 4.0, r.MinSide())
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 6}.Inset(0.5)
	assert.Equal(t, Rect{X: 0.5, Y: 0.5, W: 9, H: 5}, r)
}

func TestRectPolygon(t *testing.T) {
	p := Rect{X: 1, Y: 1, W: 4, H: 2}.Polygon()

	assert.Len(t, p, 5)
	assert.True(t, p.Closed())
	assert.Equal(t, Point{X: 1, Y: 1}, p[0], "starts at bottom-left")
	assert.Greater(t, p.SignedArea(), 0.0, "counter-clockwise winding")
	assert.InDelta(t, 8.0, p.Area(), 1e-12)
}

func TestRectWithin(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{X: 1, Y: 1, W: 5, H: 5}, true},
		{"touches edges", Rect{X: 0, Y: 0, W: 50, H: 30}, true},
		{"float drift", Rect{X: 0, Y: 0, W: 50 + 1e-12, H: 30}, true},
		{"negative x", Rect{X: -1, Y: 0, W: 5, H: 5}, false},
		{"past right", Rect{X: 46, Y: 0, W: 5, H: 5}, false},
		{"past top", Rect{X: 0, Y: 26, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Within(50, 30))
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"disjoint", Rect{X: 20, Y: 0, W: 5, H: 5}, false},
		{"shared edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"stacked", Rect{X: 0, Y: 10, W: 10, H: 5}, false},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.o))
			assert.Equal(t, tt.want, tt.o.Overlaps(base), "symmetric")
		})
	}
}

func TestPolygonClosed(t *testing.T) {
	assert.False(t, Polygon{}.Closed())
	assert.False(t, Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}}.Closed())
	assert.True(t, Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}.Closed())
}

func TestSegment(t *testing.T) {
	s := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 3, Y: 4}}
	assert.Equal(t, 5.0, s.Length())
	assert.Equal(t, Point{X: 1.5, Y: 2}, s.Midpoint())
}
