package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/plan"
)

func room(name string, x, y, w, h float64) layout.PlacedRoom {
	return layout.PlacedRoom{Name: name, Category: plan.Other, Rect: geom.Rect{X: x, Y: y, W: w, H: h}}
}

func TestWallLoopFor(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		t    float64
	}{
		{"square", 10, 10, 0.5},
		{"wide", 12.5, 9.3333, 0.5},
		{"thin walls", 3, 2, 0.01},
		{"just fits", 2, 4, 0.999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop, err := WallLoopFor(room("R", 1, 2, tt.w, tt.h), tt.t)
			require.NoError(t, err)

			assert.Len(t, loop.Outer, 5)
			assert.Len(t, loop.Inner, 5)
			assert.True(t, loop.Outer.Closed())
			assert.True(t, loop.Inner.Closed())
			assert.Equal(t, geom.Point{X: 1, Y: 2}, loop.Outer[0])
			assert.Equal(t, geom.Point{X: 1 + tt.t, Y: 2 + tt.t}, loop.Inner[0])

			assert.InDelta(t, tt.w*tt.h, loop.Outer.Area(), 1e-9)
			assert.InDelta(t, (tt.w-2*tt.t)*(tt.h-2*tt.t), loop.Inner.Area(), 1e-9)

			outerCCW := loop.Outer.SignedArea() > 0
			innerCCW := loop.Inner.SignedArea() > 0
			assert.Equal(t, outerCCW, innerCCW, "same winding")
		})
	}
}

func TestWallLoopForTooThick(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		t    float64
	}{
		{"equal to half", 4, 10, 2},
		{"equal to half of height", 10, 3, 1.5},
		{"thicker than room", 2, 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WallLoopFor(room("Closet", 0, 0, tt.w, tt.h), tt.t)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeGeometry))
			assert.Equal(t, "Closet", errors.GetSubject(err))
		})
	}
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		o    plan.Opening
		want geom.Segment
	}{
		{
			name: "horizontal",
			o:    plan.Opening{Name: "d", X: 6, Y: 12, Width: 3, Orientation: plan.Horizontal},
			want: geom.Segment{A: geom.Point{X: 4.5, Y: 12}, B: geom.Point{X: 7.5, Y: 12}},
		},
		{
			name: "vertical",
			o:    plan.Opening{Name: "d", X: 12, Y: 6, Width: 3, Orientation: plan.Vertical},
			want: geom.Segment{A: geom.Point{X: 12, Y: 4.5}, B: geom.Point{X: 12, Y: 7.5}},
		},
		{
			name: "outside plot is not clipped",
			o:    plan.Opening{Name: "w", X: -10, Y: 100, Width: 4, Orientation: plan.Horizontal},
			want: geom.Segment{A: geom.Point{X: -12, Y: 100}, B: geom.Point{X: -8, Y: 100}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Segment(tt.o)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.o.Width, got.Length(), 1e-12)
		})
	}
}

func TestSegmentErrors(t *testing.T) {
	_, err := Segment(plan.Opening{Name: "door-9", Width: 0, Orientation: plan.Vertical})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfiguration))
	assert.Equal(t, "door-9", errors.GetSubject(err))

	_, err = Segment(plan.Opening{Name: "door-9", Width: 1})
	assert.Error(t, err)
}

func TestProject(t *testing.T) {
	p := plan.Reference()
	l, err := layout.Build(p)
	require.NoError(t, err)

	d, err := Project(p.Name, l, p.WithDefaults().Openings)
	require.NoError(t, err)

	assert.Equal(t, "reference-50x30", d.Name)
	assert.Equal(t, 0.5, d.WallThickness)
	assert.Equal(t, geom.Rect{W: 50, H: 30}.Polygon(), d.Boundary)
	assert.Equal(t, l.Corridor, d.Corridor)
	assert.Len(t, d.Walls, 7)
	assert.Len(t, d.Labels, 7)
	require.Len(t, d.Openings, 3)
	assert.Equal(t, plan.Window, d.Openings[2].Kind)

	kitchen := d.Labels[3]
	assert.Equal(t, "Kitchen", kitchen.Text)
	assert.Equal(t, geom.Point{X: 33.5, Y: 25.5}, kitchen.Marker)
	assert.InDelta(t, 32.5, kitchen.Anchor.X, 1e-12)
	assert.InDelta(t, 25.2, kitchen.Anchor.Y, 1e-12)
	assert.Equal(t, DefaultLabelHeight, kitchen.Height)
}

func TestProjectLabelOptions(t *testing.T) {
	l := layout.Layout{
		Plot:   plan.Plot{Width: 10, Height: 10},
		Params: plan.Params{WallThickness: 0.1},
		Rooms:  []layout.PlacedRoom{room("A", 0, 0, 4, 4)},
	}

	d, err := Project("x", l, nil, WithLabelOffset(0, 0), WithLabelHeight(1.2))
	require.NoError(t, err)
	require.Len(t, d.Labels, 1)
	assert.Equal(t, geom.Point{X: 2, Y: 2}, d.Labels[0].Anchor)
	assert.Equal(t, 1.2, d.Labels[0].Height)
	assert.Empty(t, d.Openings)
}

func TestProjectRejectsThickWalls(t *testing.T) {
	l := layout.Layout{
		Plot:   plan.Plot{Width: 10, Height: 10},
		Params: plan.Params{WallThickness: 1},
		Rooms:  []layout.PlacedRoom{room("A", 0, 0, 4, 4), room("Nook", 5, 5, 2, 3)},
	}

	_, err := Project("x", l, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeGeometry))
	assert.Equal(t, "Nook", errors.GetSubject(err))
}
