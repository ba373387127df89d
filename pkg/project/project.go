// Package project turns a computed layout into drawable primitives: wall
// loops around every room, line segments for doors and windows, and room
// labels.
//
// The result is a [Drawing], the only input the export sinks read. Openings
// are taken as given: their segments are not clipped against walls and are not
// required to lie on one.
package project

import (
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// Label placement relative to the room centroid, in plot units. The offset
// keeps the text clear of the centroid marker.
const (
	DefaultLabelOffsetX = -1.0
	DefaultLabelOffsetY = -0.3
	DefaultLabelHeight  = 0.6
)

// WallLoop is the outer and inner outline of one room's walls. Both polygons
// are closed, wound counter-clockwise and start at their bottom-left corner.
type WallLoop struct {
	Room  string
	Outer geom.Polygon
	Inner geom.Polygon
}

// OpeningSegment is a door or window drawn as a single segment.
type OpeningSegment struct {
	Name        string
	Kind        plan.OpeningKind
	Orientation plan.Orientation
	geom.Segment
}

// Label is a room name anchored near the room centroid.
type Label struct {
	Room   string
	Text   string
	Anchor geom.Point // text insertion point (baseline start)
	Marker geom.Point // room centroid
	Height float64    // text height in plot units
}

// Drawing holds every primitive an export sink needs.
type Drawing struct {
	Name          string
	Plot          plan.Plot
	WallThickness float64
	Boundary      geom.Polygon
	Corridor      geom.Rect
	Rooms         []layout.PlacedRoom
	Walls         []WallLoop
	Openings      []OpeningSegment
	Labels        []Label
}

// Option configures [Project].
type Option func(*projector)

type projector struct {
	offsetX, offsetY float64
	labelHeight      float64
}

// WithLabelOffset moves labels relative to the room centroid.
func WithLabelOffset(dx, dy float64) Option {
	return func(p *projector) { p.offsetX, p.offsetY = dx, dy }
}

// WithLabelHeight sets the label text height.
func WithLabelHeight(h float64) Option {
	return func(p *projector) { p.labelHeight = h }
}

// Project derives walls, opening segments and labels from a layout.
// It fails on the first room whose walls do not fit or the first opening
// with a non-positive width.
func Project(name string, l layout.Layout, openings []plan.Opening, opts ...Option) (Drawing, error) {
	p := projector{
		offsetX:     DefaultLabelOffsetX,
		offsetY:     DefaultLabelOffsetY,
		labelHeight: DefaultLabelHeight,
	}
	for _, opt := range opts {
		opt(&p)
	}

	d := Drawing{
		Name:          name,
		Plot:          l.Plot,
		WallThickness: l.Params.WallThickness,
		Boundary:      geom.Rect{W: l.Plot.Width, H: l.Plot.Height}.Polygon(),
		Corridor:      l.Corridor,
		Rooms:         append([]layout.PlacedRoom(nil), l.Rooms...),
		Walls:         make([]WallLoop, 0, len(l.Rooms)),
		Openings:      make([]OpeningSegment, 0, len(openings)),
		Labels:        make([]Label, 0, len(l.Rooms)),
	}

	for _, r := range l.Rooms {
		w, err := WallLoopFor(r, l.Params.WallThickness)
		if err != nil {
			return Drawing{}, err
		}
		d.Walls = append(d.Walls, w)
		d.Labels = append(d.Labels, p.label(r))
	}

	for _, o := range openings {
		seg, err := Segment(o)
		if err != nil {
			return Drawing{}, err
		}
		d.Openings = append(d.Openings, OpeningSegment{
			Name:        o.Name,
			Kind:        o.Kind,
			Orientation: o.Orientation,
			Segment:     seg,
		})
	}
	return d, nil
}

// WallLoopFor builds the wall outline of r for wall thickness t.
// Walls at least half as thick as the room's shorter side would leave an empty
// or inverted inner polygon, so t*2 >= min(w, h) is a geometry error.
func WallLoopFor(r layout.PlacedRoom, t float64) (WallLoop, error) {
	if t <= 0 {
		return WallLoop{}, errors.Configuration(r.Name, "wall thickness must be positive, got %g", t)
	}
	if 2*t >= r.MinSide() {
		return WallLoop{}, errors.Geometry(r.Name, "wall thickness %g leaves no interior in a %g x %g room", t, r.W, r.H)
	}
	return WallLoop{
		Room:  r.Name,
		Outer: r.Polygon(),
		Inner: r.Inset(t).Polygon(),
	}, nil
}

// Segment converts an opening to the segment it occupies: horizontal openings
// span x - width/2 to x + width/2 at height y, vertical ones span
// y - width/2 to y + width/2 at x.
func Segment(o plan.Opening) (geom.Segment, error) {
	if o.Width <= 0 {
		return geom.Segment{}, errors.Configuration(o.Name, "opening width must be positive, got %g", o.Width)
	}
	half := o.Width / 2
	switch o.Orientation {
	case plan.Horizontal:
		return geom.Segment{A: geom.Point{X: o.X - half, Y: o.Y}, B: geom.Point{X: o.X + half, Y: o.Y}}, nil
	case plan.Vertical:
		return geom.Segment{A: geom.Point{X: o.X, Y: o.Y - half}, B: geom.Point{X: o.X, Y: o.Y + half}}, nil
	}
	return geom.Segment{}, errors.Configuration(o.Name, "unknown orientation %q", o.Orientation)
}

func (p projector) label(r layout.PlacedRoom) Label {
	c := r.Center()
	return Label{
		Room:   r.Name,
		Text:   r.Name,
		Anchor: c.Add(p.offsetX, p.offsetY),
		Marker: c,
		Height: p.labelHeight,
	}
}
