package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/plan"
	"github.com/matzehuels/floorplan/pkg/project"
)

// Defaults for [RenderSVG].
const (
	DefaultSVGScale   = 20.0 // pixels per plot unit
	DefaultSVGPadding = 1.0  // plot units around the boundary
	svgDecimals       = 3
)

var categoryFill = map[plan.Category]string{
	plan.Bedroom:  "#dbe9f6",
	plan.Bathroom: "#d5f0ea",
	plan.Kitchen:  "#fbe6c8",
	plan.Living:   "#f6dcdc",
	plan.Dining:   "#e9e0f4",
	plan.Other:    "#eeeeee",
}

const (
	boundaryStyle = "fill:none;stroke:#222222;stroke-width:0.15"
	corridorStyle = "fill:#f7f7f7;stroke:#9e9e9e;stroke-width:0.05;stroke-dasharray:0.4,0.3"
	wallStyle     = "fill:#4a4a4a;fill-rule:evenodd;stroke:none"
	doorStroke    = "#c0392b"
	windowStroke  = "#2e86c1"
	labelStyle    = "font-family:sans-serif;fill:#222222"
	markerStyle   = "stroke:#222222;stroke-width:0.05"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale   float64
	padding float64
	markers bool
}

// WithSVGScale sets the output size in pixels per plot unit.
func WithSVGScale(px float64) SVGOption { return func(r *svgRenderer) { r.scale = px } }

// WithPadding sets the blank border around the plot, in plot units.
func WithPadding(p float64) SVGOption { return func(r *svgRenderer) { r.padding = p } }

// WithoutMarkers omits the centroid cross drawn under every label.
func WithoutMarkers() SVGOption { return func(r *svgRenderer) { r.markers = false } }

// RenderSVG draws the plan as an SVG document.
//
// Plot coordinates grow upward while SVG coordinates grow downward, so every
// y value is written as plotH - y. The viewBox is in plot units; the width and
// height attributes are in pixels. Each drawing layer is a <g> with a fixed
// id: boundary, corridor, rooms, walls, openings and labels.
func RenderSVG(d project.Drawing, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{scale: DefaultSVGScale, padding: DefaultSVGPadding, markers: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsInf(r.scale, 0) || math.IsNaN(r.scale) {
		return nil, errors.Configuration("svg", "scale must be positive, got %g", r.scale)
	}
	if r.padding < 0 {
		return nil, errors.Configuration("svg", "padding must not be negative, got %g", r.padding)
	}
	if d.Plot.Width <= 0 || d.Plot.Height <= 0 {
		return nil, errors.Configuration("svg", "plot %g x %g has no area", d.Plot.Width, d.Plot.Height)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Decimals = svgDecimals

	f := flipper{h: d.Plot.Height}
	vw, vh := d.Plot.Width+2*r.padding, d.Plot.Height+2*r.padding
	origin := 0 - r.padding // never -0
	canvas.Startview(vw*r.scale, vh*r.scale, origin, origin, vw, vh)
	if d.Name != "" {
		canvas.Title(d.Name)
	}
	canvas.Desc(buildinfo.Generator())

	canvas.Gid("boundary")
	if len(d.Boundary) > 0 {
		xs, ys := f.points(d.Boundary)
		canvas.Polygon(xs, ys, boundaryStyle)
	}
	canvas.Gend()

	canvas.Gid("corridor")
	if d.Corridor.W > 0 && d.Corridor.H > 0 {
		canvas.Rect(d.Corridor.X, f.y(d.Corridor.Top()), d.Corridor.W, d.Corridor.H, corridorStyle)
	}
	canvas.Gend()

	canvas.Gid("rooms")
	for _, room := range d.Rooms {
		canvas.Rect(room.X, f.y(room.Top()), room.W, room.H,
			attr("id", "room-"+room.Name),
			attr("class", "room "+string(room.Category)),
			"fill:"+CategoryFill(room.Category)+";stroke:none")
	}
	canvas.Gend()

	canvas.Gid("walls")
	for _, w := range d.Walls {
		canvas.Path(f.loops(svgDecimals, w.Outer, w.Inner), attr("id", "wall-"+w.Room), wallStyle)
	}
	canvas.Gend()

	canvas.Gid("openings")
	width := openingStroke(d.WallThickness)
	for _, o := range d.Openings {
		color := doorStroke
		if o.Kind == plan.Window {
			color = windowStroke
		}
		canvas.Line(o.A.X, f.y(o.A.Y), o.B.X, f.y(o.B.Y),
			attr("id", string(o.Kind)+"-"+o.Name),
			fmt.Sprintf("stroke:%s;stroke-width:%s;stroke-linecap:butt", color, num(width)))
	}
	canvas.Gend()

	canvas.Gid("labels")
	for _, l := range d.Labels {
		canvas.Text(l.Anchor.X, f.y(l.Anchor.Y), l.Text, labelStyle+";font-size:"+num(l.Height)+"px")
		if r.markers {
			const arm = 0.2
			mx, my := l.Marker.X, f.y(l.Marker.Y)
			canvas.Line(mx-arm, my, mx+arm, my, markerStyle)
			canvas.Line(mx, my-arm, mx, my+arm, markerStyle)
		}
	}
	canvas.Gend()

	canvas.End()
	return buf.Bytes(), nil
}

// flipper maps plot coordinates to SVG user space.
type flipper struct{ h float64 }

func (f flipper) y(y float64) float64 { return f.h - y }

func (f flipper) points(p geom.Polygon) (xs, ys []float64) {
	xs = make([]float64, len(p))
	ys = make([]float64, len(p))
	for i, pt := range p {
		xs[i], ys[i] = pt.X, f.y(pt.Y)
	}
	return xs, ys
}

// loops writes closed polygons as one path. With fill-rule evenodd the area
// between an outer and an inner loop is filled and the inner area is not.
func (f flipper) loops(decimals int, polys ...geom.Polygon) string {
	var sb strings.Builder
	for _, p := range polys {
		for i, pt := range p {
			if i == len(p)-1 && p.Closed() {
				break
			}
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%s%.*f,%.*f", cmd, decimals, pt.X, decimals, f.y(pt.Y))
		}
		sb.WriteString(" Z")
	}
	return sb.String()
}

// CategoryFill returns the fill color rooms of category c are drawn with.
func CategoryFill(c plan.Category) string {
	if fill, ok := categoryFill[c]; ok {
		return fill
	}
	return categoryFill[plan.Other]
}

// openingStroke is a little wider than the wall band an opening cuts.
func openingStroke(wall float64) float64 {
	return math.Max(wall*1.2, 0.2)
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
