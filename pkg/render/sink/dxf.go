package sink

import (
	"bytes"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/plan"
	"github.com/matzehuels/floorplan/pkg/project"
)

// DXF layer names. Every entity of a drawing lands on exactly one of them.
const (
	LayerBoundary = "BOUNDARY"
	LayerCorridor = "CORRIDOR"
	LayerWalls    = "WALLS"
	LayerDoors    = "DOORS"
	LayerWindows  = "WINDOWS"
	LayerLabels   = "LABELS"
)

// RenderDXF writes the drawing as an AutoCAD DXF document in plot units.
//
// The plot boundary, corridor and both wall loops of every room are closed
// LWPOLYLINEs; openings are LINEs; labels are TEXT entities at their anchor.
// DXF shares the plan's y-up axis, so coordinates are written unchanged.
func RenderDXF(d project.Drawing) ([]byte, error) {
	w := &dxfWriter{dw: dxf.NewDrawing()}

	w.layer(LayerBoundary, color.White)
	if len(d.Boundary) > 0 {
		w.polyline(d.Boundary)
	}

	w.layer(LayerCorridor, color.Magenta)
	if d.Corridor.W > 0 && d.Corridor.H > 0 {
		w.polyline(d.Corridor.Polygon())
	}

	w.layer(LayerWalls, color.Yellow)
	for _, wall := range d.Walls {
		w.polyline(wall.Outer)
		w.polyline(wall.Inner)
	}

	w.layer(LayerDoors, color.Red)
	for _, o := range d.Openings {
		if o.Kind == plan.Door {
			w.line(o.Segment)
		}
	}

	w.layer(LayerWindows, color.Cyan)
	for _, o := range d.Openings {
		if o.Kind == plan.Window {
			w.line(o.Segment)
		}
	}

	w.layer(LayerLabels, color.Green)
	for _, l := range d.Labels {
		w.text(l)
	}

	return w.bytes()
}

// dxfWriter keeps the first entity error and skips everything after it.
type dxfWriter struct {
	dw  *drawing.Drawing
	err error
}

func (w *dxfWriter) layer(name string, cl color.ColorNumber) {
	if w.err == nil {
		_, w.err = w.dw.AddLayer(name, cl, dxf.DefaultLineType, true)
	}
}

func (w *dxfWriter) polyline(p geom.Polygon) {
	if w.err == nil {
		_, w.err = w.dw.LwPolyline(true, vertices(p)...)
	}
}

func (w *dxfWriter) line(s geom.Segment) {
	if w.err == nil {
		_, w.err = w.dw.Line(s.A.X, s.A.Y, 0, s.B.X, s.B.Y, 0)
	}
}

func (w *dxfWriter) text(l project.Label) {
	if w.err == nil {
		_, w.err = w.dw.Text(l.Text, l.Anchor.X, l.Anchor.Y, 0, l.Height)
	}
}

func (w *dxfWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, errors.Export("dxf", w.err)
	}
	var buf bytes.Buffer
	if _, err := w.dw.WriteTo(&buf); err != nil {
		return nil, errors.Export("dxf", err)
	}
	return buf.Bytes(), nil
}

// vertices drops the repeated closing point; LWPOLYLINE closes itself.
func vertices(p geom.Polygon) [][]float64 {
	n := len(p)
	if p.Closed() {
		n--
	}
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = []float64{p[i].X, p[i].Y}
	}
	return out
}
