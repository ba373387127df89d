package sink

import (
	"encoding/json"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/project"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	layout *layout.Layout
}

// WithLayout adds the column partition, scale factors and tolerated overlaps
// of the layout the drawing was projected from.
func WithLayout(l layout.Layout) JSONOption {
	return func(r *jsonRenderer) { r.layout = &l }
}

type jsonOutput struct {
	Name          string        `json:"name,omitempty"`
	Width         float64       `json:"width"`
	Height        float64       `json:"height"`
	WallThickness float64       `json:"wall_thickness"`
	Boundary      []jsonPoint   `json:"boundary"`
	Corridor      jsonRect      `json:"corridor"`
	Rooms         []jsonRoom    `json:"rooms"`
	Openings      []jsonOpening `json:"openings"`
	Layout        *jsonLayout   `json:"layout,omitempty"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonRoom struct {
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Role     string      `json:"role"`
	Rect     jsonRect    `json:"rect"`
	Area     float64     `json:"area"`
	Outer    []jsonPoint `json:"outer,omitempty"`
	Inner    []jsonPoint `json:"inner,omitempty"`
	Label    *jsonLabel  `json:"label,omitempty"`
}

type jsonLabel struct {
	Text   string    `json:"text"`
	Anchor jsonPoint `json:"anchor"`
	Marker jsonPoint `json:"marker"`
	Height float64   `json:"height"`
}

type jsonOpening struct {
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Orientation string    `json:"orientation"`
	From        jsonPoint `json:"from"`
	To          jsonPoint `json:"to"`
}

type jsonLayout struct {
	LeftColumnWidth    float64       `json:"left_column_width"`
	RightColumnWidth   float64       `json:"right_column_width"`
	LeftScale          float64       `json:"left_scale"`
	RightScale         float64       `json:"right_scale"`
	RightColumnFloored bool          `json:"right_column_floored,omitempty"`
	Overlaps           []jsonOverlap `json:"overlaps,omitempty"`
}

type jsonOverlap struct {
	Room  string `json:"room"`
	Other string `json:"other"`
}

// RenderJSON exports the drawing as an indented JSON document. Rooms keep the
// drawing's order and carry their wall loops and label.
func RenderJSON(d project.Drawing, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	walls := make(map[string]project.WallLoop, len(d.Walls))
	for _, w := range d.Walls {
		walls[w.Room] = w
	}
	labels := make(map[string]project.Label, len(d.Labels))
	for _, l := range d.Labels {
		labels[l.Room] = l
	}

	out := jsonOutput{
		Name:          d.Name,
		Width:         d.Plot.Width,
		Height:        d.Plot.Height,
		WallThickness: d.WallThickness,
		Boundary:      toJSONPoints(d.Boundary),
		Corridor:      toJSONRect(d.Corridor),
		Rooms:         make([]jsonRoom, 0, len(d.Rooms)),
		Openings:      make([]jsonOpening, 0, len(d.Openings)),
	}

	for _, room := range d.Rooms {
		jr := jsonRoom{
			Name:     room.Name,
			Category: string(room.Category),
			Role:     string(room.Role),
			Rect:     toJSONRect(room.Rect),
			Area:     room.Area(),
		}
		if w, ok := walls[room.Name]; ok {
			jr.Outer = toJSONPoints(w.Outer)
			jr.Inner = toJSONPoints(w.Inner)
		}
		if l, ok := labels[room.Name]; ok {
			jr.Label = &jsonLabel{
				Text:   l.Text,
				Anchor: jsonPoint(l.Anchor),
				Marker: jsonPoint(l.Marker),
				Height: l.Height,
			}
		}
		out.Rooms = append(out.Rooms, jr)
	}

	for _, o := range d.Openings {
		out.Openings = append(out.Openings, jsonOpening{
			Name:        o.Name,
			Kind:        string(o.Kind),
			Orientation: string(o.Orientation),
			From:        jsonPoint(o.A),
			To:          jsonPoint(o.B),
		})
	}

	if l := r.layout; l != nil {
		out.Layout = &jsonLayout{
			LeftColumnWidth:    l.LeftColumnWidth,
			RightColumnWidth:   l.RightColumnWidth,
			LeftScale:          l.LeftScale,
			RightScale:         l.RightScale,
			RightColumnFloored: l.RightColumnFloored,
		}
		for _, ov := range l.Overlaps {
			out.Layout.Overlaps = append(out.Layout.Overlaps, jsonOverlap(ov))
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Export("json", err)
	}
	return data, nil
}

func toJSONPoints(p geom.Polygon) []jsonPoint {
	out := make([]jsonPoint, len(p))
	for i, pt := range p {
		out[i] = jsonPoint(pt)
	}
	return out
}

func toJSONRect(r geom.Rect) jsonRect {
	return jsonRect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}
