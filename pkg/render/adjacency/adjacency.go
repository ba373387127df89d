package adjacency

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/plan"
	"github.com/matzehuels/floorplan/pkg/project"
	"github.com/matzehuels/floorplan/pkg/render/sink"
)

const (
	// DefaultTolerance is the widest gap, in plot units, across which two
	// rooms still count as neighbours.
	DefaultTolerance = 1.0
	// DefaultScale maps plot units to diagram points.
	DefaultScale = 18.0

	corridorID = "corridor"
)

// Node is a room, or the corridor, in the adjacency graph.
type Node struct {
	ID       string
	Label    string
	Category plan.Category
	Rect     geom.Rect
	Corridor bool
}

// Edge joins two neighbouring nodes. Overlap marks rooms whose rectangles
// intersect rather than touch.
type Edge struct {
	From, To string
	Overlap  bool
}

// Graph is the room adjacency graph of a drawing.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Options configures [Build] and [ToDOT].
type Options struct {
	// Tolerance is the widest gap still counted as adjacent. Nil means
	// DefaultTolerance; zero counts only rooms in exact contact.
	Tolerance *float64
	// Scale maps plot units to diagram points. Zero means DefaultScale.
	Scale float64
}

// Tolerance returns a pointer to v for use in [Options].
func Tolerance(v float64) *float64 { return &v }

func (o Options) withDefaults() Options {
	if o.Tolerance == nil {
		o.Tolerance = Tolerance(DefaultTolerance)
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	return o
}

// Build derives the adjacency graph of d. Two rectangles are adjacent when
// they overlap along one axis and the gap along the other is at most the
// tolerance; corner contact does not count. Nodes keep the drawing's room
// order with the corridor last.
func Build(d project.Drawing, opts Options) Graph {
	opts = opts.withDefaults()

	var g Graph
	for _, r := range d.Rooms {
		g.Nodes = append(g.Nodes, Node{
			ID:       "room:" + r.Name,
			Label:    r.Name,
			Category: r.Category,
			Rect:     r.Rect,
		})
	}
	if d.Corridor.W > 0 && d.Corridor.H > 0 {
		g.Nodes = append(g.Nodes, Node{ID: corridorID, Label: "Corridor", Rect: d.Corridor, Corridor: true})
	}

	for i := range g.Nodes {
		for j := i + 1; j < len(g.Nodes); j++ {
			a, b := g.Nodes[i], g.Nodes[j]
			adjacent, overlap := touches(a.Rect, b.Rect, math.Max(0, *opts.Tolerance))
			if adjacent {
				g.Edges = append(g.Edges, Edge{From: a.ID, To: b.ID, Overlap: overlap})
			}
		}
	}
	return g
}

func touches(a, b geom.Rect, tol float64) (adjacent, overlap bool) {
	gapX := math.Max(a.X-b.Right(), b.X-a.Right())
	gapY := math.Max(a.Y-b.Top(), b.Y-a.Top())
	switch {
	case gapX < -geom.Eps && gapY < -geom.Eps:
		return true, true
	case gapX < -geom.Eps:
		return gapY <= tol+geom.Eps, false
	case gapY < -geom.Eps:
		return gapX <= tol+geom.Eps, false
	}
	return false, false
}

// ToDOT converts g to Graphviz DOT source for the neato engine. Node
// positions are pinned to the room centers so the diagram keeps the floor
// plan's arrangement.
func ToDOT(g Graph, opts Options) string {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=true;\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(fmtAttrs(n, opts.Scale), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if e.Overlap {
			fmt.Fprintf(&buf, "  %q -- %q [style=dashed, color=\"#c0392b\"];\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n Node, scale float64) []string {
	c := n.Rect.Center()
	label := n.Label
	if !n.Corridor {
		label = fmt.Sprintf("%s\n%.1f x %.1f", n.Label, n.Rect.W, n.Rect.H)
	}
	attrs := []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("pos=\"%.2f,%.2f!\"", c.X*scale, c.Y*scale),
	}
	if n.Corridor {
		return append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=\"#f7f7f7\"")
	}
	return append(attrs, fmt.Sprintf("fillcolor=%q", sink.CategoryFill(n.Category)))
}

// RenderSVG lays out DOT source with neato and renders it to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Export("adjacency", fmt.Errorf("init graphviz: %w", err))
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Export("adjacency", fmt.Errorf("parse DOT: %w", err))
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Export("adjacency", fmt.Errorf("render: %w", err))
	}
	return buf.Bytes(), nil
}

// Render builds the adjacency graph of d and renders it to SVG.
func Render(ctx context.Context, d project.Drawing, opts Options) ([]byte, error) {
	return RenderSVG(ctx, ToDOT(Build(d, opts), opts))
}
