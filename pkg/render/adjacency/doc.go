// Package adjacency renders which rooms of a floor plan border each other.
//
// # Overview
//
// [Build] turns a projected drawing into an undirected graph: one node per
// room plus one for the corridor, and an edge wherever two rectangles share
// a side or sit within a small gap of each other. Rooms that intersect (the
// inset room under the allow policy) get a dashed red edge.
//
// # Usage
//
//	g := adjacency.Build(drawing, adjacency.Options{})
//	dot := adjacency.ToDOT(g, adjacency.Options{})
//	svg, err := adjacency.RenderSVG(ctx, dot)
//
// [ToDOT] pins every node at its room center, scaled to points, and
// [RenderSVG] lays the graph out with neato so the diagram keeps the plan's
// arrangement.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package adjacency
