// Package layout places rooms on the plot.
//
// # Overview
//
// The plot is split into three vertical bands: a left column, a fixed-width
// corridor and a right column. [Build] fills them in one deterministic pass:
//
//  1. Column widths. The left column is as wide as its widest room plus the
//     walls and margin. If that squeezes the right column below its floor,
//     the right column is pinned to the floor and the left column takes the
//     rest.
//  2. Left stack. Rooms are stacked bottom-up without gaps. Their heights are
//     scaled by one common factor so the stack fills the usable height
//     exactly, whatever their planned proportions.
//  3. Corridor. A strip spanning the usable height right of the left column.
//  4. Right stack. Rooms are placed top-down, each capped at a share of the
//     usable height. If the capped heights plus gaps still overflow, they are
//     scaled down to fit exactly.
//  5. Inset room. At most one room is placed flush against the inner edge of
//     the left column and centered vertically, at its planned size.
//
// Steps 2 and 4 share the same exact-fit rule, implemented once in
// [ScaleToFit].
//
// # Coordinates
//
// Rectangles are anchored at their bottom-left corner, in plot units, with the
// y-axis pointing up and the plot origin at (0, 0).
//
// # Errors
//
// Structural problems with the plan (an empty column group, a corridor wider
// than the plot) are CONFIGURATION_ERROR. A room that ends up outside the plot
// or overlapping another room is GEOMETRY_ERROR, except the inset room, whose
// overlaps follow the plan's inset overlap policy.
package layout

import (
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// PlacedRoom is a room rectangle produced by [Build].
type PlacedRoom struct {
	Name     string
	Category plan.Category
	Role     plan.Role
	geom.Rect
}

// Overlap records two rooms whose rectangles intersect. Only the inset room
// may produce one, and only under [plan.OverlapAllow].
type Overlap struct {
	Room, Other string
}

// Layout is the complete placement of one plan.
type Layout struct {
	Plot   plan.Plot
	Params plan.Params

	LeftColumnWidth  float64
	RightColumnWidth float64
	Corridor         geom.Rect

	// Rooms are ordered left stack bottom-up, right stack top-down, inset last.
	Rooms []PlacedRoom

	// LeftScale is the factor applied to left-stack planned heights.
	LeftScale float64
	// RightScale is the factor applied to capped right-stack heights; 1 when
	// they fit without scaling.
	RightScale float64
	// RightColumnFloored reports whether the right-column floor kicked in.
	RightColumnFloored bool

	// Overlaps lists tolerated inset overlaps.
	Overlaps []Overlap
}

// Room returns the placed room with the given name.
func (l Layout) Room(name string) (PlacedRoom, bool) {
	for _, r := range l.Rooms {
		if r.Name == name {
			return r, true
		}
	}
	return PlacedRoom{}, false
}

// ByRole returns the placed rooms of one column group in placement order.
func (l Layout) ByRole(role plan.Role) []PlacedRoom {
	var out []PlacedRoom
	for _, r := range l.Rooms {
		if r.Role == role {
			out = append(out, r)
		}
	}
	return out
}

// Coverage returns the share of the plot area covered by rooms and corridor.
// Overlapping areas are counted twice.
func (l Layout) Coverage() float64 {
	total := l.Plot.Width * l.Plot.Height
	if total == 0 {
		return 0
	}
	covered := l.Corridor.Area()
	for _, r := range l.Rooms {
		covered += r.Area()
	}
	return covered / total
}
