package layout

import (
	"math"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// defaultRightFractions are the height shares of a three-room right stack,
// top to bottom.
var defaultRightFractions = []float64{0.25, 0.45, 0.20}

// Build computes the placement of every room in p.
//
// Build applies plan defaults and validates the plan first, so callers may
// pass a freshly decoded or hand-built plan. It is a pure function: the same
// plan always yields the same layout.
func Build(p plan.Plan) (Layout, error) {
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return Layout{}, err
	}
	reg, err := p.Registry()
	if err != nil {
		return Layout{}, err
	}

	left := reg.ByRole(plan.RoleLeft)
	right := reg.ByRole(plan.RoleRight)
	insets := reg.ByRole(plan.RoleInset)
	if err := checkGroups(left, right, insets); err != nil {
		return Layout{}, err
	}

	pr := p.Params
	plotW, plotH, m := p.Plot.Width, p.Plot.Height, pr.Margin

	if pr.CorridorWidth >= plotW-2*m {
		return Layout{}, errors.Configuration("", "corridor width %g leaves no room within usable width %g", pr.CorridorWidth, plotW-2*m)
	}
	usableH := plotH - 2*m
	if usableH <= 0 {
		return Layout{}, errors.Configuration("", "margin %g leaves no usable height on a plot %g high", m, plotH)
	}

	var inset *plan.RoomSpec
	if len(insets) == 1 {
		inset = &insets[0]
	}

	l := Layout{Plot: p.Plot, Params: pr}
	l.LeftColumnWidth, l.RightColumnWidth, l.RightColumnFloored = Columns(
		plotW, pr.CorridorWidth, m, pr.WallThickness, maxWidth(left), rightFloor(pr, inset))

	leftRoomW := l.LeftColumnWidth - 2*pr.WallThickness - m/2
	if leftRoomW <= 0 {
		return Layout{}, errors.Configuration("", "left column width %g is too narrow for walls and margin", l.LeftColumnWidth)
	}
	rightRoomW := l.RightColumnWidth - 2*m
	if rightRoomW <= 0 {
		return Layout{}, errors.Configuration("", "right column width %g is too narrow for its margins", l.RightColumnWidth)
	}

	leftRooms, scale, err := stackLeft(left, m, leftRoomW, usableH)
	if err != nil {
		return Layout{}, err
	}
	l.LeftScale = scale

	l.Corridor = geom.Rect{X: l.LeftColumnWidth + m/2, Y: m, W: pr.CorridorWidth, H: usableH}

	rightX := l.Corridor.Right() + m/2
	rightRooms, rscale, err := stackRight(right, rightX, rightRoomW, plotH, m)
	if err != nil {
		return Layout{}, err
	}
	l.RightScale = rscale

	l.Rooms = append(leftRooms, rightRooms...)
	if inset != nil {
		l.Rooms = append(l.Rooms, placeInset(*inset, l.LeftColumnWidth, plotH, m))
	}

	for _, r := range l.Rooms {
		if !r.Within(plotW, plotH) {
			return Layout{}, errors.Geometry(r.Name, "room [%g, %g] x [%g, %g] exceeds the %g x %g plot",
				r.X, r.Right(), r.Y, r.Top(), plotW, plotH)
		}
	}

	overlaps, err := checkOverlaps(l.Rooms, pr.InsetOverlap)
	if err != nil {
		return Layout{}, err
	}
	l.Overlaps = overlaps

	return l, nil
}

func checkGroups(left, right, insets []plan.RoomSpec) error {
	if len(left) == 0 {
		return errors.Configuration("", "left stack has no rooms")
	}
	if len(right) == 0 {
		return errors.Configuration("", "right stack has no rooms")
	}
	if len(insets) > 1 {
		return errors.Configuration(insets[1].Name, "only one inset room is supported, %s is already inset", insets[0].Name)
	}
	return nil
}

// Columns partitions the plot width.
//
// The left column is the widest left-stack room plus two walls and one
// margin. The right column takes what remains after the corridor and two
// margins. When that is less than floor, the right column is set to floor and
// the left column shrinks to match; floored reports that case.
func Columns(plotW, corridorW, margin, wall, widest, floor float64) (left, right float64, floored bool) {
	left = widest + 2*wall + margin
	right = plotW - left - corridorW - 2*margin
	if right < floor {
		left = plotW - corridorW - 2*margin - floor
		right = floor
		floored = true
	}
	return left, right, floored
}

// rightFloor resolves the minimum right-column width: the plan's explicit
// value, else the inset room's planned width, else the package default.
func rightFloor(pr plan.Params, inset *plan.RoomSpec) float64 {
	switch {
	case pr.MinRightWidth > 0:
		return pr.MinRightWidth
	case inset != nil:
		return inset.Width
	default:
		return plan.DefaultMinRightWidth
	}
}

func maxWidth(specs []plan.RoomSpec) float64 {
	var w float64
	for _, s := range specs {
		w = math.Max(w, s.Width)
	}
	return w
}

// stackLeft stacks rooms bottom-up from y = margin with no gaps, scaling
// every planned height by one factor so the stack spans exactly usableH.
func stackLeft(specs []plan.RoomSpec, margin, width, usableH float64) ([]PlacedRoom, float64, error) {
	heights := make([]float64, len(specs))
	for i, s := range specs {
		heights[i] = s.Height
	}
	scaled, factor, err := ScaleToFit(heights, usableH)
	if err != nil {
		return nil, 0, err
	}

	rooms := make([]PlacedRoom, len(specs))
	y := margin
	for i, s := range specs {
		rooms[i] = PlacedRoom{
			Name:     s.Name,
			Category: s.Category,
			Role:     plan.RoleLeft,
			Rect:     geom.Rect{X: margin, Y: y, W: width, H: scaled[i]},
		}
		y += scaled[i]
	}
	return rooms, factor, nil
}

// stackRight places rooms top-down from plotH - margin, separated by half a
// margin. Each height is capped at its share of the usable height; if the
// capped heights and gaps overflow, they are scaled to fit exactly.
func stackRight(specs []plan.RoomSpec, x, width, plotH, margin float64) ([]PlacedRoom, float64, error) {
	avail := plotH - 2*margin
	gap := margin / 2
	gaps := gap * float64(len(specs)-1)
	if avail-gaps <= 0 {
		return nil, 0, errors.Configuration("", "right stack of %d rooms does not fit between its gaps", len(specs))
	}

	heights := make([]float64, len(specs))
	var sum float64
	for i, s := range specs {
		heights[i] = math.Min(s.Height, avail*rightFraction(specs, i))
		sum += heights[i]
	}

	factor := 1.0
	if sum+gaps > avail {
		var err error
		heights, factor, err = ScaleToFit(heights, avail-gaps)
		if err != nil {
			return nil, 0, err
		}
	}

	rooms := make([]PlacedRoom, len(specs))
	top := plotH - margin
	for i, s := range specs {
		y := top - heights[i]
		rooms[i] = PlacedRoom{
			Name:     s.Name,
			Category: s.Category,
			Role:     plan.RoleRight,
			Rect:     geom.Rect{X: x, Y: y, W: width, H: heights[i]},
		}
		top = y - gap
	}
	return rooms, factor, nil
}

// rightFraction returns the height share of the i-th right-stack room: its
// own fraction when set, the fixed three-room split for three rooms, an even
// split otherwise.
func rightFraction(specs []plan.RoomSpec, i int) float64 {
	if specs[i].Fraction > 0 {
		return specs[i].Fraction
	}
	if len(specs) == len(defaultRightFractions) {
		return defaultRightFractions[i]
	}
	return 1 / float64(len(specs))
}

// placeInset puts the inset room flush against the inner edge of the left
// column, half a margin short of the corridor, centered on the plot's
// mid-height. Its planned size is kept.
func placeInset(s plan.RoomSpec, leftColumnW, plotH, margin float64) PlacedRoom {
	return PlacedRoom{
		Name:     s.Name,
		Category: s.Category,
		Role:     plan.RoleInset,
		Rect: geom.Rect{
			X: leftColumnW - s.Width - margin/2,
			Y: plotH/2 - s.Height/2,
			W: s.Width,
			H: s.Height,
		},
	}
}

// checkOverlaps tests every pair of rooms. Overlaps involving the inset room
// are returned under OverlapAllow and rejected otherwise; any other overlap
// is always a geometry error.
func checkOverlaps(rooms []PlacedRoom, policy plan.OverlapPolicy) ([]Overlap, error) {
	var tolerated []Overlap
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			a, b := rooms[i], rooms[j]
			if !a.Overlaps(b.Rect) {
				continue
			}
			if b.Role == plan.RoleInset {
				a, b = b, a
			}
			if a.Role == plan.RoleInset && policy == plan.OverlapAllow {
				tolerated = append(tolerated, Overlap{Room: a.Name, Other: b.Name})
				continue
			}
			return nil, errors.Geometry(a.Name, "overlaps %s", b.Name)
		}
	}
	return tolerated, nil
}
