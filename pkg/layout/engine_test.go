package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

const tol = 1e-9

// bedroomsOnly is the 50 x 30 plot with three 12 x 12 bedrooms and a single
// right-stack room, no inset.
func bedroomsOnly() plan.Plan {
	return plan.Plan{
		Plot:   plan.Plot{Width: 50, Height: 30},
		Params: plan.Params{CorridorWidth: 5, WallThickness: 0.5, Margin: 1},
		Rooms: []plan.RoomSpec{
			{Name: "Bedroom1", Category: plan.Bedroom, Width: 12, Height: 12},
			{Name: "Bedroom2", Category: plan.Bedroom, Width: 12, Height: 12},
			{Name: "Bedroom3", Category: plan.Bedroom, Width: 12, Height: 12},
			{Name: "Living", Category: plan.Living, Width: 16, Height: 18},
		},
	}
}

func TestBuildBedroomScenario(t *testing.T) {
	l, err := Build(bedroomsOnly())
	require.NoError(t, err)

	assert.InDelta(t, 14.0, l.LeftColumnWidth, tol)
	assert.InDelta(t, 28.0/36.0, l.LeftScale, tol)
	assert.False(t, l.RightColumnFloored)

	left := l.ByRole(plan.RoleLeft)
	require.Len(t, left, 3)
	wantY := []float64{1, 1 + 28.0/3, 1 + 56.0/3}
	for i, r := range left {
		assert.InDelta(t, 12.5, r.W, tol, r.Name)
		assert.InDelta(t, 28.0/3, r.H, tol, r.Name)
		assert.InDelta(t, wantY[i], r.Y, tol, r.Name)
		assert.InDelta(t, 1.0, r.X, tol, r.Name)
	}
	assert.InDelta(t, 10.33, left[1].Y, 0.005)
	assert.InDelta(t, 19.67, left[2].Y, 0.005)
}

func TestBuildReference(t *testing.T) {
	l, err := Build(plan.Reference())
	require.NoError(t, err)

	assert.InDelta(t, 14.0, l.LeftColumnWidth, tol)
	assert.InDelta(t, 29.0, l.RightColumnWidth, tol)
	assert.InDelta(t, 1.0, l.RightScale, tol, "right stack fits unscaled")

	corridor := l.Corridor
	assert.InDelta(t, 14.5, corridor.X, tol)
	assert.InDelta(t, 1.0, corridor.Y, tol)
	assert.InDelta(t, 5.0, corridor.W, tol)
	assert.InDelta(t, 28.0, corridor.H, tol)

	tests := []struct {
		name       string
		x, y, w, h float64
	}{
		{"Kitchen", 20, 22, 27, 7},
		{"Living", 20, 8.9, 27, 12.6},
		{"Dining", 20, 2.8, 27, 5.6},
		{"Bathroom", 6.5, 11, 7, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := l.Room(tt.name)
			require.True(t, ok)
			assert.InDelta(t, tt.x, r.X, tol)
			assert.InDelta(t, tt.y, r.Y, tol)
			assert.InDelta(t, tt.w, r.W, tol)
			assert.InDelta(t, tt.h, r.H, tol)
		})
	}

	require.Len(t, l.Rooms, 7)
	assert.Equal(t, "Bathroom", l.Rooms[6].Name, "inset placed last")
	assert.Equal(t, []Overlap{{Room: "Bathroom", Other: "Bedroom2"}}, l.Overlaps)
}

func TestBuildInsetOverlapRejected(t *testing.T) {
	p := plan.Reference()
	p.Params.InsetOverlap = plan.OverlapReject

	_, err := Build(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeGeometry), "got %v", err)
	assert.Equal(t, "Bathroom", errors.GetSubject(err))
	assert.Contains(t, err.Error(), "Bedroom2")
}

func TestBuildInsetStraddlingSeam(t *testing.T) {
	p := bedroomsOnly()
	p.Rooms = []plan.RoomSpec{
		{Name: "Bedroom1", Category: plan.Bedroom, Width: 12, Height: 10},
		{Name: "Bedroom2", Category: plan.Bedroom, Width: 12, Height: 10},
		{Name: "Closet", Category: plan.Other, Role: plan.RoleInset, Width: 2, Height: 2},
		{Name: "Living", Category: plan.Living, Width: 16, Height: 18},
	}
	// Two equal bedrooms meet at mid-height; a 2 x 2 inset straddles the seam.
	_, err := Build(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeGeometry))

	p.Params.InsetOverlap = plan.OverlapAllow
	l, err := Build(p)
	require.NoError(t, err)
	assert.Len(t, l.Overlaps, 2)
}

func TestBuildPropertiesHold(t *testing.T) {
	plans := map[string]plan.Plan{
		"reference":     plan.Reference(),
		"bedrooms only": bedroomsOnly(),
		"many right rooms": func() plan.Plan {
			p := bedroomsOnly()
			for i := range 5 {
				p.Rooms = append(p.Rooms, plan.RoomSpec{
					Name: fmt.Sprintf("Study%d", i), Category: plan.Other, Width: 8, Height: 9,
				})
			}
			return p
		}(),
		"tall right rooms": func() plan.Plan {
			p := bedroomsOnly()
			p.Rooms[3].Fraction = 0.9
			p.Rooms = append(p.Rooms, plan.RoomSpec{Name: "Hall", Category: plan.Other, Width: 8, Height: 40, Fraction: 0.9})
			return p
		}(),
	}

	for name, p := range plans {
		t.Run(name, func(t *testing.T) {
			l, err := Build(p)
			require.NoError(t, err)

			for _, r := range l.Rooms {
				assert.GreaterOrEqual(t, r.X, -tol, r.Name)
				assert.GreaterOrEqual(t, r.Y, -tol, r.Name)
				assert.LessOrEqual(t, r.Right(), l.Plot.Width+tol, r.Name)
				assert.LessOrEqual(t, r.Top(), l.Plot.Height+tol, r.Name)
				assert.Greater(t, r.W, 0.0, r.Name)
				assert.Greater(t, r.H, 0.0, r.Name)
			}

			var sum float64
			for _, r := range l.ByRole(plan.RoleLeft) {
				sum += r.H
			}
			assert.InDelta(t, l.Plot.Height-2*l.Params.Margin, sum, tol, "left stack fills usable height")

			gap := l.Params.Margin / 2
			right := l.ByRole(plan.RoleRight)
			for i := 0; i+1 < len(right); i++ {
				assert.GreaterOrEqual(t, right[i].Y, right[i+1].Top()+gap-tol,
					"%s must sit above %s", right[i].Name, right[i+1].Name)
			}
			if len(right) > 0 {
				assert.GreaterOrEqual(t, right[len(right)-1].Y, l.Params.Margin-tol)
			}
		})
	}
}

func TestBuildRightStackScaledToFit(t *testing.T) {
	p := bedroomsOnly()
	p.Rooms[3].Fraction = 0.9
	p.Rooms = append(p.Rooms, plan.RoomSpec{Name: "Hall", Category: plan.Other, Width: 8, Height: 40, Fraction: 0.9})

	l, err := Build(p)
	require.NoError(t, err)

	right := l.ByRole(plan.RoleRight)
	require.Len(t, right, 2)
	// Living caps at 18, Hall at 25.2; 43.2 + 0.5 overflows 28.
	assert.InDelta(t, 27.5/43.2, l.RightScale, tol)
	assert.InDelta(t, 27.5, right[0].H+right[1].H, tol)
	assert.InDelta(t, 1.0, right[1].Y, tol, "bottom room lands on the margin")
	assert.InDelta(t, 29.0, right[0].Top(), tol, "top room starts under the margin")
}

func TestBuildRightColumnFloor(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*plan.Plan)
		wantLeft  float64
		wantRight float64
	}{
		{
			name:      "explicit floor",
			mutate:    func(p *plan.Plan) { p.Rooms[0].Width = 40; p.Params.MinRightWidth = 12 },
			wantLeft:  50 - 5 - 2 - 12,
			wantRight: 12,
		},
		{
			name: "inset width as floor",
			mutate: func(p *plan.Plan) {
				p.Rooms[0].Width = 40
				p.Params.InsetOverlap = plan.OverlapAllow
				p.Rooms = append(p.Rooms, plan.RoomSpec{Name: "Bath", Category: plan.Bathroom, Width: 7, Height: 2})
			},
			wantLeft:  50 - 5 - 2 - 7,
			wantRight: 7,
		},
		{
			name:      "default floor",
			mutate:    func(p *plan.Plan) { p.Rooms[0].Width = 40 },
			wantLeft:  50 - 5 - 2 - plan.DefaultMinRightWidth,
			wantRight: plan.DefaultMinRightWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := bedroomsOnly()
			tt.mutate(&p)

			l, err := Build(p)
			require.NoError(t, err)
			assert.True(t, l.RightColumnFloored)
			assert.InDelta(t, tt.wantLeft, l.LeftColumnWidth, tol)
			assert.InDelta(t, tt.wantRight, l.RightColumnWidth, tol)
		})
	}
}

func TestBuildConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*plan.Plan)
	}{
		{"empty left stack", func(p *plan.Plan) { p.Rooms = p.Rooms[3:] }},
		{"empty right stack", func(p *plan.Plan) { p.Rooms = p.Rooms[:3] }},
		{"no rooms", func(p *plan.Plan) { p.Rooms = nil }},
		{"corridor too wide", func(p *plan.Plan) { p.Params.CorridorWidth = 48 }},
		{"corridor wider than plot", func(p *plan.Plan) { p.Params.CorridorWidth = 60 }},
		{"margin eats height", func(p *plan.Plan) { p.Params.Margin = 15 }},
		{"zero planned height", func(p *plan.Plan) { p.Rooms[0].Height = 0 }},
		{"negative planned width", func(p *plan.Plan) { p.Rooms[1].Width = -1 }},
		{"duplicate name", func(p *plan.Plan) { p.Rooms[1].Name = "Bedroom1" }},
		{"two insets", func(p *plan.Plan) {
			p.Rooms = append(p.Rooms,
				plan.RoomSpec{Name: "Bath1", Category: plan.Bathroom, Width: 2, Height: 2},
				plan.RoomSpec{Name: "Bath2", Category: plan.Bathroom, Width: 2, Height: 2})
		}},
		{"floor swallows left column", func(p *plan.Plan) { p.Params.MinRightWidth = 42 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := bedroomsOnly()
			tt.mutate(&p)

			_, err := Build(p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeConfiguration), "got %v", err)
		})
	}
}

func TestBuildInsetOutsidePlot(t *testing.T) {
	p := bedroomsOnly()
	p.Params.InsetOverlap = plan.OverlapAllow
	p.Rooms = append(p.Rooms, plan.RoomSpec{Name: "Vault", Category: plan.Bathroom, Width: 8, Height: 40})

	_, err := Build(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeGeometry))
	assert.Equal(t, "Vault", errors.GetSubject(err))
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(plan.Reference())
	require.NoError(t, err)
	b, err := Build(plan.Reference())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestColumns(t *testing.T) {
	left, right, floored := Columns(50, 5, 1, 0.5, 12, 12)
	assert.Equal(t, 14.0, left)
	assert.Equal(t, 29.0, right)
	assert.False(t, floored)

	left, right, floored = Columns(30, 5, 1, 0.5, 12, 12)
	assert.Equal(t, 11.0, left)
	assert.Equal(t, 12.0, right)
	assert.True(t, floored)
}

func TestCoverage(t *testing.T) {
	l, err := Build(bedroomsOnly())
	require.NoError(t, err)
	c := l.Coverage()
	assert.Greater(t, c, 0.5)
	assert.Less(t, c, 1.0)
}
