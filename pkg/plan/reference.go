package plan

// Reference returns the built-in example: a 50 x 30 plot with three
// bedrooms on the left, kitchen, living and dining rooms on the right, a
// bathroom inset against the bedroom column, two doors and one window.
//
// The bathroom is taller than the gap it is centered on and overlaps the
// middle bedroom, so the reference plan opts into [OverlapAllow].
func Reference() Plan {
	return Plan{
		Name: "reference-50x30",
		Plot: Plot{Width: 50, Height: 30},
		Params: Params{
			CorridorWidth: 5,
			WallThickness: 0.5,
			Margin:        1,
			MinRightWidth: 12,
			InsetOverlap:  OverlapAllow,
		},
		Rooms: []RoomSpec{
			{Name: "Bedroom1", Category: Bedroom, Width: 12, Height: 12},
			{Name: "Bedroom2", Category: Bedroom, Width: 12, Height: 12},
			{Name: "Bedroom3", Category: Bedroom, Width: 12, Height: 12},
			{Name: "Bathroom", Category: Bathroom, Width: 7, Height: 8},
			{Name: "Kitchen", Category: Kitchen, Width: 10, Height: 12},
			{Name: "Living", Category: Living, Width: 16, Height: 18},
			{Name: "Dining", Category: Dining, Width: 12, Height: 10},
		},
		Openings: []Opening{
			{Name: "door-1", Kind: Door, X: 12, Y: 6, Width: 3, Orientation: Vertical},
			{Name: "door-2", Kind: Door, X: 6, Y: 12, Width: 3, Orientation: Horizontal},
			{Name: "window-1", Kind: Window, X: 6, Y: 30, Width: 4, Orientation: Horizontal},
		},
	}
}
