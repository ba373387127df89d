package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGrouping(t *testing.T) {
	reg, err := NewRegistry(Reference().Rooms...)
	require.NoError(t, err)

	bedrooms := reg.ByCategory(Bedroom)
	require.Len(t, bedrooms, 3)
	assert.Equal(t, "Bedroom1", bedrooms[0].Name, "declaration order preserved")
	assert.Equal(t, "Bedroom3", bedrooms[2].Name)

	right := reg.ByRole(RoleRight)
	require.Len(t, right, 3)
	assert.Equal(t, []string{"Kitchen", "Living", "Dining"}, []string{right[0].Name, right[1].Name, right[2].Name})

	assert.Empty(t, reg.ByCategory(Other))
	assert.Equal(t, map[Category]int{Bedroom: 3, Bathroom: 1, Kitchen: 1, Living: 1, Dining: 1}, reg.Categories())
}

func TestRegistryLookup(t *testing.T) {
	reg, err := NewRegistry(Reference().Rooms...)
	require.NoError(t, err)

	s, ok := reg.Lookup("Living")
	require.True(t, ok)
	assert.Equal(t, 16.0, s.Width)
	assert.Equal(t, 18.0, s.Height)

	_, ok = reg.Lookup("Garage")
	assert.False(t, ok)
}

func TestRegistryAllIsCopy(t *testing.T) {
	reg, err := NewRegistry(RoomSpec{Name: "A", Category: Other, Width: 1, Height: 1})
	require.NoError(t, err)

	all := reg.All()
	all[0].Name = "B"

	_, ok := reg.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "A", reg.All()[0].Name)
}

func TestRegistryEmpty(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	assert.Zero(t, reg.Len())
	assert.Empty(t, reg.ByRole(RoleLeft))
}
