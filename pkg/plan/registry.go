package plan

import (
	"github.com/matzehuels/floorplan/pkg/errors"
)

// Registry holds validated room specs, indexed by name and grouped by
// category and placement role. Declaration order is preserved within every
// group; the layout engine stacks rooms in that order.
type Registry struct {
	specs  []RoomSpec
	byName map[string]int
}

// NewRegistry validates specs and builds a registry.
// It rejects empty or duplicate names, non-positive dimensions, unknown
// categories or roles, and fractions outside (0, 1].
func NewRegistry(specs ...RoomSpec) (*Registry, error) {
	r := &Registry{
		specs:  make([]RoomSpec, 0, len(specs)),
		byName: make(map[string]int, len(specs)),
	}
	for _, s := range specs {
		if err := validateSpec(s); err != nil {
			return nil, err
		}
		if _, dup := r.byName[s.Name]; dup {
			return nil, errors.Configuration(s.Name, "duplicate room name")
		}
		r.byName[s.Name] = len(r.specs)
		r.specs = append(r.specs, s)
	}
	return r, nil
}

func validateSpec(s RoomSpec) error {
	if err := errors.ValidateName("room", s.Name); err != nil {
		return err
	}
	if _, err := ParseCategory(string(s.Category)); err != nil {
		return errors.Configuration(s.Name, "%s", errors.UserMessage(err))
	}
	if _, err := ParseRole(string(s.Role)); err != nil {
		return errors.Configuration(s.Name, "%s", errors.UserMessage(err))
	}
	if err := errors.ValidatePositive(s.Name, "planned width", s.Width); err != nil {
		return err
	}
	if err := errors.ValidatePositive(s.Name, "planned height", s.Height); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative(s.Name, "fraction", s.Fraction); err != nil {
		return err
	}
	if s.Fraction > 1 {
		return errors.Configuration(s.Name, "fraction must not exceed 1, got %g", s.Fraction)
	}
	return nil
}

// Len returns the number of rooms.
func (r *Registry) Len() int { return len(r.specs) }

// All returns every spec in declaration order.
func (r *Registry) All() []RoomSpec {
	return append([]RoomSpec(nil), r.specs...)
}

// Lookup returns the spec with the given name.
func (r *Registry) Lookup(name string) (RoomSpec, bool) {
	i, ok := r.byName[name]
	if !ok {
		return RoomSpec{}, false
	}
	return r.specs[i], true
}

// ByCategory returns the specs of one category in declaration order.
func (r *Registry) ByCategory(c Category) []RoomSpec {
	return r.filter(func(s RoomSpec) bool { return s.Category == c })
}

// ByRole returns the specs placed in one column group, in declaration order.
func (r *Registry) ByRole(role Role) []RoomSpec {
	return r.filter(func(s RoomSpec) bool { return s.Placement() == role })
}

// Categories returns the number of rooms per category, skipping empty ones.
func (r *Registry) Categories() map[Category]int {
	counts := make(map[Category]int)
	for _, s := range r.specs {
		counts[s.Category]++
	}
	return counts
}

func (r *Registry) filter(keep func(RoomSpec) bool) []RoomSpec {
	var out []RoomSpec
	for _, s := range r.specs {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
