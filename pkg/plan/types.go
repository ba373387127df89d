package plan

import (
	"strings"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// =============================================================================
// Room Category
// =============================================================================

// Category classifies a room. It decides which column a room is stacked in
// unless the room sets an explicit [Role].
type Category string

const (
	Bedroom  Category = "bedroom"
	Bathroom Category = "bathroom"
	Kitchen  Category = "kitchen"
	Living   Category = "living"
	Dining   Category = "dining"
	Other    Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{Bedroom, Bathroom, Kitchen, Living, Dining, Other}

// ParseCategory parses a case-insensitive category name.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", errors.Configuration("", "unknown room category %q", s)
}

// UnmarshalText lets plan files spell categories in any case.
func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// DefaultRole returns the column a room of this category goes to when its
// RoomSpec does not name one: bedrooms on the left, bathrooms inset, the rest on
// the right.
func (c Category) DefaultRole() Role {
	switch c {
	case Bedroom:
		return RoleLeft
	case Bathroom:
		return RoleInset
	default:
		return RoleRight
	}
}

// =============================================================================
// Placement Role
// =============================================================================

// Role names the column group a room is placed in.
type Role string

const (
	RoleAuto  Role = "" // derive from category
	RoleLeft  Role = "left"
	RoleRight Role = "right"
	RoleInset Role = "inset"
)

// ParseRole parses a case-insensitive role name. The empty string is RoleAuto.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleAuto, RoleLeft, RoleRight, RoleInset:
		return r, nil
	}
	return "", errors.Configuration("", "unknown room role %q (must be left, right or inset)", s)
}

func (r *Role) UnmarshalText(b []byte) error {
	v, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// =============================================================================
// Openings
// =============================================================================

// Orientation is the axis an opening's segment runs along.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// ParseOrientation parses a case-insensitive orientation name.
func ParseOrientation(s string) (Orientation, error) {
	o := Orientation(strings.ToLower(strings.TrimSpace(s)))
	switch o {
	case Horizontal, Vertical:
		return o, nil
	}
	return "", errors.Configuration("", "unknown orientation %q (must be horizontal or vertical)", s)
}

func (o *Orientation) UnmarshalText(b []byte) error {
	v, err := ParseOrientation(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// OpeningKind distinguishes doors from windows.
type OpeningKind string

const (
	Door   OpeningKind = "door"
	Window OpeningKind = "window"
)

// ParseOpeningKind parses a case-insensitive opening kind.
func ParseOpeningKind(s string) (OpeningKind, error) {
	k := OpeningKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case Door, Window:
		return k, nil
	}
	return "", errors.Configuration("", "unknown opening kind %q (must be door or window)", s)
}

func (k *OpeningKind) UnmarshalText(b []byte) error {
	v, err := ParseOpeningKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// =============================================================================
// Overlap Policy
// =============================================================================

// OverlapPolicy decides what happens when the inset room intersects a
// left-stack room.
type OverlapPolicy string

const (
	// OverlapReject fails the layout with a geometry error.
	OverlapReject OverlapPolicy = "reject"
	// OverlapAllow keeps the overlapping placement and reports it as a warning.
	OverlapAllow OverlapPolicy = "allow"
)

// ParseOverlapPolicy parses a case-insensitive policy name.
func ParseOverlapPolicy(s string) (OverlapPolicy, error) {
	p := OverlapPolicy(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case OverlapReject, OverlapAllow:
		return p, nil
	}
	return "", errors.Configuration("", "unknown inset overlap policy %q (must be reject or allow)", s)
}

func (p *OverlapPolicy) UnmarshalText(b []byte) error {
	v, err := ParseOverlapPolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
