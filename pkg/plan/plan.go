// Package plan defines the inputs of the floor-plan generator: the plot
// envelope, the layout parameters, the rooms to place and the doors and
// windows to draw.
//
// A [Plan] is a plain configuration object. It is loaded from TOML, YAML or
// JSON with [Load], or built in code, and passed by value into the layout
// engine. Nothing in this package holds process-wide state.
//
//	p, err := plan.Load("house.toml")
//	if err != nil {
//	    return err
//	}
//	reg, err := p.Registry()
//	bedrooms := reg.ByCategory(plan.Bedroom)
package plan

import (
	"fmt"
	"math"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultCorridorWidth is the corridor strip width used when a plan omits it.
	DefaultCorridorWidth = 5.0

	// DefaultWallThickness is the wall thickness used when a plan omits it.
	DefaultWallThickness = 0.5

	// DefaultMinRightWidth is the right-column floor used when neither the plan
	// nor an inset room provides one.
	DefaultMinRightWidth = 12.0
)

// DefaultInsetOverlap is the inset overlap policy used when a plan omits it.
const DefaultInsetOverlap = OverlapReject

// =============================================================================
// Plan
// =============================================================================

// Plot is the fixed outer envelope. Its origin is (0, 0).
type Plot struct {
	Width  float64 `toml:"width" yaml:"width" json:"width"`
	Height float64 `toml:"height" yaml:"height" json:"height"`
}

// Params holds the layout parameters shared by every room.
type Params struct {
	CorridorWidth float64       `toml:"corridor_width" yaml:"corridor_width" json:"corridor_width"`
	WallThickness float64       `toml:"wall_thickness" yaml:"wall_thickness" json:"wall_thickness"`
	Margin        float64       `toml:"margin" yaml:"margin" json:"margin"`
	MinRightWidth float64       `toml:"min_right_width,omitempty" yaml:"min_right_width,omitempty" json:"min_right_width,omitempty"`
	InsetOverlap  OverlapPolicy `toml:"inset_overlap,omitempty" yaml:"inset_overlap,omitempty" json:"inset_overlap,omitempty"`
}

// RoomSpec describes one room to place. Width and Height are the planned
// dimensions; the layout engine may scale the height to fit its column.
type RoomSpec struct {
	Name     string   `toml:"name" yaml:"name" json:"name"`
	Category Category `toml:"category" yaml:"category" json:"category"`
	Width    float64  `toml:"width" yaml:"width" json:"width"`
	Height   float64  `toml:"height" yaml:"height" json:"height"`

	// Role overrides the column derived from Category.
	Role Role `toml:"role,omitempty" yaml:"role,omitempty" json:"role,omitempty"`

	// Fraction is the share of the usable height a right-stack room may claim.
	// Zero selects the positional default.
	Fraction float64 `toml:"fraction,omitempty" yaml:"fraction,omitempty" json:"fraction,omitempty"`
}

// Placement returns the column group the room belongs to.
func (s RoomSpec) Placement() Role {
	if s.Role != RoleAuto {
		return s.Role
	}
	return s.Category.DefaultRole()
}

// Opening is a door or window centered at (X, Y).
type Opening struct {
	Name        string      `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Kind        OpeningKind `toml:"kind" yaml:"kind" json:"kind"`
	X           float64     `toml:"x" yaml:"x" json:"x"`
	Y           float64     `toml:"y" yaml:"y" json:"y"`
	Width       float64     `toml:"width" yaml:"width" json:"width"`
	Orientation Orientation `toml:"orientation" yaml:"orientation" json:"orientation"`
}

// Plan is the complete input of one layout run.
type Plan struct {
	Name     string     `toml:"name" yaml:"name" json:"name"`
	Plot     Plot       `toml:"plot" yaml:"plot" json:"plot"`
	Params   Params     `toml:"params" yaml:"params" json:"params"`
	Rooms    []RoomSpec `toml:"rooms" yaml:"rooms" json:"rooms"`
	Openings []Opening  `toml:"openings,omitempty" yaml:"openings,omitempty" json:"openings,omitempty"`
}

// WithDefaults returns a copy of p with unset parameters filled in and
// unnamed openings numbered per kind ("door-1", "window-1", ...).
// Margin is never defaulted: zero is a valid margin.
func (p Plan) WithDefaults() Plan {
	if p.Params.CorridorWidth == 0 {
		p.Params.CorridorWidth = DefaultCorridorWidth
	}
	if p.Params.WallThickness == 0 {
		p.Params.WallThickness = DefaultWallThickness
	}
	if p.Params.InsetOverlap == "" {
		p.Params.InsetOverlap = DefaultInsetOverlap
	}

	p.Rooms = append([]RoomSpec(nil), p.Rooms...)

	openings := make([]Opening, len(p.Openings))
	counts := map[OpeningKind]int{}
	for i, o := range p.Openings {
		if o.Kind == "" {
			o.Kind = Door
		}
		counts[o.Kind]++
		if o.Name == "" {
			o.Name = fmt.Sprintf("%s-%d", o.Kind, counts[o.Kind])
		}
		openings[i] = o
	}
	p.Openings = openings
	return p
}

// Validate checks every field of the plan. It does not check whether the
// rooms fit the plot; that is the layout engine's job.
func (p Plan) Validate() error {
	if err := errors.ValidatePositive("plot", "width", p.Plot.Width); err != nil {
		return err
	}
	if err := errors.ValidatePositive("plot", "height", p.Plot.Height); err != nil {
		return err
	}
	if err := p.Params.validate(); err != nil {
		return err
	}
	if _, err := NewRegistry(p.Rooms...); err != nil {
		return err
	}
	return validateOpenings(p.Openings)
}

// Registry validates the rooms and indexes them by name and category.
func (p Plan) Registry() (*Registry, error) {
	return NewRegistry(p.Rooms...)
}

func (pr Params) validate() error {
	if err := errors.ValidatePositive("params", "corridor_width", pr.CorridorWidth); err != nil {
		return err
	}
	if err := errors.ValidatePositive("params", "wall_thickness", pr.WallThickness); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("params", "margin", pr.Margin); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("params", "min_right_width", pr.MinRightWidth); err != nil {
		return err
	}
	if _, err := ParseOverlapPolicy(string(pr.InsetOverlap)); err != nil {
		return err
	}
	return nil
}

func validateOpenings(openings []Opening) error {
	seen := make(map[string]bool, len(openings))
	for _, o := range openings {
		if err := errors.ValidateName("opening", o.Name); err != nil {
			return err
		}
		if seen[o.Name] {
			return errors.Configuration(o.Name, "duplicate opening name")
		}
		seen[o.Name] = true

		if _, err := ParseOpeningKind(string(o.Kind)); err != nil {
			return errors.Configuration(o.Name, "%s", errors.UserMessage(err))
		}
		if _, err := ParseOrientation(string(o.Orientation)); err != nil {
			return errors.Configuration(o.Name, "%s", errors.UserMessage(err))
		}
		if err := errors.ValidatePositive(o.Name, "width", o.Width); err != nil {
			return err
		}
		if math.IsNaN(o.X) || math.IsNaN(o.Y) || math.IsInf(o.X, 0) || math.IsInf(o.Y, 0) {
			return errors.Configuration(o.Name, "center must be a finite point")
		}
	}
	return nil
}
