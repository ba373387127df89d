// Package pipeline provides the generation pipeline for floorplan.
//
// This package implements the complete layout → project → export pipeline
// used by the CLI. By centralizing this logic, every entry point places rooms,
// derives walls and writes artifacts the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Layout: place every room of the plan (see package layout)
//  2. Project: derive wall loops, opening segments and labels (see package project)
//  3. Export: render each requested format and write it to disk
//
// Layout and projection failures abort the run. Export failures are isolated
// per format: a format whose backend is missing or whose write fails is
// recorded in [Result.Skipped] and the remaining formats are still written.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Plan:    p,
//	    Output:  "out/house",
//	    Formats: []string{"svg", "dxf"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Paths["svg"]) // out/house.svg
//
// Run individual stages:
//
//	l, err := runner.Layout(ctx, p)
//	d, err := runner.Project(ctx, p, l)
//	res := &pipeline.Result{Layout: l, Drawing: d}
//	err = runner.Render(ctx, res, opts)
package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/plan"
	"github.com/matzehuels/floorplan/pkg/project"
	"github.com/matzehuels/floorplan/pkg/render/sink"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultOutput is the base path artifacts are written to when the
	// caller does not choose one. Each format appends its own suffix.
	DefaultOutput = "floorplan"

	// DefaultSVGScale is the SVG size in pixels per plot unit.
	DefaultSVGScale = sink.DefaultSVGScale

	// DefaultPNGScale is the PNG zoom factor on top of the SVG size.
	DefaultPNGScale = sink.DefaultPNGScale
)

// Format constants for output formats.
const (
	FormatSVG       = "svg"
	FormatDXF       = "dxf"
	FormatJSON      = "json"
	FormatPDF       = "pdf"
	FormatPNG       = "png"
	FormatPlanner   = "planner"
	FormatAdjacency = "adjacency"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:       true,
	FormatDXF:       true,
	FormatJSON:      true,
	FormatPDF:       true,
	FormatPNG:       true,
	FormatPlanner:   true,
	FormatAdjacency: true,
}

var suffixes = map[string]string{
	FormatSVG:       ".svg",
	FormatDXF:       ".dxf",
	FormatJSON:      ".json",
	FormatPDF:       ".pdf",
	FormatPNG:       ".png",
	FormatPlanner:   ".planner.json",
	FormatAdjacency: ".adjacency.svg",
}

// FormatNames returns the supported formats in alphabetical order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// Suffix returns the file suffix artifacts of format are written with.
func Suffix(format string) string {
	return suffixes[format]
}

// OutputPath returns the file an artifact of format is written to.
func OutputPath(base, format string) string {
	return base + Suffix(format)
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Plan is the plan to lay out. Defaults are applied before validation.
	Plan plan.Plan

	// Output is the base path of written artifacts, without suffix. Empty
	// keeps the artifacts in memory only.
	Output string

	// Render options
	Formats   []string
	SVGScale  float64
	PNGScale  float64
	NoMarkers bool // omit centroid markers in SVG, PDF and PNG output

	// AdjacencyTolerance is the widest gap between rooms still drawn as an
	// edge in the adjacency diagram. Nil selects the diagram's default;
	// zero keeps only rooms in exact contact.
	AdjacencyTolerance *float64

	// Label placement. Zero values select the projector defaults.
	LabelOffsetX, LabelOffsetY float64
	LabelHeight                float64

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plan is the plan after defaults were applied.
	Plan plan.Plan

	// Layout contains the placed rooms and column partition.
	Layout layout.Layout

	// Drawing contains the projected walls, openings and labels.
	Drawing project.Drawing

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Paths contains the written file of every artifact, keyed by format.
	// Empty when Options.Output is empty.
	Paths map[string]string

	// Digests contains the SHA-256 of every artifact, keyed by format.
	Digests map[string]string

	// Skipped contains the export error of every format that was not
	// produced, keyed by format.
	Skipped map[string]error

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomCount    int
	OpeningCount int
	OverlapCount int
	Coverage     float64
	LayoutTime   time.Duration
	ProjectTime  time.Duration
	ExportTime   time.Duration
}

// Written returns the formats that produced an artifact, in alphabetical order.
func (r *Result) Written() []string {
	out := make([]string, 0, len(r.Artifacts))
	for f := range r.Artifacts {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma separated format list, dropping blanks and
// duplicates while keeping the first-seen order.
func ParseFormats(s string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		f := strings.ToLower(strings.TrimSpace(part))
		if f == "" || seen[f] {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		seen[f] = true
		out = append(out, f)
	}
	return out, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies plan defaults, validates the plan and sets
// render defaults. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout applies plan defaults and validates the plan.
func (o *Options) ValidateForLayout() error {
	o.Plan = o.Plan.WithDefaults()
	return o.Plan.Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.SVGScale == 0 {
		o.SVGScale = DefaultSVGScale
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.SVGScale < 0 {
		return errors.Configuration(FormatSVG, "scale must be positive, got %g", o.SVGScale)
	}
	if o.PNGScale < 0 {
		return errors.Configuration(FormatPNG, "scale must be positive, got %g", o.PNGScale)
	}
	if o.AdjacencyTolerance != nil && *o.AdjacencyTolerance < 0 {
		return errors.Configuration(FormatAdjacency, "tolerance must not be negative, got %g", *o.AdjacencyTolerance)
	}
	return nil
}

// ProjectOptions returns the projector options selected by o.
func (o *Options) ProjectOptions() []project.Option {
	var opts []project.Option
	if o.LabelOffsetX != 0 || o.LabelOffsetY != 0 {
		opts = append(opts, project.WithLabelOffset(o.LabelOffsetX, o.LabelOffsetY))
	}
	if o.LabelHeight != 0 {
		opts = append(opts, project.WithLabelHeight(o.LabelHeight))
	}
	return opts
}

// SVGOptions returns the SVG renderer options selected by o. PDF and PNG
// output share them.
func (o *Options) SVGOptions() []sink.SVGOption {
	opts := []sink.SVGOption{sink.WithSVGScale(o.SVGScale)}
	if o.NoMarkers {
		opts = append(opts, sink.WithoutMarkers())
	}
	return opts
}
