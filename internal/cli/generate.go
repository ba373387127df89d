package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/render/adjacency"
)

// generateCommand creates the generate command for laying out and exporting a plan.
func (c *CLI) generateCommand() *cobra.Command {
	var formats string
	var tolerance float64
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate [plan.toml]",
		Short: "Lay out a plan and export drawings",
		Long: `Lay out a plan and export drawings.

The plan is read from a TOML, YAML or JSON file; without an argument the
built-in reference plan is used. Every requested format is written next to
the output base path with its own suffix:

  svg        <output>.svg
  dxf        <output>.dxf
  json       <output>.json
  pdf        <output>.pdf            (requires rsvg-convert)
  png        <output>.png            (requires rsvg-convert)
  planner    <output>.planner.json   (react-planner scene)
  adjacency  <output>.adjacency.svg  (room adjacency diagram)

A format that cannot be produced is skipped with a warning; the others are
still written.`,
		Example: `  floorplan generate house.toml -f svg,dxf -o out/house
  FLOORPLAN_FORMATS=svg,json floorplan generate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := pipeline.ParseFormats(formats)
			if err != nil {
				return err
			}
			opts.Formats = parsed
			opts.AdjacencyTolerance = &tolerance
			return c.runGenerate(cmd.Context(), planArg(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", envOr(envOutput, ""), "output base path without suffix (default: plan name)")
	cmd.Flags().StringVarP(&formats, "format", "f", envOr(envFormats, pipeline.FormatSVG),
		"comma-separated output formats: "+strings.Join(pipeline.FormatNames(), ", "))
	cmd.Flags().Float64Var(&opts.SVGScale, "scale", pipeline.DefaultSVGScale, "SVG pixels per plot unit")
	cmd.Flags().Float64Var(&opts.PNGScale, "png-scale", pipeline.DefaultPNGScale, "PNG zoom on top of the SVG size")
	cmd.Flags().BoolVar(&opts.NoMarkers, "no-markers", false, "omit centroid markers under room labels")
	cmd.Flags().Float64Var(&tolerance, "adjacency-tolerance", adjacency.DefaultTolerance, "widest gap between rooms drawn as adjacent (0: touching only)")

	return cmd
}

// runGenerate loads the plan, runs the pipeline and reports written files.
func (c *CLI) runGenerate(ctx context.Context, input string, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)

	p, err := loadPlan(input)
	if err != nil {
		return err
	}
	opts.Plan = p
	if opts.Output == "" {
		opts.Output = p.Name
	}
	if opts.Output == "" {
		opts.Output = pipeline.DefaultOutput
	}
	logger.Debug("generating", "plan", p.Name, "formats", opts.Formats, "output", opts.Output)

	prog := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, opts)
	if result == nil {
		return err
	}
	prog.done("Generated " + result.Plan.Name)

	if len(result.Paths) > 0 {
		printSuccess("Floor plan exported")
	}
	for _, f := range result.Written() {
		printFile(result.Paths[f])
	}
	for _, f := range sortedKeys(result.Skipped) {
		printWarning("%s skipped: %s", f, errors.UserMessage(result.Skipped[f]))
	}
	printStats(result.Stats)
	return err
}

func sortedKeys(m map[string]error) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatCoverage(v float64) string {
	return fmt.Sprintf("%.0f%% covered", v*100)
}
