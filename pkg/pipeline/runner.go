package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/errors"
	pkgio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/plan"
	"github.com/matzehuels/floorplan/pkg/project"
)

// Runner encapsulates pipeline execution with logging and hooks.
//
// The Runner is stateless except for the logger; it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log output is discarded.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete layout → project → export pipeline.
//
// Configuration and geometry errors abort the run and return a nil result.
// Export errors never abort it: every format is attempted, failures are
// recorded in Result.Skipped, and an EXPORT_ERROR is returned alongside the
// result only when no format at all could be produced.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{Plan: opts.Plan}

	// Stage 1: Layout
	layoutStart := time.Now()
	l, err := r.Layout(ctx, opts.Plan)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.RoomCount = len(l.Rooms)
	result.Stats.OverlapCount = len(l.Overlaps)
	result.Stats.Coverage = l.Coverage()

	// Stage 2: Project
	projectStart := time.Now()
	d, err := r.Project(ctx, opts.Plan, l, opts.ProjectOptions()...)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	result.Drawing = d
	result.Stats.ProjectTime = time.Since(projectStart)
	result.Stats.OpeningCount = len(d.Openings)

	// Stage 3: Export
	exportStart := time.Now()
	err = r.Export(ctx, result, opts)
	result.Stats.ExportTime = time.Since(exportStart)
	if err != nil {
		if errors.IsFatal(err) {
			return nil, fmt.Errorf("export: %w", err)
		}
		return result, err
	}

	r.Logger.Info("exported floor plan",
		"plan", opts.Plan.Name,
		"formats", result.Written(),
		"skipped", len(result.Skipped),
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Layout places the rooms of p.
func (r *Runner) Layout(ctx context.Context, p plan.Plan) (layout.Layout, error) {
	if err := ctx.Err(); err != nil {
		return layout.Layout{}, err
	}
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, p.Name, len(p.Rooms))

	start := time.Now()
	l, err := layout.Build(p)
	hooks.OnLayoutComplete(ctx, p.Name, time.Since(start), err)
	if err != nil {
		return layout.Layout{}, err
	}

	r.Logger.Info("computed layout",
		"rooms", len(l.Rooms),
		"left", l.LeftColumnWidth,
		"right", l.RightColumnWidth,
		"scale", l.LeftScale,
		"duration", time.Since(start))
	if l.RightColumnFloored {
		r.Logger.Debug("right column floored", "width", l.RightColumnWidth)
	}
	for _, o := range l.Overlaps {
		r.Logger.Warn("inset room overlaps neighbour", "room", o.Room, "other", o.Other)
	}
	return l, nil
}

// Project derives the drawing of l. Openings are taken from p.
func (r *Runner) Project(ctx context.Context, p plan.Plan, l layout.Layout, opts ...project.Option) (project.Drawing, error) {
	if err := ctx.Err(); err != nil {
		return project.Drawing{}, err
	}
	hooks := observability.Pipeline()
	hooks.OnProjectStart(ctx, p.Name)

	start := time.Now()
	d, err := project.Project(p.Name, l, p.WithDefaults().Openings, opts...)
	hooks.OnProjectComplete(ctx, p.Name, time.Since(start), err)
	if err != nil {
		return project.Drawing{}, err
	}

	r.Logger.Debug("projected drawing",
		"walls", len(d.Walls),
		"openings", len(d.Openings),
		"labels", len(d.Labels))
	return d, nil
}

// Render renders result's drawing in every requested format. Rendered
// artifacts and their digests are stored on result; failed formats are
// recorded in result.Skipped.
func (r *Runner) Render(ctx context.Context, result *Result, opts Options) error {
	if err := opts.ValidateForRender(); err != nil {
		return err
	}
	r.initResult(result)

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := RenderFormat(ctx, format, result.Drawing, result.Layout, opts)
		if err != nil {
			r.skip(ctx, result, format, err)
			continue
		}
		result.Artifacts[format] = data
		result.Digests[format] = Digest(data)
		r.Logger.Debug("rendered artifact", "format", format, "bytes", len(data))
	}
	return nil
}

// Export renders every requested format and, when opts.Output is set,
// writes each artifact next to the others under the output base path.
// A format that fails to render or write is skipped without affecting the
// rest.
func (r *Runner) Export(ctx context.Context, result *Result, opts Options) (err error) {
	if err := opts.ValidateForRender(); err != nil {
		return err
	}

	hooks := observability.Pipeline()
	hooks.OnExportStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnExportComplete(ctx, opts.Formats, time.Since(start), err) }()

	if err := r.Render(ctx, result, opts); err != nil {
		return err
	}

	if opts.Output != "" {
		for _, format := range result.Written() {
			path := OutputPath(opts.Output, format)
			data := result.Artifacts[format]
			if werr := pkgio.WriteFileAtomic(path, data, pkgio.DefaultFileMode); werr != nil {
				delete(result.Artifacts, format)
				delete(result.Digests, format)
				r.skip(ctx, result, format, errors.Export(format, werr))
				continue
			}
			result.Paths[format] = path
			observability.Artifact().OnArtifactWritten(ctx, format, path, len(data))
			r.Logger.Info("wrote artifact", "format", format, "path", path, "bytes", len(data))
		}
	}

	if len(result.Artifacts) == 0 && len(opts.Formats) > 0 {
		return errors.New(errors.ErrCodeExport, "no artifacts produced (%d formats skipped)", len(result.Skipped))
	}
	return nil
}

func (r *Runner) skip(ctx context.Context, result *Result, format string, err error) {
	result.Skipped[format] = err
	observability.Artifact().OnArtifactSkipped(ctx, format, err)
	r.Logger.Warn("skipped format", "format", format, "err", errors.UserMessage(err))
}

func (r *Runner) initResult(result *Result) {
	if result.Artifacts == nil {
		result.Artifacts = make(map[string][]byte)
	}
	if result.Paths == nil {
		result.Paths = make(map[string]string)
	}
	if result.Digests == nil {
		result.Digests = make(map[string]string)
	}
	if result.Skipped == nil {
		result.Skipped = make(map[string]error)
	}
}
