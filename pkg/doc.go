// Package pkg provides the core libraries for floorplan.
//
// # Overview
//
// Floorplan turns a plot size and a list of rooms into a drawn floor plan:
// bedrooms stacked in a left column, a corridor, kitchen, living and dining
// rooms stacked in a right column, and an optional inset room against the
// left column. The pkg directory is organized into these areas:
//
//  1. [plan] - Input model: plot, layout parameters, room specs, openings
//  2. [layout] - Column layout engine placing every room rectangle
//  3. [project] - Wall loops, door and window segments, labels
//  4. [render] - Output sinks (SVG, DXF, JSON, PDF, PNG, react-planner, adjacency)
//  5. [pipeline] - Orchestration (layout → project → export)
//
// # Architecture
//
// The typical data flow through floorplan:
//
//	plan file (TOML / YAML / JSON)
//	         ↓
//	    [plan] package (decode, defaults, validation)
//	         ↓
//	    [layout] package (column partition + room placement)
//	         ↓
//	    [project] package (walls, openings, labels)
//	         ↓
//	    [render/sink] packages, written by [pipeline]
//
// # Quick Start
//
//	p, err := plan.Load("house.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := pipeline.NewRunner(nil).Execute(ctx, pipeline.Options{
//	    Plan:    p,
//	    Output:  "out/house",
//	    Formats: []string{"svg", "dxf"},
//	})
//
// Supporting packages: [geom] (points, rectangles, polygons), [errors]
// (structured error codes), [io] (atomic file writes), [observability]
// (pipeline hooks) and [buildinfo] (version metadata).
//
// [plan]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/plan
// [layout]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/layout
// [project]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/project
// [render]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/pipeline
// [geom]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/geom
// [errors]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/errors
// [io]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/buildinfo
package pkg
