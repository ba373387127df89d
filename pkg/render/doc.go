// Package render holds the output side of floorplan: format conversion shared
// by every sink, plus the sink and diagram subpackages.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert an SVG document to other formats using the
// external rsvg-convert tool (from librsvg). When the tool is missing they
// return an UNSUPPORTED error, which the pipeline records as a skipped format
// instead of aborting the run.
//
//	svg, _ := sink.RenderSVG(drawing)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Subpackages
//
//   - [sink]: drawing exporters (SVG, DXF, JSON, PDF, PNG, react-planner)
//   - [adjacency]: room adjacency diagrams rendered with Graphviz
//
// [sink]: github.com/matzehuels/floorplan/pkg/render/sink
// [adjacency]: github.com/matzehuels/floorplan/pkg/render/adjacency
package render
