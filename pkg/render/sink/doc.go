// Package sink provides output format renderers for floor plan drawings.
//
// # Overview
//
// A "sink" transforms a projected [project.Drawing] into a final output
// format. This package provides renderers for:
//
//   - SVG: vector drawing for browsers and documents
//   - DXF: AutoCAD exchange format with one layer per drawing element
//   - JSON: geometry export for external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//   - Planner: a react-planner scene for interactive editing elsewhere
//
// Every sink is a pure function of its input: rendering the same drawing
// with the same options yields identical bytes.
//
// # SVG Output
//
// [RenderSVG] draws layers as <g> groups with fixed ids (boundary, corridor,
// rooms, walls, openings, labels). Walls are drawn as even-odd filled bands
// between each room's outer and inner loop; doors and windows are colored
// strokes across them.
//
//	svg, err := sink.RenderSVG(drawing, sink.WithSVGScale(30))
//
// # DXF Output
//
// [RenderDXF] writes layers BOUNDARY, CORRIDOR, WALLS, DOORS, WINDOWS and
// LABELS in plot units, so the file opens at true size in CAD tools.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the drawing as SVG, then convert via
// [render.ToPDF] and [render.ToPNG]:
//
//	pdf, err := sink.RenderPDF(drawing)
//	png, err := sink.RenderPNG(drawing, sink.WithScale(2))
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [project.Drawing]: github.com/matzehuels/floorplan/pkg/project.Drawing
// [render.ToPDF]: github.com/matzehuels/floorplan/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/floorplan/pkg/render.ToPNG
package sink
