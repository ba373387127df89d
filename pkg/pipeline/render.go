package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/project"
	"github.com/matzehuels/floorplan/pkg/render/adjacency"
	"github.com/matzehuels/floorplan/pkg/render/sink"
)

// RenderFormat renders d in a single output format. Every failure is
// returned as an EXPORT_ERROR naming the format.
func RenderFormat(ctx context.Context, format string, d project.Drawing, l layout.Layout, opts Options) ([]byte, error) {
	data, err := renderFormat(ctx, format, d, l, opts)
	if err != nil {
		if errors.Is(err, errors.ErrCodeExport) {
			return nil, err
		}
		return nil, errors.Export(format, err)
	}
	return data, nil
}

func renderFormat(ctx context.Context, format string, d project.Drawing, l layout.Layout, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(d, opts.SVGOptions()...)
	case FormatDXF:
		return sink.RenderDXF(d)
	case FormatJSON:
		return sink.RenderJSON(d, sink.WithLayout(l))
	case FormatPDF:
		return sink.RenderPDF(d, sink.WithPDFSVGOptions(opts.SVGOptions()...))
	case FormatPNG:
		return sink.RenderPNG(d, sink.WithPNGSVGOptions(opts.SVGOptions()...), sink.WithScale(opts.PNGScale))
	case FormatPlanner:
		return sink.RenderPlanner(d)
	case FormatAdjacency:
		return adjacency.Render(ctx, d, adjacency.Options{Tolerance: opts.AdjacencyTolerance})
	}
	return nil, ValidateFormat(format)
}

// Digest returns the hex SHA-256 of an artifact.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
