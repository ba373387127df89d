package sink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/plan"
	"github.com/matzehuels/floorplan/pkg/project"
)

func referenceDrawing(t *testing.T) (project.Drawing, layout.Layout) {
	t.Helper()
	p := plan.Reference().WithDefaults()
	l, err := layout.Build(p)
	require.NoError(t, err)
	d, err := project.Project(p.Name, l, p.Openings)
	require.NoError(t, err)
	return d, l
}

func TestRenderSVG(t *testing.T) {
	d, _ := referenceDrawing(t)

	data, err := RenderSVG(d)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="1040.000" height="640.000"`)
	assert.Contains(t, out, `viewBox="-1.000 -1.000 52.000 32.000"`)
	assert.Contains(t, out, "<title>reference-50x30</title>")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))

	for _, id := range []string{"boundary", "corridor", "rooms", "walls", "openings", "labels"} {
		assert.Contains(t, out, `<g id="`+id+`">`)
	}
	assert.Equal(t, 7, strings.Count(out, `id="room-`))
	assert.Equal(t, 7, strings.Count(out, `id="wall-`))
	assert.Equal(t, 7, strings.Count(out, "</text>"))
}

func TestRenderSVGFlipsYAxis(t *testing.T) {
	d, _ := referenceDrawing(t)

	data, err := RenderSVG(d)
	require.NoError(t, err)
	out := string(data)

	// Kitchen spans y 22..29 in plan coordinates, so its top edge lands at 30 - 29.
	assert.Contains(t, out, `<rect x="20.000" y="1.000" width="27.000" height="7.000" id="room-Kitchen"`)
	// door-1 runs vertically from y 4.5 to 7.5.
	assert.Contains(t, out, `<line x1="12.000" y1="25.500" x2="12.000" y2="22.500" id="door-door-1"`)
	// window-1 sits on the top boundary.
	assert.Contains(t, out, `<line x1="4.000" y1="0.000" x2="8.000" y2="0.000" id="window-window-1"`)
}

func TestRenderSVGOptions(t *testing.T) {
	d, _ := referenceDrawing(t)

	data, err := RenderSVG(d, WithSVGScale(10), WithPadding(0), WithoutMarkers())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `width="500.000" height="300.000"`)
	assert.Contains(t, out, `viewBox="0.000 0.000 50.000 30.000"`)
	assert.NotContains(t, out, markerStyle)
}

func TestRenderSVGEscapesNames(t *testing.T) {
	d, _ := referenceDrawing(t)
	d.Rooms[0].Name = `Kid's "Den" & Co`
	d.Labels[0].Text = d.Rooms[0].Name

	data, err := RenderSVG(d)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `id="room-Kid&#39;s &#34;Den&#34; &amp; Co"`)
	assert.Contains(t, out, `Kid&#39;s &#34;Den&#34; &amp; Co</text>`)
}

func TestRenderSVGErrors(t *testing.T) {
	d, _ := referenceDrawing(t)

	tests := []struct {
		name string
		d    project.Drawing
		opts []SVGOption
	}{
		{"zero scale", d, []SVGOption{WithSVGScale(0)}},
		{"negative padding", d, []SVGOption{WithPadding(-1)}},
		{"empty plot", project.Drawing{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderSVG(tt.d, tt.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeConfiguration))
		})
	}
}

func TestWallPath(t *testing.T) {
	d, _ := referenceDrawing(t)
	f := flipper{h: d.Plot.Height}

	path := f.loops(1, d.Walls[0].Outer, d.Walls[0].Inner)
	assert.Equal(t, 2, strings.Count(path, "M"))
	assert.Equal(t, 6, strings.Count(path, "L"))
	assert.Equal(t, 2, strings.Count(path, "Z"))
	assert.True(t, strings.HasPrefix(path, "M1.0,29.0 "))
}

func TestCategoryFill(t *testing.T) {
	for _, c := range plan.Categories {
		assert.NotEmpty(t, CategoryFill(c), c)
	}
	assert.Equal(t, CategoryFill(plan.Other), CategoryFill("garage"))
}
