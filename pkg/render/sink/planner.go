package sink

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/plan"
	"github.com/matzehuels/floorplan/pkg/project"
)

// DefaultPlannerUnitScale converts plot units (metres) to the scene's
// centimetres.
const DefaultPlannerUnitScale = 100.0

const plannerLayerID = "layer-1"

// plannerNamespace roots every scene id, so ids depend only on the drawing.
var plannerNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/floorplan/planner"))

// ============================================================
// React Planner scene
// ============================================================

type plannerLength struct {
	Length float64 `json:"length"`
}

type plannerSelection struct {
	Vertices []string `json:"vertices"`
	Lines    []string `json:"lines"`
	Holes    []string `json:"holes"`
	Areas    []string `json:"areas"`
	Items    []string `json:"items"`
}

type plannerVertex struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Prototype string   `json:"prototype"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Lines     []string `json:"lines"`
	Areas     []string `json:"areas"`
	Selected  bool     `json:"selected"`
}

type plannerLine struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Prototype  string         `json:"prototype"`
	Vertices   []string       `json:"vertices"`
	Holes      []string       `json:"holes"`
	Properties map[string]any `json:"properties"`
}

type plannerHole struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Prototype  string         `json:"prototype"`
	Offset     float64        `json:"offset"`
	Line       string         `json:"line"`
	Properties map[string]any `json:"properties"`
}

type plannerArea struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Prototype  string         `json:"prototype"`
	Vertices   []string       `json:"vertices"`
	Holes      []string       `json:"holes"`
	Properties map[string]any `json:"properties"`
}

type plannerGrid struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

type plannerGuides struct {
	Horizontal map[string]any `json:"horizontal"`
	Vertical   map[string]any `json:"vertical"`
	Circular   map[string]any `json:"circular"`
}

type plannerLayer struct {
	ID       string                   `json:"id"`
	Altitude float64                  `json:"altitude"`
	Order    int                      `json:"order"`
	Opacity  float64                  `json:"opacity"`
	Name     string                   `json:"name"`
	Visible  bool                     `json:"visible"`
	Vertices map[string]plannerVertex `json:"vertices"`
	Lines    map[string]plannerLine   `json:"lines"`
	Holes    map[string]plannerHole   `json:"holes"`
	Areas    map[string]plannerArea   `json:"areas"`
	Items    map[string]any           `json:"items"`
	Selected plannerSelection         `json:"selected"`
}

type plannerScene struct {
	Unit          string                  `json:"unit"`
	Layers        map[string]plannerLayer `json:"layers"`
	SelectedLayer string                  `json:"selectedLayer"`
	Grids         map[string]plannerGrid  `json:"grids"`
	Groups        map[string]any          `json:"groups"`
	Width         float64                 `json:"width"`
	Height        float64                 `json:"height"`
	Meta          map[string]any          `json:"meta"`
	Guides        plannerGuides           `json:"guides"`
}

// ============================================================
// Renderer
// ============================================================

// PlannerOption configures [RenderPlanner].
type PlannerOption func(*plannerRenderer)

type plannerRenderer struct {
	unitScale float64
}

// WithUnitScale sets how many scene centimetres one plot unit spans.
func WithUnitScale(s float64) PlannerOption {
	return func(r *plannerRenderer) { r.unitScale = s }
}

// RenderPlanner exports the drawing as a react-planner scene.
//
// Every room contributes four walls along the centerline of its wall band.
// Vertices at the same position are merged. Rooms become areas over their wall
// vertices, and every opening becomes a hole on the nearest parallel wall.
// All ids are name-based UUIDs derived from the drawing name and the element,
// so exporting the same drawing twice yields identical documents.
func RenderPlanner(d project.Drawing, opts ...PlannerOption) ([]byte, error) {
	r := plannerRenderer{unitScale: DefaultPlannerUnitScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.unitScale <= 0 || math.IsInf(r.unitScale, 0) || math.IsNaN(r.unitScale) {
		return nil, errors.Configuration("planner", "unit scale must be positive, got %g", r.unitScale)
	}

	b := newSceneBuilder(d.Name, r.unitScale)
	for _, room := range d.Rooms {
		b.addRoom(room.Name, room.Category, room.Inset(d.WallThickness/2), d.WallThickness)
	}
	for _, o := range d.Openings {
		b.addOpening(o)
	}

	layer := plannerLayer{
		ID:       plannerLayerID,
		Opacity:  1,
		Name:     "default",
		Visible:  true,
		Vertices: b.vertices,
		Lines:    b.lines,
		Holes:    b.holes,
		Areas:    b.areas,
		Items:    map[string]any{},
		Selected: plannerSelection{Vertices: []string{}, Lines: []string{}, Holes: []string{}, Areas: []string{}, Items: []string{}},
	}
	scene := plannerScene{
		Unit:          "cm",
		Layers:        map[string]plannerLayer{plannerLayerID: layer},
		SelectedLayer: plannerLayerID,
		Grids:         plannerGrids(),
		Groups:        map[string]any{},
		Width:         d.Plot.Width * r.unitScale,
		Height:        d.Plot.Height * r.unitScale,
		Meta:          map[string]any{"name": d.Name, "generator": buildinfo.Generator()},
		Guides: plannerGuides{
			Horizontal: map[string]any{},
			Vertical:   map[string]any{},
			Circular:   map[string]any{},
		},
	}

	data, err := json.MarshalIndent(scene, "", "  ")
	if err != nil {
		return nil, errors.Export("planner", err)
	}
	return data, nil
}

// sceneBuilder accumulates the scene graph. Vertices are merged by position
// and walls by their vertex pair.
type sceneBuilder struct {
	ns    uuid.UUID
	scale float64

	vertices  map[string]plannerVertex
	lines     map[string]plannerLine
	holes     map[string]plannerHole
	areas     map[string]plannerArea
	lineOrder []string

	vertexAt map[string]string
	lineAt   map[[2]string]string
}

func newSceneBuilder(name string, scale float64) *sceneBuilder {
	return &sceneBuilder{
		ns:       uuid.NewSHA1(plannerNamespace, []byte(name)),
		scale:    scale,
		vertices: map[string]plannerVertex{},
		lines:    map[string]plannerLine{},
		holes:    map[string]plannerHole{},
		areas:    map[string]plannerArea{},
		vertexAt: map[string]string{},
		lineAt:   map[[2]string]string{},
	}
}

func (b *sceneBuilder) id(kind, key string) string {
	return uuid.NewSHA1(b.ns, []byte(kind+":"+key)).String()
}

func (b *sceneBuilder) vertex(p geom.Point) string {
	x, y := p.X*b.scale, p.Y*b.scale
	key := fmt.Sprintf("%.6f,%.6f", x, y)
	if id, ok := b.vertexAt[key]; ok {
		return id
	}
	id := b.id("vertex", key)
	b.vertexAt[key] = id
	b.vertices[id] = plannerVertex{
		ID:        id,
		Name:      "Vertex",
		Type:      "vertex",
		Prototype: "vertices",
		X:         x,
		Y:         y,
		Lines:     []string{},
		Areas:     []string{},
	}
	return id
}

func (b *sceneBuilder) wall(v1, v2 string, thickness float64) {
	key := [2]string{v1, v2}
	if v2 < v1 {
		key = [2]string{v2, v1}
	}
	if _, ok := b.lineAt[key]; ok {
		return
	}
	id := b.id("line", key[0]+"-"+key[1])
	b.lineAt[key] = id
	b.lineOrder = append(b.lineOrder, id)
	b.lines[id] = plannerLine{
		ID:        id,
		Name:      "Wall",
		Type:      "wall",
		Prototype: "lines",
		Vertices:  []string{v1, v2},
		Holes:     []string{},
		Properties: map[string]any{
			"height":    plannerLength{Length: 300},
			"thickness": plannerLength{Length: thickness * b.scale},
			"textureA":  "bricks",
			"textureB":  "bricks",
		},
	}
	for _, v := range []string{v1, v2} {
		vx := b.vertices[v]
		vx.Lines = append(vx.Lines, id)
		b.vertices[v] = vx
	}
}

func (b *sceneBuilder) addRoom(name string, category plan.Category, center geom.Rect, thickness float64) {
	poly := center.Polygon()
	ids := make([]string, 0, 4)
	for _, p := range poly[:len(poly)-1] {
		ids = append(ids, b.vertex(p))
	}
	for i := range ids {
		b.wall(ids[i], ids[(i+1)%len(ids)], thickness)
	}

	areaID := b.id("area", name)
	for _, v := range ids {
		vx := b.vertices[v]
		vx.Areas = append(vx.Areas, areaID)
		b.vertices[v] = vx
	}
	b.areas[areaID] = plannerArea{
		ID:        areaID,
		Name:      name,
		Type:      "area",
		Prototype: "areas",
		Vertices:  ids,
		Holes:     []string{},
		Properties: map[string]any{
			"patternColor": CategoryFill(category),
			"thickness":    plannerLength{Length: 0},
		},
	}
}

func (b *sceneBuilder) addOpening(o project.OpeningSegment) {
	mid := o.Midpoint()
	p := geom.Point{X: mid.X * b.scale, Y: mid.Y * b.scale}
	lineID, offset, ok := b.nearestWall(p, o.Orientation)
	if !ok {
		return
	}

	id := b.id("hole", o.Name)
	b.holes[id] = plannerHole{
		ID:         id,
		Name:       o.Name,
		Type:       string(o.Kind),
		Prototype:  "holes",
		Offset:     offset,
		Line:       lineID,
		Properties: holeProperties(o.Kind, o.Length()*b.scale),
	}
	line := b.lines[lineID]
	line.Holes = append(line.Holes, id)
	b.lines[lineID] = line
}

// nearestWall finds the wall closest to p, preferring walls parallel to the
// opening. The offset is p's projection onto the wall as a fraction of its
// length, clamped to [0, 1].
func (b *sceneBuilder) nearestWall(p geom.Point, o plan.Orientation) (string, float64, bool) {
	var (
		best       string
		bestOffset float64
		bestDist   = math.Inf(1)
		bestPar    bool
	)
	for _, id := range b.lineOrder {
		line := b.lines[id]
		v1, v2 := b.vertices[line.Vertices[0]], b.vertices[line.Vertices[1]]
		dist, offset := pointToSegment(p, geom.Point{X: v1.X, Y: v1.Y}, geom.Point{X: v2.X, Y: v2.Y})
		parallel := (o == plan.Horizontal && v1.Y == v2.Y) || (o == plan.Vertical && v1.X == v2.X)
		better := dist < bestDist
		if parallel != bestPar {
			better = parallel
		}
		if best == "" || better {
			best, bestOffset, bestDist, bestPar = id, offset, dist, parallel
		}
	}
	return best, bestOffset, best != ""
}

func pointToSegment(p, a, b geom.Point) (dist, t float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y), 0
	}
	t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy)), t
}

func holeProperties(kind plan.OpeningKind, width float64) map[string]any {
	if kind == plan.Window {
		return map[string]any{
			"width":     plannerLength{Length: width},
			"height":    plannerLength{Length: 100},
			"altitude":  plannerLength{Length: 90},
			"thickness": plannerLength{Length: 10},
		}
	}
	return map[string]any{
		"width":           plannerLength{Length: width},
		"height":          plannerLength{Length: 215},
		"altitude":        plannerLength{Length: 0},
		"thickness":       plannerLength{Length: 30},
		"flip_orizzontal": false,
	}
}

func plannerGrids() map[string]plannerGrid {
	colors := []string{"#808080", "#ddd", "#ddd", "#ddd", "#ddd"}
	return map[string]plannerGrid{
		"h1": {ID: "h1", Type: "horizontal-streak", Properties: map[string]any{"step": 20, "colors": colors}},
		"v1": {ID: "v1", Type: "vertical-streak", Properties: map[string]any{"step": 20, "colors": colors}},
	}
}
