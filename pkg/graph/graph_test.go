package graph

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/termgraph/pkg/canvas"
	"github.com/matzehuels/termgraph/pkg/errors"
	"github.com/matzehuels/termgraph/pkg/geom"
)

// recorder is a render.Surface that remembers every call in order.
type recorder struct {
	points []geom.Point
	texts  []string
	frames int
}

func (r *recorder) Set(x, y float64) { r.points = append(r.points, geom.Pt(x, y)) }

func (r *recorder) SetText(_, _ float64, text string) { r.texts = append(r.texts, text) }

func (r *recorder) Frame() string {
	r.frames++
	return "frame"
}

func mustNew(t *testing.T, opts ...Option) *Graph {
	t.Helper()
	g, err := New(opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

// twoNodes builds the 40x40 scenario: a at (0,0), b at (1,1), both 4x4,
// joined by an edge labeled "x".
func twoNodes(t *testing.T, opts ...Option) *Graph {
	t.Helper()
	g := mustNew(t, append([]Option{WithExtent(40, 40), WithDefaultShape(4, 4)}, opts...)...)
	if err := g.AddNode("a", WithPosition(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode("b", WithPosition(1, 1)); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("a", "b", WithLabel("x")); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewDefaults(t *testing.T) {
	g := mustNew(t)
	if x, y := g.Extent(); x != 300 || y != 135 {
		t.Errorf("Extent() = %d, %d, want 300, 135", x, y)
	}
	if s := g.DefaultShape(); s != (Shape{W: 10, H: 10}) {
		t.Errorf("DefaultShape() = %+v, want 10x10", s)
	}
	if g.Surface() == nil {
		t.Error("Surface() = nil")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		code errors.Code
	}{
		{"zero extent", []Option{WithExtent(0, 10)}, errors.ErrCodeInvalidConfig},
		{"negative extent", []Option{WithExtent(10, -1)}, errors.ErrCodeInvalidConfig},
		{"zero shape", []Option{WithDefaultShape(0, 4)}, errors.ErrCodeInvalidShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			if !errors.Is(err, tt.code) {
				t.Errorf("New() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestAddNodeDefaults(t *testing.T) {
	g := mustNew(t, WithDefaultShape(6, 8))
	if err := g.AddNode("n"); err != nil {
		t.Fatal(err)
	}
	n, ok := g.Node("n")
	if !ok {
		t.Fatal("node not found")
	}
	if n.Position != (geom.Point{}) {
		t.Errorf("Position = %v, want origin", n.Position)
	}
	if n.Shape != (Shape{W: 6, H: 8}) {
		t.Errorf("Shape = %+v, want default 6x8", n.Shape)
	}
	if !n.ShowLabel || n.ShowAttrs {
		t.Errorf("ShowLabel=%v ShowAttrs=%v, want true/false", n.ShowLabel, n.ShowAttrs)
	}
}

func TestAddNodeValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []NodeOption
		code errors.Code
	}{
		{"valid corner", []NodeOption{WithPosition(0, 1)}, ""},
		{"x out of range", []NodeOption{WithPosition(1.5, 0.2)}, errors.ErrCodeInvalidPosition},
		{"negative y", []NodeOption{WithPosition(0.5, -0.5)}, errors.ErrCodeInvalidPosition},
		{"NaN", []NodeOption{WithPosition(math.NaN(), 0)}, errors.ErrCodeInvalidPosition},
		{"zero width", []NodeOption{WithShape(0, 10)}, errors.ErrCodeInvalidShape},
		{"negative height", []NodeOption{WithShape(10, -2)}, errors.ErrCodeInvalidShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t)
			err := g.AddNode("n", tt.opts...)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("AddNode() error = %v", err)
				}
				if g.NodeCount() != 1 {
					t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Fatalf("AddNode() error = %v, want code %v", err, tt.code)
			}
			if g.NodeCount() != 0 {
				t.Errorf("failed AddNode changed the graph: NodeCount() = %d", g.NodeCount())
			}
		})
	}
}

func TestAddNodeOverwriteKeepsOrder(t *testing.T) {
	g := mustNew(t)
	for _, l := range []string{"a", "b", "c"} {
		if err := g.AddNode(l); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddNode("a", WithPosition(0.5, 0.5), WithShape(3, 3)); err != nil {
		t.Fatal(err)
	}

	if got := g.Labels(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Labels() = %v, want [a b c]", got)
	}
	n, _ := g.Node("a")
	if n.Position != geom.Pt(0.5, 0.5) || n.Shape != (Shape{W: 3, H: 3}) {
		t.Errorf("overwritten node = %+v", n)
	}
}

func TestAddNodeFailedOverwriteKeepsOriginal(t *testing.T) {
	g := mustNew(t)
	if err := g.AddNode("a", WithPosition(0.2, 0.3)); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode("a", WithPosition(2, 2)); !errors.Is(err, errors.ErrCodeInvalidPosition) {
		t.Fatalf("AddNode() error = %v, want INVALID_POSITION", err)
	}
	n, _ := g.Node("a")
	if n.Position != geom.Pt(0.2, 0.3) {
		t.Errorf("Position = %v, want unchanged (0.2, 0.3)", n.Position)
	}
}

func TestAddEdgeUnknownNode(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		missing  string
	}{
		{"missing target", "a", "z", "z"},
		{"missing source", "y", "a", "y"},
		{"both missing", "y", "z", "y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t)
			_ = g.AddNode("a")
			_ = g.AddNode("b")
			_ = g.AddEdge("a", "b")

			err := g.AddEdge(tt.from, tt.to, WithLabel("bad"))
			if !errors.Is(err, errors.ErrCodeUnknownNode) {
				t.Fatalf("AddEdge() error = %v, want UNKNOWN_NODE", err)
			}
			if !strings.Contains(err.Error(), `"`+tt.missing+`"`) {
				t.Errorf("error %q does not name %q", err, tt.missing)
			}
			if g.EdgeCount() != 1 {
				t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
			}
		})
	}
}

func TestAddEdgeOptions(t *testing.T) {
	g := mustNew(t)
	_ = g.AddNode("a")
	_ = g.AddNode("b")
	err := g.AddEdge("a", "b",
		WithLabel("road"),
		WithEdgeAttrs(Attr{Key: "cost", Value: 3}),
		HideEdgeLabel(),
		ShowEdgeAttrs(),
	)
	if err != nil {
		t.Fatal(err)
	}
	e := g.Edges()[0]
	if e.From != "a" || e.To != "b" || e.Label != "road" {
		t.Errorf("edge = %+v", e)
	}
	if got := e.Text(); got != ", cost: 3" {
		t.Errorf("Text() = %q, want %q", got, ", cost: 3")
	}
}

func TestAttrsWith(t *testing.T) {
	a := Attrs{{Key: "owner", Value: "Ethan"}}
	b := a.With("armies", 13).With("owner", "Ana")

	if len(a) != 1 || a[0].Value != "Ethan" {
		t.Errorf("With mutated the receiver: %v", a)
	}
	want := Attrs{{Key: "owner", Value: "Ana"}, {Key: "armies", Value: 13}}
	if !slices.Equal(b, want) {
		t.Errorf("With() = %v, want %v", b, want)
	}
	if v, ok := b.Get("armies"); !ok || v != 13 {
		t.Errorf("Get(armies) = %v, %v", v, ok)
	}
	if _, ok := b.Get("missing"); ok {
		t.Error("Get(missing) found a value")
	}
}

func TestApplyPositions(t *testing.T) {
	g := mustNew(t)
	_ = g.AddNode("a")
	_ = g.AddNode("b", WithPosition(0.9, 0.9))

	if err := g.ApplyPositions(map[string]geom.Point{"a": geom.Pt(0.25, 0.75)}); err != nil {
		t.Fatal(err)
	}
	if n, _ := g.Node("a"); n.Position != geom.Pt(0.25, 0.75) {
		t.Errorf("a moved to %v", n.Position)
	}
	if n, _ := g.Node("b"); n.Position != geom.Pt(0.9, 0.9) {
		t.Errorf("b moved to %v, want unchanged", n.Position)
	}
}

func TestApplyPositionsIsAtomic(t *testing.T) {
	tests := []struct {
		name string
		pos  map[string]geom.Point
		code errors.Code
	}{
		{"out of range", map[string]geom.Point{"a": geom.Pt(0.1, 0.1), "b": geom.Pt(1.5, 0)}, errors.ErrCodeInvalidPosition},
		{"unknown node", map[string]geom.Point{"a": geom.Pt(0.1, 0.1), "zz": geom.Pt(0, 0)}, errors.ErrCodeUnknownNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t)
			_ = g.AddNode("a", WithPosition(0.5, 0.5))
			_ = g.AddNode("b")

			if err := g.ApplyPositions(tt.pos); !errors.Is(err, tt.code) {
				t.Fatalf("ApplyPositions() error = %v, want %v", err, tt.code)
			}
			if n, _ := g.Node("a"); n.Position != geom.Pt(0.5, 0.5) {
				t.Errorf("a moved to %v despite error", n.Position)
			}
		})
	}
}

func TestDrawOrder(t *testing.T) {
	g := twoNodes(t)
	var r recorder
	frame := g.DrawOn(&r)

	if frame != "frame" || r.frames != 1 {
		t.Errorf("Frame called %d times, returned %q", r.frames, frame)
	}
	if want := []string{"a", "b", "x"}; !slices.Equal(r.texts, want) {
		t.Errorf("texts = %v, want %v", r.texts, want)
	}
	// Two 4x4 boxes contribute 2*(2*4+2*4) points before any edge point.
	boxPoints := 32
	if len(r.points) <= boxPoints {
		t.Fatalf("got %d points, want more than %d", len(r.points), boxPoints)
	}
	for _, p := range r.points[boxPoints:] {
		if insideBox(p, geom.Pt(0, 0), 2) || insideBox(p, geom.Pt(40, 40), 2) {
			t.Errorf("edge point %v inside a node box", p)
		}
	}
}

func TestDrawEndToEnd(t *testing.T) {
	c := canvas.New()
	g := twoNodes(t, WithSurface(c))
	frame := g.Draw()

	if !strings.Contains(frame, "x") || !strings.Contains(frame, "a") || !strings.Contains(frame, "b") {
		t.Fatalf("frame is missing labels:\n%s", frame)
	}

	// length 40*sqrt(2), midpoint step 28 lands near (19.8, 19.8).
	mid := 28 / math.Sqrt2
	if got := c.TextAt(mid, mid); got != 'x' {
		t.Errorf("TextAt(midpoint) = %q, want 'x'", got)
	}
	if got := c.TextAt(1, 0); got != 'a' {
		t.Errorf("node a label = %q, want 'a'", got)
	}
	if got := c.TextAt(41, 40); got != 'b' {
		t.Errorf("node b label = %q, want 'b'", got)
	}

	for _, corner := range []geom.Point{geom.Pt(-2, -2), geom.Pt(2, -2), geom.Pt(-2, 2), geom.Pt(38, 38)} {
		if !c.Get(corner.X, corner.Y) {
			t.Errorf("box corner %v not set", corner)
		}
	}

	step := 10 / math.Sqrt2
	if !c.Get(step, step) {
		t.Errorf("edge dot at step 10 (%v) not set", step)
	}
}

func TestDrawOnFreshCanvasIsIdempotent(t *testing.T) {
	g := twoNodes(t)
	first := g.DrawOn(canvas.New())
	second := g.DrawOn(canvas.New())
	if first != second {
		t.Errorf("frames differ:\n%s\n---\n%s", first, second)
	}
}

func TestDrawAccumulatesOnOwnCanvas(t *testing.T) {
	c := canvas.New()
	g := twoNodes(t, WithSurface(c))
	first := g.Draw()
	if again := g.Draw(); again != first {
		t.Errorf("redrawing unchanged graph changed the frame")
	}

	if err := g.ApplyPositions(map[string]geom.Point{"a": geom.Pt(0.5, 0)}); err != nil {
		t.Fatal(err)
	}
	g.Draw()

	// The old box at the origin is still on the shared canvas...
	if !c.Get(-2, -2) {
		t.Error("shared canvas lost the earlier drawing")
	}
	// ...but not on a fresh one.
	fresh := canvas.New()
	g.DrawOn(fresh)
	if fresh.Get(-2, -2) {
		t.Error("fresh canvas contains the old box")
	}
}

func TestDrawZeroLengthEdge(t *testing.T) {
	g := mustNew(t)
	_ = g.AddNode("a", WithPosition(0.5, 0.5))
	if err := g.AddEdge("a", "a", WithLabel("self")); err != nil {
		t.Fatal(err)
	}
	var r recorder
	g.DrawOn(&r)
	if slices.Contains(r.texts, "self") {
		t.Error("self-loop label was drawn")
	}
	if len(r.points) != 40 {
		t.Errorf("got %d points, want only the 10x10 box (40)", len(r.points))
	}
}

func insideBox(p, center geom.Point, half float64) bool {
	return math.Abs(p.X-center.X) < half && math.Abs(p.Y-center.Y) < half
}
