package layout

import (
	"context"
	"maps"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/termgraph/pkg/errors"
	"github.com/matzehuels/termgraph/pkg/geom"
)

var triangle = struct {
	nodes []string
	edges []Pair
}{
	nodes: []string{"n0", "n1", "n2"},
	edges: []Pair{{"n0", "n1"}, {"n1", "n2"}, {"n2", "n0"}},
}

func inUnitSquare(t *testing.T, pos map[string]geom.Point) {
	t.Helper()
	for label, p := range pos {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 || math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Errorf("%s at %v outside the unit square", label, p)
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", EngineNone, false},
		{"none", EngineNone, false},
		{"grid", EngineGrid, false},
		{"EADES", EngineEades, false},
		{"neato", EngineNeato, false},
		{"fdp", EngineFDP, false},
		{"circo", EngineCirco, false},
		{"spring", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, err := New(tt.name, Options{})
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidEngine) {
					t.Errorf("New() error = %v, want INVALID_ENGINE", err)
				}
				if Valid(tt.name) {
					t.Errorf("Valid(%q) = true", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if eng.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", eng.Name(), tt.want)
			}
		})
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()
	if o.Seed != DefaultSeed || o.Iterations != DefaultIterations || o.Margin != DefaultMargin || o.Logger == nil {
		t.Errorf("SetDefaults() = %+v", o)
	}

	o = Options{Seed: 7, Iterations: 10, Margin: 0.6}
	o.SetDefaults()
	if o.Seed != 7 || o.Iterations != 10 {
		t.Errorf("SetDefaults() overwrote explicit values: %+v", o)
	}
	if o.Margin != DefaultMargin {
		t.Errorf("Margin = %v, want default for out-of-range value", o.Margin)
	}
}

func TestNonePlacesNothing(t *testing.T) {
	pos, err := None{}.Positions(context.Background(), triangle.nodes, triangle.edges)
	if err != nil {
		t.Fatal(err)
	}
	if len(pos) != 0 {
		t.Errorf("got %d positions, want 0", len(pos))
	}
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		want  map[string]geom.Point
	}{
		{"empty", nil, map[string]geom.Point{}},
		{"single", []string{"a"}, map[string]geom.Point{"a": geom.Pt(0.5, 0.5)}},
		{
			"four",
			[]string{"a", "b", "c", "d"},
			map[string]geom.Point{
				"a": geom.Pt(0.25, 0.25), "b": geom.Pt(0.75, 0.25),
				"c": geom.Pt(0.25, 0.75), "d": geom.Pt(0.75, 0.75),
			},
		},
		{
			"three",
			[]string{"a", "b", "c"},
			map[string]geom.Point{
				"a": geom.Pt(0.25, 0.25), "b": geom.Pt(0.75, 0.25), "c": geom.Pt(0.25, 0.75),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Grid{}.Positions(context.Background(), tt.nodes, nil)
			if err != nil {
				t.Fatal(err)
			}
			if !maps.Equal(got, tt.want) {
				t.Errorf("Positions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGridMargin(t *testing.T) {
	got, err := Grid{Margin: 0.1}.Positions(context.Background(), []string{"a", "b"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Two nodes: 2 columns, 1 row; span 0.8.
	want := map[string]geom.Point{"a": geom.Pt(0.3, 0.5), "b": geom.Pt(0.7, 0.5)}
	for label, p := range want {
		if math.Abs(got[label].X-p.X) > 1e-9 || math.Abs(got[label].Y-p.Y) > 1e-9 {
			t.Errorf("%s = %v, want %v", label, got[label], p)
		}
	}
}

func TestGridCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Grid{}).Positions(ctx, []string{"a"}, nil); err == nil {
		t.Error("Positions() on canceled context returned nil error")
	}
}

func TestNormalize(t *testing.T) {
	raw := map[string]geom.Point{
		"a": geom.Pt(-10, 100),
		"b": geom.Pt(10, 300),
		"c": geom.Pt(0, 200),
	}

	got := Normalize(raw, 0, false)
	want := map[string]geom.Point{"a": geom.Pt(0, 0), "b": geom.Pt(1, 1), "c": geom.Pt(0.5, 0.5)}
	if !maps.Equal(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}

	flipped := Normalize(raw, 0, true)
	if flipped["a"] != geom.Pt(0, 1) || flipped["b"] != geom.Pt(1, 0) {
		t.Errorf("Normalize(flipY) = %v", flipped)
	}

	margined := Normalize(raw, 0.1, false)
	if math.Abs(margined["a"].X-0.1) > 1e-9 || math.Abs(margined["b"].Y-0.9) > 1e-9 {
		t.Errorf("Normalize(margin) = %v", margined)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]geom.Point
		want map[string]geom.Point
	}{
		{"empty", map[string]geom.Point{}, map[string]geom.Point{}},
		{"single", map[string]geom.Point{"a": geom.Pt(3, 4)}, map[string]geom.Point{"a": geom.Pt(0.5, 0.5)}},
		{
			"vertical line",
			map[string]geom.Point{"a": geom.Pt(5, 0), "b": geom.Pt(5, 10)},
			map[string]geom.Point{"a": geom.Pt(0.5, 0), "b": geom.Pt(0.5, 1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw, 0, false); !maps.Equal(got, tt.want) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEades(t *testing.T) {
	ctx := context.Background()
	eng, err := New(EngineEades, Options{Seed: 1, Iterations: 50})
	if err != nil {
		t.Fatal(err)
	}

	edges := append([]Pair{{"n0", "n0"}, {"n0", "n1"}}, triangle.edges...)
	nodes := append([]string{"lonely"}, triangle.nodes...)
	first, err := eng.Positions(ctx, nodes, edges)
	if err != nil {
		t.Fatalf("Positions() error = %v", err)
	}
	if len(first) != len(nodes) {
		t.Fatalf("got %d positions, want %d", len(first), len(nodes))
	}
	inUnitSquare(t, first)

	second, err := eng.Positions(ctx, nodes, edges)
	if err != nil {
		t.Fatal(err)
	}
	if !maps.Equal(first, second) {
		t.Error("same seed produced different layouts")
	}
}

func TestEadesUnknownEndpoint(t *testing.T) {
	eng := &Eades{Seed: 1, Updates: 5}
	_, err := eng.Positions(context.Background(), []string{"a"}, []Pair{{"a", "b"}})
	if !errors.Is(err, errors.ErrCodeUnknownNode) {
		t.Errorf("Positions() error = %v, want UNKNOWN_NODE", err)
	}
}

func TestEadesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	eng := &Eades{Seed: 1, Updates: 50}
	if _, err := eng.Positions(ctx, triangle.nodes, triangle.edges); err == nil {
		t.Error("Positions() on canceled context returned nil error")
	}
}

func TestGraphvizDOT(t *testing.T) {
	g := &Graphviz{Layout: EngineNeato, Seed: 3}
	dot, names, err := g.dot([]string{"Alaska", "North \"West\""}, []Pair{{"Alaska", "North \"West\""}})
	if err != nil {
		t.Fatal(err)
	}
	if names["Alaska"] != "n0" || names["North \"West\""] != "n1" {
		t.Errorf("names = %v", names)
	}
	for _, want := range []string{"graph G {", "start=3;", "n0;", "n1;", "n0 -- n1;"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if _, _, err := g.dot([]string{"a"}, []Pair{{"a", "b"}}); !errors.Is(err, errors.ErrCodeUnknownNode) {
		t.Errorf("dot() error = %v, want UNKNOWN_NODE", err)
	}
}

func TestParsePos(t *testing.T) {
	tests := []struct {
		in      string
		want    geom.Point
		wantErr bool
	}{
		{"27,18", geom.Pt(27, 18), false},
		{"99.5,-3.25", geom.Pt(99.5, -3.25), false},
		{"10,20!", geom.Pt(10, 20), false},
		{"", geom.Point{}, true},
		{"1;2", geom.Point{}, true},
		{"x,2", geom.Point{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePos(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePos() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parsePos() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGraphvizEngines(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz runtime is slow to start")
	}
	for _, name := range []string{EngineNeato, EngineFDP, EngineCirco} {
		t.Run(name, func(t *testing.T) {
			eng, err := New(name, Options{})
			if err != nil {
				t.Fatal(err)
			}
			pos, err := eng.Positions(context.Background(), triangle.nodes, triangle.edges)
			if err != nil {
				t.Fatalf("Positions() error = %v", err)
			}
			if len(pos) != len(triangle.nodes) {
				t.Fatalf("got %d positions, want %d", len(pos), len(triangle.nodes))
			}
			inUnitSquare(t, pos)
		})
	}
}
