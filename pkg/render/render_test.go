package render

import (
	"math"
	"testing"

	"github.com/matzehuels/termgraph/pkg/geom"
)

// recorder is a Surface that remembers every call.
type recorder struct {
	points []geom.Point
	texts  []textCall
	frames int
}

type textCall struct {
	at   geom.Point
	text string
}

func (r *recorder) Set(x, y float64) { r.points = append(r.points, geom.Pt(x, y)) }

func (r *recorder) SetText(x, y float64, text string) {
	r.texts = append(r.texts, textCall{at: geom.Pt(x, y), text: text})
}

func (r *recorder) Frame() string {
	r.frames++
	return ""
}

func (r *recorder) has(p geom.Point) bool {
	for _, q := range r.points {
		if q == p {
			return true
		}
	}
	return false
}

func TestDrawBoxPointCount(t *testing.T) {
	tests := []struct {
		name string
		box  Box
	}{
		{"Square", Box{Center: geom.Pt(20, 20), W: 4, H: 4}},
		{"Wide", Box{Center: geom.Pt(50, 10), W: 30, H: 10}},
		{"Odd", Box{Center: geom.Pt(7, 7), W: 5, H: 3}},
		{"Unit", Box{Center: geom.Pt(0, 0), W: 1, H: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			DrawBox(&r, tt.box, "n")
			if want := 2*tt.box.W + 2*tt.box.H; len(r.points) != want {
				t.Errorf("got %d points, want %d", len(r.points), want)
			}
		})
	}
}

func TestDrawBoxCorners(t *testing.T) {
	var r recorder
	b := Box{Center: geom.Pt(10, 10), W: 5, H: 5}
	DrawBox(&r, b, "")

	// hw = hh = 2 for an odd 5x5 box, which closes all four corners.
	for _, c := range []geom.Point{geom.Pt(8, 8), geom.Pt(12, 8), geom.Pt(8, 12), geom.Pt(12, 12)} {
		if !r.has(c) {
			t.Errorf("corner %v not set", c)
		}
	}
	for _, p := range r.points {
		onX := p.X == 8 || p.X == 12
		onY := p.Y == 8 || p.Y == 12
		if !onX && !onY {
			t.Errorf("point %v is not on the perimeter", p)
		}
	}
}

func TestDrawBoxEvenSizeUsesFloorHalf(t *testing.T) {
	var r recorder
	DrawBox(&r, Box{Center: geom.Pt(0, 0), W: 4, H: 4}, "")

	for _, c := range []geom.Point{geom.Pt(-2, -2), geom.Pt(2, -2), geom.Pt(-2, 2)} {
		if !r.has(c) {
			t.Errorf("corner %v not set", c)
		}
	}
	for _, p := range r.points {
		if p.X < -2 || p.X > 2 || p.Y < -2 || p.Y > 2 {
			t.Errorf("point %v outside footprint", p)
		}
	}
}

func TestDrawBoxLabelPlacement(t *testing.T) {
	var r recorder
	DrawBox(&r, Box{Center: geom.Pt(100, 40), W: 30, H: 10}, "Alaska")
	if len(r.texts) != 1 {
		t.Fatalf("got %d text calls, want 1", len(r.texts))
	}
	got := r.texts[0]
	if want := geom.Pt(100-15+LabelInset, 40); got.at != want {
		t.Errorf("label at %v, want %v", got.at, want)
	}
	if got.text != "Alaska" {
		t.Errorf("label = %q, want %q", got.text, "Alaska")
	}
}

func TestLabelText(t *testing.T) {
	attrs := []Attr{{Key: "owner", Value: "Ethan"}, {Key: "armies", Value: 13}}
	tests := []struct {
		name      string
		showName  bool
		showAttrs bool
		want      string
	}{
		{"NameOnly", true, false, "Peru"},
		{"NameAndAttrs", true, true, "Peru, owner: Ethan, armies: 13"},
		{"AttrsOnly", false, true, ", owner: Ethan, armies: 13"},
		{"Nothing", false, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelText("Peru", attrs, tt.showName, tt.showAttrs); got != tt.want {
				t.Errorf("LabelText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDrawEdgeZeroLength(t *testing.T) {
	var r recorder
	b := Box{Center: geom.Pt(5, 5), W: 4, H: 4}
	DrawEdge(&r, b, b, "loop")
	if len(r.points) != 0 || len(r.texts) != 0 {
		t.Errorf("zero-length edge drew %d points and %d labels", len(r.points), len(r.texts))
	}
}

func TestDrawEdgeSubPixel(t *testing.T) {
	var r recorder
	a := Box{Center: geom.Pt(5, 5), W: 4, H: 4}
	b := Box{Center: geom.Pt(5.5, 5.5), W: 4, H: 4}
	DrawEdge(&r, a, b, "tiny")
	if len(r.points) != 0 || len(r.texts) != 0 {
		t.Errorf("sub-pixel edge drew %d points and %d labels", len(r.points), len(r.texts))
	}
}

func TestDrawEdgeShortEdgeLabelAtStart(t *testing.T) {
	var r recorder
	a := Box{Center: geom.Pt(0, 0), W: 2, H: 2}
	b := Box{Center: geom.Pt(1.5, 0), W: 2, H: 2}
	DrawEdge(&r, a, b, "e")
	if len(r.texts) != 1 {
		t.Fatalf("got %d labels, want 1", len(r.texts))
	}
	if r.texts[0].at != geom.Pt(0, 0) {
		t.Errorf("label at %v, want start point", r.texts[0].at)
	}
}

func TestDrawEdgeClipsFarApartBoxes(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
	}{
		{"Horizontal", Box{Center: geom.Pt(0, 0), W: 10, H: 10}, Box{Center: geom.Pt(100, 0), W: 10, H: 10}},
		{"Vertical", Box{Center: geom.Pt(0, 0), W: 10, H: 10}, Box{Center: geom.Pt(0, 80), W: 10, H: 10}},
		{"Diagonal", Box{Center: geom.Pt(0, 0), W: 4, H: 4}, Box{Center: geom.Pt(40, 40), W: 4, H: 4}},
		{"Rectangular", Box{Center: geom.Pt(10, 90), W: 30, H: 10}, Box{Center: geom.Pt(150, 20), W: 30, H: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			DrawEdge(&r, tt.a, tt.b, "")
			if len(r.points) == 0 {
				t.Fatal("no points drawn")
			}
			for _, p := range r.points {
				if !Visible(p, tt.a, tt.b) {
					t.Errorf("point %v fails the clip predicate", p)
				}
				if inside(p, tt.a) || inside(p, tt.b) {
					t.Errorf("point %v is inside a box", p)
				}
			}
		})
	}
}

func TestDrawEdgeHorizontalRun(t *testing.T) {
	var r recorder
	a := Box{Center: geom.Pt(0, 0), W: 10, H: 10}
	b := Box{Center: geom.Pt(20, 0), W: 10, H: 10}
	DrawEdge(&r, a, b, "mid")

	// Steps 0..19; x must exceed 5 from both centers: x in 6..14.
	if len(r.points) != 9 {
		t.Errorf("got %d points, want 9: %v", len(r.points), r.points)
	}
	for _, p := range r.points {
		if p.X < 6 || p.X > 14 || p.Y != 0 {
			t.Errorf("unexpected point %v", p)
		}
	}
	if len(r.texts) != 1 || r.texts[0].at != geom.Pt(10, 0) || r.texts[0].text != "mid" {
		t.Errorf("label = %+v, want \"mid\" at (10, 0)", r.texts)
	}
}

func TestDrawEdgeMidpointLabel(t *testing.T) {
	var r recorder
	a := Box{Center: geom.Pt(0, 0), W: 4, H: 4}
	b := Box{Center: geom.Pt(40, 40), W: 4, H: 4}
	DrawEdge(&r, a, b, "x")
	if len(r.texts) != 1 {
		t.Fatalf("got %d labels, want 1", len(r.texts))
	}
	at := r.texts[0].at
	if math.Abs(at.X-20) > 1 || math.Abs(at.Y-20) > 1 {
		t.Errorf("label at %v, want near (20, 20)", at)
	}
}

func TestVisiblePredicate(t *testing.T) {
	a := Box{Center: geom.Pt(0, 0), W: 10, H: 4}
	b := Box{Center: geom.Pt(30, 30), W: 10, H: 4}
	tests := []struct {
		name string
		p    geom.Point
		want bool
	}{
		{"InsideA", geom.Pt(1, 1), false},
		{"InsideB", geom.Pt(29, 31), false},
		{"BetweenBoxes", geom.Pt(15, 15), true},
		// Near a in x but far in y from both: plotted via the y test.
		{"AboveAOutsideY", geom.Pt(2, 10), true},
		// Within a's half width and a's half height.
		{"BesideAWithinY", geom.Pt(4, 1), false},
		// Beside a: outside both in x, inside a's band in y.
		{"CornerOfA", geom.Pt(6, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(tt.p, a, b); got != tt.want {
				t.Errorf("Visible(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func inside(p geom.Point, b Box) bool {
	hw, hh := b.Half()
	return math.Abs(p.X-b.Center.X) < hw && math.Abs(p.Y-b.Center.Y) < hh
}
