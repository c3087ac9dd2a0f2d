package canvas

import (
	"strings"
	"testing"
)

func TestSetSingleDots(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want string
	}{
		{"TopLeft", 0, 0, "⠁"},
		{"TopRight", 1, 0, "⠈"},
		{"SecondRow", 0, 1, "⠂"},
		{"ThirdRowRight", 1, 2, "⠠"},
		{"BottomLeft", 0, 3, "⡀"},
		{"BottomRight", 1, 3, "⢀"},
		{"Truncated", 1.9, 3.7, "⢀"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Set(tt.x, tt.y)
			if got := c.Frame(); got != tt.want {
				t.Errorf("Frame() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFullCell(t *testing.T) {
	c := New()
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			c.Set(float64(x), float64(y))
		}
	}
	if got := c.Frame(); got != "⣿" {
		t.Errorf("Frame() = %q, want full braille cell", got)
	}
}

func TestSetIsIdempotent(t *testing.T) {
	c := New()
	c.Set(3, 5)
	once := c.Frame()
	c.Set(3, 5)
	if got := c.Frame(); got != once {
		t.Errorf("second Set changed frame: %q != %q", got, once)
	}
}

func TestNegativeCoordinates(t *testing.T) {
	c := New()
	c.Set(-2, -4)
	c.Set(0, 0)
	lines := strings.Split(c.Frame(), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), c.Frame())
	}
	if lines[0] != "⠁" {
		t.Errorf("line 0 = %q, want %q", lines[0], "⠁")
	}
	if lines[1] != " ⠁" {
		t.Errorf("line 1 = %q, want %q", lines[1], " ⠁")
	}
	if !c.Get(-2, -4) {
		t.Error("Get(-2, -4) = false, want true")
	}
	if c.Get(-1, -4) {
		t.Error("Get(-1, -4) = true, want false")
	}
}

func TestFrameSkippedRowsAreEmpty(t *testing.T) {
	c := New()
	c.Set(0, 0)
	c.Set(0, 8)
	if got, want := c.Frame(), "⠁\n\n⠁"; got != want {
		t.Errorf("Frame() = %q, want %q", got, want)
	}
}

func TestSetText(t *testing.T) {
	c := New()
	c.SetText(4, 4, "ab")
	if got, want := c.Frame(), "ab"; got != want {
		t.Errorf("Frame() = %q, want %q", got, want)
	}

	c.Set(0, 4)
	if got, want := c.Frame(), "⠁ ab"; got != want {
		t.Errorf("Frame() = %q, want %q", got, want)
	}
}

func TestTextWinsOverDots(t *testing.T) {
	c := New()
	c.Set(0, 0)
	c.SetText(0, 0, "x")
	if got := c.Frame(); got != "x" {
		t.Errorf("text should replace dots, got %q", got)
	}
	c.Set(1, 1)
	if got := c.Frame(); got != "x" {
		t.Errorf("dots should not overwrite text, got %q", got)
	}
	if c.Get(1, 1) {
		t.Error("Get inside text cell = true, want false")
	}
}

func TestEmptyTextIsNoop(t *testing.T) {
	c := New()
	c.SetText(10, 10, "")
	if !c.Empty() {
		t.Error("empty SetText should not touch the canvas")
	}
	if got := c.Frame(); got != "" {
		t.Errorf("Frame() = %q, want empty", got)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Set(1, 1)
	c.SetText(0, 0, "a")
	c.Clear()
	if !c.Empty() || c.Frame() != "" {
		t.Error("Clear should remove everything")
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, div, mod int }{
		{7, 2, 3, 1},
		{-1, 2, -1, 1},
		{-4, 4, -1, 0},
		{-5, 4, -2, 3},
		{0, 4, 0, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.div {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.div)
		}
		if got := floorMod(tt.a, tt.b); got != tt.mod {
			t.Errorf("floorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.mod)
		}
	}
}
