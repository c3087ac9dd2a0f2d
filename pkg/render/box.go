package render

import "github.com/matzehuels/termgraph/pkg/geom"

// LabelInset is the horizontal distance in pixels between a box's left
// border and the start of its label.
const LabelInset = 3

// Box is a node's footprint in pixel space.
type Box struct {
	Center geom.Point
	W, H   int
}

// Half returns the half width and half height using integer division,
// matching the rasterized footprint of the box.
func (b Box) Half() (hw, hh float64) {
	return float64(b.W / 2), float64(b.H / 2)
}

// DrawBox plots the perimeter of b and places text inside it.
//
// The top and bottom borders get W dots each and the left and right borders
// H dots each, so exactly 2W+2H points are set. The label starts
// [LabelInset] pixels right of the left border on the box's center line.
func DrawBox(s Surface, b Box, text string) {
	hw, hh := b.Half()
	x, y := b.Center.X, b.Center.Y

	for i := 0; i < b.W; i++ {
		s.Set(x-hw+float64(i), y-hh)
		s.Set(x-hw+float64(i), y+hh)
	}
	for i := 0; i < b.H; i++ {
		s.Set(x-hw, y-hh+float64(i))
		s.Set(x+hw, y-hh+float64(i))
	}

	s.SetText(x-hw+LabelInset, y, text)
}
