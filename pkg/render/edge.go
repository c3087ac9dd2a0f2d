package render

import (
	"math"

	"github.com/matzehuels/termgraph/pkg/geom"
)

// DrawEdge plots a straight line from the center of from to the center of
// to, one dot per pixel step, skipping dots that [Visible] rejects. The
// label is overlaid at step ⌊length/2⌋.
//
// A zero-length edge draws nothing. An edge shorter than one pixel has no
// steps, so neither dots nor label appear.
func DrawEdge(s Surface, from, to Box, text string) {
	c0, c1 := from.Center, to.Center
	length := geom.Distance(c0, c1)
	if length == 0 {
		return
	}
	dir := geom.UnitDirection(c0, c1)

	steps := int(math.Floor(length))
	for i := 0; i < steps; i++ {
		p := geom.LerpAlong(c0, dir, float64(i))
		if Visible(p, from, to) {
			s.Set(p.X, p.Y)
		}
	}

	if mid := int(math.Floor(length / 2)); mid < steps {
		p := geom.LerpAlong(c0, dir, float64(mid))
		s.SetText(p.X, p.Y, text)
	}
}

// Visible reports whether an edge point p between boxes a and b is plotted.
//
// p is plotted when it lies beyond both half widths in x, or beyond both
// half heights in y. Points inside either box always fail both tests.
func Visible(p geom.Point, a, b Box) bool {
	ahw, ahh := a.Half()
	bhw, bhh := b.Half()
	outX := math.Abs(p.X-a.Center.X) > ahw && math.Abs(p.X-b.Center.X) > bhw
	outY := math.Abs(p.Y-a.Center.Y) > ahh && math.Abs(p.Y-b.Center.Y) > bhh
	return outX || outY
}
