// Package geom provides the small amount of planar vector math used by the
// rasterizers: distances, unit directions and stepping along a segment.
//
// All values are float64 and no function allocates. A zero-length segment
// has the zero direction (see [UnitDirection]) rather than NaN components,
// which lets callers skip degenerate edges without special casing.
package geom

import "math"

// Point is a position or vector in the plane.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p*k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Distance returns the Euclidean norm of b-a.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// UnitDirection returns the normalized direction from a to b.
// When a == b the segment has no direction and the zero vector is returned.
func UnitDirection(a, b Point) Point {
	l := Distance(a, b)
	if l == 0 {
		return Point{}
	}
	return Point{X: (b.X - a.X) / l, Y: (b.Y - a.Y) / l}
}

// LerpAlong returns the point d units from a along dir.
func LerpAlong(a, dir Point, d float64) Point {
	return a.Add(dir.Scale(d))
}
