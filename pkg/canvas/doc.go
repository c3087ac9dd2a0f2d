// Package canvas implements a braille dot canvas for terminal output.
//
// # Overview
//
// Every terminal cell holds one Unicode braille character (U+2800–U+28FF),
// which encodes a 2×4 grid of dots. A canvas therefore has twice the
// horizontal and four times the vertical resolution of the terminal:
//
//	pixel (x, y)  →  cell (⌊x/2⌋, ⌊y/4⌋), dot (x mod 2, y mod 4)
//
// The canvas is sparse and unbounded. Negative coordinates are valid and
// [Canvas.Frame] renders exactly the occupied region.
//
// # Text
//
// [Canvas.SetText] writes one rune per cell starting at the cell containing
// the given pixel. Text replaces any dots in those cells and dots never
// overwrite text, so labels stay readable when lines run through them.
//
// # Usage
//
//	c := canvas.New()
//	c.Set(0, 0)
//	c.Set(1, 1)
//	c.SetText(0, 4, "hi")
//	fmt.Println(c.Frame())
//
// # Concurrency
//
// A Canvas is not safe for concurrent use. Drawing is expected to happen
// from a single goroutine, typically one canvas per rendered frame.
package canvas
