package canvas

import (
	"strings"
)

// brailleOffset is the code point of the empty braille pattern.
const brailleOffset = 0x2800

// pixelMap maps a dot position inside a cell (row y mod 4, column x mod 2)
// to its bit in the braille pattern.
var pixelMap = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// cell is either a set of braille dots or a single text rune.
type cell struct {
	dots uint8
	text rune
}

// Canvas is a sparse braille dot canvas.
// The zero value is not usable; use New.
type Canvas struct {
	rows map[int]map[int]cell
}

// New returns an empty canvas.
func New() *Canvas {
	return &Canvas{rows: make(map[int]map[int]cell)}
}

// Set marks the dot at pixel (x, y). Fractional coordinates are truncated
// toward zero. Setting a dot inside a text cell has no effect.
func (c *Canvas) Set(x, y float64) {
	px, py := int(x), int(y)
	col, row := floorDiv(px, 2), floorDiv(py, 4)
	r := c.row(row)
	cur := r[col]
	if cur.text != 0 {
		return
	}
	cur.dots |= pixelMap[floorMod(py, 4)][floorMod(px, 2)]
	r[col] = cur
}

// SetText writes text starting at the cell containing pixel (x, y), one
// rune per cell, replacing whatever the cells held before.
func (c *Canvas) SetText(x, y float64, text string) {
	if text == "" {
		return
	}
	col, row := floorDiv(int(x), 2), floorDiv(int(y), 4)
	r := c.row(row)
	i := 0
	for _, ch := range text {
		r[col+i] = cell{text: ch}
		i++
	}
}

// Get reports whether the dot at pixel (x, y) is set.
func (c *Canvas) Get(x, y float64) bool {
	px, py := int(x), int(y)
	r, ok := c.rows[floorDiv(py, 4)]
	if !ok {
		return false
	}
	cur := r[floorDiv(px, 2)]
	return cur.text == 0 && cur.dots&pixelMap[floorMod(py, 4)][floorMod(px, 2)] != 0
}

// TextAt returns the text rune in the cell containing pixel (x, y), or 0
// when the cell holds dots or nothing.
func (c *Canvas) TextAt(x, y float64) rune {
	r, ok := c.rows[floorDiv(int(y), 4)]
	if !ok {
		return 0
	}
	return r[floorDiv(int(x), 2)].text
}

// Rows returns the frame split into lines.
func (c *Canvas) Rows() []string {
	f := c.Frame()
	if f == "" {
		return nil
	}
	return strings.Split(f, "\n")
}

// Clear removes all dots and text.
func (c *Canvas) Clear() {
	c.rows = make(map[int]map[int]cell)
}

// Empty reports whether nothing has been drawn.
func (c *Canvas) Empty() bool {
	return len(c.rows) == 0
}

// Frame renders the occupied region as lines of text joined by newlines.
//
// Rows span from the topmost to the bottommost occupied row; rows with
// nothing drawn render as empty lines. Every line starts at the leftmost
// occupied column of the whole canvas and ends at its own rightmost
// occupied column. Empty cells render as spaces.
func (c *Canvas) Frame() string {
	if len(c.rows) == 0 {
		return ""
	}

	minRow, maxRow, minCol := c.bounds()
	lines := make([]string, 0, maxRow-minRow+1)
	var sb strings.Builder
	for rn := minRow; rn <= maxRow; rn++ {
		r, ok := c.rows[rn]
		if !ok || len(r) == 0 {
			lines = append(lines, "")
			continue
		}
		maxCol := minCol
		for col := range r {
			if col > maxCol {
				maxCol = col
			}
		}
		sb.Reset()
		for col := minCol; col <= maxCol; col++ {
			sb.WriteRune(r[col].render())
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) bounds() (minRow, maxRow, minCol int) {
	first := true
	colSet := false
	for rn, r := range c.rows {
		if first || rn < minRow {
			minRow = rn
		}
		if first || rn > maxRow {
			maxRow = rn
		}
		first = false
		for col := range r {
			if !colSet || col < minCol {
				minCol = col
				colSet = true
			}
		}
	}
	return minRow, maxRow, minCol
}

func (c *Canvas) row(n int) map[int]cell {
	r, ok := c.rows[n]
	if !ok {
		r = make(map[int]cell)
		c.rows[n] = r
	}
	return r
}

func (cl cell) render() rune {
	switch {
	case cl.text != 0:
		return cl.text
	case cl.dots == 0:
		return ' '
	default:
		return rune(brailleOffset + int(cl.dots))
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv, always in [0, b).
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
