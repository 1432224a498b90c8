package ascii

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Canvas is a 2D grid of cells that arranged geometry is painted into.
// Coordinates are absolute cells with (0, 0) at the top-left; writes
// outside the grid are dropped.
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// NewCanvas creates a grid of the specified dimensions filled with spaces.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width = max(0, width)
	height = max(0, height)

	cells := make([]Cell, width*height)
	blank := NewCell(' ')
	for i := range cells {
		cells[i] = blank
	}

	return &Canvas{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// Rect returns the canvas bounds as a Rect starting at (0, 0).
func (c *Canvas) Rect() Rect {
	return NewRect(0, 0, c.width, c.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Cell returns the cell at (x, y), or an empty Cell when out of bounds.
func (c *Canvas) Cell(x, y int) Cell {
	i := c.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return c.cells[i]
}

func (c *Canvas) setCell(x, y int, cell Cell) {
	if i := c.idx(x, y); i >= 0 {
		c.cells[i] = cell
	}
}

// SetRune sets a rune at (x, y). A wide rune also claims x+1 as its
// continuation; any wide character it overlaps is blanked whole.
// A wide rune that would straddle the right edge becomes a space.
func (c *Canvas) SetRune(x, y int, r rune) {
	if c.idx(x, y) < 0 {
		return
	}

	width := RuneWidth(r)
	current := c.Cell(x, y)

	if current.IsContinuation() || current.Width == 2 {
		c.clearWideCharAt(x, y)
	}
	if width == 2 && x+1 < c.width {
		if next := c.Cell(x+1, y); next.Width == 2 || next.IsContinuation() {
			c.clearWideCharAt(x+1, y)
		}
	}

	if width == 2 && x+1 >= c.width {
		c.setCell(x, y, NewCell(' '))
		return
	}

	c.setCell(x, y, Cell{Rune: r, Width: uint8(width)})
	if width == 2 {
		c.setCell(x+1, y, Cell{})
	}
}

// clearWideCharAt blanks the wide character covering (x, y).
func (c *Canvas) clearWideCharAt(x, y int) {
	cell := c.Cell(x, y)
	blank := NewCell(' ')

	switch {
	case cell.IsContinuation():
		c.setCell(x-1, y, blank)
		c.setCell(x, y, blank)
	case cell.Width == 2:
		c.setCell(x, y, blank)
		c.setCell(x+1, y, blank)
	}
}

// SetString writes s starting at (x, y) and returns the display width
// written. Writing stops at the canvas edge without wrapping; zero-width
// runes are skipped.
func (c *Canvas) SetString(x, y int, s string) int {
	return c.SetStringClipped(x, y, s, c.Rect())
}

// SetStringClipped writes s starting at (x, y), dropping every cell outside
// clip. A wide rune that would straddle the clip's right edge is dropped.
// Returns the display width of the runes written.
func (c *Canvas) SetStringClipped(x, y int, s string, clip Rect) int {
	clip = clip.Intersect(c.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	curX := x
	for _, r := range s {
		if runewidth.RuneWidth(r) == 0 {
			continue
		}
		width := RuneWidth(r)

		if curX >= clip.Right() {
			break
		}
		if curX >= clip.X && curX+width <= clip.Right() {
			c.SetRune(curX, y, r)
			written += width
		}
		curX += width
	}
	return written
}

// Fill fills rect with r. When a wide rune does not fit at the end of a
// row, the last cell gets a space.
func (c *Canvas) Fill(rect Rect, r rune) {
	rect = rect.Intersect(c.Rect())
	if rect.IsEmpty() {
		return
	}

	width := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				c.SetRune(x, y, ' ')
				x++
				continue
			}
			c.SetRune(x, y, r)
			x += width
		}
	}
}

// Clear resets every cell to a space.
func (c *Canvas) Clear() {
	blank := NewCell(' ')
	for i := range c.cells {
		c.cells[i] = blank
	}
}

// String renders the canvas with rows separated by newlines.
// Continuation cells are skipped.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		c.writeRow(&sb, y)
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed renders the canvas with trailing spaces removed from each row.
func (c *Canvas) StringTrimmed() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		var row strings.Builder
		c.writeRow(&row, y)
		sb.WriteString(strings.TrimRight(row.String(), " "))
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (c *Canvas) writeRow(sb *strings.Builder, y int) {
	for x := 0; x < c.width; x++ {
		cell := c.cells[y*c.width+x]
		switch {
		case cell.IsContinuation():
		case cell.Rune == 0:
			sb.WriteByte(' ')
		default:
			sb.WriteRune(cell.Rune)
		}
	}
}
