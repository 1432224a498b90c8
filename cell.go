package ascii

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell on a Canvas.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds
// the rune and the second is marked as a continuation.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: uint8(RuneWidth(r))}
}

// IsContinuation returns true if this cell is the trailing half of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsEmpty returns true for a blank cell.
func (c Cell) IsEmpty() bool {
	return c.Rune == 0 || c.Rune == ' '
}

// RuneWidth returns the number of cells r occupies: 1 or 2.
// Zero-width runes still take one cell so a Cell is never invisible.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}
