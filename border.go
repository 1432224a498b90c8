package ascii

// BorderStyle selects the glyphs DrawBox uses.
type BorderStyle int

const (
	BorderNone    BorderStyle = iota
	BorderASCII               // + - |
	BorderSingle              // ┌ ─ │
	BorderDouble              // ╔ ═ ║
	BorderRounded             // ╭ ─ │
	BorderThick               // ┏ ━ ┃
)

// ParseBorderStyle maps a name such as "rounded" to its style.
func ParseBorderStyle(name string) (BorderStyle, bool) {
	switch name {
	case "none", "":
		return BorderNone, true
	case "ascii":
		return BorderASCII, true
	case "single":
		return BorderSingle, true
	case "double":
		return BorderDouble, true
	case "rounded":
		return BorderRounded, true
	case "thick":
		return BorderThick, true
	}
	return BorderNone, false
}

// BorderChars are the eight glyphs of a box outline.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

func corners(tl, tr, bl, br, h, v rune) BorderChars {
	return BorderChars{
		TopLeft: tl, Top: h, TopRight: tr,
		Left: v, Right: v,
		BottomLeft: bl, Bottom: h, BottomRight: br,
	}
}

// Chars returns the glyphs for b. BorderNone draws spaces.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderASCII:
		return corners('+', '+', '+', '+', '-', '|')
	case BorderSingle:
		return corners('┌', '┐', '└', '┘', '─', '│')
	case BorderDouble:
		return corners('╔', '╗', '╚', '╝', '═', '║')
	case BorderRounded:
		return corners('╭', '╮', '╰', '╯', '─', '│')
	case BorderThick:
		return corners('┏', '┓', '┗', '┛', '━', '┃')
	default:
		return corners(' ', ' ', ' ', ' ', ' ', ' ')
	}
}

// DrawBox outlines rect, clipped to the canvas. Nothing is drawn when the
// clipped box is narrower or shorter than two cells.
func (c *Canvas) DrawBox(rect Rect, border BorderStyle) {
	if border == BorderNone {
		return
	}
	rect = rect.Intersect(c.Rect())
	if rect.Width < 2 || rect.Height < 2 {
		return
	}

	g := border.Chars()
	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.Right()-1, rect.Bottom()-1

	for x := x0 + 1; x < x1; x++ {
		c.SetRune(x, y0, g.Top)
		c.SetRune(x, y1, g.Bottom)
	}
	for y := y0 + 1; y < y1; y++ {
		c.SetRune(x0, y, g.Left)
		c.SetRune(x1, y, g.Right)
	}
	c.SetRune(x0, y0, g.TopLeft)
	c.SetRune(x1, y0, g.TopRight)
	c.SetRune(x0, y1, g.BottomLeft)
	c.SetRune(x1, y1, g.BottomRight)
}
