package layout

import "math"

// round walks the subtree rooted at n, recording absolute positions and
// snapping geometry to the engine's grid. absLeft and absTop are the
// parent's unrounded absolute position. Sizes are derived from rounded
// edges so adjacent siblings never drift apart or overlap.
func (p *pass) round(n Layoutable, absLeft, absTop float64) {
	l := n.LayoutState()
	left := l.Position[EdgeLeft]
	top := l.Position[EdgeTop]
	width, height := l.Width, l.Height

	absLeft += left
	absTop += top
	absRight := absLeft + width
	absBottom := absTop + height

	if p.scale == 0 {
		l.AbsoluteLeft, l.AbsoluteTop = absLeft, absTop
	} else {
		// Text is never rounded down; a lost cell truncates a glyph.
		text := n.LayoutMeasure() != nil
		fracWidth := hasFraction(width * p.scale)
		fracHeight := hasFraction(height * p.scale)

		l.Position[EdgeLeft] = roundValue(left, p.scale, false, text)
		l.Position[EdgeTop] = roundValue(top, p.scale, false, text)

		roundedLeft := roundValue(absLeft, p.scale, false, text)
		roundedTop := roundValue(absTop, p.scale, false, text)
		l.Width = roundValue(absRight, p.scale, text && fracWidth, text && !fracWidth) - roundedLeft
		l.Height = roundValue(absBottom, p.scale, text && fracHeight, text && !fracHeight) - roundedTop
		l.AbsoluteLeft, l.AbsoluteTop = roundedLeft, roundedTop
	}

	for _, child := range n.LayoutChildren() {
		p.round(child, absLeft, absTop)
	}
}

// hasFraction reports whether v is not within tolerance of a whole number.
func hasFraction(v float64) bool {
	frac := v - math.Floor(v)
	return !floatsEqual(frac, 0) && !floatsEqual(frac, 1)
}
