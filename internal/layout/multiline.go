package layout

// alignLines distributes leftover cross space among wrapped lines per
// AlignContent and re-aligns each line's children within its band.
func (c *container) alignLines(lineCount int, totalLineCross float64) {
	slack := c.innerCross - totalLineCross
	lines := float64(lineCount)
	fits := c.innerCross > totalLineCross

	var between float64
	lead := c.leadingPadCross

	switch c.plan.AlignContent {
	case AlignEnd:
		lead += slack
	case AlignCenter:
		lead += slack / 2
	case AlignStretch:
		if fits {
			between = slack / lines
		}
	case AlignSpaceAround:
		if fits {
			lead += slack / (2 * lines)
			if lineCount > 1 {
				between = slack / lines
			}
		} else {
			lead += slack / 2
		}
	case AlignSpaceBetween:
		if fits && lineCount > 1 {
			between = slack / (lines - 1)
		}
	}

	crossLeading := c.cross.leading()
	end := 0
	for i := 0; i < lineCount; i++ {
		start := end

		var lineCross float64
		j := start
		for ; j < len(c.children); j++ {
			child := c.children[j]
			plan := child.LayoutPlan()
			if plan.Atomic || plan.PositionType != Relative {
				continue
			}
			if child.LayoutState().LineIndex != i {
				break
			}
			if isLayoutDimDefined(child, c.cross) {
				lineCross = fmax(lineCross, dimWithMargin(child, c.cross, c.innerWidth))
			}
		}
		end = j
		lineCross += between

		for _, child := range c.children[start:end] {
			plan := child.LayoutPlan()
			if plan.Atomic || plan.PositionType != Relative {
				continue
			}
			cl := child.LayoutState()

			switch alignItem(c.node, child) {
			case AlignStart:
				cl.Position[crossLeading] = lead + leadingMargin(child, c.cross, c.innerWidth)
			case AlignEnd:
				cl.Position[crossLeading] = lead + lineCross -
					trailingMargin(child, c.cross, c.innerWidth) - cl.measured[c.cross.dim()]
			case AlignCenter:
				cl.Position[crossLeading] = lead + (lineCross-cl.measured[c.cross.dim()])/2
			case AlignStretch:
				cl.Position[crossLeading] = lead + leadingMargin(child, c.cross, c.innerWidth)
				if !isStyleDimDefined(child, c.cross, c.innerCross) {
					c.stretchToLine(child, lineCross)
				}
			}
		}
		lead += lineCross
	}
}

// stretchToLine lays a child out again when the band's cross size differs
// from the size it was laid out at.
func (c *container) stretchToLine(child Layoutable, lineCross float64) {
	cl := child.LayoutState()
	width := pick(c.main, cl.measured[DimensionWidth]+marginForAxis(child, c.main, c.innerWidth), lineCross)
	height := pick(c.main, lineCross, cl.measured[DimensionHeight]+marginForAxis(child, c.main, c.innerWidth))

	if floatsEqual(width, cl.measured[DimensionWidth]) && floatsEqual(height, cl.measured[DimensionHeight]) {
		return
	}
	c.p.visit(child, width, height, MeasureExactly, MeasureExactly, c.innerWidth, c.innerHeight, true, "multiline-stretch")
}
