package layout

// flexLine is a run of children laid out together along the main axis.
type flexLine struct {
	start, end int // children[start:end], including atomic and absolute ones
	items      int // in-flow children on the line
	relative   []Layoutable

	sizeConsumed      float64 // clamped main lengths plus margins
	totalGrow         float64
	totalShrinkScaled float64 // sum of -shrink * tentative main length

	remainingFreeSpace float64
	leadingMain        float64
	betweenMain        float64
	canSkipFlex        bool

	mainDim      float64 // main extent including padding
	contentCross float64 // largest child cross size with margin
	crossDim     float64 // cross extent of the line, clamped
}

// collectLine gathers children from start into one line. With wrapping, a
// child that would overflow the available main size starts the next line
// unless the line is still empty.
func (c *container) collectLine(start, index int) *flexLine {
	line := &flexLine{start: start, end: start}

	var consumedWithMin float64
	for i := start; i < len(c.children); i++ {
		child := c.children[i]
		plan := child.LayoutPlan()
		if plan.Atomic {
			line.end++
			continue
		}
		cl := child.LayoutState()
		cl.LineIndex = index

		if plan.PositionType != Absolute {
			margin := marginForAxis(child, c.main, c.innerWidth)
			clamped := fmax(
				plan.MinDimension(c.main.dim()).resolve(c.mainParentSize),
				fmin(plan.MaxDimension(c.main.dim()).resolve(c.mainParentSize), cl.tentativeMain))

			if consumedWithMin+clamped+margin > c.innerMain && c.wrap && line.items > 0 {
				break
			}

			consumedWithMin += clamped + margin
			line.sizeConsumed += clamped + margin
			line.items++

			if isFlex(child) {
				line.totalGrow += flexGrow(child)
				line.totalShrinkScaled += -flexShrink(child) * cl.tentativeMain
			}
			line.relative = append(line.relative, child)
		}
		line.end++
	}

	// Floor the pools to 1 so a tiny total cannot amplify a child's share.
	if line.totalGrow > 0 && line.totalGrow < 1 {
		line.totalGrow = 1
	}
	if line.totalShrinkScaled > 0 && line.totalShrinkScaled < 1 {
		line.totalShrinkScaled = 1
	}
	return line
}
