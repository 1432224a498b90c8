package layout

// justifyMain places a line's children along the main axis and records the
// line's main extent and the largest child cross size.
func (c *container) justifyMain(line *flexLine) {
	remaining := line.remainingFreeSpace

	// A fit-content container only owns free space its min size demands.
	if c.modeMain == MeasureAtMost && remaining > 0 {
		minMain := c.plan.MinDimension(c.main.dim())
		if mn := minMain.resolve(c.mainParentSize); minMain.Unit != UnitUndefined && mn >= 0 {
			remaining = fmax(0, mn-(c.innerMain-remaining))
		} else {
			remaining = 0
		}
	}

	autoMargins := 0
	for _, child := range c.children[line.start:line.end] {
		if child.LayoutPlan().Atomic || child.LayoutPlan().PositionType != Relative {
			continue
		}
		if isAutoMargin(child, c.main.leading()) {
			autoMargins++
		}
		if isAutoMargin(child, c.main.trailing()) {
			autoMargins++
		}
	}

	if autoMargins == 0 {
		items := float64(line.items)
		switch c.plan.JustifyContent {
		case JustifyCenter:
			line.leadingMain = remaining / 2
		case JustifyEnd:
			line.leadingMain = remaining
		case JustifySpaceBetween:
			if line.items > 1 {
				line.betweenMain = fmax(remaining, 0) / (items - 1)
			}
		case JustifySpaceEvenly:
			line.betweenMain = remaining / (items + 1)
			line.leadingMain = line.betweenMain
		case JustifySpaceAround:
			if line.items > 0 {
				line.betweenMain = remaining / items
				line.leadingMain = line.betweenMain / 2
			}
		}
	}

	mainDim := c.leadingPadMain + line.leadingMain
	var crossDim float64
	leading := c.main.leading()

	for _, child := range c.children[line.start:line.end] {
		plan := child.LayoutPlan()
		if plan.Atomic {
			continue
		}
		cl := child.LayoutState()

		if plan.PositionType == Absolute {
			if c.performLayout {
				if isLeadingPosDefined(child, c.main) {
					cl.Position[leading] = leadingPosition(child, c.main, c.innerMain) +
						leadingMargin(child, c.main, c.innerWidth)
				} else {
					cl.Position[leading] += line.leadingMain
				}
			}
			continue
		}

		if isAutoMargin(child, leading) {
			mainDim += remaining / float64(autoMargins)
		}
		if c.performLayout {
			cl.Position[leading] += mainDim
		}
		if isAutoMargin(child, c.main.trailing()) {
			mainDim += remaining / float64(autoMargins)
		}

		if line.canSkipFlex {
			// Measured sizes were not computed; fall back to the basis.
			mainDim += line.betweenMain + marginForAxis(child, c.main, c.innerWidth) + cl.tentativeMain
			crossDim = c.innerCross
		} else {
			mainDim += line.betweenMain + dimWithMargin(child, c.main, c.innerWidth)
			crossDim = fmax(crossDim, dimWithMargin(child, c.cross, c.innerWidth))
		}
	}

	line.mainDim = mainDim + c.trailingPadMain
	line.contentCross = crossDim
	line.crossDim = crossDim
}

// sizeLineCross clamps the line's cross extent. Without wrapping, an exact
// container fixes it.
func (c *container) sizeLineCross(line *flexLine) {
	if !c.wrap && c.modeCross == MeasureExactly {
		line.crossDim = c.innerCross
	}
	line.crossDim = boundAxis(c.node, c.cross, line.crossDim+c.padCross, c.crossParentSize, c.parentWidth) - c.padCross
}

// containerCross is the cross space children align within: the container's
// exact inner size, or the line's content size otherwise.
func (c *container) containerCross(contentCross float64) float64 {
	if c.modeCross == MeasureUndefined || c.modeCross == MeasureAtMost {
		return boundAxis(c.node, c.cross, contentCross+c.padCross, c.crossParentSize, c.parentWidth) - c.padCross
	}
	return c.innerCross
}

// alignCross positions a line's children on the cross axis, offset by the
// cross size of the lines before it, and lays out stretched children at
// the line's cross size.
func (c *container) alignCross(line *flexLine, offset float64) {
	crossLeading := c.cross.leading()
	for _, child := range c.children[line.start:line.end] {
		plan := child.LayoutPlan()
		if plan.Atomic {
			continue
		}
		cl := child.LayoutState()

		if plan.PositionType == Absolute {
			cl.Position[crossLeading] = leadingMargin(child, c.cross, c.innerWidth)
			if isLeadingPosDefined(child, c.cross) {
				cl.Position[crossLeading] += leadingPosition(child, c.cross, c.innerCross)
			}
			continue
		}

		lead := c.leadingPadCross
		align := alignItem(c.node, child)
		autoLeading := isAutoMargin(child, crossLeading)
		autoTrailing := isAutoMargin(child, c.cross.trailing())

		if align == AlignStretch && !autoLeading && !autoTrailing {
			if !isStyleDimDefined(child, c.cross, c.innerCross) {
				c.stretch(child, line.crossDim)
			}
		} else {
			remainingCross := c.containerCross(line.contentCross) - dimWithMargin(child, c.cross, c.innerWidth)
			switch {
			case autoLeading && autoTrailing:
				lead += fmax(0, remainingCross/2)
			case autoTrailing:
			case autoLeading:
				lead += fmax(0, remainingCross)
			case align == AlignStart:
			case align == AlignCenter:
				lead += remainingCross / 2
			default:
				lead += remainingCross
			}
		}
		cl.Position[crossLeading] += offset + lead
	}
}

// stretch lays a child out again with its cross size forced to the line's.
func (c *container) stretch(child Layoutable, lineCross float64) {
	plan := child.LayoutPlan()
	cl := child.LayoutState()

	childMain := cl.measured[c.main.dim()]
	childCross := lineCross
	if plan.hasAspectRatio() {
		childCross = marginForAxis(child, c.cross, c.innerWidth)
		if c.main.isRow() {
			childCross += childMain / plan.AspectRatio
		} else {
			childCross += childMain * plan.AspectRatio
		}
	}
	childMain += marginForAxis(child, c.main, c.innerWidth)

	mainMode, crossMode := MeasureExactly, MeasureExactly
	constrainMaxSizeForMode(child, c.main, c.innerMain, c.innerWidth, &mainMode, &childMain)
	constrainMaxSizeForMode(child, c.cross, c.innerCross, c.innerWidth, &crossMode, &childCross)

	width := pick(c.main, childMain, childCross)
	height := pick(c.main, childCross, childMain)
	widthMode, heightMode := MeasureExactly, MeasureExactly
	if IsUndefined(width) {
		widthMode = MeasureUndefined
	}
	if IsUndefined(height) {
		heightMode = MeasureUndefined
	}

	c.p.visit(child, width, height, widthMode, heightMode, c.innerWidth, c.innerHeight, true, "stretch")
}
