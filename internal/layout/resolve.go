package layout

// resolve computes the measured size of one node and, when performLayout is
// set, the positions of its children. Available sizes include the node's
// margin; measured sizes never do.
func (p *pass) resolve(n Layoutable, availableWidth, availableHeight float64, widthMode, heightMode MeasureMode,
	parentWidth, parentHeight float64, performLayout bool) {
	l := n.LayoutState()
	for _, axis := range [...]Direction{Row, Column} {
		l.Margin[axis.leading()] = leadingMargin(n, axis, parentWidth)
		l.Margin[axis.trailing()] = trailingMargin(n, axis, parentWidth)
		l.Padding[axis.leading()] = leadingPadding(n, axis, parentWidth)
		l.Padding[axis.trailing()] = trailingPadding(n, axis, parentWidth)
	}

	if n.LayoutMeasure() != nil {
		measureLeaf(n, availableWidth, availableHeight, widthMode, heightMode, parentWidth, parentHeight)
		return
	}
	if len(n.LayoutChildren()) == 0 {
		measureEmpty(n, availableWidth, availableHeight, widthMode, heightMode, parentWidth, parentHeight)
		return
	}
	if !performLayout && measureFixed(n, availableWidth, availableHeight, widthMode, heightMode, parentWidth, parentHeight) {
		return
	}

	c := newContainer(p, n, availableWidth, availableHeight, widthMode, heightMode, parentWidth, parentHeight, performLayout)
	c.arrange()
}

// measureLeaf sizes a node from its MeasureFunc. The function sees the
// content box; padding is added back and the result clamped.
func measureLeaf(n Layoutable, availableWidth, availableHeight float64, widthMode, heightMode MeasureMode, parentWidth, parentHeight float64) {
	l := n.LayoutState()
	padRow := paddingForAxis(n, Row, availableWidth)
	padColumn := paddingForAxis(n, Column, availableWidth)
	marginRow := marginForAxis(n, Row, availableWidth)
	marginColumn := marginForAxis(n, Column, availableWidth)

	if widthMode == MeasureExactly && heightMode == MeasureExactly {
		l.measured[DimensionWidth] = boundAxis(n, Row, availableWidth-marginRow, parentWidth, parentWidth)
		l.measured[DimensionHeight] = boundAxis(n, Column, availableHeight-marginColumn, parentHeight, parentWidth)
		return
	}

	// Never hand the function a negative size.
	innerWidth := availableWidth
	if !IsUndefined(availableWidth) {
		innerWidth = fmax(0, availableWidth-marginRow-padRow)
	}
	innerHeight := availableHeight
	if !IsUndefined(availableHeight) {
		innerHeight = fmax(0, availableHeight-marginColumn-padColumn)
	}

	size := n.LayoutMeasure()(innerWidth, widthMode, innerHeight, heightMode)

	width := availableWidth - marginRow
	if widthMode != MeasureExactly {
		width = size.Width + padRow
	}
	height := availableHeight - marginColumn
	if heightMode != MeasureExactly {
		height = size.Height + padColumn
	}
	l.measured[DimensionWidth] = boundAxis(n, Row, width, availableWidth, availableWidth)
	l.measured[DimensionHeight] = boundAxis(n, Column, height, availableHeight, availableWidth)
}

// measureEmpty sizes a childless container: the available size when exact,
// otherwise just its padding.
func measureEmpty(n Layoutable, availableWidth, availableHeight float64, widthMode, heightMode MeasureMode, parentWidth, parentHeight float64) {
	l := n.LayoutState()
	width := availableWidth - marginForAxis(n, Row, parentWidth)
	if widthMode != MeasureExactly {
		width = paddingForAxis(n, Row, parentWidth)
	}
	height := availableHeight - marginForAxis(n, Column, parentWidth)
	if heightMode != MeasureExactly {
		height = paddingForAxis(n, Column, parentWidth)
	}
	l.measured[DimensionWidth] = boundAxis(n, Row, width, parentWidth, parentWidth)
	l.measured[DimensionHeight] = boundAxis(n, Column, height, parentHeight, parentWidth)
}

// measureFixed short-circuits a measure-only visit whose size is already
// decided by the constraints. Negative at-most sizes clamp to zero.
func measureFixed(n Layoutable, availableWidth, availableHeight float64, widthMode, heightMode MeasureMode, parentWidth, parentHeight float64) bool {
	if !(widthMode == MeasureAtMost && availableWidth <= 0) &&
		!(heightMode == MeasureAtMost && availableHeight <= 0) &&
		!(widthMode == MeasureExactly && heightMode == MeasureExactly) {
		return false
	}

	l := n.LayoutState()
	width := availableWidth - marginForAxis(n, Row, parentWidth)
	if IsUndefined(availableWidth) || (widthMode == MeasureAtMost && availableWidth < 0) {
		width = 0
	}
	height := availableHeight - marginForAxis(n, Column, parentWidth)
	if IsUndefined(availableHeight) || (heightMode == MeasureAtMost && availableHeight < 0) {
		height = 0
	}
	l.measured[DimensionWidth] = boundAxis(n, Row, width, parentWidth, parentWidth)
	l.measured[DimensionHeight] = boundAxis(n, Column, height, parentHeight, parentWidth)
	return true
}

// container holds the working state of the flex algorithm for one node.
// Main and cross follow the node's Direction; "inner" sizes exclude padding
// and margin.
type container struct {
	p             *pass
	node          Layoutable
	plan          *Plan
	children      []Layoutable
	performLayout bool

	main, cross Direction
	wrap        bool

	availableWidth, availableHeight float64
	widthMode, heightMode           MeasureMode
	parentWidth, parentHeight       float64
	mainParentSize, crossParentSize float64

	leadingPadMain, trailingPadMain float64
	leadingPadCross                 float64
	padMain, padCross               float64
	marginRow, marginColumn         float64

	modeMain, modeCross        MeasureMode
	minInnerMain, maxInnerMain float64
	innerWidth, innerHeight    float64
	innerMain, innerCross      float64

	basisOverflows bool
	absolutes      []Layoutable
}

func newContainer(p *pass, n Layoutable, availableWidth, availableHeight float64, widthMode, heightMode MeasureMode,
	parentWidth, parentHeight float64, performLayout bool) *container {
	plan := n.LayoutPlan()
	main := plan.Direction
	c := &container{
		p:               p,
		node:            n,
		plan:            plan,
		children:        n.LayoutChildren(),
		performLayout:   performLayout,
		main:            main,
		cross:           main.cross(),
		wrap:            plan.FlexWrap == Wrap,
		availableWidth:  availableWidth,
		availableHeight: availableHeight,
		widthMode:       widthMode,
		heightMode:      heightMode,
		parentWidth:     parentWidth,
		parentHeight:    parentHeight,
		mainParentSize:  pick(main, parentWidth, parentHeight),
		crossParentSize: pick(main, parentHeight, parentWidth),
		modeMain:        pick(main, widthMode, heightMode),
		modeCross:       pick(main, heightMode, widthMode),
		marginRow:       marginForAxis(n, Row, parentWidth),
		marginColumn:    marginForAxis(n, Column, parentWidth),
	}
	c.leadingPadMain = leadingPadding(n, c.main, parentWidth)
	c.trailingPadMain = trailingPadding(n, c.main, parentWidth)
	c.leadingPadCross = leadingPadding(n, c.cross, parentWidth)
	c.padMain = paddingForAxis(n, c.main, parentWidth)
	c.padCross = paddingForAxis(n, c.cross, parentWidth)

	padRow := paddingForAxis(n, Row, parentWidth)
	padColumn := paddingForAxis(n, Column, parentWidth)

	minInnerWidth := plan.MinWidth.resolve(parentWidth) - c.marginRow - padRow
	maxInnerWidth := plan.MaxWidth.resolve(parentWidth) - c.marginRow - padRow
	minInnerHeight := plan.MinHeight.resolve(parentHeight) - c.marginColumn - padColumn
	maxInnerHeight := plan.MaxHeight.resolve(parentHeight) - c.marginColumn - padColumn
	c.minInnerMain = pick(main, minInnerWidth, minInnerHeight)
	c.maxInnerMain = pick(main, maxInnerWidth, maxInnerHeight)

	// Max overrides the available size; min in turn overrides both.
	c.innerWidth = availableWidth - c.marginRow - padRow
	if !IsUndefined(c.innerWidth) {
		c.innerWidth = fmax(fmin(c.innerWidth, maxInnerWidth), minInnerWidth)
	}
	c.innerHeight = availableHeight - c.marginColumn - padColumn
	if !IsUndefined(c.innerHeight) {
		c.innerHeight = fmax(fmin(c.innerHeight, maxInnerHeight), minInnerHeight)
	}
	c.innerMain = pick(main, c.innerWidth, c.innerHeight)
	c.innerCross = pick(main, c.innerHeight, c.innerWidth)
	return c
}

// arrange runs the flex algorithm: tentative main lengths, then per line
// flexible lengths, justification and cross alignment, then multi-line
// alignment, final size, and absolute children.
func (c *container) arrange() {
	l := c.node.LayoutState()
	l.HadOverflow = false

	total := c.computeTentativeMainLengths()

	c.basisOverflows = c.modeMain != MeasureUndefined && total > c.innerMain
	if c.wrap && c.basisOverflows && c.modeMain == MeasureAtMost {
		c.modeMain = MeasureExactly
	}

	var (
		lineCount      int
		totalLineCross float64
		maxLineMain    float64
	)
	for start := 0; start < len(c.children); lineCount++ {
		line := c.collectLine(start, lineCount)
		c.resolveFlexibleLengths(line)
		c.justifyMain(line)
		c.sizeLineCross(line)
		if c.performLayout {
			c.alignCross(line, totalLineCross)
		}

		totalLineCross += line.crossDim
		maxLineMain = fmax(maxLineMain, line.mainDim)
		start = line.end
	}

	if c.performLayout && lineCount > 1 && !IsUndefined(c.innerCross) {
		c.alignLines(lineCount, totalLineCross)
	}

	c.finalSize(maxLineMain, totalLineCross)

	if c.performLayout {
		widthMode := pick(c.main, c.modeMain, c.modeCross)
		for _, child := range c.absolutes {
			c.arrangeAbsolute(child, c.innerWidth, widthMode, c.innerHeight)
		}
	}
}

// finalSize clamps the accumulated content size into the node's bounds.
// Exact axes keep the available size; others fit content, except that a
// Scroll node under an at-most bound fills up to that bound.
func (c *container) finalSize(maxLineMain, totalLineCross float64) {
	n := c.node
	l := n.LayoutState()
	l.measured[DimensionWidth] = boundAxis(n, Row, c.availableWidth-c.marginRow, c.parentWidth, c.parentWidth)
	l.measured[DimensionHeight] = boundAxis(n, Column, c.availableHeight-c.marginColumn, c.parentHeight, c.parentWidth)

	scroll := c.plan.Overflow == OverflowScroll
	mainDim, crossDim := c.main.dim(), c.cross.dim()

	switch {
	case c.modeMain == MeasureUndefined || (!scroll && c.modeMain == MeasureAtMost):
		l.measured[mainDim] = boundAxis(n, c.main, maxLineMain, c.mainParentSize, c.parentWidth)
	case c.modeMain == MeasureAtMost && scroll:
		l.measured[mainDim] = fmax(
			fmin(c.innerMain+c.padMain, boundAxisWithinMinAndMax(n, c.main, maxLineMain, c.mainParentSize)),
			c.padMain)
	}

	switch {
	case c.modeCross == MeasureUndefined || (!scroll && c.modeCross == MeasureAtMost):
		l.measured[crossDim] = boundAxis(n, c.cross, totalLineCross+c.padCross, c.crossParentSize, c.parentWidth)
	case c.modeCross == MeasureAtMost && scroll:
		l.measured[crossDim] = fmax(
			fmin(c.innerCross+c.padCross, boundAxisWithinMinAndMax(n, c.cross, totalLineCross+c.padCross, c.crossParentSize)),
			c.padCross)
	}
}
