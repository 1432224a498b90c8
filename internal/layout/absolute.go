package layout

// arrangeAbsolute sizes and positions a child that is out of flow. width
// and height are the container's inner size. A child whose size is not
// pinned by its plan, both offsets, or its aspect ratio is measured first.
func (c *container) arrangeAbsolute(child Layoutable, width float64, widthMode MeasureMode, height float64) {
	plan := child.LayoutPlan()
	nl := c.node.LayoutState()
	cl := child.LayoutState()

	marginRow := marginForAxis(child, Row, width)
	marginColumn := marginForAxis(child, Column, width)

	childWidth, childHeight := Undefined, Undefined
	if isStyleDimDefined(child, Row, width) {
		childWidth = resolvedDim(child, Row, width) + marginRow
	} else if isLeadingPosDefined(child, Row) && isTrailingPosDefined(child, Row) {
		childWidth = nl.measured[DimensionWidth] - leadingPosition(child, Row, width) - trailingPosition(child, Row, width)
		childWidth = boundAxis(child, Row, childWidth, width, width)
	}
	if isStyleDimDefined(child, Column, height) {
		childHeight = resolvedDim(child, Column, height) + marginColumn
	} else if isLeadingPosDefined(child, Column) && isTrailingPosDefined(child, Column) {
		childHeight = nl.measured[DimensionHeight] - leadingPosition(child, Column, height) - trailingPosition(child, Column, height)
		childHeight = boundAxis(child, Column, childHeight, height, width)
	}

	// One known side anchors the other.
	if IsUndefined(childWidth) != IsUndefined(childHeight) && plan.hasAspectRatio() {
		if IsUndefined(childWidth) {
			childWidth = marginRow + fmax((childHeight-marginColumn)*plan.AspectRatio, paddingForAxis(child, Column, width))
		} else {
			childHeight = marginColumn + fmax((childWidth-marginRow)/plan.AspectRatio, paddingForAxis(child, Row, width))
		}
	}

	if IsUndefined(childWidth) || IsUndefined(childHeight) {
		wm, hm := MeasureExactly, MeasureExactly
		if IsUndefined(childWidth) {
			wm = MeasureUndefined
		}
		if IsUndefined(childHeight) {
			hm = MeasureUndefined
		}

		// In a column, content may wrap at the container's width.
		if !c.main.isRow() && IsUndefined(childWidth) && widthMode != MeasureUndefined && width > 0 {
			childWidth = width
			wm = MeasureAtMost
		}

		c.p.visit(child, childWidth, childHeight, wm, hm, childWidth, childHeight, false, "abs-measure")
		childWidth = cl.measured[DimensionWidth] + marginRow
		childHeight = cl.measured[DimensionHeight] + marginColumn
	}

	c.p.visit(child, childWidth, childHeight, MeasureExactly, MeasureExactly, childWidth, childHeight, true, "abs-layout")

	c.placeAbsolute(child, c.main, c.plan.JustifyContent == JustifyCenter, c.plan.JustifyContent == JustifyEnd, width, height)

	// A wrapping container inverts the End test on the cross axis, so under
	// Wrap every child not aligned End or Center lands at the far edge.
	align := alignItem(c.node, child)
	c.placeAbsolute(child, c.cross, align == AlignCenter, (align == AlignEnd) != (c.plan.FlexWrap == Wrap), width, height)
}

// placeAbsolute sets an absolute child's leading position on one axis when
// its leading offset is not defined. A trailing offset anchors it to the far
// edge; otherwise center and end place it within the container's size.
func (c *container) placeAbsolute(child Layoutable, axis Direction, center, end bool, width, height float64) {
	if isLeadingPosDefined(child, axis) {
		return
	}
	nl := c.node.LayoutState()
	cl := child.LayoutState()
	d := axis.dim()
	free := nl.measured[d] - cl.measured[d]

	switch {
	case isTrailingPosDefined(child, axis):
		cl.Position[axis.leading()] = free - trailingMargin(child, axis, width) -
			trailingPosition(child, axis, pick(axis, width, height))
	case center:
		cl.Position[axis.leading()] = free / 2
	case end:
		cl.Position[axis.leading()] = free
	}
}
