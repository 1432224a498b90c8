package layout

// computeTentativeMainLengths seeds child positions, collects absolute
// children, and computes each in-flow child's main length before any
// flexing. It returns the sum of those lengths plus main-axis margins.
func (c *container) computeTentativeMainLengths() float64 {
	single := c.singleFlexChild()

	var total float64
	for _, child := range c.children {
		plan := child.LayoutPlan()
		if plan.Atomic {
			zeroOut(child)
			child.SetDirty(false)
			continue
		}

		resolveDimensions(child)
		if c.performLayout {
			setInitialPosition(child, c.main, c.innerMain, c.innerCross, c.innerWidth)
		}

		if plan.PositionType == Absolute {
			c.absolutes = append(c.absolutes, child)
			continue
		}

		if child == single {
			// Grown to fill the line; measuring it first would be wasted.
			child.LayoutState().tentativeMain = 0
		} else {
			c.tentativeMainLength(child)
		}
		total += child.LayoutState().tentativeMain + marginForAxis(child, c.main, c.innerWidth)
	}
	return total
}

// singleFlexChild finds the one child that both grows and shrinks when no
// later sibling is flexible. Only an exact main size makes this safe.
func (c *container) singleFlexChild() Layoutable {
	if c.modeMain != MeasureExactly {
		return nil
	}
	var single Layoutable
	for _, child := range c.children {
		if child.LayoutPlan().Atomic {
			continue
		}
		if single != nil {
			if isFlex(child) {
				return nil
			}
		} else if flexGrow(child) > 0 && flexShrink(child) > 0 {
			single = child
		}
	}
	return single
}

// tentativeMainLength sets a child's main length from its flex basis, its
// definite size, or by measuring its content.
func (c *container) tentativeMainLength(child Layoutable) {
	cl := child.LayoutState()
	plan := child.LayoutPlan()
	width, height := c.innerWidth, c.innerHeight
	mainSize := pick(c.main, width, height)
	isRow := c.main.isRow()

	basis := plan.FlexBasis.resolve(mainSize)
	rowDefined := isStyleDimDefined(child, Row, width)
	columnDefined := isStyleDimDefined(child, Column, height)

	switch {
	case !IsUndefined(basis) && !IsUndefined(mainSize):
		cl.tentativeMain = fmax(basis, paddingForAxis(child, c.main, width))
		return
	case isRow && rowDefined:
		cl.tentativeMain = fmax(resolvedDim(child, Row, width), paddingForAxis(child, Row, width))
		return
	case !isRow && columnDefined:
		cl.tentativeMain = fmax(resolvedDim(child, Column, height), paddingForAxis(child, Column, width))
		return
	}

	childWidth, childHeight := Undefined, Undefined
	widthMode, heightMode := MeasureUndefined, MeasureUndefined
	marginRow := marginForAxis(child, Row, width)
	marginColumn := marginForAxis(child, Column, width)

	if rowDefined {
		childWidth = resolvedDim(child, Row, width) + marginRow
		widthMode = MeasureExactly
	}
	if columnDefined {
		childHeight = resolvedDim(child, Column, height) + marginColumn
		heightMode = MeasureExactly
	}

	// A scrolling container does not bound its children along the scroll axis.
	scroll := c.plan.Overflow == OverflowScroll
	if !scroll || !isRow {
		if IsUndefined(childWidth) && !IsUndefined(width) {
			childWidth = width
			widthMode = MeasureAtMost
		}
	}
	if !scroll || isRow {
		if IsUndefined(childHeight) && !IsUndefined(height) {
			childHeight = height
			heightMode = MeasureAtMost
		}
	}

	// Stretched children are measured at the container's exact cross size.
	stretch := alignItem(c.node, child) == AlignStretch
	if !isRow && !IsUndefined(width) && !rowDefined && c.widthMode == MeasureExactly && stretch {
		childWidth = width
		widthMode = MeasureExactly
	}
	if isRow && !IsUndefined(height) && !columnDefined && c.heightMode == MeasureExactly && stretch {
		childHeight = height
		heightMode = MeasureExactly
	}

	if plan.hasAspectRatio() {
		if !isRow && widthMode == MeasureExactly {
			cl.tentativeMain = fmax((childWidth-marginRow)/plan.AspectRatio, paddingForAxis(child, Column, width))
			return
		}
		if isRow && heightMode == MeasureExactly {
			cl.tentativeMain = fmax((childHeight-marginColumn)*plan.AspectRatio, paddingForAxis(child, Row, width))
			return
		}
	}

	constrainMaxSizeForMode(child, Row, width, width, &widthMode, &childWidth)
	constrainMaxSizeForMode(child, Column, height, width, &heightMode, &childHeight)

	c.p.visit(child, childWidth, childHeight, widthMode, heightMode, width, height, false, "measure")

	cl.tentativeMain = fmax(cl.measured[c.main.dim()], paddingForAxis(child, c.main, width))
}
