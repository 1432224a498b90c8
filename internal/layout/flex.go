package layout

// resolveFlexibleLengths distributes a line's free space among its
// flexible children in two passes. The first pass freezes children whose
// min/max clamp triggers and removes them from the pools; the second sizes
// every child against the reduced pools and lays it out. Two passes can
// under-resolve deeply nested min/max interactions; the bounded cost is
// preferred over iterating to a fixed point.
func (c *container) resolveFlexibleLengths(line *flexLine) {
	line.canSkipFlex = !c.performLayout && c.modeCross == MeasureExactly

	// Without an exact main size, the line's content decides the size,
	// within the node's min/max.
	if c.modeMain != MeasureExactly {
		switch {
		case !IsUndefined(c.minInnerMain) && line.sizeConsumed < c.minInnerMain:
			c.innerMain = c.minInnerMain
		case !IsUndefined(c.maxInnerMain) && line.sizeConsumed > c.maxInnerMain:
			c.innerMain = c.maxInnerMain
		case line.totalGrow == 0 || flexGrow(c.node) == 0:
			c.innerMain = line.sizeConsumed
		}
	}

	var remaining float64
	switch {
	case !IsUndefined(c.innerMain):
		remaining = c.innerMain - line.sizeConsumed
	case line.sizeConsumed < 0:
		remaining = -line.sizeConsumed
	}

	original := remaining
	var delta float64
	if !line.canSkipFlex {
		remaining += c.freezeClampedChildren(line, remaining)
		delta = c.sizeFlexibleChildren(line, remaining)
	}

	line.remainingFreeSpace = original + delta
	if line.remainingFreeSpace < 0 {
		c.node.LayoutState().HadOverflow = true
	}
}

// clampedBasis is a child's tentative main length clamped into [min, max].
func (c *container) clampedBasis(child Layoutable) float64 {
	plan := child.LayoutPlan()
	return fmin(
		plan.MaxDimension(c.main.dim()).resolve(c.mainParentSize),
		fmax(plan.MinDimension(c.main.dim()).resolve(c.mainParentSize), child.LayoutState().tentativeMain))
}

// freezeClampedChildren is the first pass. It returns the change in free
// space from children whose share would violate their bounds.
func (c *container) freezeClampedChildren(line *flexLine, remaining float64) float64 {
	var deltaSpace, deltaGrow, deltaShrink float64
	for _, child := range line.relative {
		basis := c.clampedBasis(child)

		switch {
		case remaining < 0:
			scaled := -flexShrink(child) * basis
			if scaled == 0 {
				continue
			}
			base := basis + remaining/line.totalShrinkScaled*scaled
			bound := boundAxis(child, c.main, base, c.innerMain, c.innerWidth)
			if base != bound {
				deltaSpace -= bound - basis
				deltaShrink -= scaled
			}
		case remaining > 0:
			grow := flexGrow(child)
			if grow == 0 {
				continue
			}
			base := basis + remaining/line.totalGrow*grow
			bound := boundAxis(child, c.main, base, c.innerMain, c.innerWidth)
			if base != bound {
				deltaSpace -= bound - basis
				deltaGrow -= grow
			}
		}
	}
	line.totalShrinkScaled += deltaShrink
	line.totalGrow += deltaGrow
	return deltaSpace
}

// sizeFlexibleChildren is the second pass. It lays out every in-flow child
// at its final main size and returns the change in free space.
func (c *container) sizeFlexibleChildren(line *flexLine, remaining float64) float64 {
	var delta float64
	for _, child := range line.relative {
		basis := c.clampedBasis(child)
		size := basis

		switch {
		case remaining < 0:
			scaled := -flexShrink(child) * basis
			if scaled != 0 {
				childSize := basis + scaled
				if line.totalShrinkScaled != 0 {
					childSize = basis + remaining/line.totalShrinkScaled*scaled
				}
				size = boundAxis(child, c.main, childSize, c.innerMain, c.innerWidth)
			}
		case remaining > 0:
			if grow := flexGrow(child); grow != 0 {
				size = boundAxis(child, c.main, basis+remaining/line.totalGrow*grow, c.innerMain, c.innerWidth)
			}
		}
		delta -= size - basis

		c.layoutFlexChild(child, size)
		if child.LayoutState().HadOverflow {
			c.node.LayoutState().HadOverflow = true
		}
	}
	return delta
}

// layoutFlexChild resolves the cross size of a child with a final main size
// and visits it. Children that will be stretched are only measured here;
// the stretch pass lays them out.
func (c *container) layoutFlexChild(child Layoutable, mainSize float64) {
	plan := child.LayoutPlan()
	marginMain := marginForAxis(child, c.main, c.innerWidth)
	marginCross := marginForAxis(child, c.cross, c.innerWidth)

	childMain := mainSize + marginMain
	mainMode := MeasureExactly
	var childCross float64
	var crossMode MeasureMode

	crossDefined := isStyleDimDefined(child, c.cross, c.innerCross)
	autoCross := isAutoMargin(child, c.cross.leading()) || isAutoMargin(child, c.cross.trailing())
	stretched := !crossDefined && !autoCross && alignItem(c.node, child) == AlignStretch
	switch {
	case !IsUndefined(c.innerCross) && stretched && c.modeCross == MeasureExactly && !(c.wrap && c.basisOverflows):
		childCross = c.innerCross
		crossMode = MeasureExactly
	case !crossDefined:
		childCross = c.innerCross
		crossMode = MeasureAtMost
		if IsUndefined(childCross) {
			crossMode = MeasureUndefined
		}
	default:
		childCross = resolvedDim(child, c.cross, c.innerCross) + marginCross
		loosePercent := child.LayoutState().resolved[c.cross.dim()].Unit == UnitPercent && c.modeCross != MeasureExactly
		crossMode = MeasureExactly
		if IsUndefined(childCross) || loosePercent {
			crossMode = MeasureUndefined
		}
	}

	if plan.hasAspectRatio() {
		cross := (childMain - marginMain) * plan.AspectRatio
		if c.main.isRow() {
			cross = (childMain - marginMain) / plan.AspectRatio
		}
		childCross = fmax(cross, paddingForAxis(child, c.cross, c.innerWidth))
		crossMode = MeasureExactly

		// The parent's cross size outranks flexing.
		if isFlex(child) {
			childCross = fmin(childCross-marginCross, c.innerCross)
			if c.main.isRow() {
				childMain = marginMain + childCross*plan.AspectRatio
			} else {
				childMain = marginMain + childCross/plan.AspectRatio
			}
		}
		childCross += marginCross
	}

	constrainMaxSizeForMode(child, c.main, c.innerMain, c.innerWidth, &mainMode, &childMain)
	constrainMaxSizeForMode(child, c.cross, c.innerCross, c.innerWidth, &crossMode, &childCross)

	width := pick(c.main, childMain, childCross)
	height := pick(c.main, childCross, childMain)
	widthMode := pick(c.main, mainMode, crossMode)
	heightMode := pick(c.main, crossMode, mainMode)

	c.p.visit(child, width, height, widthMode, heightMode, c.innerWidth, c.innerHeight,
		c.performLayout && !stretched, "flex")
}
