package layout

import "fmt"

// Box-model helpers. Percent margins and padding resolve against the
// containing block's width on both axes.

func leadingMargin(n Layoutable, axis Direction, widthSize float64) float64 {
	return marginValue(n.LayoutPlan().Margin.Get(axis.leading()), widthSize)
}

func trailingMargin(n Layoutable, axis Direction, widthSize float64) float64 {
	return marginValue(n.LayoutPlan().Margin.Get(axis.trailing()), widthSize)
}

func marginValue(v Value, widthSize float64) float64 {
	if r := v.resolveMargin(widthSize); !IsUndefined(r) {
		return r
	}
	return 0
}

func marginForAxis(n Layoutable, axis Direction, widthSize float64) float64 {
	return leadingMargin(n, axis, widthSize) + trailingMargin(n, axis, widthSize)
}

func isAutoMargin(n Layoutable, edge Edge) bool {
	return n.LayoutPlan().Margin.Get(edge).IsAuto()
}

func leadingPadding(n Layoutable, axis Direction, widthSize float64) float64 {
	return fmax(n.LayoutPlan().Padding.Get(axis.leading()).resolve(widthSize), 0)
}

func trailingPadding(n Layoutable, axis Direction, widthSize float64) float64 {
	return fmax(n.LayoutPlan().Padding.Get(axis.trailing()).resolve(widthSize), 0)
}

func paddingForAxis(n Layoutable, axis Direction, widthSize float64) float64 {
	return leadingPadding(n, axis, widthSize) + trailingPadding(n, axis, widthSize)
}

func dimWithMargin(n Layoutable, axis Direction, widthSize float64) float64 {
	return n.LayoutState().measured[axis.dim()] + marginForAxis(n, axis, widthSize)
}

func isLeadingPosDefined(n Layoutable, axis Direction) bool {
	return n.LayoutPlan().Position.Get(axis.leading()).IsDefined()
}

func isTrailingPosDefined(n Layoutable, axis Direction) bool {
	return n.LayoutPlan().Position.Get(axis.trailing()).IsDefined()
}

func leadingPosition(n Layoutable, axis Direction, axisSize float64) float64 {
	return n.LayoutPlan().Position.Get(axis.leading()).Resolve(axisSize, 0)
}

func trailingPosition(n Layoutable, axis Direction, axisSize float64) float64 {
	return n.LayoutPlan().Position.Get(axis.trailing()).Resolve(axisSize, 0)
}

// relativePosition prefers the leading offset; otherwise it is the negated
// trailing offset.
func relativePosition(n Layoutable, axis Direction, axisSize float64) float64 {
	if isLeadingPosDefined(n, axis) {
		return leadingPosition(n, axis, axisSize)
	}
	return -trailingPosition(n, axis, axisSize)
}

// setInitialPosition seeds a node's position from its margins and relative
// offsets along the parent's axes. The parent's flow placement is added to
// it later.
func setInitialPosition(n Layoutable, main Direction, mainSize, crossSize, parentWidth float64) {
	cross := main.cross()

	relMain := relativePosition(n, main, mainSize)
	relCross := relativePosition(n, cross, crossSize)

	pos := &n.LayoutState().Position
	pos[main.leading()] = leadingMargin(n, main, parentWidth) + relMain
	pos[main.trailing()] = trailingMargin(n, main, parentWidth) + relMain
	pos[cross.leading()] = leadingMargin(n, cross, parentWidth) + relCross
	pos[cross.trailing()] = trailingMargin(n, cross, parentWidth) + relCross
}

// resolveDimensions collapses width/height to the max value when min == max.
func resolveDimensions(n Layoutable) {
	plan := n.LayoutPlan()
	l := n.LayoutState()
	for d := DimensionWidth; d <= DimensionHeight; d++ {
		if mx := plan.MaxDimension(d); mx.Unit != UnitUndefined && valuesEqual(mx, plan.MinDimension(d)) {
			l.resolved[d] = mx
		} else {
			l.resolved[d] = plan.Dimension(d)
		}
	}
}

func isStyleDimDefined(n Layoutable, axis Direction, parentSize float64) bool {
	v := n.LayoutState().resolved[axis.dim()]
	switch v.Unit {
	case UnitFixed:
		return v.Amount >= 0
	case UnitPercent:
		return v.Amount >= 0 && !IsUndefined(parentSize)
	default:
		return false
	}
}

func isLayoutDimDefined(n Layoutable, axis Direction) bool {
	v := n.LayoutState().measured[axis.dim()]
	return !IsUndefined(v) && v >= 0
}

func resolvedDim(n Layoutable, axis Direction, parentSize float64) float64 {
	return n.LayoutState().resolved[axis.dim()].resolve(parentSize)
}

// boundAxisWithinMinAndMax clamps value into the node's [min, max] on an axis.
// Undefined or negative bounds are ignored.
func boundAxisWithinMinAndMax(n Layoutable, axis Direction, value, axisSize float64) float64 {
	plan := n.LayoutPlan()
	mn := plan.MinDimension(axis.dim()).resolve(axisSize)
	mx := plan.MaxDimension(axis.dim()).resolve(axisSize)

	bound := value
	if !IsUndefined(mx) && mx >= 0 && bound > mx {
		bound = mx
	}
	if !IsUndefined(mn) && mn >= 0 && bound < mn {
		bound = mn
	}
	return bound
}

// boundAxis is boundAxisWithinMinAndMax floored by the node's padding.
func boundAxis(n Layoutable, axis Direction, value, axisSize, widthSize float64) float64 {
	return fmax(boundAxisWithinMinAndMax(n, axis, value, axisSize), paddingForAxis(n, axis, widthSize))
}

// constrainMaxSizeForMode caps a measure hint by the node's max size,
// turning an undefined hint into an at-most one.
func constrainMaxSizeForMode(n Layoutable, axis Direction, parentAxisSize, parentWidth float64, mode *MeasureMode, size *float64) {
	maxSize := n.LayoutPlan().MaxDimension(axis.dim()).resolve(parentAxisSize) + marginForAxis(n, axis, parentWidth)
	switch *mode {
	case MeasureExactly, MeasureAtMost:
		if !IsUndefined(maxSize) && !(*size < maxSize) {
			*size = maxSize
		}
	case MeasureUndefined:
		if !IsUndefined(maxSize) {
			*mode = MeasureAtMost
			*size = maxSize
		}
	}
}

func isRoot(n Layoutable) bool {
	return n.LayoutParent() == nil
}

// flexGrow is zero for a root.
func flexGrow(n Layoutable) float64 {
	if isRoot(n) {
		return 0
	}
	return n.LayoutPlan().FlexGrow
}

// flexShrink is zero for a root.
func flexShrink(n Layoutable) float64 {
	if isRoot(n) {
		return 0
	}
	return n.LayoutPlan().FlexShrink
}

func isFlex(n Layoutable) bool {
	return n.LayoutPlan().PositionType == Relative && (flexGrow(n) != 0 || flexShrink(n) != 0)
}

// alignItem resolves a child's cross alignment: its AlignSelf, else the
// parent's AlignItems. Content-only values fall back to AlignStart.
func alignItem(parent, child Layoutable) Align {
	align := parent.LayoutPlan().AlignItems
	if self := child.LayoutPlan().AlignSelf; self != nil {
		align = *self
	}
	if align > AlignStretch {
		return AlignStart
	}
	return align
}

func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("layout: "+format, args...))
	}
}
