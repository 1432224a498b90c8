package layout

import "math"

// maxCachedMeasurements bounds the per-node measurement cache. When full,
// the next entry overwrites index 0.
const maxCachedMeasurements = 16

// Layout holds the computed geometry of a node. The engine owns every field
// during a pass; between passes the unexported fields serve as its cache.
type Layout struct {
	// Position is the offset of each edge from the parent's matching edge,
	// indexed by Edge. Left and top place the node; right and bottom are
	// margin-derived.
	Position [4]float64

	// Width and Height are the final border-box size.
	Width  float64
	Height float64

	// Padding is the resolved padding per edge, indexed by Edge.
	Padding [4]float64

	// Margin is the resolved margin per edge, indexed by Edge. Auto margins
	// resolve to zero here; their share of free space lands in Position.
	Margin [4]float64

	// LineIndex is the wrap line this node was placed on in its parent.
	LineIndex int

	// HadOverflow is set when children did not fit on the main axis.
	HadOverflow bool

	// AbsoluteLeft and AbsoluteTop are the node's offset from the root's
	// origin, snapped to the grid like Position. Each is rounded from the
	// unrounded sum of ancestor offsets, so rounding error never accumulates.
	AbsoluteLeft float64
	AbsoluteTop  float64

	measured      [2]float64
	resolved      [2]Value
	tentativeMain float64
	generation    uint64

	nextCached   int
	measurements [maxCachedMeasurements]cachedMeasurement
	cached       cachedMeasurement
}

// cachedMeasurement maps the inputs of one visit to its measured size.
type cachedMeasurement struct {
	valid           bool
	availableWidth  float64
	availableHeight float64
	widthMode       MeasureMode
	heightMode      MeasureMode
	computedWidth   float64
	computedHeight  float64
}

// Reset discards all geometry and cached measurements.
func (l *Layout) Reset() {
	*l = Layout{}
	l.measured = [2]float64{Undefined, Undefined}
	l.tentativeMain = Undefined
}

// Measured returns the size of the most recent visit, including
// measure-only visits, before rounding.
func (l *Layout) Measured() Size {
	return Size{Width: l.measured[DimensionWidth], Height: l.measured[DimensionHeight]}
}

// Left returns the offset of the node's left edge within its parent.
func (l *Layout) Left() float64 { return l.Position[EdgeLeft] }

// Top returns the offset of the node's top edge within its parent.
func (l *Layout) Top() float64 { return l.Position[EdgeTop] }

// Rect returns the border box relative to the parent, in whole cells.
func (l *Layout) Rect() Rect {
	return NewRect(cell(l.Position[EdgeLeft]), cell(l.Position[EdgeTop]), cell(l.Width), cell(l.Height))
}

// AbsoluteRect returns the border box relative to the root, in whole cells.
func (l *Layout) AbsoluteRect() Rect {
	return NewRect(cell(l.AbsoluteLeft), cell(l.AbsoluteTop), cell(l.Width), cell(l.Height))
}

// ContentRect returns AbsoluteRect minus padding: the area where children
// and content are drawn.
func (l *Layout) ContentRect() Rect {
	return l.AbsoluteRect().Inset(Insets{
		Top:    cell(l.Padding[EdgeTop]),
		Right:  cell(l.Padding[EdgeRight]),
		Bottom: cell(l.Padding[EdgeBottom]),
		Left:   cell(l.Padding[EdgeLeft]),
	})
}

func cell(f float64) int {
	if IsUndefined(f) {
		return 0
	}
	return int(math.Round(f))
}
