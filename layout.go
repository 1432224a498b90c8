// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package ascii

import (
	"github.com/charmbracelet/log"

	"github.com/No8Dev/No8.Ascii-sub002/internal/layout"
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// FlexWrap controls whether children may break onto multiple lines.
type FlexWrap = layout.FlexWrap

const (
	NoWrap = layout.NoWrap
	Wrap   = layout.Wrap
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children and lines are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart        = layout.AlignStart
	AlignEnd          = layout.AlignEnd
	AlignCenter       = layout.AlignCenter
	AlignStretch      = layout.AlignStretch
	AlignSpaceBetween = layout.AlignSpaceBetween
	AlignSpaceAround  = layout.AlignSpaceAround
)

// PositionType selects normal flow or absolute placement.
type PositionType = layout.PositionType

const (
	Relative = layout.Relative
	Absolute = layout.Absolute
)

// Overflow controls how content larger than a node is sized.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

// MeasureMode tells a measure function how to read an available length.
type MeasureMode = layout.MeasureMode

const (
	MeasureUndefined = layout.MeasureUndefined
	MeasureExactly   = layout.MeasureExactly
	MeasureAtMost    = layout.MeasureAtMost
)

// Value represents a dimension value (fixed, percent, auto or undefined).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitUndefined = layout.UnitUndefined
	UnitAuto      = layout.UnitAuto
	UnitFixed     = layout.UnitFixed
	UnitPercent   = layout.UnitPercent
)

// Edge indexes per-edge layout arrays.
type Edge = layout.Edge

const (
	EdgeLeft   = layout.EdgeLeft
	EdgeTop    = layout.EdgeTop
	EdgeRight  = layout.EdgeRight
	EdgeBottom = layout.EdgeBottom
)

// Plan holds the layout intent of a node. Build plans from DefaultPlan;
// the zero Plan does not shrink or stretch.
type Plan = layout.Plan

// Node is the stock tree node.
type Node = layout.Node

// Layout holds the computed geometry of a node.
type Layout = layout.Layout

// Layoutable is the interface that nodes must implement for arrangement.
type Layoutable = layout.Layoutable

// MeasureFunc reports the intrinsic size of leaf content.
type MeasureFunc = layout.MeasureFunc

// Engine arranges trees. One Engine may serve many goroutines.
type Engine = layout.Engine

// Option configures an Engine.
type Option = layout.Option

// Rect represents a rectangle of whole cells.
type Rect = layout.Rect

// Insets is an integer inset on four sides.
type Insets = layout.Insets

// Edges represents values on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point is a cell on the grid.
type Point = layout.Point

// Undefined is the numeric "no value" sentinel.
var Undefined = layout.Undefined

// IsUndefined reports whether f is the Undefined sentinel.
func IsUndefined(f float64) bool {
	return layout.IsUndefined(f)
}

// Fixed creates a Value with a fixed cell count.
func Fixed(n float64) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of the parent's size.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// UndefinedValue creates a Value that is not set.
func UndefinedValue() Value {
	return layout.UndefinedValue()
}

// DefaultPlan returns a Plan with default values.
func DefaultPlan() Plan {
	return layout.DefaultPlan()
}

// NewNode creates a node with the given plan, which should start from
// DefaultPlan.
func NewNode(plan Plan) *Node {
	return layout.NewNode(plan)
}

// NewNamedNode creates a node with a name used by dumps and traces.
func NewNamedNode(name string, plan Plan) *Node {
	return layout.NewNamedNode(name, plan)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v Value) Edges {
	return layout.EdgeAll(v)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h Value) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Value) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Cells creates fixed Edges in CSS order.
func Cells(t, r, b, l float64) Edges {
	return layout.Cells(t, r, b, l)
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	return layout.NewEngine(opts...)
}

// WithPointScaleFactor sets grid cells per layout unit. 0 disables snapping.
func WithPointScaleFactor(f float64) Option {
	return layout.WithPointScaleFactor(f)
}

// WithLogger enables visit tracing at debug level.
func WithLogger(l *log.Logger) Option {
	return layout.WithLogger(l)
}

// WithStrictChecks enables precondition assertions on every visit.
func WithStrictChecks() Option {
	return layout.WithStrictChecks()
}

// Arrange lays out the tree rooted at root with a shared default Engine.
// Pass Undefined for an unconstrained axis.
func Arrange(root Layoutable, width, height float64) {
	layout.Arrange(root, width, height)
}

// InsetRect returns a new Rect inset by the given amounts on each edge.
// The order follows CSS convention: top, right, bottom, left.
func InsetRect(r Rect, top, right, bottom, left int) Rect {
	return r.Inset(Insets{Top: top, Right: right, Bottom: bottom, Left: left})
}
