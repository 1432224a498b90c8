package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// FlexWrap controls whether children may break onto multiple lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota // All children on one line
	Wrap                   // Break onto a new line when the main axis is full
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
// AlignSpaceBetween and AlignSpaceAround only apply to AlignContent.
type Align uint8

const (
	AlignStart        Align = iota // Align to start of cross axis
	AlignEnd                       // Align to end of cross axis
	AlignCenter                    // Center on cross axis
	AlignStretch                   // Stretch to fill cross axis
	AlignSpaceBetween              // Lines: even space between, none at edges
	AlignSpaceAround               // Lines: even space around each line
)

// PositionType selects normal flow or absolute placement.
type PositionType uint8

const (
	Relative PositionType = iota // In flow, offset by Position
	Absolute                     // Removed from flow, placed by Position
)

// Overflow controls how content larger than the node is sized.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll // Content may exceed an at-most bound, up to the max size
)

// Plan contains all layout intent for a node. The engine only reads it.
//
// The zero Plan is not the default: it has FlexShrink 0, AlignItems Start
// and Undefined sizes. Start from DefaultPlan and edit its fields.
type Plan struct {
	// Sizing
	Width       Value
	Height      Value
	MinWidth    Value
	MinHeight   Value
	MaxWidth    Value
	MaxHeight   Value
	AspectRatio float64 // width / height; 0 = unset

	// Flex container properties
	Direction      Direction
	FlexWrap       FlexWrap
	JustifyContent Justify
	AlignItems     Align
	AlignContent   Align
	Overflow       Overflow

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (1 in DefaultPlan, 0 in the zero Plan)
	FlexBasis  Value   // Explicit main-axis basis (auto = from size/content)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Placement
	PositionType PositionType
	Position     Edges // Offsets; relative nodes shift, absolute nodes anchor
	Atomic       bool  // Skip layout of this node and its subtree

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultPlan returns the starting Plan for a node: auto sizes and basis,
// row direction, stretched items and a shrink factor of 1.
func DefaultPlan() Plan {
	return Plan{
		Width:      Auto(),
		Height:     Auto(),
		FlexBasis:  Auto(),
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
	}
}

// Dimension returns the width or height value for an axis.
func (p *Plan) Dimension(d Dimension) Value {
	if d == DimensionWidth {
		return p.Width
	}
	return p.Height
}

// MinDimension returns the min width or min height.
func (p *Plan) MinDimension(d Dimension) Value {
	if d == DimensionWidth {
		return p.MinWidth
	}
	return p.MinHeight
}

// MaxDimension returns the max width or max height.
func (p *Plan) MaxDimension(d Dimension) Value {
	if d == DimensionWidth {
		return p.MaxWidth
	}
	return p.MaxHeight
}

func (p *Plan) hasAspectRatio() bool {
	return p.AspectRatio > 0 && !IsUndefined(p.AspectRatio)
}
