package layout

// Edge indexes the four sides of a box in per-edge arrays such as
// Layout.Position and Layout.Padding.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	default:
		return "bottom"
	}
}

// Edges represents values for four sides of a box.
// An undefined side falls back to the default for its use: zero for padding
// and margin, "not set" for position offsets.
type Edges struct {
	Top, Right, Bottom, Left Value
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v Value) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h Value) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Value) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Cells creates fixed Edges following CSS order: Top, Right, Bottom, Left.
func Cells(t, r, b, l float64) Edges {
	return EdgeTRBL(Fixed(t), Fixed(r), Fixed(b), Fixed(l))
}

// Get returns the value for one side.
func (e Edges) Get(edge Edge) Value {
	switch edge {
	case EdgeLeft:
		return e.Left
	case EdgeTop:
		return e.Top
	case EdgeRight:
		return e.Right
	default:
		return e.Bottom
	}
}

// Set returns a copy of e with one side replaced.
func (e Edges) Set(edge Edge, v Value) Edges {
	switch edge {
	case EdgeLeft:
		e.Left = v
	case EdgeTop:
		e.Top = v
	case EdgeRight:
		e.Right = v
	default:
		e.Bottom = v
	}
	return e
}

// IsZero returns true if no side is set.
func (e Edges) IsZero() bool {
	return e == Edges{}
}
