package layout

// Rect is an integer box on the cell grid. Right and Bottom are exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Insets shrink a Rect from each side, in cells.
type Insets struct {
	Top, Right, Bottom, Left int
}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right is the first column past the box.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom is the first row past the box.
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether the box covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether cell (x, y) lies in the box.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset moves each side inward. The result never has a negative size.
func (r Rect) Inset(in Insets) Rect {
	return NewRect(
		r.X+in.Left,
		r.Y+in.Top,
		max(0, r.Width-in.Left-in.Right),
		max(0, r.Height-in.Top-in.Bottom),
	)
}

// Intersect returns the overlap of r and o, or the zero Rect when they
// share no cell.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Union returns the smallest box holding both. Empty boxes are ignored.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.IsEmpty():
		return o
	case o.IsEmpty():
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return NewRect(x0, y0, x1-x0, y1-y0)
}
