package layout

// Point is a cell on the grid.
type Point struct {
	X, Y int
}

// Translate returns p moved by dx columns and dy rows.
func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// In reports whether p falls inside r.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Origin returns the top-left cell of r.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}
