package ascii

import "testing"

func TestNodeAt(t *testing.T) {
	root := NewNamedNode("root", box(20, 10))
	a := NewNamedNode("a", box(5, 5))
	b := NewNamedNode("b", box(5, 5))
	b.AddChild(NewNamedNode("b1", box(2, 2)))
	hidden := NewNamedNode("hidden", with(box(5, 5), func(p *Plan) { p.Atomic = true }))
	badge := NewNamedNode("badge", with(box(2, 2), func(p *Plan) {
		p.PositionType = Absolute
		p.Position = EdgeTRBL(Fixed(0), UndefinedValue(), UndefinedValue(), Fixed(30))
	}))
	root.AddChild(a, b, hidden, badge)
	NewEngine().Arrange(root, Undefined, Undefined)

	type tc struct {
		p    Point
		want string
	}

	tests := map[string]tc{
		"first child":       {p: Point{X: 1, Y: 1}, want: "a"},
		"grandchild":        {p: Point{X: 6, Y: 1}, want: "b1"},
		"child below inner": {p: Point{X: 6, Y: 3}, want: "b"},
		"empty area":        {p: Point{X: 15, Y: 8}, want: "root"},
		"outside parent":    {p: Point{X: 31, Y: 1}, want: "badge"},
		"miss":              {p: Point{X: 25, Y: 1}, want: ""},
		"negative":          {p: Point{X: -1, Y: 0}, want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ""
			if n := NodeAt(root, tt.p); n != nil {
				got = n.Name
			}
			if got != tt.want {
				t.Errorf("NodeAt(%v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	root := NewNamedNode("root", box(10, 4))
	root.AddChild(NewNamedNode("badge", with(box(3, 1), func(p *Plan) {
		p.PositionType = Absolute
		p.Position = EdgeTRBL(Fixed(5), UndefinedValue(), UndefinedValue(), Fixed(8))
	})))
	NewEngine().Arrange(root, Undefined, Undefined)

	if got, want := Bounds(root), NewRect(0, 0, 11, 6); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}
