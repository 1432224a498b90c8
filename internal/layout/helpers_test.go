package layout

// geom is the rounded geometry of one node, relative to its parent.
type geom struct {
	Left, Top, Width, Height float64
}

func geometry(n *Node) geom {
	l := n.Layout()
	return geom{Left: l.Left(), Top: l.Top(), Width: l.Width, Height: l.Height}
}

// snapshot collects the geometry of every node in document order.
func snapshot(root *Node) []geom {
	var out []geom
	root.Walk(func(n *Node) bool {
		out = append(out, geometry(n))
		return true
	})
	return out
}

// box returns a default plan with a fixed size. Either side may be
// negative to leave it auto.
func box(width, height float64) Plan {
	p := DefaultPlan()
	if width >= 0 {
		p.Width = Fixed(width)
	}
	if height >= 0 {
		p.Height = Fixed(height)
	}
	return p
}

// with applies edits to a plan.
func with(p Plan, edits ...func(*Plan)) Plan {
	for _, edit := range edits {
		edit(&p)
	}
	return p
}

func grow(g float64) func(*Plan) {
	return func(p *Plan) { p.FlexGrow = g }
}

func shrink(s float64) func(*Plan) {
	return func(p *Plan) { p.FlexShrink = s }
}

func column(p *Plan) { p.Direction = Column }

func wrap(p *Plan) { p.FlexWrap = Wrap }

func absolute(p *Plan) { p.PositionType = Absolute }

func justify(j Justify) func(*Plan) {
	return func(p *Plan) { p.JustifyContent = j }
}

func alignItems(a Align) func(*Plan) {
	return func(p *Plan) { p.AlignItems = a }
}

func alignContent(a Align) func(*Plan) {
	return func(p *Plan) { p.AlignContent = a }
}

// tree builds a root with the given children.
func tree(root Plan, children ...Plan) *Node {
	n := NewNamedNode("root", root)
	for _, c := range children {
		n.AddChild(NewNode(c))
	}
	return n
}

// fixedText returns a measure function reporting a constant size and
// counting its calls.
func fixedText(size Size, calls *int) MeasureFunc {
	return func(float64, MeasureMode, float64, MeasureMode) Size {
		if calls != nil {
			*calls++
		}
		return size
	}
}
