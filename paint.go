package ascii

// PaintFunc draws one node. rect is the node's border box in canvas
// coordinates.
type PaintFunc func(c *Canvas, n *Node, rect Rect)

// Paint walks the arranged tree under root in document order and calls fn
// for each node with a non-empty box, so children paint over their parents.
// Atomic subtrees are skipped.
func (c *Canvas) Paint(root *Node, fn PaintFunc) {
	root.Walk(func(n *Node) bool {
		if n.LayoutPlan().Atomic {
			return false
		}
		if rect := n.Layout().AbsoluteRect(); !rect.IsEmpty() {
			fn(c, n, rect)
		}
		return true
	})
}

// Outline paints containers as borders and text leaves as wrapped text.
func Outline(border BorderStyle) PaintFunc {
	return func(c *Canvas, n *Node, rect Rect) {
		if s, ok := TextOf(n); ok {
			c.paintText(n, s)
			return
		}
		c.DrawBox(rect, border)
	}
}

// Titled is Outline with each container's name written into its top border.
func Titled(border BorderStyle) PaintFunc {
	outline := Outline(border)
	return func(c *Canvas, n *Node, rect Rect) {
		outline(c, n, rect)
		if _, ok := TextOf(n); ok || n.Name == "" || border == BorderNone {
			return
		}
		title := InsetRect(rect, 0, 1, 0, 1)
		c.SetStringClipped(title.X, title.Y, n.Name, title)
	}
}

// paintText draws s wrapped to the node's content rect. Lines past the
// bottom are dropped.
func (c *Canvas) paintText(n *Node, s string) {
	content := n.Layout().ContentRect()
	if content.IsEmpty() {
		return
	}
	for i, line := range WrapText(s, content.Width) {
		if i >= content.Height {
			break
		}
		c.SetStringClipped(content.X, content.Y+i, line, content)
	}
}
