package ascii

// NodeAt returns the deepest node under root whose box contains p, or nil.
// Later siblings paint over earlier ones, so they are tried first. Children
// are searched even when p is outside their parent, since absolute children
// may sit beyond it. Atomic subtrees are never hit.
func NodeAt(root *Node, p Point) *Node {
	if root.LayoutPlan().Atomic {
		return nil
	}
	children := root.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := NodeAt(children[i], p); hit != nil {
			return hit
		}
	}
	if p.In(root.Layout().AbsoluteRect()) {
		return root
	}
	return nil
}

// Bounds returns the union of every box under root, which can reach past
// root when absolute children are placed outside it. Atomic subtrees are
// left out.
func Bounds(root *Node) Rect {
	var r Rect
	root.Walk(func(n *Node) bool {
		if n.LayoutPlan().Atomic {
			return false
		}
		r = r.Union(n.Layout().AbsoluteRect())
		return true
	})
	return r
}
