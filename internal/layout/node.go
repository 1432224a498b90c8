package layout

// Layoutable is the interface for anything that can participate in layout calculation.
// The engine works entirely with this interface, so widget trees can be
// arranged without copying them into Nodes.
type Layoutable interface {
	// LayoutParent returns the containing node, or nil for a root.
	// Implementations must return an untyped nil, not a nil pointer.
	LayoutParent() Layoutable

	// LayoutChildren returns the children in document order.
	LayoutChildren() []Layoutable

	// LayoutPlan returns the layout intent. The engine never writes it.
	LayoutPlan() *Plan

	// LayoutState returns the mutable layout record owned by this node.
	LayoutState() *Layout

	// LayoutMeasure returns the content measure function, or nil for
	// containers.
	LayoutMeasure() MeasureFunc

	// IsDirty returns whether this element needs layout recalculation.
	IsDirty() bool

	// SetDirty marks this element as needing recalculation.
	SetDirty(dirty bool)
}

// Node represents an element in the layout tree.
type Node struct {
	// Name identifies the node in traces and dumps.
	Name string

	// Context is an opaque slot owned by the caller.
	Context any

	plan     Plan
	layout   Layout
	measure  MeasureFunc
	children []*Node
	view     []Layoutable // children as Layoutable, kept in step with children
	parent   *Node        // Back-pointer for dirty propagation and root detection
	dirty    bool
}

var _ Layoutable = (*Node)(nil)

// NewNode creates a new node with the given plan. The plan is used as is,
// so build it from DefaultPlan; a zero Plan gives a node that never shrinks
// and children that are not stretched.
func NewNode(plan Plan) *Node {
	n := &Node{plan: plan, dirty: true}
	n.layout.Reset()
	return n
}

// NewNamedNode creates a new node with a name for traces and dumps.
func NewNamedNode(name string, plan Plan) *Node {
	n := NewNode(plan)
	n.Name = name
	return n
}

// AddChild appends children and marks this node dirty.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		n.InsertChild(child, len(n.children))
	}
}

// InsertChild inserts a child at index idx and marks this node dirty.
// It panics if the child already has a parent or this node measures content.
func (n *Node) InsertChild(child *Node, idx int) {
	assert(child.parent == nil, "child already has a parent, it must be removed first")
	assert(n.measure == nil, "cannot add child: nodes with measure functions cannot have children")

	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child

	n.view = append(n.view, nil)
	copy(n.view[idx+1:], n.view[idx:])
	n.view[idx] = child

	child.parent = n
	n.MarkDirty()
}

// RemoveChild removes a child by pointer, preserving the order of the
// remaining children, and marks dirty. The removed child's layout is reset.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c != child {
			continue
		}
		n.children = append(n.children[:i], n.children[i+1:]...)
		n.view = append(n.view[:i], n.view[i+1:]...)
		child.parent = nil
		child.layout.Reset()
		n.MarkDirty()
		return true
	}
	return false
}

// Children returns the children in document order.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the child at idx, or nil when out of range.
func (n *Node) Child(idx int) *Node {
	if idx < 0 || idx >= len(n.children) {
		return nil
	}
	return n.children[idx]
}

// Parent returns the containing node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Plan returns a copy of the node's plan.
func (n *Node) Plan() Plan {
	return n.plan
}

// SetPlan replaces the plan and marks the node dirty.
func (n *Node) SetPlan(plan Plan) {
	n.plan = plan
	n.MarkDirty()
}

// UpdatePlan edits the plan in place and marks the node dirty.
func (n *Node) UpdatePlan(fn func(*Plan)) {
	fn(&n.plan)
	n.MarkDirty()
}

// SetMeasure installs a content measure function and marks the node dirty.
// It panics if the node has children.
func (n *Node) SetMeasure(fn MeasureFunc) {
	assert(fn == nil || len(n.children) == 0, "cannot set measure function: nodes with measure functions cannot have children")
	n.measure = fn
	n.MarkDirty()
}

// Layout returns the computed layout.
func (n *Node) Layout() *Layout {
	return &n.layout
}

// MarkDirty marks this node and all ancestors as needing recalculation.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

// Walk visits n and its descendants in document order, pre-order.
// Returning false from fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first node in document order with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found == nil && c.Name == name {
			found = c
		}
		return found == nil
	})
	return found
}

func (n *Node) LayoutParent() Layoutable {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) LayoutChildren() []Layoutable { return n.view }
func (n *Node) LayoutPlan() *Plan            { return &n.plan }
func (n *Node) LayoutState() *Layout         { return &n.layout }
func (n *Node) LayoutMeasure() MeasureFunc   { return n.measure }
func (n *Node) IsDirty() bool                { return n.dirty }
func (n *Node) SetDirty(dirty bool)          { n.dirty = dirty }

// String returns the node's name.
func (n *Node) String() string { return n.Name }
