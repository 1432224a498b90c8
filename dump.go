package ascii

import (
	"fmt"
	"strings"
)

// Dump renders the arranged tree under root as an indented listing, one
// node per line: name, absolute origin, size, and any wrap line or overflow.
//
//	root (0,0) 40x10
//	  side (0,0) 10x10
//	  body (10,0) 30x10 overflow
func Dump(root *Node) string {
	var sb strings.Builder
	dump(&sb, root, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n *Node, depth int) {
	l := n.Layout()
	r := l.AbsoluteRect()

	name := n.Name
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(sb, "%s%s (%d,%d) %dx%d", strings.Repeat("  ", depth), name, r.X, r.Y, r.Width, r.Height)
	if l.LineIndex > 0 {
		fmt.Fprintf(sb, " line=%d", l.LineIndex)
	}
	if l.HadOverflow {
		sb.WriteString(" overflow")
	}
	if n.LayoutPlan().Atomic {
		sb.WriteString(" atomic")
	}
	if s, ok := TextOf(n); ok {
		fmt.Fprintf(sb, " %q", s)
	}
	sb.WriteByte('\n')

	for _, child := range n.Children() {
		dump(sb, child, depth+1)
	}
}
