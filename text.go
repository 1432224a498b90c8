package ascii

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

// TextWidth returns the display width of s in cells.
func TextWidth(s string) int {
	return uniseg.StringWidth(s)
}

// WrapText breaks s into lines no wider than width cells.
// Words are separated by runs of whitespace and joined by a single space.
// A word wider than the line is split between grapheme clusters.
// Explicit newlines always break. A width of zero or less disables wrapping.
func WrapText(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

func wrapParagraph(para string, width int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	used := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		used = 0
	}

	for _, word := range words {
		w := uniseg.StringWidth(word)

		if width > 0 && w > width {
			if used > 0 {
				flush()
			}
			parts := hardBreak(word, width)
			for _, part := range parts[:len(parts)-1] {
				lines = append(lines, part)
			}
			last := parts[len(parts)-1]
			line.WriteString(last)
			used = uniseg.StringWidth(last)
			continue
		}

		switch {
		case used == 0:
		case width <= 0 || used+1+w <= width:
			line.WriteByte(' ')
			used++
		default:
			flush()
		}
		line.WriteString(word)
		used += w
	}
	flush()
	return lines
}

// hardBreak splits word into chunks of at most width cells. A single
// cluster wider than width gets a chunk of its own.
func hardBreak(word string, width int) []string {
	var parts []string
	var b strings.Builder
	used := 0
	state := -1
	rest := word
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used > 0 && used+w > width {
			parts = append(parts, b.String())
			b.Reset()
			used = 0
		}
		b.WriteString(cluster)
		used += w
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}

// TextMeasure returns a MeasureFunc for a leaf showing s. An at-most or
// exact width wraps the text to that many cells; an undefined width keeps
// each paragraph on one line. The engine applies the height constraint.
func TextMeasure(s string) MeasureFunc {
	return func(width float64, widthMode MeasureMode, _ float64, _ MeasureMode) Size {
		limit := 0
		if widthMode != MeasureUndefined {
			limit = max(1, int(math.Floor(width)))
		}

		lines := WrapText(s, limit)
		widest := 0
		for _, l := range lines {
			widest = max(widest, uniseg.StringWidth(l))
		}
		return Size{Width: float64(widest), Height: float64(len(lines))}
	}
}

// NewText creates a leaf node that measures and paints s.
func NewText(name, s string, plan Plan) *Node {
	n := NewNamedNode(name, plan)
	n.Context = s
	n.SetMeasure(TextMeasure(s))
	return n
}

// TextOf returns the text of a leaf made by NewText.
func TextOf(n *Node) (string, bool) {
	s, ok := n.Context.(string)
	return s, ok
}
