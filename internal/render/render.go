// Package render draws arranged node trees as PNG images, one rectangle per
// node, for looking at a layout outside a terminal.
package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	ascii "github.com/No8Dev/No8.Ascii-sub002"
)

// Options controls the image scale.
type Options struct {
	CellWidth  int // Pixels per column (default 8)
	CellHeight int // Pixels per row (default 2 * CellWidth)
	Labels     bool
}

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = 8
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 2 * o.CellWidth
	}
	return o
}

// depth colours cycle so nested boxes stay distinguishable.
var palette = [][3]float64{
	{0.20, 0.40, 0.80},
	{0.80, 0.35, 0.20},
	{0.20, 0.65, 0.35},
	{0.60, 0.30, 0.70},
}

// Renderer draws one arranged tree.
type Renderer struct {
	context *gg.Context
	opts    Options
}

// NewRenderer sizes the image to hold every arranged box under root.
func NewRenderer(root *ascii.Node, opts Options) *Renderer {
	opts = opts.withDefaults()
	r := ascii.Bounds(root)
	w := max(1, r.Right()*opts.CellWidth)
	h := max(1, r.Bottom()*opts.CellHeight)
	return &Renderer{context: gg.NewContext(w, h), opts: opts}
}

// Render paints the tree in document order so children cover parents.
func (r *Renderer) Render(root *ascii.Node) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()
	r.drawNode(root, 0)
}

func (r *Renderer) drawNode(n *ascii.Node, depth int) {
	if n.LayoutPlan().Atomic {
		return
	}

	rect := n.Layout().AbsoluteRect()
	if !rect.IsEmpty() {
		x, y, w, h := r.pixels(rect)
		c := palette[depth%len(palette)]

		r.context.SetRGBA(c[0], c[1], c[2], 0.12)
		r.context.DrawRectangle(x, y, w, h)
		r.context.Fill()

		r.context.SetRGB(c[0], c[1], c[2])
		r.context.SetLineWidth(1)
		r.context.DrawRectangle(x+0.5, y+0.5, w-1, h-1)
		r.context.Stroke()

		r.drawLabel(n, rect)
	}

	for _, child := range n.Children() {
		r.drawNode(child, depth+1)
	}
}

func (r *Renderer) drawLabel(n *ascii.Node, rect ascii.Rect) {
	r.context.SetRGB(0.1, 0.1, 0.1)
	if text, ok := ascii.TextOf(n); ok {
		content := n.Layout().ContentRect()
		x, y, _, _ := r.pixels(content)
		for i, line := range ascii.WrapText(text, content.Width) {
			if i >= content.Height {
				break
			}
			r.context.DrawStringAnchored(line, x+2, y+float64(i*r.opts.CellHeight)+float64(r.opts.CellHeight)/2, 0, 0.5)
		}
		return
	}
	if r.opts.Labels && n.Name != "" {
		x, y, _, _ := r.pixels(rect)
		r.context.DrawStringAnchored(n.Name, x+3, y+3, 0, 1)
	}
}

func (r *Renderer) pixels(rect ascii.Rect) (x, y, w, h float64) {
	cw, ch := float64(r.opts.CellWidth), float64(r.opts.CellHeight)
	return float64(rect.X) * cw, float64(rect.Y) * ch, float64(rect.Width) * cw, float64(rect.Height) * ch
}

// Image returns the rendered image.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// PNG renders root and writes it to w.
func PNG(w io.Writer, root *ascii.Node, opts Options) error {
	r := NewRenderer(root, opts)
	r.Render(root)
	return r.context.EncodePNG(w)
}
