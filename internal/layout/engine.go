package layout

import (
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Engine arranges node trees. It owns the generation counter that tells the
// visit cache which results belong to the current pass, so one Engine may
// arrange distinct trees from several goroutines at once. Trees must not
// share nodes.
type Engine struct {
	generation atomic.Uint64
	scale      float64
	logger     *log.Logger
	strict     bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithPointScaleFactor sets the grid that final geometry snaps to: 1 rounds
// to whole cells, 2 to half cells, 0 disables rounding. It panics on a
// negative factor.
func WithPointScaleFactor(f float64) Option {
	assert(f >= 0, "scale factor should not be less than zero")
	return func(e *Engine) {
		e.scale = f
	}
}

// WithLogger traces every node visit at debug level.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithStrictChecks panics when a visit receives an available size that is
// undefined without an undefined measure mode, or the reverse.
func WithStrictChecks() Option {
	return func(e *Engine) {
		e.strict = true
	}
}

// NewEngine creates an Engine that rounds to whole cells by default.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{scale: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generation returns the number of Arrange calls made on this engine.
func (e *Engine) Generation() uint64 {
	return e.generation.Load()
}

// PointScaleFactor returns the rounding grid.
func (e *Engine) PointScaleFactor() float64 {
	return e.scale
}

var defaultEngine = NewEngine()

// Arrange lays out root with the package default engine.
func Arrange(root Layoutable, width, height float64) {
	defaultEngine.Arrange(root, width, height)
}

// Arrange computes the geometry of root and its descendants for a container
// of the given size. Either size may be Undefined for an unconstrained axis.
// Results are written to each node's Layout; a repeated call with no plan
// changes leaves them untouched.
func (e *Engine) Arrange(root Layoutable, width, height float64) {
	p := &pass{
		generation: e.generation.Add(1),
		scale:      e.scale,
		logger:     e.logger,
		strict:     e.strict,
	}

	if root.LayoutPlan().Atomic {
		zeroOut(root)
		root.SetDirty(false)
		return
	}

	resolveDimensions(root)
	w, wm := startSize(root, Row, width, width)
	h, hm := startSize(root, Column, height, width)

	if p.visit(root, w, h, wm, hm, width, height, true, "initial") {
		setInitialPosition(root, Row, width, height, width)
		p.round(root, 0, 0)
	}
}

// startSize picks the root's size and measure mode on one axis: its own
// definite size, else its max size as an upper bound, else the container.
func startSize(root Layoutable, axis Direction, container, containerWidth float64) (float64, MeasureMode) {
	if isStyleDimDefined(root, axis, container) {
		return resolvedDim(root, axis, container) + marginForAxis(root, axis, containerWidth), MeasureExactly
	}
	if mx := root.LayoutPlan().MaxDimension(axis.dim()).resolve(container); mx >= 0 {
		return mx, MeasureAtMost
	}
	if IsUndefined(container) {
		return Undefined, MeasureUndefined
	}
	return container, MeasureExactly
}

// pass is the state of one Arrange call.
type pass struct {
	generation uint64
	scale      float64
	logger     *log.Logger
	strict     bool
	depth      int
}

// zeroOut clears the geometry of an atomic node and its subtree.
func zeroOut(n Layoutable) {
	l := n.LayoutState()
	l.Width, l.Height = 0, 0
	l.measured = [2]float64{}
	l.Position = [4]float64{}
	l.cached = cachedMeasurement{valid: true, widthMode: MeasureExactly, heightMode: MeasureExactly}
	for _, c := range n.LayoutChildren() {
		zeroOut(c)
	}
}
