package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlex_Distribution(t *testing.T) {
	type tc struct {
		root        Plan
		children    []Plan
		wantWidths  []float64
		wantLefts   []float64
		hadOverflow bool
	}

	tests := map[string]tc{
		"grow fills remaining space": {
			root:       box(20, 2),
			children:   []Plan{box(4, -1), with(DefaultPlan(), grow(1))},
			wantWidths: []float64{4, 16},
			wantLefts:  []float64{0, 4},
		},
		"grow ratio": {
			root:       box(30, 2),
			children:   []Plan{with(DefaultPlan(), grow(1)), with(DefaultPlan(), grow(2))},
			wantWidths: []float64{10, 20},
			wantLefts:  []float64{0, 10},
		},
		"max clamps one grower": {
			root: box(100, 2),
			children: []Plan{
				with(DefaultPlan(), grow(1), func(p *Plan) { p.MaxWidth = Fixed(20) }),
				with(DefaultPlan(), grow(1)),
			},
			wantWidths: []float64{20, 80},
			wantLefts:  []float64{0, 20},
		},
		"shrink evenly": {
			root:       box(10, 1),
			children:   []Plan{box(10, -1), box(10, -1)},
			wantWidths: []float64{5, 5},
			wantLefts:  []float64{0, 5},
		},
		"shrink only one": {
			root:       box(10, 1),
			children:   []Plan{with(box(10, -1), shrink(0)), box(10, -1)},
			wantWidths: []float64{10, 0},
			wantLefts:  []float64{0, 10},
		},
		"no shrink overflows": {
			root:        box(10, 1),
			children:    []Plan{with(box(10, -1), shrink(0)), with(box(10, -1), shrink(0))},
			wantWidths:  []float64{10, 10},
			wantLefts:   []float64{0, 10},
			hadOverflow: true,
		},
		"flex basis": {
			root: box(20, 1),
			children: []Plan{
				with(DefaultPlan(), func(p *Plan) { p.FlexBasis = Fixed(6) }),
				with(DefaultPlan(), func(p *Plan) { p.FlexBasis = Percent(20) }),
			},
			wantWidths: []float64{6, 4},
			wantLefts:  []float64{0, 6},
		},
		"percent width": {
			root:       box(50, 1),
			children:   []Plan{with(DefaultPlan(), func(p *Plan) { p.Width = Percent(50) })},
			wantWidths: []float64{25},
			wantLefts:  []float64{0},
		},
		"min width holds against shrink": {
			root: box(10, 1),
			children: []Plan{
				with(box(10, -1), func(p *Plan) { p.MinWidth = Fixed(8) }),
				box(10, -1),
			},
			wantWidths: []float64{8, 2},
			wantLefts:  []float64{0, 8},
		},
		"padding reduces space": {
			root:       with(box(20, 3), func(p *Plan) { p.Padding = Cells(1, 2, 1, 2) }),
			children:   []Plan{with(DefaultPlan(), grow(1))},
			wantWidths: []float64{16},
			wantLefts:  []float64{2},
		},
		"margin takes main space": {
			root: box(20, 2),
			children: []Plan{
				with(box(4, -1), func(p *Plan) { p.Margin = Cells(0, 1, 0, 1) }),
				box(4, -1),
			},
			wantWidths: []float64{4, 4},
			wantLefts:  []float64{1, 6},
		},
		"relative offset leaves flow alone": {
			root: box(20, 2),
			children: []Plan{
				with(box(4, -1), func(p *Plan) { p.Position.Left = Fixed(2) }),
				box(4, -1),
			},
			wantWidths: []float64{4, 4},
			wantLefts:  []float64{2, 4},
		},
		"atomic child takes no space": {
			root: box(20, 2),
			children: []Plan{
				with(box(5, 5), func(p *Plan) { p.Atomic = true }),
				box(4, -1),
			},
			wantWidths: []float64{0, 4},
			wantLefts:  []float64{0, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := tree(tt.root, tt.children...)
			NewEngine().Arrange(root, Undefined, Undefined)

			var widths, lefts []float64
			for _, c := range root.Children() {
				widths = append(widths, c.Layout().Width)
				lefts = append(lefts, c.Layout().Left())
			}
			if diff := cmp.Diff(tt.wantWidths, widths); diff != "" {
				t.Errorf("widths mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantLefts, lefts); diff != "" {
				t.Errorf("lefts mismatch (-want +got):\n%s", diff)
			}
			if got := root.Layout().HadOverflow; got != tt.hadOverflow {
				t.Errorf("HadOverflow = %v, want %v", got, tt.hadOverflow)
			}
		})
	}
}

func TestFlex_Column(t *testing.T) {
	root := tree(with(box(10, 20), column), box(-1, 5), box(-1, 5), with(DefaultPlan(), grow(1)))
	NewEngine().Arrange(root, Undefined, Undefined)

	want := []geom{
		{Width: 10, Height: 20},
		{Left: 0, Top: 0, Width: 10, Height: 5},
		{Left: 0, Top: 5, Width: 10, Height: 5},
		{Left: 0, Top: 10, Width: 10, Height: 10},
	}
	if diff := cmp.Diff(want, snapshot(root)); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
}

func TestFlex_Nested(t *testing.T) {
	root := NewNamedNode("root", box(40, 10))
	sidebar := NewNamedNode("sidebar", with(box(10, -1), column))
	pane := NewNamedNode("main", with(DefaultPlan(), grow(1), column, func(p *Plan) {
		p.Padding = EdgeAll(Fixed(1))
	}))
	header := NewNamedNode("header", box(-1, 3))
	body := NewNamedNode("body", with(DefaultPlan(), grow(1)))

	root.AddChild(sidebar, pane)
	pane.AddChild(header, body)
	NewEngine().Arrange(root, Undefined, Undefined)

	type tc struct {
		node *Node
		rect Rect
	}
	tests := map[string]tc{
		"sidebar": {node: sidebar, rect: NewRect(0, 0, 10, 10)},
		"main":    {node: pane, rect: NewRect(10, 0, 30, 10)},
		"header":  {node: header, rect: NewRect(11, 1, 28, 3)},
		"body":    {node: body, rect: NewRect(11, 4, 28, 5)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.node.Layout().AbsoluteRect(); got != tt.rect {
				t.Errorf("AbsoluteRect() = %+v, want %+v", got, tt.rect)
			}
		})
	}

	if got, want := pane.Layout().ContentRect(), NewRect(11, 1, 28, 8); got != want {
		t.Errorf("main ContentRect() = %+v, want %+v", got, want)
	}
}

func scroll(p *Plan) { p.Overflow = OverflowScroll }

func TestFlex_ScrollUnderAtMost(t *testing.T) {
	type tc struct {
		child       Plan
		wantWidth   float64
		hadOverflow bool
	}

	tests := map[string]tc{
		"content wider than max": {child: with(box(30, -1), shrink(0)), wantWidth: 20, hadOverflow: true},
		"content narrower":       {child: box(12, -1), wantWidth: 12},
		"content equal to max":   {child: box(20, -1), wantWidth: 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := tree(with(box(-1, 2), scroll, func(p *Plan) { p.MaxWidth = Fixed(20) }), tt.child)
			NewEngine().Arrange(root, Undefined, Undefined)

			if got := root.Layout().Width; got != tt.wantWidth {
				t.Errorf("root width = %v, want %v", got, tt.wantWidth)
			}
			if got := root.Layout().HadOverflow; got != tt.hadOverflow {
				t.Errorf("HadOverflow = %v, want %v", got, tt.hadOverflow)
			}
		})
	}
}

func TestFlex_ScrollCrossUnderAtMost(t *testing.T) {
	type tc struct {
		childHeight float64
		wantHeight  float64
	}

	tests := map[string]tc{
		"content taller than max": {childHeight: 8, wantHeight: 5},
		"content shorter":         {childHeight: 3, wantHeight: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := tree(with(box(20, -1), scroll, func(p *Plan) { p.MaxHeight = Fixed(5) }), box(4, tt.childHeight))
			NewEngine().Arrange(root, Undefined, Undefined)

			if got := root.Layout().Height; got != tt.wantHeight {
				t.Errorf("root height = %v, want %v", got, tt.wantHeight)
			}
		})
	}
}

// modeRecorder is a measure function that remembers the modes of its
// first call.
type modeRecorder struct {
	calls                 int
	widthMode, heightMode MeasureMode
}

func (m *modeRecorder) measure(_ float64, wm MeasureMode, _ float64, hm MeasureMode) Size {
	if m.calls == 0 {
		m.widthMode, m.heightMode = wm, hm
	}
	m.calls++
	return Size{Width: 4, Height: 1}
}

func TestFlex_ScrollLeavesScrollAxisUnbounded(t *testing.T) {
	type tc struct {
		root           Plan
		wantWidthMode  MeasureMode
		wantHeightMode MeasureMode
	}

	tests := map[string]tc{
		"row scroll": {
			root:          with(box(10, 3), scroll),
			wantWidthMode: MeasureUndefined, wantHeightMode: MeasureExactly,
		},
		"row visible": {
			root:          box(10, 3),
			wantWidthMode: MeasureAtMost, wantHeightMode: MeasureExactly,
		},
		"column scroll": {
			root:          with(box(10, 3), column, scroll),
			wantWidthMode: MeasureExactly, wantHeightMode: MeasureUndefined,
		},
		"column visible": {
			root:          with(box(10, 3), column),
			wantWidthMode: MeasureExactly, wantHeightMode: MeasureAtMost,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var rec modeRecorder
			root := NewNamedNode("root", tt.root)
			text := NewNamedNode("text", DefaultPlan())
			text.SetMeasure(rec.measure)
			root.AddChild(text)
			NewEngine().Arrange(root, Undefined, Undefined)

			if rec.calls == 0 {
				t.Fatal("measure was never called")
			}
			if rec.widthMode != tt.wantWidthMode {
				t.Errorf("width mode = %v, want %v", rec.widthMode, tt.wantWidthMode)
			}
			if rec.heightMode != tt.wantHeightMode {
				t.Errorf("height mode = %v, want %v", rec.heightMode, tt.wantHeightMode)
			}
		})
	}
}

func TestFlex_SingleFlexChildSkipsMeasure(t *testing.T) {
	type tc struct {
		texts      int
		wantCalls  int
		wantWidths []float64
	}

	tests := map[string]tc{
		"one flexible child":    {texts: 1, wantCalls: 0, wantWidths: []float64{30, 70}},
		"two flexible children": {texts: 2, wantCalls: 2, wantWidths: []float64{30, 35, 35}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var calls int
			root := NewNamedNode("root", box(100, 2))
			root.AddChild(NewNamedNode("fixed", box(30, -1)))
			for i := 0; i < tt.texts; i++ {
				text := NewNode(with(DefaultPlan(), grow(1)))
				text.SetMeasure(fixedText(Size{Width: 10, Height: 1}, &calls))
				root.AddChild(text)
			}
			NewEngine().Arrange(root, Undefined, Undefined)

			if calls != tt.wantCalls {
				t.Errorf("measure calls = %d, want %d", calls, tt.wantCalls)
			}
			var widths []float64
			for _, c := range root.Children() {
				widths = append(widths, c.Layout().Width)
			}
			if diff := cmp.Diff(tt.wantWidths, widths); diff != "" {
				t.Errorf("widths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
