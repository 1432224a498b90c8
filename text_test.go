package ascii

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapText(t *testing.T) {
	type tc struct {
		text  string
		width int
		want  []string
	}

	tests := map[string]tc{
		"fits":              {text: "hello", width: 10, want: []string{"hello"}},
		"exact fit":         {text: "hello brave new world", width: 11, want: []string{"hello brave", "new world"}},
		"no wrap":           {text: "hello brave new world", width: 0, want: []string{"hello brave new world"}},
		"collapses spaces":  {text: "  lead   trail  ", width: 20, want: []string{"lead trail"}},
		"hard break":        {text: "abcdefgh", width: 3, want: []string{"abc", "def", "gh"}},
		"wide runes":        {text: "日本語テキスト", width: 4, want: []string{"日本", "語テ", "キス", "ト"}},
		"explicit newlines": {text: "a\n\nb", width: 0, want: []string{"a", "", "b"}},
		"empty":             {text: "", width: 5, want: []string{""}},
		"mixed": {
			text:  "hi there abcdefghij",
			width: 4,
			want:  []string{"hi", "ther", "e", "abcd", "efgh", "ij"},
		},
		"cluster kept whole": {
			text:  "e\u0301e\u0301e\u0301",
			width: 2,
			want:  []string{"e\u0301e\u0301", "e\u0301"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, WrapText(tt.text, tt.width)); diff != "" {
				t.Errorf("WrapText(%q, %d) mismatch (-want +got):\n%s", tt.text, tt.width, diff)
			}
		})
	}
}

func TestTextWidth(t *testing.T) {
	type tc struct {
		text string
		want int
	}

	tests := map[string]tc{
		"ascii":     {text: "abc", want: 3},
		"wide":      {text: "日本", want: 4},
		"combining": {text: "e\u0301", want: 1},
		"empty":     {text: "", want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := TextWidth(tt.text); got != tt.want {
				t.Errorf("TextWidth(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestTextMeasure(t *testing.T) {
	type tc struct {
		width float64
		mode  MeasureMode
		want  Size
	}

	tests := map[string]tc{
		"unconstrained":   {width: Undefined, mode: MeasureUndefined, want: Size{Width: 21, Height: 1}},
		"at most":         {width: 11, mode: MeasureAtMost, want: Size{Width: 11, Height: 2}},
		"exactly":         {width: 9, mode: MeasureExactly, want: Size{Width: 9, Height: 3}},
		"fractional":      {width: 11.7, mode: MeasureAtMost, want: Size{Width: 11, Height: 2}},
		"wider than text": {width: 40, mode: MeasureAtMost, want: Size{Width: 21, Height: 1}},
	}

	measure := TextMeasure("hello brave new world")
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := measure(tt.width, tt.mode, Undefined, MeasureUndefined)
			if got != tt.want {
				t.Errorf("measure(%v, %v) = %+v, want %+v", tt.width, tt.mode, got, tt.want)
			}
		})
	}
}

func TestNewText_Arranged(t *testing.T) {
	root := NewNamedNode("root", with(box(11, 5), func(p *Plan) { p.AlignItems = AlignStart }))
	label := NewText("label", "hello brave new world", DefaultPlan())
	root.AddChild(label)

	NewEngine().Arrange(root, Undefined, Undefined)

	if got, want := label.Layout().Rect(), NewRect(0, 0, 11, 2); got != want {
		t.Errorf("label Rect() = %+v, want %+v", got, want)
	}
	if s, ok := TextOf(label); !ok || s != "hello brave new world" {
		t.Errorf("TextOf() = %q, %v", s, ok)
	}
	if _, ok := TextOf(root); ok {
		t.Error("TextOf(container) should report false")
	}
}
