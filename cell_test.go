package ascii

import "testing"

func TestNewCell(t *testing.T) {
	type tc struct {
		r     rune
		width uint8
		empty bool
	}

	tests := map[string]tc{
		"ascii":      {r: 'a', width: 1},
		"space":      {r: ' ', width: 1, empty: true},
		"box":        {r: '╭', width: 1},
		"wide":       {r: '世', width: 2},
		"zero width": {r: '\u0301', width: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCell(tt.r)
			if c.Width != tt.width {
				t.Errorf("Width = %d, want %d", c.Width, tt.width)
			}
			if c.IsEmpty() != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", c.IsEmpty(), tt.empty)
			}
			if c.IsContinuation() {
				t.Error("IsContinuation() = true, want false")
			}
		})
	}
}

func TestCell_Continuation(t *testing.T) {
	var c Cell
	if !c.IsContinuation() {
		t.Error("zero Cell should be a continuation")
	}
}
