package ascii

import (
	"testing"
)

func TestNewCanvas(t *testing.T) {
	type tc struct {
		width, height         int
		wantWidth, wantHeight int
	}

	tests := map[string]tc{
		"standard size":       {width: 80, height: 24, wantWidth: 80, wantHeight: 24},
		"single cell":         {width: 1, height: 1, wantWidth: 1, wantHeight: 1},
		"zero width":          {width: 0, height: 10, wantWidth: 0, wantHeight: 10},
		"negative dimensions": {width: -5, height: -3, wantWidth: 0, wantHeight: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCanvas(tt.width, tt.height)
			if c.Width() != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", c.Width(), tt.wantWidth)
			}
			if c.Height() != tt.wantHeight {
				t.Errorf("Height() = %d, want %d", c.Height(), tt.wantHeight)
			}
			if want := NewRect(0, 0, tt.wantWidth, tt.wantHeight); c.Rect() != want {
				t.Errorf("Rect() = %+v, want %+v", c.Rect(), want)
			}
		})
	}
}

func TestCanvas_InitializedWithSpaces(t *testing.T) {
	c := NewCanvas(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if cell := c.Cell(x, y); cell.Rune != ' ' || cell.Width != 1 {
				t.Errorf("Cell(%d, %d) = %+v, want blank", x, y, cell)
			}
		}
	}
	if got := c.Cell(5, 5); got != (Cell{}) {
		t.Errorf("out of bounds Cell() = %+v, want zero", got)
	}
	if got := c.String(); got != "   \n   " {
		t.Errorf("String() = %q", got)
	}
}

func TestCanvas_SetRune(t *testing.T) {
	type tc struct {
		width int
		apply func(c *Canvas)
		want  string
	}

	tests := map[string]tc{
		"narrow": {
			width: 3,
			apply: func(c *Canvas) { c.SetRune(1, 0, 'x') },
			want:  " x ",
		},
		"wide claims two cells": {
			width: 4,
			apply: func(c *Canvas) { c.SetRune(0, 0, '日') },
			want:  "日  ",
		},
		"overwrite continuation clears wide": {
			width: 4,
			apply: func(c *Canvas) {
				c.SetRune(0, 0, '日')
				c.SetRune(1, 0, 'x')
			},
			want: " x  ",
		},
		"overwrite wide start clears continuation": {
			width: 4,
			apply: func(c *Canvas) {
				c.SetRune(1, 0, '日')
				c.SetRune(1, 0, 'x')
			},
			want: " x  ",
		},
		"wide overlapping wide": {
			width: 4,
			apply: func(c *Canvas) {
				c.SetRune(1, 0, '日')
				c.SetRune(0, 0, '本')
			},
			want: "本  ",
		},
		"wide at last column": {
			width: 4,
			apply: func(c *Canvas) { c.SetRune(3, 0, '日') },
			want:  "    ",
		},
		"out of bounds ignored": {
			width: 2,
			apply: func(c *Canvas) {
				c.SetRune(-1, 0, 'x')
				c.SetRune(2, 0, 'x')
				c.SetRune(0, 1, 'x')
			},
			want: "  ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCanvas(tt.width, 1)
			tt.apply(c)
			if got := c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanvas_SetString(t *testing.T) {
	type tc struct {
		x     int
		text  string
		clip  *Rect
		want  string
		width int
	}

	clip := NewRect(1, 0, 2, 1)
	tests := map[string]tc{
		"plain":            {x: 0, text: "abc", want: "abc  ", width: 3},
		"wide":             {x: 0, text: "ab日", want: "ab日 ", width: 4},
		"stops at edge":    {x: 3, text: "日本", want: "   日", width: 2},
		"starts off left":  {x: -1, text: "abc", want: "bc   ", width: 2},
		"clipped":          {x: 0, text: "abcd", clip: &clip, want: " bc  ", width: 2},
		"zero width runes": {x: 0, text: "e\u0301x", want: "ex   ", width: 2},
		"wide straddles":   {x: 4, text: "日", want: "     ", width: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCanvas(5, 1)
			var got int
			if tt.clip != nil {
				got = c.SetStringClipped(tt.x, 0, tt.text, *tt.clip)
			} else {
				got = c.SetString(tt.x, 0, tt.text)
			}
			if got != tt.width {
				t.Errorf("written width = %d, want %d", got, tt.width)
			}
			if s := c.String(); s != tt.want {
				t.Errorf("String() = %q, want %q", s, tt.want)
			}
		})
	}
}

func TestCanvas_SetStringOffRow(t *testing.T) {
	c := NewCanvas(5, 1)
	if got := c.SetString(0, 1, "abc"); got != 0 {
		t.Errorf("SetString on missing row = %d, want 0", got)
	}
}

func TestCanvas_Fill(t *testing.T) {
	c := NewCanvas(5, 2)
	c.Fill(NewRect(1, 0, 3, 2), '日')
	if got, want := c.String(), " 日  \n 日  "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	c.Fill(NewRect(3, 1, 10, 10), '#')
	if got, want := c.StringTrimmed(), " 日\n 日##"; got != want {
		t.Errorf("StringTrimmed() = %q, want %q", got, want)
	}

	c.Clear()
	if got := c.StringTrimmed(); got != "\n" {
		t.Errorf("StringTrimmed() after Clear = %q, want %q", got, "\n")
	}
}
