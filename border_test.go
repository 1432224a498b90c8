package ascii

import "testing"

func TestBorderStyle_Chars(t *testing.T) {
	type tc struct {
		style BorderStyle
		want  string // TopLeft Top TopRight Left BottomRight
	}

	tests := map[string]tc{
		"ascii":   {style: BorderASCII, want: "+-+|+"},
		"single":  {style: BorderSingle, want: "┌─┐│┘"},
		"double":  {style: BorderDouble, want: "╔═╗║╝"},
		"rounded": {style: BorderRounded, want: "╭─╮│╯"},
		"thick":   {style: BorderThick, want: "┏━┓┃┛"},
		"none":    {style: BorderNone, want: "     "},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ch := tt.style.Chars()
			got := string([]rune{ch.TopLeft, ch.Top, ch.TopRight, ch.Left, ch.BottomRight})
			if got != tt.want {
				t.Errorf("Chars() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseBorderStyle(t *testing.T) {
	type tc struct {
		name string
		want BorderStyle
		ok   bool
	}

	tests := map[string]tc{
		"rounded": {name: "rounded", want: BorderRounded, ok: true},
		"ascii":   {name: "ascii", want: BorderASCII, ok: true},
		"empty":   {name: "", want: BorderNone, ok: true},
		"unknown": {name: "dotted", want: BorderNone, ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseBorderStyle(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseBorderStyle(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCanvas_DrawBox(t *testing.T) {
	type tc struct {
		width, height int
		rect          Rect
		border        BorderStyle
		want          string
	}

	tests := map[string]tc{
		"ascii": {
			width: 4, height: 3,
			rect:   NewRect(0, 0, 4, 3),
			border: BorderASCII,
			want:   "+--+\n|  |\n+--+",
		},
		"rounded": {
			width: 3, height: 2,
			rect:   NewRect(0, 0, 3, 2),
			border: BorderRounded,
			want:   "╭─╮\n╰─╯",
		},
		"clipped to canvas": {
			width: 3, height: 3,
			rect:   NewRect(1, 1, 5, 5),
			border: BorderSingle,
			want:   "\n ┌┐\n └┘",
		},
		"too small": {
			width: 3, height: 3,
			rect:   NewRect(0, 0, 1, 3),
			border: BorderSingle,
			want:   "\n\n",
		},
		"none": {
			width: 3, height: 2,
			rect:   NewRect(0, 0, 3, 2),
			border: BorderNone,
			want:   "\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCanvas(tt.width, tt.height)
			c.DrawBox(tt.rect, tt.border)
			if got := c.StringTrimmed(); got != tt.want {
				t.Errorf("StringTrimmed() = %q, want %q", got, tt.want)
			}
		})
	}
}
