package render

import (
	"bytes"
	"image/png"
	"testing"

	ascii "github.com/No8Dev/No8.Ascii-sub002"
)

func arranged() *ascii.Node {
	root := ascii.NewNamedNode("root", func() ascii.Plan {
		p := ascii.DefaultPlan()
		p.Width, p.Height = ascii.Fixed(10), ascii.Fixed(3)
		return p
	}())
	root.AddChild(ascii.NewText("label", "hi", ascii.DefaultPlan()))
	ascii.NewEngine().Arrange(root, ascii.Undefined, ascii.Undefined)
	return root
}

func TestNewRenderer_Size(t *testing.T) {
	type tc struct {
		opts         Options
		wantW, wantH int
	}

	tests := map[string]tc{
		"defaults":      {opts: Options{}, wantW: 80, wantH: 48},
		"custom width":  {opts: Options{CellWidth: 4}, wantW: 40, wantH: 24},
		"custom height": {opts: Options{CellWidth: 4, CellHeight: 5}, wantW: 40, wantH: 15},
	}

	root := arranged()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewRenderer(root, tt.opts).Image().Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, arranged(), Options{CellWidth: 4, Labels: true}); err != nil {
		t.Fatalf("PNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 24 {
		t.Errorf("decoded size = %dx%d, want 40x24", b.Dx(), b.Dy())
	}

	// The root outline is drawn in the first palette colour, not white.
	r, g, bl, _ := img.At(0, 10).RGBA()
	if r == 0xffff && g == 0xffff && bl == 0xffff {
		t.Error("left edge pixel is white, want root outline")
	}
}
