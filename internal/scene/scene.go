// Package scene loads node trees from TOML scene files.
//
// A scene names the container the tree is arranged in and describes the
// tree itself as nested [node] tables:
//
//	scale = 1
//	border = "rounded"
//
//	[container]
//	width = 40
//	height = "auto"
//
//	[node]
//	name = "root"
//	padding = 1
//
//	[[node.children]]
//	name = "side"
//	width = "25%"
//
//	[[node.children]]
//	name = "body"
//	text = "hello"
//	grow = 1
//
// Unknown keys are rejected so a typo never silently falls back to a default.
package scene

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	ascii "github.com/No8Dev/No8.Ascii-sub002"
	"github.com/No8Dev/No8.Ascii-sub002/internal/errors"
)

// File is the decoded form of a scene file.
type File struct {
	Scale     *float64  `toml:"scale"`
	Border    string    `toml:"border"`
	Container Container `toml:"container"`
	Node      NodeSpec  `toml:"node"`
}

// Container is the size the root is arranged against. An absent or "auto"
// side is unconstrained.
type Container struct {
	Width  Length `toml:"width"`
	Height Length `toml:"height"`
}

// NodeSpec describes one node and its children.
type NodeSpec struct {
	Name string  `toml:"name"`
	Text *string `toml:"text"`

	Direction    string `toml:"direction"`
	Wrap         bool   `toml:"wrap"`
	Justify      string `toml:"justify"`
	AlignItems   string `toml:"align_items"`
	AlignSelf    string `toml:"align_self"`
	AlignContent string `toml:"align_content"`
	Overflow     string `toml:"overflow"`

	Grow   float64  `toml:"grow"`
	Shrink *float64 `toml:"shrink"`
	Basis  Length   `toml:"basis"`

	Width       Length  `toml:"width"`
	Height      Length  `toml:"height"`
	MinWidth    Length  `toml:"min_width"`
	MinHeight   Length  `toml:"min_height"`
	MaxWidth    Length  `toml:"max_width"`
	MaxHeight   Length  `toml:"max_height"`
	AspectRatio float64 `toml:"aspect_ratio"`

	Padding Spacing `toml:"padding"`
	Margin  Spacing `toml:"margin"`

	Position string `toml:"position"`
	Left     Length `toml:"left"`
	Top      Length `toml:"top"`
	Right    Length `toml:"right"`
	Bottom   Length `toml:"bottom"`
	Atomic   bool   `toml:"atomic"`

	Children []NodeSpec `toml:"children"`
}

// Scene is a loaded scene ready to arrange.
type Scene struct {
	Root   *ascii.Node
	Width  float64 // Undefined when unconstrained
	Height float64 // Undefined when unconstrained
	Scale  float64
	Border ascii.BorderStyle
}

// Engine returns an engine using the scene's scale factor.
func (s *Scene) Engine(opts ...ascii.Option) *ascii.Engine {
	return ascii.NewEngine(append([]ascii.Option{ascii.WithPointScaleFactor(s.Scale)}, opts...)...)
}

// Load reads and builds the scene at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "load scene")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "load scene")
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a scene from r and builds its node tree.
func Decode(r io.Reader) (*Scene, error) {
	var file File
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return file.Build()
}

// Build validates the file and creates its node tree.
func (f *File) Build() (*Scene, error) {
	s := &Scene{Scale: 1, Border: ascii.BorderRounded}

	if f.Scale != nil {
		if !nonNegative(*f.Scale) {
			return nil, errors.New(errors.ErrCodeInvalidScene, "scale must be a finite number not below zero, got %v", *f.Scale)
		}
		s.Scale = *f.Scale
	}
	if f.Border != "" {
		border, ok := ascii.ParseBorderStyle(f.Border)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidScene, "unknown border %q", f.Border)
		}
		s.Border = border
	}

	var err error
	if s.Width, err = containerSide("width", f.Container.Width); err != nil {
		return nil, err
	}
	if s.Height, err = containerSide("height", f.Container.Height); err != nil {
		return nil, err
	}

	if s.Root, err = f.Node.build("node"); err != nil {
		return nil, err
	}
	return s, nil
}

func containerSide(name string, l Length) (float64, error) {
	v := l.or(ascii.Auto())
	switch v.Unit {
	case ascii.UnitAuto, ascii.UnitUndefined:
		return ascii.Undefined, nil
	case ascii.UnitFixed:
		if v.Amount < 0 {
			return 0, errors.New(errors.ErrCodeInvalidScene, "container %s must not be negative", name)
		}
		return v.Amount, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidScene, "container %s must be a number of cells or \"auto\"", name)
}

// build creates the node for spec. path locates spec in error messages.
func (spec *NodeSpec) build(path string) (*ascii.Node, error) {
	if spec.Name != "" {
		path = spec.Name
	}

	plan, err := spec.plan(path)
	if err != nil {
		return nil, err
	}

	if spec.Text != nil {
		if len(spec.Children) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidScene, "%s: a text node cannot have children", path)
		}
		return ascii.NewText(spec.Name, *spec.Text, plan), nil
	}

	n := ascii.NewNamedNode(spec.Name, plan)
	for i := range spec.Children {
		child, err := spec.Children[i].build(path + ".children")
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func (spec *NodeSpec) plan(path string) (ascii.Plan, error) {
	p := ascii.DefaultPlan()
	fail := func(format string, args ...any) (ascii.Plan, error) {
		return ascii.Plan{}, errors.New(errors.ErrCodeInvalidScene, path+": "+format, args...)
	}

	var ok bool
	if p.Direction, ok = lookup(directions, spec.Direction, ascii.Row); !ok {
		return fail("unknown direction %q", spec.Direction)
	}
	if p.JustifyContent, ok = lookup(justifies, spec.Justify, ascii.JustifyStart); !ok {
		return fail("unknown justify %q", spec.Justify)
	}
	if p.AlignItems, ok = lookup(aligns, spec.AlignItems, ascii.AlignStretch); !ok {
		return fail("unknown align_items %q", spec.AlignItems)
	}
	if p.AlignContent, ok = lookup(aligns, spec.AlignContent, ascii.AlignStart); !ok {
		return fail("unknown align_content %q", spec.AlignContent)
	}
	if spec.AlignSelf != "" {
		self, ok := lookup(aligns, spec.AlignSelf, ascii.AlignStart)
		if !ok {
			return fail("unknown align_self %q", spec.AlignSelf)
		}
		p.AlignSelf = &self
	}
	if p.Overflow, ok = lookup(overflows, spec.Overflow, ascii.OverflowVisible); !ok {
		return fail("unknown overflow %q", spec.Overflow)
	}
	if p.PositionType, ok = lookup(positions, spec.Position, ascii.Relative); !ok {
		return fail("unknown position %q", spec.Position)
	}
	if spec.Wrap {
		p.FlexWrap = ascii.Wrap
	}

	if !nonNegative(spec.Grow) {
		return fail("grow must be a finite number not below zero, got %v", spec.Grow)
	}
	p.FlexGrow = spec.Grow
	if spec.Shrink != nil {
		if !nonNegative(*spec.Shrink) {
			return fail("shrink must be a finite number not below zero, got %v", *spec.Shrink)
		}
		p.FlexShrink = *spec.Shrink
	}
	if !nonNegative(spec.AspectRatio) {
		return fail("aspect_ratio must be a finite number not below zero, got %v", spec.AspectRatio)
	}
	p.AspectRatio = spec.AspectRatio

	p.FlexBasis = spec.Basis.or(p.FlexBasis)
	p.Width = spec.Width.or(p.Width)
	p.Height = spec.Height.or(p.Height)
	p.MinWidth = spec.MinWidth.or(p.MinWidth)
	p.MinHeight = spec.MinHeight.or(p.MinHeight)
	p.MaxWidth = spec.MaxWidth.or(p.MaxWidth)
	p.MaxHeight = spec.MaxHeight.or(p.MaxHeight)

	p.Padding = spec.Padding.Edges
	p.Margin = spec.Margin.Edges
	p.Position = ascii.EdgeTRBL(spec.Top.Value, spec.Right.Value, spec.Bottom.Value, spec.Left.Value)
	p.Atomic = spec.Atomic
	return p, nil
}

var (
	directions = map[string]ascii.Direction{"row": ascii.Row, "column": ascii.Column}
	justifies  = map[string]ascii.Justify{
		"start":         ascii.JustifyStart,
		"end":           ascii.JustifyEnd,
		"center":        ascii.JustifyCenter,
		"space-between": ascii.JustifySpaceBetween,
		"space-around":  ascii.JustifySpaceAround,
		"space-evenly":  ascii.JustifySpaceEvenly,
	}
	aligns = map[string]ascii.Align{
		"start":         ascii.AlignStart,
		"end":           ascii.AlignEnd,
		"center":        ascii.AlignCenter,
		"stretch":       ascii.AlignStretch,
		"space-between": ascii.AlignSpaceBetween,
		"space-around":  ascii.AlignSpaceAround,
	}
	overflows = map[string]ascii.Overflow{
		"visible": ascii.OverflowVisible,
		"hidden":  ascii.OverflowHidden,
		"scroll":  ascii.OverflowScroll,
	}
	positions = map[string]ascii.PositionType{"relative": ascii.Relative, "absolute": ascii.Absolute}
)

// lookup maps a scene keyword to its enum. An empty keyword gives def.
func lookup[T any](table map[string]T, key string, def T) (T, bool) {
	if key == "" {
		return def, true
	}
	v, ok := table[key]
	return v, ok
}
