package layout

// MeasureMode tells a node how to interpret an available length.
type MeasureMode uint8

const (
	MeasureUndefined MeasureMode = iota // Max-content: size is unconstrained
	MeasureExactly                      // Fill available: size is exactly the length
	MeasureAtMost                       // Fit-content: size may not exceed the length
)

func (m MeasureMode) String() string {
	switch m {
	case MeasureExactly:
		return "exactly"
	case MeasureAtMost:
		return "at-most"
	default:
		return "undefined"
	}
}

// Size represents a width/height pair in cells.
type Size struct {
	Width, Height float64
}

// MeasureFunc reports the intrinsic size of leaf content such as text.
// width and height are content-box hints; each is Undefined exactly when its
// mode is MeasureUndefined. A panicking MeasureFunc is not recovered.
type MeasureFunc func(width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) Size
