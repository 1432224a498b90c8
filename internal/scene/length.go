package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	ascii "github.com/No8Dev/No8.Ascii-sub002"
)

// Length is a scene length: a bare number of cells, or a string holding
// "12", "50%" or "auto".
type Length struct {
	Value ascii.Value
	Set   bool
}

// UnmarshalTOML implements toml.Unmarshaler.
func (l *Length) UnmarshalTOML(data any) error {
	v, err := parseLength(data)
	if err != nil {
		return err
	}
	l.Value, l.Set = v, true
	return nil
}

// or returns the parsed value, or def when the key was absent.
func (l Length) or(def ascii.Value) ascii.Value {
	if !l.Set {
		return def
	}
	return l.Value
}

func parseLength(data any) (ascii.Value, error) {
	switch v := data.(type) {
	case int64:
		return ascii.Fixed(float64(v)), nil
	case float64:
		if !finite(v) {
			return ascii.Value{}, fmt.Errorf("length must be finite, got %v", v)
		}
		return ascii.Fixed(v), nil
	case string:
		s := strings.TrimSpace(v)
		switch {
		case s == "auto":
			return ascii.Auto(), nil
		case strings.HasSuffix(s, "%"):
			p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
			if err != nil || !finite(p) {
				return ascii.Value{}, fmt.Errorf("bad percentage %q", v)
			}
			return ascii.Percent(p), nil
		default:
			n, err := strconv.ParseFloat(s, 64)
			if err != nil || !finite(n) {
				return ascii.Value{}, fmt.Errorf("bad length %q", v)
			}
			return ascii.Fixed(n), nil
		}
	}
	return ascii.Value{}, fmt.Errorf("length must be a number or string, got %T", data)
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// nonNegative reports whether v is a finite number not below zero.
func nonNegative(v float64) bool {
	return finite(v) && v >= 0
}

// Spacing is padding or margin: one length for every side, or a list of one
// to four lengths in CSS order.
type Spacing struct {
	Edges ascii.Edges
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Spacing) UnmarshalTOML(data any) error {
	list, ok := data.([]any)
	if !ok {
		list = []any{data}
	}
	if len(list) == 0 || len(list) > 4 {
		return fmt.Errorf("spacing takes 1 to 4 values, got %d", len(list))
	}

	vals := make([]ascii.Value, len(list))
	for i, item := range list {
		v, err := parseLength(item)
		if err != nil {
			return err
		}
		vals[i] = v
	}

	switch len(vals) {
	case 1:
		s.Edges = ascii.EdgeAll(vals[0])
	case 2:
		s.Edges = ascii.EdgeSymmetric(vals[0], vals[1])
	case 3:
		s.Edges = ascii.EdgeTRBL(vals[0], vals[1], vals[2], vals[1])
	case 4:
		s.Edges = ascii.EdgeTRBL(vals[0], vals[1], vals[2], vals[3])
	}
	return nil
}
