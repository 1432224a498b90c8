package layout

import (
	"fmt"
	"math"
)

// Undefined is the numeric form of an unresolved length. It is NaN, so it
// never compares equal to anything; use IsUndefined to test for it.
var Undefined = math.NaN()

// IsUndefined reports whether f is the Undefined length.
func IsUndefined(f float64) bool {
	return math.IsNaN(f)
}

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUndefined Unit = iota // Not set; the zero Value
	UnitAuto                  // Size determined by content/flex
	UnitFixed                 // Absolute terminal cells
	UnitPercent               // Percentage of the reference size
)

// Value represents a length that can be undefined, auto, fixed, or a percentage.
type Value struct {
	Amount float64
	Unit   Unit
}

// UndefinedValue returns the zero Value: no length set.
func UndefinedValue() Value {
	return Value{}
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of the reference size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the value against a reference size.
// For UnitAuto, UnitUndefined, or a percentage of an undefined reference,
// returns the fallback value.
func (v Value) Resolve(reference, fallback float64) float64 {
	if r := v.resolve(reference); !IsUndefined(r) {
		return r
	}
	return fallback
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsDefined returns true for fixed and percentage values.
func (v Value) IsDefined() bool {
	return v.Unit == UnitFixed || v.Unit == UnitPercent
}

func (v Value) String() string {
	switch v.Unit {
	case UnitAuto:
		return "auto"
	case UnitFixed:
		return fmt.Sprintf("%g", v.Amount)
	case UnitPercent:
		return fmt.Sprintf("%g%%", v.Amount)
	default:
		return "undefined"
	}
}

// resolve is Resolve with Undefined as the fallback.
func (v Value) resolve(reference float64) float64 {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitPercent:
		return v.Amount * reference / 100
	default:
		return Undefined
	}
}

// resolveMargin treats an auto margin as zero.
func (v Value) resolveMargin(reference float64) float64 {
	if v.Unit == UnitAuto {
		return 0
	}
	return v.resolve(reference)
}

func valuesEqual(a, b Value) bool {
	if a.Unit != b.Unit {
		return false
	}
	if a.Unit == UnitUndefined || a.Unit == UnitAuto {
		return true
	}
	return math.Abs(a.Amount-b.Amount) < 0.0001
}

// floatsEqual treats two Undefined values as equal.
func floatsEqual(a, b float64) bool {
	if IsUndefined(a) {
		return IsUndefined(b)
	}
	return math.Abs(a-b) < 0.0001
}

// fmax returns the larger of a and b, ignoring an Undefined operand.
func fmax(a, b float64) float64 {
	if IsUndefined(a) {
		return b
	}
	if IsUndefined(b) {
		return a
	}
	return math.Max(a, b)
}

// fmin returns the smaller of a and b, ignoring an Undefined operand.
func fmin(a, b float64) float64 {
	if IsUndefined(a) {
		return b
	}
	if IsUndefined(b) {
		return a
	}
	return math.Min(a, b)
}
