package layout

// Dimension indexes width/height pairs.
type Dimension uint8

const (
	DimensionWidth Dimension = iota
	DimensionHeight
)

func (d Direction) isRow() bool {
	return d == Row
}

func (d Direction) cross() Direction {
	if d == Row {
		return Column
	}
	return Row
}

// dim is the dimension measured along an axis.
func (d Direction) dim() Dimension {
	if d == Row {
		return DimensionWidth
	}
	return DimensionHeight
}

// leading is the edge children start from along an axis.
func (d Direction) leading() Edge {
	if d == Row {
		return EdgeLeft
	}
	return EdgeTop
}

// trailing is the edge opposite leading.
func (d Direction) trailing() Edge {
	if d == Row {
		return EdgeRight
	}
	return EdgeBottom
}

func (d Direction) String() string {
	if d == Row {
		return "row"
	}
	return "column"
}

// pick returns row when the axis is horizontal, column otherwise.
func pick[T any](axis Direction, row, column T) T {
	if axis == Row {
		return row
	}
	return column
}
