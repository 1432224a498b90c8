package layout

import (
	"fmt"
	"math"
)

// visit decides whether a node must be recomputed for the given constraints
// and records the result. Nodes are laid out at most once per pass but may
// be measured many times while flexible lengths resolve, so measurements
// and the final layout are cached separately.
//
// It reports whether the node was computed rather than served from cache.
func (p *pass) visit(n Layoutable, availableWidth, availableHeight float64, widthMode, heightMode MeasureMode,
	parentWidth, parentHeight float64, performLayout bool, reason string) bool {
	if p.strict {
		assert(IsUndefined(availableWidth) == (widthMode == MeasureUndefined),
			"available width %v does not match measure mode %v", availableWidth, widthMode)
		assert(IsUndefined(availableHeight) == (heightMode == MeasureUndefined),
			"available height %v does not match measure mode %v", availableHeight, heightMode)
	}

	l := n.LayoutState()
	p.depth++

	needToVisit := n.IsDirty() && l.generation != p.generation
	if needToVisit {
		l.nextCached = 0
		l.cached.valid = false
	}

	var cached *cachedMeasurement
	switch {
	case n.LayoutMeasure() != nil:
		marginRow := marginForAxis(n, Row, parentWidth)
		marginColumn := marginForAxis(n, Column, parentWidth)
		if p.canUseCachedMeasurement(widthMode, availableWidth, heightMode, availableHeight, &l.cached, marginRow, marginColumn) {
			cached = &l.cached
			break
		}
		for i := 0; i < l.nextCached; i++ {
			if p.canUseCachedMeasurement(widthMode, availableWidth, heightMode, availableHeight, &l.measurements[i], marginRow, marginColumn) {
				cached = &l.measurements[i]
				break
			}
		}
	case performLayout:
		if l.cached.matches(availableWidth, availableHeight, widthMode, heightMode) {
			cached = &l.cached
		}
	default:
		for i := 0; i < l.nextCached; i++ {
			if l.measurements[i].matches(availableWidth, availableHeight, widthMode, heightMode) {
				cached = &l.measurements[i]
				break
			}
		}
	}

	computed := needToVisit || cached == nil
	if !computed {
		l.measured[DimensionWidth] = cached.computedWidth
		l.measured[DimensionHeight] = cached.computedHeight
	} else {
		p.resolve(n, availableWidth, availableHeight, widthMode, heightMode, parentWidth, parentHeight, performLayout)

		if cached == nil {
			var entry *cachedMeasurement
			if performLayout {
				entry = &l.cached
			} else {
				if l.nextCached == maxCachedMeasurements {
					l.nextCached = 0
				}
				entry = &l.measurements[l.nextCached]
				l.nextCached++
			}
			*entry = cachedMeasurement{
				valid:           true,
				availableWidth:  availableWidth,
				availableHeight: availableHeight,
				widthMode:       widthMode,
				heightMode:      heightMode,
				computedWidth:   l.measured[DimensionWidth],
				computedHeight:  l.measured[DimensionHeight],
			}
		}
	}

	if p.logger != nil {
		p.logger.Debug("visit",
			"depth", p.depth,
			"node", nodeName(n),
			"reason", reason,
			"wm", widthMode, "hm", heightMode,
			"aw", availableWidth, "ah", availableHeight,
			"w", l.measured[DimensionWidth], "h", l.measured[DimensionHeight],
			"cached", !computed)
	}

	// A top-level cache hit keeps the previous, already rounded geometry.
	if performLayout {
		if computed || p.depth > 1 {
			l.Width = l.measured[DimensionWidth]
			l.Height = l.measured[DimensionHeight]
		}
		n.SetDirty(false)
	}

	p.depth--
	l.generation = p.generation
	return computed
}

func (c *cachedMeasurement) matches(width, height float64, widthMode, heightMode MeasureMode) bool {
	return c.valid &&
		c.widthMode == widthMode && c.heightMode == heightMode &&
		floatsEqual(c.availableWidth, width) && floatsEqual(c.availableHeight, height)
}

// canUseCachedMeasurement reports whether a measured leaf's earlier result
// is valid for new constraints. Each axis is compatible when the request is
// identical, when an exact request equals the size computed last time, when
// an at-most request still fits a size measured without a bound, or when a
// tighter at-most bound still holds the size computed under a looser one.
func (p *pass) canUseCachedMeasurement(widthMode MeasureMode, width float64, heightMode MeasureMode, height float64,
	last *cachedMeasurement, marginRow, marginColumn float64) bool {
	if !last.valid || last.computedWidth < 0 || last.computedHeight < 0 {
		return false
	}

	effWidth, effHeight := width, height
	effLastWidth, effLastHeight := last.availableWidth, last.availableHeight
	if p.scale != 0 {
		effWidth = roundValue(width, p.scale, false, false)
		effHeight = roundValue(height, p.scale, false, false)
		effLastWidth = roundValue(last.availableWidth, p.scale, false, false)
		effLastHeight = roundValue(last.availableHeight, p.scale, false, false)
	}

	widthOK := (last.widthMode == widthMode && floatsEqual(effLastWidth, effWidth)) ||
		sizeIsExactAndMatchesOldMeasuredSize(widthMode, width-marginRow, last.computedWidth) ||
		oldSizeIsUnspecifiedAndStillFits(widthMode, width-marginRow, last.widthMode, last.computedWidth) ||
		newSizeIsStricterAndStillValid(widthMode, width-marginRow, last.widthMode, last.availableWidth, last.computedWidth)

	heightOK := (last.heightMode == heightMode && floatsEqual(effLastHeight, effHeight)) ||
		sizeIsExactAndMatchesOldMeasuredSize(heightMode, height-marginColumn, last.computedHeight) ||
		oldSizeIsUnspecifiedAndStillFits(heightMode, height-marginColumn, last.heightMode, last.computedHeight) ||
		newSizeIsStricterAndStillValid(heightMode, height-marginColumn, last.heightMode, last.availableHeight, last.computedHeight)

	return widthOK && heightOK
}

func sizeIsExactAndMatchesOldMeasuredSize(mode MeasureMode, size, lastComputed float64) bool {
	return mode == MeasureExactly && floatsEqual(size, lastComputed)
}

func oldSizeIsUnspecifiedAndStillFits(mode MeasureMode, size float64, lastMode MeasureMode, lastComputed float64) bool {
	return mode == MeasureAtMost && lastMode == MeasureUndefined &&
		(size >= lastComputed || floatsEqual(size, lastComputed))
}

func newSizeIsStricterAndStillValid(mode MeasureMode, size float64, lastMode MeasureMode, lastSize, lastComputed float64) bool {
	return lastMode == MeasureAtMost && mode == MeasureAtMost &&
		lastSize > size && (lastComputed <= size || floatsEqual(size, lastComputed))
}

func nodeName(n Layoutable) string {
	if s, ok := n.(fmt.Stringer); ok {
		if name := s.String(); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%T", n)
}

// roundValue snaps value to a grid of 1/scale. Values already on the grid
// are kept; otherwise forceCeil and forceFloor pick a direction before
// falling back to round-half-up.
func roundValue(value, scale float64, forceCeil, forceFloor bool) float64 {
	scaled := value * scale
	frac := scaled - math.Floor(scaled)
	switch {
	case floatsEqual(frac, 0):
		scaled -= frac
	case floatsEqual(frac, 1):
		scaled = scaled - frac + 1
	case forceCeil:
		scaled = scaled - frac + 1
	case forceFloor:
		scaled -= frac
	case frac >= 0.5:
		scaled = scaled - frac + 1
	default:
		scaled -= frac
	}
	return scaled / scale
}
