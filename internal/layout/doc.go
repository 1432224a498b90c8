// Package layout implements a flexbox-style arrangement engine for
// character-cell grids.
//
// A tree of [Layoutable] nodes, each carrying a [Plan] of layout intent, is
// resolved by [Engine.Arrange] into per-node [Layout] records: position,
// size, padding, margin, wrap line and overflow. The algorithm follows the
// CSS flexible box model with a few simplifications: flexible
// lengths are resolved in exactly two passes, there are no borders or gaps,
// and results are snapped to a grid of 1/scale cells.
//
// Repeated calls are cheap. Each node remembers the constraints it was last
// visited with and skips recomputation when it is clean and the constraints
// match. Mutating a [Node] through its setters marks it and its ancestors
// dirty.
//
// Types are re-exported through the root ascii package for public use.
package layout
