// Package gridgraph provides utilities to treat a grid.Grid as a graph whose
// vertices are cells and whose edges join neighbouring cells.
//
// Cells for which the land predicate returns true are "land"; the rest are "water".
package gridgraph

import (
	"iter"

	"github.com/sncxyz/grid"
	"github.com/sncxyz/grid/vector"
)

// Neighbors yields the in-bounds neighbours of pos under conn, clockwise from North.
// Complexity: O(d).
func Neighbors[T any](g *grid.Grid[T], pos vector.Vector, conn Connectivity) iter.Seq[vector.Vector] {
	return func(yield func(vector.Vector) bool) {
		for _, d := range conn.Offsets() {
			n := pos.Add(d)
			if !g.InBounds(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// landMask evaluates isLand once per cell.
func landMask[T any](g *grid.Grid[T], isLand func(T) bool) *grid.Grid[bool] {
	return grid.Map(g, isLand)
}
