package gridgraph

import (
	"github.com/sncxyz/grid"
	"github.com/sncxyz/grid/vector"
)

// Components finds all contiguous regions ("islands") of land cells according
// to opts.Conn.
//
// Islands are returned in the row-major order of their first cell, and each
// island lists its cells in BFS discovery order starting from that cell.
// A 0x0 grid has no components.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Components[T any](g *grid.Grid[T], isLand func(T) bool, opts Options) [][]vector.Vector {
	comps, _ := components(landMask(g, isLand), opts.Conn)

	return comps
}

// Labels returns a grid of the same shape in which every land cell holds the
// index of its island in Components order and every water cell holds -1,
// together with the number of islands.
func Labels[T any](g *grid.Grid[T], isLand func(T) bool, opts Options) (*grid.Grid[int], int) {
	comps, labels := components(landMask(g, isLand), opts.Conn)

	return labels, len(comps)
}

// components runs the BFS labelling over a precomputed land mask.
func components(land *grid.Grid[bool], conn Connectivity) ([][]vector.Vector, *grid.Grid[int]) {
	labels := grid.Map(land, func(bool) int { return -1 })
	var comps [][]vector.Vector

	for start, isLand := range land.Positions() {
		if !isLand || labels.At(start) >= 0 {
			continue
		}
		id := len(comps)
		labels.Put(start, id)
		// BFS to collect component; the queue doubles as the output.
		queue := []vector.Vector{start}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for v := range Neighbors(land, u, conn) {
				if land.At(v) && labels.At(v) < 0 {
					labels.Put(v, id)
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, labels
}
