package gridgraph

import (
	"container/list"
	"math"

	"github.com/sncxyz/grid"
	"github.com/sncxyz/grid/vector"
)

// noPrev marks a cell with no predecessor on the BFS tree.
var noPrev = vector.V(-1, -1)

// ExpandIsland finds a minimum-conversion path of water cells connecting any
// cell of component src to any cell of component dst, as numbered by
// Components. Each water-cell conversion costs 1.
//
// Returns the path (including the start and end land cells) and the total
// conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all src cells:
//     • Moving into an existing land cell → cost 0
//     • Moving into a water cell         → cost 1
//  3. Stop when any dst cell is reached.
//  4. Reconstruct path via predecessors.
//
// Errors: ErrEmptyGrid, ErrComponentIndex, ErrNoPath.
//
// Complexity: O(W·H·d) time, O(W·H) memory for distance and predecessor grids.
func ExpandIsland[T any](g *grid.Grid[T], isLand func(T) bool, src, dst int, opts Options) ([]vector.Vector, int, error) {
	if g.Len() == 0 {
		return nil, 0, ErrEmptyGrid
	}
	land := landMask(g, isLand)
	comps, labels := components(land, opts.Conn)
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	w, h := g.Width(), g.Height()
	dist := grid.New(w, h, math.MaxInt)
	prev := grid.New(w, h, noPrev)

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, p := range comps[src] {
		dist.Put(p, 0)
		dq.PushFront(p)
	}

	target := noPrev
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(vector.Vector)
		if labels.At(u) == dst {
			target = u
			break
		}
		for v := range Neighbors(g, u, opts.Conn) {
			step := 0
			if !land.At(v) {
				step = 1
			}
			nd := dist.At(u) + step
			if nd < dist.At(v) {
				dist.Put(v, nd)
				prev.Put(v, u)
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target == noPrev {
		return nil, 0, ErrNoPath
	}
	var path []vector.Vector
	for at := target; at != noPrev; at = prev.At(at) {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist.At(target), nil
}
