// Package gridgraph treats a grid.Grid as a graph of cells, enabling
// component analysis and minimal-cost "island" expansions.
//
// What:
//
//   - A caller-supplied predicate decides which cells are "land".
//   - Components finds connected regions ("islands") of land cells.
//   - Labels paints every cell with the index of its island (-1 for water).
//   - ExpandIsland finds the fewest water cells to convert so that two
//     islands touch (0-1 BFS).
//   - Neighbors yields the in-bounds neighbours of a position.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Resource planning: connect facilities with minimal upgrades.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - Components, Labels: O(W×H×d), Memory: O(W×H)    (d = number of neighbours, 4 or 8).
//   - ExpandIsland:       O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - Options.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//
// Errors:
//
//   - ErrEmptyGrid: the grid has no cells.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
