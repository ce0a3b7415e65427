// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/sncxyz/grid"
	"github.com/sncxyz/grid/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleComponents identifies contiguous islands of non-zero cells.
// Scenario:
//
//   - Grid values: 0 = water, anything else = land
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect three islands, listed in the row-major order of their first cell.
func ExampleComponents() {
	g := grid.FromNested([][]int{
		{1, 1, 0, 2},
		{0, 0, 0, 2},
		{3, 0, 2, 2},
	})
	comps := gridgraph.Components(g, func(v int) bool { return v != 0 }, gridgraph.DefaultOptions())

	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %v\n", i, comp)
	}
	// Output:
	// components: 3
	// component 0: [(0, 0) (1, 0)]
	// component 1: [(3, 0) (3, 1) (3, 2) (2, 2)]
	// component 2: [(0, 2)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExpandIsland
////////////////////////////////////////////////////////////////////////////////

// ExampleExpandIsland bridges two islands by converting the fewest water cells.
func ExampleExpandIsland() {
	g := grid.FromNested([][]int{
		{1, 1, 0, 2},
		{0, 0, 0, 0},
	})
	path, cost, err := gridgraph.ExpandIsland(g, func(v int) bool { return v != 0 }, 0, 1, gridgraph.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("convert %d water cell(s) along %v\n", cost, path)
	// Output:
	// convert 1 water cell(s) along [(1, 0) (2, 0) (3, 0)]
}
