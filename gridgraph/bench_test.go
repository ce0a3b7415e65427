package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/sncxyz/grid"
	"github.com/sncxyz/grid/gridgraph"
	"github.com/sncxyz/grid/vector"
)

// randomGrid returns an n×n grid with values in [0,4] from a fixed seed.
func randomGrid(n int) *grid.Grid[int] {
	rng := rand.New(rand.NewSource(42))

	return grid.FromSimpleFunc(n, n, func() int { return rng.Intn(5) })
}

// BenchmarkComponents measures Components on a random 1000×1000 grid.
// Complexity: O(W×H×d)
func BenchmarkComponents(b *testing.B) {
	g := randomGrid(1000)
	opts := gridgraph.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.Components(g, isLand, opts)
	}
}

// BenchmarkExpandIsland measures ExpandIsland on a 1000×1000 grid with two
// 1-cell islands at opposite corners.
func BenchmarkExpandIsland(b *testing.B) {
	const n = 1000
	g := grid.NewZero[int](n, n)
	g.Put(vector.V(0, 0), 1)
	g.Put(vector.V(n-1, n-1), 1)
	opts := gridgraph.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := gridgraph.ExpandIsland(g, isLand, 0, 1, opts)
		if err != nil {
			b.Fatalf("ExpandIsland error: %v", err)
		}
	}
}
