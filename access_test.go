package grid_test

import (
	"slices"
	"testing"

	"github.com/sncxyz/grid"
	"github.com/sncxyz/grid/vector"
	"github.com/stretchr/testify/require"
)

// TestInBounds probes corners, edges and every kind of miss on a 15×14 grid.
func TestInBounds(t *testing.T) {
	g := grid.New(15, 14, 11)

	valid := []vector.Vector{{0, 0}, {10, 4}, {14, 13}, {0, 13}, {14, 0}}
	for _, p := range valid {
		require.True(t, g.InBounds(p), "InBounds%v", p)
	}
	invalid := []vector.Vector{{15, 2}, {3, 17}, {-1, 5}, {-15, -14}, {15, 14}, {0, -1}}
	for _, p := range invalid {
		require.False(t, g.InBounds(p), "InBounds%v", p)
	}
}

// TestGet checks present and absent reads.
func TestGet(t *testing.T) {
	g := grid.New(8, 10, uint8(3))
	g.Put(vector.V(1, 1), 4)

	v, ok := g.Get(vector.V(5, 2))
	require.True(t, ok)
	require.Equal(t, uint8(3), v)

	v, ok = g.Get(vector.V(1, 1))
	require.True(t, ok)
	require.Equal(t, uint8(4), v)

	for _, p := range []vector.Vector{{8, 6}, {4, 10}, {-2, 3}} {
		v, ok = g.Get(p)
		require.False(t, ok, "Get%v", p)
		require.Zero(t, v)
	}
}

// TestGetPtr checks that the returned pointer aliases the cell.
func TestGetPtr(t *testing.T) {
	g := grid.New(8, 10, 4)
	g.Put(vector.V(5, 3), 2)

	p, ok := g.GetPtr(vector.V(5, 3))
	require.True(t, ok)
	require.Equal(t, 2, *p)
	*p = 9
	require.Equal(t, 9, g.At(vector.V(5, 3)))

	for _, pos := range []vector.Vector{{1, 10}, {9, 7}, {4, -1}} {
		p, ok = g.GetPtr(pos)
		require.False(t, ok)
		require.Nil(t, p)
	}
}

// TestSetRoundTrip verifies Set returns the old value and Get then sees the new one.
func TestSetRoundTrip(t *testing.T) {
	g := grid.New(8, 10, 5)
	for _, pos := range allPositions(8, 10) {
		want := pos.X*100 + pos.Y
		old, ok := g.Set(pos, want)
		require.True(t, ok)
		require.Equal(t, 5, old)

		got, ok := g.Get(pos)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

// TestSetOutOfBoundsNoOp verifies a failed Set reports absence and leaves every cell unchanged.
func TestSetOutOfBoundsNoOp(t *testing.T) {
	g := grid.FromSlice(3, 2, []int{1, 2, 3, 4, 5, 6})
	before := slices.Collect(g.Values())

	for _, pos := range []vector.Vector{{9, 12}, {-4, -7}, {3, 0}, {0, 2}, {-1, 0}} {
		old, ok := g.Set(pos, 42)
		require.False(t, ok, "Set%v", pos)
		require.Zero(t, old)
	}
	require.Equal(t, before, slices.Collect(g.Values()))
}

// TestUncheckedAccess covers At/Ptr/Put on valid positions.
func TestUncheckedAccess(t *testing.T) {
	g := grid.New(8, 10, uint8(3))
	g.Put(vector.V(1, 0), 1)
	*g.Ptr(vector.V(3, 5)) = 2

	require.Equal(t, uint8(2), g.At(vector.V(3, 5)))
	require.Equal(t, uint8(1), g.At(vector.V(1, 0)))
	require.Equal(t, uint8(3), g.At(vector.V(6, 4)))
}

// TestUncheckedOutOfBounds verifies the fatal path and its diagnostic.
func TestUncheckedOutOfBounds(t *testing.T) {
	g := grid.New(8, 10, 0)
	cases := map[string]func(){
		"At":  func() { g.At(vector.V(8, 0)) },
		"Ptr": func() { g.Ptr(vector.V(0, -1)) },
		"Put": func() { g.Put(vector.V(-3, 20), 1) },
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			requirePanicIs(t, grid.ErrOutOfBounds, f)
		})
	}

	err := requirePanicIs(t, grid.ErrOutOfBounds, func() { g.At(vector.V(8, 3)) })
	require.Equal(t,
		"grid: position out of bounds: the dimensions are (8, 10) but the position is (8, 3)",
		err.Error())
	require.Equal(t, 0, g.At(vector.V(7, 9)), "grid untouched after panic")
}

// TestFillAndApply covers the in-place whole-grid mutators.
func TestFillAndApply(t *testing.T) {
	g := grid.NewZero[int](3, 2)
	g.Fill(7)
	require.Equal(t, []int{7, 7, 7, 7, 7, 7}, slices.Collect(g.Values()))

	var seen []vector.Vector
	g.Apply(func(pos vector.Vector, v *int) {
		seen = append(seen, pos)
		*v += pos.X * 10 * (pos.Y + 1)
	})
	require.Equal(t, allPositions(3, 2), seen)
	require.Equal(t, []int{7, 17, 27, 7, 27, 47}, slices.Collect(g.Values()))
}
