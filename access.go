// SPDX-License-Identifier: MIT

// Package grid - position-indexed access.
//
// Two families, deliberately kept apart:
//   - Checked (InBounds, Get, GetPtr, Set): an out-of-range position is an
//     ordinary outcome, reported as ok == false. Nothing is mutated.
//   - Unchecked (At, Ptr, Put): the caller guarantees the position is valid.
//     A bad position panics with ErrOutOfBounds naming both the dimensions
//     and the position.

package grid

import (
	"fmt"

	"github.com/sncxyz/grid/vector"
)

// InBounds reports whether 0 <= pos.X < Width() and 0 <= pos.Y < Height().
// Complexity: O(1).
func (g *Grid[T]) InBounds(pos vector.Vector) bool {
	return pos.X >= 0 && pos.X < g.dim.X && pos.Y >= 0 && pos.Y < g.dim.Y
}

// index maps an in-bounds position to its row-major offset x + y*width.
// The coordinates are known non-negative once bounds-checked, so the
// arithmetic runs on uint.
func (g *Grid[T]) index(pos vector.Vector) (int, bool) {
	if !g.InBounds(pos) {
		return 0, false
	}

	return int(uint(pos.X) + uint(pos.Y)*uint(g.dim.X)), true
}

// mustIndex is index for the unchecked accessors.
func (g *Grid[T]) mustIndex(pos vector.Vector) int {
	i, ok := g.index(pos)
	if !ok {
		panic(fmt.Errorf("%w: the dimensions are %v but the position is %v", ErrOutOfBounds, g.dim, pos))
	}

	return i
}

// Get returns the value at pos, or the zero value and false if pos is out of bounds.
func (g *Grid[T]) Get(pos vector.Vector) (T, bool) {
	g.borrow.read("Get")
	i, ok := g.index(pos)
	if !ok {
		var zero T
		return zero, false
	}

	return g.raw[i], true
}

// GetPtr returns a pointer to the cell at pos, or nil and false if pos is out of bounds.
//
// The pointer aliases the grid's storage. While it is in use the caller must
// not read or write the same cell through any other path.
func (g *Grid[T]) GetPtr(pos vector.Vector) (*T, bool) {
	g.borrow.write("GetPtr")
	i, ok := g.index(pos)
	if !ok {
		return nil, false
	}

	return &g.raw[i], true
}

// Set stores value at pos and returns the value it replaced.
// If pos is out of bounds nothing changes and Set returns the zero value and false.
func (g *Grid[T]) Set(pos vector.Vector, value T) (old T, ok bool) {
	g.borrow.write("Set")
	i, ok := g.index(pos)
	if !ok {
		return old, false
	}
	old, g.raw[i] = g.raw[i], value

	return old, true
}

// At returns the value at pos. Panics with ErrOutOfBounds if pos is out of bounds.
func (g *Grid[T]) At(pos vector.Vector) T {
	g.borrow.read("At")

	return g.raw[g.mustIndex(pos)]
}

// Ptr returns a pointer to the cell at pos. Panics with ErrOutOfBounds if
// pos is out of bounds. The aliasing rules of GetPtr apply.
func (g *Grid[T]) Ptr(pos vector.Vector) *T {
	g.borrow.write("Ptr")

	return &g.raw[g.mustIndex(pos)]
}

// Put stores value at pos. Panics with ErrOutOfBounds if pos is out of bounds.
func (g *Grid[T]) Put(pos vector.Vector, value T) {
	g.borrow.write("Put")
	g.raw[g.mustIndex(pos)] = value
}

// Fill sets every cell to value.
func (g *Grid[T]) Fill(value T) {
	g.borrow.write("Fill")
	for i := range g.raw {
		g.raw[i] = value
	}
}

// Apply calls f with every position and a pointer to its cell, in row-major order.
// f must not access g except through the pointer it is given.
func (g *Grid[T]) Apply(f func(pos vector.Vector, v *T)) {
	g.borrow.lock("Apply")
	defer g.borrow.unlock()
	var pos vector.Vector
	for i := range g.raw {
		f(pos, &g.raw[i])
		if pos.X++; pos.X == g.dim.X {
			pos.X = 0
			pos.Y++
		}
	}
}
