// SPDX-License-Identifier: MIT

// Package grid - Grid type, constructors and shape queries.
//
// Purpose:
//   - Own a flat, row-major buffer of width*height values (offset = x + y*width).
//   - Establish the row-major contract once, in the constructors; every other
//     file relies on it.
//   - Reject impossible shapes up front: non-positive or overflowing
//     dimensions panic before anything is allocated.
//
// Complexity quicksheet:
//   - New/NewZero/FromFunc/FromSimpleFunc/FromSeq: O(w*h).
//   - FromRows: O(total values); Width/Height/Dim/Len: O(1).

package grid

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
	"slices"

	"github.com/sncxyz/grid/vector"
)

// Grid is a fixed-size 2D container of T addressed by vector.Vector.
//
// For a position (x, y), x selects the column and y the row. There are
// Width() columns and Height() rows, and every traversal visits cells in
// row-major order: all of row 0 left to right, then row 1, and so on.
//
// The zero value is a 0x0 grid that rejects every position. The same shape
// results from FromRows with no rows, and from any consuming operation
// (MapInto, IntoValues, ...) applied to a grid, which releases its storage.
//
// A Grid is not safe for concurrent use. Mutable access (GetPtr, Set, Ptr,
// Put, Fill, Apply, Pointers, PositionsMut) must not overlap any other access
// to the same grid; build with -tags griddebug to have overlapping
// traversals reported as ErrBorrowed panics.
type Grid[T any] struct {
	raw    []T           // row-major storage, len == dim.X*dim.Y
	dim    vector.Vector // (width, height)
	borrow borrowState   // debug-only traversal bookkeeping
}

// size validates dimensions and returns width*height.
// Panics with ErrBadDimensions or ErrTooLarge.
func size(width, height int) int {
	if width <= 0 || height <= 0 {
		panic(fmt.Errorf("%w: (%d, %d)", ErrBadDimensions, width, height))
	}
	hi, lo := bits.Mul(uint(width), uint(height))
	if hi != 0 || lo > math.MaxInt {
		panic(fmt.Errorf("%w: (%d, %d)", ErrTooLarge, width, height))
	}

	return int(lo)
}

// New returns a width×height grid with every cell set to value.
// Panics if the dimensions are not positive or too large.
//
// Complexity: O(w*h) time and memory.
func New[T any](width, height int, value T) *Grid[T] {
	raw := make([]T, size(width, height))
	for i := range raw {
		raw[i] = value
	}

	return &Grid[T]{raw: raw, dim: vector.V(width, height)}
}

// NewZero returns a width×height grid with every cell set to the zero value of T.
// Panics if the dimensions are not positive or too large.
func NewZero[T any](width, height int) *Grid[T] {
	return &Grid[T]{raw: make([]T, size(width, height)), dim: vector.V(width, height)}
}

// FromSimpleFunc returns a width×height grid whose cells are filled by calling
// f once per cell in row-major order. Unlike New, each call may produce a
// different value.
// Panics if the dimensions are not positive or too large.
func FromSimpleFunc[T any](width, height int, f func() T) *Grid[T] {
	raw := make([]T, size(width, height))
	for i := range raw {
		raw[i] = f()
	}

	return &Grid[T]{raw: raw, dim: vector.V(width, height)}
}

// FromFunc returns a width×height grid where the cell at pos holds f(pos).
// f is called exactly once per cell, y outer and x inner.
// Panics if the dimensions are not positive or too large.
//
// Complexity: O(w*h) calls of f.
func FromFunc[T any](width, height int, f func(pos vector.Vector) T) *Grid[T] {
	raw := make([]T, 0, size(width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			raw = append(raw, f(vector.V(x, y)))
		}
	}

	return &Grid[T]{raw: raw, dim: vector.V(width, height)}
}

// FromSeq returns a width×height grid filled from values in row-major order.
//
// Exactly width*height values are pulled; anything after them is left
// unread. Panics with ErrShortSeq if values ends first, and with
// ErrBadDimensions/ErrTooLarge on invalid dimensions.
func FromSeq[T any](width, height int, values iter.Seq[T]) *Grid[T] {
	n := size(width, height)
	raw := make([]T, 0, n)
	for v := range values {
		raw = append(raw, v)
		if len(raw) == n {
			break
		}
	}
	if len(raw) < n {
		panic(fmt.Errorf("%w: got %d values for a %dx%d grid", ErrShortSeq, len(raw), width, height))
	}

	return &Grid[T]{raw: raw, dim: vector.V(width, height)}
}

// FromSlice is FromSeq over the elements of values. The slice is copied.
func FromSlice[T any](width, height int, values []T) *Grid[T] {
	return FromSeq(width, height, slices.Values(values))
}

// FromRows builds a grid from a sequence of rows, each a sequence of values.
//
// The first row fixes the width and the number of rows is the height. Panics
// with ErrRaggedRows when a later row differs in length from the first, and
// with ErrBadDimensions when the rows are empty.
//
// No rows at all yield a 0x0 grid. This is the one constructor that can
// produce a grid without positive dimensions; such a grid reports every
// position as out of bounds.
func FromRows[T any](rows iter.Seq[iter.Seq[T]]) *Grid[T] {
	var raw []T
	width, height := 0, 0
	for row := range rows {
		count := 0
		for v := range row {
			raw = append(raw, v)
			count++
		}
		if height == 0 {
			width = count
		} else if count != width {
			panic(fmt.Errorf("%w: row %d has %d values, row 0 has %d", ErrRaggedRows, height, count, width))
		}
		height++
	}
	if height == 0 {
		return &Grid[T]{}
	}
	if width == 0 {
		panic(fmt.Errorf("%w: (%d, %d)", ErrBadDimensions, width, height))
	}

	return &Grid[T]{raw: raw, dim: vector.V(width, height)}
}

// FromNested is FromRows over a slice of row slices. The rows are copied.
func FromNested[T any](rows [][]T) *Grid[T] {
	return FromRows(func(yield func(iter.Seq[T]) bool) {
		for _, row := range rows {
			if !yield(slices.Values(row)) {
				return
			}
		}
	})
}

// Width returns the number of columns. Complexity: O(1).
func (g *Grid[T]) Width() int { return g.dim.X }

// Height returns the number of rows. Complexity: O(1).
func (g *Grid[T]) Height() int { return g.dim.Y }

// Dim returns (width, height) as a vector. Complexity: O(1).
func (g *Grid[T]) Dim() vector.Vector { return g.dim }

// Len returns the number of cells, Width()*Height().
func (g *Grid[T]) Len() int { return len(g.raw) }

// Clone returns an independent copy of g. Values are copied shallowly.
func (g *Grid[T]) Clone() *Grid[T] {
	g.borrow.read("Clone")

	return &Grid[T]{raw: slices.Clone(g.raw), dim: g.dim}
}

// release hands the storage over to a consuming operation and leaves g as 0x0.
func (g *Grid[T]) release(op string) ([]T, vector.Vector) {
	g.borrow.write(op)
	raw, dim := g.raw, g.dim
	g.raw, g.dim = nil, vector.Zero

	return raw, dim
}

// Equal reports whether a and b have the same dimensions and equal cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	return a.dim == b.dim && slices.Equal(a.raw, b.raw)
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a *Grid[T], b *Grid[U], eq func(T, U) bool) bool {
	return a.dim == b.dim && slices.EqualFunc(a.raw, b.raw, eq)
}
