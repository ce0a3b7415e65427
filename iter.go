// SPDX-License-Identifier: MIT

// Package grid - traversal.
//
// All sequences are finite, yield exactly Len() items and visit positions in
// row-major order, the same order FromFunc uses to build a grid. Positions are
// advanced incrementally rather than recomputed from the flat offset.
//
//	Values        iter.Seq[T]                   read-only
//	Pointers      iter.Seq[*T]                  mutable, exclusive
//	Positions     iter.Seq2[vector.Vector, T]   read-only
//	PositionsMut  iter.Seq2[vector.Vector, *T]  mutable, exclusive
//	IntoValues    iter.Seq[T]                   consuming
//	IntoPositions iter.Seq2[vector.Vector, T]   consuming
//	Rows          iter.Seq2[int, []T]           read-only row windows
//	Cursor        *Cursor[T]                    pull-style, one pass

package grid

import (
	"iter"

	"github.com/sncxyz/grid/vector"
)

// Values returns a sequence over the values of g in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		g.borrow.share("Values")
		defer g.borrow.unshare()
		for _, v := range g.raw {
			if !yield(v) {
				return
			}
		}
	}
}

// Pointers returns a sequence of pointers to each cell of g in row-major order.
//
// While the sequence is being ranged over, the loop body must not access g
// other than through the yielded pointers, and no other traversal of g may
// be live.
func (g *Grid[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		g.borrow.lock("Pointers")
		defer g.borrow.unlock()
		for i := range g.raw {
			if !yield(&g.raw[i]) {
				return
			}
		}
	}
}

// Positions returns a sequence of (position, value) pairs in row-major order.
func (g *Grid[T]) Positions() iter.Seq2[vector.Vector, T] {
	return func(yield func(vector.Vector, T) bool) {
		g.borrow.share("Positions")
		defer g.borrow.unshare()
		var pos vector.Vector
		for _, v := range g.raw {
			if !yield(pos, v) {
				return
			}
			if pos.X++; pos.X == g.dim.X {
				pos.X = 0
				pos.Y++
			}
		}
	}
}

// PositionsMut returns a sequence of (position, pointer) pairs in row-major
// order. The exclusivity rules of Pointers apply.
func (g *Grid[T]) PositionsMut() iter.Seq2[vector.Vector, *T] {
	return func(yield func(vector.Vector, *T) bool) {
		g.borrow.lock("PositionsMut")
		defer g.borrow.unlock()
		var pos vector.Vector
		for i := range g.raw {
			if !yield(pos, &g.raw[i]) {
				return
			}
			if pos.X++; pos.X == g.dim.X {
				pos.X = 0
				pos.Y++
			}
		}
	}
}

// IntoValues consumes g and returns a sequence over its values in row-major order.
//
// g is released immediately and becomes an empty 0x0 grid. Each value is
// yielded exactly once: breaking out of the loop and ranging again resumes
// after the last value yielded, and a fully drained sequence yields nothing.
func (g *Grid[T]) IntoValues() iter.Seq[T] {
	raw, _ := g.release("IntoValues")

	return func(yield func(T) bool) {
		var zero T
		for len(raw) > 0 {
			v := raw[0]
			raw[0] = zero
			raw = raw[1:]
			if !yield(v) {
				return
			}
		}
		raw = nil
	}
}

// IntoPositions consumes g and returns a sequence of (position, value) pairs
// in row-major order, with the single-pass semantics of IntoValues.
func (g *Grid[T]) IntoPositions() iter.Seq2[vector.Vector, T] {
	raw, dim := g.release("IntoPositions")
	var pos vector.Vector

	return func(yield func(vector.Vector, T) bool) {
		var zero T
		for len(raw) > 0 {
			v, at := raw[0], pos
			raw[0] = zero
			raw = raw[1:]
			if pos.X++; pos.X == dim.X {
				pos.X = 0
				pos.Y++
			}
			if !yield(at, v) {
				return
			}
		}
		raw = nil
	}
}

// Rows returns a sequence of (y, row) pairs, one per row, top to bottom.
//
// Each row is a window onto g's storage with its capacity clipped to the row.
// It is valid for reading only; writes through it are not tracked and must go
// through the mutable accessors instead.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		g.borrow.share("Rows")
		defer g.borrow.unshare()
		w := g.dim.X
		for y := 0; y < g.dim.Y; y++ {
			lo, hi := y*w, (y+1)*w
			if !yield(y, g.raw[lo:hi:hi]) {
				return
			}
		}
	}
}

// Cursor is a pull-style, single-pass traversal of a grid.
//
// Unlike the range sequences, a Cursor cannot be restarted: once Next has
// reported false it keeps doing so, and a new traversal needs a new Cursor.
// The grid must not be mutated while a Cursor over it is in use.
type Cursor[T any] struct {
	g   *Grid[T]
	i   int
	pos vector.Vector
}

// Cursor returns a new Cursor positioned before the first cell of g.
func (g *Grid[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{g: g}
}

// Next returns the next position and value, or ok == false when the grid is exhausted.
func (c *Cursor[T]) Next() (pos vector.Vector, v T, ok bool) {
	if c.i >= len(c.g.raw) {
		return pos, v, false
	}
	c.g.borrow.read("Cursor.Next")
	pos, v = c.pos, c.g.raw[c.i]
	c.i++
	if c.pos.X++; c.pos.X == c.g.dim.X {
		c.pos.X = 0
		c.pos.Y++
	}

	return pos, v, true
}

// Remaining returns how many cells Next has yet to yield.
func (c *Cursor[T]) Remaining() int {
	return max(len(c.g.raw)-c.i, 0)
}
