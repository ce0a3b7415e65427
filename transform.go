// SPDX-License-Identifier: MIT

// Package grid - whole-grid transforms.
//
// Every transform produces a grid with the source's dimensions and calls f
// exactly once per cell, y outer and x inner, so side effects in f observe
// row-major order.
//
// Borrowing (Map, MapPositions) leave the source untouched. Consuming
// (MapInto, MapPositionsInto) take the source's storage, leave it 0x0, and
// when U is the same type as T write the results back into that storage
// instead of allocating.

package grid

import "github.com/sncxyz/grid/vector"

// Map returns a grid of f applied to each value of g.
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	g.borrow.share("Map")
	defer g.borrow.unshare()
	raw := make([]U, len(g.raw))
	for i, v := range g.raw {
		raw[i] = f(v)
	}

	return &Grid[U]{raw: raw, dim: g.dim}
}

// MapPositions returns a grid of f applied to each position and value of g.
func MapPositions[T, U any](g *Grid[T], f func(pos vector.Vector, v T) U) *Grid[U] {
	g.borrow.share("MapPositions")
	defer g.borrow.unshare()
	raw := make([]U, len(g.raw))
	var pos vector.Vector
	for i, v := range g.raw {
		raw[i] = f(pos, v)
		if pos.X++; pos.X == g.dim.X {
			pos.X = 0
			pos.Y++
		}
	}

	return &Grid[U]{raw: raw, dim: g.dim}
}

// MapInto is Map that consumes g. After the call g is an empty 0x0 grid.
func MapInto[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	src, dim := g.release("MapInto")
	dst := reuse[T, U](src)
	var zero T
	for i := range src {
		v := src[i]
		src[i] = zero
		dst[i] = f(v)
	}

	return &Grid[U]{raw: dst, dim: dim}
}

// MapPositionsInto is MapPositions that consumes g. After the call g is an
// empty 0x0 grid.
func MapPositionsInto[T, U any](g *Grid[T], f func(pos vector.Vector, v T) U) *Grid[U] {
	src, dim := g.release("MapPositionsInto")
	dst := reuse[T, U](src)
	var (
		zero T
		pos  vector.Vector
	)
	for i := range src {
		v := src[i]
		src[i] = zero
		dst[i] = f(pos, v)
		if pos.X++; pos.X == dim.X {
			pos.X = 0
			pos.Y++
		}
	}

	return &Grid[U]{raw: dst, dim: dim}
}

// reuse returns src itself when T and U are the same type, otherwise a fresh
// slice of the same length. Callers read src[i] before writing dst[i].
func reuse[T, U any](src []T) []U {
	if dst, ok := any(src).([]U); ok {
		return dst
	}

	return make([]U, len(src))
}
