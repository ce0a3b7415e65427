// Package grid is a generic, fixed-size 2D container indexed by integer
// coordinates, together with the traversals that walk it.
//
// What:
//
//   - Grid[T] owns width*height values in one contiguous, row-major slice:
//     the cell at (x, y) lives at offset x + y*width.
//   - Positions are vector.Vector values; the grid treats them as opaque keys.
//   - Dimensions are fixed for the life of the grid; there is no resize.
//
// Construction:
//
//	New(w, h, v)             every cell = v
//	NewZero[T](w, h)         every cell = zero value of T
//	FromSimpleFunc(w, h, f)  f() per cell, row-major call order
//	FromFunc(w, h, f)        f(pos) per cell, row-major call order
//	FromSeq(w, h, seq)       row-major fill from an iter.Seq
//	FromRows(rows)           width from the first row, height = row count
//
// Access:
//
//   - Checked: InBounds, Get, GetPtr, Set. Out-of-range is a normal result (ok == false).
//   - Unchecked: At, Ptr, Put. Out-of-range is a programming error and panics.
//
// Transforms (Map, MapPositions, MapInto, MapPositionsInto) build a new grid of
// the same shape; the *Into variants consume the source.
//
// Traversal: Values, Pointers, Positions, PositionsMut, IntoValues,
// IntoPositions, Rows and Cursor, all in row-major order.
//
// Errors:
//
//   - ErrBadDimensions, ErrTooLarge: invalid constructor dimensions (panic).
//   - ErrOutOfBounds: unchecked access outside the grid (panic).
//   - ErrShortSeq: FromSeq ran out of values (panic).
//   - ErrRaggedRows: FromRows rows of differing lengths (panic).
//   - ErrBorrowed: overlapping traversals, only with -tags griddebug (panic).
//
// Panic values are errors wrapping these sentinels, so they can be matched with
// errors.Is after recover.
//
// Quick example:
//
//	g := grid.FromSlice(2, 3, []int{1, 2, 3, 4, 5, 6})
//	g.At(vector.V(1, 0)) // 2
//	g.At(vector.V(0, 2)) // 5
//
// Related packages:
//
//	vector/    — the Vector position type
//	gridgraph/ — connected components and island bridging over a grid
//	gridmat/   — conversion to and from gonum matrices
//	gridplot/  — heat-map rendering of numeric grids
package grid
