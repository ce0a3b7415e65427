// SPDX-License-Identifier: MIT

// Package vector defines the integer 2D coordinate used to address grid cells.
//
// A Vector is a plain comparable value: copy it, compare it with ==, use it
// as a map key. It carries no bounds of its own; whether a Vector addresses
// a cell is decided by the container that receives it.
//
// Axes:
//
//   - X grows to the right (column index).
//   - Y grows downward (row index), so South is (0, 1).
package vector

import "fmt"

// Vector is an (X, Y) pair of integer coordinates.
type Vector struct {
	X, Y int
}

// Common directions and the origin.
var (
	Zero  = Vector{0, 0}
	North = Vector{0, -1}
	East  = Vector{1, 0}
	South = Vector{0, 1}
	West  = Vector{-1, 0}
)

// New returns the Vector (x, y).
func New(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// V is shorthand for New, convenient in literals such as g.At(vector.V(2, 3)).
func V(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

// Scale returns v multiplied component-wise by k.
func (v Vector) Scale(k int) Vector {
	return Vector{v.X * k, v.Y * k}
}

// Less reports whether v precedes o in row-major order (Y first, then X).
func (v Vector) Less(o Vector) bool {
	if v.Y != o.Y {
		return v.Y < o.Y
	}

	return v.X < o.X
}

// String renders the vector as "(x, y)".
func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
