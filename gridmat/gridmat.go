// SPDX-License-Identifier: MIT

package gridmat

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sncxyz/grid"
	"github.com/sncxyz/grid/vector"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptyMatrix indicates a matrix with no rows or no columns.
var ErrEmptyMatrix = errors.New("gridmat: matrix must have at least one row and one column")

// ToDense copies g into a new Height()×Width() *mat.Dense.
// Panics with ErrEmptyMatrix wrapped if g has no cells, since gonum cannot
// represent a zero-sized Dense.
//
// Complexity: O(w*h).
func ToDense(g *grid.Grid[float64]) *mat.Dense {
	if g.Len() == 0 {
		panic(fmt.Errorf("%w: grid is %v", ErrEmptyMatrix, g.Dim()))
	}
	// Grid storage is row-major, exactly what mat.NewDense expects.
	return mat.NewDense(g.Height(), g.Width(), slices.Collect(g.Values()))
}

// FromMatrix copies m into a new grid with Width() = columns and Height() = rows.
//
// Errors:
//   - ErrEmptyMatrix if m has zero rows or columns.
func FromMatrix(m mat.Matrix) (*grid.Grid[float64], error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}

	return grid.FromFunc(c, r, func(p vector.Vector) float64 { return m.At(p.Y, p.X) }), nil
}

// ToGrid is FromMatrix for any grid element type, converting each float64
// through conv.
func ToGrid[T any](m mat.Matrix, conv func(float64) T) (*grid.Grid[T], error) {
	g, err := FromMatrix(m)
	if err != nil {
		return nil, err
	}

	return grid.MapInto(g, conv), nil
}
