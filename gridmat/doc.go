// Package gridmat converts between numeric grids and gonum matrices.
//
// Orientation:
//
//   - Grid rows map to matrix rows and grid columns to matrix columns, so the
//     cell at (x, y) is the matrix element (y, x).
//   - A w×h grid becomes an h×w matrix.
//
// Both directions copy; the results never share storage with their source.
package gridmat
