// Package gridplot renders numeric grids as heat maps using gonum/plot.
//
// Row 0 of the grid is drawn at the top. To keep the plot's y axis
// increasing upward, a grid row y is plotted at y = -row, so axis labels
// read as negated row indices. Columns are plotted at x = column.
//
// Options:
//
//   - WithTitle: plot title (default none).
//   - WithSize: output size for WritePNG (default 6in × 6in).
//   - WithColors: number of palette steps (default 16, minimum 2).
//
// Errors:
//
//   - ErrEmptyGrid: the grid has no cells.
package gridplot
