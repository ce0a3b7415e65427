// SPDX-License-Identifier: MIT

package gridplot

import (
	"errors"
	"fmt"
	"io"

	"github.com/sncxyz/grid"
	"github.com/sncxyz/grid/vector"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

// ErrEmptyGrid indicates a grid with no cells.
var ErrEmptyGrid = errors.New("gridplot: grid must have at least one row and one column")

// cells adapts a grid to plotter.GridXYZ. Plot row r is grid row h-1-r so
// that grid row 0 ends up on top.
type cells struct {
	g *grid.Grid[float64]
}

var _ plotter.GridXYZ = cells{}

func (c cells) Dims() (cols, rows int) { return c.g.Width(), c.g.Height() }

func (c cells) Z(col, row int) float64 {
	return c.g.At(vector.V(col, c.g.Height()-1-row))
}

func (c cells) X(col int) float64 { return float64(col) }

func (c cells) Y(row int) float64 { return -float64(c.g.Height() - 1 - row) }

// HeatMap builds a plot of g with one coloured cell per grid cell.
//
// Errors:
//   - ErrEmptyGrid if g has no cells.
func HeatMap(g *grid.Grid[float64], opts ...Option) (*plot.Plot, error) {
	if g.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	o := gatherOptions(opts...)

	hm := plotter.NewHeatMap(cells{g}, palette.Heat(o.colors, 1))
	if hm.Min == hm.Max {
		// A flat grid still needs a non-empty colour range.
		hm.Max = hm.Min + 1
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "-y"
	p.Add(hm)

	return p, nil
}

// WritePNG renders the heat map of g as a PNG image to w.
func WritePNG(w io.Writer, g *grid.Grid[float64], opts ...Option) error {
	p, err := HeatMap(g, opts...)
	if err != nil {
		return err
	}
	o := gatherOptions(opts...)

	wt, err := p.WriterTo(o.width, o.height, "png")
	if err != nil {
		return fmt.Errorf("gridplot: render: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("gridplot: write: %w", err)
	}

	return nil
}
