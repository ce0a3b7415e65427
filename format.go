// SPDX-License-Identifier: MIT

// Package grid - diagnostic rendering.
//
// Layout:
//
//	3x2
//	 1,20, 3
//	 4, 5,60
//
// A "{width}x{height}" header, then one line per row. Every cell is padded
// on the left to the display width of the widest cell in the whole grid.
// This is for humans reading test failures and logs; it is not a
// serialization format and is never parsed back.

package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Rendering defaults.
const (
	// DefaultSeparator is placed between adjacent cells of a row.
	DefaultSeparator = ","
)

// FormatOption configures Render.
type FormatOption func(*formatOptions)

type formatOptions struct {
	sep  string
	cell func(any) string
}

// WithSeparator sets the string placed between adjacent cells.
func WithSeparator(sep string) FormatOption {
	return func(o *formatOptions) { o.sep = sep }
}

// WithCellFormatter sets how a single value is turned into text.
// The default is fmt.Sprint. Panics if f is nil.
func WithCellFormatter(f func(v any) string) FormatOption {
	if f == nil {
		panic("grid: WithCellFormatter(nil)")
	}

	return func(o *formatOptions) { o.cell = f }
}

func gatherFormatOptions(user ...FormatOption) formatOptions {
	o := formatOptions{sep: DefaultSeparator, cell: func(v any) string { return fmt.Sprint(v) }}
	for _, opt := range user {
		opt(&o)
	}

	return o
}

// String renders g with the default options. See Render.
func (g *Grid[T]) String() string {
	return g.Render()
}

// Render returns the aligned text block described in the file header.
// A 0x0 grid renders as its header alone.
//
// Complexity: O(w*h) conversions plus output size.
func (g *Grid[T]) Render(opts ...FormatOption) string {
	o := gatherFormatOptions(opts...)
	cells := Map(g, func(v T) string { return o.cell(v) })
	widest := 0
	for _, s := range cells.raw {
		widest = max(widest, runewidth.StringWidth(s))
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(g.dim.X))
	b.WriteByte('x')
	b.WriteString(strconv.Itoa(g.dim.Y))
	for _, row := range cells.Rows() {
		b.WriteByte('\n')
		for x, s := range row {
			if x > 0 {
				b.WriteString(o.sep)
			}
			b.WriteString(runewidth.FillLeft(s, widest))
		}
	}

	return b.String()
}
