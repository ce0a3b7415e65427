package gridplot

import "gonum.org/v1/plot/vg"

// Defaults.
const (
	DefaultColors = 16
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// Option configures HeatMap and WritePNG.
type Option func(*options)

type options struct {
	title         string
	width, height vg.Length
	colors        int
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithSize sets the rendered image size. Panics if either side is not positive.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic("gridplot: WithSize requires positive dimensions")
	}

	return func(o *options) { o.width, o.height = width, height }
}

// WithColors sets the number of palette steps. Panics if n < 2.
func WithColors(n int) Option {
	if n < 2 {
		panic("gridplot: WithColors requires at least 2 colors")
	}

	return func(o *options) { o.colors = n }
}

func gatherOptions(user ...Option) options {
	o := options{width: DefaultWidth, height: DefaultHeight, colors: DefaultColors}
	for _, opt := range user {
		opt(&o)
	}

	return o
}
