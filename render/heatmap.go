// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Heatmap defaults.
const (
	DefaultWidth       = 4 * vg.Inch
	DefaultHeight      = 4 * vg.Inch
	DefaultPaletteSize = 64
	defaultFormat      = "png"
)

// ErrNoFiniteValues is returned by Heatmap when every cell is NaN or infinite,
// leaving no colour range to map onto.
var ErrNoFiniteValues = errors.New("render: no finite values")

const panicPaletteInvalid = "render: WithPaletteSize: n must be >= 2"

// Option configures Heatmap.
type Option func(*options)

type options struct {
	width, height vg.Length
	title         string
	paletteSize   int
}

// WithSize sets the image width and height.
func WithSize(width, height vg.Length) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithPaletteSize sets the number of colours in the heat palette. Panics when n < 2.
func WithPaletteSize(n int) Option {
	if n < 2 {
		panic(panicPaletteInvalid)
	}

	return func(o *options) { o.paletteSize = n }
}

func gatherOptions(user ...Option) options {
	o := options{width: DefaultWidth, height: DefaultHeight, paletteSize: DefaultPaletteSize}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// grid adapts a row-major snapshot to plotter.GridXYZ.
// Plot rows grow upwards, so plot row r shows matrix row rows-1-r.
// min and max span the finite cells only; finite is false when there are none.
type grid struct {
	rows, cols int
	z          []float64 // row-major copy of the matrix
	min, max   float64
	finite     bool
}

var _ plotter.GridXYZ = grid{}

// newGrid snapshots m into float64 cells.
func newGrid[T matrix.Real](m View[T]) grid {
	g := grid{rows: m.Rows(), cols: m.Cols()}
	g.z = make([]float64, 0, g.rows*g.cols)
	g.min, g.max = math.Inf(1), math.Inf(-1)
	m.Do(func(_, _ int, v T) bool {
		f := float64(v)
		g.z = append(g.z, f)
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			g.min, g.max = min(g.min, f), max(g.max, f)
			g.finite = true
		}
		return true
	})

	return g
}

func (g grid) Dims() (c, r int)   { return g.cols, g.rows }
func (g grid) Z(c, r int) float64 { return g.z[(g.rows-1-r)*g.cols+c] }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }

// Heatmap renders m as a PNG colour map into w.
// Implementation:
//   - Stage 1: reject zero-area input with ErrEmpty.
//   - Stage 2: snapshot values into a GridXYZ; reject grids without a finite cell.
//   - Stage 3: colour over the finite [min,max], widened when degenerate.
//     -Inf and +Inf cells take the first and last palette colour; NaN cells stay blank.
//   - Stage 4: draw and encode through plot.WriterTo.
func Heatmap[T matrix.Real](w io.Writer, m View[T], opts ...Option) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return fmt.Errorf("render.Heatmap: %w", ErrEmpty)
	}
	o := gatherOptions(opts...)

	g := newGrid(m)
	if !g.finite {
		return fmt.Errorf("render.Heatmap: %w", ErrNoFiniteValues)
	}
	pal := palette.Heat(o.paletteSize, 1)
	colors := pal.Colors()

	hm := plotter.NewHeatMap(g, pal)
	hm.Min, hm.Max = g.min, g.max
	if hm.Max == hm.Min {
		hm.Max = hm.Min + 1
	}
	hm.Underflow, hm.Overflow = colors[0], colors[len(colors)-1]

	p := plot.New()
	p.Title.Text = o.title
	p.HideAxes()
	p.Add(hm)

	wt, err := p.WriterTo(o.width, o.height, defaultFormat)
	if err != nil {
		return fmt.Errorf("render.Heatmap: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("render.Heatmap: %w", err)
	}

	return nil
}
