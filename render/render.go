// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/linalg/matrix"
)

// ErrEmpty is returned when a zero-area matrix is given to Heatmap.
var ErrEmpty = errors.New("render: empty matrix")

// View is the read-only surface render needs; *matrix.Matrix[T] implements it.
type View[T matrix.Scalar] interface {
	Rows() int
	Cols() int
	Do(f func(i, j int, v T) bool)
}

// Text writes m as left-aligned columns, one line per row, values formatted with %v.
// Columns are separated by at least one space; the last column is not padded.
func Text[T matrix.Scalar](w io.Writer, m View[T]) error {
	cols := m.Cols()
	if m.Rows() == 0 || cols == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	var werr error
	m.Do(func(_, j int, v T) bool {
		sep := "\t"
		if j == cols-1 {
			sep = "\n"
		}
		if _, werr = fmt.Fprintf(tw, "%v%s", v, sep); werr != nil {
			return false
		}
		return true
	})
	if werr != nil {
		return fmt.Errorf("render.Text: %w", werr)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render.Text: %w", err)
	}

	return nil
}
