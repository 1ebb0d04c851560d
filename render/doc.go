// Package render displays matrices produced by package matrix.
//
// It consumes only the read-only row-major traversal (View), so it never
// touches a matrix's buffer:
//
//   - Text writes left-aligned columns for terminals and logs.
//   - Heatmap writes a PNG colour map through gonum.org/v1/plot, with row 0 at
//     the top and column 0 on the left.
package render
