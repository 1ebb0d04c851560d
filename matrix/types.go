// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the type-level vocabulary of the package: scalar
// constraints, the traversal index and the Matrix struct itself. Behavior
// lives in impl_dense.go (storage/accessors/ownership), impl_linear_algebra.go
// (Mul/Transpose) and iter.go (traversal).
package matrix

import "golang.org/x/exp/constraints"

// Scalar is the set of element types a Matrix may hold.
// Every Scalar supports +, * and has a zero value that is the additive identity.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real is the ordered subset of Scalar (no complex types).
// Collaborators that need a float64 projection (heatmaps) constrain on Real.
type Real interface {
	constraints.Integer | constraints.Float
}

// Index addresses one cell in row-major traversal.
type Index struct {
	Row int // zero-based row
	Col int // zero-based column
}

// Matrix is a dense, row-major r×c container of T.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c; element (i,j) is data[i*c+j].
//   - moved marks the moved-from state after Move/MoveFrom transferred the buffer.
//
// A Matrix exclusively owns its buffer: no two live matrices share storage.
// The zero value is a live 0×0 matrix; construct sized matrices with New,
// FromNested, FromRows, FromFlat or Identity.
type Matrix[T Scalar] struct {
	r, c  int  // row and column counts
	data  []T  // contiguous row-major storage (len == r*c)
	moved bool // true once ownership was transferred away
}
