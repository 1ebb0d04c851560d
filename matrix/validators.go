// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep constructors and kernels minimal by delegating shape/nil/state checks here.
//   - Return plain sentinels or typed errors (no op tag) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; only the typed error on failure allocates.
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil → Live → Shape.

package matrix

import "math"

// Quantities named by DimensionError.What.
const (
	whatRows       = "rows"
	whatCols       = "cols"
	whatRowCount   = "row count"
	whatRowLength  = "row length"
	whatFlatLength = "flat length"

	whatElementCount = "element count"
)

// ValidateLive ensures m is non-nil and not in the moved-from state.
//
// Returns ErrNilMatrix or ErrMovedFrom; nil otherwise.
// Complexity: O(1).
func ValidateLive[T Scalar](m *Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.moved {
		return ErrMovedFrom
	}

	return nil
}

// ValidateShape ensures rows and cols are non-negative and rows*cols fits in an int,
// so a buffer of exactly rows*cols elements can be addressed.
// Returns *DimensionError tagged with op otherwise.
func ValidateShape(op string, rows, cols int) error {
	if rows < 0 {
		return &DimensionError{Op: op, What: whatRows, Row: -1, Got: rows}
	}
	if cols < 0 {
		return &DimensionError{Op: op, What: whatCols, Row: -1, Got: cols}
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return &DimensionError{Op: op, What: whatElementCount, Row: -1, Want: rows, Got: cols}
	}

	return nil
}

// ValidateNested checks a nested literal against the declared shape.
//
// Implementation:
//   - Stage 1: shape must be non-negative.
//   - Stage 2: len(values) must equal rows.
//   - Stage 3: every row must hold exactly cols elements; the first offender is reported.
//
// Returns *DimensionError naming the offending row, or nil.
// Complexity: O(rows).
func ValidateNested[T Scalar](op string, rows, cols int, values [][]T) error {
	if err := ValidateShape(op, rows, cols); err != nil {
		return err
	}
	if len(values) != rows {
		return &DimensionError{Op: op, What: whatRowCount, Row: -1, Want: rows, Got: len(values)}
	}
	for i := range values {
		if len(values[i]) != cols {
			return &DimensionError{Op: op, What: whatRowLength, Row: i, Want: cols, Got: len(values[i])}
		}
	}

	return nil
}

// ValidateSameShape checks both operands are live and share one shape.
//
// Errors: ErrNilMatrix, ErrMovedFrom, *DimensionError tagged with op (rows first, then cols).
// Complexity: O(1).
func ValidateSameShape[T Scalar](op string, a, b *Matrix[T]) error {
	if err := ValidateLive(a); err != nil {
		return err
	}
	if err := ValidateLive(b); err != nil {
		return err
	}
	if a.r != b.r {
		return &DimensionError{Op: op, What: whatRows, Row: -1, Want: a.r, Got: b.r}
	}
	if a.c != b.c {
		return &DimensionError{Op: op, What: whatCols, Row: -1, Want: a.c, Got: b.c}
	}

	return nil
}

// ValidateMulCompatible checks both operands are live and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrMovedFrom, *ConformanceError.
// Complexity: O(1).
func ValidateMulCompatible[T Scalar](a, b *Matrix[T]) error {
	if err := ValidateLive(a); err != nil {
		return err
	}
	if err := ValidateLive(b); err != nil {
		return err
	}
	if a.c != b.r {
		return &ConformanceError{LeftRows: a.r, LeftCols: a.c, RightRows: b.r, RightCols: b.c}
	}

	return nil
}
