// SPDX-License-Identifier: MIT
// Package matrix: error set (sentinels + typed details).
// This file defines the package-level sentinels and the three typed errors that
// carry the offending indices or dimensions. Every typed error unwraps to its
// sentinel, so callers match the KIND with errors.Is and read the DETAILS with
// errors.As. No exported operation panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operation tags are added by matrixErrorf at the
// facade, e.g. "Mul: matrix: not conformant: 2x3 * 2x2".
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver/argument -> moved-from state -> shape/index -> conformance.

var (
	// ErrDimension is returned when construction input disagrees with the
	// declared dimensions (row count, row length, flat length, negative dims).
	ErrDimension = errors.New("matrix: dimension mismatch")

	// ErrIndex indicates that a row or column index is outside [0,rows)×[0,cols).
	ErrIndex = errors.New("matrix: index out of range")

	// ErrConformance indicates that Mul was attempted with left.Cols != right.Rows.
	ErrConformance = errors.New("matrix: not conformant")

	// ErrMovedFrom signals use of a matrix whose buffer was transferred by Move/MoveFrom.
	ErrMovedFrom = errors.New("matrix: use of moved-from matrix")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrTolerance is returned by AllClose for NaN or infinite tolerances.
	ErrTolerance = errors.New("matrix: invalid tolerance")
)

// DimensionError describes malformed construction input.
// What names the violated quantity ("rows", "cols", "row count", "row length",
// "flat length", "element count"); Row is the offending supplied row for
// "row length" and -1 otherwise. Want/Got are the expected and observed values.
// For "element count" Want/Got hold the requested rows and cols whose product
// does not fit in an int.
type DimensionError struct {
	Op   string // constructor tag (opFromNested, opFromRows, ...)
	What string // violated quantity
	Row  int    // offending row, -1 when not row-specific
	Want int    // expected value
	Got  int    // supplied value
}

func (e *DimensionError) Error() string {
	switch {
	case e.What == whatElementCount:
		return fmt.Sprintf("%s: %v: %s of %dx%d overflows int", e.Op, ErrDimension, e.What, e.Want, e.Got)
	case e.Row >= 0:
		return fmt.Sprintf("%s: %v: row %d has %d elements, want %d", e.Op, ErrDimension, e.Row, e.Got, e.Want)
	case e.Got < 0:
		return fmt.Sprintf("%s: %v: negative %s %d", e.Op, ErrDimension, e.What, e.Got)
	default:
		return fmt.Sprintf("%s: %v: %s is %d, want %d", e.Op, ErrDimension, e.What, e.Got, e.Want)
	}
}

// Unwrap exposes ErrDimension to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimension }

// IndexError describes an out-of-bounds At/Set (or Row) access.
type IndexError struct {
	Op         string // accessor tag (ctxAt, ctxSet, ctxRow)
	Row, Col   int    // requested coordinates
	Rows, Cols int    // matrix shape at the time of the call
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("Matrix.%s(%d,%d): %v for %dx%d", e.Op, e.Row, e.Col, ErrIndex, e.Rows, e.Cols)
}

// Unwrap exposes ErrIndex to errors.Is.
func (e *IndexError) Unwrap() error { return ErrIndex }

// ConformanceError describes a Mul whose inner dimensions disagree.
type ConformanceError struct {
	LeftRows, LeftCols   int
	RightRows, RightCols int
}

func (e *ConformanceError) Error() string {
	return fmt.Sprintf("%v: %dx%d * %dx%d (left cols %d != right rows %d)",
		ErrConformance, e.LeftRows, e.LeftCols, e.RightRows, e.RightCols, e.LeftCols, e.RightRows)
}

// Unwrap exposes ErrConformance to errors.Is.
func (e *ConformanceError) Unwrap() error { return ErrConformance }
