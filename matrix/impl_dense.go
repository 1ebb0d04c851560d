// SPDX-License-Identifier: MIT

// Package matrix - row-major storage, validated constructors & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Validate nested/collection input BEFORE a Matrix escapes to the caller.
//   - Model copy vs. move ownership with an explicit moved-from flag.
//
// Complexity quicksheet:
//   - New/FromNested/FromRows/FromFlat: O(r*c); At/Set: O(1); Clone/CopyFrom: O(r*c);
//     Move/MoveFrom: O(1).

package matrix

import (
	"fmt"
	"iter"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxCopyTo   = "CopyTo"   // method tag used in error wrappers
	ctxClone    = "Clone"    // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom" // method tag used in error wrappers
	ctxMove     = "Move"     // method tag used in error wrappers
	ctxMoveFrom = "MoveFrom" // method tag used in error wrappers

	opNew        = "New"
	opFromNested = "FromNested"
	opFromRows   = "FromRows"
	opFromFlat   = "FromFlat"
	opIdentity   = "Identity"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtMoved    = "Matrix(moved)"
)

// denseErrorf wraps a state error (nil/moved) with method context and indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// stateErrorf wraps a state error for methods without coordinates.
func stateErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates an rows×cols matrix holding the zero value of T.
// MAIN DESCRIPTION:
//   - Dimensions-only constructor. Contents are unspecified by contract; in Go
//     the buffer is zero-filled by make.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else *DimensionError.
//   - Stage 2: allocate a contiguous flat buffer of rows*cols elements.
//
// Behavior highlights:
//   - 0×N, N×0 and 0×0 shapes are legal (empty buffer).
//   - Fails only on negative dimensions; exhausting memory panics in the runtime.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Scalar](rows, cols int) (*Matrix[T], error) {
	if err := ValidateShape(opNew, rows, cols); err != nil {
		return nil, err
	}

	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromNested builds a rows×cols matrix from a nested literal.
// MAIN DESCRIPTION:
//   - Strict validate-then-populate: len(values) must equal rows and every row
//     must hold exactly cols elements.
//
// Implementation:
//   - Stage 1: ValidateNested (shape, row count, per-row length).
//   - Stage 2: allocate and copy row i into buf[i*cols : (i+1)*cols].
//
// Behavior highlights:
//   - On failure nothing is allocated and (nil, *DimensionError) is returned.
//   - values is copied; later mutation of values does not affect the matrix.
//
// Errors:
//   - *DimensionError (errors.Is ErrDimension) naming the offending row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromNested[T Scalar](rows, cols int, values [][]T) (*Matrix[T], error) {
	if err := ValidateNested(opFromNested, rows, cols, values); err != nil {
		return nil, err
	}
	buf := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		copy(buf[i*cols:(i+1)*cols], values[i]) // row-major placement
	}

	return &Matrix[T]{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a rows×cols matrix from any sequence of rows.
// MAIN DESCRIPTION:
//   - Collection constructor: src yields rows in order (slices.Values, a channel
//     adapter, a decoder...). Validation is interleaved with assignment.
//
// Implementation:
//   - Stage 1: validate the declared shape.
//   - Stage 2: consume src; stop at the first row that is surplus or has the wrong length.
//   - Stage 3: verify exactly rows rows were supplied.
//
// Behavior highlights:
//   - The partially filled buffer is dropped on failure; no Matrix escapes.
//   - A surplus row is reported as row count rows+1 (src is not drained further).
//   - A nil src is an empty sequence.
//
// Errors:
//   - *DimensionError (errors.Is ErrDimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Scalar](rows, cols int, src iter.Seq[[]T]) (*Matrix[T], error) {
	if err := ValidateShape(opFromRows, rows, cols); err != nil {
		return nil, err
	}
	buf := make([]T, rows*cols)
	n := 0 // rows consumed so far
	var bad error
	if src != nil {
		for row := range src {
			if n == rows {
				bad = &DimensionError{Op: opFromRows, What: whatRowCount, Row: -1, Want: rows, Got: n + 1}
				break
			}
			if len(row) != cols {
				bad = &DimensionError{Op: opFromRows, What: whatRowLength, Row: n, Want: cols, Got: len(row)}
				break
			}
			copy(buf[n*cols:(n+1)*cols], row)
			n++
		}
	}
	if bad != nil {
		return nil, bad
	}
	if n != rows {
		return nil, &DimensionError{Op: opFromRows, What: whatRowCount, Row: -1, Want: rows, Got: n}
	}

	return &Matrix[T]{r: rows, c: cols, data: buf}, nil
}

// FromFlat copies a row-major slice into a new rows×cols matrix.
// len(data) must equal rows*cols; otherwise *DimensionError.
// Complexity: O(r*c).
func FromFlat[T Scalar](rows, cols int, data []T) (*Matrix[T], error) {
	if err := ValidateShape(opFromFlat, rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, &DimensionError{Op: opFromFlat, What: whatFlatLength, Row: -1, Want: rows * cols, Got: len(data)}
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Matrix[T]{r: rows, c: cols, data: buf}, nil
}

// Identity returns the n×n identity matrix (ones on the diagonal).
func Identity[T Scalar](n int) (*Matrix[T], error) {
	if err := ValidateShape(opIdentity, n, n); err != nil {
		return nil, err
	}
	m := &Matrix[T]{r: n, c: n, data: make([]T, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = T(1)
	}

	return m, nil
}

// Rows returns the row count. A nil or moved-from matrix reports 0.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count. A nil or moved-from matrix reports 0.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Moved reports whether ownership of the buffer was transferred away.
func (m *Matrix[T]) Moved() bool { return m != nil && m.moved }

// indexOf computes the row-major offset or returns *IndexError.
// MAIN DESCRIPTION:
//   - Single source of truth for (i,j) → i*c + j used by every accessor.
//
// Implementation:
//   - Stage 1: validate receiver state (nil, moved-from).
//   - Stage 2: validate 0 ≤ row < r and 0 ≤ col < c.
//   - Stage 3: compute row*c + col.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	if err := ValidateLive(m); err != nil {
		return 0, denseErrorf(method, row, col, err)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, &IndexError{Op: method, Row: row, Col: col, Rows: m.r, Cols: m.c}
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns *IndexError (errors.Is ErrIndex).
//   - Any shape, 0×0 included, rejects every out-of-range pair.
//
// Errors:
//   - *IndexError, ErrMovedFrom, ErrNilMatrix.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// The type of v is fixed by T at compile time; only bounds and state are checked.
//
// Errors:
//   - *IndexError, ErrMovedFrom, ErrNilMatrix.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if err := ValidateLive(m); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	if i < 0 || i >= m.r {
		return nil, &IndexError{Op: ctxRow, Row: i, Col: 0, Rows: m.r, Cols: m.c}
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// CopyTo copies the row-major buffer into dst and returns the element count.
// dst must hold at least Rows()*Cols() elements; the matrix keeps sole
// ownership of its own storage.
//
// Errors:
//   - *DimensionError when dst is too short, ErrMovedFrom, ErrNilMatrix.
func (m *Matrix[T]) CopyTo(dst []T) (int, error) {
	if err := ValidateLive(m); err != nil {
		return 0, stateErrorf(ctxCopyTo, err)
	}
	if len(dst) < len(m.data) {
		return 0, &DimensionError{Op: ctxCopyTo, What: whatFlatLength, Row: -1, Want: len(m.data), Got: len(dst)}
	}

	return copy(dst, m.data), nil
}

// Clone returns a deep copy (copy-construction).
// MAIN DESCRIPTION:
//   - Produce an independent matrix with identical shape and values.
//
// Behavior highlights:
//   - Independence: mutations of either side never reach the other.
//
// Errors:
//   - ErrMovedFrom, ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Clone() (*Matrix[T], error) {
	if err := ValidateLive(m); err != nil {
		return nil, stateErrorf(ctxClone, err)
	}
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Matrix[T]{r: m.r, c: m.c, data: cp}, nil
}

// CopyFrom makes m a deep copy of src (copy-assignment).
// MAIN DESCRIPTION:
//   - Replace m's shape and contents with src's; m may be moved-from and
//     becomes live again.
//
// Implementation:
//   - Stage 1: validate m non-nil and src live.
//   - Stage 2: self-assignment is a no-op.
//   - Stage 3: reuse m's buffer when its capacity suffices (m owns it), else allocate.
//
// Errors:
//   - ErrNilMatrix, ErrMovedFrom (src).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) at most.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) error {
	if m == nil {
		return stateErrorf(ctxCopyFrom, ErrNilMatrix)
	}
	if err := ValidateLive(src); err != nil {
		return stateErrorf(ctxCopyFrom, err)
	}
	if m == src {
		return nil
	}
	n := len(src.data)
	if cap(m.data) >= n {
		m.data = m.data[:n]
	} else {
		m.data = make([]T, n)
	}
	copy(m.data, src.data)
	m.r, m.c, m.moved = src.r, src.c, false

	return nil
}

// Move transfers the buffer and dimensions to a new value (move-construction).
// MAIN DESCRIPTION:
//   - O(1) ownership transfer; no element is copied.
//
// Behavior highlights:
//   - The receiver becomes moved-from: 0×0, nil buffer, Moved()==true. Every
//     accessor on it fails with ErrMovedFrom until CopyFrom/MoveFrom reassigns it.
//   - The returned matrix and the receiver never reference the same buffer.
//
// Errors:
//   - ErrMovedFrom, ErrNilMatrix.
func (m *Matrix[T]) Move() (*Matrix[T], error) {
	if err := ValidateLive(m); err != nil {
		return nil, stateErrorf(ctxMove, err)
	}
	dst := &Matrix[T]{r: m.r, c: m.c, data: m.data}
	m.release()

	return dst, nil
}

// MoveFrom makes m take over src's buffer (move-assignment).
// m's previous buffer is dropped; src becomes moved-from. Self-move is a no-op.
// On error m is left untouched.
//
// Errors:
//   - ErrNilMatrix, ErrMovedFrom (src).
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) error {
	if m == nil {
		return stateErrorf(ctxMoveFrom, ErrNilMatrix)
	}
	if err := ValidateLive(src); err != nil {
		return stateErrorf(ctxMoveFrom, err)
	}
	if m == src {
		return nil
	}
	m.r, m.c, m.data, m.moved = src.r, src.c, src.data, false
	src.release()

	return nil
}

// release puts m into the moved-from state.
func (m *Matrix[T]) release() {
	m.r, m.c = 0, 0
	m.data = nil
	m.moved = true
}

// Equal reports whether a and b are live, have the same shape and equal elements.
// Floating NaN never equals itself, so a matrix holding NaN is not Equal to itself.
func Equal[T Scalar](a, b *Matrix[T]) bool {
	if ValidateLive(a) != nil || ValidateLive(b) != nil {
		return false
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values (%v) into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs, tests and debugging.
//   - A moved-from matrix renders as "Matrix(moved)"; nil renders as "".
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Matrix[T]) String() string {
	if m == nil {
		return ""
	}
	if m.moved {
		return _fmtMoved
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
