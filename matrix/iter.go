// SPDX-License-Identifier: MIT

// Package matrix - read-only row-major traversal for display/export collaborators.
//
// Purpose:
//   - Give formatters, encoders and renderers access to dimensions and values
//     without exposing the owned buffer.
//
// Determinism:
//   - Fixed i→j order; a moved-from or nil matrix yields nothing.

package matrix

import "iter"

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Implementation:
//   - Stage 1: nested loops over rows then cols; compute base offset per row.
//   - Stage 2: call f on each element; stop when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	if ValidateLive(m) != nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// All returns a row-major sequence of (Index, value) pairs for range-over-func.
//
//	for idx, v := range m.All() { ... }
func (m *Matrix[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		m.Do(func(i, j int, v T) bool {
			return yield(Index{Row: i, Col: j}, v)
		})
	}
}

// RowsSeq yields copies of each row in order.
func (m *Matrix[T]) RowsSeq() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if ValidateLive(m) != nil {
			return
		}
		for i := 0; i < m.r; i++ {
			row := make([]T, m.c)
			copy(row, m.data[i*m.c:(i+1)*m.c])
			if !yield(row) {
				return
			}
		}
	}
}
