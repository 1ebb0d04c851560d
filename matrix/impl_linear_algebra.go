// SPDX-License-Identifier: MIT
// Package matrix provides the two algebra kernels of the package: matrix
// multiplication and transpose. Both operate directly on the flat row-major
// buffers and perform strict fail-fast validation before any work.
//
// Purpose:
//   - Mul: C = A × B with the standard conformance rule A.Cols == B.Rows.
//   - Transpose: in-place mᵀ through a rebuilt buffer; Transposed: copy variant.
//
// Determinism:
//   - Every result cell is reduced over k in increasing order starting from the
//     zero value of T, so float results are reproducible bit for bit regardless
//     of the worker count.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/internal/parallel"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opTransposed = "Transposed"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil, moved-from, A.Cols == B.Rows).
//   - Stage 2: ValidateShape on A.Rows × B.Cols, then allocate C zero-filled.
//   - Stage 3: for each row i (possibly in parallel row chunks), run k→j over
//     row-major strides: C[i,j] += A[i,k]*B[k,j], k ascending.
//
// Behavior highlights:
//   - Operands are only read; on error neither is touched and C is nil.
//   - No zero skipping: 0*Inf and 0*NaN propagate as IEEE-754 dictates.
//   - i→k→j yields the same per-cell summation order as i→j→k, so the result
//     equals the textbook accumulator loop exactly.
//
// Inputs:
//   - a: left matrix (m × n); b: right matrix (n × p).
//   - opts: WithWorkers / WithMinRowsPerWorker.
//
// Errors:
//   - *ConformanceError (errors.Is ErrConformance), ErrNilMatrix, ErrMovedFrom;
//     all wrapped with the "Mul" tag.
//   - *DimensionError tagged "Mul" when A.Rows*B.Cols does not fit in an int
//     (e.g. N×0 × 0×N with a huge N).
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p).
func Mul[T Scalar](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	aRows, aCols, bCols := a.r, a.c, b.c
	if err := ValidateShape(opMul, aRows, bCols); err != nil {
		return nil, err
	}
	res := &Matrix[T]{r: aRows, c: bCols, data: make([]T, aRows*bCols)}

	// kernel fills result rows [lo, hi); rows are disjoint across workers.
	kernel := func(lo, hi int) {
		var i, k, j int
		var rowA, rowB, rowR int
		var av T
		for i = lo; i < hi; i++ {
			rowA = i * aCols
			rowR = i * bCols
			for k = 0; k < aCols; k++ {
				av = a.data[rowA+k]
				rowB = k * bCols
				for j = 0; j < bCols; j++ {
					res.data[rowR+j] += av * b.data[rowB+j]
				}
			}
		}
	}

	parallel.ForRange(aRows, kernel, parallel.Config{
		Workers:      o.workers,
		MinChunkSize: o.minRowsPerWorker,
	})

	return res, nil
}

// Mul is the method form of Mul: m × other.
func (m *Matrix[T]) Mul(other *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return Mul(m, other, opts...)
}

// Transpose replaces m with mᵀ in place.
// Implementation:
//   - Stage 1: ValidateLive(m).
//   - Stage 2: allocate a buffer of r*c and write nb[j*r+i] = ob[i*c+j].
//   - Stage 3: swap r and c, install the new buffer, drop the old one.
//
// Behavior highlights:
//   - Total for every live matrix (0×N included). The only errors are the
//     fail-fast guards for nil and moved-from receivers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) transient (one extra buffer).
func (m *Matrix[T]) Transpose() error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	m.data = transposeData(m.data, m.r, m.c)
	m.r, m.c = m.c, m.r

	return nil
}

// Transposed returns mᵀ as a new matrix; m is not modified.
func Transposed[T Scalar](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf(opTransposed, err)
	}

	return &Matrix[T]{r: m.c, c: m.r, data: transposeData(m.data, m.r, m.c)}, nil
}

// transposeData maps src (rows×cols, row-major) to a fresh cols×rows buffer.
func transposeData[T Scalar](src []T, rows, cols int) []T {
	dst := make([]T, len(src))
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			dst[j*rows+i] = src[baseSrc+j]
		}
	}

	return dst
}
