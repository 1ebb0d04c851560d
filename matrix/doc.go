// Package matrix implements a generic dense two-dimensional numeric container.
//
// The matrix package provides:
//
//   - Matrix[T], a row-major r×c buffer over any Scalar (integers, floats, complex).
//   - Validated constructors: New (zero-filled), FromNested (nested literal),
//     FromRows (any iter.Seq of rows), FromFlat and Identity.
//   - Bounds-checked At/Set returning *IndexError instead of panicking.
//   - Mul (conformance A.Cols == B.Rows, optional row-parallel kernel with
//     bit-identical results) and in-place Transpose.
//   - Copy (Clone, CopyFrom) and move (Move, MoveFrom) ownership semantics; a
//     moved-from matrix fails fast with ErrMovedFrom.
//   - Read-only row-major traversal (Do, All, RowsSeq) for renderers and codecs.
//
// Errors come in three typed kinds, each unwrapping to a sentinel:
// *DimensionError (ErrDimension), *IndexError (ErrIndex) and
// *ConformanceError (ErrConformance).
//
// See the examples in this package and the matrixio/render packages for usage patterns.
package matrix
