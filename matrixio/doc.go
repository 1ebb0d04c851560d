// Package matrixio persists matrix.Matrix values through memory-mapped files.
//
// File layout (.lvmx), all header fields little-endian:
//
//	offset size field
//	0      4    magic "LVMX"
//	4      2    format version (1)
//	6      2    element kind (reflect.Kind of T)
//	8      4    element size in bytes
//	12     4    reserved (0)
//	16     8    rows
//	24     8    cols
//	32     ...  rows*cols elements, row-major, host memory layout
//
// Save maps the file read-write and copies the elements straight into the
// mapping; Load maps it read-only, validates the header and copies the
// elements into a freshly owned Matrix, so no mapping outlives the call.
// Element bytes use the host layout, so files are portable only between hosts
// of the same endianness.
package matrixio
