// Package linalg is a small, strict dense linear-algebra toolkit built around
// a generic, row-major Matrix container.
//
// What is in the box?
//
//	A dependency-light set of packages that brings together:
//		• A generic dense Matrix[T] over integer, float and complex scalars
//		• Shape-checked construction from nested literals, row sequences and flat slices
//		• Matrix multiplication (optionally row-parallel, bit-identical results)
//		• In-place and copying transpose
//		• Explicit copy and move semantics with a fail-fast moved-from state
//		• Memory-mapped persistence and PNG heatmap / text rendering
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/       the Matrix container, validators, Mul and Transpose
//	matrixio/     binary save/load of matrices through memory-mapped files
//	render/       aligned text output and gonum/plot heatmaps
//	cmd/matheat/  command-line heatmap renderer for stored matrices
//
// Quick example:
//
//	A = [1 2 3]   B = [ 7  8]   A×B = [ 58  64]
//	    [4 5 6]       [ 9 10]         [139 154]
//	                  [11 12]
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg
