// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels.
//
// Purpose:
//   - Add / Sub: same-shape element-wise sum and difference into a new matrix.
//   - Scale: multiply every element by a scalar.
//   - AllClose: tolerance comparison for floating-point results.
//
// All kernels walk the flat row-major buffers directly; operands are never modified.

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	opAdd      = "Add"
	opSub      = "Sub"
	opScale    = "Scale"
	opAllClose = "AllClose"
)

// shapeErrorf wraps state errors (nil, moved-from) with op; a *DimensionError
// already carries op and is returned as is.
func shapeErrorf(op string, err error) error {
	if _, ok := err.(*DimensionError); ok {
		return err
	}

	return matrixErrorf(op, err)
}

// Add returns a new matrix holding a + b element-wise.
// Stage 1 (Validate): ValidateSameShape.
// Stage 2 (Execute): one pass over the flat buffers.
// Complexity: O(r*c) time and memory.
func Add[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(opAdd, a, b); err != nil {
		return nil, shapeErrorf(opAdd, err)
	}
	res := &Matrix[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx := range res.data {
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Sub returns a new matrix holding a - b element-wise.
// Complexity: O(r*c) time and memory.
func Sub[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(opSub, a, b); err != nil {
		return nil, shapeErrorf(opSub, err)
	}
	res := &Matrix[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx := range res.data {
		res.data[idx] = a.data[idx] - b.data[idx]
	}

	return res, nil
}

// Scale returns a new matrix holding alpha*m.
func Scale[T Scalar](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds for every element.
//
// Policy:
//   - a and b must be live and have identical shapes.
//   - Negative tolerances are taken by absolute value; NaN or Inf tolerances yield ErrTolerance.
//   - A NaN element is never close to anything, NaN included.
//
// Complexity: O(r*c) time, O(1) space; stops at the first violation.
func AllClose[T constraints.Float](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(opAllClose, a, b); err != nil {
		return false, shapeErrorf(opAllClose, err)
	}

	var diff, bound float64
	for idx, av := range a.data {
		bv := float64(b.data[idx])
		diff = math.Abs(float64(av) - bv)
		bound = atol + rtol*math.Abs(bv)
		if !(diff <= bound) { // false for NaN as well
			return false, nil
		}
	}

	return true, nil
}
