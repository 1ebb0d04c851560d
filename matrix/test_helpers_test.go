// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for constructors/kernels.
//   - Keep random data seeded so failures reproduce.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// mustNested builds a matrix from a nested literal or fails the test.
// The shape is taken from the literal (rows = len(vals), cols = len(vals[0])).
func mustNested[T matrix.Scalar](tb testing.TB, vals [][]T) *matrix.Matrix[T] {
	tb.Helper()
	cols := 0
	if len(vals) > 0 {
		cols = len(vals[0])
	}
	m, err := matrix.FromNested(len(vals), cols, vals)
	require.NoError(tb, err)

	return m
}

// mustNew allocates an r×c zero matrix or fails the test.
func mustNew[T matrix.Scalar](tb testing.TB, r, c int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](r, c)
	require.NoError(tb, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt[T matrix.Scalar](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// toNested exports m as [][]T via the public traversal.
func toNested[T matrix.Scalar](m *matrix.Matrix[T]) [][]T {
	out := make([][]T, 0, m.Rows())
	for row := range m.RowsSeq() {
		out = append(out, row)
	}

	return out
}

// randFloat fills an r×c matrix with seeded values in [-1, 1).
func randFloat(tb testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	flat := make([]float64, r*c)
	for i := range flat {
		flat[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.FromFlat(r, c, flat)
	require.NoError(tb, err)

	return m
}

// randInt fills an r×c matrix with seeded integers in [-9, 9].
func randInt(tb testing.TB, r, c int, seed int64) *matrix.Matrix[int64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	flat := make([]int64, r*c)
	for i := range flat {
		flat[i] = rng.Int63n(19) - 9
	}
	m, err := matrix.FromFlat(r, c, flat)
	require.NoError(tb, err)

	return m
}
