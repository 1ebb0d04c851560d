// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for ownership checks.
//
// Purpose:
//   - Expose the backing buffer to matrix_test ONLY, so tests can prove that
//     Clone never aliases and Move transfers (not duplicates) storage.
//   - Compiled only with `go test` (file suffix _test.go), invisible in production builds.

// BufferOf_TestOnly returns m's backing slice without copying.
func BufferOf_TestOnly[T Scalar](m *Matrix[T]) []T { return m.data }

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicWorkersInvalid_TestOnly = panicWorkersInvalid
	PanicMinRowsInvalid_TestOnly = panicMinRowsInvalid
)
