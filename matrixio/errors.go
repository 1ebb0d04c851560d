// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
)

// Sentinel errors; match with errors.Is.
var (
	// ErrInvalidMagic is returned when the file does not start with Magic.
	ErrInvalidMagic = errors.New("matrixio: invalid magic bytes")

	// ErrUnsupportedVersion is returned for a format version other than Version.
	ErrUnsupportedVersion = errors.New("matrixio: unsupported format version")

	// ErrKindMismatch is returned when the stored element kind/size differs from T.
	ErrKindMismatch = errors.New("matrixio: element kind mismatch")

	// ErrCorrupt is returned when header and file size disagree or the shape overflows.
	ErrCorrupt = errors.New("matrixio: corrupt file")
)

// ioErrorf wraps err with the operation and path, preserving it for errors.Is/As.
func ioErrorf(op, path string, err error) error {
	return fmt.Errorf("matrixio.%s(%q): %w", op, path, err)
}
