// SPDX-License-Identifier: MIT

package matrixio

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"reflect"
	"unsafe"

	"github.com/katalvlaran/linalg/matrix"
)

// Format constants.
const (
	Magic      = "LVMX"
	Version    = 1
	HeaderSize = 32 // keeps element data 16-byte aligned inside a page-aligned mapping
)

// Header describes a stored matrix.
type Header struct {
	Version  uint16
	Kind     reflect.Kind // element kind (Int32, Float64, Complex128, ...)
	ItemSize int          // bytes per element
	Rows     int
	Cols     int
}

// DataSize is the byte length of the element section.
func (h Header) DataSize() int64 { return int64(h.Rows) * int64(h.Cols) * int64(h.ItemSize) }

// FileSize is the exact expected file length.
func (h Header) FileSize() int64 { return HeaderSize + h.DataSize() }

func (h Header) String() string {
	return fmt.Sprintf("%s v%d %dx%d %s", Magic, h.Version, h.Rows, h.Cols, h.Kind)
}

// headerFor builds the header for a rows×cols matrix of T.
func headerFor[T matrix.Scalar](rows, cols int) Header {
	var zero T
	return Header{
		Version:  Version,
		Kind:     reflect.TypeFor[T]().Kind(),
		ItemSize: int(unsafe.Sizeof(zero)),
		Rows:     rows,
		Cols:     cols,
	}
}

// encodeHeader writes h into b[:HeaderSize].
func encodeHeader(b []byte, h Header) {
	copy(b[0:4], Magic)
	binary.LittleEndian.PutUint16(b[4:6], h.Version)
	binary.LittleEndian.PutUint16(b[6:8], uint16(h.Kind))
	binary.LittleEndian.PutUint32(b[8:12], uint32(h.ItemSize))
	binary.LittleEndian.PutUint32(b[12:16], 0)
	binary.LittleEndian.PutUint64(b[16:24], uint64(h.Rows))
	binary.LittleEndian.PutUint64(b[24:32], uint64(h.Cols))
}

// decodeHeader parses and sanity-checks b[:HeaderSize].
//
// Errors: ErrCorrupt (short input, shape overflow), ErrInvalidMagic, ErrUnsupportedVersion.
func decodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d header bytes, want %d", ErrCorrupt, len(b), HeaderSize)
	}
	if string(b[0:4]) != Magic {
		return Header{}, ErrInvalidMagic
	}
	version := binary.LittleEndian.Uint16(b[4:6])
	if version != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	kind := reflect.Kind(binary.LittleEndian.Uint16(b[6:8]))
	item := uint64(binary.LittleEndian.Uint32(b[8:12]))
	rows := binary.LittleEndian.Uint64(b[16:24])
	cols := binary.LittleEndian.Uint64(b[24:32])

	// rows*cols*item + HeaderSize must fit in int64.
	hi, n := bits.Mul64(rows, cols)
	if hi != 0 {
		return Header{}, fmt.Errorf("%w: shape %dx%d overflows", ErrCorrupt, rows, cols)
	}
	hi, size := bits.Mul64(n, item)
	if hi != 0 || size > math.MaxInt64-HeaderSize || rows > math.MaxInt || cols > math.MaxInt {
		return Header{}, fmt.Errorf("%w: shape %dx%d overflows", ErrCorrupt, rows, cols)
	}

	return Header{
		Version:  version,
		Kind:     kind,
		ItemSize: int(item),
		Rows:     int(rows),
		Cols:     int(cols),
	}, nil
}
