// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/linalg/matrix"
)

const (
	opSave = "Save"
	opLoad = "Load"
	opStat = "Stat"
)

// Save writes m to path, creating or truncating the file.
// Implementation:
//   - Stage 1: validate m is live; resolve options.
//   - Stage 2: create the file and size it to HeaderSize + rows*cols*sizeof(T).
//   - Stage 3: map it read-write, encode the header, copy the elements, flush.
//
// The file is closed and unmapped on every path; the first error wins.
func Save[T matrix.Scalar](path string, m *matrix.Matrix[T], opts ...Option) (err error) {
	if err = matrix.ValidateLive(m); err != nil {
		return ioErrorf(opSave, path, err)
	}
	o := gatherOptions(opts...)
	h := headerFor[T](m.Rows(), m.Cols())

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, o.perm)
	if err != nil {
		return ioErrorf(opSave, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErrorf(opSave, path, cerr)
		}
	}()

	if err = f.Truncate(h.FileSize()); err != nil {
		return ioErrorf(opSave, path, err)
	}
	region, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return ioErrorf(opSave, path, err)
	}
	defer func() {
		if uerr := region.Unmap(); uerr != nil && err == nil {
			err = ioErrorf(opSave, path, uerr)
		}
	}()

	encodeHeader(region[:HeaderSize], h)
	if n := h.Rows * h.Cols; n > 0 {
		if _, err = m.CopyTo(elements[T](region, n)); err != nil {
			return ioErrorf(opSave, path, err)
		}
	}
	if err = region.Flush(); err != nil {
		return ioErrorf(opSave, path, err)
	}

	return nil
}

// Load reads a matrix of T from path.
// Implementation:
//   - Stage 1: open and map the file read-only.
//   - Stage 2: decode the header; check kind, element size and exact file size.
//   - Stage 3: copy the elements into a new Matrix (matrix.FromFlat) and unmap.
//
// Errors:
//   - ErrInvalidMagic, ErrUnsupportedVersion, ErrKindMismatch, ErrCorrupt, os errors.
func Load[T matrix.Scalar](path string) (m *matrix.Matrix[T], err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opLoad, path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, ioErrorf(opLoad, path, err)
	}
	if st.Size() < HeaderSize {
		return nil, ioErrorf(opLoad, path, fmt.Errorf("%w: file is %d bytes", ErrCorrupt, st.Size()))
	}

	region, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, ioErrorf(opLoad, path, err)
	}
	defer func() {
		if uerr := region.Unmap(); uerr != nil && err == nil {
			m, err = nil, ioErrorf(opLoad, path, uerr)
		}
	}()

	h, err := decodeHeader(region)
	if err != nil {
		return nil, ioErrorf(opLoad, path, err)
	}
	want := headerFor[T](h.Rows, h.Cols)
	if h.Kind != want.Kind || h.ItemSize != want.ItemSize {
		return nil, ioErrorf(opLoad, path, fmt.Errorf("%w: file holds %s (%d bytes), want %s (%d bytes)",
			ErrKindMismatch, h.Kind, h.ItemSize, want.Kind, want.ItemSize))
	}
	if int64(len(region)) != h.FileSize() {
		return nil, ioErrorf(opLoad, path, fmt.Errorf("%w: file is %d bytes, header implies %d",
			ErrCorrupt, len(region), h.FileSize()))
	}

	var src []T
	if n := h.Rows * h.Cols; n > 0 {
		src = elements[T](region, n)
	}
	m, err = matrix.FromFlat(h.Rows, h.Cols, src) // copies out of the mapping
	if err != nil {
		return nil, ioErrorf(opLoad, path, err)
	}

	return m, nil
}

// Stat reads only the header of path.
func Stat(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, ioErrorf(opStat, path, err)
	}
	defer f.Close()

	b := make([]byte, HeaderSize)
	if _, err = io.ReadFull(f, b); err != nil {
		return Header{}, ioErrorf(opStat, path, fmt.Errorf("%w: %v", ErrCorrupt, err))
	}
	h, err := decodeHeader(b)
	if err != nil {
		return Header{}, ioErrorf(opStat, path, err)
	}

	return h, nil
}

// elements views the n elements after the header as []T.
// The mapping is page aligned and HeaderSize keeps the data aligned for every Scalar.
func elements[T matrix.Scalar](region mmap.MMap, n int) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&region[HeaderSize])), n)
}
