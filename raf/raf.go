// Package raf provides random access over an in-memory byte buffer.
//
// A Raf owns a private copy of its source bytes, a cursor position, and
// a byte order fixed at construction. Higher-level container parsers
// (diagnostic database files, ECU dump headers) drive it by seeking to
// known offsets and decoding typed values sequentially.
//
// A Raf is not safe for concurrent use. Callers that need to decode the
// same bytes from multiple goroutines should Clone the reader and give
// each goroutine its own copy.
package raf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/klauspost/compress/zlib"
)

var (
	// ErrBufferOverflow is returned when a requested byte range extends
	// past the end of the buffer.
	ErrBufferOverflow = errors.New("raf: requested range exceeds buffer length")

	// ErrStartOutOfRange is returned when the cursor itself is outside
	// the buffer, or a relative advance would move it outside.
	ErrStartOutOfRange = errors.New("raf: read position out of range")

	// ErrStrParse is returned when bytes read for a string are not
	// valid UTF-8.
	ErrStrParse = errors.New("raf: invalid UTF-8 string data")

	// ErrNegativeSize is returned when a size parameter is negative.
	ErrNegativeSize = errors.New("raf: negative size")
)

// Raf is a random-access reader over an owned byte buffer. It tracks a
// cursor position and decodes multi-byte values using the byte order
// chosen at construction.
type Raf struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

// FromReader drains r to completion and returns a reader over the
// collected bytes. The cursor starts at 0. A failure from the
// underlying source is returned as-is.
func FromReader(r io.Reader, order binary.ByteOrder) (*Raf, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Raf{data: data, order: order}, nil
}

// FromBytes returns a reader over a private copy of b. The cursor
// starts at 0.
func FromBytes(b []byte, order binary.ByteOrder) *Raf {
	return &Raf{data: append([]byte(nil), b...), order: order}
}

// FromZlibReader decompresses a zlib stream to completion and returns a
// reader over the plain bytes. Diagnostic container files store their
// record blocks zlib-compressed; this constructor gives parsers random
// access to one inflated block.
func FromZlibReader(r io.Reader, order binary.ByteOrder) (*Raf, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return FromReader(zr, order)
}

// FromZlibBytes decompresses an in-memory zlib block and returns a
// reader over the plain bytes.
func FromZlibBytes(b []byte, order binary.ByteOrder) (*Raf, error) {
	return FromZlibReader(bytes.NewReader(b), order)
}

// Len returns the total number of bytes in the buffer.
func (r *Raf) Len() int {
	return len(r.data)
}

// Pos returns the current cursor position.
func (r *Raf) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes, or 0 if the cursor is
// past the end.
func (r *Raf) Remaining() int {
	if r.pos < 0 || r.pos >= len(r.data) {
		return 0
	}
	return len(r.data) - r.pos
}

// Order returns the byte order the reader decodes with.
func (r *Raf) Order() binary.ByteOrder {
	return r.order
}

// Reset moves the cursor back to the beginning of the buffer.
func (r *Raf) Reset() {
	r.pos = 0
}

// Clone returns an independent reader over a copy of the same bytes,
// preserving the cursor position and byte order.
func (r *Raf) Clone() *Raf {
	return &Raf{
		data:  append([]byte(nil), r.data...),
		pos:   r.pos,
		order: r.order,
	}
}

// Seek sets the cursor position unconditionally. Out-of-range positions
// are not validated here; the next read fails instead.
func (r *Raf) Seek(pos int) {
	r.pos = pos
}

// Advance moves the cursor by delta bytes, which may be negative. The
// resulting position must stay within the buffer; otherwise Advance
// returns ErrStartOutOfRange and leaves the cursor unchanged.
func (r *Raf) Advance(delta int) error {
	next := r.pos + delta
	if next < 0 || next > len(r.data) {
		return ErrStartOutOfRange
	}
	r.pos = next
	return nil
}

// take returns the next n bytes as a view into the buffer and advances
// the cursor. Every multi-byte read in the package goes through this
// single bounds check: the full range [pos, pos+n) must lie within the
// buffer.
func (r *Raf) take(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if r.pos < 0 || n > len(r.data)-r.pos {
		return nil, ErrBufferOverflow
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadBytes returns the next n bytes as a fresh copy and advances the
// cursor by n.
func (r *Raf) ReadBytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadByte returns the byte at the cursor and advances by one. It
// returns ErrStartOutOfRange when the cursor is already outside the
// buffer.
func (r *Raf) ReadByte() (byte, error) {
	if r.pos < 0 || r.pos >= len(r.data) {
		return 0, ErrStartOutOfRange
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// SeekRead seeks to pos and invokes read against the reader, returning
// whatever it decodes. The cursor afterwards reflects wherever the
// decode function left it.
//
//	val, err := raf.SeekRead(r, 2, (*raf.Raf).ReadInt32)
func SeekRead[T any](r *Raf, pos int, read func(*Raf) (T, error)) (T, error) {
	r.Seek(pos)
	return read(r)
}
