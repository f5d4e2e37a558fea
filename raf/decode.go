package raf

import (
	"math"
	"unicode/utf8"
)

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Raf) ReadUint8() (uint8, error) {
	return r.ReadByte()
}

// ReadInt8 reads a signed 8-bit integer.
func (r *Raf) ReadInt8() (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

// ReadUint16 reads an unsigned 16-bit integer in the configured order.
func (r *Raf) ReadUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// ReadInt16 reads a signed 16-bit integer in the configured order.
func (r *Raf) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads an unsigned 32-bit integer in the configured order.
func (r *Raf) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// ReadInt32 reads a signed 32-bit integer in the configured order.
func (r *Raf) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads an unsigned 64-bit integer in the configured order.
func (r *Raf) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

// ReadInt64 reads a signed 64-bit integer in the configured order.
func (r *Raf) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads a 32-bit IEEE 754 floating-point number.
func (r *Raf) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads a 64-bit IEEE 754 floating-point number.
func (r *Raf) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadString reads a fixed-length string of n bytes and validates it as
// UTF-8. On ErrStrParse the cursor has already moved past the n bytes;
// string validation never rolls the position back.
func (r *Raf) ReadString(n int) (string, error) {
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrStrParse
	}
	return string(b), nil
}

// ReadCString reads bytes up to a 0x00 terminator and validates them as
// UTF-8. The terminator is consumed but not included in the result.
// Reaching the end of the buffer before a terminator returns
// ErrStartOutOfRange from the underlying byte read.
func (r *Raf) ReadCString() (string, error) {
	start := r.pos
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		if b != 0 {
			continue
		}
		s := r.data[start : r.pos-1]
		if !utf8.Valid(s) {
			return "", ErrStrParse
		}
		return string(s), nil
	}
}
