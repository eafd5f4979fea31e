// Package endian decodes fixed-width primitives out of byte buffers at
// a given offset, for a caller-selected byte order.
//
// The wire format carries no byte-order marker, so the producer and the
// inspector must agree out of band. Both orders are provided as ready
// instances:
//
//	v := endian.Big.Int32(buf, 0)
package endian

import (
	"encoding/binary"
	"math"
)

// Decoder reads fixed-width integers, floats and UTF-16 code units from
// a byte buffer. The zero value is not usable; use Big, Little or New.
type Decoder struct {
	order binary.ByteOrder
}

// Big decodes big-endian (network order) streams.
var Big = Decoder{order: binary.BigEndian}

// Little decodes little-endian streams.
var Little = Decoder{order: binary.LittleEndian}

// New creates a Decoder for the given byte order.
func New(order binary.ByteOrder) Decoder {
	return Decoder{order: order}
}

// Order returns the underlying byte order.
func (d Decoder) Order() binary.ByteOrder {
	return d.order
}

// Uint16 decodes an unsigned 16-bit integer at off.
func (d Decoder) Uint16(buf []byte, off int) uint16 {
	return d.order.Uint16(buf[off : off+2])
}

// Uint32 decodes an unsigned 32-bit integer at off.
func (d Decoder) Uint32(buf []byte, off int) uint32 {
	return d.order.Uint32(buf[off : off+4])
}

// Uint64 decodes an unsigned 64-bit integer at off.
func (d Decoder) Uint64(buf []byte, off int) uint64 {
	return d.order.Uint64(buf[off : off+8])
}

// Int16 decodes a signed 16-bit integer at off.
func (d Decoder) Int16(buf []byte, off int) int16 {
	return int16(d.order.Uint16(buf[off : off+2]))
}

// Int32 decodes a signed 32-bit integer at off.
func (d Decoder) Int32(buf []byte, off int) int32 {
	return int32(d.order.Uint32(buf[off : off+4]))
}

// Int64 decodes a signed 64-bit integer at off.
func (d Decoder) Int64(buf []byte, off int) int64 {
	return int64(d.order.Uint64(buf[off : off+8]))
}

// Float32 decodes an IEEE 754 single-precision float at off.
func (d Decoder) Float32(buf []byte, off int) float32 {
	return math.Float32frombits(d.order.Uint32(buf[off : off+4]))
}

// Float64 decodes an IEEE 754 double-precision float at off.
func (d Decoder) Float64(buf []byte, off int) float64 {
	return math.Float64frombits(d.order.Uint64(buf[off : off+8]))
}

// Char16 decodes a 16-bit character (UTF-16 code unit) at off.
func (d Decoder) Char16(buf []byte, off int) rune {
	return rune(d.order.Uint16(buf[off : off+2]))
}
