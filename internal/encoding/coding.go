// Package encoding provides the fixed-width binary primitives shared by the
// record layouts in this module.
//
// All multi-byte integers are encoded in little-endian format.
package encoding

import "encoding/binary"

// EncodeFixed32 encodes a uint32 into a 4-byte little-endian buffer.
// REQUIRES: dst has at least 4 bytes.
func EncodeFixed32(dst []byte, value uint32) {
	binary.LittleEndian.PutUint32(dst, value)
}

// DecodeFixed32 decodes a uint32 from a 4-byte little-endian buffer.
// REQUIRES: src has at least 4 bytes.
func DecodeFixed32(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src)
}

// EncodeFixed64 encodes a uint64 into an 8-byte little-endian buffer.
// REQUIRES: dst has at least 8 bytes.
func EncodeFixed64(dst []byte, value uint64) {
	binary.LittleEndian.PutUint64(dst, value)
}

// DecodeFixed64 decodes a uint64 from an 8-byte little-endian buffer.
// REQUIRES: src has at least 8 bytes.
func DecodeFixed64(src []byte) uint64 {
	return binary.LittleEndian.Uint64(src)
}

// AppendFixed32 appends a little-endian uint32 to dst and returns the extended slice.
func AppendFixed32(dst []byte, value uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, value)
}

// AppendFixed64 appends a little-endian uint64 to dst and returns the extended slice.
func AppendFixed64(dst []byte, value uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, value)
}

// Reader reads sequential fixed-width fields from a byte slice. It tracks the
// current position and never reads past the end of the data.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.pos
}

// Skip advances the position by n bytes. Reports false if fewer than n bytes
// remain, in which case the position is unchanged.
func (r *Reader) Skip(n int) bool {
	if r.Remaining() < n {
		return false
	}
	r.pos += n
	return true
}

// GetFixed32 reads a little-endian uint32.
func (r *Reader) GetFixed32() (uint32, bool) {
	if r.Remaining() < 4 {
		return 0, false
	}
	v := DecodeFixed32(r.data[r.pos:])
	r.pos += 4
	return v, true
}

// GetFixed64 reads a little-endian uint64.
func (r *Reader) GetFixed64() (uint64, bool) {
	if r.Remaining() < 8 {
		return 0, false
	}
	v := DecodeFixed64(r.data[r.pos:])
	r.pos += 8
	return v, true
}
