package storage

import (
	"time"

	"github.com/coralkv/coralkv/internal/encoding"
)

// InternalValue is the encode-side envelope shared by every record kind: the
// opaque payload plus the bookkeeping fields every layout serializes around
// it. A command handler constructs one, fills in the fields it cares about,
// and a concrete record type serializes it.
//
// Encode methods are pure: they never mutate the value and may be called
// repeatedly.
type InternalValue struct {
	// DataType selects the record layout the value serializes into.
	DataType DataType

	// UserValue is the opaque payload.
	UserValue []byte

	// Reserve is the fixed-width extension region, zero-filled today.
	Reserve [SuffixReserveLength]byte

	// Version is the logical clock distinguishing container generations.
	// Zero until first assigned.
	Version uint64

	// Ctime is the creation time in microseconds since the epoch.
	Ctime uint64

	// Etime is the absolute expiration time in microseconds since the
	// epoch. Zero means the record never expires.
	Etime uint64
}

// NewInternalValue creates an envelope for userValue with ctime set to the
// current time, version 0, and no expiration.
func NewInternalValue(dataType DataType, userValue []byte) InternalValue {
	return InternalValue{
		DataType:  dataType,
		UserValue: userValue,
		Ctime:     nowMicros(),
	}
}

// SetEtime sets the absolute expiration time. Zero clears the expiration.
func (v *InternalValue) SetEtime(etime uint64) {
	v.Etime = etime
}

// SetCtime sets the creation time.
func (v *InternalValue) SetCtime(ctime uint64) {
	v.Ctime = ctime
}

// SetVersion sets the logical version.
func (v *InternalValue) SetVersion(version uint64) {
	v.Version = version
}

// SetRelativeTimestamp sets the expiration to now + ttl.
func (v *InternalValue) SetRelativeTimestamp(ttl time.Duration) {
	v.Etime = nowMicros() + uint64(ttl.Microseconds())
}

// valueRange is a half-open byte-index range into a parsed buffer.
type valueRange struct {
	start int
	end   int
}

// ParsedInternalValue is the parse-side envelope shared by every record
// kind. It owns the raw buffer handed to it and exposes the payload and the
// reserve region as ranges into that buffer, without copying. The
// version and timestamps are materialized on parse; mutators on the concrete
// record types write both the materialized field and the buffer bytes so the
// two never diverge.
//
// A ParsedInternalValue must not be used concurrently with mutation of its
// buffer; the engine guarantees buffers handed to parse routines are stable
// for the duration of the call.
type ParsedInternalValue struct {
	value          []byte
	dataType       DataType
	userValueRange valueRange
	reserveRange   valueRange
	version        uint64
	ctime          uint64
	etime          uint64
}

// Buffer returns the raw record bytes, including any in-place patches
// applied since parsing. Use it to write the record back to the engine.
func (p *ParsedInternalValue) Buffer() []byte {
	return p.value
}

// DataType returns the record's type tag.
func (p *ParsedInternalValue) DataType() DataType {
	return p.dataType
}

// UserValue returns the payload bytes. The returned slice points into the
// parsed buffer.
func (p *ParsedInternalValue) UserValue() []byte {
	return p.value[p.userValueRange.start:p.userValueRange.end]
}

// Reserve returns the reserved extension region bytes. The returned slice
// points into the parsed buffer.
func (p *ParsedInternalValue) Reserve() []byte {
	return p.value[p.reserveRange.start:p.reserveRange.end]
}

// Version returns the logical version.
func (p *ParsedInternalValue) Version() uint64 {
	return p.version
}

// Ctime returns the creation time in microseconds since the epoch.
func (p *ParsedInternalValue) Ctime() uint64 {
	return p.ctime
}

// Etime returns the absolute expiration time in microseconds since the
// epoch; zero means no expiration.
func (p *ParsedInternalValue) Etime() uint64 {
	return p.etime
}

// IsStale reports whether the record's expiration has passed. It is the
// single liveness predicate shared by the read path and the compaction
// filter.
func (p *ParsedInternalValue) IsStale() bool {
	return p.IsStaleAt(nowMicros())
}

// IsStaleAt reports whether the record's expiration has passed relative to
// now. An etime of zero never expires.
func (p *ParsedInternalValue) IsStaleAt(now uint64) bool {
	return p.etime != 0 && p.etime <= now
}

// The patch helpers below are the single write path for the materialized
// fields: they update the field and splice the corresponding fixed-width
// slice of the owned buffer at the offset the concrete layout dictates.
// REQUIRES: the buffer was validated by the concrete type's constructor.

func (p *ParsedInternalValue) patchVersion(offset int, version uint64) {
	p.version = version
	encoding.EncodeFixed64(p.value[offset:], version)
}

func (p *ParsedInternalValue) patchCtime(offset int, ctime uint64) {
	p.ctime = ctime
	encoding.EncodeFixed64(p.value[offset:], ctime)
}

func (p *ParsedInternalValue) patchEtime(offset int, etime uint64) {
	p.etime = etime
	encoding.EncodeFixed64(p.value[offset:], etime)
}
