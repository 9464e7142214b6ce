package storage

import (
	"math"

	"github.com/coralkv/coralkv/internal/encoding"
)

// BaseMetaValue is the encode-side container metadata record shared by
// hashes, sets, and sorted sets:
//
//	| type | count | version | reserve | ctime | etime |
//	|  1B  |  4B   |   8B    |   16B   |  8B   |  8B   |
//
// One metadata record exists per container key. It tracks the collection
// size and controls collection-wide expiration and generation (version)
// independently of the element records.
//
// The payload occupies the count slot: callers pass the 4-byte little-endian
// element count as the user value (see EncodeContainerCount).
type BaseMetaValue struct {
	InternalValue
}

// NewBaseMetaValue creates a container metadata value tagged with dataType.
func NewBaseMetaValue(dataType DataType, userValue []byte) *BaseMetaValue {
	return &BaseMetaValue{
		InternalValue: NewInternalValue(dataType, userValue),
	}
}

// NewHashesMetaValue creates a hash metadata value.
func NewHashesMetaValue(userValue []byte) *BaseMetaValue {
	return NewBaseMetaValue(DataTypeHash, userValue)
}

// NewSetsMetaValue creates a set metadata value.
func NewSetsMetaValue(userValue []byte) *BaseMetaValue {
	return NewBaseMetaValue(DataTypeSet, userValue)
}

// NewZSetsMetaValue creates a sorted-set metadata value.
func NewZSetsMetaValue(userValue []byte) *BaseMetaValue {
	return NewBaseMetaValue(DataTypeZSet, userValue)
}

// EncodeContainerCount returns the 4-byte little-endian encoding of count,
// suitable as the user value of a container metadata record.
func EncodeContainerCount(count int32) []byte {
	return encoding.AppendFixed32(nil, uint32(count))
}

// UpdateVersion bumps the version per the monotonic rule and returns it.
func (v *BaseMetaValue) UpdateVersion() uint64 {
	v.Version = nextVersion(v.Version)
	return v.Version
}

// Encode serializes the record.
func (v *BaseMetaValue) Encode() []byte {
	needed := TypeLength + len(v.UserValue) + BaseMetaValueSuffixLength
	buf := make([]byte, 0, needed)

	buf = append(buf, byte(v.DataType))
	buf = append(buf, v.UserValue...)
	buf = encoding.AppendFixed64(buf, v.Version)
	buf = append(buf, v.Reserve[:]...)
	buf = encoding.AppendFixed64(buf, v.Ctime)
	buf = encoding.AppendFixed64(buf, v.Etime)

	return buf
}

// ParsedBaseMetaValue is the parse-side view of a container metadata record.
type ParsedBaseMetaValue struct {
	ParsedInternalValue
	count int32
}

// NewParsedBaseMetaValue parses stored container metadata bytes. It fails
// with ErrInvalidFormat if the buffer is shorter than the fixed layout
// minimum or the type byte is out of range.
func NewParsedBaseMetaValue(value []byte) (*ParsedBaseMetaValue, error) {
	if len(value) < MinBaseMetaValueLength {
		return nil, invalidFormatf("base meta value length %d < %d", len(value), MinBaseMetaValueLength)
	}

	dataType, err := ParseDataType(value[0])
	if err != nil {
		return nil, err
	}

	userValueEnd := len(value) - BaseMetaValueSuffixLength

	// The minimum-length check above guarantees the sequential reads succeed.
	r := encoding.NewReader(value)
	r.Skip(TypeLength)
	rawCount, _ := r.GetFixed32()
	r.Skip(userValueEnd - r.Offset())
	version, _ := r.GetFixed64()
	reserveStart := r.Offset()
	r.Skip(SuffixReserveLength)
	ctime, _ := r.GetFixed64()
	etime, _ := r.GetFixed64()

	return &ParsedBaseMetaValue{
		ParsedInternalValue: ParsedInternalValue{
			value:          value,
			dataType:       dataType,
			userValueRange: valueRange{TypeLength, userValueEnd},
			reserveRange:   valueRange{reserveStart, reserveStart + SuffixReserveLength},
			version:        version,
			ctime:          ctime,
			etime:          etime,
		},
		count: int32(rawCount),
	}, nil
}

// Count returns the container element count.
func (p *ParsedBaseMetaValue) Count() int32 {
	return p.count
}

// SetCount patches the element count in place.
func (p *ParsedBaseMetaValue) SetCount(count int32) {
	p.count = count
	encoding.EncodeFixed32(p.value[TypeLength:], uint32(count))
}

// CheckSetCount reports whether count fits the 4-byte signed count field.
func (p *ParsedBaseMetaValue) CheckSetCount(count int64) bool {
	return count >= 0 && count <= math.MaxInt32
}

// CheckModifyCount reports whether applying delta keeps the count within
// [0, MaxInt32]. Callers must consult it before ModifyCount to distinguish
// saturation from a legitimate in-range result.
func (p *ParsedBaseMetaValue) CheckModifyCount(delta int32) bool {
	next := int64(p.count) + int64(delta)
	return next >= 0 && next <= math.MaxInt32
}

// ModifyCount applies delta to the count with saturating arithmetic and
// patches the count field in place.
func (p *ParsedBaseMetaValue) ModifyCount(delta int32) {
	p.SetCount(saturateAddInt32(p.count, delta))
}

// UpdateVersion bumps the version per the monotonic rule, patches it in
// place, and returns it.
func (p *ParsedBaseMetaValue) UpdateVersion() uint64 {
	p.patchVersion(len(p.value)-BaseMetaValueSuffixLength, nextVersion(p.version))
	return p.version
}

// InitialMetaValue resets the record to a fresh, empty container: count 0,
// no expiration, ctime 0, and a freshly bumped version. It returns the new
// version so callers can propagate it into element sub-keys.
func (p *ParsedBaseMetaValue) InitialMetaValue() uint64 {
	p.SetCount(0)
	p.SetEtime(0)
	p.SetCtime(0)
	return p.UpdateVersion()
}

// SetCtime patches the creation time in place.
func (p *ParsedBaseMetaValue) SetCtime(ctime uint64) {
	p.patchCtime(len(p.value)-2*TimestampLength, ctime)
}

// SetEtime patches the absolute expiration time in place. Zero clears the
// expiration.
func (p *ParsedBaseMetaValue) SetEtime(etime uint64) {
	p.patchEtime(len(p.value)-TimestampLength, etime)
}

// IsValid reports whether the container is live: not stale and non-empty.
// A zero-count metadata record denotes a logically deleted container and
// must read as absent even while the engine key still physically exists.
func (p *ParsedBaseMetaValue) IsValid() bool {
	return p.IsValidAt(nowMicros())
}

// IsValidAt is IsValid relative to an explicit timestamp.
func (p *ParsedBaseMetaValue) IsValidAt(now uint64) bool {
	return !p.IsStaleAt(now) && p.count != 0
}

// saturateAddInt32 adds two int32 values, clamping at the representable
// bounds instead of wrapping.
func saturateAddInt32(a, b int32) int32 {
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 {
		return math.MaxInt32
	}
	if sum < math.MinInt32 {
		return math.MinInt32
	}
	return int32(sum)
}
