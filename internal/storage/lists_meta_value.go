package storage

import (
	"math"

	"github.com/coralkv/coralkv/internal/encoding"
)

// List boundary index sentinels. The two indices start adjacent at the
// midpoint of the unsigned 64-bit space, reserving ~2^63 slots of growth on
// each side. A single list would need ~9.2e18 cumulative one-sided pushes to
// exhaust a side, so the bound is treated as unreachable and index
// arithmetic wraps like the stored integers do.
const (
	// InitialLeftIndex is the left boundary of a fresh list (2^63 - 1).
	InitialLeftIndex uint64 = math.MaxInt64

	// InitialRightIndex is the right boundary of a fresh list (2^63).
	InitialRightIndex uint64 = math.MaxInt64 + 1
)

// ListsMetaValue is the encode-side list metadata record:
//
//	| type | count | version | left | right | reserve | ctime | etime |
//	|  1B  |  4B   |   8B    |  8B  |  8B   |   16B   |  8B   |  8B   |
//
// The index pair anchors the list's address space: pushing left decrements
// the left index by one per element, pushing right increments the right
// index, so either end grows in O(1) without renumbering stored elements.
//
// As with BaseMetaValue, the payload occupies the 4-byte count slot.
type ListsMetaValue struct {
	InternalValue
	leftIndex  uint64
	rightIndex uint64
}

// NewListsMetaValue creates a list metadata value with both boundary indices
// at their initial sentinels.
func NewListsMetaValue(userValue []byte) *ListsMetaValue {
	return &ListsMetaValue{
		InternalValue: NewInternalValue(DataTypeList, userValue),
		leftIndex:     InitialLeftIndex,
		rightIndex:    InitialRightIndex,
	}
}

// Encode serializes the record.
func (v *ListsMetaValue) Encode() []byte {
	needed := TypeLength + len(v.UserValue) + ListsMetaValueSuffixLength
	buf := make([]byte, 0, needed)

	buf = append(buf, byte(v.DataType))
	buf = append(buf, v.UserValue...)
	buf = encoding.AppendFixed64(buf, v.Version)
	buf = encoding.AppendFixed64(buf, v.leftIndex)
	buf = encoding.AppendFixed64(buf, v.rightIndex)
	buf = append(buf, v.Reserve[:]...)
	buf = encoding.AppendFixed64(buf, v.Ctime)
	buf = encoding.AppendFixed64(buf, v.Etime)

	return buf
}

// UpdateVersion bumps the version per the monotonic rule and returns it.
func (v *ListsMetaValue) UpdateVersion() uint64 {
	v.Version = nextVersion(v.Version)
	return v.Version
}

// LeftIndex returns the left boundary index.
func (v *ListsMetaValue) LeftIndex() uint64 {
	return v.leftIndex
}

// ModifyLeftIndex moves the left boundary outward by n pushed elements.
func (v *ListsMetaValue) ModifyLeftIndex(n uint64) {
	v.leftIndex -= n
}

// RightIndex returns the right boundary index.
func (v *ListsMetaValue) RightIndex() uint64 {
	return v.rightIndex
}

// ModifyRightIndex moves the right boundary outward by n pushed elements.
func (v *ListsMetaValue) ModifyRightIndex(n uint64) {
	v.rightIndex += n
}

// ParsedListsMetaValue is the parse-side view of a list metadata record.
type ParsedListsMetaValue struct {
	ParsedInternalValue
	count      int32
	leftIndex  uint64
	rightIndex uint64
}

// NewParsedListsMetaValue parses stored list metadata bytes. It fails with
// ErrInvalidFormat if the buffer is shorter than the fixed layout minimum or
// the type byte is out of range.
func NewParsedListsMetaValue(value []byte) (*ParsedListsMetaValue, error) {
	if len(value) < MinListsMetaValueLength {
		return nil, invalidFormatf("lists meta value length %d < %d", len(value), MinListsMetaValueLength)
	}

	dataType, err := ParseDataType(value[0])
	if err != nil {
		return nil, err
	}

	userValueEnd := len(value) - ListsMetaValueSuffixLength

	// The minimum-length check above guarantees the sequential reads succeed.
	r := encoding.NewReader(value)
	r.Skip(TypeLength)
	rawCount, _ := r.GetFixed32()
	r.Skip(userValueEnd - r.Offset())
	version, _ := r.GetFixed64()
	leftIndex, _ := r.GetFixed64()
	rightIndex, _ := r.GetFixed64()
	reserveStart := r.Offset()
	r.Skip(SuffixReserveLength)
	ctime, _ := r.GetFixed64()
	etime, _ := r.GetFixed64()

	return &ParsedListsMetaValue{
		ParsedInternalValue: ParsedInternalValue{
			value:          value,
			dataType:       dataType,
			userValueRange: valueRange{TypeLength, userValueEnd},
			reserveRange:   valueRange{reserveStart, reserveStart + SuffixReserveLength},
			version:        version,
			ctime:          ctime,
			etime:          etime,
		},
		count:      int32(rawCount),
		leftIndex:  leftIndex,
		rightIndex: rightIndex,
	}, nil
}

// Count returns the list element count.
func (p *ParsedListsMetaValue) Count() int32 {
	return p.count
}

// SetCount patches the element count in place.
func (p *ParsedListsMetaValue) SetCount(count int32) {
	p.count = count
	encoding.EncodeFixed32(p.value[TypeLength:], uint32(count))
}

// CheckSetCount reports whether count fits the 4-byte signed count field.
func (p *ParsedListsMetaValue) CheckSetCount(count int64) bool {
	return count >= 0 && count <= math.MaxInt32
}

// CheckModifyCount reports whether applying delta keeps the count within
// [0, MaxInt32]. Callers must consult it before ModifyCount to distinguish
// saturation from a legitimate in-range result.
func (p *ParsedListsMetaValue) CheckModifyCount(delta int32) bool {
	next := int64(p.count) + int64(delta)
	return next >= 0 && next <= math.MaxInt32
}

// ModifyCount applies delta to the count with saturating arithmetic and
// patches the count field in place.
func (p *ParsedListsMetaValue) ModifyCount(delta int32) {
	p.SetCount(saturateAddInt32(p.count, delta))
}

// UpdateVersion bumps the version per the monotonic rule, patches it in
// place, and returns it.
func (p *ParsedListsMetaValue) UpdateVersion() uint64 {
	p.patchVersion(len(p.value)-ListsMetaValueSuffixLength, nextVersion(p.version))
	return p.version
}

// InitialMetaValue resets the record to a fresh, empty list: count 0, both
// boundary indices back at their sentinels, no expiration, ctime 0, and a
// freshly bumped version. It returns the new version so callers can
// propagate it into element sub-keys.
func (p *ParsedListsMetaValue) InitialMetaValue() uint64 {
	p.SetCount(0)
	p.SetLeftIndex(InitialLeftIndex)
	p.SetRightIndex(InitialRightIndex)
	p.SetEtime(0)
	p.SetCtime(0)
	return p.UpdateVersion()
}

// LeftIndex returns the left boundary index.
func (p *ParsedListsMetaValue) LeftIndex() uint64 {
	return p.leftIndex
}

// SetLeftIndex patches the left boundary index in place.
func (p *ParsedListsMetaValue) SetLeftIndex(index uint64) {
	p.leftIndex = index
	encoding.EncodeFixed64(p.value[p.leftIndexOffset():], index)
}

// ModifyLeftIndex moves the left boundary outward by n pushed elements and
// patches it in place. Pops move the boundary back with SetLeftIndex.
func (p *ParsedListsMetaValue) ModifyLeftIndex(n uint64) {
	p.SetLeftIndex(p.leftIndex - n)
}

// RightIndex returns the right boundary index.
func (p *ParsedListsMetaValue) RightIndex() uint64 {
	return p.rightIndex
}

// SetRightIndex patches the right boundary index in place.
func (p *ParsedListsMetaValue) SetRightIndex(index uint64) {
	p.rightIndex = index
	encoding.EncodeFixed64(p.value[p.rightIndexOffset():], index)
}

// ModifyRightIndex moves the right boundary outward by n pushed elements and
// patches it in place. Pops move the boundary back with SetRightIndex.
func (p *ParsedListsMetaValue) ModifyRightIndex(n uint64) {
	p.SetRightIndex(p.rightIndex + n)
}

// SetCtime patches the creation time in place.
func (p *ParsedListsMetaValue) SetCtime(ctime uint64) {
	p.patchCtime(len(p.value)-2*TimestampLength, ctime)
}

// SetEtime patches the absolute expiration time in place. Zero clears the
// expiration.
func (p *ParsedListsMetaValue) SetEtime(etime uint64) {
	p.patchEtime(len(p.value)-TimestampLength, etime)
}

// IsValid reports whether the list is live: not stale and non-empty.
func (p *ParsedListsMetaValue) IsValid() bool {
	return p.IsValidAt(nowMicros())
}

// IsValidAt is IsValid relative to an explicit timestamp.
func (p *ParsedListsMetaValue) IsValidAt(now uint64) bool {
	return !p.IsStaleAt(now) && p.count != 0
}

func (p *ParsedListsMetaValue) leftIndexOffset() int {
	return len(p.value) - ListsMetaValueSuffixLength + VersionLength
}

func (p *ParsedListsMetaValue) rightIndexOffset() int {
	return p.leftIndexOffset() + ListIndexLength
}
