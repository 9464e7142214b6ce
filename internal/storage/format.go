// Package storage implements the value-encoding and liveness-management
// layer of a Redis-semantics store built on an ordered LSM key/value engine.
//
// Every logical value is serialized into one opaque byte string stored under
// one engine key. Four record layouts share a common envelope (payload,
// reserved extension region, version, creation time, expiration time):
//
//	strings value:    | type | value | reserve | ctime | etime |
//	                  |  1B  |  var  |   16B   |  8B   |  8B   |
//
//	base data value:  | value | reserve | ctime |
//	                  |  var  |   16B   |  8B   |
//
//	base meta value:  | type | count | version | reserve | ctime | etime |
//	                  |  1B  |  4B   |   8B    |   16B   |  8B   |  8B   |
//
//	lists meta value: | type | count | version | left | right | reserve | ctime | etime |
//	                  |  1B  |  4B   |   8B    |  8B  |  8B   |   16B   |  8B   |  8B   |
//
// All multi-byte integers are little-endian. The payload is the only
// variable-width field; parsing computes field offsets by subtracting the
// fixed suffix widths from the end of the buffer.
package storage

import "time"

// Fixed-width field lengths shared by the record layouts, in bytes.
const (
	// TypeLength is the width of the leading type tag.
	TypeLength = 1

	// SuffixReserveLength is the width of the reserved extension region.
	// Reserved for future fields, zero-filled today.
	SuffixReserveLength = 16

	// TimestampLength is the width of each of ctime and etime.
	TimestampLength = 8

	// VersionLength is the width of the logical version.
	VersionLength = 8

	// CountLength is the width of a container element count.
	CountLength = 4

	// ListIndexLength is the width of each list boundary index.
	ListIndexLength = 8
)

// Per-layout suffix widths. The suffix is everything after the variable-width
// payload.
const (
	// StringsValueSuffixLength is reserve + ctime + etime.
	StringsValueSuffixLength = SuffixReserveLength + 2*TimestampLength

	// BaseDataValueSuffixLength is reserve + ctime.
	BaseDataValueSuffixLength = SuffixReserveLength + TimestampLength

	// BaseMetaValueSuffixLength is version + reserve + ctime + etime.
	BaseMetaValueSuffixLength = VersionLength + SuffixReserveLength + 2*TimestampLength

	// ListsMetaValueSuffixLength is version + both indices + reserve +
	// ctime + etime.
	ListsMetaValueSuffixLength = VersionLength + 2*ListIndexLength + SuffixReserveLength + 2*TimestampLength
)

// Minimum well-formed record lengths (empty payload).
const (
	// MinStringsValueLength covers the type tag plus the suffix.
	MinStringsValueLength = TypeLength + StringsValueSuffixLength

	// MinBaseDataValueLength is the bare suffix; the layout has no type tag.
	MinBaseDataValueLength = BaseDataValueSuffixLength

	// MinBaseMetaValueLength covers type tag, count, and suffix.
	MinBaseMetaValueLength = TypeLength + CountLength + BaseMetaValueSuffixLength

	// MinListsMetaValueLength covers type tag, count, and suffix.
	MinListsMetaValueLength = TypeLength + CountLength + ListsMetaValueSuffixLength
)

// nowMicros returns the current wall-clock time in microseconds since the
// Unix epoch. Versions, ctime, and etime all share this clock.
func nowMicros() uint64 {
	return uint64(time.Now().UnixMicro())
}

// nextVersion implements the monotonic version rule: if the sampled
// wall-clock time is ahead of the current version, the version becomes that
// time; otherwise it becomes current+1. Repeated calls within the same
// microsecond therefore still yield a strictly increasing sequence.
func nextVersion(current uint64) uint64 {
	now := nowMicros()
	if current >= now {
		return current + 1
	}
	return now
}
