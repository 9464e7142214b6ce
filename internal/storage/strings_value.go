package storage

import (
	"time"

	"github.com/coralkv/coralkv"
	"github.com/coralkv/coralkv/internal/encoding"
)

// StringsValue is the encode-side scalar string record:
//
//	| type | value | reserve | ctime | etime |
//	|  1B  |  var  |   16B   |  8B   |  8B   |
//
// Expiration is per-record: a string with a past etime reads as absent and
// is removed by compaction.
type StringsValue struct {
	InternalValue
}

// NewStringsValue creates a strings value for userValue.
func NewStringsValue(userValue []byte) *StringsValue {
	return &StringsValue{
		InternalValue: NewInternalValue(DataTypeString, userValue),
	}
}

// Encode serializes the record.
func (v *StringsValue) Encode() []byte {
	needed := TypeLength + len(v.UserValue) + StringsValueSuffixLength
	buf := make([]byte, 0, needed)

	buf = append(buf, byte(DataTypeString))
	buf = append(buf, v.UserValue...)
	buf = append(buf, v.Reserve[:]...)
	buf = encoding.AppendFixed64(buf, v.Ctime)
	buf = encoding.AppendFixed64(buf, v.Etime)

	return buf
}

// ParsedStringsValue is the parse-side view of a scalar string record.
type ParsedStringsValue struct {
	ParsedInternalValue
}

// NewParsedStringsValue parses stored string record bytes. It fails with
// ErrInvalidFormat if the buffer is shorter than the fixed layout minimum or
// the type byte is out of range.
func NewParsedStringsValue(value []byte) (*ParsedStringsValue, error) {
	if len(value) < MinStringsValueLength {
		return nil, invalidFormatf("strings value length %d < %d", len(value), MinStringsValueLength)
	}

	dataType, err := ParseDataType(value[0])
	if err != nil {
		return nil, err
	}

	userValueEnd := len(value) - StringsValueSuffixLength
	reserveEnd := userValueEnd + SuffixReserveLength

	// The minimum-length check above guarantees the suffix reads succeed.
	r := encoding.NewReader(value[userValueEnd:])
	r.Skip(SuffixReserveLength)
	ctime, _ := r.GetFixed64()
	etime, _ := r.GetFixed64()

	return &ParsedStringsValue{
		ParsedInternalValue: ParsedInternalValue{
			value:          value,
			dataType:       dataType,
			userValueRange: valueRange{TypeLength, userValueEnd},
			reserveRange:   valueRange{userValueEnd, reserveEnd},
			ctime:          ctime,
			etime:          etime,
		},
	}, nil
}

// StripSuffix returns the bare user payload, without the leading type byte
// and the trailing fixed suffix. The returned slice points into the parsed
// buffer. Use it when handing the value back to a client.
func (p *ParsedStringsValue) StripSuffix() []byte {
	return p.value[TypeLength : len(p.value)-StringsValueSuffixLength]
}

// SetCtime patches the creation time in place.
func (p *ParsedStringsValue) SetCtime(ctime uint64) {
	p.patchCtime(len(p.value)-2*TimestampLength, ctime)
}

// SetEtime patches the absolute expiration time in place. Zero clears the
// expiration.
func (p *ParsedStringsValue) SetEtime(etime uint64) {
	p.patchEtime(len(p.value)-TimestampLength, etime)
}

// SetRelativeTimestamp patches the expiration to now + ttl.
func (p *ParsedStringsValue) SetRelativeTimestamp(ttl time.Duration) {
	p.SetEtime(nowMicros() + uint64(ttl.Microseconds()))
}

// FilterDecision returns the compaction verdict for the record relative to
// now: remove if stale, keep otherwise.
func (p *ParsedStringsValue) FilterDecision(now uint64) coralkv.CompactionFilterDecision {
	if p.IsStaleAt(now) {
		return coralkv.FilterRemove
	}
	return coralkv.FilterKeep
}
