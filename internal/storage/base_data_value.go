package storage

import "github.com/coralkv/coralkv/internal/encoding"

// BaseDataValue is the encode-side record for an individual element stored
// under a container's element sub-keys (hash fields, set members, zset
// members, list entries):
//
//	| value | reserve | ctime |
//	|  var  |   16B   |  8B   |
//
// There is no type byte and no etime: element liveness is governed entirely
// by the owning container's metadata record, which the read path must
// consult before trusting an element read.
type BaseDataValue struct {
	InternalValue
}

// NewBaseDataValue creates a data value for userValue.
func NewBaseDataValue(userValue []byte) *BaseDataValue {
	return &BaseDataValue{
		InternalValue: NewInternalValue(DataTypeNone, userValue),
	}
}

// Encode serializes the record.
func (v *BaseDataValue) Encode() []byte {
	needed := len(v.UserValue) + BaseDataValueSuffixLength
	buf := make([]byte, 0, needed)

	buf = append(buf, v.UserValue...)
	buf = append(buf, v.Reserve[:]...)
	buf = encoding.AppendFixed64(buf, v.Ctime)

	return buf
}

// ParsedBaseDataValue is the parse-side view of an element data record.
type ParsedBaseDataValue struct {
	ParsedInternalValue
}

// NewParsedBaseDataValue parses stored element record bytes. It fails with
// ErrInvalidFormat if the buffer is shorter than the fixed suffix.
func NewParsedBaseDataValue(value []byte) (*ParsedBaseDataValue, error) {
	if len(value) < MinBaseDataValueLength {
		return nil, invalidFormatf("base data value length %d < %d", len(value), MinBaseDataValueLength)
	}

	userValueEnd := len(value) - BaseDataValueSuffixLength
	reserveEnd := userValueEnd + SuffixReserveLength

	// The minimum-length check above guarantees the suffix reads succeed.
	r := encoding.NewReader(value[userValueEnd:])
	r.Skip(SuffixReserveLength)
	ctime, _ := r.GetFixed64()

	return &ParsedBaseDataValue{
		ParsedInternalValue: ParsedInternalValue{
			value:          value,
			dataType:       DataTypeNone,
			userValueRange: valueRange{0, userValueEnd},
			reserveRange:   valueRange{userValueEnd, reserveEnd},
			ctime:          ctime,
		},
	}, nil
}

// StripSuffix returns the bare element payload without the trailing fixed
// suffix. The returned slice points into the parsed buffer.
func (p *ParsedBaseDataValue) StripSuffix() []byte {
	return p.value[:len(p.value)-BaseDataValueSuffixLength]
}

// SetCtime patches the creation time in place.
func (p *ParsedBaseDataValue) SetCtime(ctime uint64) {
	p.patchCtime(len(p.value)-TimestampLength, ctime)
}
