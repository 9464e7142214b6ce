package storage

// DataType identifies which record layout a stored byte string uses. It is
// stored as the first byte of every record except the bare data value.
//
// These values are embedded in the on-disk format and MUST NOT change.
type DataType uint8

const (
	// DataTypeNone marks a record that carries no Redis type. No stored
	// record should use it; the compaction filter removes records tagged
	// with it.
	DataTypeNone DataType = iota
	// DataTypeString is a scalar string record.
	DataTypeString
	// DataTypeHash is a hash container metadata record.
	DataTypeHash
	// DataTypeSet is a set container metadata record.
	DataTypeSet
	// DataTypeZSet is a sorted-set container metadata record.
	DataTypeZSet
	// DataTypeList is a list metadata record.
	DataTypeList

	dataTypeMax = DataTypeList
)

// ParseDataType maps a stored type byte onto the closed DataType set.
// An out-of-range byte fails with ErrInvalidFormat.
func ParseDataType(b byte) (DataType, error) {
	if DataType(b) > dataTypeMax {
		return DataTypeNone, invalidFormatf("unknown data type byte %d", b)
	}
	return DataType(b), nil
}

// String returns a human-readable representation of the type tag.
func (t DataType) String() string {
	switch t {
	case DataTypeNone:
		return "none"
	case DataTypeString:
		return "string"
	case DataTypeHash:
		return "hash"
	case DataTypeSet:
		return "set"
	case DataTypeZSet:
		return "zset"
	case DataTypeList:
		return "list"
	default:
		return "unknown"
	}
}
