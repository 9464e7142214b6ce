// Package keyformat provides a view over the engine's encoded key bytes.
//
// Engine keys frame the user-visible key between two reserved regions:
//
//	| reserve1 | user key | reserve2 |
//	|    8B    |   var    |   16B    |
//
// The reserved regions are zero-filled today and exist so the key comparator
// can grow version or slot fields without re-encoding stored keys. This
// package only extracts the user key; the comparator and the full key
// encoding scheme belong to the engine.
package keyformat

import "github.com/pkg/errors"

const (
	// PrefixReserveLength is the width of the reserved region preceding the
	// user key.
	PrefixReserveLength = 8

	// SuffixReserveLength is the width of the reserved region following the
	// user key.
	SuffixReserveLength = 16

	// MinEncodedLength is the smallest well-formed encoded key (empty user key).
	MinEncodedLength = PrefixReserveLength + SuffixReserveLength
)

// ErrInvalidKey is returned when encoded key bytes are too short to frame a
// user key.
var ErrInvalidKey = errors.New("keyformat: invalid encoded key")

// EncodeBaseKey frames userKey between the reserved regions and returns the
// engine key bytes.
func EncodeBaseKey(userKey []byte) []byte {
	buf := make([]byte, MinEncodedLength+len(userKey))
	copy(buf[PrefixReserveLength:], userKey)
	return buf
}

// ParsedBaseKey is a zero-copy view of an encoded engine key.
type ParsedBaseKey struct {
	raw      []byte
	keyStart int
	keyEnd   int
}

// NewParsedBaseKey parses encoded engine key bytes. It fails if the buffer is
// shorter than the two reserved regions.
func NewParsedBaseKey(encoded []byte) (*ParsedBaseKey, error) {
	if len(encoded) < MinEncodedLength {
		return nil, errors.Wrapf(ErrInvalidKey, "length %d < %d", len(encoded), MinEncodedLength)
	}
	return &ParsedBaseKey{
		raw:      encoded,
		keyStart: PrefixReserveLength,
		keyEnd:   len(encoded) - SuffixReserveLength,
	}, nil
}

// Key returns the user-visible key. The returned slice points into the
// encoded buffer.
func (p *ParsedBaseKey) Key() []byte {
	return p.raw[p.keyStart:p.keyEnd]
}

// UserKey extracts the user-visible key from encoded engine key bytes.
// Buffers too short to carry the reserved framing are returned unchanged;
// this keeps the helper total for diagnostic call sites that only format the
// result into a log message.
func UserKey(encoded []byte) []byte {
	p, err := NewParsedBaseKey(encoded)
	if err != nil {
		return encoded
	}
	return p.Key()
}
