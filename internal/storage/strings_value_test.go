package storage

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coralkv/coralkv/internal/encoding"
)

func TestStringsValueEncodeLayout(t *testing.T) {
	payload := []byte("hello")
	v := NewStringsValue(payload)
	v.SetEtime(12345)

	encoded := v.Encode()
	require.Len(t, encoded, TypeLength+len(payload)+StringsValueSuffixLength)

	assert.Equal(t, byte(DataTypeString), encoded[0])
	assert.Equal(t, payload, encoded[1:1+len(payload)])

	reserveStart := TypeLength + len(payload)
	for i := reserveStart; i < reserveStart+SuffixReserveLength; i++ {
		require.Zero(t, encoded[i], "reserve byte %d", i)
	}

	ctimeStart := reserveStart + SuffixReserveLength
	assert.Equal(t, v.Ctime, encoding.DecodeFixed64(encoded[ctimeStart:]))
	assert.Equal(t, uint64(12345), encoding.DecodeFixed64(encoded[ctimeStart+TimestampLength:]))
}

func TestStringsValueRoundTrip(t *testing.T) {
	payloads := []string{
		"",
		"value",
		"Hello, World!",
		"!@#$%^&*()",
		"中文测试",
		"\n\r\t",
		"\x00\x01\xfe\xff",
	}

	for _, payload := range payloads {
		v := NewStringsValue([]byte(payload))
		v.SetEtime(nowMicros() + 1_000_000)

		parsed, err := NewParsedStringsValue(v.Encode())
		require.NoError(t, err, "payload %q", payload)

		assert.Equal(t, DataTypeString, parsed.DataType())
		assert.Equal(t, []byte(payload), parsed.UserValue())
		assert.Equal(t, v.Ctime, parsed.Ctime())
		assert.Equal(t, v.Etime, parsed.Etime())
		assert.Equal(t, make([]byte, SuffixReserveLength), parsed.Reserve())
	}
}

func TestParsedStringsValueMinimumLength(t *testing.T) {
	// One byte short of the fixed minimum fails.
	short := make([]byte, MinStringsValueLength-1)
	short[0] = byte(DataTypeString)
	_, err := NewParsedStringsValue(short)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))

	// Exactly the minimum (empty payload) parses.
	parsed, err := NewParsedStringsValue(NewStringsValue(nil).Encode())
	require.NoError(t, err)
	assert.Empty(t, parsed.UserValue())
}

func TestParsedStringsValueRejectsBadTypeByte(t *testing.T) {
	encoded := NewStringsValue([]byte("v")).Encode()
	encoded[0] = 0xEE

	_, err := NewParsedStringsValue(encoded)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestParsedStringsValueStripSuffix(t *testing.T) {
	payload := []byte("client-visible payload")
	parsed, err := NewParsedStringsValue(NewStringsValue(payload).Encode())
	require.NoError(t, err)

	assert.Equal(t, payload, parsed.StripSuffix())
}

func TestParsedStringsValueSetEtimePatchesBuffer(t *testing.T) {
	parsed, err := NewParsedStringsValue(NewStringsValue([]byte("v")).Encode())
	require.NoError(t, err)

	parsed.SetEtime(777)
	assert.Equal(t, uint64(777), parsed.Etime())

	// The buffer and the materialized field must agree after a reparse.
	reparsed, err := NewParsedStringsValue(parsed.Buffer())
	require.NoError(t, err)
	assert.Equal(t, uint64(777), reparsed.Etime())

	parsed.SetCtime(33)
	reparsed, err = NewParsedStringsValue(parsed.Buffer())
	require.NoError(t, err)
	assert.Equal(t, uint64(33), reparsed.Ctime())
	assert.Equal(t, uint64(777), reparsed.Etime())
}

func TestParsedStringsValueSetRelativeTimestamp(t *testing.T) {
	parsed, err := NewParsedStringsValue(NewStringsValue([]byte("v")).Encode())
	require.NoError(t, err)

	before := nowMicros()
	parsed.SetRelativeTimestamp(2 * time.Second)
	after := nowMicros()

	ttl := uint64((2 * time.Second).Microseconds())
	assert.GreaterOrEqual(t, parsed.Etime(), before+ttl)
	assert.LessOrEqual(t, parsed.Etime(), after+ttl)
	assert.False(t, parsed.IsStale())
}
