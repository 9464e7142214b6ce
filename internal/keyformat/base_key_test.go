package keyformat

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseKeyRoundTrip(t *testing.T) {
	for _, userKey := range []string{"", "k", "user:1000", "中文键", "\x00\xff"} {
		encoded := EncodeBaseKey([]byte(userKey))
		require.Len(t, encoded, MinEncodedLength+len(userKey))

		parsed, err := NewParsedBaseKey(encoded)
		require.NoError(t, err)
		assert.Equal(t, []byte(userKey), parsed.Key())
	}
}

func TestBaseKeyReserveRegionsZeroFilled(t *testing.T) {
	encoded := EncodeBaseKey([]byte("abc"))

	for i := 0; i < PrefixReserveLength; i++ {
		assert.Zero(t, encoded[i], "prefix reserve byte %d", i)
	}
	for i := len(encoded) - SuffixReserveLength; i < len(encoded); i++ {
		assert.Zero(t, encoded[i], "suffix reserve byte %d", i)
	}
}

func TestParsedBaseKeyRejectsShortBuffer(t *testing.T) {
	short := make([]byte, MinEncodedLength-1)

	_, err := NewParsedBaseKey(short)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidKey))

	// Exactly the minimum parses to an empty user key.
	parsed, err := NewParsedBaseKey(make([]byte, MinEncodedLength))
	require.NoError(t, err)
	assert.Empty(t, parsed.Key())
}

func TestUserKeyLenientOnShortBuffers(t *testing.T) {
	short := []byte("raw")
	assert.Equal(t, short, UserKey(short))

	encoded := EncodeBaseKey([]byte("user:1"))
	assert.Equal(t, []byte("user:1"), UserKey(encoded))
}
