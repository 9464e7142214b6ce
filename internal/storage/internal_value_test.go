package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInternalValueDefaults(t *testing.T) {
	before := nowMicros()
	v := NewInternalValue(DataTypeString, []byte("payload"))
	after := nowMicros()

	assert.Equal(t, DataTypeString, v.DataType)
	assert.Equal(t, []byte("payload"), v.UserValue)
	assert.Equal(t, uint64(0), v.Version)
	assert.Equal(t, uint64(0), v.Etime)
	assert.GreaterOrEqual(t, v.Ctime, before)
	assert.LessOrEqual(t, v.Ctime, after)

	for i, b := range v.Reserve {
		require.Zero(t, b, "reserve byte %d", i)
	}
}

func TestInternalValueSetRelativeTimestamp(t *testing.T) {
	v := NewInternalValue(DataTypeString, nil)

	before := nowMicros()
	v.SetRelativeTimestamp(time.Second)
	after := nowMicros()

	assert.GreaterOrEqual(t, v.Etime, before+uint64(time.Second.Microseconds()))
	assert.LessOrEqual(t, v.Etime, after+uint64(time.Second.Microseconds()))
}

func TestParsedInternalValueStaleness(t *testing.T) {
	now := nowMicros()

	tests := []struct {
		name  string
		etime uint64
		stale bool
	}{
		{"no expiration", 0, false},
		{"expired one microsecond ago", now - 1, true},
		{"expires exactly now", now, true},
		{"expires far in the future", now + 3600*1_000_000, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := ParsedInternalValue{etime: tc.etime}
			assert.Equal(t, tc.stale, p.IsStaleAt(now))
		})
	}
}

func TestNextVersionMonotonic(t *testing.T) {
	// Two immediate samples must still increase strictly.
	first := nextVersion(0)
	second := nextVersion(first)
	third := nextVersion(second)
	assert.Greater(t, second, first)
	assert.Greater(t, third, second)

	// A version ahead of the wall clock advances by exactly one.
	farAhead := nowMicros() + 3600*1_000_000
	assert.Equal(t, farAhead+1, nextVersion(farAhead))
}
