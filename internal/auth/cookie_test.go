package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieCodec_RoundTrip(t *testing.T) {
	codec, err := NewCookieCodec(strings.Repeat("0f", 32), time.Hour)
	require.NoError(t, err)

	id, err := NewSessionID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "sess-"))

	sealed := codec.Seal(id)
	assert.True(t, strings.HasPrefix(sealed, "v4.local."))
	assert.NotContains(t, sealed, id)

	got, err := codec.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestCookieCodec_RejectsForeignKey(t *testing.T) {
	a, err := NewCookieCodec(strings.Repeat("0f", 32), time.Hour)
	require.NoError(t, err)
	b, err := NewCookieCodec(strings.Repeat("f0", 32), time.Hour)
	require.NoError(t, err)

	_, err = b.Open(a.Seal("sess-1"))
	assert.Error(t, err)
}

func TestCookieCodec_RejectsExpired(t *testing.T) {
	codec, err := NewCookieCodec("", -time.Minute)
	require.NoError(t, err)

	_, err = codec.Open(codec.Seal("sess-1"))
	assert.Error(t, err)
}

func TestCookieCodec_RejectsGarbage(t *testing.T) {
	codec, err := NewCookieCodec("", time.Hour)
	require.NoError(t, err)

	_, err = codec.Open("not-a-token")
	assert.Error(t, err)
}

func TestNewCookieCodec_InvalidKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"too short", "abcd"},
		{"not hex", strings.Repeat("zz", 32)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCookieCodec(tt.key, time.Hour)
			assert.Error(t, err)
		})
	}
}

func TestNewSessionID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id, err := NewSessionID()
		require.NoError(t, err)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
