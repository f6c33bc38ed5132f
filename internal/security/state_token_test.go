package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateTokenRoundTrip(t *testing.T) {
	codec := NewStateTokenCodec("test-secret", time.Hour)

	token, err := codec.Encode("sess-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-42", got)
}

func TestStateTokenTamperRejected(t *testing.T) {
	codec := NewStateTokenCodec("test-secret", time.Hour)
	token, err := codec.Encode("sess-42")
	require.NoError(t, err)

	_, err = codec.Decode(token + "x")
	assert.ErrorIs(t, err, ErrInvalidStateToken)
}

func TestStateTokenWrongSecret(t *testing.T) {
	token, err := NewStateTokenCodec("secret-a", time.Hour).Encode("sess-42")
	require.NoError(t, err)

	_, err = NewStateTokenCodec("secret-b", time.Hour).Decode(token)
	assert.ErrorIs(t, err, ErrInvalidStateToken)
}

func TestStateTokenExpired(t *testing.T) {
	// TTL well past the verifier's clock-skew leeway.
	token, err := NewStateTokenCodec("test-secret", -2*time.Minute).Encode("sess-42")
	require.NoError(t, err)

	_, err = NewStateTokenCodec("test-secret", time.Hour).Decode(token)
	assert.ErrorIs(t, err, ErrInvalidStateToken)
}

func TestStateTokenGarbage(t *testing.T) {
	_, err := NewStateTokenCodec("test-secret", time.Hour).Decode("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidStateToken)
}
