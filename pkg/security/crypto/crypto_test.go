package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyString(t *testing.T) {
	key, err := GenerateKeyString()
	require.NoError(t, err)
	assert.Len(t, key, KeyStringEncodedLength)

	other, err := GenerateKeyString()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestSealOpenRoundTrip(t *testing.T) {
	key, err := GenerateKeyString()
	require.NoError(t, err)

	plaintext := []byte("Un text utf-8 et plus: élan")
	packet, err := Seal(plaintext, key)
	require.NoError(t, err)
	assert.Len(t, packet, len(plaintext)+Overhead)

	got, err := Open(packet, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestSealProducesFreshNonceEveryCall(t *testing.T) {
	key, err := GenerateKeyString()
	require.NoError(t, err)

	a, err := Seal([]byte("same plaintext"), key)
	require.NoError(t, err)
	b, err := Seal([]byte("same plaintext"), key)
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "two seals of the same plaintext must differ by nonce")
}

func TestOpenRejectsWrongKey(t *testing.T) {
	key, err := GenerateKeyString()
	require.NoError(t, err)
	other, err := GenerateKeyString()
	require.NoError(t, err)

	packet, err := Seal([]byte("secret"), key)
	require.NoError(t, err)

	_, err = Open(packet, other)
	assert.ErrorIs(t, err, ErrTampered)
}

func TestOpenRejectsShortPacket(t *testing.T) {
	key, err := GenerateKeyString()
	require.NoError(t, err)

	_, err = Open([]byte("short"), key)
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestSealToStringIsURLSafe(t *testing.T) {
	key, err := GenerateKeyString()
	require.NoError(t, err)

	encoded, err := SealToString([]byte("payload"), key)
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(encoded, "+/="))

	got, err := OpenFromString(encoded, key)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", DefaultBcryptCost)
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword(hash, "correct horse battery staple"))
	assert.Error(t, VerifyPassword(hash, "wrong password"))
}
