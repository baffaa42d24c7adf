package models

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(seed byte) ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(bytes.Repeat([]byte{seed}, ed25519.SeedSize))
}

func TestPublicKey_RoundTrip(t *testing.T) {
	priv := testKey(1)
	pk := NewPublicKey(priv.Public().(ed25519.PublicKey))

	s := pk.String()
	assert.Contains(t, s, "ed25519:")

	parsed, err := ParsePublicKey(s)
	require.NoError(t, err)
	assert.Equal(t, pk, parsed)
	assert.Len(t, pk.ImplicitAccountID(), 64)
}

func TestPublicKey_JSON(t *testing.T) {
	pk := NewPublicKey(testKey(2).Public().(ed25519.PublicKey))

	b, err := json.Marshal(pk)
	require.NoError(t, err)
	assert.Equal(t, `"`+pk.String()+`"`, string(b))

	var decoded PublicKey
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, pk, decoded)
}

func TestParsePublicKey_Invalid(t *testing.T) {
	for _, s := range []string{
		"",
		"secp256k1:abc",
		"ed25519:0OIl", // not base58
		"ed25519:3yZe7d",
	} {
		_, err := ParsePublicKey(s)
		assert.ErrorIs(t, err, ErrInvalidKey, s)
	}
}

func TestSecretKey_RoundTrip(t *testing.T) {
	sk := NewSecretKey(testKey(3))

	parsed, err := ParseSecretKey(sk.String())
	require.NoError(t, err)
	assert.Equal(t, sk.PrivateKey(), parsed.PrivateKey())
	assert.Equal(t, sk.PublicKey(), parsed.PublicKey())
	assert.False(t, parsed.IsZero())
	assert.True(t, SecretKey{}.IsZero())
}

func TestKeyPairProperties_KeyPair(t *testing.T) {
	sk := NewSecretKey(testKey(4))
	props := KeyPairProperties{
		PublicKey:  sk.PublicKey().String(),
		PrivateKey: sk.String(),
	}

	kp, err := props.KeyPair()
	require.NoError(t, err)
	assert.Equal(t, sk.PublicKey(), kp.PublicKey)

	t.Run("public key may be omitted", func(t *testing.T) {
		kp, err := KeyPairProperties{PrivateKey: sk.String()}.KeyPair()
		require.NoError(t, err)
		assert.Equal(t, sk.PublicKey(), kp.PublicKey)
	})

	t.Run("mismatched public key", func(t *testing.T) {
		other := NewSecretKey(testKey(5))
		_, err := KeyPairProperties{
			PublicKey:  other.PublicKey().String(),
			PrivateKey: sk.String(),
		}.KeyPair()
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("bad private key", func(t *testing.T) {
		_, err := KeyPairProperties{PrivateKey: "ed25519:abc"}.KeyPair()
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}
