package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SLIP-0010 ed25519 test vector 1.
const slip10Seed = "000102030405060708090a0b0c0d0e0f"

func TestDeriveSLIP10_Vector1(t *testing.T) {
	seed, err := hex.DecodeString(slip10Seed)
	require.NoError(t, err)

	tests := []struct {
		path string
		key  string
	}{
		{"m", "2b4be7f19ee27bbf30c667b642d5f4aa69fd169872f8fc3059c08ebae2eb19e7"},
		{"m/0'", "68e0fe46dfb67e368c75379acec591dad19df3cde26e63b93a8e704f1dade7a3"},
		{"m/0'/1'", "b1d0bad404bf35da785a64ca1ac54b2617211d2777696fbffaf208f746ae84f2"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := deriveSLIP10(seed, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.key, hex.EncodeToString(got))
		})
	}
}

func TestDeriveSLIP10_InvalidPath(t *testing.T) {
	seed, err := hex.DecodeString(slip10Seed)
	require.NoError(t, err)

	for _, p := range []string{"", "44'/397'", "m/44", "m/x'", "m/44'/-1'"} {
		t.Run(p, func(t *testing.T) {
			_, err := deriveSLIP10(seed, p)
			assert.ErrorIs(t, err, ErrInvalidDerivationPath)
		})
	}
}

func TestDeriveSLIP10_DefaultPath(t *testing.T) {
	seed, err := hex.DecodeString(slip10Seed)
	require.NoError(t, err)

	a, err := deriveSLIP10(seed, DefaultHDPath)
	require.NoError(t, err)
	assert.Len(t, a, 32)

	b, err := deriveSLIP10(seed, "m/44'/397'/1'")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
