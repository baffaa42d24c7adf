package network

import (
	"testing"

	"github.com/MKhiriev/asimov-account/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		account models.AccountID
		want    Name
	}{
		{"alice.near", Mainnet},
		{"app.alice.near", Mainnet},
		{"near", Mainnet},
		{"alice.testnet", Testnet},
		{"bob.alice.testnet", Testnet},
	}

	for _, tt := range tests {
		t.Run(string(tt.account), func(t *testing.T) {
			got, err := Resolve(tt.account)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_UnknownSuffix(t *testing.T) {
	for _, id := range []models.AccountID{
		"alice.betanet",
		"alice.nearx",
		"testnet.alice",
		"98793cd91a3f870fb126f66285808c7e094afcfc4eda8a970f6648cdf0dbd6de",
	} {
		_, err := Resolve(id)
		assert.ErrorIs(t, err, ErrUnknownNetwork, id)
	}
}

func TestParseName(t *testing.T) {
	n, err := ParseName("testnet")
	require.NoError(t, err)
	assert.Equal(t, Testnet, n)

	n, err = ParseName("mainnet")
	require.NoError(t, err)
	assert.Equal(t, Mainnet, n)

	for _, s := range []string{"", "near", "Testnet", ".testnet"} {
		_, err := ParseName(s)
		assert.ErrorIs(t, err, ErrInvalidName, s)
	}
}

func TestName_Facts(t *testing.T) {
	assert.Equal(t, "near", Mainnet.Suffix())
	assert.Equal(t, "testnet", Testnet.Suffix())
	assert.Equal(t, models.AccountID("near"), Mainnet.RootAccount())
	assert.Equal(t, models.AccountID("testnet"), Testnet.RootAccount())
	assert.True(t, Testnet.HasFaucet())
	assert.False(t, Mainnet.HasFaucet())
	assert.Equal(t, "testnet", Testnet.String())
}
