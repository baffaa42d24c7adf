package service

import (
	"testing"

	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/MKhiriev/asimov-account/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFunding(t *testing.T) {
	tests := []struct {
		name    string
		id      models.AccountID
		net     network.Name
		sponsor string
		amount  string
		want    Funding
		wantErr error
	}{
		{"faucet on testnet", "alice.testnet", network.Testnet, "", "", FaucetFunding{}, nil},
		{"no faucet on mainnet", "alice.near", network.Mainnet, "", "", nil, ErrSponsorRequired},
		{"sponsor without amount", "alice.testnet", network.Testnet, "bob.testnet", "", nil, ErrSponsorPairing},
		{"amount without sponsor", "alice.testnet", network.Testnet, "", "1 NEAR", nil, ErrSponsorPairing},
		{"invalid sponsor", "alice.testnet", network.Testnet, "Bob", "1 NEAR", nil, models.ErrInvalidAccountID},
		{"invalid amount", "alice.testnet", network.Testnet, "bob.testnet", "lots", nil, models.ErrInvalidAmount},
		{"zero amount", "alice.testnet", network.Testnet, "bob.testnet", "0 NEAR", nil, models.ErrInvalidAmount},
		{"sponsor on other network", "alice.testnet", network.Testnet, "bob.near", "1 NEAR", nil, ErrSponsorNetworkMismatch},
		{"sponsor on no network", "alice.testnet", network.Testnet, "bob.example", "1 NEAR", nil, ErrSponsorNetworkMismatch},
		{"nested under someone else", "x.carol.testnet", network.Testnet, "bob.testnet", "1 NEAR", nil, ErrSponsorCannotCreate},
		{"grandchild of sponsor", "x.y.bob.testnet", network.Testnet, "bob.testnet", "1 NEAR", nil, ErrSponsorCannotCreate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFunding(tt.id, tt.net, tt.sponsor, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFunding_Sponsor(t *testing.T) {
	t.Run("sub-account of sponsor", func(t *testing.T) {
		got, err := NewFunding("app.bob.testnet", network.Testnet, "bob.testnet", "1.5 NEAR")
		require.NoError(t, err)

		f, ok := got.(SponsorFunding)
		require.True(t, ok)
		assert.Equal(t, models.AccountID("bob.testnet"), f.Sponsor)
		assert.Equal(t, "1.5 NEAR", f.Amount.String())
	})

	t.Run("top-level account", func(t *testing.T) {
		got, err := NewFunding("dave.near", network.Mainnet, "bob.near", "1 NEAR")
		require.NoError(t, err)
		assert.IsType(t, SponsorFunding{}, got)
	})

	t.Run("sponsor may fund on testnet", func(t *testing.T) {
		got, err := NewFunding("dave.testnet", network.Testnet, "bob.testnet", "1 NEAR")
		require.NoError(t, err)
		assert.IsType(t, SponsorFunding{}, got)
	})
}
