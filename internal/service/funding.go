package service

import (
	"fmt"

	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/MKhiriev/asimov-account/models"
)

// Funding is how a new account gets its initial balance: exactly one of
// [FaucetFunding] or [SponsorFunding].
type Funding interface {
	isFunding()
}

// FaucetFunding funds the account through the network's faucet.
type FaucetFunding struct{}

// SponsorFunding funds the account from an existing sponsor account.
type SponsorFunding struct {
	Sponsor models.AccountID
	Amount  models.NearToken
}

func (FaucetFunding) isFunding()  {}
func (SponsorFunding) isFunding() {}

// NewFunding validates the funding arguments of registering id on net and
// returns the chosen variant. It performs no I/O.
//
// Both sponsor and amount empty selects the faucet, which must exist on net.
// Exactly one of them set is [ErrSponsorPairing]. A sponsor must live on net
// and must be able to create id: id is either its sub-account or a
// top-level account of the network.
func NewFunding(id models.AccountID, net network.Name, sponsor, amount string) (Funding, error) {
	switch {
	case sponsor == "" && amount == "":
		if !net.HasFaucet() {
			return nil, ErrSponsorRequired
		}
		return FaucetFunding{}, nil
	case sponsor == "" || amount == "":
		return nil, ErrSponsorPairing
	}

	sponsorID, err := models.ParseAccountID(sponsor)
	if err != nil {
		return nil, fmt.Errorf("sponsor: %w", err)
	}
	tokens, err := models.ParseNearToken(amount)
	if err != nil {
		return nil, fmt.Errorf("sponsor amount: %w", err)
	}
	if tokens.IsZero() {
		return nil, fmt.Errorf("sponsor amount: %w: must be greater than zero", models.ErrInvalidAmount)
	}

	sponsorNet, err := network.Resolve(sponsorID)
	if err != nil || sponsorNet != net {
		return nil, fmt.Errorf("%w: %s is not on %s", ErrSponsorNetworkMismatch, sponsorID, net)
	}
	if !id.IsSubAccountOf(sponsorID) && !id.IsSubAccountOf(net.RootAccount()) {
		return nil, fmt.Errorf("%w: %s cannot create %s", ErrSponsorCannotCreate, sponsorID, id)
	}

	return SponsorFunding{Sponsor: sponsorID, Amount: tokens}, nil
}
