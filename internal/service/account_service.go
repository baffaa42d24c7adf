// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/asimov-account/internal/adapter"
	"github.com/MKhiriev/asimov-account/internal/crypto"
	"github.com/MKhiriev/asimov-account/internal/logger"
	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/MKhiriev/asimov-account/internal/store"
	"github.com/MKhiriev/asimov-account/models"
)

type accountService struct {
	adapter  adapter.NetworkAdapter
	keys     crypto.KeyService
	registry store.AccountRegistry
	keychain store.Keychain
	report   Reporter
	logger   *logger.Logger
}

// NewAccountService constructs the [AccountService] over the local stores,
// the network adapter and the key service. Progress goes to report.
func NewAccountService(
	storages *store.Storages,
	networkAdapter adapter.NetworkAdapter,
	keyService crypto.KeyService,
	report Reporter,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		adapter:  networkAdapter,
		keys:     keyService,
		registry: storages.Registry,
		keychain: storages.Keychain,
		report:   report,
		logger:   logger,
	}
}

// resolve parses raw into an account id and determines its network.
func resolve(raw string) (models.AccountID, network.Name, error) {
	id, err := models.ParseAccountID(raw)
	if err != nil {
		return "", "", err
	}
	net, err := network.Resolve(id)
	if err != nil {
		return "", "", err
	}
	return id, net, nil
}

// confirmOnChain checks that id exists on net.
func (s *accountService) confirmOnChain(ctx context.Context, net network.Name, id models.AccountID) error {
	if _, err := s.adapter.ViewAccount(ctx, net, id); err != nil {
		return mapViewError(err)
	}
	return nil
}

// verify runs the shared find/import checks.
func (s *accountService) verify(ctx context.Context, net network.Name, id models.AccountID) error {
	pairs, err := s.loadCredentials(ctx, net, id)
	if err != nil {
		return err
	}

	s.report.Step("Verifying account exists on network...")
	if err = s.confirmOnChain(ctx, net, id); err != nil {
		return err
	}
	if _, err = s.matchAccessKey(ctx, net, id, pairs); err != nil {
		return err
	}
	s.report.Done("Verified account exists on network")

	return nil
}

// Find implements [AccountService].
func (s *accountService) Find(ctx context.Context, account string) error {
	id, net, err := resolve(account)
	if err != nil {
		return err
	}

	if err = s.verify(ctx, net, id); err != nil {
		return err
	}

	s.report.Result("✓ Account %s is valid and exists on the network", id)
	return nil
}

// Import implements [AccountService].
func (s *accountService) Import(ctx context.Context, account string) error {
	id, net, err := resolve(account)
	if err != nil {
		return err
	}

	if err = s.verify(ctx, net, id); err != nil {
		return err
	}

	s.report.Step("Saving account info locally...")
	path, existed, err := s.registry.Mark(ctx, net, id)
	if err != nil {
		return err
	}
	if existed {
		s.report.Warn("Account already exists locally at %s", path)
		return nil
	}

	s.report.Done("Imported account to %s", path)
	return nil
}

// List implements [AccountService].
func (s *accountService) List(ctx context.Context) error {
	s.report.Step("Searching for accounts...")

	listing, err := s.registry.List(ctx)
	if err != nil {
		return err
	}

	if len(listing) == 0 {
		s.report.Info("No accounts found")
		return nil
	}

	for _, group := range listing {
		s.report.Result("%s accounts:", group.Network)
		for _, id := range group.Accounts {
			s.report.Result("  %s", id)
		}
	}
	return nil
}

// Register implements [AccountService].
func (s *accountService) Register(ctx context.Context, req RegisterRequest) error {
	id, net, err := resolve(req.Account)
	if err != nil {
		return err
	}

	funding, err := NewFunding(id, net, req.Sponsor, req.SponsorAmount)
	if err != nil {
		return err
	}

	s.report.Step("Generating credentials...")
	props, err := s.keys.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	kp, err := props.KeyPair()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	props.AccountID = id

	s.report.Step("Sending registration request...")
	outcome, err := s.createAccount(ctx, net, id, kp.PublicKey, funding)
	if err != nil {
		return err
	}
	if err = checkOutcome(outcome); err != nil {
		return err
	}
	s.report.Done("Sent registration request")

	s.report.Step("Confirming account exists...")
	if err = s.confirmOnChain(ctx, net, id); err != nil {
		return fmt.Errorf("%w: %v", ErrAccountNotConfirmed, err)
	}
	s.report.Done("Confirmed account exists")

	s.report.Step("Saving credentials to keychain...")
	if _, err = s.keychain.Save(ctx, net, id, props); err != nil {
		return fmt.Errorf("%w: %v", ErrSavingCredentials, err)
	}
	s.report.Done("Saved credentials to keychain")

	s.report.Step("Saving account info locally...")
	path, existed, err := s.registry.Mark(ctx, net, id)
	if err != nil {
		return err
	}
	if existed {
		s.report.Warn("Account already exists locally at %s", path)
		return nil
	}

	s.report.Done("Saved account to %s", path)
	return nil
}

// Delete implements [AccountService].
func (s *accountService) Delete(ctx context.Context, account, beneficiary string) error {
	id, net, err := resolve(account)
	if err != nil {
		return err
	}
	beneficiaryID, err := models.ParseAccountID(beneficiary)
	if err != nil {
		return fmt.Errorf("beneficiary: %w", err)
	}
	// Implicit accounts resolve to no network and are accepted as is.
	if bnet, err := network.Resolve(beneficiaryID); err == nil && bnet != net {
		return fmt.Errorf("%w: %s is not on %s", ErrBeneficiaryNetworkMismatch, beneficiaryID, net)
	}

	from, err := s.findSigner(ctx, net, id)
	if err != nil {
		return err
	}

	s.report.Step("Sending delete request...")
	outcome, err := s.signAndSend(ctx, net, from, id, models.DeleteAccountAction(beneficiaryID))
	if err != nil {
		return err
	}
	if err = checkOutcome(outcome); err != nil {
		return err
	}
	s.report.Done("Delete request was successful")

	path, moved, err := s.registry.Unmark(ctx, net, id)
	if err != nil {
		return err
	}
	if moved {
		s.logger.Debug().Str("path", path).Msg("moved account marker")
	}

	s.report.Done("Account %s has successfully been deleted", id)
	return nil
}
