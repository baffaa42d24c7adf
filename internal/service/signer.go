package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/MKhiriev/asimov-account/models"
)

// signer is a local key that is a full-access key of the account on chain.
type signer struct {
	account models.AccountID
	keyPair models.KeyPair
	// nonce is the current on-chain nonce of the access key.
	nonce uint64
}

// loadCredentials looks id up in the keychain.
func (s *accountService) loadCredentials(ctx context.Context, net network.Name, id models.AccountID) ([]models.KeyPair, error) {
	s.report.Step("Checking for credentials in keychain...")

	pairs, err := s.keychain.Lookup(ctx, net, id)
	if err != nil {
		return nil, err
	}

	s.report.Done("Found credentials in keychain")
	return pairs, nil
}

// matchAccessKey returns the first local key pair that is a full-access key
// of id on net.
func (s *accountService) matchAccessKey(ctx context.Context, net network.Name, id models.AccountID, pairs []models.KeyPair) (signer, error) {
	list, err := s.adapter.ViewAccessKeyList(ctx, net, id)
	if err != nil {
		return signer{}, mapViewError(err)
	}

	for _, kp := range pairs {
		for _, key := range list.Keys {
			if key.PublicKey != kp.PublicKey || !key.AccessKey.IsFullAccess() {
				continue
			}
			s.logger.Debug().
				Str("account_id", id.String()).
				Str("public_key", kp.PublicKey.String()).
				Uint64("nonce", key.AccessKey.Nonce).
				Msg("selected signer")
			return signer{account: id, keyPair: kp, nonce: key.AccessKey.Nonce}, nil
		}
	}

	return signer{}, fmt.Errorf("%w %s", ErrNoMatchingAccessKey, id)
}

// findSigner loads the local credentials of id and selects the one usable
// for signing.
func (s *accountService) findSigner(ctx context.Context, net network.Name, id models.AccountID) (signer, error) {
	pairs, err := s.loadCredentials(ctx, net, id)
	if err != nil {
		return signer{}, err
	}
	return s.matchAccessKey(ctx, net, id, pairs)
}

// signAndSend builds a transaction of actions from signer to receiver,
// signs it and submits it. A Failure status is not an error here.
func (s *accountService) signAndSend(ctx context.Context, net network.Name, from signer, receiver models.AccountID, actions ...models.Action) (models.ExecutionOutcome, error) {
	blockHash, err := s.adapter.LatestBlockHash(ctx, net)
	if err != nil {
		return models.ExecutionOutcome{}, mapSubmitError(err)
	}

	tx := models.Transaction{
		SignerID:   from.account.String(),
		PublicKey:  from.keyPair.PublicKey,
		Nonce:      from.nonce + 1,
		ReceiverID: receiver.String(),
		BlockHash:  blockHash,
		Actions:    actions,
	}

	signed, hash, err := s.keys.SignTransaction(tx, from.keyPair.SecretKey)
	if err != nil {
		return models.ExecutionOutcome{}, fmt.Errorf("%w: %v", ErrBuildingTransaction, err)
	}
	s.logger.Debug().Str("hash", hash).Str("receiver_id", receiver.String()).Msg("submitting transaction")

	outcome, err := s.adapter.SendTransaction(ctx, net, signed)
	if err != nil {
		return models.ExecutionOutcome{}, mapSubmitError(err)
	}
	return outcome, nil
}

// checkOutcome turns an explicit Failure status into [ErrTransactionFailed].
// Other non-success statuses pass and are confirmed by later steps.
func checkOutcome(outcome models.ExecutionOutcome) error {
	if outcome.Status.IsFailure() {
		return fmt.Errorf("%w: %s", ErrTransactionFailed, outcome.Status)
	}
	return nil
}
