package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/MKhiriev/asimov-account/models"
)

// createAccountGas is the gas attached to a linkdrop create_account call
// (30 Tgas).
const createAccountGas uint64 = 30_000_000_000_000

type createAccountArgs struct {
	NewAccountID string `json:"new_account_id"`
	NewPublicKey string `json:"new_public_key"`
}

// createAccount submits the account creation chosen by funding.
func (s *accountService) createAccount(ctx context.Context, net network.Name, id models.AccountID, pk models.PublicKey, funding Funding) (models.ExecutionOutcome, error) {
	switch f := funding.(type) {
	case FaucetFunding:
		outcome, err := s.adapter.CreateAccountViaFaucet(ctx, net, id, pk)
		if err != nil {
			return models.ExecutionOutcome{}, mapSubmitError(err)
		}
		return outcome, nil

	case SponsorFunding:
		from, err := s.findSigner(ctx, net, f.Sponsor)
		if err != nil {
			return models.ExecutionOutcome{}, err
		}
		receiver, actions, err := sponsorActions(net, id, pk, f)
		if err != nil {
			return models.ExecutionOutcome{}, err
		}
		outcome, err := s.signAndSend(ctx, net, from, receiver, actions...)
		if err != nil {
			return models.ExecutionOutcome{}, err
		}
		if receiver != id {
			if err = checkCreateAccountResult(id, outcome); err != nil {
				return models.ExecutionOutcome{}, err
			}
		}
		return outcome, nil

	default:
		return models.ExecutionOutcome{}, fmt.Errorf("%w: unsupported funding %T", ErrBuildingTransaction, funding)
	}
}

// sponsorActions returns the receiver and actions of a sponsored account
// creation. A sub-account of the sponsor is created directly; any other
// top-level account goes through the network's root account.
func sponsorActions(net network.Name, id models.AccountID, pk models.PublicKey, f SponsorFunding) (models.AccountID, []models.Action, error) {
	if id.IsSubAccountOf(f.Sponsor) {
		return id, []models.Action{
			models.CreateAccountAction(),
			models.TransferAction(f.Amount),
			models.AddFullAccessKeyAction(pk),
		}, nil
	}

	call, err := models.FunctionCallAction("create_account", createAccountArgs{
		NewAccountID: id.String(),
		NewPublicKey: pk.String(),
	}, createAccountGas, f.Amount)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingTransaction, err)
	}
	return net.RootAccount(), []models.Action{call}, nil
}

// checkCreateAccountResult rejects a create_account call that succeeded as a
// transaction but returned false, which the root account does when the
// account could not be created.
func checkCreateAccountResult(id models.AccountID, outcome models.ExecutionOutcome) error {
	value, err := outcome.Status.SuccessValue()
	if err != nil {
		return fmt.Errorf("%w: create_account for %s: %v", ErrTransactionFailed, id, err)
	}
	if bytes.Equal(bytes.TrimSpace(value), []byte("false")) {
		return fmt.Errorf("%w: create_account for %s returned false", ErrTransactionFailed, id)
	}
	return nil
}
