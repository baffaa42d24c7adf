// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
)

// Reporter receives user-facing progress of a command. Step, Done, Warn and
// Info are gated by verbosity; Result is always shown.
type Reporter interface {
	Step(format string, args ...any)
	Done(format string, args ...any)
	Warn(format string, args ...any)
	Info(format string, args ...any)
	Result(format string, args ...any)
}

// AccountService implements the account commands. Every method is a fixed
// sequence of keychain, network and registry calls; the first failure ends
// the command and nothing already done is rolled back.
type AccountService interface {
	// Find checks that local credentials exist for the account, that the
	// account exists on its network and that one of the local keys is a
	// full-access key of it.
	Find(ctx context.Context, account string) error

	// Import performs the checks of Find and then records the account in
	// the local registry. An account already recorded is a warning, not an
	// error.
	Import(ctx context.Context, account string) error

	// List prints the accounts of the local registry grouped by network.
	List(ctx context.Context) error

	// Register creates the account on its network with a freshly generated
	// key, funded by the faucet or by a sponsor account, then stores the key
	// in the keychain and records the account in the local registry.
	Register(ctx context.Context, req RegisterRequest) error

	// Delete deletes the account on its network, transferring the remaining
	// balance to beneficiary, and moves its registry marker aside.
	Delete(ctx context.Context, account, beneficiary string) error
}

// RegisterRequest holds the raw arguments of the register command.
type RegisterRequest struct {
	Account string
	// Sponsor and SponsorAmount are both set or both empty.
	Sponsor       string
	SponsorAmount string
}
