package service

import "errors"

// Usage errors: the arguments are inconsistent.
var (
	// ErrSponsorPairing is returned when only one of sponsor and sponsor
	// amount is given.
	ErrSponsorPairing = errors.New("options --sponsor and --sponsor-amount are required together")

	// ErrSponsorRequired is returned when no sponsor is given for a network
	// without a faucet.
	ErrSponsorRequired = errors.New("account registration on this network requires a sponsor and an amount to be specified (--sponsor and --sponsor-amount)")

	// ErrSponsorNetworkMismatch is returned when the sponsor lives on a
	// different network than the new account.
	ErrSponsorNetworkMismatch = errors.New("the sponsor account must be on the same network as the new account")

	// ErrSponsorCannotCreate is returned when the new account is neither a
	// sub-account of the sponsor nor a top-level account of the network.
	ErrSponsorCannotCreate = errors.New("the sponsor can only create its own sub-accounts or top-level accounts")
)

// Data errors.
var (
	// ErrBeneficiaryNetworkMismatch is returned when the beneficiary of a
	// deletion belongs to another network.
	ErrBeneficiaryNetworkMismatch = errors.New("the beneficiary account must be on the same network as the deleted account")
)

// Errors of the network and keychain steps.
var (
	// ErrAccountNotOnNetwork is returned when the account is known locally
	// but does not exist on its network.
	ErrAccountNotOnNetwork = errors.New("account doesn't exist on the network")

	// ErrNoMatchingAccessKey is returned when none of the local keys is a
	// full-access key of the account.
	ErrNoMatchingAccessKey = errors.New("none of the keys in the keychain is a full access key of the account")

	// ErrKeyGeneration is returned when generating new credentials fails.
	ErrKeyGeneration = errors.New("failed to generate credentials")

	// ErrBuildingTransaction is returned when a transaction cannot be built
	// or signed.
	ErrBuildingTransaction = errors.New("unexpected error while creating transaction")

	// ErrSubmittingTransaction is returned when a transaction or faucet
	// request could not be submitted.
	ErrSubmittingTransaction = errors.New("failed to submit transaction")

	// ErrTransactionFailed is returned when a submitted transaction reports
	// an explicit failure.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrAccountNotConfirmed is returned when a newly created account cannot
	// be seen on the network.
	ErrAccountNotConfirmed = errors.New("account does not seem to exist")

	// ErrSavingCredentials is returned when the new key cannot be written to
	// the keychain.
	ErrSavingCredentials = errors.New("failed to save credentials to keychain")
)
