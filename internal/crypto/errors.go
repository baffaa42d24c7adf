package crypto

import "errors"

var (
	// ErrInvalidSeedPhrase is returned when a mnemonic fails the BIP-39
	// word list or checksum validation.
	ErrInvalidSeedPhrase = errors.New("invalid seed phrase")
	// ErrInvalidDerivationPath is returned for paths that are not a list of
	// hardened indexes under "m".
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
	// ErrSerializingTransaction is returned when a transaction cannot be
	// encoded for signing.
	ErrSerializingTransaction = errors.New("error serializing transaction")
)
