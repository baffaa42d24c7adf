package store

import "errors"

// Sentinel errors returned by the registry. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrReadingRegistry is returned when the registry base directory or a
	// network directory exists but cannot be read.
	ErrReadingRegistry = errors.New("failed to read accounts directory")

	// ErrCreatingMarker is returned when the network directory or the
	// marker file cannot be created.
	ErrCreatingMarker = errors.New("failed to save account")

	// ErrRemovingMarker is returned when an existing marker cannot be moved
	// to its hidden variant.
	ErrRemovingMarker = errors.New("failed to remove account file")
)

// Sentinel errors returned by the keychain.
var (
	// ErrCredentialsNotFound is returned when no credential file exists for
	// the account.
	ErrCredentialsNotFound = errors.New("unable to find keys for the account")

	// ErrKeychainCorrupted is returned when a credential file exists but
	// cannot be read or does not hold a valid key pair.
	ErrKeychainCorrupted = errors.New("couldn't access credentials in keychain")

	// ErrWritingCredentials is returned when a credential file cannot be
	// written.
	ErrWritingCredentials = errors.New("failed to write credentials")
)
