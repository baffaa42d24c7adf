package store

import (
	"context"

	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/MKhiriev/asimov-account/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRegistry is the local record of known accounts: one zero-byte
// marker file per account under <base>/<network>/<account-id>. File
// existence is membership; deleted accounts are renamed to a hidden
// ".<account-id>" sibling instead of being removed.
type AccountRegistry interface {
	// List scans the registry and returns the accounts grouped by network.
	// Networks and accounts are sorted. Entries that are not valid network
	// directories or account files are skipped and logged. A missing base
	// directory yields an empty listing.
	List(ctx context.Context) ([]NetworkAccounts, error)

	// Mark creates the marker of id under net, creating the network
	// directory if needed. It returns the marker path and whether the marker
	// already existed, which is not an error.
	Mark(ctx context.Context, net network.Name, id models.AccountID) (path string, existed bool, err error)

	// Unmark renames the marker of id to its hidden variant. It returns the
	// new path and whether a marker was moved; an absent marker is not an
	// error.
	Unmark(ctx context.Context, net network.Name, id models.AccountID) (path string, moved bool, err error)
}

// Keychain stores account credentials in the near-cli file layout under
// <credentials-dir>/<network>/.
type Keychain interface {
	// Lookup returns every key pair stored for id on net, deduplicated by
	// public key. Returns [ErrCredentialsNotFound] (wrapped) when there are
	// none.
	Lookup(ctx context.Context, net network.Name, id models.AccountID) ([]models.KeyPair, error)

	// Save persists props as a credential of id on net and returns the path
	// of the written key file.
	Save(ctx context.Context, net network.Name, id models.AccountID, props models.KeyPairProperties) (string, error)
}
