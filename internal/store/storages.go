package store

import (
	"github.com/MKhiriev/asimov-account/internal/config"
	"github.com/MKhiriev/asimov-account/internal/logger"
)

// Storages groups the local stores used by the service layer.
type Storages struct {
	// Registry is the marker-file record of known accounts.
	Registry AccountRegistry
	// Keychain is the credentials keychain.
	Keychain Keychain
}

// NewStorages builds the local stores from the resolved storage
// configuration. Nothing touches the filesystem until first use.
func NewStorages(cfg config.CLIStorage, logger *logger.Logger) *Storages {
	logger.Debug().
		Str("registry_dir", cfg.RegistryDir).
		Str("credentials_dir", cfg.CredentialsDir).
		Msg("creating storages")

	return &Storages{
		Registry: NewAccountRegistry(cfg.RegistryDir),
		Keychain: NewFileKeychain(cfg.CredentialsDir),
	}
}
