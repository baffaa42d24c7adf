// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/spf13/pflag"
)

// CLIApp holds resolved process-wide switches.
type CLIApp struct {
	Verbosity int
	Debug     bool
}

// CLIStorage holds resolved filesystem locations.
type CLIStorage struct {
	// HomeDir is the resolved home directory.
	HomeDir string
	// RegistryDir is "<home>/.asimov/accounts".
	RegistryDir string
	// CredentialsDir is the resolved keychain directory.
	CredentialsDir string
}

// CLIAdapter holds resolved network endpoints.
type CLIAdapter struct {
	// Endpoints maps every known network to its service URLs.
	Endpoints map[network.Name]Endpoint
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
}

// CLIConfig is the configuration the CLI runs with, assembled from
// [StructuredConfig].
type CLIConfig struct {
	App     CLIApp
	Storage CLIStorage
	Adapter CLIAdapter
}

// userHomeDir is replaced in tests.
var userHomeDir = os.UserHomeDir

// GetCLIConfig builds and validates the CLI config view from the merged
// structured configuration.
//
// The home directory falls back to the current user's home; if that cannot
// be determined the returned error wraps [ErrHomeDirUnavailable].
func GetCLIConfig(fs *pflag.FlagSet) (*CLIConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return newCLIConfig(cfg)
}

func newCLIConfig(cfg *StructuredConfig) (*CLIConfig, error) {
	home := cfg.Storage.HomeDir
	if home == "" {
		dir, err := userHomeDir()
		if err != nil || dir == "" {
			return nil, fmt.Errorf("%w: %v", ErrHomeDirUnavailable, err)
		}
		home = dir
	}

	credentials := cfg.Storage.CredentialsDir
	if credentials == "" {
		credentials = filepath.Join(home, ".near-credentials")
	}

	cliCfg := &CLIConfig{
		App: CLIApp{
			Verbosity: cfg.App.Verbosity,
			Debug:     cfg.App.Debug,
		},
		Storage: CLIStorage{
			HomeDir:        home,
			RegistryDir:    filepath.Join(home, ".asimov", "accounts"),
			CredentialsDir: credentials,
		},
		Adapter: CLIAdapter{
			Endpoints: map[network.Name]Endpoint{
				network.Mainnet: cfg.Adapter.Mainnet,
				network.Testnet: cfg.Adapter.Testnet,
			},
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return cliCfg, cliCfg.validate()
}
