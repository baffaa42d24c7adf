// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// asimov-account CLI. It aggregates all sub-configurations and is populated
// by merging built-in defaults, an optional JSON file, environment variables
// and command-line flags.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide switches: verbosity and debug mode.
	App App `envPrefix:"ASIMOV_"`

	// Storage holds the local filesystem locations: the home directory that
	// contains the account registry and the credentials keychain directory.
	Storage Storage `envPrefix:"ASIMOV_STORAGE_"`

	// Adapter holds the per-network RPC and faucet endpoints.
	Adapter Adapter `envPrefix:"ASIMOV_ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the ASIMOV_CONFIG environment variable or the
	// -c / --config flag.
	JSONFilePath string `env:"ASIMOV_CONFIG"`
}

// App holds process-wide switches.
type App struct {
	// Verbosity is the progress output level (number of -v flags).
	// Env: ASIMOV_VERBOSE
	Verbosity int `env:"VERBOSE"`

	// Debug enables debug-level diagnostics with caller information.
	// Env: ASIMOV_DEBUG
	Debug bool `env:"DEBUG"`
}

// Storage holds local filesystem locations.
type Storage struct {
	// HomeDir is the directory under which ".asimov/accounts" lives.
	// Defaults to the current user's home directory.
	// Env: ASIMOV_STORAGE_HOME_DIR
	HomeDir string `env:"HOME_DIR"`

	// CredentialsDir is the credentials keychain directory.
	// Defaults to "<home>/.near-credentials".
	// Env: ASIMOV_STORAGE_CREDENTIALS_DIR
	CredentialsDir string `env:"CREDENTIALS_DIR"`
}

// Adapter holds the endpoints of the external network services.
type Adapter struct {
	// Mainnet holds the mainnet endpoints.
	Mainnet Endpoint `envPrefix:"MAINNET_"`

	// Testnet holds the testnet endpoints.
	Testnet Endpoint `envPrefix:"TESTNET_"`

	// RequestTimeout bounds every outbound request (e.g. "30s", "1m").
	// Env: ASIMOV_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Endpoint holds the service URLs of one network.
type Endpoint struct {
	// RPCURL is the JSON-RPC endpoint.
	// Env: ASIMOV_ADAPTER_<NETWORK>_RPC_URL
	RPCURL string `env:"RPC_URL"`

	// FaucetURL is the account-creation helper endpoint. Empty means the
	// network has no faucet.
	// Env: ASIMOV_ADAPTER_<NETWORK>_FAUCET_URL
	FaucetURL string `env:"FAUCET_URL"`
}

// Built-in defaults.
const (
	DefaultMainnetRPCURL    = "https://rpc.mainnet.near.org"
	DefaultTestnetRPCURL    = "https://rpc.testnet.near.org"
	DefaultTestnetFaucetURL = "https://helper.nearprotocol.com/account"
	DefaultRequestTimeout   = 30 * time.Second
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			Mainnet:        Endpoint{RPCURL: DefaultMainnetRPCURL},
			Testnet:        Endpoint{RPCURL: DefaultTestnetRPCURL, FaucetURL: DefaultTestnetFaucetURL},
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables (after loading ./.env, if present)
//  4. Command-line flags set on fs
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
