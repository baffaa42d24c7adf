// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged [StructuredConfig] before it is resolved into a
// [CLIConfig]. Fields that get defaults later (home and credentials
// directories) may still be empty here.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Verbosity < 0 {
		return fmt.Errorf("%w: negative verbosity %d", ErrInvalidAppConfigs, cfg.App.Verbosity)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *CLIConfig) validate() error {
	if cfg.Storage.HomeDir == "" || cfg.Storage.RegistryDir == "" || cfg.Storage.CredentialsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	for name, ep := range cfg.Adapter.Endpoints {
		if err := validateURL(ep.RPCURL); err != nil {
			return fmt.Errorf("%w: %s rpc url: %v", ErrInvalidAdapterConfigs, name, err)
		}
		if ep.FaucetURL == "" {
			continue
		}
		if err := validateURL(ep.FaucetURL); err != nil {
			return fmt.Errorf("%w: %s faucet url: %v", ErrInvalidAdapterConfigs, name, err)
		}
	}

	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty url")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
