package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Persistent flag names shared by every command.
const (
	FlagVerbose        = "verbose"
	FlagDebug          = "debug"
	FlagConfig         = "config"
	FlagHome           = "home"
	FlagCredentialsDir = "credentials-dir"
	FlagMainnetRPCURL  = "mainnet-rpc-url"
	FlagTestnetRPCURL  = "testnet-rpc-url"
	FlagFaucetURL      = "faucet-url"
	FlagRequestTimeout = "request-timeout"
)

// RegisterFlags declares all configuration flags on fs.
//
// Flags:
//
//	-v/--verbose         increase progress output (repeatable)
//	-d/--debug           enable debug diagnostics
//	-c/--config          json file path with configs
//	--home               home directory holding ".asimov"
//	--credentials-dir    credentials keychain directory
//	--mainnet-rpc-url    mainnet JSON-RPC endpoint
//	--testnet-rpc-url    testnet JSON-RPC endpoint
//	--faucet-url         testnet account-creation helper endpoint
//	--request-timeout    request timeout (e.g., "30s", "1m")
func RegisterFlags(fs *pflag.FlagSet) {
	fs.CountP(FlagVerbose, "v", "Increase progress output (repeatable)")
	fs.BoolP(FlagDebug, "d", false, "Enable debug diagnostics")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagHome, "", "Home directory holding .asimov (default: user home)")
	fs.String(FlagCredentialsDir, "", "Credentials keychain directory (default: <home>/.near-credentials)")
	fs.String(FlagMainnetRPCURL, "", "Mainnet JSON-RPC endpoint")
	fs.String(FlagTestnetRPCURL, "", "Testnet JSON-RPC endpoint")
	fs.String(FlagFaucetURL, "", "Testnet account-creation helper endpoint")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
}

// ParseFlags reads the configuration flags declared by [RegisterFlags] from
// an already parsed fs. Only flags explicitly set on the command line are
// copied, so unset flags never override lower-priority sources.
func ParseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	if changed(fs, FlagVerbose) {
		if cfg.App.Verbosity, err = fs.GetCount(FlagVerbose); err != nil {
			return nil, flagError(FlagVerbose, err)
		}
	}
	if changed(fs, FlagDebug) {
		if cfg.App.Debug, err = fs.GetBool(FlagDebug); err != nil {
			return nil, flagError(FlagDebug, err)
		}
	}
	if changed(fs, FlagRequestTimeout) {
		if cfg.Adapter.RequestTimeout, err = fs.GetDuration(FlagRequestTimeout); err != nil {
			return nil, flagError(FlagRequestTimeout, err)
		}
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{FlagConfig, &cfg.JSONFilePath},
		{FlagHome, &cfg.Storage.HomeDir},
		{FlagCredentialsDir, &cfg.Storage.CredentialsDir},
		{FlagMainnetRPCURL, &cfg.Adapter.Mainnet.RPCURL},
		{FlagTestnetRPCURL, &cfg.Adapter.Testnet.RPCURL},
		{FlagFaucetURL, &cfg.Adapter.Testnet.FaucetURL},
	}
	for _, s := range strs {
		if !changed(fs, s.name) {
			continue
		}
		if *s.dst, err = fs.GetString(s.name); err != nil {
			return nil, flagError(s.name, err)
		}
	}

	return cfg, nil
}

func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

func flagError(name string, err error) error {
	return fmt.Errorf("error reading flag --%s: %w", name, err)
}
