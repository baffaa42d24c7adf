package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	fs := newFlagSet(t,
		"-vv", "-d",
		"-c", "/cfg.json",
		"--home", "/h",
		"--credentials-dir", "/creds",
		"--mainnet-rpc-url", "http://m",
		"--testnet-rpc-url", "http://t",
		"--faucet-url", "http://f",
		"--request-timeout", "1m",
	)

	cfg, err := ParseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.App.Verbosity)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "/cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "/h", cfg.Storage.HomeDir)
	assert.Equal(t, "/creds", cfg.Storage.CredentialsDir)
	assert.Equal(t, "http://m", cfg.Adapter.Mainnet.RPCURL)
	assert.Equal(t, "http://t", cfg.Adapter.Testnet.RPCURL)
	assert.Equal(t, "http://f", cfg.Adapter.Testnet.FaucetURL)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
}

// TestParseFlags_UnsetFlagsStayZero verifies that only changed flags are
// copied into the config layer.
func TestParseFlags_UnsetFlagsStayZero(t *testing.T) {
	cfg, err := ParseFlags(newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_RepeatedVerbose(t *testing.T) {
	cfg, err := ParseFlags(newFlagSet(t, "-v", "--verbose", "-v"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.App.Verbosity)
}

// TestParseFlags_UnregisteredFlagSet verifies that a flag set without the
// configuration flags yields an empty layer.
func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)
	require.NoError(t, fs.Parse(nil))

	cfg, err := ParseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestRegisterFlags_InvalidDuration(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	assert.Error(t, fs.Parse([]string{"--request-timeout", "soon"}))
}
