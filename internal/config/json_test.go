package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	raw := `{
		"app": {"verbosity": 1, "debug": true},
		"storage": {"home_dir": "/home/bob", "credentials_dir": "/keys"},
		"adapter": {
			"mainnet": {"rpc_url": "http://m"},
			"testnet": {"rpc_url": "http://t", "faucet_url": "http://f"},
			"request_timeout": "10s"
		}
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.App.Verbosity)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "/home/bob", cfg.Storage.HomeDir)
	assert.Equal(t, "/keys", cfg.Storage.CredentialsDir)
	assert.Equal(t, Endpoint{RPCURL: "http://m"}, cfg.Adapter.Mainnet)
	assert.Equal(t, Endpoint{RPCURL: "http://t", FaucetURL: "http://f"}, cfg.Adapter.Testnet)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"string", `"1m30s"`, 90 * time.Second, false},
		{"nanoseconds", `1000`, 1000, false},
		{"bad string", `"later"`, 0, true},
		{"bad type", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(30 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"30s"`, string(b))
}
