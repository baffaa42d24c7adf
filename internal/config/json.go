package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		Verbosity int  `json:"verbosity"`
		Debug     bool `json:"debug"`
	} `json:"app,omitempty"`

	Storage struct {
		HomeDir        string `json:"home_dir"`
		CredentialsDir string `json:"credentials_dir"`
	} `json:"storage,omitempty"`

	Adapter struct {
		Mainnet        jsonEndpoint `json:"mainnet"`
		Testnet        jsonEndpoint `json:"testnet"`
		RequestTimeout Duration     `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

type jsonEndpoint struct {
	RPCURL    string `json:"rpc_url"`
	FaucetURL string `json:"faucet_url"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Verbosity: jsonCfg.App.Verbosity,
			Debug:     jsonCfg.App.Debug,
		},
		Storage: Storage{
			HomeDir:        jsonCfg.Storage.HomeDir,
			CredentialsDir: jsonCfg.Storage.CredentialsDir,
		},
		Adapter: Adapter{
			Mainnet:        Endpoint(jsonCfg.Adapter.Mainnet),
			Testnet:        Endpoint(jsonCfg.Adapter.Testnet),
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
