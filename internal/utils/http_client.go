package utils

import (
	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent identifies the CLI to RPC nodes and helpers.
const DefaultUserAgent = "asimov-account"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetBody(payload).Post("https://rpc.testnet.near.org")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance that accepts
// JSON and sends [DefaultUserAgent].
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	c := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", DefaultUserAgent)
	return &HTTPClient{Client: c}
}
