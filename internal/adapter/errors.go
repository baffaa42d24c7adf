package adapter

import "errors"

var (
	// ErrUnavailable indicates that a node or helper could not be reached or
	// answered with a server-side failure.
	ErrUnavailable = errors.New("network service unavailable")
	// ErrUnknownAccount indicates that the queried account does not exist.
	ErrUnknownAccount = errors.New("account does not exist")
	// ErrRPC indicates any other JSON-RPC error reported by the node.
	ErrRPC = errors.New("rpc error")
	// ErrMalformedResponse indicates a response body that could not be
	// decoded.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrFaucetRejected indicates that the faucet refused the request.
	ErrFaucetRejected = errors.New("faucet rejected the request")
	// ErrFaucetUnavailable indicates that the network has no faucet.
	ErrFaucetUnavailable = errors.New("no faucet for this network")
	// ErrNetworkNotConfigured indicates a network with no endpoint.
	ErrNetworkNotConfigured = errors.New("network is not configured")
)
