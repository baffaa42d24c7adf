// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the NEAR networks.
//
// The primary abstraction is [NetworkAdapter], which decouples the service
// layer from the JSON-RPC protocol of the nodes and from the account-creation
// helper (faucet). The package ships a resty-based implementation
// ([NewNetworkAdapter]) holding one client per network.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// JSON-RPC error causes by errors_mapper.go so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrUnknownAccount]
// for an UNKNOWN_ACCOUNT cause, [ErrUnavailable] for 5xx responses).
package adapter

import (
	"context"

	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/MKhiriev/asimov-account/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/network_adapter_mock.go -package=mock

// NetworkAdapter defines communication with the nodes of a network.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type NetworkAdapter interface {
	// ViewAccount fetches the on-chain state of id at final finality.
	// Returns [ErrUnknownAccount] (wrapped) if the account does not exist.
	ViewAccount(ctx context.Context, net network.Name, id models.AccountID) (models.AccountView, error)

	// ViewAccessKeyList fetches all access keys of id at final finality.
	// Returns [ErrUnknownAccount] (wrapped) if the account does not exist.
	ViewAccessKeyList(ctx context.Context, net network.Name, id models.AccountID) (models.AccessKeyList, error)

	// LatestBlockHash returns the hash of the latest final block, used as the
	// recency anchor of new transactions.
	LatestBlockHash(ctx context.Context, net network.Name) ([32]byte, error)

	// SendTransaction submits a signed transaction and waits until it is
	// optimistically executed. A returned outcome may still carry a
	// Failure status; a nil error only means the node accepted it.
	SendTransaction(ctx context.Context, net network.Name, tx models.SignedTransaction) (models.ExecutionOutcome, error)

	// CreateAccountViaFaucet asks the network's account-creation helper to
	// create and fund id with pk as its full-access key. Returns
	// [ErrFaucetUnavailable] if the network has no faucet configured.
	CreateAccountViaFaucet(ctx context.Context, net network.Name, id models.AccountID, pk models.PublicKey) (models.ExecutionOutcome, error)
}
