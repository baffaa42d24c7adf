// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network names the two deployment environments an account can live
// on and resolves an account id to its environment.
//
// Resolution is purely lexical: the last dot-separated label of the account
// id decides the network. No on-chain lookup is performed.
package network

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/asimov-account/models"
)

// Name is a network name. The zero value is not a valid network.
type Name string

const (
	Mainnet Name = "mainnet"
	Testnet Name = "testnet"
)

// All lists every known network in display order.
var All = []Name{Mainnet, Testnet}

var (
	// ErrUnknownNetwork is returned when an account id suffix matches no
	// known network.
	ErrUnknownNetwork = errors.New("unable to determine network name from the account")
	// ErrInvalidName is returned by ParseName for unknown network names.
	ErrInvalidName = errors.New("unknown network name")
)

// suffixes maps a top-level account label to its network.
var suffixes = map[string]Name{
	"near":    Mainnet,
	"testnet": Testnet,
}

// Resolve returns the network the account belongs to, as determined by its
// top-level label: ".near" is mainnet, ".testnet" is testnet.
func Resolve(id models.AccountID) (Name, error) {
	if n, ok := suffixes[id.TopLevel()]; ok {
		return n, nil
	}
	return "", fmt.Errorf("%w %s; the account must end with .near for mainnet or .testnet for testnet", ErrUnknownNetwork, id)
}

// ParseName validates a network name such as a registry directory name.
func ParseName(s string) (Name, error) {
	switch n := Name(s); n {
	case Mainnet, Testnet:
		return n, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidName, s)
}

// String returns the network name.
func (n Name) String() string {
	return string(n)
}

// Suffix returns the top-level account label of the network.
func (n Name) Suffix() string {
	for suffix, name := range suffixes {
		if name == n {
			return suffix
		}
	}
	return ""
}

// RootAccount is the top-level account that creates named accounts on
// behalf of a sponsor (the linkdrop contract).
func (n Name) RootAccount() models.AccountID {
	return models.AccountID(n.Suffix())
}

// HasFaucet reports whether the network offers a faucet that funds new
// accounts without a sponsor.
func (n Name) HasFaucet() bool {
	return n == Testnet
}
