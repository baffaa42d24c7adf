// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// MinAccountIDLen is the shortest account id accepted by the network.
	MinAccountIDLen = 2
	// MaxAccountIDLen is the longest account id accepted by the network.
	MaxAccountIDLen = 64
)

// ErrInvalidAccountID is returned when a string is not a valid account id.
var ErrInvalidAccountID = errors.New("invalid account id")

// accountIDPattern matches lowercase alphanumeric parts joined by single
// '-', '_' or '.' separators.
var accountIDPattern = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

// AccountID is a validated, human-readable account name such as
// "alice.testnet". The zero value is not a valid account id.
type AccountID string

// ParseAccountID validates s and returns it as an [AccountID].
//
// Leading and trailing whitespace is not trimmed: account ids are taken
// verbatim from the command line and from file names.
func ParseAccountID(s string) (AccountID, error) {
	if len(s) < MinAccountIDLen || len(s) > MaxAccountIDLen {
		return "", fmt.Errorf("%w: %q must be between %d and %d characters long",
			ErrInvalidAccountID, s, MinAccountIDLen, MaxAccountIDLen)
	}
	if !accountIDPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q may only contain lowercase letters, digits and single '-', '_' or '.' separators",
			ErrInvalidAccountID, s)
	}
	return AccountID(s), nil
}

// String returns the account id as a plain string.
func (a AccountID) String() string {
	return string(a)
}

// TopLevel returns the last dot-separated label, e.g. "testnet" for
// "alice.testnet".
func (a AccountID) TopLevel() string {
	s := string(a)
	if idx := strings.LastIndexByte(s, '.'); idx != -1 {
		return s[idx+1:]
	}
	return s
}

// IsSubAccountOf reports whether a is a direct sub-account of parent,
// e.g. "bob.alice.testnet" of "alice.testnet".
func (a AccountID) IsSubAccountOf(parent AccountID) bool {
	prefix, ok := strings.CutSuffix(string(a), "."+string(parent))
	return ok && prefix != "" && !strings.Contains(prefix, ".")
}
