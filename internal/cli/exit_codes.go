// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"

	"github.com/MKhiriev/asimov-account/internal/adapter"
	"github.com/MKhiriev/asimov-account/internal/config"
	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/MKhiriev/asimov-account/internal/service"
	"github.com/MKhiriev/asimov-account/internal/store"
	"github.com/MKhiriev/asimov-account/models"
)

// Process exit statuses, as defined by sysexits(3).
const (
	ExitOK          = 0
	ExitUsage       = 64
	ExitDataErr     = 65
	ExitNoUser      = 67
	ExitUnavailable = 69
	ExitSoftware    = 70
	ExitCantCreat   = 73
	ExitIOErr       = 74
	ExitTempFail    = 75
	ExitConfig      = 78
)

type exitRule struct {
	err  error
	code int
}

// exitRules is checked top to bottom; the first sentinel matched by
// [errors.Is] decides the status. Errors that wrap several sentinels (a
// submission failure wrapping an unavailable node) resolve to the earliest
// rule.
var exitRules = []exitRule{
	// usage
	{ErrNoCommand, ExitUsage},
	{service.ErrSponsorPairing, ExitUsage},
	{service.ErrSponsorRequired, ExitUsage},
	{service.ErrSponsorNetworkMismatch, ExitUsage},
	{service.ErrSponsorCannotCreate, ExitUsage},

	// data
	{models.ErrInvalidAccountID, ExitDataErr},
	{models.ErrInvalidAmount, ExitDataErr},
	{network.ErrUnknownNetwork, ExitDataErr},
	{service.ErrBeneficiaryNetworkMismatch, ExitDataErr},

	// config
	{ErrInvalidConfig, ExitConfig},
	{config.ErrHomeDirUnavailable, ExitConfig},
	{store.ErrKeychainCorrupted, ExitConfig},
	{service.ErrNoMatchingAccessKey, ExitConfig},

	// no such user
	{store.ErrCredentialsNotFound, ExitNoUser},
	{service.ErrAccountNotOnNetwork, ExitNoUser},

	// software, checked before the store and adapter errors they wrap
	{service.ErrAccountNotConfirmed, ExitSoftware},
	{service.ErrKeyGeneration, ExitSoftware},
	{service.ErrBuildingTransaction, ExitSoftware},

	// cannot create
	{service.ErrSavingCredentials, ExitCantCreat},
	{store.ErrCreatingMarker, ExitCantCreat},

	// i/o
	{store.ErrReadingRegistry, ExitIOErr},
	{store.ErrRemovingMarker, ExitIOErr},

	// temporary and permanent network failures
	{service.ErrSubmittingTransaction, ExitTempFail},
	{service.ErrTransactionFailed, ExitUnavailable},
	{adapter.ErrUnavailable, ExitUnavailable},
	{adapter.ErrMalformedResponse, ExitSoftware},
}

// ExitCode returns the process exit status for err. A nil error is
// [ExitOK]; an error no rule matches is [ExitSoftware].
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, r := range exitRules {
		if errors.Is(err, r.err) {
			return r.code
		}
	}
	return ExitSoftware
}

// matchesRule reports whether err is covered by an explicit rule.
func matchesRule(err error) bool {
	for _, r := range exitRules {
		if errors.Is(err, r.err) {
			return true
		}
	}
	return false
}
