package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/asimov-account/internal/adapter"
)

// mapViewError translates an adapter error of a view query into a service
// error. Errors other than an unknown account keep their adapter sentinel.
func mapViewError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnknownAccount) {
		return fmt.Errorf("%w: %v", ErrAccountNotOnNetwork, err)
	}
	return err
}

// mapSubmitError marks an adapter error of a submission. The adapter
// sentinel stays reachable with [errors.Is].
func mapSubmitError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrSubmittingTransaction, err)
}
