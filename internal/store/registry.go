// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/asimov-account/internal/logger"
	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/MKhiriev/asimov-account/models"
)

// NetworkAccounts is one group of a registry listing.
type NetworkAccounts struct {
	Network  network.Name
	Accounts []models.AccountID
}

// accountRegistry is the marker-file implementation of [AccountRegistry].
type accountRegistry struct {
	baseDir string
}

// NewAccountRegistry constructs an [AccountRegistry] rooted at baseDir
// (normally "<home>/.asimov/accounts"). Nothing is created until the first
// Mark.
func NewAccountRegistry(baseDir string) AccountRegistry {
	return &accountRegistry{baseDir: baseDir}
}

// MarkerPath returns the marker file path of id under net in baseDir.
func MarkerPath(baseDir string, net network.Name, id models.AccountID) string {
	return filepath.Join(baseDir, net.String(), id.String())
}

// HiddenMarkerPath returns the path a marker is moved to on deletion.
func HiddenMarkerPath(baseDir string, net network.Name, id models.AccountID) string {
	return filepath.Join(baseDir, net.String(), "."+id.String())
}

// List implements [AccountRegistry].
func (r *accountRegistry) List(ctx context.Context) ([]NetworkAccounts, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(r.baseDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrReadingRegistry, r.baseDir, err)
	}

	var listing []NetworkAccounts
	for _, entry := range entries {
		if !entry.IsDir() {
			log.Info().Str("path", filepath.Join(r.baseDir, entry.Name())).Msg("skipping non-directory registry entry")
			continue
		}

		net, err := network.ParseName(entry.Name())
		if err != nil {
			log.Info().Str("path", filepath.Join(r.baseDir, entry.Name())).Msg("skipping unknown network directory")
			continue
		}

		accounts, err := r.listNetwork(ctx, net)
		if err != nil {
			return nil, err
		}
		if len(accounts) == 0 {
			continue
		}
		listing = append(listing, NetworkAccounts{Network: net, Accounts: accounts})
	}

	slices.SortFunc(listing, func(a, b NetworkAccounts) int {
		return strings.Compare(a.Network.String(), b.Network.String())
	})
	return listing, nil
}

func (r *accountRegistry) listNetwork(ctx context.Context, net network.Name) ([]models.AccountID, error) {
	log := logger.FromContext(ctx)
	dir := filepath.Join(r.baseDir, net.String())

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrReadingRegistry, dir, err)
	}

	accounts := make([]models.AccountID, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if strings.HasPrefix(name, ".") {
			log.Debug().Str("path", path).Msg("skipping hidden registry entry")
			continue
		}
		if !entry.Type().IsRegular() {
			log.Info().Str("path", path).Msg("skipping non-regular registry entry")
			continue
		}

		id, err := models.ParseAccountID(name)
		if err != nil {
			log.Info().Err(err).Str("path", path).Msg("skipping unparsable registry entry")
			continue
		}
		if resolved, err := network.Resolve(id); err != nil || resolved != net {
			log.Info().Str("path", path).Msg("skipping account filed under the wrong network")
			continue
		}

		accounts = append(accounts, id)
	}

	slices.Sort(accounts)
	return accounts, nil
}

// Mark implements [AccountRegistry].
func (r *accountRegistry) Mark(ctx context.Context, net network.Name, id models.AccountID) (string, bool, error) {
	path := MarkerPath(r.baseDir, net, id)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, false, fmt.Errorf("%w: create directory for saving accounts: %v", ErrCreatingMarker, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		logger.FromContext(ctx).Debug().Str("path", path).Msg("marker already exists")
		return path, true, nil
	}
	if err != nil {
		return path, false, fmt.Errorf("%w: %v", ErrCreatingMarker, err)
	}
	if err = f.Close(); err != nil {
		return path, false, fmt.Errorf("%w: %v", ErrCreatingMarker, err)
	}

	return path, false, nil
}

// Unmark implements [AccountRegistry].
func (r *accountRegistry) Unmark(ctx context.Context, net network.Name, id models.AccountID) (string, bool, error) {
	from := MarkerPath(r.baseDir, net, id)
	to := HiddenMarkerPath(r.baseDir, net, id)

	err := os.Rename(from, to)
	if errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Debug().Str("path", from).Msg("no marker to remove")
		return to, false, nil
	}
	if err != nil {
		return to, false, fmt.Errorf("%w: %v", ErrRemovingMarker, err)
	}

	return to, true, nil
}
