// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/asimov-account/internal/logger"
	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/MKhiriev/asimov-account/models"
)

const (
	credentialFileMode = 0o600
	credentialDirMode  = 0o700
)

// fileKeychain is the near-cli compatible implementation of [Keychain]. For
// an account it reads both the legacy single file <net>/<id>.json and every
// <net>/<id>/*.json per-key file.
type fileKeychain struct {
	dir string
}

// NewFileKeychain constructs a [Keychain] rooted at dir (normally
// "<home>/.near-credentials").
func NewFileKeychain(dir string) Keychain {
	return &fileKeychain{dir: dir}
}

// KeyFileName returns the per-key file name of pk, e.g.
// "ed25519_8hSHprDq2StXwMtNd43wDTXQYsjXcD4MJTXQYsjXcc.json".
func KeyFileName(pk models.PublicKey) string {
	return strings.Replace(pk.String(), ":", "_", 1) + ".json"
}

// Lookup implements [Keychain].
func (k *fileKeychain) Lookup(ctx context.Context, net network.Name, id models.AccountID) ([]models.KeyPair, error) {
	log := logger.FromContext(ctx)
	netDir := filepath.Join(k.dir, net.String())

	paths := []string{filepath.Join(netDir, id.String()+".json")}
	perKey, err := jsonFiles(filepath.Join(netDir, id.String()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeychainCorrupted, err)
	}
	paths = append(paths, perKey...)

	seen := make(map[models.PublicKey]bool, len(paths))
	var pairs []models.KeyPair
	for _, path := range paths {
		var props models.KeyPairProperties
		found, err := readJSON(path, &props)
		if !found {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrKeychainCorrupted, path, err)
		}

		kp, err := props.KeyPair()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrKeychainCorrupted, path, err)
		}
		if seen[kp.PublicKey] {
			continue
		}
		seen[kp.PublicKey] = true

		log.Debug().Str("path", path).Str("public_key", kp.PublicKey.String()).Msg("found credential")
		pairs = append(pairs, kp)
	}

	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w %s on %s", ErrCredentialsNotFound, id, net)
	}
	return pairs, nil
}

// jsonFiles lists the *.json regular files of dir in name order. A missing
// dir has none.
func jsonFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".json") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}

// Save implements [Keychain]. The per-key file is always written; the
// legacy <id>.json file is only written when absent so existing tooling
// keeps its default key.
func (k *fileKeychain) Save(ctx context.Context, net network.Name, id models.AccountID, props models.KeyPairProperties) (string, error) {
	kp, err := props.KeyPair()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWritingCredentials, err)
	}
	props.AccountID = id

	accountDir := filepath.Join(k.dir, net.String(), id.String())
	if err = os.MkdirAll(accountDir, credentialDirMode); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWritingCredentials, err)
	}

	keyPath := filepath.Join(accountDir, KeyFileName(kp.PublicKey))
	if err = writeJSON(keyPath, props, credentialFileMode); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWritingCredentials, keyPath, err)
	}

	legacyPath := filepath.Join(k.dir, net.String(), id.String()+".json")
	if _, err = os.Stat(legacyPath); errors.Is(err, os.ErrNotExist) {
		if err = writeJSON(legacyPath, props, credentialFileMode); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrWritingCredentials, legacyPath, err)
		}
	} else if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWritingCredentials, legacyPath, err)
	}

	logger.FromContext(ctx).Debug().Str("path", keyPath).Msg("saved credential")
	return keyPath, nil
}
