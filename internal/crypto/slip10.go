// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/anyproto/go-slip10"
)

// deriveSLIP10 walks path (e.g. "m/44'/397'/0'") from the master node of
// seed and returns the 32-byte private key seed at that path.
func deriveSLIP10(seed []byte, path string) ([]byte, error) {
	node, err := slip10.DeriveForPath(path, seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDerivationPath, path, err)
	}

	_, priv := node.Keypair()
	return priv.Seed(), nil
}
