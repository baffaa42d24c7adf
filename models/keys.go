// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// KeyTypeED25519 is the only key type this tool generates and signs with.
const KeyTypeED25519 uint8 = 0

const ed25519Prefix = "ed25519:"

// ErrInvalidKey is returned when a key string cannot be decoded.
var ErrInvalidKey = errors.New("invalid key")

// PublicKey is an ed25519 public key in the network's binary layout
// (key type byte followed by the raw key).
type PublicKey struct {
	KeyType uint8
	Data    [ed25519.PublicKeySize]byte
}

// NewPublicKey wraps a raw ed25519 public key.
func NewPublicKey(pub ed25519.PublicKey) PublicKey {
	var pk PublicKey
	pk.KeyType = KeyTypeED25519
	copy(pk.Data[:], pub)
	return pk
}

// ParsePublicKey decodes "ed25519:<base58>".
func ParsePublicKey(s string) (PublicKey, error) {
	raw, err := decodePrefixed(s, ed25519.PublicKeySize)
	if err != nil {
		return PublicKey{}, err
	}
	return NewPublicKey(raw), nil
}

// String encodes the key as "ed25519:<base58>".
func (k PublicKey) String() string {
	return ed25519Prefix + base58.Encode(k.Data[:])
}

// Bytes returns the raw public key.
func (k PublicKey) Bytes() ed25519.PublicKey {
	return append(ed25519.PublicKey(nil), k.Data[:]...)
}

// ImplicitAccountID returns the hex-encoded key, which is the account id
// the key controls when funded directly.
func (k PublicKey) ImplicitAccountID() string {
	return hex.EncodeToString(k.Data[:])
}

// MarshalJSON implements [json.Marshaler].
func (k PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON implements [json.Unmarshaler].
func (k *PublicKey) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	pk, err := ParsePublicKey(s)
	if err != nil {
		return err
	}
	*k = pk
	return nil
}

// SecretKey is an ed25519 private key (seed followed by public key).
type SecretKey struct {
	key ed25519.PrivateKey
}

// NewSecretKey wraps a raw 64-byte ed25519 private key.
func NewSecretKey(priv ed25519.PrivateKey) SecretKey {
	return SecretKey{key: append(ed25519.PrivateKey(nil), priv...)}
}

// ParseSecretKey decodes "ed25519:<base58>" holding a 64-byte private key.
func ParseSecretKey(s string) (SecretKey, error) {
	raw, err := decodePrefixed(s, ed25519.PrivateKeySize)
	if err != nil {
		return SecretKey{}, err
	}
	return NewSecretKey(raw), nil
}

// String encodes the key as "ed25519:<base58>".
func (k SecretKey) String() string {
	return ed25519Prefix + base58.Encode(k.key)
}

// PrivateKey returns the underlying ed25519 key.
func (k SecretKey) PrivateKey() ed25519.PrivateKey {
	return k.key
}

// PublicKey returns the public half of the key.
func (k SecretKey) PublicKey() PublicKey {
	if len(k.key) != ed25519.PrivateKeySize {
		return PublicKey{}
	}
	return NewPublicKey(k.key.Public().(ed25519.PublicKey))
}

// IsZero reports whether the key is unset.
func (k SecretKey) IsZero() bool {
	return len(k.key) == 0
}

// KeyPair is a public/secret key pair usable for signing.
type KeyPair struct {
	PublicKey PublicKey
	SecretKey SecretKey
}

// KeyPairProperties is a freshly generated key pair together with the
// material needed to recover it. It is the JSON document written to the
// credentials keychain.
type KeyPairProperties struct {
	AccountID         AccountID `json:"account_id,omitempty"`
	MasterSeedPhrase  string    `json:"master_seed_phrase,omitempty"`
	SeedPhraseHDPath  string    `json:"seed_phrase_hd_path,omitempty"`
	ImplicitAccountID string    `json:"implicit_account_id,omitempty"`
	PublicKey         string    `json:"public_key"`
	PrivateKey        string    `json:"private_key"`
}

// KeyPair decodes the properties into a usable [KeyPair] and checks that the
// public key matches the private key.
func (p KeyPairProperties) KeyPair() (KeyPair, error) {
	sk, err := ParseSecretKey(p.PrivateKey)
	if err != nil {
		return KeyPair{}, fmt.Errorf("private key: %w", err)
	}
	pk := sk.PublicKey()
	if p.PublicKey != "" {
		declared, err := ParsePublicKey(p.PublicKey)
		if err != nil {
			return KeyPair{}, fmt.Errorf("public key: %w", err)
		}
		if declared != pk {
			return KeyPair{}, fmt.Errorf("%w: public key does not match private key", ErrInvalidKey)
		}
	}
	return KeyPair{PublicKey: pk, SecretKey: sk}, nil
}

func decodePrefixed(s string, size int) ([]byte, error) {
	body, ok := strings.CutPrefix(s, ed25519Prefix)
	if !ok {
		return nil, fmt.Errorf("%w: expected %q prefix", ErrInvalidKey, ed25519Prefix)
	}
	raw, err := base58.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(raw) != size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, size, len(raw))
	}
	return raw, nil
}
