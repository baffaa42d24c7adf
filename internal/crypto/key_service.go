// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"

	"github.com/MKhiriev/asimov-account/models"
	"github.com/mr-tron/base58"
	"github.com/tyler-smith/go-bip39"
)

// DefaultHDPath is the derivation path of NEAR wallets.
const DefaultHDPath = "m/44'/397'/0'"

// entropyBits yields a 12-word mnemonic.
const entropyBits = 128

// keyService is the private implementation of [KeyService].
type keyService struct {
	hdPath string
}

// NewKeyService constructs a [KeyService] deriving keys at [DefaultHDPath].
func NewKeyService() KeyService {
	return &keyService{hdPath: DefaultHDPath}
}

// GenerateKeyPair implements [KeyService].
func (k *keyService) GenerateKeyPair() (models.KeyPairProperties, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return models.KeyPairProperties{}, fmt.Errorf("error generating entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return models.KeyPairProperties{}, fmt.Errorf("error generating mnemonic: %w", err)
	}
	return DeriveFromSeedPhrase(mnemonic, k.hdPath)
}

// SignTransaction implements [KeyService].
func (k *keyService) SignTransaction(tx models.Transaction, secret models.SecretKey) (models.SignedTransaction, string, error) {
	raw, err := tx.Serialize()
	if err != nil {
		return models.SignedTransaction{}, "", fmt.Errorf("%w: %v", ErrSerializingTransaction, err)
	}

	hash := sha256.Sum256(raw)
	sig := models.Signature{KeyType: models.KeyTypeED25519}
	copy(sig.Data[:], ed25519.Sign(secret.PrivateKey(), hash[:]))

	return models.SignedTransaction{Transaction: tx, Signature: sig}, base58.Encode(hash[:]), nil
}

// DeriveFromSeedPhrase recovers the key pair of mnemonic at hdPath.
func DeriveFromSeedPhrase(mnemonic, hdPath string) (models.KeyPairProperties, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return models.KeyPairProperties{}, fmt.Errorf("%w: %v", ErrInvalidSeedPhrase, err)
	}

	keySeed, err := deriveSLIP10(seed, hdPath)
	if err != nil {
		return models.KeyPairProperties{}, err
	}

	props := KeyPairFromSecret(models.NewSecretKey(ed25519.NewKeyFromSeed(keySeed)))
	props.MasterSeedPhrase = mnemonic
	props.SeedPhraseHDPath = hdPath
	return props, nil
}

// KeyPairFromSecret fills the key fields of [models.KeyPairProperties] for
// an existing secret key.
func KeyPairFromSecret(secret models.SecretKey) models.KeyPairProperties {
	pk := secret.PublicKey()
	return models.KeyPairProperties{
		ImplicitAccountID: pk.ImplicitAccountID(),
		PublicKey:         pk.String(),
		PrivateKey:        secret.String(),
	}
}
