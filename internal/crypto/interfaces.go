package crypto

import "github.com/MKhiriev/asimov-account/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/key_service_mock.go -package=mock

// KeyService owns all key material handling of the CLI. It knows nothing of
// the network or the local filesystem: it only generates keys and signs.
//
// Key generation scheme:
//
//	mnemonic = bip39 entropy (128 bit)              (12 words)
//	seed     = bip39.NewSeed(mnemonic, "")          (PBKDF2-SHA512)
//	key      = SLIP-10 ed25519 at m/44'/397'/0'
type KeyService interface {
	// GenerateKeyPair creates a fresh key pair from a new 12-word mnemonic.
	// The returned properties carry the mnemonic and HD path so the key can
	// be recovered later.
	GenerateKeyPair() (models.KeyPairProperties, error)

	// SignTransaction signs sha256(borsh(tx)) with secret and returns the
	// signed transaction together with the base58 transaction hash.
	SignTransaction(tx models.Transaction, secret models.SecretKey) (models.SignedTransaction, string, error)
}
