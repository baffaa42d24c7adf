package store

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/MKhiriev/asimov-account/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProps(seed byte) models.KeyPairProperties {
	sk := models.NewSecretKey(ed25519.NewKeyFromSeed(bytes.Repeat([]byte{seed}, ed25519.SeedSize)))
	return models.KeyPairProperties{
		PublicKey:  sk.PublicKey().String(),
		PrivateKey: sk.String(),
	}
}

func writeCredential(t *testing.T, path string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, b, 0o600))
}

// ── Lookup ──────────────────────────────────────────────────────────────────

func TestLookup_NotFound(t *testing.T) {
	k := NewFileKeychain(t.TempDir())

	_, err := k.Lookup(context.Background(), network.Testnet, "alice.testnet")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestLookup_LegacyAndPerKeyFiles(t *testing.T) {
	dir := t.TempDir()
	legacy, extra := testProps(1), testProps(2)

	writeCredential(t, filepath.Join(dir, "testnet", "alice.testnet.json"), legacy)
	writeCredential(t, filepath.Join(dir, "testnet", "alice.testnet", "a.json"), legacy)
	writeCredential(t, filepath.Join(dir, "testnet", "alice.testnet", "b.json"), extra)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testnet", "alice.testnet", "notes.txt"), []byte("x"), 0o600))

	pairs, err := NewFileKeychain(dir).Lookup(context.Background(), network.Testnet, "alice.testnet")
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, legacy.PublicKey, pairs[0].PublicKey.String())
	assert.Equal(t, extra.PublicKey, pairs[1].PublicKey.String())
}

func TestLookup_OtherNetworkIgnored(t *testing.T) {
	dir := t.TempDir()
	writeCredential(t, filepath.Join(dir, "mainnet", "alice.testnet.json"), testProps(1))

	_, err := NewFileKeychain(dir).Lookup(context.Background(), network.Testnet, "alice.testnet")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestLookup_Corrupted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "testnet", "alice.testnet.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := NewFileKeychain(dir).Lookup(context.Background(), network.Testnet, "alice.testnet")
	assert.ErrorIs(t, err, ErrKeychainCorrupted)
}

func TestLookup_BadKey(t *testing.T) {
	dir := t.TempDir()
	writeCredential(t, filepath.Join(dir, "testnet", "alice.testnet.json"),
		map[string]string{"public_key": "ed25519:x", "private_key": "ed25519:y"})

	_, err := NewFileKeychain(dir).Lookup(context.Background(), network.Testnet, "alice.testnet")
	assert.ErrorIs(t, err, ErrKeychainCorrupted)
}

// ── Save ────────────────────────────────────────────────────────────────────

func TestSave_WritesBothFiles(t *testing.T) {
	dir := t.TempDir()
	k := NewFileKeychain(dir)
	props := testProps(3)
	props.MasterSeedPhrase = "seed words"

	path, err := k.Save(context.Background(), network.Testnet, "new.testnet", props)
	require.NoError(t, err)

	pk, err := models.ParsePublicKey(props.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "testnet", "new.testnet", KeyFileName(pk)), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	var saved models.KeyPairProperties
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &saved))
	assert.Equal(t, models.AccountID("new.testnet"), saved.AccountID)
	assert.Equal(t, "seed words", saved.MasterSeedPhrase)

	assert.FileExists(t, filepath.Join(dir, "testnet", "new.testnet.json"))

	pairs, err := k.Lookup(context.Background(), network.Testnet, "new.testnet")
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, pk, pairs[0].PublicKey)
}

func TestSave_KeepsExistingLegacyFile(t *testing.T) {
	dir := t.TempDir()
	k := NewFileKeychain(dir)
	first, second := testProps(4), testProps(5)

	_, err := k.Save(context.Background(), network.Testnet, "new.testnet", first)
	require.NoError(t, err)
	_, err = k.Save(context.Background(), network.Testnet, "new.testnet", second)
	require.NoError(t, err)

	var legacy models.KeyPairProperties
	b, err := os.ReadFile(filepath.Join(dir, "testnet", "new.testnet.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &legacy))
	assert.Equal(t, first.PublicKey, legacy.PublicKey)

	pairs, err := k.Lookup(context.Background(), network.Testnet, "new.testnet")
	require.NoError(t, err)
	assert.Len(t, pairs, 2)
}

func TestSave_InvalidProps(t *testing.T) {
	_, err := NewFileKeychain(t.TempDir()).Save(context.Background(), network.Testnet, "new.testnet",
		models.KeyPairProperties{PrivateKey: "nope"})
	assert.ErrorIs(t, err, ErrWritingCredentials)
}

func TestKeyFileName(t *testing.T) {
	pk, err := models.ParsePublicKey(testProps(6).PublicKey)
	require.NoError(t, err)

	name := KeyFileName(pk)
	assert.Regexp(t, `^ed25519_[1-9A-HJ-NP-Za-km-z]+\.json$`, name)
}
