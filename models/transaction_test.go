package models

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeString(buf *bytes.Buffer, s string) {
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	buf.WriteString(s)
}

func TestTransaction_Serialize_DeleteAccount(t *testing.T) {
	pk := NewPublicKey(testKey(7).Public().(ed25519.PublicKey))
	var blockHash [32]byte
	for i := range blockHash {
		blockHash[i] = byte(i)
	}

	tx := Transaction{
		SignerID:   "alice.testnet",
		PublicKey:  pk,
		Nonce:      42,
		ReceiverID: "alice.testnet",
		BlockHash:  blockHash,
		Actions:    []Action{DeleteAccountAction("bob.testnet")},
	}

	got, err := tx.Serialize()
	require.NoError(t, err)

	var want bytes.Buffer
	writeString(&want, "alice.testnet")
	want.WriteByte(KeyTypeED25519)
	want.Write(pk.Data[:])
	_ = binary.Write(&want, binary.LittleEndian, uint64(42))
	writeString(&want, "alice.testnet")
	want.Write(blockHash[:])
	_ = binary.Write(&want, binary.LittleEndian, uint32(1))
	want.WriteByte(byte(ActionDeleteAccount))
	writeString(&want, "bob.testnet")

	assert.Equal(t, want.Bytes(), got)
}

func TestSignedTransaction_Serialize_AppendsSignature(t *testing.T) {
	tx := Transaction{
		SignerID:   "alice.testnet",
		ReceiverID: "bob.alice.testnet",
		Actions:    []Action{CreateAccountAction()},
	}
	txBytes, err := tx.Serialize()
	require.NoError(t, err)

	sig := Signature{KeyType: KeyTypeED25519}
	sig.Data[0] = 0xAA

	signed, err := SignedTransaction{Transaction: tx, Signature: sig}.Serialize()
	require.NoError(t, err)

	require.Len(t, signed, len(txBytes)+1+ed25519.SignatureSize)
	assert.Equal(t, txBytes, signed[:len(txBytes)])
	assert.Equal(t, byte(KeyTypeED25519), signed[len(txBytes)])
	assert.Equal(t, byte(0xAA), signed[len(txBytes)+1])
}

func TestActionConstructors(t *testing.T) {
	amount := NewNearTokenFromNear(2)

	transfer := TransferAction(amount)
	assert.Equal(t, ActionTransfer, transfer.Enum)
	assert.Equal(t, 0, transfer.Transfer.Deposit.Cmp(amount.Yocto()))

	pk := NewPublicKey(testKey(8).Public().(ed25519.PublicKey))
	add := AddFullAccessKeyAction(pk)
	assert.Equal(t, ActionAddKey, add.Enum)
	assert.Equal(t, pk, add.AddKey.PublicKey)
	assert.Equal(t, PermissionFullAccess, add.AddKey.AccessKey.Permission.Enum)

	call, err := FunctionCallAction("create_account", map[string]string{"new_account_id": "bob.testnet"}, 30, amount)
	require.NoError(t, err)
	assert.Equal(t, ActionFunctionCall, call.Enum)
	assert.Equal(t, "create_account", call.FunctionCall.MethodName)
	assert.JSONEq(t, `{"new_account_id":"bob.testnet"}`, string(call.FunctionCall.Args))
	assert.Equal(t, uint64(30), call.FunctionCall.Gas)

	del := DeleteAccountAction("bob.testnet")
	assert.Equal(t, ActionDeleteAccount, del.Enum)
	assert.Equal(t, "bob.testnet", del.DeleteAccount.BeneficiaryID)
}
