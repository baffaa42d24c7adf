// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/near/borsh-go"
)

// Action discriminants in the order the network defines them.
const (
	ActionCreateAccount borsh.Enum = iota
	ActionDeployContract
	ActionFunctionCall
	ActionTransfer
	ActionStake
	ActionAddKey
	ActionDeleteKey
	ActionDeleteAccount
)

// Access key permission discriminants.
const (
	PermissionFunctionCall borsh.Enum = iota
	PermissionFullAccess
)

// Transaction is an unsigned transaction in its borsh layout.
type Transaction struct {
	SignerID   string
	PublicKey  PublicKey
	Nonce      uint64
	ReceiverID string
	BlockHash  [32]byte
	Actions    []Action
}

// Signature is an ed25519 signature in the network's binary layout.
type Signature struct {
	KeyType uint8
	Data    [ed25519.SignatureSize]byte
}

// SignedTransaction is a transaction together with the signer's signature
// over sha256(borsh(transaction)).
type SignedTransaction struct {
	Transaction Transaction
	Signature   Signature
}

// Serialize returns the borsh encoding of the transaction. Its sha256 digest
// is the transaction hash.
func (t Transaction) Serialize() ([]byte, error) {
	b, err := borsh.Serialize(t)
	if err != nil {
		return nil, fmt.Errorf("serialize transaction: %w", err)
	}
	return b, nil
}

// Serialize returns the borsh encoding submitted to the network.
func (t SignedTransaction) Serialize() ([]byte, error) {
	b, err := borsh.Serialize(t)
	if err != nil {
		return nil, fmt.Errorf("serialize signed transaction: %w", err)
	}
	return b, nil
}

// Action is a single operation inside a transaction. Only the field selected
// by Enum is encoded.
type Action struct {
	Enum           borsh.Enum `borsh_enum:"true"`
	CreateAccount  CreateAccount
	DeployContract DeployContract
	FunctionCall   FunctionCall
	Transfer       Transfer
	Stake          Stake
	AddKey         AddKey
	DeleteKey      DeleteKey
	DeleteAccount  DeleteAccount
}

type CreateAccount struct{}

type DeployContract struct {
	Code []byte
}

type FunctionCall struct {
	MethodName string
	Args       []byte
	Gas        uint64
	Deposit    big.Int
}

type Transfer struct {
	Deposit big.Int
}

type Stake struct {
	Stake     big.Int
	PublicKey PublicKey
}

type AddKey struct {
	PublicKey PublicKey
	AccessKey AccessKey
}

type DeleteKey struct {
	PublicKey PublicKey
}

type DeleteAccount struct {
	BeneficiaryID string
}

// AccessKey is the permission record attached to a public key.
type AccessKey struct {
	Nonce      uint64
	Permission AccessKeyPermission
}

// AccessKeyPermission is either a full-access grant or a function-call
// allowance restricted to one receiver.
type AccessKeyPermission struct {
	Enum         borsh.Enum `borsh_enum:"true"`
	FunctionCall FunctionCallPermission
	FullAccess   FullAccessPermission
}

type FunctionCallPermission struct {
	Allowance   *big.Int
	ReceiverID  string
	MethodNames []string
}

type FullAccessPermission struct{}

// CreateAccountAction creates the transaction's receiver account.
func CreateAccountAction() Action {
	return Action{Enum: ActionCreateAccount}
}

// TransferAction moves amount from the signer to the receiver.
func TransferAction(amount NearToken) Action {
	a := Action{Enum: ActionTransfer}
	a.Transfer.Deposit.Set(amount.Yocto())
	return a
}

// AddFullAccessKeyAction attaches pk to the receiver with full access.
func AddFullAccessKeyAction(pk PublicKey) Action {
	return Action{
		Enum: ActionAddKey,
		AddKey: AddKey{
			PublicKey: pk,
			AccessKey: AccessKey{
				Nonce:      0,
				Permission: AccessKeyPermission{Enum: PermissionFullAccess},
			},
		},
	}
}

// FunctionCallAction calls method on the receiver contract with JSON-encoded
// args, attaching deposit.
func FunctionCallAction(method string, args any, gas uint64, deposit NearToken) (Action, error) {
	payload, err := json.Marshal(args)
	if err != nil {
		return Action{}, fmt.Errorf("encode %s args: %w", method, err)
	}
	a := Action{
		Enum: ActionFunctionCall,
		FunctionCall: FunctionCall{
			MethodName: method,
			Args:       payload,
			Gas:        gas,
		},
	}
	a.FunctionCall.Deposit.Set(deposit.Yocto())
	return a, nil
}

// DeleteAccountAction deletes the receiver and sends its balance to
// beneficiary.
func DeleteAccountAction(beneficiary AccountID) Action {
	return Action{
		Enum:          ActionDeleteAccount,
		DeleteAccount: DeleteAccount{BeneficiaryID: beneficiary.String()},
	}
}
