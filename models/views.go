// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// AccountView is the on-chain state of an account as returned by a
// view_account query.
type AccountView struct {
	Amount        string `json:"amount"`
	Locked        string `json:"locked"`
	CodeHash      string `json:"code_hash"`
	StorageUsage  uint64 `json:"storage_usage"`
	BlockHeight   uint64 `json:"block_height"`
	BlockHash     string `json:"block_hash"`
	StoragePaidAt uint64 `json:"storage_paid_at"`
}

// AccessKeyInfo is one entry of a view_access_key_list query.
type AccessKeyInfo struct {
	PublicKey PublicKey     `json:"public_key"`
	AccessKey AccessKeyView `json:"access_key"`
}

// AccessKeyView is the JSON form of an access key.
type AccessKeyView struct {
	Nonce uint64 `json:"nonce"`
	// Permission is the string "FullAccess" or an object describing a
	// function-call allowance.
	Permission json.RawMessage `json:"permission"`
}

// IsFullAccess reports whether the key carries full access permission.
func (v AccessKeyView) IsFullAccess() bool {
	var s string
	if err := json.Unmarshal(v.Permission, &s); err != nil {
		return false
	}
	return s == "FullAccess"
}

// AccessKeyList is the result of a view_access_key_list query.
type AccessKeyList struct {
	Keys        []AccessKeyInfo `json:"keys"`
	BlockHeight uint64          `json:"block_height"`
	BlockHash   string          `json:"block_hash"`
}

// BlockView carries the part of a block response this tool needs.
type BlockView struct {
	Header struct {
		Height uint64 `json:"height"`
		Hash   string `json:"hash"`
	} `json:"header"`
}

// ExecutionStatus kinds.
const (
	StatusUnknown          = ""
	StatusNotStarted       = "NotStarted"
	StatusStarted          = "Started"
	StatusFailure          = "Failure"
	StatusSuccessValue     = "SuccessValue"
	StatusSuccessReceiptID = "SuccessReceiptId"
)

// ErrUnknownExecutionStatus is returned when an outcome status has a shape
// this tool does not recognise.
var ErrUnknownExecutionStatus = errors.New("unknown execution status")

// ExecutionStatus is the final status of a transaction. On the wire it is
// either a bare string ("NotStarted", "Started") or a single-key object
// ({"SuccessValue": "..."}, {"Failure": {...}}).
type ExecutionStatus struct {
	Kind string
	// Value holds the SuccessValue payload, the SuccessReceiptId, or the raw
	// JSON of the failure.
	Value json.RawMessage
}

// IsFailure reports whether the transaction explicitly failed.
func (s ExecutionStatus) IsFailure() bool {
	return s.Kind == StatusFailure
}

// IsSuccess reports whether the transaction completed successfully.
func (s ExecutionStatus) IsSuccess() bool {
	return s.Kind == StatusSuccessValue || s.Kind == StatusSuccessReceiptID
}

// SuccessValue decodes the base64 payload of a SuccessValue status. It is
// nil for every other kind and for an empty payload.
func (s ExecutionStatus) SuccessValue() ([]byte, error) {
	if s.Kind != StatusSuccessValue || len(s.Value) == 0 {
		return nil, nil
	}
	var encoded string
	if err := json.Unmarshal(s.Value, &encoded); err != nil {
		return nil, fmt.Errorf("%w: success value: %v", ErrUnknownExecutionStatus, err)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: success value: %v", ErrUnknownExecutionStatus, err)
	}
	return raw, nil
}

// String describes the status; for failures it is the compact failure JSON.
func (s ExecutionStatus) String() string {
	if len(s.Value) == 0 {
		return s.Kind
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, s.Value); err != nil {
		return s.Kind + ": " + string(s.Value)
	}
	return s.Kind + ": " + compact.String()
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *ExecutionStatus) UnmarshalJSON(b []byte) error {
	var kind string
	if err := json.Unmarshal(b, &kind); err == nil {
		switch kind {
		case StatusNotStarted, StatusStarted:
			*s = ExecutionStatus{Kind: kind}
			return nil
		}
		return fmt.Errorf("%w: %q", ErrUnknownExecutionStatus, kind)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownExecutionStatus, err)
	}
	if len(obj) != 1 {
		return fmt.Errorf("%w: expected exactly one key, got %d", ErrUnknownExecutionStatus, len(obj))
	}
	for k, v := range obj {
		switch k {
		case StatusFailure, StatusSuccessValue, StatusSuccessReceiptID:
			*s = ExecutionStatus{Kind: k, Value: v}
			return nil
		}
		return fmt.Errorf("%w: %q", ErrUnknownExecutionStatus, k)
	}
	return nil
}

// ExecutionOutcome is the final outcome of a submitted transaction.
type ExecutionOutcome struct {
	Status      ExecutionStatus `json:"status"`
	Transaction struct {
		Hash       string `json:"hash"`
		SignerID   string `json:"signer_id"`
		ReceiverID string `json:"receiver_id"`
	} `json:"transaction"`
	FinalExecutionStatus string `json:"final_execution_status,omitempty"`
}
