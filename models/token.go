// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	// NearDecimals is the number of yoctoNEAR decimal places in one NEAR.
	NearDecimals = 24
	// MilliNearDecimals is the number of yoctoNEAR decimal places in one milliNEAR.
	MilliNearDecimals = 21
)

// ErrInvalidAmount is returned when a token amount cannot be parsed.
var ErrInvalidAmount = errors.New("invalid token amount")

// NearToken is an amount of NEAR held as an integer count of yoctoNEAR
// (10^-24 NEAR). The zero value is zero NEAR.
type NearToken struct {
	yocto big.Int
}

// NewNearTokenFromYocto returns a token amount of exactly yocto yoctoNEAR.
func NewNearTokenFromYocto(yocto *big.Int) NearToken {
	var t NearToken
	t.yocto.Set(yocto)
	return t
}

// NewNearTokenFromNear returns a token amount of n whole NEAR.
func NewNearTokenFromNear(n int64) NearToken {
	var t NearToken
	t.yocto.Mul(big.NewInt(n), pow10(NearDecimals))
	return t
}

// ParseNearToken parses amounts such as "1 NEAR", "0.25near", "500 milliNEAR"
// or "1000 yoctoNEAR". The unit is mandatory and case-insensitive; the space
// between the number and the unit is optional.
func ParseNearToken(s string) (NearToken, error) {
	raw := strings.TrimSpace(s)
	split := strings.IndexFunc(raw, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if split <= 0 {
		return NearToken{}, fmt.Errorf("%w: %q, expected a number followed by a unit (e.g. \"1 NEAR\")", ErrInvalidAmount, s)
	}

	number := raw[:split]
	unit := strings.ToLower(strings.TrimSpace(raw[split:]))

	var decimals int
	switch unit {
	case "near", "n":
		decimals = NearDecimals
	case "millinear", "mnear":
		decimals = MilliNearDecimals
	case "yoctonear", "yn", "yocto":
		decimals = 0
	default:
		return NearToken{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidAmount, raw[split:])
	}

	yocto, err := scaleDecimal(number, decimals)
	if err != nil {
		return NearToken{}, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, s, err)
	}

	var t NearToken
	t.yocto.Set(yocto)
	return t, nil
}

// Yocto returns a copy of the amount in yoctoNEAR.
func (t NearToken) Yocto() *big.Int {
	return new(big.Int).Set(&t.yocto)
}

// IsZero reports whether the amount is zero.
func (t NearToken) IsZero() bool {
	return t.yocto.Sign() == 0
}

// String renders the amount in NEAR with trailing zeros trimmed,
// e.g. "1.5 NEAR".
func (t NearToken) String() string {
	whole, frac := new(big.Int).QuoRem(&t.yocto, pow10(NearDecimals), new(big.Int))
	if frac.Sign() == 0 {
		return whole.String() + " NEAR"
	}
	fracStr := frac.String()
	fracStr = strings.Repeat("0", NearDecimals-len(fracStr)) + fracStr
	return whole.String() + "." + strings.TrimRight(fracStr, "0") + " NEAR"
}

// scaleDecimal converts a non-negative decimal string to an integer scaled by
// 10^decimals, rejecting values with more precision than decimals allows.
func scaleDecimal(number string, decimals int) (*big.Int, error) {
	intPart, fracPart, hasDot := strings.Cut(number, ".")
	if intPart == "" && fracPart == "" {
		return nil, errors.New("empty number")
	}
	if hasDot && fracPart == "" {
		return nil, errors.New("missing fractional digits")
	}
	if strings.Contains(fracPart, ".") {
		return nil, errors.New("more than one decimal point")
	}

	fracPart = strings.TrimRight(fracPart, "0")
	if len(fracPart) > decimals {
		return nil, fmt.Errorf("at most %d fractional digits are allowed for this unit", decimals)
	}

	digits := intPart + fracPart + strings.Repeat("0", decimals-len(fracPart))
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, errors.New("not a number")
	}
	return v, nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
