// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/arbitragelab/hardhat-cli/pkg/constants"
)

func denominationMultiplier(decimals uint8) *big.Int {
	return new(big.Int).Exp(
		big.NewInt(10),
		big.NewInt(int64(decimals)),
		nil,
	)
}

// Convert an integed amount of the given denomination to base units
// (i.e. An amount of 54 with a decimals value of 3 results in 54000)
func ApplyDenomination(amount uint64, decimals uint8) *big.Int {
	return new(big.Int).Mul(
		new(big.Int).SetUint64(amount),
		denominationMultiplier(decimals),
	)
}

// Convert an integed amount of the default denomination to base units
func ApplyDefaultDenomination(amount uint64) *big.Int {
	return ApplyDenomination(amount, constants.DefaultTokenDecimals)
}

// FormatUnits renders [amount] base units as a decimal string with [decimals]
// fractional digits, trimming trailing zeros but keeping at least one
// (i.e. 1500 with 3 decimals results in "1.5", 2000 in "2.0")
func FormatUnits(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0.0"
	}
	abs := new(big.Int).Abs(amount)
	quo, rem := new(big.Int).QuoRem(abs, denominationMultiplier(decimals), new(big.Int))
	frac := ""
	if decimals > 0 {
		frac = rem.String()
		frac = strings.Repeat("0", int(decimals)-len(frac)) + frac
		frac = strings.TrimRight(frac, "0")
	}
	if frac == "" {
		frac = "0"
	}
	sign := ""
	if amount.Sign() < 0 {
		sign = "-"
	}
	return sign + quo.String() + "." + frac
}

// ParseUnits converts a decimal string such as "100000" or "1.25" into base
// units for a token with [decimals] decimals
func ParseUnits(value string, decimals uint8) (*big.Int, error) {
	s := strings.TrimSpace(value)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && (!hasFrac || frac == "") {
		return nil, fmt.Errorf("invalid amount %q", value)
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || (hasFrac && !isDigits(frac)) {
		return nil, fmt.Errorf("invalid amount %q", value)
	}
	frac = strings.TrimRight(frac, "0")
	if len(frac) > int(decimals) {
		return nil, fmt.Errorf("amount %q has more than %d decimals", value, decimals)
	}
	digits := whole + frac + strings.Repeat("0", int(decimals)-len(frac))
	amount, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", value)
	}
	if negative {
		amount.Neg(amount)
	}
	return amount, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
