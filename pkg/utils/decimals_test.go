// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyDenomination(t *testing.T) {
	require.Equal(t, big.NewInt(54000), ApplyDenomination(54, 3))
	require.Equal(t, "100000000000000000000000", ApplyDefaultDenomination(100000).String())
}

func TestFormatUnits(t *testing.T) {
	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	tests := []struct {
		name     string
		amount   *big.Int
		decimals uint8
		expected string
	}{
		{"whole amount", oneEther, 18, "1.0"},
		{"fractional amount", big.NewInt(1500), 3, "1.5"},
		{"less than one", big.NewInt(25), 3, "0.025"},
		{"zero", big.NewInt(0), 18, "0.0"},
		{"no decimals", big.NewInt(42), 0, "42.0"},
		{"negative", big.NewInt(-1500), 3, "-1.5"},
		{"nil", nil, 18, "0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatUnits(tt.amount, tt.decimals))
		})
	}
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		decimals uint8
		expected string
		errors   bool
	}{
		{name: "integer", value: "100000", decimals: 18, expected: "100000000000000000000000"},
		{name: "fraction", value: "1.25", decimals: 2, expected: "125"},
		{name: "leading dot", value: ".5", decimals: 1, expected: "5"},
		{name: "trailing zeros beyond decimals", value: "1.500", decimals: 1, expected: "15"},
		{name: "negative", value: "-2", decimals: 3, expected: "-2000"},
		{name: "too many decimals", value: "1.234", decimals: 2, errors: true},
		{name: "not a number", value: "abc", decimals: 18, errors: true},
		{name: "empty", value: "", decimals: 18, errors: true},
		{name: "lonely dot", value: ".", decimals: 18, errors: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseUnits(tt.value, tt.decimals)
			if tt.errors {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, amount.String())
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	amount, err := ParseUnits("950000000", 18)
	require.NoError(t, err)
	require.Equal(t, "950000000.0", FormatUnits(amount, 18))
}
