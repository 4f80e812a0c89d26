// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"fmt"

	"github.com/arbitragelab/hardhat-cli/pkg/constants"
	"github.com/arbitragelab/hardhat-cli/pkg/utils"
	"github.com/ava-labs/libevm/common"
)

// ParseAddress converts a hex string into an address, failing on
// anything that is not 20 hex encoded bytes
func ParseAddress(addressStr string) (common.Address, error) {
	if !common.IsHexAddress(addressStr) {
		return common.Address{}, fmt.Errorf("%w: %q", constants.ErrInvalidAddress, addressStr)
	}
	return common.HexToAddress(addressStr), nil
}

// ParseAddresses parses every element of [addressStrs]
func ParseAddresses(addressStrs []string) ([]common.Address, error) {
	return utils.MapWithError(addressStrs, ParseAddress)
}
