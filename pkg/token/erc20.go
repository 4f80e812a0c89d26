// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package token

import (
	"context"
	"math/big"

	"github.com/arbitragelab/hardhat-cli/pkg/contract"
	"github.com/ava-labs/libevm/accounts/abi/bind"
	"github.com/ava-labs/libevm/common"
)

// ERC20QueryABI holds the read only subset of the ERC20 interface
const ERC20QueryABI = `[
  {"inputs": [], "name": "name", "outputs": [{"internalType": "string", "name": "", "type": "string"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "symbol", "outputs": [{"internalType": "string", "name": "", "type": "string"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "decimals", "outputs": [{"internalType": "uint8", "name": "", "type": "uint8"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "address", "name": "account", "type": "address"}], "name": "balanceOf", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "address", "name": "owner", "type": "address"}, {"internalType": "address", "name": "spender", "type": "address"}], "name": "allowance", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"}
]`

type Params struct {
	Address  common.Address
	Name     string
	Symbol   string
	Decimals uint8
}

func call[T any](
	ctx context.Context,
	caller bind.ContractCaller,
	tokenAddress common.Address,
	method string,
	params ...interface{},
) (T, error) {
	out, err := contract.CallWithABI(ctx, caller, tokenAddress, ERC20QueryABI, method, params...)
	if err != nil {
		var zero T
		return zero, err
	}
	return contract.GetSmartContractCallResult[T](method, out)
}

// GetTokenParams gets symbol, name and decimals of the token at [tokenAddress]
func GetTokenParams(
	ctx context.Context,
	caller bind.ContractCaller,
	tokenAddress common.Address,
) (Params, error) {
	params := Params{Address: tokenAddress}
	var err error
	if params.Name, err = call[string](ctx, caller, tokenAddress, "name"); err != nil {
		return params, err
	}
	if params.Symbol, err = call[string](ctx, caller, tokenAddress, "symbol"); err != nil {
		return params, err
	}
	if params.Decimals, err = GetTokenDecimals(ctx, caller, tokenAddress); err != nil {
		return params, err
	}
	return params, nil
}

func GetTokenDecimals(
	ctx context.Context,
	caller bind.ContractCaller,
	tokenAddress common.Address,
) (uint8, error) {
	return call[uint8](ctx, caller, tokenAddress, "decimals")
}

// GetBalance returns the balance of [account], in token base units
func GetBalance(
	ctx context.Context,
	caller bind.ContractCaller,
	tokenAddress common.Address,
	account common.Address,
) (*big.Int, error) {
	return call[*big.Int](ctx, caller, tokenAddress, "balanceOf", account)
}

func GetAllowance(
	ctx context.Context,
	caller bind.ContractCaller,
	tokenAddress common.Address,
	owner common.Address,
	spender common.Address,
) (*big.Int, error) {
	return call[*big.Int](ctx, caller, tokenAddress, "allowance", owner, spender)
}
