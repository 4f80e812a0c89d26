// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dex

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/arbitragelab/hardhat-cli/pkg/constants"
	"github.com/arbitragelab/hardhat-cli/pkg/contract"
	"github.com/ava-labs/libevm/accounts/abi/bind"
	"github.com/ava-labs/libevm/common"
)

// SimpleDEXABI holds the read only subset of the two token constant product pool
const SimpleDEXABI = `[
  {"inputs": [], "name": "reserveA", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "reserveB", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "uint256", "name": "inputAmount", "type": "uint256"}, {"internalType": "uint256", "name": "inputReserve", "type": "uint256"}, {"internalType": "uint256", "name": "outputReserve", "type": "uint256"}], "name": "getSwapAmount", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "pure", "type": "function"}
]`

type Reserves struct {
	Dex      common.Address
	ReserveA *big.Int
	ReserveB *big.Int
}

// PriceAToB is the amount of token B paid per token A
func (r Reserves) PriceAToB() (float64, error) {
	if r.ReserveA == nil || r.ReserveB == nil || r.ReserveA.Sign() == 0 || r.ReserveB.Sign() == 0 {
		return 0, fmt.Errorf("%w: %s", constants.ErrZeroReserve, r.Dex.Hex())
	}
	price, _ := new(big.Float).Quo(
		new(big.Float).SetInt(r.ReserveB),
		new(big.Float).SetInt(r.ReserveA),
	).Float64()
	return price, nil
}

func getReserve(
	ctx context.Context,
	caller bind.ContractCaller,
	dexAddress common.Address,
	method string,
) (*big.Int, error) {
	out, err := contract.CallWithABI(ctx, caller, dexAddress, SimpleDEXABI, method)
	if err != nil {
		return nil, err
	}
	return contract.GetSmartContractCallResult[*big.Int](method, out)
}

// GetReserves reads both pool reserves of [dexAddress]
func GetReserves(
	ctx context.Context,
	caller bind.ContractCaller,
	dexAddress common.Address,
) (Reserves, error) {
	reserves := Reserves{Dex: dexAddress}
	var err error
	if reserves.ReserveA, err = getReserve(ctx, caller, dexAddress, "reserveA"); err != nil {
		return reserves, err
	}
	if reserves.ReserveB, err = getReserve(ctx, caller, dexAddress, "reserveB"); err != nil {
		return reserves, err
	}
	return reserves, nil
}

// CalculateSpread returns the relative difference between two prices, in percent
func CalculateSpread(price1 float64, price2 float64) float64 {
	return math.Abs(price1-price2) / math.Min(price1, price2) * 100
}

type Spread struct {
	Dex1   int
	Dex2   int
	Price1 float64
	Price2 float64
	Spread float64
}

// ComputeSpreads returns the A->B spread for every pair of pools, in input order
func ComputeSpreads(reserves []Reserves) ([]Spread, error) {
	if len(reserves) < 2 {
		return nil, constants.ErrNotEnoughDexes
	}
	prices := make([]float64, len(reserves))
	for i, r := range reserves {
		price, err := r.PriceAToB()
		if err != nil {
			return nil, err
		}
		prices[i] = price
	}
	spreads := []Spread{}
	for i := 0; i < len(reserves); i++ {
		for j := i + 1; j < len(reserves); j++ {
			spreads = append(spreads, Spread{
				Dex1:   i,
				Dex2:   j,
				Price1: prices[i],
				Price2: prices[j],
				Spread: CalculateSpread(prices[i], prices[j]),
			})
		}
	}
	return spreads, nil
}

// BestSpread returns the widest spread, the first one on ties
func BestSpread(spreads []Spread) (Spread, bool) {
	if len(spreads) == 0 {
		return Spread{}, false
	}
	best := spreads[0]
	for _, s := range spreads[1:] {
		if s.Spread > best.Spread {
			best = s
		}
	}
	return best, true
}

// IsArbitrable tells if a spread is wide enough to be worth trading
func (s Spread) IsArbitrable() bool {
	return s.Spread >= constants.MinArbitrageSpread
}
