// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dex

import (
	"fmt"
	"math/big"

	"github.com/arbitragelab/hardhat-cli/pkg/constants"
)

// GetSwapAmount returns the output of a constant product swap of
// [inputAmount], after the pool fee
func GetSwapAmount(inputAmount *big.Int, inputReserve *big.Int, outputReserve *big.Int) *big.Int {
	inputAmountWithFee := new(big.Int).Mul(inputAmount, big.NewInt(constants.SwapFeeNumerator))
	numerator := new(big.Int).Mul(inputAmountWithFee, outputReserve)
	denominator := new(big.Int).Mul(inputReserve, big.NewInt(constants.SwapFeeDenominator))
	denominator.Add(denominator, inputAmountWithFee)
	if denominator.Sign() == 0 {
		return new(big.Int)
	}
	return numerator.Div(numerator, denominator)
}

// FlashLoanFee is the fee charged by the lender for borrowing [amount]
func FlashLoanFee(amount *big.Int) *big.Int {
	return new(big.Int).Div(amount, big.NewInt(constants.FlashLoanFeeDivisor))
}

type FlashLoanEstimate struct {
	LoanAmount     *big.Int
	Fee            *big.Int
	Spread         float64
	TokenBReceived *big.Int
	TokenAReturned *big.Int
	NetProfit      *big.Int
	// reserves after both swaps
	Dex1After Reserves
	Dex2After Reserves
}

func (e FlashLoanEstimate) Profitable() bool {
	return e.NetProfit.Sign() > 0
}

// EstimateFlashLoan simulates borrowing [loanAmount] of token A, swapping it
// for token B on [dex1] and back to token A on [dex2], then repaying the loan
// plus its fee. Nothing is sent to the chain.
func EstimateFlashLoan(loanAmount *big.Int, dex1 Reserves, dex2 Reserves) (FlashLoanEstimate, error) {
	if loanAmount == nil || loanAmount.Sign() <= 0 {
		return FlashLoanEstimate{}, fmt.Errorf("loan amount must be positive")
	}
	price1, err := dex1.PriceAToB()
	if err != nil {
		return FlashLoanEstimate{}, err
	}
	price2, err := dex2.PriceAToB()
	if err != nil {
		return FlashLoanEstimate{}, err
	}
	tokenBReceived := GetSwapAmount(loanAmount, dex1.ReserveA, dex1.ReserveB)
	tokenAReturned := GetSwapAmount(tokenBReceived, dex2.ReserveB, dex2.ReserveA)
	fee := FlashLoanFee(loanAmount)
	netProfit := new(big.Int).Sub(tokenAReturned, loanAmount)
	netProfit.Sub(netProfit, fee)
	return FlashLoanEstimate{
		LoanAmount:     new(big.Int).Set(loanAmount),
		Fee:            fee,
		Spread:         CalculateSpread(price1, price2),
		TokenBReceived: tokenBReceived,
		TokenAReturned: tokenAReturned,
		NetProfit:      netProfit,
		Dex1After: Reserves{
			Dex:      dex1.Dex,
			ReserveA: new(big.Int).Add(dex1.ReserveA, loanAmount),
			ReserveB: new(big.Int).Sub(dex1.ReserveB, tokenBReceived),
		},
		Dex2After: Reserves{
			Dex:      dex2.Dex,
			ReserveA: new(big.Int).Sub(dex2.ReserveA, tokenAReturned),
			ReserveB: new(big.Int).Add(dex2.ReserveB, tokenBReceived),
		},
	}, nil
}
