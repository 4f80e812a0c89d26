// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dexcmd

import (
	"fmt"

	"github.com/arbitragelab/hardhat-cli/cmd/flags"
	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/arbitragelab/hardhat-cli/pkg/dex"
	"github.com/arbitragelab/hardhat-cli/pkg/evm"
	"github.com/arbitragelab/hardhat-cli/pkg/token"
	"github.com/arbitragelab/hardhat-cli/pkg/utils"
	"github.com/arbitragelab/hardhat-cli/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var flashLoanFlags flags.FlashLoanFlags

// hardhat-cli dex flashloan-estimate
func newFlashLoanEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flashloan-estimate",
		Short: "Estimate the profit of a flash loan arbitrage",
		Long: `The dex flashloan-estimate command simulates borrowing token A, selling it
for token B on the first pool, buying token A back on the second pool and
repaying the loan plus its 0.1% fee. Swaps apply the 0.3% pool fee. The
simulation uses the current reserves and sends no transaction.`,
		RunE: flashLoanEstimate,
		Args: cobrautils.ExactArgs(0),
	}
	flashLoanFlags = flags.FlashLoanFlags{}
	flashLoanFlags.AddToCmd(cmd)
	return cmd
}

func flashLoanEstimate(_ *cobra.Command, _ []string) error {
	if err := flashLoanFlags.Validate(); err != nil {
		return err
	}
	addresses, err := evm.ParseAddresses([]string{flashLoanFlags.Dex1, flashLoanFlags.Dex2, flashLoanFlags.TokenA})
	if err != nil {
		return err
	}
	dex1Address, dex2Address, tokenAddress := addresses[0], addresses[1], addresses[2]
	ctx, cancel := app.GetAPIContext()
	defer cancel()
	client, err := app.GetNodeClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	params, err := token.GetTokenParams(ctx, client, tokenAddress)
	if err != nil {
		return err
	}
	loanAmount, err := utils.ParseUnits(flashLoanFlags.Amount, params.Decimals)
	if err != nil {
		return err
	}
	dex1Reserves, err := dex.GetReserves(ctx, client, dex1Address)
	if err != nil {
		return err
	}
	dex2Reserves, err := dex.GetReserves(ctx, client, dex2Address)
	if err != nil {
		return err
	}
	estimate, err := dex.EstimateFlashLoan(loanAmount, dex1Reserves, dex2Reserves)
	if err != nil {
		return err
	}

	t := ux.DefaultTable("Flash Loan Estimate", nil)
	t.AppendRow(table.Row{"Token A", fmt.Sprintf("%s (%s)", params.Symbol, params.Address.Hex())})
	t.AppendRow(table.Row{"Loan", utils.FormatUnits(estimate.LoanAmount, params.Decimals)})
	t.AppendRow(table.Row{"Fee", utils.FormatUnits(estimate.Fee, params.Decimals)})
	t.AppendRow(table.Row{"Spread", fmt.Sprintf("%.2f%%", estimate.Spread)})
	t.AppendRow(table.Row{"Token B received", estimate.TokenBReceived.String() + " base units"})
	t.AppendRow(table.Row{"Token A returned", utils.FormatUnits(estimate.TokenAReturned, params.Decimals)})
	t.AppendRow(table.Row{"Net profit", utils.FormatUnits(estimate.NetProfit, params.Decimals)})
	t.AppendRow(table.Row{"DEX1 reserves after swap", formatReserves(estimate.Dex1After, params.Decimals)})
	t.AppendRow(table.Row{"DEX2 reserves after swap", formatReserves(estimate.Dex2After, params.Decimals)})
	ux.Logger.PrintTable(t)
	if estimate.Profitable() {
		ux.Logger.GreenCheckmarkToUser("Flash loan is profitable")
	} else {
		ux.Logger.RedXToUser("Flash loan is not profitable")
	}
	return nil
}

// token A is shown with its decimals, token B in base units
func formatReserves(r dex.Reserves, decimals uint8) string {
	return fmt.Sprintf("%s / %s base units", utils.FormatUnits(r.ReserveA, decimals), r.ReserveB)
}
