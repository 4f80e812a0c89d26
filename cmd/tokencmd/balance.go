// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokencmd

import (
	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/arbitragelab/hardhat-cli/pkg/evm"
	"github.com/arbitragelab/hardhat-cli/pkg/token"
	"github.com/arbitragelab/hardhat-cli/pkg/utils"
	"github.com/arbitragelab/hardhat-cli/pkg/ux"
	"github.com/spf13/cobra"
)

var spender string

// hardhat-cli token balance
func newBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [tokenAddress] [account]",
		Short: "Print the token balance of an account",
		Long: `The token balance command prints the balance of an account, both in
token base units and formatted with the token decimals.

With --spender it also prints how much the spender is allowed to transfer
on behalf of the account.`,
		RunE: balance,
		Args: cobrautils.ExactArgs(2),
	}
	cmd.Flags().StringVar(&spender, "spender", "", "also print the allowance granted by the account to this address")
	return cmd
}

func balance(_ *cobra.Command, args []string) error {
	addresses, err := evm.ParseAddresses(args)
	if err != nil {
		return err
	}
	tokenAddress, account := addresses[0], addresses[1]
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
	amount, err := token.GetBalance(ctx, client, tokenAddress, account)
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("Balance of %s: %s %s (%s base units)",
		account.Hex(),
		utils.FormatUnits(amount, params.Decimals),
		params.Symbol,
		amount,
	)
	if spender == "" {
		return nil
	}
	spenderAddress, err := evm.ParseAddress(spender)
	if err != nil {
		return err
	}
	allowance, err := token.GetAllowance(ctx, client, tokenAddress, account, spenderAddress)
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("Allowance of %s: %s %s (%s base units)",
		spenderAddress.Hex(),
		utils.FormatUnits(allowance, params.Decimals),
		params.Symbol,
		allowance,
	)
	return nil
}
