// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokencmd

import (
	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/arbitragelab/hardhat-cli/pkg/evm"
	"github.com/arbitragelab/hardhat-cli/pkg/token"
	"github.com/arbitragelab/hardhat-cli/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// hardhat-cli token info
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [tokenAddress]",
		Short: "Print name, symbol and decimals of a token",
		Long:  `The token info command prints the name, symbol and decimals of an ERC20 token.`,
		RunE:  info,
		Args:  cobrautils.ExactArgs(1),
	}
}

func info(_ *cobra.Command, args []string) error {
	tokenAddress, err := evm.ParseAddress(args[0])
	if err != nil {
		return err
	}
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
	t := ux.DefaultTable("Token", nil)
	t.AppendRow(table.Row{"Address", params.Address.Hex()})
	t.AppendRow(table.Row{"Name", params.Name})
	t.AppendRow(table.Row{"Symbol", params.Symbol})
	t.AppendRow(table.Row{"Decimals", params.Decimals})
	ux.Logger.PrintTable(t)
	return nil
}
