// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dexcmd

import (
	"github.com/arbitragelab/hardhat-cli/pkg/application"
	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.App

// hardhat-cli dex
func NewCmd(injectedApp *application.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dex",
		Short: "Inspect constant product DEX pools",
		Long: `The dex command suite reads the reserves of two token constant product
pools and estimates arbitrage opportunities between them. Nothing is ever
sent to the chain.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// dex spread
	cmd.AddCommand(newSpreadCmd())
	// dex flashloan-estimate
	cmd.AddCommand(newFlashLoanEstimateCmd())
	return cmd
}
