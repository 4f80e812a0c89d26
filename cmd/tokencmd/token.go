// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokencmd

import (
	"github.com/arbitragelab/hardhat-cli/pkg/application"
	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.App

// hardhat-cli token
func NewCmd(injectedApp *application.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Read ERC20 tokens",
		Long: `The token command suite reads metadata and balances of ERC20 tokens
deployed on the node.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// token info
	cmd.AddCommand(newInfoCmd())
	// token balance
	cmd.AddCommand(newBalanceCmd())
	return cmd
}
