// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/arbitragelab/hardhat-cli/pkg/application"
	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.App

// hardhat-cli contract
func NewCmd(injectedApp *application.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Read smart contracts",
		Long: `The contract command suite provides a collection of tools for reading
the state of contracts deployed on the node.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// contract owner
	cmd.AddCommand(newOwnerCmd())
	// contract call
	cmd.AddCommand(newCallCmd())
	return cmd
}
