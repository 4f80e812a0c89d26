// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nodecmd

import (
	"github.com/arbitragelab/hardhat-cli/pkg/application"
	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.App

// hardhat-cli node
func NewCmd(injectedApp *application.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Inspect the node",
		Long:  `The node command suite reports on the node the cli is connected to.`,
		RunE:  cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// node status
	cmd.AddCommand(newStatusCmd())
	return cmd
}
