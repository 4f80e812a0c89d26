// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/arbitragelab/hardhat-cli/pkg/application"
	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.App

func NewCmd(injectedApp *application.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for Hardhat CLI",
		Long:  `Customize configuration for Hardhat CLI`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cobrautils.CommandSuiteUsage(cmd, args)
		},
	}
	app = injectedApp
	// config show
	cmd.AddCommand(newShowCmd())
	// config set
	cmd.AddCommand(newSetCmd())
	return cmd
}
