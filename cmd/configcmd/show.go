// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/arbitragelab/hardhat-cli/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// hardhat-cli config show
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `The config show command prints the value of every configuration key after
applying flags, environment variables and the config file.`,
		RunE: show,
		Args: cobrautils.ExactArgs(0),
	}
}

func show(_ *cobra.Command, _ []string) error {
	t := ux.DefaultTable("Configuration", table.Row{"Key", "Value"})
	for _, key := range app.Conf.Keys() {
		t.AppendRow(table.Row{key, app.Conf.GetConfigStringValue(key)})
	}
	ux.Logger.PrintTable(t)
	if app.Conf.ConfigFileExists() {
		ux.Logger.PrintToUser("Config file: %s", app.Conf.GetConfigPath())
	} else {
		ux.Logger.PrintToUser("Config file: %s (not created yet)", app.Conf.GetConfigPath())
	}
	return nil
}
