// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nodecmd

import (
	"fmt"

	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/arbitragelab/hardhat-cli/pkg/interact"
	"github.com/arbitragelab/hardhat-cli/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print connectivity, client version, chain id and block number",
		Long: `The node status command checks the node answers and prints its client
version, chain id and latest block number.`,
		Args: cobrautils.ExactArgs(0),
		RunE: status,
	}
}

func status(_ *cobra.Command, _ []string) error {
	ctx, cancel := app.GetAPIContext()
	defer cancel()
	client, err := app.GetNodeClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	t := ux.DefaultTable("Node Status", nil)
	t.AppendRow(table.Row{"RPC URL", client.URL})
	if !client.IsConnected(ctx) {
		t.AppendRow(table.Row{"Connected", interact.FormatBool(false)})
		ux.Logger.PrintTable(t)
		return fmt.Errorf("node at %s is not reachable", client.URL)
	}
	version, err := client.ClientVersion(ctx)
	if err != nil {
		return err
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return err
	}
	blockNumber, err := client.BlockNumber(ctx)
	if err != nil {
		return err
	}
	t.AppendRow(table.Row{"Connected", interact.FormatBool(true)})
	t.AppendRow(table.Row{"Client Version", version})
	t.AppendRow(table.Row{"Chain ID", chainID})
	t.AppendRow(table.Row{"Block Number", ux.ConvertToStringWithThousandSeparator(blockNumber)})
	ux.Logger.PrintTable(t)
	return nil
}
